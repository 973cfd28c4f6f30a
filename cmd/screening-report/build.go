package main

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"hr-screening-backend/lib/analytics/engine"
	jsonexport "hr-screening-backend/lib/export/json"
	pdfexport "hr-screening-backend/lib/export/pdf"
	xlsexport "hr-screening-backend/lib/export/xls"
	"hr-screening-backend/models"
)

const dateOnlyLayout = "2006-01-02"

type buildOptions struct {
	Snapshot    string `validate:"required"`
	Days        int    `validate:"oneof=7 30 90 365"`
	From        string `validate:"required_with=To"`
	To          string
	Granularity string `validate:"oneof=week month"`
	Format      string `validate:"oneof=json xlsx pdf"`
	Out         string
	Now         string
	Sequential  bool
}

func newBuildCmd() *cobra.Command {
	opts := &buildOptions{}
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build an analytics report from a snapshot file",
		Long:  "Reads applications, jobs, feedback and sources from a JSON snapshot, computes the screening analytics report and writes it as JSON, XLSX or PDF.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringVarP(&opts.Snapshot, "snapshot", "s", "", "Path to snapshot JSON file (required)")
	cmd.Flags().IntVarP(&opts.Days, "days", "d", 30, "Report window in days: 7, 30, 90 or 365")
	cmd.Flags().StringVar(&opts.From, "from", "", "Range start date (YYYY-MM-DD or RFC3339), overrides --days")
	cmd.Flags().StringVar(&opts.To, "to", "", "Range end date (YYYY-MM-DD or RFC3339), inclusive")
	cmd.Flags().StringVarP(&opts.Granularity, "granularity", "g", string(models.GranularityWeek), "Trend bucket: week or month")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "json", "Output format: json, xlsx or pdf")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "Output file, stdout when empty")
	cmd.Flags().StringVar(&opts.Now, "now", "", "Reference time in RFC3339, current time when empty")
	cmd.Flags().BoolVar(&opts.Sequential, "sequential", false, "Run aggregators sequentially")
	if err := cmd.MarkFlagRequired("snapshot"); err != nil {
		panic(err)
	}
	return cmd
}

func (o buildOptions) request() (engine.Request, error) {
	if err := validate.Struct(o); err != nil {
		return engine.Request{}, errors.Wrap(err, "некорректные параметры")
	}
	req := engine.Request{
		Days:        o.Days,
		Granularity: models.Granularity(o.Granularity),
		Now:         time.Now().UTC(),
		Sequential:  o.Sequential,
	}
	if o.Now != "" {
		now, err := time.Parse(time.RFC3339, o.Now)
		if err != nil {
			return engine.Request{}, errors.Wrap(err, "некорректное значение --now")
		}
		req.Now = now.UTC()
	}
	if o.From != "" {
		from, ok := engine.ParseDate(o.From)
		if !ok {
			return engine.Request{}, errors.Errorf("некорректная дата --from: %s", o.From)
		}
		req.From = &from
	}
	if o.To != "" {
		to, ok := engine.ParseDate(o.To)
		if !ok {
			return engine.Request{}, errors.Errorf("некорректная дата --to: %s", o.To)
		}
		// дата без времени включает весь день
		if len(strings.TrimSpace(o.To)) == len(dateOnlyLayout) {
			to = to.Add(24*time.Hour - time.Second)
		}
		if to.Before(*req.From) {
			return engine.Request{}, errors.New("конец периода раньше начала")
		}
		req.To = &to
	}
	return req, nil
}

func runBuild(stdout io.Writer, opts *buildOptions) error {
	req, err := opts.request()
	if err != nil {
		return err
	}
	snapshot, skipped, err := loadSnapshot(opts.Snapshot)
	if err != nil {
		return err
	}
	report := engine.Build(snapshot, req)
	log.
		WithField("applications", report.Stats.Total).
		WithField("skipped_records", skipped).
		WithField("invalid_records", report.Stats.InvalidRecords).
		Info("отчет построен")

	data, err := encode(report, opts.Format)
	if err != nil {
		return err
	}
	if opts.Out == "" {
		_, err = stdout.Write(data)
		return errors.Wrap(err, "ошибка записи отчета")
	}
	if err = os.WriteFile(opts.Out, data, 0o644); err != nil {
		return errors.Wrapf(err, "ошибка записи отчета в %s", opts.Out)
	}
	return nil
}

func encode(report engine.Report, format string) ([]byte, error) {
	switch format {
	case "xlsx":
		xlsexport.NewHandler()
		buffer, err := xlsexport.Instance.ExportReport(report)
		if err != nil {
			return nil, err
		}
		return buffer.Bytes(), nil
	case "pdf":
		return pdfexport.GenerateSummary(report)
	default:
		return jsonexport.Encode(report)
	}
}
