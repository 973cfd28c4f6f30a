package xlsexport

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"hr-screening-backend/lib/analytics/engine"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Provider interface {
	ExportReport(report engine.Report) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

type table struct {
	sheet   string
	headers []string
	rows    [][]interface{}
}

func (i impl) ExportReport(report engine.Report) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	writer, err := newSheetWriter(f)
	if err != nil {
		return nil, err
	}
	tables := reportTables(report)
	for idx, t := range tables {
		if idx == 0 {
			if err := f.SetSheetName("Sheet1", t.sheet); err != nil {
				return nil, errors.Wrap(err, "ошибка переименования листа xlsx")
			}
		} else if _, err := f.NewSheet(t.sheet); err != nil {
			return nil, errors.Wrapf(err, "ошибка создания листа %s", t.sheet)
		}
		if err := writer.writeTable(t); err != nil {
			return nil, errors.Wrapf(err, "ошибка формирования листа %s в xlsx", t.sheet)
		}
	}
	return f.WriteToBuffer()
}

func reportTables(report engine.Report) []table {
	stats := report.Stats
	summary := table{
		sheet:   "Summary",
		headers: []string{"Metric", "Value"},
		rows: [][]interface{}{
			{"Generated at", report.GeneratedAt},
			{"Window, days", report.TimeRangeDays},
			{"Range from", report.RangeFrom},
			{"Range to", report.RangeTo},
			{"Granularity", string(report.Granularity)},
			{"Total applications", stats.Total},
			{"Processed", stats.Processed},
			{"Remaining", stats.Remaining},
			{"Likely Qualified", stats.Qualified},
			{"Needs Review", stats.NeedsReview},
			{"Likely Not Qualified", stats.NotQualified},
			{"Avg processing time, h", stats.AvgProcessingTime},
			{"Reviewed", stats.ReviewedApps},
			{"AI agreement", stats.AIAgreement},
			{"AI accuracy, %", stats.AIAccuracy},
			{"False positives", stats.FalsePositives},
			{"False negatives", stats.FalseNegatives},
			{"Qualification rate, %", stats.QualificationRate},
			{"Invalid records", stats.InvalidRecords},
			{"Fairness grade", report.BiasAnalysis.FairnessGrade},
			{"Training progress, %", report.TrainingProgress.Progress},
			{"Training status", report.TrainingProgress.Message},
		},
	}

	hiring := table{sheet: "Hiring trends", headers: []string{"Period", "Applications", "Qualified", "Rejected"}}
	for _, p := range report.HiringTrends {
		hiring.rows = append(hiring.rows, []interface{}{p.Period, p.Applications, p.Qualified, p.Rejected})
	}

	performance := table{sheet: "AI performance", headers: []string{"Period", "Correct", "Total", "False positives", "False negatives", "Accuracy, %"}}
	for _, p := range report.AIPerformanceOverTime {
		performance.rows = append(performance.rows, []interface{}{p.Period, p.Correct, p.Total, p.FalsePos, p.FalseNeg, p.Accuracy})
	}

	timeToHire := table{sheet: "Time to hire", headers: []string{"Month", "Hires", "Total time, h", "Avg time, h"}}
	for _, p := range report.TimeToHireData {
		timeToHire.rows = append(timeToHire.rows, []interface{}{p.Month, p.Hires, p.TotalHours, p.AvgTime})
	}

	departments := table{sheet: "Departments", headers: []string{"Department", "Applications", "Qualified", "Offer acceptance, %", "Avg time to hire, h"}}
	for _, d := range report.DepartmentStats {
		departments.rows = append(departments.rows, []interface{}{d.Department, d.Applications, d.Qualified, d.OfferAcceptance, d.AvgTimeToHire})
	}

	sources := table{sheet: "Sources", headers: []string{"Channel", "Applications", "Conversions", "Total cost", "Conversion rate, %", "Cost per hire"}}
	for _, s := range report.SourceEffectiveness {
		sources.rows = append(sources.rows, []interface{}{s.Channel, s.Applications, s.Conversions, s.TotalCost, s.ConversionRate, s.CostPerHire})
	}

	bias := table{sheet: "Bias", headers: []string{"Grouping", "Group", "Applications", "Likely Qualified", "Rate, %"}}
	groupings := []struct {
		name   string
		groups []engine.GroupRate
	}{
		{engine.GroupingExperience, report.BiasAnalysis.ByExperience},
		{engine.GroupingEducation, report.BiasAnalysis.ByEducation},
		{engine.GroupingJob, report.BiasAnalysis.ByJob},
	}
	for _, g := range groupings {
		for _, r := range g.groups {
			bias.rows = append(bias.rows, []interface{}{g.name, r.Group, r.Count, r.Qualified, r.Rate})
		}
	}
	for _, alert := range report.BiasAnalysis.Alerts {
		bias.rows = append(bias.rows, []interface{}{alert.Grouping, strings.ToUpper(string(alert.Type)), alert.Message, "", alert.Disparity})
	}

	overrides := table{sheet: "Overrides", headers: []string{"Pattern", "Count"}}
	for _, p := range report.OverridePatterns.Patterns {
		overrides.rows = append(overrides.rows, []interface{}{p.Pattern, p.Count})
	}
	overrides.rows = append(overrides.rows, []interface{}{"Total", report.OverridePatterns.Total})

	suggestions := table{sheet: "Suggestions", headers: []string{"Type", "Message"}}
	for _, s := range report.ImprovementSuggestions {
		suggestions.rows = append(suggestions.rows, []interface{}{string(s.Type), s.Message})
	}

	return []table{summary, hiring, performance, timeToHire, departments, sources, bias, overrides, suggestions}
}
