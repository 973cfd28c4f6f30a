package pdfexport

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"hr-screening-backend/lib/analytics/engine"
)

const ContentType = "application/pdf"

// встроенные шрифты fpdf поддерживают только cp1252
var textReplacer = strings.NewReplacer("→", "->", "—", "-")

// GenerateSummary одностраничная сводка отчета: ключевые показатели,
// оценка справедливости, предупреждения и рекомендации
func GenerateSummary(report engine.Report) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateSummary panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string {
		return tr(textReplacer.Replace(s))
	}
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "AI Screening Analytics", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	period := fmt.Sprintf("Generated %s, window %d days from %s", report.GeneratedAt, report.TimeRangeDays, report.RangeFrom)
	if report.RangeTo != "" {
		period += " to " + report.RangeTo
	}
	pdf.CellFormat(0, 6, text(period), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	stats := report.Stats
	section(pdf, "Key metrics")
	rows := [][2]string{
		{"Total applications", fmt.Sprint(stats.Total)},
		{"Processed / remaining", fmt.Sprintf("%d / %d", stats.Processed, stats.Remaining)},
		{"Likely Qualified / Needs Review / Likely Not Qualified", fmt.Sprintf("%d / %d / %d", stats.Qualified, stats.NeedsReview, stats.NotQualified)},
		{"Qualification rate", fmt.Sprintf("%.1f%%", stats.QualificationRate)},
		{"AI accuracy", fmt.Sprintf("%.1f%% (%d of %d reviewed)", stats.AIAccuracy, stats.AIAgreement, stats.ReviewedApps)},
		{"False positives / negatives", fmt.Sprintf("%d / %d", stats.FalsePositives, stats.FalseNegatives)},
		{"Avg processing time", fmt.Sprintf("%.1f h", stats.AvgProcessingTime)},
		{"Fairness grade", report.BiasAnalysis.FairnessGrade},
	}
	for _, row := range rows {
		pdf.CellFormat(110, 6, text(row[0]), "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, text(row[1]), "1", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	section(pdf, "Bias alerts")
	if len(report.BiasAnalysis.Alerts) == 0 {
		pdf.MultiCell(0, 6, "No significant disparities detected", "", "L", false)
	}
	for _, alert := range report.BiasAnalysis.Alerts {
		pdf.MultiCell(0, 6, text(fmt.Sprintf("[%s] %s", strings.ToUpper(string(alert.Type)), alert.Message)), "", "L", false)
	}
	pdf.Ln(4)

	section(pdf, "Improvement suggestions")
	for _, s := range report.ImprovementSuggestions {
		pdf.MultiCell(0, 6, text(fmt.Sprintf("[%s] %s", strings.ToUpper(string(s.Type)), s.Message)), "", "L", false)
	}
	pdf.Ln(4)

	section(pdf, "Training progress")
	training := report.TrainingProgress
	pdf.MultiCell(0, 6, text(fmt.Sprintf("%d reviewed, %.1f%%. %s", training.TotalReviewed, training.Progress, training.Message)), "", "L", false)

	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func section(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
}
