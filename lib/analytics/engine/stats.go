package engine

import "hr-screening-backend/models"

type Stats struct {
	Total             int     `json:"total"`
	Processed         int     `json:"processed"`
	Remaining         int     `json:"remaining"`
	Qualified         int     `json:"qualified"`
	NeedsReview       int     `json:"needsReview"`
	NotQualified      int     `json:"notQualified"`
	AvgProcessingTime float64 `json:"avgProcessingTime"` // часы
	ReviewedApps      int     `json:"reviewedApps"`
	AIAgreement       int     `json:"aiAgreement"`
	AIAccuracy        float64 `json:"aiAccuracy"`
	FalsePositives    int     `json:"falsePositives"`
	FalseNegatives    int     `json:"falseNegatives"`
	QualificationRate float64 `json:"qualificationRate"`
	// InvalidRecords заявки с меткой или статусом вне перечислений
	InvalidRecords int `json:"invalidRecords"`
}

// CoreStats итоговые показатели по отобранным заявкам.
// Метрики согласия считаются только по заявкам с ревьюером.
func CoreStats(apps []ApplicationRecord) Stats {
	var (
		stats        Stats
		totalSeconds int64
		timed        int
	)
	stats.Total = len(apps)
	for _, app := range apps {
		if !app.AILabel.IsValid() || !app.Status.IsValid() {
			stats.InvalidRecords++
		}
		if app.Status != models.ApplicationStatusPending {
			stats.Processed++
		}
		switch app.AILabel {
		case models.AILabelQualified:
			stats.Qualified++
		case models.AILabelNeedsReview:
			stats.NeedsReview++
		case models.AILabelNotQualified:
			stats.NotQualified++
		}
		if seconds, ok := decisionSeconds(app); ok {
			totalSeconds += seconds
			timed++
		}

		if !app.IsReviewed() {
			continue
		}
		stats.ReviewedApps++
		if app.AILabel == app.HumanLabel() {
			stats.AIAgreement++
		}
		if app.AILabel == models.AILabelQualified && app.Status == models.ApplicationStatusNotQualified {
			stats.FalsePositives++
		}
		if app.AILabel == models.AILabelNotQualified && app.Status == models.ApplicationStatusQualified {
			stats.FalseNegatives++
		}
	}
	stats.Remaining = stats.Total - stats.Processed
	stats.AvgProcessingTime = avgHours(totalSeconds, timed)
	stats.AIAccuracy = percent(stats.AIAgreement, stats.ReviewedApps)
	stats.QualificationRate = percent(stats.Qualified, stats.Total)
	return stats
}
