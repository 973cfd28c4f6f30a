package engine

import (
	"fmt"
	"time"

	"hr-screening-backend/models"
)

// воскресенье, неделя начинается 2024-06-24
var testNow = time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)

type recordOption func(*ApplicationRecord)

var recordSeq int

func newApp(label models.AILabel, status models.ApplicationStatus, opts ...recordOption) ApplicationRecord {
	recordSeq++
	rec := ApplicationRecord{
		ID:            fmt.Sprintf("app-%d", recordSeq),
		JobClass:      "Analyst",
		SubmittedDate: "2024-06-20",
		Status:        status,
		AILabel:       label,
		Confidence:    70,
	}
	for _, opt := range opts {
		opt(&rec)
	}
	return rec
}

func reviewedBy(name string) recordOption {
	return func(r *ApplicationRecord) { r.ReviewedBy = name }
}

func submitted(date string) recordOption {
	return func(r *ApplicationRecord) { r.SubmittedDate = date }
}

func reviewedOn(date string) recordOption {
	return func(r *ApplicationRecord) { r.ReviewedDate = date }
}

func experience(years float64) recordOption {
	return func(r *ApplicationRecord) { r.TotalExperienceYears = &years }
}

func education(level string) recordOption {
	return func(r *ApplicationRecord) { r.Education = append(r.Education, Education{DegreeLevel: level}) }
}

func jobClass(name string) recordOption {
	return func(r *ApplicationRecord) { r.JobClass = name }
}

func confidence(value int) recordOption {
	return func(r *ApplicationRecord) { r.Confidence = value }
}

func repeatApps(n, qualified int, opts ...recordOption) []ApplicationRecord {
	result := make([]ApplicationRecord, 0, n)
	for i := 0; i < n; i++ {
		label := models.AILabelNotQualified
		if i < qualified {
			label = models.AILabelQualified
		}
		result = append(result, newApp(label, models.ApplicationStatusPending, opts...))
	}
	return result
}

func defaultRequest() Request {
	return Request{Days: 30, Now: testNow, Granularity: models.GranularityWeek}
}
