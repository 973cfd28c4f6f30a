package engine

import (
	"math"
	"sort"

	"hr-screening-backend/models"
)

const maxDepartments = 8

type DepartmentStat struct {
	Department      string  `json:"department"`
	Applications    int     `json:"applications"`
	Qualified       int     `json:"qualified"`
	OfferAcceptance float64 `json:"offerAcceptance"`
	AvgTimeToHire   float64 `json:"avgTimeToHire"`
}

type SourceStat struct {
	Channel        string  `json:"channel"`
	Applications   int     `json:"applications"`
	Conversions    int     `json:"conversions"`
	TotalCost      float64 `json:"totalCost"`
	ConversionRate float64 `json:"conversionRate"`
	CostPerHire    float64 `json:"costPerHire"`
}

type departmentBucket struct {
	total     int
	qualified int
	seconds   int64
	timed     int
}

// DepartmentStats группировка по отделу вакансии. Отдел ищется по job_class,
// если вакансии нет или отдел не указан, используется "Unknown".
func DepartmentStats(apps []ApplicationRecord, jobs []JobRecord) []DepartmentStat {
	departments := make(map[string]string, len(jobs))
	for _, job := range jobs {
		// при дублях job_class побеждает первая запись
		if _, found := departments[job.JobClass]; !found {
			departments[job.JobClass] = job.Department
		}
	}

	buckets := map[string]*departmentBucket{}
	for _, app := range apps {
		dept := orSentinel(departments[app.JobClass], unknownSentinel)
		bucket, found := buckets[dept]
		if !found {
			bucket = &departmentBucket{}
			buckets[dept] = bucket
		}
		bucket.total++
		if app.Status == models.ApplicationStatusQualified {
			bucket.qualified++
		}
		if seconds, ok := decisionSeconds(app); ok {
			bucket.seconds += seconds
			bucket.timed++
		}
	}

	result := make([]DepartmentStat, 0, len(buckets))
	for dept, bucket := range buckets {
		result = append(result, DepartmentStat{
			Department:      dept,
			Applications:    bucket.total,
			Qualified:       bucket.qualified,
			OfferAcceptance: percent(bucket.qualified, bucket.total),
			AvgTimeToHire:   avgHours(bucket.seconds, bucket.timed),
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Applications != result[j].Applications {
			return result[i].Applications > result[j].Applications
		}
		return result[i].Department < result[j].Department
	})
	if len(result) > maxDepartments {
		result = result[:maxDepartments]
	}
	return result
}

type sourceBucket struct {
	applications int
	conversions  int
	// стоимость копится в сотых долях, чтобы сумма не зависела от порядка записей
	costCents int64
}

// SourceEffectiveness конверсия и стоимость найма по каналам привлечения
func SourceEffectiveness(sources []CandidateSourceRecord) []SourceStat {
	buckets := map[string]*sourceBucket{}
	for _, source := range sources {
		channel := orSentinel(source.SourceChannel, unknownSentinel)
		bucket, found := buckets[channel]
		if !found {
			bucket = &sourceBucket{}
			buckets[channel] = bucket
		}
		bucket.applications++
		if source.ConvertedToHire {
			bucket.conversions++
		}
		if source.CostPerApplicant > 0 && !math.IsInf(source.CostPerApplicant, 0) {
			bucket.costCents += int64(math.Round(source.CostPerApplicant * 100))
		}
	}

	result := make([]SourceStat, 0, len(buckets))
	for channel, bucket := range buckets {
		totalCost := float64(bucket.costCents) / 100
		stat := SourceStat{
			Channel:        channel,
			Applications:   bucket.applications,
			Conversions:    bucket.conversions,
			TotalCost:      totalCost,
			ConversionRate: percent(bucket.conversions, bucket.applications),
		}
		if bucket.conversions > 0 {
			stat.CostPerHire = ratio(totalCost, float64(bucket.conversions))
		}
		result = append(result, stat)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].ConversionRate != result[j].ConversionRate {
			return result[i].ConversionRate > result[j].ConversionRate
		}
		return result[i].Channel < result[j].Channel
	})
	return result
}
