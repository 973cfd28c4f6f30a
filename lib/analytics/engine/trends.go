package engine

import (
	"sort"

	"hr-screening-backend/models"
)

// maxSeriesPoints сколько последних корзин остается в каждом ряду
const maxSeriesPoints = 12

type VolumePoint struct {
	Period       string `json:"period"`
	Applications int    `json:"applications"`
	Qualified    int    `json:"qualified"`
	Rejected     int    `json:"rejected"`
}

type AccuracyPoint struct {
	Period   string  `json:"period"`
	Correct  int     `json:"correct"`
	Total    int     `json:"total"`
	FalsePos int     `json:"falsePos"`
	FalseNeg int     `json:"falseNeg"`
	Accuracy float64 `json:"accuracy"`
}

type HirePoint struct {
	Month      string  `json:"month"`
	Hires      int     `json:"hires"`
	TotalHours float64 `json:"totalTime"`
	AvgTime    float64 `json:"avgTime"`
}

type Trends struct {
	HiringTrends          []VolumePoint
	AIPerformanceOverTime []AccuracyPoint
	TimeToHireData        []HirePoint
}

// lastPeriods сортирует ключи хронологически и оставляет последние maxSeriesPoints
func lastPeriods[T any](buckets map[string]*T) []string {
	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	if len(keys) > maxSeriesPoints {
		keys = keys[len(keys)-maxSeriesPoints:]
	}
	return keys
}

// BuildTrends строит три временных ряда. Заявка без нужной для ряда даты
// пропускается только в этом ряду.
func BuildTrends(apps []ApplicationRecord, granularity models.Granularity) Trends {
	return Trends{
		HiringTrends:          hiringTrends(apps, granularity),
		AIPerformanceOverTime: aiPerformance(apps, granularity),
		TimeToHireData:        timeToHire(apps),
	}
}

func hiringTrends(apps []ApplicationRecord, granularity models.Granularity) []VolumePoint {
	buckets := map[string]*VolumePoint{}
	for _, app := range apps {
		submitted, ok := ParseDate(app.SubmittedDate)
		if !ok {
			continue
		}
		key := PeriodKey(submitted, granularity)
		point, found := buckets[key]
		if !found {
			point = &VolumePoint{Period: key}
			buckets[key] = point
		}
		point.Applications++
		switch app.AILabel {
		case models.AILabelQualified:
			point.Qualified++
		case models.AILabelNotQualified:
			point.Rejected++
		}
	}
	result := make([]VolumePoint, 0, len(buckets))
	for _, key := range lastPeriods(buckets) {
		result = append(result, *buckets[key])
	}
	return result
}

// aiPerformance корзина определяется датой рассмотрения, при ее отсутствии датой подачи
func aiPerformance(apps []ApplicationRecord, granularity models.Granularity) []AccuracyPoint {
	buckets := map[string]*AccuracyPoint{}
	for _, app := range apps {
		if !app.IsReviewed() {
			continue
		}
		activity, ok := ParseDate(app.ReviewedDate)
		if !ok {
			activity, ok = ParseDate(app.SubmittedDate)
		}
		if !ok {
			continue
		}
		key := PeriodKey(activity, granularity)
		point, found := buckets[key]
		if !found {
			point = &AccuracyPoint{Period: key}
			buckets[key] = point
		}
		point.Total++
		human := app.HumanLabel()
		switch {
		case app.AILabel == human:
			point.Correct++
		case app.AILabel == models.AILabelQualified && human == models.AILabelNotQualified:
			point.FalsePos++
		case app.AILabel == models.AILabelNotQualified && human == models.AILabelQualified:
			point.FalseNeg++
		}
	}
	result := make([]AccuracyPoint, 0, len(buckets))
	for _, key := range lastPeriods(buckets) {
		point := *buckets[key]
		point.Accuracy = percent(point.Correct, point.Total)
		result = append(result, point)
	}
	return result
}

type hireBucket struct {
	hires   int
	seconds int64
}

// timeToHire помесячно по дате подачи, только одобренные заявки с датой решения
func timeToHire(apps []ApplicationRecord) []HirePoint {
	buckets := map[string]*hireBucket{}
	for _, app := range apps {
		if app.Status != models.ApplicationStatusQualified {
			continue
		}
		seconds, ok := decisionSeconds(app)
		if !ok {
			continue
		}
		submitted, _ := ParseDate(app.SubmittedDate)
		key := PeriodKey(submitted, models.GranularityMonth)
		bucket, found := buckets[key]
		if !found {
			bucket = &hireBucket{}
			buckets[key] = bucket
		}
		bucket.hires++
		bucket.seconds += seconds
	}
	result := make([]HirePoint, 0, len(buckets))
	for _, key := range lastPeriods(buckets) {
		bucket := buckets[key]
		result = append(result, HirePoint{
			Month:      key,
			Hires:      bucket.hires,
			TotalHours: secondsToHours(bucket.seconds),
			AvgTime:    avgHours(bucket.seconds, bucket.hires),
		})
	}
	return result
}
