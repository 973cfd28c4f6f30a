package engine

import (
	"math"
	"time"

	"hr-screening-backend/models"
)

// Допустимые окна отчета в днях
var AllowedWindows = []int{7, 30, 90, 365}

func IsAllowedWindow(days int) bool {
	for _, d := range AllowedWindows {
		if d == days {
			return true
		}
	}
	return false
}

// RecordFilter дополнительные условия отбора заявок (фильтры списка заявок)
type RecordFilter struct {
	JobClasses    []string                   `json:"job_classes,omitempty"`
	AILabels      []models.AILabel           `json:"ai_labels,omitempty"`
	Statuses      []models.ApplicationStatus `json:"statuses,omitempty"`
	MinConfidence *int                       `json:"min_confidence,omitempty"`
	MaxConfidence *int                       `json:"max_confidence,omitempty"`
}

func (f RecordFilter) match(app ApplicationRecord) bool {
	if len(f.JobClasses) != 0 && !contains(f.JobClasses, app.JobClass) {
		return false
	}
	if len(f.AILabels) != 0 && !contains(f.AILabels, app.AILabel) {
		return false
	}
	if len(f.Statuses) != 0 && !contains(f.Statuses, app.Status) {
		return false
	}
	if f.MinConfidence != nil && app.Confidence < *f.MinConfidence {
		return false
	}
	if f.MaxConfidence != nil && app.Confidence > *f.MaxConfidence {
		return false
	}
	return true
}

func contains[T comparable](list []T, value T) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

// Request неизменяемые параметры построения отчета.
// Now фиксируется вызывающей стороной, поэтому одинаковые входные данные дают одинаковый отчет.
type Request struct {
	Days        int
	From        *time.Time
	To          *time.Time
	Granularity models.Granularity
	Now         time.Time
	Filter      RecordFilter
	// Sequential запускает агрегаторы последовательно, результат тот же
	Sequential bool
}

// Bounds границы окна: [from, to]. to нулевой, если верхней границы нет.
func (r Request) Bounds() (from, to time.Time) {
	if r.From != nil {
		from = r.From.UTC()
		if r.To != nil {
			to = r.To.UTC()
		}
		return from, to
	}
	return r.Now.UTC().AddDate(0, 0, -r.Days), time.Time{}
}

// WindowDays длина окна в днях; для явного диапазона считается по границам
func (r Request) WindowDays() int {
	if r.From == nil {
		return r.Days
	}
	end := r.Now.UTC()
	if r.To != nil {
		end = r.To.UTC()
	}
	days := end.Sub(r.From.UTC()).Hours() / 24
	if days <= 0 {
		return 0
	}
	return int(math.Ceil(days))
}

func (r Request) granularity() models.Granularity {
	if r.Granularity.IsValid() {
		return r.Granularity
	}
	return models.GranularityWeek
}

// FilterApplications оставляет заявки, поданные внутри окна и прошедшие фильтр.
// Заявки без даты подачи или с нераспознанной датой в окно не попадают.
func FilterApplications(apps []ApplicationRecord, req Request) []ApplicationRecord {
	from, to := req.Bounds()
	result := make([]ApplicationRecord, 0, len(apps))
	for _, app := range apps {
		submitted, ok := ParseDate(app.SubmittedDate)
		if !ok {
			continue
		}
		if submitted.Before(from) {
			continue
		}
		if !to.IsZero() && submitted.After(to) {
			continue
		}
		if !req.Filter.match(app) {
			continue
		}
		result = append(result, app)
	}
	return result
}
