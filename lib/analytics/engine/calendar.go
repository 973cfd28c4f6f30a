package engine

import (
	"strings"
	"time"

	"hr-screening-backend/models"
)

// Все даты приводятся к UTC. Неделя начинается в понедельник 00:00 (ISO).
const (
	weekKeyLayout  = "2006-01-02"
	monthKeyLayout = "2006-01"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate разбирает дату записи. false для пустой или нераспознанной строки.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func MonthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// PeriodKey ключ корзины; ключи одной гранулярности сортируются хронологически как строки
func PeriodKey(t time.Time, granularity models.Granularity) string {
	if granularity == models.GranularityMonth {
		return MonthStart(t).Format(monthKeyLayout)
	}
	return WeekStart(t).Format(weekKeyLayout)
}

// decisionSeconds время от подачи до решения. false если одной из дат нет
// или решение датировано раньше подачи.
func decisionSeconds(app ApplicationRecord) (int64, bool) {
	submitted, ok := ParseDate(app.SubmittedDate)
	if !ok {
		return 0, false
	}
	reviewed, ok := ParseDate(app.ReviewedDate)
	if !ok {
		return 0, false
	}
	if reviewed.Before(submitted) {
		return 0, false
	}
	return int64(reviewed.Sub(submitted) / time.Second), true
}
