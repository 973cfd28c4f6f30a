package analyticsapimodels

import (
	"time"

	"github.com/pkg/errors"

	"hr-screening-backend/lib/analytics/engine"
	"hr-screening-backend/models"
)

const dateLayout = "02.01.2006"

type ReportRequest struct {
	Days        int                 `json:"days"`        // окно отчета: 7, 30, 90 или 365 дней
	DateFrom    string              `json:"date_from"`   // начало произвольного периода, дд.мм.гггг
	DateTo      string              `json:"date_to"`     // конец произвольного периода (включительно), дд.мм.гггг
	Granularity models.Granularity  `json:"granularity"` // шаг рядов: week/month
	Filter      engine.RecordFilter `json:"filter"`      // фильтр заявок
}

func (r ReportRequest) Validate() error {
	if r.Days != 0 && !engine.IsAllowedWindow(r.Days) {
		return errors.New("недопустимое окно отчета, допустимо 7, 30, 90 или 365 дней")
	}
	if r.Granularity != "" && !r.Granularity.IsValid() {
		return errors.New("недопустимый шаг ряда, допустимо week или month")
	}
	if r.DateTo != "" && r.DateFrom == "" {
		return errors.New("не указано начало периода")
	}
	from, to, err := r.period()
	if err != nil {
		return err
	}
	if from != nil && to != nil && to.Before(*from) {
		return errors.New("конец периода раньше начала")
	}
	f := r.Filter
	if f.MinConfidence != nil && (*f.MinConfidence < 0 || *f.MinConfidence > 100) {
		return errors.New("минимальная уверенность должна быть от 0 до 100")
	}
	if f.MaxConfidence != nil && (*f.MaxConfidence < 0 || *f.MaxConfidence > 100) {
		return errors.New("максимальная уверенность должна быть от 0 до 100")
	}
	if f.MinConfidence != nil && f.MaxConfidence != nil && *f.MinConfidence > *f.MaxConfidence {
		return errors.New("минимальная уверенность больше максимальной")
	}
	for _, label := range f.AILabels {
		if !label.IsValid() {
			return errors.Errorf("неизвестная метка: %v", label)
		}
	}
	for _, status := range f.Statuses {
		if !status.IsValid() {
			return errors.Errorf("неизвестный статус: %v", status)
		}
	}
	return nil
}

func (r ReportRequest) period() (from, to *time.Time, err error) {
	if r.DateFrom != "" {
		date, err := time.Parse(dateLayout, r.DateFrom)
		if err != nil {
			return nil, nil, errors.New("некорректная дата начала периода")
		}
		from = &date
	}
	if r.DateTo != "" {
		date, err := time.Parse(dateLayout, r.DateTo)
		if err != nil {
			return nil, nil, errors.New("некорректная дата конца периода")
		}
		// включительно до конца дня
		date = date.Add(24*time.Hour - time.Second)
		to = &date
	}
	return from, to, nil
}

// ToEngineRequest параметры построения отчета на момент now.
// Запрос должен быть предварительно проверен Validate.
func (r ReportRequest) ToEngineRequest(now time.Time, defaultDays int) engine.Request {
	req := engine.Request{
		Days:        r.Days,
		Granularity: r.Granularity,
		Now:         now.UTC(),
		Filter:      r.Filter,
	}
	if req.Days == 0 {
		req.Days = defaultDays
	}
	if req.Granularity == "" {
		req.Granularity = models.GranularityWeek
	}
	req.From, req.To, _ = r.period()
	return req
}

// WarmUpRequests стандартные окна отчета, которые прогреваются в кэше
func WarmUpRequests() []ReportRequest {
	result := make([]ReportRequest, 0, len(engine.AllowedWindows))
	for _, days := range engine.AllowedWindows {
		result = append(result, ReportRequest{Days: days, Granularity: models.GranularityWeek})
	}
	return result
}

type ArchiveView struct {
	ID            string `json:"id"`
	ObjectKey     string `json:"object_key"`
	FileName      string `json:"file_name"`
	Size          int64  `json:"size"`
	TimeRangeDays int    `json:"time_range_days"`
	GeneratedAt   string `json:"generated_at"`
}
