package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"hr-screening-backend/lib/analytics/engine"
	"hr-screening-backend/models"
)

// ScreeningApplication заявка кандидата с результатом классификации
type ScreeningApplication struct {
	BaseModel
	JobClass                string                   `gorm:"type:varchar(255);index"`
	ApplicantName           string                   `gorm:"type:varchar(255)"`
	SubmittedDate           *time.Time               `gorm:"index"`
	ReviewedDate            *time.Time
	Status                  models.ApplicationStatus `gorm:"type:varchar(50);index"`
	AILabel                 models.AILabel           `gorm:"type:varchar(50)"`
	Confidence              int
	TotalExperienceYears    *float64
	RelevantExperienceYears *float64
	Education               EducationList `gorm:"type:jsonb"`
	MQResults               MQResultList  `gorm:"type:jsonb"`
	ReviewedBy              string        `gorm:"type:varchar(255)"`
	Reasoning               string
}

type EducationList []engine.Education

func (j EducationList) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *EducationList) Scan(value interface{}) error {
	return scanJSON(value, j)
}

type MQResultList []engine.MQResult

func (j MQResultList) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *MQResultList) Scan(value interface{}) error {
	return scanJSON(value, j)
}

func scanJSON(value interface{}, out interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.Errorf("неподдерживаемый тип jsonb: %T", value)
	}
	return json.Unmarshal(data, out)
}

// ToRecord запись для расчета аналитики; даты передаются в RFC3339
func (a ScreeningApplication) ToRecord() engine.ApplicationRecord {
	return engine.ApplicationRecord{
		ID:                      a.ID,
		JobClass:                a.JobClass,
		SubmittedDate:           formatDate(a.SubmittedDate),
		ReviewedDate:            formatDate(a.ReviewedDate),
		Status:                  a.Status,
		AILabel:                 a.AILabel,
		Confidence:              a.Confidence,
		TotalExperienceYears:    a.TotalExperienceYears,
		RelevantExperienceYears: a.RelevantExperienceYears,
		Education:               a.Education,
		MQResults:               a.MQResults,
		ReviewedBy:              a.ReviewedBy,
	}
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// SnapshotFilter ограничение выборки заявок окном отчета
type SnapshotFilter struct {
	From  time.Time
	To    *time.Time
	Limit int
}
