package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"hr-screening-backend/lib/analytics/engine"
)

// Job вакансия (класс должности) и ее отдел
type Job struct {
	BaseModel
	JobClass              string  `gorm:"type:varchar(255);uniqueIndex"`
	Department            string  `gorm:"type:varchar(255)"`
	MinimumQualifications Strings `gorm:"type:jsonb"`
}

type Strings []string

func (j Strings) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *Strings) Scan(value interface{}) error {
	return scanJSON(value, j)
}

func (j Job) ToRecord() engine.JobRecord {
	return engine.JobRecord{
		JobClass:              j.JobClass,
		Department:            j.Department,
		MinimumQualifications: j.MinimumQualifications,
	}
}
