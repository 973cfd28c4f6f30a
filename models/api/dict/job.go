package dictapimodels

import (
	"strings"

	"github.com/pkg/errors"

	dbmodels "hr-screening-backend/models/db"
)

type JobData struct {
	JobClass              string   `json:"job_class"`              // класс должности
	Department            string   `json:"department"`             // отдел
	MinimumQualifications []string `json:"minimum_qualifications"` // минимальные требования
}

type JobView struct {
	JobData
	ID string `json:"id"`
}

func (j JobData) Validate() error {
	if strings.TrimSpace(j.JobClass) == "" {
		return errors.New("не указан класс должности")
	}
	return nil
}

func JobConvert(rec dbmodels.Job) JobView {
	return JobView{
		JobData: JobData{
			JobClass:              rec.JobClass,
			Department:            rec.Department,
			MinimumQualifications: rec.MinimumQualifications,
		},
		ID: rec.ID,
	}
}
