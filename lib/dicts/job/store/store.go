package jobstore

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "hr-screening-backend/models/db"
)

type Provider interface {
	Save(rec dbmodels.Job) (id string, err error)
	List() ([]dbmodels.Job, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Save создает вакансию или обновляет отдел существующей с тем же job_class
func (i impl) Save(rec dbmodels.Job) (id string, err error) {
	err = i.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "job_class"}},
			DoUpdates: clause.AssignmentColumns([]string{"department", "minimum_qualifications", "updated_at"}),
		}).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List() (list []dbmodels.Job, err error) {
	list = []dbmodels.Job{}
	err = i.db.
		Model(&dbmodels.Job{}).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
