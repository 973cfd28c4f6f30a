package filesdbstorage

import (
	"gorm.io/gorm"

	dbmodels "hr-screening-backend/models/db"
)

type Provider interface {
	SaveFile(rec dbmodels.ReportArchive) (id string, err error)
	List(limit int) ([]dbmodels.ReportArchive, error)
}

type impl struct {
	db *gorm.DB
}

func (i impl) SaveFile(rec dbmodels.ReportArchive) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(limit int) (list []dbmodels.ReportArchive, err error) {
	list = []dbmodels.ReportArchive{}
	err = i.db.
		Model(&dbmodels.ReportArchive{}).
		Order("created_at desc").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func NewInstance(db *gorm.DB) Provider {
	return &impl{db: db}
}
