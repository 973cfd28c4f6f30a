package feedbackstore

import (
	"gorm.io/gorm"

	dbmodels "hr-screening-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ReviewerFeedback) (id string, err error)
	List() ([]dbmodels.ReviewerFeedback, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ReviewerFeedback) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List() (list []dbmodels.ReviewerFeedback, err error) {
	list = []dbmodels.ReviewerFeedback{}
	err = i.db.
		Model(&dbmodels.ReviewerFeedback{}).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
