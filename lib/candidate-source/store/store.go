package candidatesourcestore

import (
	"gorm.io/gorm"

	dbmodels "hr-screening-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.CandidateSource) (id string, err error)
	List() ([]dbmodels.CandidateSource, error)
	SetConverted(applicationID string, converted bool) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.CandidateSource) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List() (list []dbmodels.CandidateSource, err error) {
	list = []dbmodels.CandidateSource{}
	err = i.db.
		Model(&dbmodels.CandidateSource{}).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// SetConverted отмечает найм кандидата; заявки без источника пропускаются
func (i impl) SetConverted(applicationID string, converted bool) error {
	return i.db.
		Model(&dbmodels.CandidateSource{}).
		Where("application_id = ?", applicationID).
		Update("converted_to_hire", converted).
		Error
}
