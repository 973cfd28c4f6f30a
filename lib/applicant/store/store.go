package applicantstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hr-screening-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ScreeningApplication) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.ScreeningApplication, err error)
	ListForAnalytics(filter dbmodels.SnapshotFilter) ([]dbmodels.ScreeningApplication, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ScreeningApplication) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.ScreeningApplication{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.ScreeningApplication, error) {
	rec := dbmodels.ScreeningApplication{}
	err := i.db.
		Model(&dbmodels.ScreeningApplication{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// ListForAnalytics заявки, поданные в окне отчета; без даты подачи не выбираются
func (i impl) ListForAnalytics(filter dbmodels.SnapshotFilter) (list []dbmodels.ScreeningApplication, err error) {
	list = []dbmodels.ScreeningApplication{}
	tx := i.db.
		Model(&dbmodels.ScreeningApplication{}).
		Where("submitted_date >= ?", filter.From.UTC())
	if filter.To != nil {
		tx = tx.Where("submitted_date <= ?", filter.To.UTC())
	}
	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}
	err = tx.
		Order("submitted_date desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

