package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "hr-screening-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Job{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Job")
	}
	if err := DB.AutoMigrate(&dbmodels.ScreeningApplication{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ScreeningApplication")
	}
	if err := DB.AutoMigrate(&dbmodels.CandidateSource{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры CandidateSource")
	}
	if err := DB.AutoMigrate(&dbmodels.ReviewerFeedback{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ReviewerFeedback")
	}
	if err := DB.AutoMigrate(&dbmodels.ReportArchive{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ReportArchive")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
