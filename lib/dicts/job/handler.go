package jobprovider

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"hr-screening-backend/db"
	reportcache "hr-screening-backend/lib/analytics/report-cache"
	jobstore "hr-screening-backend/lib/dicts/job/store"
	initchecker "hr-screening-backend/lib/utils/init-checker"
	dictapimodels "hr-screening-backend/models/api/dict"
	dbmodels "hr-screening-backend/models/db"
)

type Provider interface {
	Save(ctx context.Context, request dictapimodels.JobData) (id string, err error)
	List() (list []dictapimodels.JobView, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: jobstore.NewInstance(db.DB),
		cache: reportcache.Instance,
	}
	initchecker.CheckInit(
		"cache", instance.cache,
	)
	Instance = instance
}

type impl struct {
	store jobstore.Provider
	cache reportcache.Provider
}

// Save отдел вакансии влияет на разбивку по отделам, поэтому кэш отчетов сбрасывается
func (i impl) Save(ctx context.Context, request dictapimodels.JobData) (id string, err error) {
	logger := log.WithField("job_class", request.JobClass)
	rec := dbmodels.Job{
		JobClass:              request.JobClass,
		Department:            request.Department,
		MinimumQualifications: request.MinimumQualifications,
	}
	id, err = i.store.Save(rec)
	if err != nil {
		logger.
			WithField("request", fmt.Sprintf("%+v", request)).
			WithError(err).
			Error("ошибка сохранения вакансии")
		return "", err
	}
	if _, err = i.cache.BumpVersion(ctx); err != nil {
		logger.WithError(err).Warn("не удалось сбросить кэш отчетов")
	}
	logger.
		WithField("rec_id", id).
		Info("сохранена вакансия")
	return id, nil
}

func (i impl) List() (list []dictapimodels.JobView, err error) {
	recList, err := i.store.List()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка вакансий")
		return nil, err
	}
	result := make([]dictapimodels.JobView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, dictapimodels.JobConvert(rec))
	}
	return result, nil
}
