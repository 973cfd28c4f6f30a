package applicant

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"hr-screening-backend/db"
	reportcache "hr-screening-backend/lib/analytics/report-cache"
	applicantstore "hr-screening-backend/lib/applicant/store"
	candidatesourcestore "hr-screening-backend/lib/candidate-source/store"
	"hr-screening-backend/lib/screening/oracle"
	initchecker "hr-screening-backend/lib/utils/init-checker"
	"hr-screening-backend/models"
	screeningapimodels "hr-screening-backend/models/api/screening"
	dbmodels "hr-screening-backend/models/db"
)

var ErrNotFound = errors.New("заявка не найдена")

type Provider interface {
	Ingest(ctx context.Context, request screeningapimodels.ApplicationRequest) (screeningapimodels.ApplicationView, error)
	Review(ctx context.Context, id string, request screeningapimodels.ReviewRequest) (screeningapimodels.ApplicationView, error)
	Get(id string) (dbmodels.ScreeningApplication, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:       applicantstore.NewInstance(db.DB),
		cache:       reportcache.Instance,
		transaction: gormTransaction(db.DB),
		now:         time.Now,
	}
	initchecker.CheckInit(
		"cache", instance.cache,
	)
	Instance = instance
}

type impl struct {
	store       applicantstore.Provider
	cache       reportcache.Provider
	transaction transactionFunc
	now         func() time.Time
}

// txStores хранилища, работающие в рамках одной транзакции
type txStores struct {
	applications applicantstore.Provider
	sources      candidatesourcestore.Provider
}

type transactionFunc func(fn func(stores txStores) error) error

func gormTransaction(DB *gorm.DB) transactionFunc {
	return func(fn func(stores txStores) error) error {
		return DB.Transaction(func(tx *gorm.DB) error {
			return fn(txStores{
				applications: applicantstore.NewInstance(tx),
				sources:      candidatesourcestore.NewInstance(tx),
			})
		})
	}
}

// Ingest сохраняет заявку с результатом классификатора в статусе pending
func (i impl) Ingest(ctx context.Context, request screeningapimodels.ApplicationRequest) (screeningapimodels.ApplicationView, error) {
	logger := log.WithField("job_class", request.JobClass)
	result, err := oracle.Parse(request.Result)
	if err != nil {
		logger.WithError(err).Warn("ответ классификатора отклонен")
		return screeningapimodels.ApplicationView{}, err
	}
	submitted := request.Submitted(i.now())
	rec := dbmodels.ScreeningApplication{
		JobClass:                request.JobClass,
		ApplicantName:           result.ApplicantName,
		SubmittedDate:           &submitted,
		Status:                  models.ApplicationStatusPending,
		AILabel:                 result.AILabel,
		Confidence:              result.ConfidenceScore(),
		TotalExperienceYears:    result.TotalExperienceYears,
		RelevantExperienceYears: result.RelevantExperienceYears,
		Education:               result.Education,
		MQResults:               result.MQ(),
		Reasoning:               result.Reasoning,
	}
	err = i.transaction(func(stores txStores) error {
		id, err := stores.applications.Create(rec)
		if err != nil {
			return errors.Wrap(err, "ошибка сохранения заявки")
		}
		if request.Source != nil {
			_, err = stores.sources.Create(dbmodels.CandidateSource{
				ApplicationID:    id,
				SourceChannel:    request.Source.Channel,
				CostPerApplicant: request.Source.CostPerApplicant,
			})
			if err != nil {
				return errors.Wrap(err, "ошибка сохранения источника кандидата")
			}
		}
		rec.ID = id
		return nil
	})
	if err != nil {
		logger.WithError(err).Error("заявка не сохранена")
		return screeningapimodels.ApplicationView{}, err
	}
	logger = logger.WithField("rec_id", rec.ID)
	i.invalidate(ctx, logger)
	logger.
		WithField("ai_label", rec.AILabel).
		Info("заявка сохранена")
	return applicationConvert(rec), nil
}

// Review фиксирует решение ревьюера; положительное решение считается наймом для источника кандидата
func (i impl) Review(ctx context.Context, id string, request screeningapimodels.ReviewRequest) (screeningapimodels.ApplicationView, error) {
	logger := log.WithField("rec_id", id)
	rec, err := i.Get(id)
	if err != nil {
		return screeningapimodels.ApplicationView{}, err
	}
	reviewed := i.now().UTC()
	updMap := map[string]interface{}{
		"status":        request.Status,
		"reviewed_by":   request.ReviewedBy,
		"reviewed_date": reviewed,
	}
	err = i.transaction(func(stores txStores) error {
		if err := stores.applications.Update(id, updMap); err != nil {
			return errors.Wrap(err, "ошибка сохранения решения по заявке")
		}
		converted := request.Status == models.ApplicationStatusQualified
		if err := stores.sources.SetConverted(id, converted); err != nil {
			return errors.Wrap(err, "ошибка обновления источника кандидата")
		}
		return nil
	})
	if err != nil {
		logger.WithError(err).Error("решение по заявке не сохранено")
		return screeningapimodels.ApplicationView{}, err
	}
	i.invalidate(ctx, logger)
	rec.Status = request.Status
	rec.ReviewedBy = request.ReviewedBy
	rec.ReviewedDate = &reviewed
	logger.
		WithField("status", request.Status).
		WithField("reviewed_by", request.ReviewedBy).
		Info("по заявке принято решение")
	return applicationConvert(rec), nil
}

func (i impl) Get(id string) (dbmodels.ScreeningApplication, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("ошибка получения заявки")
		return dbmodels.ScreeningApplication{}, errors.Wrap(err, "ошибка получения заявки")
	}
	if rec == nil {
		return dbmodels.ScreeningApplication{}, ErrNotFound
	}
	return *rec, nil
}

// invalidate вызывается только после фиксации транзакции; новая версия снимка делает закэшированные отчеты недоступными
func (i impl) invalidate(ctx context.Context, logger *log.Entry) {
	if _, err := i.cache.BumpVersion(ctx); err != nil {
		logger.WithError(err).Warn("не удалось сбросить кэш отчетов")
	}
}

func applicationConvert(rec dbmodels.ScreeningApplication) screeningapimodels.ApplicationView {
	return screeningapimodels.ApplicationView{
		ID:         rec.ID,
		AILabel:    rec.AILabel,
		Confidence: rec.Confidence,
		Status:     rec.Status,
	}
}
