package feedback

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hr-screening-backend/db"
	"hr-screening-backend/lib/analytics/engine"
	reportcache "hr-screening-backend/lib/analytics/report-cache"
	"hr-screening-backend/lib/applicant"
	feedbackstore "hr-screening-backend/lib/feedback/store"
	initchecker "hr-screening-backend/lib/utils/init-checker"
	screeningapimodels "hr-screening-backend/models/api/screening"
	dbmodels "hr-screening-backend/models/db"
)

type Provider interface {
	Create(ctx context.Context, request screeningapimodels.FeedbackRequest) (screeningapimodels.FeedbackView, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:             feedbackstore.NewInstance(db.DB),
		applicantProvider: applicant.Instance,
		cache:             reportcache.Instance,
	}
	initchecker.CheckInit(
		"applicantProvider", instance.applicantProvider,
		"cache", instance.cache,
	)
	Instance = instance
}

type impl struct {
	store             feedbackstore.Provider
	applicantProvider applicant.Provider
	cache             reportcache.Provider
}

// Create сохраняет отзыв ревьюера; прогноз берется из заявки, недостающие поля выводятся из решений
func (i impl) Create(ctx context.Context, request screeningapimodels.FeedbackRequest) (screeningapimodels.FeedbackView, error) {
	logger := log.WithField("application_id", request.ApplicationID)
	app, err := i.applicantProvider.Get(request.ApplicationID)
	if err != nil {
		return screeningapimodels.FeedbackView{}, err
	}
	agreement, category := engine.DeriveFeedback(app.AILabel, request.ReviewerDecision, request.Agreement, request.IssueCategory)
	rec := dbmodels.ReviewerFeedback{
		ApplicationID:    app.ID,
		AIPrediction:     app.AILabel,
		ReviewerDecision: request.ReviewerDecision,
		Agreement:        agreement,
		IssueCategory:    category,
		Comment:          request.Comment,
		ReviewedBy:       request.ReviewedBy,
	}
	rec.ID, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения отзыва ревьюера")
		return screeningapimodels.FeedbackView{}, errors.Wrap(err, "ошибка сохранения отзыва ревьюера")
	}
	if _, err = i.cache.BumpVersion(ctx); err != nil {
		logger.WithError(err).Warn("не удалось сбросить кэш отчетов")
	}
	logger.
		WithField("agreement", agreement).
		WithField("issue_category", category).
		Info("сохранен отзыв ревьюера")
	return screeningapimodels.FeedbackView{
		ID:            rec.ID,
		Agreement:     agreement,
		IssueCategory: category,
	}, nil
}
