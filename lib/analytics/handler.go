package analytics

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hr-screening-backend/config"
	"hr-screening-backend/db"
	"hr-screening-backend/lib/analytics/engine"
	"hr-screening-backend/lib/analytics/metrics"
	reportcache "hr-screening-backend/lib/analytics/report-cache"
	applicantstore "hr-screening-backend/lib/applicant/store"
	candidatesourcestore "hr-screening-backend/lib/candidate-source/store"
	jobstore "hr-screening-backend/lib/dicts/job/store"
	jsonexport "hr-screening-backend/lib/export/json"
	pdfexport "hr-screening-backend/lib/export/pdf"
	xlsexport "hr-screening-backend/lib/export/xls"
	feedbackstore "hr-screening-backend/lib/feedback/store"
	filestorage "hr-screening-backend/lib/file-storage"
	"hr-screening-backend/lib/utils/helpers"
	initchecker "hr-screening-backend/lib/utils/init-checker"
	"hr-screening-backend/lib/utils/lock"
	analyticsapimodels "hr-screening-backend/models/api/analytics"
	dbmodels "hr-screening-backend/models/db"
)

const buildLockWait = 30 * time.Second

type Provider interface {
	Report(ctx context.Context, request analyticsapimodels.ReportRequest) (engine.Report, error)
	ExportJSON(ctx context.Context, request analyticsapimodels.ReportRequest) (data []byte, fileName string, err error)
	ExportXls(ctx context.Context, request analyticsapimodels.ReportRequest) (*bytes.Buffer, error)
	ExportPdf(ctx context.Context, request analyticsapimodels.ReportRequest) ([]byte, error)
	Archive(ctx context.Context, request analyticsapimodels.ReportRequest) (analyticsapimodels.ArchiveView, error)
	ListArchives(limit int) ([]analyticsapimodels.ArchiveView, error)
	WarmUp(ctx context.Context) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		applicantStore: applicantstore.NewInstance(db.DB),
		jobStore:       jobstore.NewInstance(db.DB),
		sourceStore:    candidatesourcestore.NewInstance(db.DB),
		feedbackStore:  feedbackstore.NewInstance(db.DB),
		cache:          reportcache.Instance,
		fileStorage:    filestorage.Instance,
		xlsExporter:    xlsexport.Instance,
		defaultDays:    config.Conf.Analytics.DefaultDays,
		snapshotLimit:  config.Conf.Analytics.SnapshotLimit,
		now:            time.Now,
	}
	initchecker.CheckInit(
		"cache", instance.cache,
		"fileStorage", instance.fileStorage,
		"xlsExporter", instance.xlsExporter,
	)
	Instance = instance
}

type impl struct {
	applicantStore applicantstore.Provider
	jobStore       jobstore.Provider
	sourceStore    candidatesourcestore.Provider
	feedbackStore  feedbackstore.Provider
	cache          reportcache.Provider
	fileStorage    filestorage.Provider
	xlsExporter    xlsexport.Provider
	defaultDays    int
	snapshotLimit  int
	now            func() time.Time
}

// Report отчет из кэша, при промахе или недоступности кэша строится заново
func (i impl) Report(ctx context.Context, request analyticsapimodels.ReportRequest) (engine.Report, error) {
	logger := log.
		WithField("days", request.Days).
		WithField("granularity", request.Granularity)

	version, err := i.cache.Version(ctx)
	cacheAvailable := err == nil
	if err != nil {
		logger.WithError(err).Warn("кэш отчетов недоступен")
		metrics.ReportCacheRequests.WithLabelValues(metrics.CacheError).Inc()
	} else {
		cached, err := i.cache.Get(ctx, version, request)
		switch {
		case err != nil:
			logger.WithError(err).Warn("ошибка чтения отчета из кэша")
			metrics.ReportCacheRequests.WithLabelValues(metrics.CacheError).Inc()
		case cached != nil:
			metrics.ReportCacheRequests.WithLabelValues(metrics.CacheHit).Inc()
			return *cached, nil
		default:
			metrics.ReportCacheRequests.WithLabelValues(metrics.CacheMiss).Inc()
		}
	}

	if !cacheAvailable {
		return i.build(request)
	}
	return i.buildAndStore(ctx, logger, version, request)
}

// buildAndStore одинаковые запросы ждут первого построения и берут отчет из кэша.
// Если блокировку дождаться не удалось, отчет строится без нее.
func (i impl) buildAndStore(ctx context.Context, logger *log.Entry, version int64, request analyticsapimodels.ReportRequest) (engine.Report, error) {
	key, err := reportcache.Key(version, request)
	if err != nil {
		return engine.Report{}, err
	}
	var report engine.Report
	success, err := lock.WithDelay(ctx, key, buildLockWait, func() error {
		if cached, _ := i.cache.Get(ctx, version, request); cached != nil {
			report = *cached
			return nil
		}
		var buildErr error
		report, buildErr = i.build(request)
		if buildErr != nil {
			return buildErr
		}
		if setErr := i.cache.Set(ctx, version, request, report); setErr != nil {
			logger.WithError(setErr).Warn("ошибка сохранения отчета в кэш")
		}
		return nil
	})
	if err != nil {
		return engine.Report{}, err
	}
	if !success {
		logger.Warn("не дождались построения отчета другим запросом")
		return i.build(request)
	}
	return report, nil
}

func (i impl) build(request analyticsapimodels.ReportRequest) (engine.Report, error) {
	req := request.ToEngineRequest(i.now(), i.defaultDays)
	snapshot, err := i.loadSnapshot(req)
	if err != nil {
		return engine.Report{}, err
	}
	start := time.Now()
	report := engine.Build(snapshot, req)
	metrics.ReportBuildDuration.
		WithLabelValues(string(report.Granularity)).
		Observe(time.Since(start).Seconds())

	if report.Stats.InvalidRecords > 0 {
		log.
			WithField("invalid_records", report.Stats.InvalidRecords).
			WithField("time_range_days", report.TimeRangeDays).
			Warn("в выборке есть заявки с неизвестной меткой или статусом")
		metrics.InvalidRecords.Add(float64(report.Stats.InvalidRecords))
	}
	return report, nil
}

func (i impl) loadSnapshot(req engine.Request) (engine.Snapshot, error) {
	from, to := req.Bounds()
	filter := dbmodels.SnapshotFilter{
		From:  from,
		Limit: i.snapshotLimit,
	}
	if !to.IsZero() {
		filter.To = &to
	}
	appList, err := i.applicantStore.ListForAnalytics(filter)
	if err != nil {
		return engine.Snapshot{}, errors.Wrap(err, "ошибка получения заявок")
	}
	if i.snapshotLimit > 0 && len(appList) >= i.snapshotLimit {
		// выборка идет от новых к старым, за лимитом остаются самые ранние заявки окна
		log.
			WithField("limit", i.snapshotLimit).
			WithField("from", from).
			Warn("выборка заявок обрезана лимитом, отчет построен по неполному окну")
		metrics.SnapshotTruncated.Inc()
	}
	jobList, err := i.jobStore.List()
	if err != nil {
		return engine.Snapshot{}, errors.Wrap(err, "ошибка получения вакансий")
	}
	sourceList, err := i.sourceStore.List()
	if err != nil {
		return engine.Snapshot{}, errors.Wrap(err, "ошибка получения источников кандидатов")
	}
	feedbackList, err := i.feedbackStore.List()
	if err != nil {
		return engine.Snapshot{}, errors.Wrap(err, "ошибка получения отзывов ревьюеров")
	}

	snapshot := engine.Snapshot{
		Applications: make([]engine.ApplicationRecord, 0, len(appList)),
		Jobs:         make([]engine.JobRecord, 0, len(jobList)),
		Sources:      make([]engine.CandidateSourceRecord, 0, len(sourceList)),
		Feedback:     make([]engine.FeedbackRecord, 0, len(feedbackList)),
	}
	for _, rec := range appList {
		snapshot.Applications = append(snapshot.Applications, rec.ToRecord())
	}
	for _, rec := range jobList {
		snapshot.Jobs = append(snapshot.Jobs, rec.ToRecord())
	}
	for _, rec := range sourceList {
		snapshot.Sources = append(snapshot.Sources, rec.ToRecord())
	}
	for _, rec := range feedbackList {
		snapshot.Feedback = append(snapshot.Feedback, rec.ToRecord())
	}
	metrics.SnapshotApplications.Set(float64(len(snapshot.Applications)))
	return snapshot, nil
}

func (i impl) ExportJSON(ctx context.Context, request analyticsapimodels.ReportRequest) (data []byte, fileName string, err error) {
	report, err := i.Report(ctx, request)
	if err != nil {
		return nil, "", err
	}
	data, err = jsonexport.Encode(report)
	if err != nil {
		return nil, "", err
	}
	metrics.ReportExports.WithLabelValues("json").Inc()
	return data, jsonexport.FileName(report), nil
}

func (i impl) ExportXls(ctx context.Context, request analyticsapimodels.ReportRequest) (*bytes.Buffer, error) {
	report, err := i.Report(ctx, request)
	if err != nil {
		return nil, err
	}
	buffer, err := i.xlsExporter.ExportReport(report)
	if err != nil {
		return nil, err
	}
	metrics.ReportExports.WithLabelValues("xlsx").Inc()
	return buffer, nil
}

func (i impl) ExportPdf(ctx context.Context, request analyticsapimodels.ReportRequest) ([]byte, error) {
	report, err := i.Report(ctx, request)
	if err != nil {
		return nil, err
	}
	file, err := pdfexport.GenerateSummary(report)
	if err != nil {
		return nil, err
	}
	metrics.ReportExports.WithLabelValues("pdf").Inc()
	return file, nil
}

// Archive выгружает отчет в JSON и сохраняет его в S3
func (i impl) Archive(ctx context.Context, request analyticsapimodels.ReportRequest) (analyticsapimodels.ArchiveView, error) {
	report, err := i.Report(ctx, request)
	if err != nil {
		return analyticsapimodels.ArchiveView{}, err
	}
	data, err := jsonexport.Encode(report)
	if err != nil {
		return analyticsapimodels.ArchiveView{}, err
	}
	generatedAt, _ := time.Parse(time.RFC3339, report.GeneratedAt)
	rec, err := i.fileStorage.UploadReport(ctx, dbmodels.ReportArchive{
		FileName:      jsonexport.FileName(report),
		ContentType:   jsonexport.ContentType,
		TimeRangeDays: report.TimeRangeDays,
		GeneratedAt:   generatedAt,
	}, data)
	if err != nil {
		log.
			WithField("time_range_days", report.TimeRangeDays).
			WithError(err).
			Error("ошибка архивации отчета")
		return analyticsapimodels.ArchiveView{}, err
	}
	metrics.ReportExports.WithLabelValues("archive").Inc()
	log.
		WithField("object_key", rec.ObjectKey).
		Info("отчет сохранен в архив")
	return archiveConvert(rec), nil
}

func (i impl) ListArchives(limit int) ([]analyticsapimodels.ArchiveView, error) {
	recList, err := i.fileStorage.ListReports(limit)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка архивных отчетов")
	}
	result := make([]analyticsapimodels.ArchiveView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, archiveConvert(rec))
	}
	return result, nil
}

// WarmUp заранее строит отчеты по стандартным окнам для текущей версии данных
func (i impl) WarmUp(ctx context.Context) error {
	for _, request := range analyticsapimodels.WarmUpRequests() {
		if helpers.IsContextDone(ctx) {
			return ctx.Err()
		}
		if _, err := i.Report(ctx, request); err != nil {
			return errors.Wrap(err, fmt.Sprintf("ошибка прогрева отчета за %v дней", request.Days))
		}
	}
	return nil
}

func archiveConvert(rec dbmodels.ReportArchive) analyticsapimodels.ArchiveView {
	return analyticsapimodels.ArchiveView{
		ID:            rec.ID,
		ObjectKey:     rec.ObjectKey,
		FileName:      rec.FileName,
		Size:          rec.Size,
		TimeRangeDays: rec.TimeRangeDays,
		GeneratedAt:   rec.GeneratedAt.UTC().Format(time.RFC3339),
	}
}
