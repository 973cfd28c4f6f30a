package initializers

import (
	"context"
	"time"

	"hr-screening-backend/config"
	"hr-screening-backend/fiberlog"
	"hr-screening-backend/lib/analytics"
	warmupworker "hr-screening-backend/lib/analytics/warmup-worker"
	"hr-screening-backend/lib/applicant"
	jobprovider "hr-screening-backend/lib/dicts/job"
	xlsexport "hr-screening-backend/lib/export/xls"
	"hr-screening-backend/lib/feedback"
	filestorage "hr-screening-backend/lib/file-storage"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitRedis(ctx)

	xlsexport.NewHandler()
	filestorage.NewHandler()
	jobprovider.NewHandler()
	applicant.NewHandler()
	feedback.NewHandler()
	analytics.NewHandler()

	warmupworker.StartWorker(ctx, time.Duration(config.Conf.Analytics.WarmUpInterval)*time.Second)
}
