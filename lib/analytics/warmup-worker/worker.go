package warmupworker

import (
	"context"
	"time"

	"hr-screening-backend/lib/analytics"
	baseworker "hr-screening-backend/lib/utils/base-worker"
)

func StartWorker(ctx context.Context, interval time.Duration) {
	i := &impl{
		BaseImpl:  *baseworker.NewInstance("ReportWarmUpWorker", 30*time.Second, interval),
		analytics: analytics.Instance,
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	analytics analytics.Provider
}

func (i impl) handle(ctx context.Context) {
	if err := i.analytics.WarmUp(ctx); err != nil {
		i.GetLogger().WithError(err).Error("Ошибка прогрева кэша отчетов")
	}
}
