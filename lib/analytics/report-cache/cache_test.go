package reportcache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"hr-screening-backend/lib/analytics/engine"
	"hr-screening-backend/models"
	analyticsapimodels "hr-screening-backend/models/api/analytics"
)

func newTestCache(t *testing.T) (Provider, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewInstance(client, time.Minute), mr
}

func sampleReport() engine.Report {
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	return engine.Build(engine.Snapshot{
		Applications: []engine.ApplicationRecord{{
			ID:            "a-1",
			JobClass:      "Analyst",
			SubmittedDate: "2024-06-20",
			Status:        models.ApplicationStatusQualified,
			AILabel:       models.AILabelQualified,
			Confidence:    90,
			ReviewedBy:    "hr",
		}},
	}, engine.Request{Days: 30, Now: now})
}

func TestReportCache(t *testing.T) {
	ctx := context.Background()
	req := analyticsapimodels.ReportRequest{Days: 30}

	t.Run(`miss then hit check`, func(t *testing.T) {
		cache, _ := newTestCache(t)
		cached, err := cache.Get(ctx, 0, req)
		require.NoError(t, err)
		require.Nil(t, cached)

		report := sampleReport()
		require.NoError(t, cache.Set(ctx, 0, req, report))
		cached, err = cache.Get(ctx, 0, req)
		require.NoError(t, err)
		require.Equal(t, report, *cached)
	})

	t.Run(`version bump invalidates check`, func(t *testing.T) {
		cache, _ := newTestCache(t)
		version, err := cache.Version(ctx)
		require.NoError(t, err)
		require.Equal(t, int64(0), version)
		require.NoError(t, cache.Set(ctx, version, req, sampleReport()))

		version, err = cache.BumpVersion(ctx)
		require.NoError(t, err)
		require.Equal(t, int64(1), version)
		cached, err := cache.Get(ctx, version, req)
		require.NoError(t, err)
		require.Nil(t, cached)
	})

	t.Run(`ttl applied check`, func(t *testing.T) {
		cache, mr := newTestCache(t)
		require.NoError(t, cache.Set(ctx, 0, req, sampleReport()))
		key, err := Key(0, req)
		require.NoError(t, err)
		require.Equal(t, time.Minute, mr.TTL(key))
		mr.FastForward(2 * time.Minute)
		cached, err := cache.Get(ctx, 0, req)
		require.NoError(t, err)
		require.Nil(t, cached)
	})

	t.Run(`different requests different keys check`, func(t *testing.T) {
		k1, err := Key(0, analyticsapimodels.ReportRequest{Days: 30})
		require.NoError(t, err)
		k2, err := Key(0, analyticsapimodels.ReportRequest{Days: 30, Granularity: models.GranularityMonth})
		require.NoError(t, err)
		require.NotEqual(t, k1, k2)
		require.Contains(t, k1, "screening:report:v0:")
	})

	t.Run(`redis unavailable check`, func(t *testing.T) {
		cache, mr := newTestCache(t)
		mr.Close()
		_, err := cache.Get(ctx, 0, req)
		require.Error(t, err)
	})
}
