package jobprovider

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	reportcache "hr-screening-backend/lib/analytics/report-cache"
	dictapimodels "hr-screening-backend/models/api/dict"
	dbmodels "hr-screening-backend/models/db"
)

type fakeStore struct {
	saved []dbmodels.Job
	err   error
}

func (f *fakeStore) Save(rec dbmodels.Job) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	rec.ID = "j-1"
	f.saved = append(f.saved, rec)
	return rec.ID, nil
}

func (f *fakeStore) List() ([]dbmodels.Job, error) {
	return f.saved, f.err
}

func newTestProvider(t *testing.T) (impl, *fakeStore, reportcache.Provider) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := &fakeStore{}
	cache := reportcache.NewInstance(client, time.Minute)
	return impl{store: store, cache: cache}, store, cache
}

func TestSave(t *testing.T) {
	ctx := context.Background()

	t.Run(`job saved and cache invalidated check`, func(t *testing.T) {
		provider, store, cache := newTestProvider(t)
		id, err := provider.Save(ctx, dictapimodels.JobData{
			JobClass:              "Analyst",
			Department:            "Finance",
			MinimumQualifications: []string{"SQL"},
		})
		require.NoError(t, err)
		require.Equal(t, "j-1", id)
		require.Equal(t, "Finance", store.saved[0].Department)

		version, err := cache.Version(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 1, version)

		list, err := provider.List()
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "Analyst", list[0].JobClass)
		require.Equal(t, []string{"SQL"}, list[0].MinimumQualifications)
	})

	t.Run(`store error check`, func(t *testing.T) {
		provider, store, cache := newTestProvider(t)
		store.err = errors.New("db down")
		_, err := provider.Save(ctx, dictapimodels.JobData{JobClass: "Analyst"})
		require.Error(t, err)
		version, err := cache.Version(ctx)
		require.NoError(t, err)
		require.Zero(t, version)
	})
}

func TestJobDataValidate(t *testing.T) {
	t.Run(`empty job class check`, func(t *testing.T) {
		require.EqualError(t, dictapimodels.JobData{JobClass: "  "}.Validate(), "не указан класс должности")
	})
}
