package reportcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"hr-screening-backend/lib/analytics/engine"
	analyticsapimodels "hr-screening-backend/models/api/analytics"
)

const (
	keyPrefix  = "screening:report"
	versionKey = keyPrefix + ":version"
)

// Provider кэш готовых отчетов. Ключ включает версию снимка,
// поэтому любое изменение данных делает старые записи недостижимыми.
type Provider interface {
	Get(ctx context.Context, version int64, req analyticsapimodels.ReportRequest) (*engine.Report, error)
	Set(ctx context.Context, version int64, req analyticsapimodels.ReportRequest, report engine.Report) error
	Version(ctx context.Context) (int64, error)
	BumpVersion(ctx context.Context) (int64, error)
}

var Instance Provider

func NewHandler(client *redis.Client, ttl time.Duration) {
	Instance = NewInstance(client, ttl)
}

func NewInstance(client *redis.Client, ttl time.Duration) Provider {
	return &impl{
		client: client,
		ttl:    ttl,
	}
}

type impl struct {
	client *redis.Client
	ttl    time.Duration
}

// Get nil без ошибки, если отчета в кэше нет
func (i impl) Get(ctx context.Context, version int64, req analyticsapimodels.ReportRequest) (*engine.Report, error) {
	key, err := Key(version, req)
	if err != nil {
		return nil, err
	}
	data, err := i.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "ошибка чтения отчета из кэша")
	}
	report := engine.Report{}
	if err = json.Unmarshal(data, &report); err != nil {
		return nil, errors.Wrap(err, "ошибка разбора отчета из кэша")
	}
	return &report, nil
}

func (i impl) Set(ctx context.Context, version int64, req analyticsapimodels.ReportRequest, report engine.Report) error {
	key, err := Key(version, req)
	if err != nil {
		return err
	}
	data, err := json.Marshal(report)
	if err != nil {
		return errors.Wrap(err, "ошибка сериализации отчета")
	}
	if err = i.client.Set(ctx, key, data, i.ttl).Err(); err != nil {
		return errors.Wrap(err, "ошибка записи отчета в кэш")
	}
	return nil
}

func (i impl) Version(ctx context.Context) (int64, error) {
	version, err := i.client.Get(ctx, versionKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, errors.Wrap(err, "ошибка чтения версии снимка")
	}
	return version, nil
}

func (i impl) BumpVersion(ctx context.Context) (int64, error) {
	version, err := i.client.Incr(ctx, versionKey).Result()
	if err != nil {
		return 0, errors.Wrap(err, "ошибка обновления версии снимка")
	}
	return version, nil
}

// Key ключ отчета: версия снимка и хэш параметров запроса
func Key(version int64, req analyticsapimodels.ReportRequest) (string, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return "", errors.Wrap(err, "ошибка сериализации запроса отчета")
	}
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s:v%d:%s", keyPrefix, version, hex.EncodeToString(sum[:])), nil
}
