package initializers

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"hr-screening-backend/config"
	reportcache "hr-screening-backend/lib/analytics/report-cache"
)

var RedisClient *redis.Client

func InitRedis(ctx context.Context) {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     config.Conf.Redis.Addr,
		Password: config.Conf.Redis.Password,
		DB:       config.Conf.Redis.DB,
	})

	// без Redis отчеты строятся на каждый запрос
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := RedisClient.Ping(pingCtx).Err(); err != nil {
		log.WithError(err).Error("Redis недоступен: кэш отчетов отключен до восстановления соединения")
	}

	reportcache.NewHandler(RedisClient, time.Duration(config.Conf.Redis.ReportTTL)*time.Second)
	log.Info("Redis клиент успешно инициализирован")
}
