package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
		// лимит тела запросов на прием заявок, байт
		MaxPayloadBytes int64 `default:"1048576" env:"APP_MAX_PAYLOAD_BYTES"`
		// адрес для уведомлений об ошибках 5xx, пусто - не отправлять
		ErrNotifyAddr string `default:"" env:"APP_ERR_NOTIFY_ADDR"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"hr-screening" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Redis struct {
		Addr      string `default:"127.0.0.1:6379" env:"REDIS_ADDR"`
		Password  string `default:"" env:"REDIS_PASSWORD"`
		DB        int    `default:"0" env:"REDIS_DB"`
		ReportTTL int    `default:"600" env:"REDIS_REPORT_TTL"` // сек
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		BucketName      string `default:"screening-reports" env:"S3_BUCKET_NAME"`
	}
	Analytics struct {
		DefaultDays    int `default:"30" env:"ANALYTICS_DEFAULT_DAYS"`
		WarmUpInterval int `default:"900" env:"ANALYTICS_WARMUP_INTERVAL"` // сек
		// ограничение на число заявок, загружаемых в снимок
		SnapshotLimit int `default:"50000" env:"ANALYTICS_SNAPSHOT_LIMIT"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
