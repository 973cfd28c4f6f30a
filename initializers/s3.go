package initializers

import (
	"context"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"

	"hr-screening-backend/config"
	s3client "hr-screening-backend/s3"
)

const s3PingTimeout = 10 * time.Second

// InitS3 клиент хранилища архивов отчетов; недоступность S3 не мешает старту,
// архивирование вернет ошибку при обращении
func InitS3() {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		panic(err.Error())
	}
	s3client.Client = minioClient

	ctx, cancel := context.WithTimeout(context.Background(), s3PingTimeout)
	defer cancel()
	logger := log.WithField("bucket", config.Conf.S3.BucketName)
	exists, err := minioClient.BucketExists(ctx, config.Conf.S3.BucketName)
	if err != nil {
		logger.WithError(err).Error("S3 соединение не удалось")
		return
	}
	if !exists {
		logger.Info("бакет архивов отчетов будет создан при первой выгрузке")
	}
	log.Info("S3 клиент успешно инициализирован")
}
