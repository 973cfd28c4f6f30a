package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"

	"hr-screening-backend/config"
	"hr-screening-backend/db"
	filesdbstorage "hr-screening-backend/lib/file-storage/storage"
	initchecker "hr-screening-backend/lib/utils/init-checker"
	dbmodels "hr-screening-backend/models/db"
	s3client "hr-screening-backend/s3"
)

const reportsPrefix = "reports"

type Provider interface {
	UploadReport(ctx context.Context, rec dbmodels.ReportArchive, file []byte) (dbmodels.ReportArchive, error)
	GetFile(ctx context.Context, objectKey string) ([]byte, error)
	ListReports(limit int) ([]dbmodels.ReportArchive, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		s3client:   s3client.Client,
		bucketName: config.Conf.S3.BucketName,
		store:      filesdbstorage.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"s3client", instance.s3client,
		"db", db.DB,
	)
	Instance = instance
}

type impl struct {
	s3client   *minio.Client
	bucketName string
	store      filesdbstorage.Provider
}

// UploadReport сохраняет файл выгрузки в бакет и регистрирует его в БД
func (i impl) UploadReport(ctx context.Context, rec dbmodels.ReportArchive, file []byte) (dbmodels.ReportArchive, error) {
	if err := s3client.MakeBucket(ctx, i.s3client, i.bucketName); err != nil {
		return rec, errors.Wrap(err, "ошибка создания бакета")
	}
	rec.ObjectKey = objectKey(rec.FileName)
	rec.Size = int64(len(file))
	_, err := i.s3client.PutObject(ctx, i.bucketName, rec.ObjectKey, bytes.NewReader(file), rec.Size,
		minio.PutObjectOptions{ContentType: rec.ContentType})
	if err != nil {
		return rec, errors.Wrap(err, "ошибка загрузки файла в S3")
	}
	rec.ID, err = i.store.SaveFile(rec)
	if err != nil {
		return rec, errors.Wrap(err, "ошибка сохранения сведений о файле")
	}
	return rec, nil
}

func (i impl) GetFile(ctx context.Context, objectKey string) ([]byte, error) {
	obj, err := i.s3client.GetObject(ctx, i.bucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения файла из S3")
	}
	defer obj.Close()
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка чтения файла из S3")
	}
	return data, nil
}

func (i impl) ListReports(limit int) ([]dbmodels.ReportArchive, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	return i.store.List(limit)
}

func objectKey(fileName string) string {
	return fmt.Sprintf("%s/%s/%s", reportsPrefix, uuid.NewString(), fileName)
}
