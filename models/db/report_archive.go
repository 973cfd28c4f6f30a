package dbmodels

import "time"

// ReportArchive выгрузка отчета, сохраненная в S3
type ReportArchive struct {
	BaseModel
	ObjectKey     string `gorm:"type:varchar(255);uniqueIndex"`
	FileName      string `gorm:"type:varchar(255)"`
	ContentType   string `gorm:"type:varchar(255)"`
	Size          int64
	TimeRangeDays int
	GeneratedAt   time.Time
}
