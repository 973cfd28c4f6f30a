package jsonexport

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"hr-screening-backend/lib/analytics/engine"
)

const ContentType = "application/json"

// FileName имя файла выгрузки по дате формирования отчета
func FileName(report engine.Report) string {
	date := time.Now().UTC()
	if generatedAt, err := time.Parse(time.RFC3339, report.GeneratedAt); err == nil {
		date = generatedAt
	}
	return fmt.Sprintf("analytics-report-%s.json", date.Format("2006-01-02"))
}

func Encode(report engine.Report) ([]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "ошибка сериализации отчета")
	}
	return data, nil
}

// Decode обратное преобразование для Encode
func Decode(data []byte) (engine.Report, error) {
	report := engine.Report{}
	if err := json.Unmarshal(data, &report); err != nil {
		return engine.Report{}, errors.Wrap(err, "ошибка разбора отчета")
	}
	return report, nil
}
