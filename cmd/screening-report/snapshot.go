package main

import (
	"encoding/json"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hr-screening-backend/lib/analytics/engine"
)

var validate = validator.New()

// loadSnapshot читает снимок из файла. Записи с нарушением ограничений пропускаются,
// метки и статусы не проверяются: неизвестные значения учитываются движком как invalidRecords.
func loadSnapshot(path string) (engine.Snapshot, int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return engine.Snapshot{}, 0, errors.Wrapf(err, "ошибка чтения снимка %s", path)
	}
	var raw engine.Snapshot
	if err = json.Unmarshal(content, &raw); err != nil {
		return engine.Snapshot{}, 0, errors.Wrap(err, "ошибка разбора снимка")
	}

	skipped := 0
	snapshot := engine.Snapshot{
		Applications: keepValid(raw.Applications, "application", &skipped),
		Jobs:         keepValid(raw.Jobs, "job", &skipped),
		Feedback:     keepValid(raw.Feedback, "feedback", &skipped),
		Sources:      keepValid(raw.Sources, "source", &skipped),
	}
	return snapshot, skipped, nil
}

func keepValid[T any](records []T, kind string, skipped *int) []T {
	result := make([]T, 0, len(records))
	for idx, rec := range records {
		if err := validate.Struct(rec); err != nil {
			log.
				WithField("kind", kind).
				WithField("index", idx).
				WithError(err).
				Warn("запись снимка пропущена")
			*skipped++
			continue
		}
		result = append(result, rec)
	}
	return result
}
