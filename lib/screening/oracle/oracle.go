// Package oracle проверяет ответ внешнего классификатора резюме до сохранения заявки.
package oracle

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"

	"hr-screening-backend/lib/analytics/engine"
	"hr-screening-backend/models"
)

// Result разобранный ответ классификатора
type Result struct {
	ApplicantName           string             `json:"applicant_name"`
	Email                   string             `json:"email,omitempty"`
	Phone                   string             `json:"phone,omitempty"`
	Education               []engine.Education `json:"education,omitempty"`
	MQResults               []mqResult         `json:"mq_results"`
	MatchPercentage         *float64           `json:"match_percentage,omitempty"`
	RelevantExperienceYears *float64           `json:"relevant_experience_years,omitempty"`
	TotalExperienceYears    *float64           `json:"total_experience_years,omitempty"`
	ExecutiveSummary        string             `json:"executive_summary,omitempty"`
	AILabel                 models.AILabel     `json:"ai_label"`
	Confidence              float64            `json:"confidence"`
	Reasoning               string             `json:"ai_reasoning,omitempty"`
}

// уверенность в ответе может быть дробной, в заявке хранится целым числом
type mqResult struct {
	Requirement string          `json:"requirement"`
	Status      models.MQStatus `json:"status"`
	Evidence    string          `json:"evidence"`
	Confidence  float64         `json:"confidence"`
}

func (r Result) ConfidenceScore() int {
	return int(math.Round(r.Confidence))
}

func (r Result) MQ() []engine.MQResult {
	result := make([]engine.MQResult, 0, len(r.MQResults))
	for _, mq := range r.MQResults {
		result = append(result, engine.MQResult{
			Requirement: mq.Requirement,
			Status:      mq.Status,
			Confidence:  int(math.Round(mq.Confidence)),
			Evidence:    mq.Evidence,
		})
	}
	return result
}

// FieldError нарушение контракта в конкретном поле
type FieldError struct {
	Field   string
	Message string
}

type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	parts := make([]string, 0, len(ve.Errors))
	for _, err := range ve.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "ответ классификатора не соответствует контракту: " + strings.Join(parts, "; ")
}

var schema *gojsonschema.Schema

func init() {
	var err error
	schema, err = gojsonschema.NewSchema(gojsonschema.NewStringLoader(resultSchema))
	if err != nil {
		panic(errors.Wrap(err, "ошибка загрузки схемы ответа классификатора"))
	}
}

// Parse проверяет ответ по схеме и разбирает его
func Parse(raw []byte) (Result, error) {
	validation, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return Result{}, errors.Wrap(err, "ошибка разбора ответа классификатора")
	}
	if !validation.Valid() {
		ve := &ValidationError{}
		for _, desc := range validation.Errors() {
			ve.Errors = append(ve.Errors, FieldError{
				Field:   desc.Field(),
				Message: desc.Description(),
			})
		}
		return Result{}, ve
	}
	var result Result
	if err = json.Unmarshal(raw, &result); err != nil {
		return Result{}, errors.Wrap(err, "ошибка разбора ответа классификатора")
	}
	return result, nil
}
