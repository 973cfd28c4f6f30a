// Package engine builds screening analytics from an immutable snapshot of records.
//
// Every function here is pure: no I/O, no logging, no shared state. Loading the
// snapshot and reporting malformed records is the caller's job.
package engine

import (
	"strings"

	"hr-screening-backend/models"
)

type Education struct {
	DegreeLevel    string `json:"degree_level"`
	DegreeName     string `json:"degree_name,omitempty"`
	Major          string `json:"major,omitempty"`
	Institution    string `json:"institution,omitempty"`
	GraduationDate string `json:"graduation_date,omitempty"`
}

type MQResult struct {
	Requirement string          `json:"requirement"`
	Status      models.MQStatus `json:"status"`
	Confidence  int             `json:"confidence" validate:"min=0,max=100"`
	Evidence    string          `json:"evidence"`
}

// ApplicationRecord одна заявка кандидата. Даты хранятся строками в том виде,
// в котором пришли из хранилища, разбор выполняется при агрегации.
type ApplicationRecord struct {
	ID                      string                   `json:"id"`
	JobClass                string                   `json:"job_class"`
	SubmittedDate           string                   `json:"submitted_date"`
	ReviewedDate            string                   `json:"reviewed_date,omitempty"`
	Status                  models.ApplicationStatus `json:"status"`
	AILabel                 models.AILabel           `json:"ai_label"`
	Confidence              int                      `json:"confidence" validate:"min=0,max=100"`
	TotalExperienceYears    *float64                 `json:"total_experience_years,omitempty" validate:"omitempty,gte=0"`
	RelevantExperienceYears *float64                 `json:"relevant_experience_years,omitempty" validate:"omitempty,gte=0"`
	Education               []Education              `json:"education,omitempty" validate:"dive"`
	MQResults               []MQResult               `json:"mq_results,omitempty" validate:"dive"`
	ReviewedBy              string                   `json:"reviewed_by,omitempty"`
}

// IsReviewed наличие ревьюера означает, что по заявке есть решение человека
func (a ApplicationRecord) IsReviewed() bool {
	return strings.TrimSpace(a.ReviewedBy) != ""
}

// HumanLabel решение ревьюера в терминах меток классификатора
func (a ApplicationRecord) HumanLabel() models.AILabel {
	return HumanLabel(a.Status)
}

func (a ApplicationRecord) experienceYears() float64 {
	if a.TotalExperienceYears == nil {
		return 0
	}
	return *a.TotalExperienceYears
}

type JobRecord struct {
	JobClass              string   `json:"job_class" validate:"required"`
	Department            string   `json:"department,omitempty"`
	MinimumQualifications []string `json:"minimum_qualifications,omitempty"`
}

type CandidateSourceRecord struct {
	SourceChannel    string  `json:"source_channel" validate:"required"`
	CostPerApplicant float64 `json:"cost_per_applicant" validate:"gte=0"`
	ConvertedToHire  bool    `json:"converted_to_hire"`
}

type FeedbackRecord struct {
	ApplicationID    string                   `json:"application_id"`
	AIPrediction     models.AILabel           `json:"ai_prediction"`
	ReviewerDecision models.AILabel           `json:"reviewer_decision"`
	Agreement        models.FeedbackAgreement `json:"agreement"`
	IssueCategory    models.IssueCategory     `json:"issue_category"`
}

// Snapshot неизменяемый набор записей, по которому строится отчет
type Snapshot struct {
	Applications []ApplicationRecord     `json:"applications"`
	Jobs         []JobRecord             `json:"jobs"`
	Feedback     []FeedbackRecord        `json:"feedback"`
	Sources      []CandidateSourceRecord `json:"sources"`
}

// HumanLabel фиксированное соответствие статуса заявки и метки:
// qualified и not_qualified отображаются напрямую, все прочие статусы в Needs Review.
func HumanLabel(status models.ApplicationStatus) models.AILabel {
	switch status {
	case models.ApplicationStatusQualified:
		return models.AILabelQualified
	case models.ApplicationStatusNotQualified:
		return models.AILabelNotQualified
	}
	return models.AILabelNeedsReview
}

const (
	unknownSentinel      = "Unknown"
	notSpecifiedSentinel = "Not Specified"
)

func orSentinel(value, sentinel string) string {
	if strings.TrimSpace(value) == "" {
		return sentinel
	}
	return value
}
