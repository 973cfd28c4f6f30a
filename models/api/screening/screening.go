package screeningapimodels

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/pkg/errors"

	"hr-screening-backend/models"
)

const dateLayout = "02.01.2006"

type SourceData struct {
	Channel          string  `json:"channel"`            // канал привлечения
	CostPerApplicant float64 `json:"cost_per_applicant"` // стоимость кандидата
}

type ApplicationRequest struct {
	JobClass      string          `json:"job_class"`      // класс должности
	SubmittedDate string          `json:"submitted_date"` // дата подачи, дд.мм.гггг; по умолчанию текущая
	Source        *SourceData     `json:"source"`         // источник кандидата
	Result        json.RawMessage `json:"result"`         // ответ классификатора резюме
}

func (r ApplicationRequest) Validate() error {
	if strings.TrimSpace(r.JobClass) == "" {
		return errors.New("не указан класс должности")
	}
	if len(r.Result) == 0 {
		return errors.New("не указан результат классификации")
	}
	if r.SubmittedDate != "" {
		if _, err := time.Parse(dateLayout, r.SubmittedDate); err != nil {
			return errors.New("некорректная дата подачи")
		}
	}
	if r.Source != nil {
		if strings.TrimSpace(r.Source.Channel) == "" {
			return errors.New("не указан канал привлечения")
		}
		if r.Source.CostPerApplicant < 0 {
			return errors.New("стоимость кандидата не может быть отрицательной")
		}
	}
	return nil
}

// Submitted дата подачи, now если не указана
func (r ApplicationRequest) Submitted(now time.Time) time.Time {
	if r.SubmittedDate == "" {
		return now.UTC()
	}
	date, _ := time.Parse(dateLayout, r.SubmittedDate)
	return date
}

type ApplicationView struct {
	ID         string                   `json:"id"`
	AILabel    models.AILabel           `json:"ai_label"`
	Confidence int                      `json:"confidence"`
	Status     models.ApplicationStatus `json:"status"`
}

type ReviewRequest struct {
	Status     models.ApplicationStatus `json:"status"`      // решение ревьюера
	ReviewedBy string                   `json:"reviewed_by"` // ревьюер
}

func (r ReviewRequest) Validate() error {
	if !r.Status.IsDecision() {
		return errors.New("недопустимый статус решения")
	}
	if strings.TrimSpace(r.ReviewedBy) == "" {
		return errors.New("не указан ревьюер")
	}
	return nil
}

type FeedbackRequest struct {
	ApplicationID    string                   `json:"application_id"`    // идентификатор заявки
	ReviewerDecision models.AILabel           `json:"reviewer_decision"` // решение ревьюера
	Agreement        models.FeedbackAgreement `json:"agreement"`         // согласие с классификатором, необязательно
	IssueCategory    models.IssueCategory     `json:"issue_category"`    // категория расхождения, необязательно
	Comment          string                   `json:"comment"`
	ReviewedBy       string                   `json:"reviewed_by"`
}

func (r FeedbackRequest) Validate() error {
	if r.ApplicationID == "" {
		return errors.New("не указан идентификатор заявки")
	}
	if !r.ReviewerDecision.IsValid() {
		return errors.New("недопустимое решение ревьюера")
	}
	if r.Agreement != "" && !r.Agreement.IsValid() {
		return errors.New("недопустимое значение согласия")
	}
	if r.IssueCategory != "" && !r.IssueCategory.IsValid() {
		return errors.New("недопустимая категория расхождения")
	}
	return nil
}

type FeedbackView struct {
	ID            string                   `json:"id"`
	Agreement     models.FeedbackAgreement `json:"agreement"`
	IssueCategory models.IssueCategory     `json:"issue_category"`
}
