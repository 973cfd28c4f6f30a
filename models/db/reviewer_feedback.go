package dbmodels

import (
	"hr-screening-backend/lib/analytics/engine"
	"hr-screening-backend/models"
)

// ReviewerFeedback отзыв ревьюера о рекомендации классификатора
type ReviewerFeedback struct {
	BaseModel
	ApplicationID    string                   `gorm:"type:varchar(36);index"`
	AIPrediction     models.AILabel           `gorm:"type:varchar(50)"`
	ReviewerDecision models.AILabel           `gorm:"type:varchar(50)"`
	Agreement        models.FeedbackAgreement `gorm:"type:varchar(50)"`
	IssueCategory    models.IssueCategory     `gorm:"type:varchar(50)"`
	Comment          string
	ReviewedBy       string `gorm:"type:varchar(255)"`
}

func (f ReviewerFeedback) ToRecord() engine.FeedbackRecord {
	return engine.FeedbackRecord{
		ApplicationID:    f.ApplicationID,
		AIPrediction:     f.AIPrediction,
		ReviewerDecision: f.ReviewerDecision,
		Agreement:        f.Agreement,
		IssueCategory:    f.IssueCategory,
	}
}
