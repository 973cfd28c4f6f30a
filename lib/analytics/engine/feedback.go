package engine

import "hr-screening-backend/models"

type CategoryCount struct {
	Category models.IssueCategory `json:"category"`
	Count    int                  `json:"count"`
}

type AgreementShare struct {
	Agreement  models.FeedbackAgreement `json:"agreement"`
	Count      int                      `json:"count"`
	Percentage float64                  `json:"percentage"`
}

type FeedbackAnalysis struct {
	Total       int              `json:"total"`
	ByCategory  []CategoryCount  `json:"byCategory"`
	ByAgreement []AgreementShare `json:"byAgreement"`
}

// AnalyzeFeedback распределение отзывов ревьюеров по категориям и согласию.
// Пустая или неизвестная категория учитывается как other.
func AnalyzeFeedback(feedback []FeedbackRecord) FeedbackAnalysis {
	categories := map[models.IssueCategory]int{}
	agreements := map[models.FeedbackAgreement]int{}
	for _, fb := range feedback {
		category := fb.IssueCategory
		if !category.IsValid() {
			category = models.IssueOther
		}
		categories[category]++
		if fb.Agreement.IsValid() {
			agreements[fb.Agreement]++
		}
	}

	analysis := FeedbackAnalysis{
		Total:       len(feedback),
		ByCategory:  make([]CategoryCount, 0, len(categories)),
		ByAgreement: make([]AgreementShare, 0, len(models.FeedbackAgreements)),
	}
	for _, category := range models.IssueCategories {
		if categories[category] == 0 {
			continue
		}
		analysis.ByCategory = append(analysis.ByCategory, CategoryCount{Category: category, Count: categories[category]})
	}
	for _, agreement := range models.FeedbackAgreements {
		analysis.ByAgreement = append(analysis.ByAgreement, AgreementShare{
			Agreement:  agreement,
			Count:      agreements[agreement],
			Percentage: percent(agreements[agreement], len(feedback)),
		})
	}
	return analysis
}

// DeriveFeedback заполняет согласие и категорию, если ревьюер их не указал
func DeriveFeedback(aiLabel, reviewerDecision models.AILabel, agreement models.FeedbackAgreement, category models.IssueCategory) (models.FeedbackAgreement, models.IssueCategory) {
	if !agreement.IsValid() {
		agreement = models.FeedbackDisagree
		if aiLabel == reviewerDecision {
			agreement = models.FeedbackAgree
		}
	}
	if category.IsValid() {
		return agreement, category
	}
	switch {
	case agreement == models.FeedbackAgree:
		category = models.IssueCorrect
	case aiLabel == models.AILabelQualified && reviewerDecision == models.AILabelNotQualified:
		category = models.IssueFalsePositive
	case aiLabel == models.AILabelNotQualified && reviewerDecision == models.AILabelQualified:
		category = models.IssueFalseNegative
	default:
		category = models.IssueOther
	}
	return agreement, category
}
