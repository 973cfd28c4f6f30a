package models

// AILabel рекомендация классификатора по кандидату
type AILabel string

const (
	AILabelQualified    AILabel = "Likely Qualified"
	AILabelNeedsReview  AILabel = "Needs Review"
	AILabelNotQualified AILabel = "Likely Not Qualified"
)

func (l AILabel) IsValid() bool {
	switch l {
	case AILabelQualified, AILabelNeedsReview, AILabelNotQualified:
		return true
	}
	return false
}

// ApplicationStatus статус рассмотрения заявки
type ApplicationStatus string

const (
	ApplicationStatusPending      ApplicationStatus = "pending"
	ApplicationStatusReviewed     ApplicationStatus = "reviewed"
	ApplicationStatusQualified    ApplicationStatus = "qualified"
	ApplicationStatusNotQualified ApplicationStatus = "not_qualified"
	ApplicationStatusNeedsReview  ApplicationStatus = "needs_review"
)

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusQualified,
		ApplicationStatusNotQualified, ApplicationStatusNeedsReview:
		return true
	}
	return false
}

// IsDecision статус, который может выставить ревьюер
func (s ApplicationStatus) IsDecision() bool {
	return s.IsValid() && s != ApplicationStatusPending
}

type MQStatus string

const (
	MQStatusPass    MQStatus = "pass"
	MQStatusFail    MQStatus = "fail"
	MQStatusUnclear MQStatus = "unclear"
)

type FeedbackAgreement string

const (
	FeedbackAgree    FeedbackAgreement = "agree"
	FeedbackDisagree FeedbackAgreement = "disagree"
	FeedbackPartial  FeedbackAgreement = "partial"
)

var FeedbackAgreements = []FeedbackAgreement{FeedbackAgree, FeedbackDisagree, FeedbackPartial}

func (a FeedbackAgreement) IsValid() bool {
	switch a {
	case FeedbackAgree, FeedbackDisagree, FeedbackPartial:
		return true
	}
	return false
}

type IssueCategory string

const (
	IssueFalsePositive      IssueCategory = "false_positive"
	IssueFalseNegative      IssueCategory = "false_negative"
	IssueConfidenceMismatch IssueCategory = "confidence_mismatch"
	IssueMissingContext     IssueCategory = "missing_context"
	IssueCorrect            IssueCategory = "correct"
	IssueOther              IssueCategory = "other"
)

// IssueCategories порядок категорий в отчетах
var IssueCategories = []IssueCategory{
	IssueFalsePositive,
	IssueFalseNegative,
	IssueConfidenceMismatch,
	IssueMissingContext,
	IssueCorrect,
	IssueOther,
}

func (c IssueCategory) IsValid() bool {
	for _, item := range IssueCategories {
		if item == c {
			return true
		}
	}
	return false
}

// Granularity шаг временного ряда
type Granularity string

const (
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

func (g Granularity) IsValid() bool {
	return g == GranularityWeek || g == GranularityMonth
}

// NoticeType уровень важности предупреждений и рекомендаций
type NoticeType string

const (
	NoticeCritical NoticeType = "critical"
	NoticeWarning  NoticeType = "warning"
	NoticeInfo     NoticeType = "info"
	NoticeSuccess  NoticeType = "success"
)
