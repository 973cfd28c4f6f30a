package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hr-screening-backend/models"
)

func TestAnalyzeFeedback(t *testing.T) {
	t.Run(`distribution check`, func(t *testing.T) {
		feedback := []FeedbackRecord{
			{Agreement: models.FeedbackAgree, IssueCategory: models.IssueCorrect},
			{Agreement: models.FeedbackAgree, IssueCategory: models.IssueCorrect},
			{Agreement: models.FeedbackDisagree, IssueCategory: models.IssueFalsePositive},
			{Agreement: "unsure", IssueCategory: ""},
		}
		analysis := AnalyzeFeedback(feedback)
		require.Equal(t, 4, analysis.Total)
		require.Equal(t, []CategoryCount{
			{Category: models.IssueFalsePositive, Count: 1},
			{Category: models.IssueCorrect, Count: 2},
			{Category: models.IssueOther, Count: 1},
		}, analysis.ByCategory)
		require.Equal(t, []AgreementShare{
			{Agreement: models.FeedbackAgree, Count: 2, Percentage: 50},
			{Agreement: models.FeedbackDisagree, Count: 1, Percentage: 25},
			{Agreement: models.FeedbackPartial},
		}, analysis.ByAgreement)
	})

	t.Run(`empty feedback check`, func(t *testing.T) {
		analysis := AnalyzeFeedback(nil)
		require.Equal(t, 0, analysis.Total)
		require.NotNil(t, analysis.ByCategory)
		require.Len(t, analysis.ByAgreement, 3)
	})
}

func TestDeriveFeedback(t *testing.T) {
	cases := []struct {
		name          string
		ai, decision  models.AILabel
		agreement     models.FeedbackAgreement
		category      models.IssueCategory
		wantAgreement models.FeedbackAgreement
		wantCategory  models.IssueCategory
	}{
		{`same labels check`, models.AILabelQualified, models.AILabelQualified, "", "",
			models.FeedbackAgree, models.IssueCorrect},
		{`false positive check`, models.AILabelQualified, models.AILabelNotQualified, "", "",
			models.FeedbackDisagree, models.IssueFalsePositive},
		{`false negative check`, models.AILabelNotQualified, models.AILabelQualified, "", "",
			models.FeedbackDisagree, models.IssueFalseNegative},
		{`review disagreement check`, models.AILabelNeedsReview, models.AILabelQualified, "", "",
			models.FeedbackDisagree, models.IssueOther},
		{`explicit values kept check`, models.AILabelQualified, models.AILabelNotQualified,
			models.FeedbackPartial, models.IssueMissingContext,
			models.FeedbackPartial, models.IssueMissingContext},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			agreement, category := DeriveFeedback(tc.ai, tc.decision, tc.agreement, tc.category)
			require.Equal(t, tc.wantAgreement, agreement)
			require.Equal(t, tc.wantCategory, category)
		})
	}
}
