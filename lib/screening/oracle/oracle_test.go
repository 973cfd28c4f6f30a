package oracle

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hr-screening-backend/models"
)

const validResult = `{
  "applicant_name": "Jane Roe",
  "education": [{"degree_level": "Master", "major": "Statistics"}],
  "mq_results": [
    {"requirement": "3 years of analysis", "status": "pass", "evidence": "5 years at ACME", "confidence": 92.6}
  ],
  "total_experience_years": 7,
  "ai_label": "Likely Qualified",
  "confidence": 88.4,
  "ai_reasoning": "meets all requirements"
}`

func TestParse(t *testing.T) {
	t.Run(`valid result check`, func(t *testing.T) {
		result, err := Parse([]byte(validResult))
		require.NoError(t, err)
		require.Equal(t, "Jane Roe", result.ApplicantName)
		require.Equal(t, models.AILabelQualified, result.AILabel)
		require.Equal(t, 88, result.ConfidenceScore())
		require.Equal(t, 7.0, *result.TotalExperienceYears)
		mq := result.MQ()
		require.Len(t, mq, 1)
		require.Equal(t, 93, mq[0].Confidence)
		require.Equal(t, models.MQStatusPass, mq[0].Status)
	})

	t.Run(`unknown label check`, func(t *testing.T) {
		_, err := Parse([]byte(`{"applicant_name": "A", "ai_label": "Maybe", "confidence": 50, "mq_results": []}`))
		require.Error(t, err)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		require.Equal(t, "ai_label", ve.Errors[0].Field)
	})

	t.Run(`confidence out of range check`, func(t *testing.T) {
		_, err := Parse([]byte(`{"applicant_name": "A", "ai_label": "Needs Review", "confidence": 120, "mq_results": []}`))
		require.Error(t, err)
	})

	t.Run(`missing required fields check`, func(t *testing.T) {
		_, err := Parse([]byte(`{"ai_label": "Needs Review"}`))
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		require.Len(t, ve.Errors, 3)
	})

	t.Run(`not a json check`, func(t *testing.T) {
		_, err := Parse([]byte(`resume text`))
		require.Error(t, err)
	})
}
