package engine

import (
	"fmt"
	"math"

	"hr-screening-backend/models"
)

// Transition направление расхождения метки классификатора и решения ревьюера
type Transition int

const (
	TransitionQualifiedToNotQualified Transition = iota
	TransitionNotQualifiedToQualified
	TransitionQualifiedToReview
	TransitionNotQualifiedToReview
	TransitionReviewToQualified
	TransitionReviewToNotQualified
	transitionCount
)

const noTransition Transition = -1

var transitionNames = [transitionCount]string{
	TransitionQualifiedToNotQualified: "Qualified → Not Qualified",
	TransitionNotQualifiedToQualified: "Not Qualified → Qualified",
	TransitionQualifiedToReview:       "Qualified → Review",
	TransitionNotQualifiedToReview:    "Not Qualified → Review",
	TransitionReviewToQualified:       "Review → Qualified",
	TransitionReviewToNotQualified:    "Review → Not Qualified",
}

func (t Transition) String() string {
	if t < 0 || t >= transitionCount {
		return ""
	}
	return transitionNames[t]
}

const (
	labelQualified = iota
	labelReview
	labelNotQualified
	labelCount
)

// transitionTable индекс [метка ИИ][метка ревьюера], диагональ не является расхождением
var transitionTable = [labelCount][labelCount]Transition{
	labelQualified: {
		labelQualified:    noTransition,
		labelReview:       TransitionQualifiedToReview,
		labelNotQualified: TransitionQualifiedToNotQualified,
	},
	labelReview: {
		labelQualified:    TransitionReviewToQualified,
		labelReview:       noTransition,
		labelNotQualified: TransitionReviewToNotQualified,
	},
	labelNotQualified: {
		labelQualified:    TransitionNotQualifiedToQualified,
		labelReview:       TransitionNotQualifiedToReview,
		labelNotQualified: noTransition,
	},
}

func labelIndex(label models.AILabel) (int, bool) {
	switch label {
	case models.AILabelQualified:
		return labelQualified, true
	case models.AILabelNeedsReview:
		return labelReview, true
	case models.AILabelNotQualified:
		return labelNotQualified, true
	}
	return 0, false
}

// ClassifyOverride false, если метки совпадают или метка ИИ вне перечисления
func ClassifyOverride(aiLabel, humanLabel models.AILabel) (Transition, bool) {
	from, ok := labelIndex(aiLabel)
	if !ok {
		return noTransition, false
	}
	to, ok := labelIndex(humanLabel)
	if !ok {
		return noTransition, false
	}
	t := transitionTable[from][to]
	return t, t != noTransition
}

type OverridePattern struct {
	Pattern string `json:"pattern"`
	Count   int    `json:"count"`
}

type OverrideAnalysis struct {
	Total    int               `json:"total"`
	Patterns []OverridePattern `json:"patterns"`
}

// Count число расхождений заданного направления
func (o OverrideAnalysis) Count(t Transition) int {
	name := t.String()
	for _, p := range o.Patterns {
		if p.Pattern == name {
			return p.Count
		}
	}
	return 0
}

type Suggestion struct {
	Type    models.NoticeType `json:"type"`
	Message string            `json:"message"`
}

type TrainingProgress struct {
	TotalReviewed int     `json:"totalReviewed"`
	NeedsTraining int     `json:"needsTraining"`
	Progress      float64 `json:"progress"`
	Eligible      bool    `json:"eligible"`
	Ready         bool    `json:"ready"`
	Message       string  `json:"message"`
}

const (
	falsePositiveLimit     = 5
	falseNegativeLimit     = 3
	reviewOverrideLimit    = 10
	highConfidence         = 80
	highConfidenceAccuracy = 85.0
	retrainEligibleSamples = 50
	retrainReadySamples    = 100
)

// AnalyzeOverrides считает расхождения среди заявок с ревьюером
func AnalyzeOverrides(apps []ApplicationRecord) OverrideAnalysis {
	var (
		analysis OverrideAnalysis
		counts   [transitionCount]int
	)
	for _, app := range apps {
		if !app.IsReviewed() {
			continue
		}
		t, ok := ClassifyOverride(app.AILabel, app.HumanLabel())
		if !ok {
			continue
		}
		counts[t]++
		analysis.Total++
	}
	analysis.Patterns = make([]OverridePattern, 0, transitionCount)
	for t := Transition(0); t < transitionCount; t++ {
		if counts[t] == 0 {
			continue
		}
		analysis.Patterns = append(analysis.Patterns, OverridePattern{Pattern: t.String(), Count: counts[t]})
	}
	return analysis
}

// ImprovementSuggestions эвристики проверяются по порядку, выводятся все сработавшие
func ImprovementSuggestions(apps []ApplicationRecord, overrides OverrideAnalysis) []Suggestion {
	suggestions := []Suggestion{}

	if n := overrides.Count(TransitionQualifiedToNotQualified); n > falsePositiveLimit {
		suggestions = append(suggestions, Suggestion{
			Type:    models.NoticeCritical,
			Message: fmt.Sprintf("High false positive rate (%d cases). Consider tightening qualification criteria or improving MQ detection.", n),
		})
	}
	if n := overrides.Count(TransitionNotQualifiedToQualified); n > falseNegativeLimit {
		suggestions = append(suggestions, Suggestion{
			Type:    models.NoticeWarning,
			Message: fmt.Sprintf("AI is rejecting qualified candidates (%d cases). Review for potential bias in experience/education requirements.", n),
		})
	}
	reviewOverrides := overrides.Count(TransitionReviewToQualified) + overrides.Count(TransitionReviewToNotQualified)
	if reviewOverrides > reviewOverrideLimit {
		suggestions = append(suggestions, Suggestion{
			Type:    models.NoticeInfo,
			Message: fmt.Sprintf("%d \"Needs Review\" cases were overridden. AI could be more decisive with additional training data.", reviewOverrides),
		})
	}
	if accuracy := highConfidenceAccuracyRate(apps); accuracy < highConfidenceAccuracy {
		suggestions = append(suggestions, Suggestion{
			Type:    models.NoticeWarning,
			Message: fmt.Sprintf("High confidence predictions only %d%% accurate. Model may be overconfident and needs recalibration.", int(math.Round(accuracy))),
		})
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, Suggestion{
			Type:    models.NoticeSuccess,
			Message: "AI performance is excellent! Continue monitoring for edge cases.",
		})
	}
	return suggestions
}

// highConfidenceAccuracyRate точность среди рассмотренных заявок с уверенностью от 80;
// без таких заявок считается 100
func highConfidenceAccuracyRate(apps []ApplicationRecord) float64 {
	var total, correct int
	for _, app := range apps {
		if !app.IsReviewed() || app.Confidence < highConfidence {
			continue
		}
		total++
		if app.AILabel == app.HumanLabel() {
			correct++
		}
	}
	if total == 0 {
		return 100
	}
	return float64(correct) / float64(total) * 100
}

// TrainingReadiness готовность к переобучению по числу рассмотренных заявок
func TrainingReadiness(apps []ApplicationRecord) TrainingProgress {
	var progress TrainingProgress
	for _, app := range apps {
		if app.IsReviewed() {
			progress.TotalReviewed++
		}
	}
	progress.NeedsTraining = retrainReadySamples - progress.TotalReviewed
	if progress.NeedsTraining < 0 {
		progress.NeedsTraining = 0
	}
	progress.Progress = percent(progress.TotalReviewed, retrainReadySamples)
	progress.Eligible = progress.TotalReviewed >= retrainEligibleSamples
	progress.Ready = progress.TotalReviewed >= retrainReadySamples
	if progress.Ready {
		progress.Message = "Ready for model retraining!"
	} else {
		progress.Message = fmt.Sprintf("%d more samples needed for optimal retraining", progress.NeedsTraining)
	}
	return progress
}
