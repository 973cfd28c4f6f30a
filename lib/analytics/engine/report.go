package engine

import (
	"time"

	"golang.org/x/sync/errgroup"

	"hr-screening-backend/models"
)

const generatedAtLayout = time.RFC3339

// Report итоговый отчет. Поля только примитивные и структурные, без логики отображения.
type Report struct {
	Stats                  Stats              `json:"stats"`
	HiringTrends           []VolumePoint      `json:"hiringTrends"`
	AIPerformanceOverTime  []AccuracyPoint    `json:"aiPerformanceOverTime"`
	TimeToHireData         []HirePoint        `json:"timeToHireData"`
	DepartmentStats        []DepartmentStat   `json:"departmentStats"`
	SourceEffectiveness    []SourceStat       `json:"sourceEffectiveness"`
	BiasAnalysis           BiasAnalysis       `json:"biasAnalysis"`
	OverridePatterns       OverrideAnalysis   `json:"overridePatterns"`
	ImprovementSuggestions []Suggestion       `json:"improvementSuggestions"`
	TrainingProgress       TrainingProgress   `json:"trainingProgress"`
	FeedbackAnalysis       FeedbackAnalysis   `json:"feedbackAnalysis"`
	GeneratedAt            string             `json:"generatedAt"`
	TimeRangeDays          int                `json:"timeRangeDays"`
	RangeFrom              string             `json:"rangeFrom"`
	RangeTo                string             `json:"rangeTo,omitempty"`
	Granularity            models.Granularity `json:"granularity"`
}

type segments struct {
	departments []DepartmentStat
	sources     []SourceStat
}

type modelImprovement struct {
	overrides   OverrideAnalysis
	suggestions []Suggestion
	training    TrainingProgress
	feedback    FeedbackAnalysis
}

// Build отбирает заявки по окну и собирает отчет. Агрегаторы независимы друг от друга,
// каждый пишет только в свою переменную, поэтому параллельный и последовательный
// запуск дают одинаковый результат.
func Build(snapshot Snapshot, req Request) Report {
	apps := FilterApplications(snapshot.Applications, req)
	granularity := req.granularity()

	var (
		stats       Stats
		trends      Trends
		segment     segments
		bias        BiasAnalysis
		improvement modelImprovement
	)
	tasks := []func(){
		func() { stats = CoreStats(apps) },
		func() { trends = BuildTrends(apps, granularity) },
		func() {
			segment = segments{
				departments: DepartmentStats(apps, snapshot.Jobs),
				sources:     SourceEffectiveness(snapshot.Sources),
			}
		},
		func() { bias = AnalyzeBias(apps) },
		func() {
			overrides := AnalyzeOverrides(apps)
			improvement = modelImprovement{
				overrides:   overrides,
				suggestions: ImprovementSuggestions(apps, overrides),
				training:    TrainingReadiness(apps),
				feedback:    AnalyzeFeedback(snapshot.Feedback),
			}
		},
	}
	if req.Sequential {
		for _, task := range tasks {
			task()
		}
	} else {
		var g errgroup.Group
		for _, task := range tasks {
			task := task
			g.Go(func() error {
				task()
				return nil
			})
		}
		g.Wait() //nolint:errcheck // задачи не возвращают ошибок, группа только дожидается завершения
	}

	from, to := req.Bounds()
	report := Report{
		Stats:                  stats,
		HiringTrends:           trends.HiringTrends,
		AIPerformanceOverTime:  trends.AIPerformanceOverTime,
		TimeToHireData:         trends.TimeToHireData,
		DepartmentStats:        segment.departments,
		SourceEffectiveness:    segment.sources,
		BiasAnalysis:           bias,
		OverridePatterns:       improvement.overrides,
		ImprovementSuggestions: improvement.suggestions,
		TrainingProgress:       improvement.training,
		FeedbackAnalysis:       improvement.feedback,
		GeneratedAt:            req.Now.UTC().Format(generatedAtLayout),
		TimeRangeDays:          req.WindowDays(),
		RangeFrom:              from.Format(generatedAtLayout),
		Granularity:            granularity,
	}
	if !to.IsZero() {
		report.RangeTo = to.Format(generatedAtLayout)
	}
	return report
}
