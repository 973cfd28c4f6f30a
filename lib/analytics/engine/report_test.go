package engine

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hr-screening-backend/models"
)

var (
	sampleLabels   = []models.AILabel{models.AILabelQualified, models.AILabelNeedsReview, models.AILabelNotQualified, "Unexpected"}
	sampleStatuses = []models.ApplicationStatus{
		models.ApplicationStatusPending, models.ApplicationStatusReviewed, models.ApplicationStatusQualified,
		models.ApplicationStatusNotQualified, models.ApplicationStatusNeedsReview,
	}
	sampleDegrees  = []string{"", "Bachelor", "Master", "PhD"}
	sampleChannels = []string{"LinkedIn", "Referral", "Job Board", ""}
)

func randomSnapshot(seed int64, n int) Snapshot {
	rnd := rand.New(rand.NewSource(seed))
	snapshot := Snapshot{
		Jobs: []JobRecord{
			{JobClass: "Analyst", Department: "Finance"},
			{JobClass: "Engineer", Department: "IT"},
			{JobClass: "Clerk"},
		},
	}
	classes := []string{"Analyst", "Engineer", "Clerk", "Driver"}
	for i := 0; i < n; i++ {
		submittedAt := testNow.Add(-time.Duration(rnd.Intn(400*24)) * time.Hour)
		opts := []recordOption{
			submitted(submittedAt.Format(time.RFC3339)),
			jobClass(classes[rnd.Intn(len(classes))]),
			confidence(rnd.Intn(101)),
		}
		if rnd.Intn(3) > 0 {
			opts = append(opts, reviewedBy("hr"))
		}
		if rnd.Intn(2) == 0 {
			// иногда решение датировано раньше подачи
			opts = append(opts, reviewedOn(submittedAt.Add(time.Duration(rnd.Intn(200)-20)*time.Hour).Format(time.RFC3339)))
		}
		if rnd.Intn(4) > 0 {
			opts = append(opts, experience(float64(rnd.Intn(25))))
		}
		if degree := sampleDegrees[rnd.Intn(len(sampleDegrees))]; degree != "" || rnd.Intn(2) == 0 {
			opts = append(opts, education(degree))
		}
		app := newApp(sampleLabels[rnd.Intn(len(sampleLabels))], sampleStatuses[rnd.Intn(len(sampleStatuses))], opts...)
		app.ID = fmt.Sprintf("rnd-%d-%d", seed, i)
		snapshot.Applications = append(snapshot.Applications, app)
	}
	for i := 0; i < n/2; i++ {
		snapshot.Sources = append(snapshot.Sources, CandidateSourceRecord{
			SourceChannel:    sampleChannels[rnd.Intn(len(sampleChannels))],
			CostPerApplicant: float64(rnd.Intn(10000)) / 100,
			ConvertedToHire:  rnd.Intn(3) == 0,
		})
	}
	for i := 0; i < n/3; i++ {
		snapshot.Feedback = append(snapshot.Feedback, FeedbackRecord{
			AIPrediction:     sampleLabels[rnd.Intn(3)],
			ReviewerDecision: sampleLabels[rnd.Intn(3)],
			Agreement:        models.FeedbackAgreements[rnd.Intn(3)],
			IssueCategory:    models.IssueCategories[rnd.Intn(len(models.IssueCategories))],
		})
	}
	return snapshot
}

func requireRate(t *testing.T, name string, v float64) {
	t.Helper()
	require.GreaterOrEqual(t, v, 0.0, name)
	require.LessOrEqual(t, v, 100.0, name)
}

func TestBuild(t *testing.T) {
	t.Run(`empty snapshot check`, func(t *testing.T) {
		report := Build(Snapshot{}, defaultRequest())
		require.Equal(t, 0, report.Stats.Total)
		require.Equal(t, 0.0, report.Stats.AIAccuracy)
		require.NotNil(t, report.HiringTrends)
		require.Empty(t, report.HiringTrends)
		require.Empty(t, report.AIPerformanceOverTime)
		require.Empty(t, report.TimeToHireData)
		require.Empty(t, report.DepartmentStats)
		require.Empty(t, report.SourceEffectiveness)
		require.Len(t, report.BiasAnalysis.ByExperience, 4)
		require.Empty(t, report.BiasAnalysis.Alerts)
		require.Equal(t, "A+", report.BiasAnalysis.FairnessGrade)
		require.Len(t, report.ImprovementSuggestions, 1)
		require.Equal(t, models.NoticeSuccess, report.ImprovementSuggestions[0].Type)
		require.Equal(t, "2024-06-30T12:00:00Z", report.GeneratedAt)
		require.Equal(t, "2024-05-31T12:00:00Z", report.RangeFrom)
		require.Empty(t, report.RangeTo)
		require.Equal(t, 30, report.TimeRangeDays)
		require.Equal(t, models.GranularityWeek, report.Granularity)
	})

	t.Run(`rates stay in range check`, func(t *testing.T) {
		for seed := int64(1); seed <= 5; seed++ {
			req := defaultRequest()
			req.Days = 365
			report := Build(randomSnapshot(seed, 300), req)
			requireRate(t, "aiAccuracy", report.Stats.AIAccuracy)
			requireRate(t, "qualificationRate", report.Stats.QualificationRate)
			require.LessOrEqual(t, report.Stats.Qualified+report.Stats.NeedsReview+report.Stats.NotQualified, report.Stats.Total)
			require.GreaterOrEqual(t, report.Stats.AvgProcessingTime, 0.0)
			require.LessOrEqual(t, len(report.HiringTrends), 12)
			require.LessOrEqual(t, len(report.AIPerformanceOverTime), 12)
			require.LessOrEqual(t, len(report.TimeToHireData), 12)
			require.LessOrEqual(t, len(report.DepartmentStats), 8)
			for _, point := range report.AIPerformanceOverTime {
				requireRate(t, "accuracy", point.Accuracy)
			}
			for _, dept := range report.DepartmentStats {
				requireRate(t, "offerAcceptance", dept.OfferAcceptance)
			}
			for _, source := range report.SourceEffectiveness {
				requireRate(t, "conversionRate", source.ConversionRate)
			}
			bias := report.BiasAnalysis
			for _, groups := range [][]GroupRate{bias.ByExperience, bias.ByEducation, bias.ByJob} {
				for _, group := range groups {
					requireRate(t, "groupRate", group.Rate)
				}
			}
			requireRate(t, "experienceDisparity", bias.ExperienceDisparity)
			requireRate(t, "educationDisparity", bias.EducationDisparity)
			requireRate(t, "progress", report.TrainingProgress.Progress)
			require.NotEmpty(t, report.ImprovementSuggestions)
		}
	})

	t.Run(`record order does not matter check`, func(t *testing.T) {
		snapshot := randomSnapshot(42, 250)
		req := defaultRequest()
		req.Days = 365
		expected := Build(snapshot, req)

		rnd := rand.New(rand.NewSource(7))
		shuffled := Snapshot{
			Applications: append([]ApplicationRecord(nil), snapshot.Applications...),
			Jobs:         snapshot.Jobs,
			Sources:      append([]CandidateSourceRecord(nil), snapshot.Sources...),
			Feedback:     append([]FeedbackRecord(nil), snapshot.Feedback...),
		}
		rnd.Shuffle(len(shuffled.Applications), func(i, j int) {
			shuffled.Applications[i], shuffled.Applications[j] = shuffled.Applications[j], shuffled.Applications[i]
		})
		rnd.Shuffle(len(shuffled.Sources), func(i, j int) {
			shuffled.Sources[i], shuffled.Sources[j] = shuffled.Sources[j], shuffled.Sources[i]
		})
		rnd.Shuffle(len(shuffled.Feedback), func(i, j int) {
			shuffled.Feedback[i], shuffled.Feedback[j] = shuffled.Feedback[j], shuffled.Feedback[i]
		})
		require.Equal(t, expected, Build(shuffled, req))
	})

	t.Run(`sequential and parallel are equal check`, func(t *testing.T) {
		snapshot := randomSnapshot(3, 200)
		req := defaultRequest()
		req.Days = 90
		req.Granularity = models.GranularityMonth
		parallel := Build(snapshot, req)
		req.Sequential = true
		require.Equal(t, parallel, Build(snapshot, req))
	})

	t.Run(`same input same report check`, func(t *testing.T) {
		snapshot := randomSnapshot(11, 100)
		require.Equal(t, Build(snapshot, defaultRequest()), Build(snapshot, defaultRequest()))
	})

	t.Run(`explicit range report check`, func(t *testing.T) {
		from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
		req := Request{From: &from, To: &to, Now: testNow, Granularity: "day"}
		report := Build(Snapshot{Applications: []ApplicationRecord{
			newApp(models.AILabelQualified, models.ApplicationStatusPending, submitted("2024-06-03")),
			newApp(models.AILabelQualified, models.ApplicationStatusPending, submitted("2024-06-20")),
		}}, req)
		require.Equal(t, 1, report.Stats.Total)
		require.Equal(t, 14, report.TimeRangeDays)
		require.Equal(t, "2024-06-15T00:00:00Z", report.RangeTo)
		require.Equal(t, models.GranularityWeek, report.Granularity)
	})
}
