package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hr-screening-backend/models"
)

func TestFilterApplications(t *testing.T) {
	t.Run(`time window check`, func(t *testing.T) {
		apps := []ApplicationRecord{
			newApp(models.AILabelQualified, models.ApplicationStatusPending, submitted("2024-06-01")),
			newApp(models.AILabelQualified, models.ApplicationStatusPending, submitted("2024-05-31")),
			newApp(models.AILabelQualified, models.ApplicationStatusPending, submitted("")),
			newApp(models.AILabelQualified, models.ApplicationStatusPending, submitted("not a date")),
			newApp(models.AILabelQualified, models.ApplicationStatusPending, submitted("2024-06-29T08:30:00Z")),
		}
		result := FilterApplications(apps, defaultRequest())
		require.Len(t, result, 2)
		require.Equal(t, apps[0].ID, result[0].ID)
		require.Equal(t, apps[4].ID, result[1].ID)
	})

	t.Run(`explicit range check`, func(t *testing.T) {
		from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 6, 10, 23, 59, 59, 0, time.UTC)
		apps := []ApplicationRecord{
			newApp(models.AILabelQualified, models.ApplicationStatusPending, submitted("2024-06-05")),
			newApp(models.AILabelQualified, models.ApplicationStatusPending, submitted("2024-06-20")),
			newApp(models.AILabelQualified, models.ApplicationStatusPending, submitted("2024-05-20")),
		}
		req := Request{From: &from, To: &to, Now: testNow}
		result := FilterApplications(apps, req)
		require.Len(t, result, 1)
		require.Equal(t, apps[0].ID, result[0].ID)
		require.Equal(t, 10, req.WindowDays())
	})

	t.Run(`record filter check`, func(t *testing.T) {
		minConfidence := 60
		apps := []ApplicationRecord{
			newApp(models.AILabelQualified, models.ApplicationStatusPending, jobClass("Analyst"), confidence(90)),
			newApp(models.AILabelQualified, models.ApplicationStatusPending, jobClass("Analyst"), confidence(40)),
			newApp(models.AILabelQualified, models.ApplicationStatusPending, jobClass("Engineer"), confidence(90)),
		}
		req := defaultRequest()
		req.Filter = RecordFilter{JobClasses: []string{"Analyst"}, MinConfidence: &minConfidence}
		result := FilterApplications(apps, req)
		require.Len(t, result, 1)
		require.Equal(t, apps[0].ID, result[0].ID)
	})
}

func TestCalendar(t *testing.T) {
	t.Run(`week starts on monday check`, func(t *testing.T) {
		monday, _ := ParseDate("2024-06-24")
		sunday, _ := ParseDate("2024-06-30T23:59:59Z")
		prevSunday, _ := ParseDate("2024-06-23")
		require.Equal(t, "2024-06-24", PeriodKey(monday, models.GranularityWeek))
		require.Equal(t, "2024-06-24", PeriodKey(sunday, models.GranularityWeek))
		require.Equal(t, "2024-06-17", PeriodKey(prevSunday, models.GranularityWeek))
		require.Equal(t, "2024-06", PeriodKey(sunday, models.GranularityMonth))
	})

	t.Run(`date formats check`, func(t *testing.T) {
		for _, value := range []string{"2024-06-24", "2024-06-24T10:00:00", "2024-06-24T10:00:00Z", "2024-06-24T10:00:00.123+03:00"} {
			_, ok := ParseDate(value)
			require.True(t, ok, value)
		}
		_, ok := ParseDate("24.06.2024")
		require.False(t, ok)
	})
}

func TestBuildTrends(t *testing.T) {
	t.Run(`weekly volume check`, func(t *testing.T) {
		apps := []ApplicationRecord{
			newApp(models.AILabelQualified, models.ApplicationStatusPending, submitted("2024-06-24")),
			newApp(models.AILabelNotQualified, models.ApplicationStatusPending, submitted("2024-06-30")),
			newApp(models.AILabelNeedsReview, models.ApplicationStatusPending, submitted("2024-06-23")),
		}
		trends := BuildTrends(apps, models.GranularityWeek)
		require.Equal(t, []VolumePoint{
			{Period: "2024-06-17", Applications: 1},
			{Period: "2024-06-24", Applications: 2, Qualified: 1, Rejected: 1},
		}, trends.HiringTrends)
	})

	t.Run(`series truncated to last twelve check`, func(t *testing.T) {
		start := time.Date(2024, 6, 24, 0, 0, 0, 0, time.UTC)
		apps := make([]ApplicationRecord, 0, 15)
		for k := 14; k >= 0; k-- {
			apps = append(apps, newApp(models.AILabelQualified, models.ApplicationStatusPending,
				submitted(start.AddDate(0, 0, -7*k).Format("2006-01-02"))))
		}
		trends := BuildTrends(apps, models.GranularityWeek)
		require.Len(t, trends.HiringTrends, 12)
		require.Equal(t, "2024-04-08", trends.HiringTrends[0].Period)
		require.Equal(t, "2024-06-24", trends.HiringTrends[11].Period)
	})

	t.Run(`ai performance check`, func(t *testing.T) {
		apps := []ApplicationRecord{
			newApp(models.AILabelQualified, models.ApplicationStatusQualified, reviewedBy("hr"),
				submitted("2024-06-10"), reviewedOn("2024-06-25")),
			newApp(models.AILabelQualified, models.ApplicationStatusNotQualified, reviewedBy("hr"),
				submitted("2024-06-10"), reviewedOn("2024-06-26")),
			newApp(models.AILabelNotQualified, models.ApplicationStatusQualified, reviewedBy("hr"),
				submitted("2024-06-10"), reviewedOn("2024-06-27")),
			newApp(models.AILabelNeedsReview, models.ApplicationStatusQualified, reviewedBy("hr"),
				submitted("2024-06-10"), reviewedOn("2024-06-28")),
			// без даты рассмотрения попадает в неделю подачи
			newApp(models.AILabelNeedsReview, models.ApplicationStatusNeedsReview, reviewedBy("hr"),
				submitted("2024-06-11")),
			// без ревьюера не учитывается
			newApp(models.AILabelQualified, models.ApplicationStatusPending, submitted("2024-06-11")),
		}
		trends := BuildTrends(apps, models.GranularityWeek)
		require.Equal(t, []AccuracyPoint{
			{Period: "2024-06-10", Correct: 1, Total: 1, Accuracy: 100},
			{Period: "2024-06-24", Correct: 1, Total: 4, FalsePos: 1, FalseNeg: 1, Accuracy: 25},
		}, trends.AIPerformanceOverTime)
	})

	t.Run(`time to hire check`, func(t *testing.T) {
		apps := []ApplicationRecord{
			newApp(models.AILabelQualified, models.ApplicationStatusQualified,
				submitted("2024-05-30T00:00:00Z"), reviewedOn("2024-06-01T00:00:00Z")),
			newApp(models.AILabelQualified, models.ApplicationStatusQualified,
				submitted("2024-06-01T00:00:00Z"), reviewedOn("2024-06-01T12:00:00Z")),
			newApp(models.AILabelQualified, models.ApplicationStatusQualified,
				submitted("2024-06-02T00:00:00Z"), reviewedOn("2024-06-03T00:00:00Z")),
			// не одобрен
			newApp(models.AILabelQualified, models.ApplicationStatusNotQualified,
				submitted("2024-06-02T00:00:00Z"), reviewedOn("2024-06-03T00:00:00Z")),
			// нет даты решения
			newApp(models.AILabelQualified, models.ApplicationStatusQualified, submitted("2024-06-02")),
		}
		trends := BuildTrends(apps, models.GranularityWeek)
		require.Equal(t, []HirePoint{
			{Month: "2024-05", Hires: 1, TotalHours: 48, AvgTime: 48},
			{Month: "2024-06", Hires: 2, TotalHours: 36, AvgTime: 18},
		}, trends.TimeToHireData)
	})

	t.Run(`missing date skipped per series check`, func(t *testing.T) {
		apps := []ApplicationRecord{
			newApp(models.AILabelQualified, models.ApplicationStatusQualified, reviewedBy("hr"),
				submitted(""), reviewedOn("2024-06-25")),
		}
		trends := BuildTrends(apps, models.GranularityMonth)
		require.Empty(t, trends.HiringTrends)
		require.Empty(t, trends.TimeToHireData)
		require.Len(t, trends.AIPerformanceOverTime, 1)
		require.Equal(t, "2024-06", trends.AIPerformanceOverTime[0].Period)
		require.Equal(t, 1, CoreStats(apps).Total)
	})
}
