package engine

import (
	"fmt"
	"math"
	"sort"

	"hr-screening-backend/models"
)

// disparityThreshold разница долей одобрения (п.п.), выше которой поднимается предупреждение
const disparityThreshold = 20.0

const (
	GroupingExperience = "experience"
	GroupingEducation  = "education"
	GroupingJob        = "job"
)

// Фиксированные диапазоны стажа в годах
var experienceRanges = []string{"0-2", "3-5", "6-10", "10+"}

type GroupRate struct {
	Group     string  `json:"group"`
	Count     int     `json:"count"`
	Qualified int     `json:"qualified"`
	Rate      float64 `json:"rate"`
}

type BiasAlert struct {
	Type      models.NoticeType `json:"type"`
	Grouping  string            `json:"grouping"`
	Disparity float64           `json:"disparity"`
	Message   string            `json:"message"`
}

type BiasAnalysis struct {
	ByExperience        []GroupRate `json:"byExperience"`
	ByEducation         []GroupRate `json:"byEducation"`
	ByJob               []GroupRate `json:"byJob"`
	ExperienceDisparity float64     `json:"experienceDisparity"`
	EducationDisparity  float64     `json:"educationDisparity"`
	JobDisparity        float64     `json:"jobDisparity"`
	Alerts              []BiasAlert `json:"alerts"`
	// FairnessGrade порядковая оценка по числу предупреждений, не статистическая гарантия
	FairnessGrade string `json:"fairnessGrade"`
}

func experienceRange(years float64) string {
	switch {
	case years >= 10:
		return "10+"
	case years >= 6:
		return "6-10"
	case years >= 3:
		return "3-5"
	}
	return "0-2"
}

type rateBucket struct {
	total     int
	qualified int
}

func (b *rateBucket) add(app ApplicationRecord) {
	b.total++
	if app.AILabel == models.AILabelQualified {
		b.qualified++
	}
}

func (b rateBucket) toRate(group string) GroupRate {
	return GroupRate{
		Group:     group,
		Count:     b.total,
		Qualified: b.qualified,
		Rate:      percent(b.qualified, b.total),
	}
}

func sortedRates(buckets map[string]*rateBucket) []GroupRate {
	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	result := make([]GroupRate, 0, len(keys))
	for _, key := range keys {
		result = append(result, buckets[key].toRate(key))
	}
	return result
}

// Disparity размах долей одобрения по непустым группам.
// false, если непустых групп меньше двух.
func Disparity(groups []GroupRate) (float64, bool) {
	var (
		lo, hi   float64
		nonEmpty int
	)
	for _, group := range groups {
		if group.Count == 0 {
			continue
		}
		if nonEmpty == 0 || group.Rate < lo {
			lo = group.Rate
		}
		if nonEmpty == 0 || group.Rate > hi {
			hi = group.Rate
		}
		nonEmpty++
	}
	if nonEmpty < 2 {
		return 0, false
	}
	return clampRate(round1(hi - lo)), true
}

// AnalyzeBias доли одобрения классификатором по стажу, образованию и вакансии
func AnalyzeBias(apps []ApplicationRecord) BiasAnalysis {
	byExperience := make(map[string]*rateBucket, len(experienceRanges))
	for _, r := range experienceRanges {
		byExperience[r] = &rateBucket{}
	}
	byEducation := map[string]*rateBucket{}
	byJob := map[string]*rateBucket{}

	for _, app := range apps {
		byExperience[experienceRange(app.experienceYears())].add(app)

		if len(app.Education) != 0 {
			level := orSentinel(app.Education[0].DegreeLevel, notSpecifiedSentinel)
			if byEducation[level] == nil {
				byEducation[level] = &rateBucket{}
			}
			byEducation[level].add(app)
		}

		job := orSentinel(app.JobClass, unknownSentinel)
		if byJob[job] == nil {
			byJob[job] = &rateBucket{}
		}
		byJob[job].add(app)
	}

	analysis := BiasAnalysis{
		ByExperience: make([]GroupRate, 0, len(experienceRanges)),
		ByEducation:  sortedRates(byEducation),
		ByJob:        sortedRates(byJob),
		Alerts:       []BiasAlert{},
	}
	for _, r := range experienceRanges {
		analysis.ByExperience = append(analysis.ByExperience, byExperience[r].toRate(r))
	}

	var ok bool
	analysis.ExperienceDisparity, ok = Disparity(analysis.ByExperience)
	if ok && analysis.ExperienceDisparity > disparityThreshold {
		analysis.Alerts = append(analysis.Alerts, newBiasAlert(GroupingExperience, "Experience", analysis.ExperienceDisparity))
	}
	analysis.EducationDisparity, ok = Disparity(analysis.ByEducation)
	if ok && analysis.EducationDisparity > disparityThreshold {
		analysis.Alerts = append(analysis.Alerts, newBiasAlert(GroupingEducation, "Education", analysis.EducationDisparity))
	}
	// по вакансиям размах только показывается
	analysis.JobDisparity, _ = Disparity(analysis.ByJob)
	analysis.FairnessGrade = FairnessGrade(len(analysis.Alerts))
	return analysis
}

func newBiasAlert(grouping, title string, disparity float64) BiasAlert {
	return BiasAlert{
		Type:      models.NoticeWarning,
		Grouping:  grouping,
		Disparity: disparity,
		Message:   fmt.Sprintf("%s bias: %d%% approval difference", title, int(math.Round(disparity))),
	}
}

func FairnessGrade(alerts int) string {
	switch {
	case alerts == 0:
		return "A+"
	case alerts == 1:
		return "B"
	}
	return "C"
}
