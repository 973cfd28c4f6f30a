package engine

import "math"

func round1(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*10) / 10
}

func clampRate(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}

// percent доля part от total в процентах, 0 при пустом знаменателе
func percent(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return clampRate(round1(float64(part) / float64(total) * 100))
}

// avgHours среднее время в часах по сумме секунд
func avgHours(totalSeconds int64, count int) float64 {
	if count <= 0 {
		return 0
	}
	return round1(float64(totalSeconds) / float64(count) / 3600)
}

func secondsToHours(totalSeconds int64) float64 {
	return round1(float64(totalSeconds) / 3600)
}

func ratio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return round1(numerator / denominator)
}
