package planner

import "math"

// Quality curve constants. The bitrate curve constants are empirical and
// kept as given.
const (
	QualityMax = 100
	CRFMax     = 51

	bitrateLow        = 0.5 // Mbit/s at quality 0.
	bitrateCurve      = 2.2
	bitrateCurveScale = 1000.0
)

// QualityToRate maps a 0-100 quality score to CRF, maxrate and bufsize.
// Higher quality means lower CRF and a higher bitrate cap; at 100 the cap
// reaches 12 Mbit/s. Scores outside 0-100 are clamped first.
func QualityToRate(quality int) RateControl {
	q := Clamp(quality, 0, QualityMax)

	// (100-q) / (100/51), truncated. Multiplying first keeps it exact.
	crf := (QualityMax - q) * CRFMax / QualityMax

	maxRate := math.Round(bitrateLow + math.Pow(float64(q), bitrateCurve)/(bitrateCurve*bitrateCurveScale))

	return RateControl{
		CRF:     crf,
		MaxRate: maxRate,
		BufSize: 2 * maxRate,
	}
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
