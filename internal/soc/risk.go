package soc

// Risk labels rendered next to sessions and incidents. Score bands
// mirror the backend's UEBA scale (0..100).
const (
	RiskLow      = "LOW"
	RiskMedium   = "MEDIUM"
	RiskHigh     = "HIGH"
	RiskCritical = "CRITICAL"
)

// RiskLabel maps a backend risk score to its display band.
func RiskLabel(score float64) string {
	switch {
	case score >= 90:
		return RiskCritical
	case score >= 70:
		return RiskHigh
	case score >= 40:
		return RiskMedium
	default:
		return RiskLow
	}
}
