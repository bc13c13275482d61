package distance

import "fmt"

// Metric names a distance kernel.
type Metric int

const (
	// MetricMahalanobis is the squared Mahalanobis distance (x−μ)ᵀ Σ⁻¹ (x−μ).
	MetricMahalanobis Metric = iota
	// MetricReducedSpace is the squared Euclidean distance to a center in score space.
	MetricReducedSpace
)

func (m Metric) String() string {
	switch m {
	case MetricMahalanobis:
		return "Mahalanobis"
	case MetricReducedSpace:
		return "ReducedSpace"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}
