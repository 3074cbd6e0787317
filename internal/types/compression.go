package types

// Compression is the outcome of compression analysis. It is either
// NoCompression, when no target timeline was requested, or a CompressionImpact.
type Compression interface {
	isCompression()
}

// NoCompression marks an estimate for which no shorter timeline was requested.
// It serializes as JSON null.
type NoCompression struct{}

func (NoCompression) isCompression() {}

// MarshalJSON renders the absent variant as null.
func (NoCompression) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// CompressionImpact is the cost of accelerating the project to a shorter timeline.
type CompressionImpact struct {
	BaselineTimelineWeeks    int     `json:"baseline_timeline_weeks"`
	CompressedTimelineWeeks  int     `json:"compressed_timeline_weeks"`
	AccelerationFactor       float64 `json:"acceleration_factor"`
	AdditionalLaborCostINR   float64 `json:"additional_labor_cost_inr"`
	AdditionalWorkersPercent float64 `json:"additional_workers_percent"`
	CompressedTotalCostINR   float64 `json:"compressed_total_cost_inr"`
}

func (CompressionImpact) isCompression() {}

// ImpactOf unwraps a Compression. The boolean is false for NoCompression and nil.
func ImpactOf(c Compression) (CompressionImpact, bool) {
	switch v := c.(type) {
	case CompressionImpact:
		return v, true
	case *CompressionImpact:
		if v == nil {
			return CompressionImpact{}, false
		}
		return *v, true
	default:
		return CompressionImpact{}, false
	}
}
