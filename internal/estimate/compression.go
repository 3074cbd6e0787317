package estimate

import "github.com/jonathan/buildwise/internal/types"

// AnalyzeCompression prices finishing the project in targetWeeks instead of baselineWeeks.
// It returns NoCompression when targetWeeks is nil. Callers must have checked that
// the target is strictly shorter than the baseline.
//
// The model is linear: every unit of acceleration above 1.0 needs 60% more labor.
// The acceleration factor and the labor percent are rounded before any cost is
// derived from them.
func AnalyzeCompression(baselineWeeks int, targetWeeks *int, baselineTotalCost, baselineLaborCost float64) types.Compression {
	if targetWeeks == nil {
		return types.NoCompression{}
	}
	target := *targetWeeks

	factor := Round2(float64(baselineWeeks) / float64(target))
	percent := Round2((factor - 1) * compressionLaborPercent)
	extraLabor := Round2(baselineLaborCost * percent / 100)

	return types.CompressionImpact{
		BaselineTimelineWeeks:    baselineWeeks,
		CompressedTimelineWeeks:  target,
		AccelerationFactor:       factor,
		AdditionalLaborCostINR:   extraLabor,
		AdditionalWorkersPercent: percent,
		CompressedTotalCostINR:   Round2(baselineTotalCost + extraLabor),
	}
}
