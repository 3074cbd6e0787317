package types

// WageRates holds daily wages in INR per worker role.
type WageRates struct {
	MasonDailyINR       float64 `json:"mason_daily_inr" yaml:"mason_daily_inr" validate:"gt=0"`
	HelperDailyINR      float64 `json:"helper_daily_inr" yaml:"helper_daily_inr" validate:"gt=0"`
	CarpenterDailyINR   float64 `json:"carpenter_daily_inr" yaml:"carpenter_daily_inr" validate:"gt=0"`
	BarBenderDailyINR   float64 `json:"bar_bender_daily_inr" yaml:"bar_bender_daily_inr" validate:"gt=0"`
	ElectricianDailyINR float64 `json:"electrician_daily_inr" yaml:"electrician_daily_inr" validate:"gt=0"`
	PlumberDailyINR     float64 `json:"plumber_daily_inr" yaml:"plumber_daily_inr" validate:"gt=0"`
	PainterDailyINR     float64 `json:"painter_daily_inr" yaml:"painter_daily_inr" validate:"gt=0"`
}

// DefaultWageRates returns the standard wage table.
func DefaultWageRates() WageRates {
	return WageRates{
		MasonDailyINR:       900,
		HelperDailyINR:      650,
		CarpenterDailyINR:   1000,
		BarBenderDailyINR:   1000,
		ElectricianDailyINR: 1100,
		PlumberDailyINR:     1050,
		PainterDailyINR:     900,
	}
}

// Daily returns the daily wage for a role, or 0 for an unknown role.
func (w WageRates) Daily(role Role) float64 {
	switch role {
	case RoleMason:
		return w.MasonDailyINR
	case RoleHelper:
		return w.HelperDailyINR
	case RoleCarpenter:
		return w.CarpenterDailyINR
	case RoleBarBender:
		return w.BarBenderDailyINR
	case RoleElectrician:
		return w.ElectricianDailyINR
	case RolePlumber:
		return w.PlumberDailyINR
	case RolePainter:
		return w.PainterDailyINR
	default:
		return 0
	}
}

// MergeWithDefaults returns a copy with zero fields filled from defaults.
func (w WageRates) MergeWithDefaults(defaults WageRates) WageRates {
	result := w
	fill(&result.MasonDailyINR, defaults.MasonDailyINR)
	fill(&result.HelperDailyINR, defaults.HelperDailyINR)
	fill(&result.CarpenterDailyINR, defaults.CarpenterDailyINR)
	fill(&result.BarBenderDailyINR, defaults.BarBenderDailyINR)
	fill(&result.ElectricianDailyINR, defaults.ElectricianDailyINR)
	fill(&result.PlumberDailyINR, defaults.PlumberDailyINR)
	fill(&result.PainterDailyINR, defaults.PainterDailyINR)
	return result
}

// MaterialRates holds unit prices in INR for each bulk material.
type MaterialRates struct {
	CementBagINR     float64 `json:"cement_bag_inr" yaml:"cement_bag_inr" validate:"gt=0"`
	SteelKgINR       float64 `json:"steel_kg_inr" yaml:"steel_kg_inr" validate:"gt=0"`
	SandCuftINR      float64 `json:"sand_cuft_inr" yaml:"sand_cuft_inr" validate:"gt=0"`
	AggregateCuftINR float64 `json:"aggregate_cuft_inr" yaml:"aggregate_cuft_inr" validate:"gt=0"`
	BrickPerPieceINR float64 `json:"brick_per_piece_inr" yaml:"brick_per_piece_inr" validate:"gt=0"`
}

// DefaultMaterialRates returns the standard material price table.
func DefaultMaterialRates() MaterialRates {
	return MaterialRates{
		CementBagINR:     420,
		SteelKgINR:       72,
		SandCuftINR:      55,
		AggregateCuftINR: 45,
		BrickPerPieceINR: 8.5,
	}
}

// MergeWithDefaults returns a copy with zero fields filled from defaults.
func (m MaterialRates) MergeWithDefaults(defaults MaterialRates) MaterialRates {
	result := m
	fill(&result.CementBagINR, defaults.CementBagINR)
	fill(&result.SteelKgINR, defaults.SteelKgINR)
	fill(&result.SandCuftINR, defaults.SandCuftINR)
	fill(&result.AggregateCuftINR, defaults.AggregateCuftINR)
	fill(&result.BrickPerPieceINR, defaults.BrickPerPieceINR)
	return result
}

func fill(field *float64, fallback float64) {
	if *field == 0 {
		*field = fallback
	}
}
