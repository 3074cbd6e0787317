//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() EstimationRequest {
	req := NewEstimationRequest(DefaultWageRates(), DefaultMaterialRates())
	req.Project = ProjectSpec{BuiltUpAreaSqft: 1800, Floors: 2, TimelineWeeks: 36}
	return req
}

func TestEstimationRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *EstimationRequest)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid request without compression",
			mutate:  func(_ *EstimationRequest) {},
			wantErr: false,
		},
		{
			name: "valid compression target",
			mutate: func(r *EstimationRequest) {
				r.Compression = &CompressionRequest{TargetTimelineWeeks: 28}
			},
			wantErr: false,
		},
		{
			name: "zero area",
			mutate: func(r *EstimationRequest) {
				r.Project.BuiltUpAreaSqft = 0
			},
			wantErr: true,
			errMsg:  "BuiltUpAreaSqft",
		},
		{
			name: "negative floors",
			mutate: func(r *EstimationRequest) {
				r.Project.Floors = -1
			},
			wantErr: true,
			errMsg:  "Floors",
		},
		{
			name: "zero timeline",
			mutate: func(r *EstimationRequest) {
				r.Project.TimelineWeeks = 0
			},
			wantErr: true,
			errMsg:  "TimelineWeeks",
		},
		{
			name: "zero wage rate",
			mutate: func(r *EstimationRequest) {
				r.Wages.PainterDailyINR = 0
			},
			wantErr: true,
			errMsg:  "PainterDailyINR",
		},
		{
			name: "negative material rate",
			mutate: func(r *EstimationRequest) {
				r.Materials.SteelKgINR = -72
			},
			wantErr: true,
			errMsg:  "SteelKgINR",
		},
		{
			name: "target equal to timeline",
			mutate: func(r *EstimationRequest) {
				r.Compression = &CompressionRequest{TargetTimelineWeeks: 36}
			},
			wantErr: true,
			errMsg:  "must be less than",
		},
		{
			name: "target longer than timeline",
			mutate: func(r *EstimationRequest) {
				r.Compression = &CompressionRequest{TargetTimelineWeeks: 40}
			},
			wantErr: true,
			errMsg:  "must be less than",
		},
		{
			name: "zero target",
			mutate: func(r *EstimationRequest) {
				r.Compression = &CompressionRequest{TargetTimelineWeeks: 0}
			},
			wantErr: true,
			errMsg:  "TargetTimelineWeeks",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEstimationRequest_ValidateReturnsValidatorErrors(t *testing.T) {
	req := validRequest()
	req.Project.Floors = 0

	err := req.Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Floors", verrs[0].Field())
}

func TestEstimationRequest_ValidateTargetNotShorter(t *testing.T) {
	req := validRequest()
	req.Compression = &CompressionRequest{TargetTimelineWeeks: 36}

	err := req.Validate()
	var target *ErrTargetNotShorter
	require.ErrorAs(t, err, &target)
	assert.Equal(t, 36, target.TargetWeeks)
	assert.Equal(t, 36, target.TimelineWeeks)
}

func TestEstimationRequest_PartialRateOverride(t *testing.T) {
	req := NewEstimationRequest(DefaultWageRates(), DefaultMaterialRates())
	body := `{
		"project": {"built_up_area_sqft": 1200, "floors": 1, "timeline_weeks": 20},
		"wages": {"mason_daily_inr": 1200},
		"materials": {"brick_per_piece_inr": 10}
	}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	require.NoError(t, req.Validate())

	assert.Equal(t, 1200.0, req.Wages.MasonDailyINR)
	assert.Equal(t, 650.0, req.Wages.HelperDailyINR)
	assert.Equal(t, 10.0, req.Materials.BrickPerPieceINR)
	assert.Equal(t, 420.0, req.Materials.CementBagINR)
	assert.Nil(t, req.Compression)
	assert.Nil(t, req.TargetWeeks())
}

func TestEstimationRequest_TargetWeeks(t *testing.T) {
	req := validRequest()
	req.Compression = &CompressionRequest{TargetTimelineWeeks: 30}

	target := req.TargetWeeks()
	require.NotNil(t, target)
	assert.Equal(t, 30, *target)

	*target = 1
	assert.Equal(t, 30, req.Compression.TargetTimelineWeeks)
}

func TestCompression_JSON(t *testing.T) {
	resp := EstimationResponse{CompressionImpact: NoCompression{}}
	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"compression_impact":null`)

	resp.CompressionImpact = CompressionImpact{BaselineTimelineWeeks: 36, CompressedTimelineWeeks: 28, AccelerationFactor: 1.29}
	data, err = json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"compressed_timeline_weeks":28`)
	assert.Contains(t, string(data), `"acceleration_factor":1.29`)
}

func TestImpactOf(t *testing.T) {
	_, ok := ImpactOf(NoCompression{})
	assert.False(t, ok)

	_, ok = ImpactOf(nil)
	assert.False(t, ok)

	impact, ok := ImpactOf(CompressionImpact{CompressedTimelineWeeks: 20})
	assert.True(t, ok)
	assert.Equal(t, 20, impact.CompressedTimelineWeeks)

	impact, ok = ImpactOf(&CompressionImpact{CompressedTimelineWeeks: 12})
	assert.True(t, ok)
	assert.Equal(t, 12, impact.CompressedTimelineWeeks)
}
