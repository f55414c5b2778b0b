package policy

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 {
	return &v
}

func TestIsAreaValid(t *testing.T) {
	tests := []struct {
		name                          string
		total, cultivable, vegetation *float64
		want                          bool
	}{
		{"sum below total", ptr(100), ptr(40), ptr(30), true},
		{"sum equal to total", ptr(100), ptr(60), ptr(40), true},
		{"sum above total", ptr(100), ptr(70), ptr(40), false},
		{"decimal equality", ptr(0.3), ptr(0.1), ptr(0.2), true},
		{"cents above total", ptr(100.5), ptr(50.26), ptr(50.25), false},
		{"rounded above total", ptr(10.004), ptr(5.005), ptr(4.995), false},
		{"rounded to equality", ptr(10.005), ptr(5.004), ptr(5.004), true},
		{"sub-cent overflow disappears", ptr(1), ptr(0.501), ptr(0.501), true},
		{"all zero", ptr(0), ptr(0), ptr(0), true},
		{"missing total", nil, ptr(70), ptr(40), true},
		{"missing cultivable", ptr(100), nil, ptr(400), true},
		{"missing vegetation", ptr(100), ptr(400), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAreaValid(tt.total, tt.cultivable, tt.vegetation))
		})
	}
}

func TestFarmAreasMerge(t *testing.T) {
	stored := FarmAreas{Total: ptr(100), Cultivable: ptr(60), Vegetation: ptr(40)}

	merged := stored.Merge(FarmAreas{Cultivable: ptr(70)})
	assert.Equal(t, 100.0, *merged.Total)
	assert.Equal(t, 70.0, *merged.Cultivable)
	assert.Equal(t, 40.0, *merged.Vegetation)

	// The receiver is left untouched
	assert.Equal(t, 60.0, *stored.Cultivable)
}

func TestFarmPolicyCheckAreas(t *testing.T) {
	p := NewFarmPolicy()

	assert.Nil(t, p.CheckAreas(FarmAreas{Total: ptr(100), Cultivable: ptr(50), Vegetation: ptr(50)}))

	err := p.CheckAreas(FarmAreas{Total: ptr(100), Cultivable: ptr(70), Vegetation: ptr(40)})
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.Code())
	assert.Equal(t, []string{AreaSumMessage}, err.Errors[AreaFieldTotal])
}

func TestRoundArea(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{10.004, 10},
		{5.005, 5.01},
		{4.995, 5},
		{1000.5, 1000.5},
		{0.125, 0.13},
		{-0.125, -0.13},
		{0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundArea(tt.in), "RoundArea(%v)", tt.in)
	}
}
