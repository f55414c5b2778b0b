package policy

import (
	"math"
	"math/big"
	"net/http"
	"strconv"

	"brainagro/cmd/internal/utils/apierror"
)

const (
	AreaFieldTotal = "total_area"

	// AreaScale is the number of decimals kept by the area columns.
	AreaScale = 2

	AreaSumMessage = "The sum of cultivable area and vegetation area must be less than or equal to the total area"
)

// FarmAreas holds the effective area values of a farm. A nil field means the
// value is unknown at this point.
type FarmAreas struct {
	Total      *float64
	Cultivable *float64
	Vegetation *float64
}

// Merge returns the areas that would be persisted if incoming was applied on top of a.
func (a FarmAreas) Merge(incoming FarmAreas) FarmAreas {
	merged := a
	if incoming.Total != nil {
		merged.Total = incoming.Total
	}
	if incoming.Cultivable != nil {
		merged.Cultivable = incoming.Cultivable
	}
	if incoming.Vegetation != nil {
		merged.Vegetation = incoming.Vegetation
	}
	return merged
}

// IsAreaValid reports whether cultivable + vegetation <= total.
//
// Missing or non numeric values are not this check's business: they pass
// here and are left to the field validators. Equality is valid.
func IsAreaValid(total, cultivable, vegetation *float64) bool {
	if total == nil || cultivable == nil || vegetation == nil {
		return true
	}

	if !isFinite(*total) || !isFinite(*cultivable) || !isFinite(*vegetation) {
		return true
	}

	// Compare what the columns will hold, so 0.1 + 0.2 <= 0.3 holds and
	// 5.005 counts as 5.01
	sum := new(big.Rat).Add(toScale(*cultivable), toScale(*vegetation))
	return sum.Cmp(toScale(*total)) <= 0
}

// RoundArea rounds v half away from zero to the column scale.
func RoundArea(v float64) float64 {
	if !isFinite(v) {
		return v
	}
	f, _ := toScale(v).Float64()
	return f
}

// FarmPolicy encapsulates the cross-field rules of a farm.
// It returns apierror.ErrorResponse directly for seamless integration with handlers.
type FarmPolicy struct{}

func NewFarmPolicy() *FarmPolicy {
	return &FarmPolicy{}
}

// CheckAreas validates the effective areas, the error is attached to total_area.
func (p *FarmPolicy) CheckAreas(areas FarmAreas) *apierror.StructuredError {
	if IsAreaValid(areas.Total, areas.Cultivable, areas.Vegetation) {
		return nil
	}

	err := apierror.NewStructured(http.StatusBadRequest)
	err.Add(AreaFieldTotal, AreaSumMessage)
	return err
}

// toDecimal converts v through its shortest decimal representation, the one
// it was most likely parsed from.
func toDecimal(v float64) *big.Rat {
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(v, 'f', -1, 64))
	if !ok {
		return new(big.Rat).SetFloat64(v)
	}
	return r
}

// toScale rounds the decimal value of v half away from zero to AreaScale decimals.
func toScale(v float64) *big.Rat {
	unit := new(big.Int).Exp(big.NewInt(10), big.NewInt(AreaScale), nil)

	scaled := new(big.Rat).Mul(toDecimal(v), new(big.Rat).SetInt(unit))
	half := big.NewRat(1, 2)
	if scaled.Sign() < 0 {
		scaled.Sub(scaled, half)
	} else {
		scaled.Add(scaled, half)
	}

	// Quo truncates towards zero
	q := new(big.Int).Quo(scaled.Num(), scaled.Denom())
	return new(big.Rat).SetFrac(q, unit)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
