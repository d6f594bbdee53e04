package waterquality

import (
	"errors"
	"fmt"
)

// Product identifies a remediation product with a fixed label-derived
// conversion ratio.
type Product string

const (
	ProductAlkalineBuffer    Product = "alkaline_buffer"
	ProductRemineralizer     Product = "remineralizer"
	ProductNitrifyingCulture Product = "nitrifying_culture"
)

// Dosing errors.
var (
	ErrUnknownProduct = errors.New("unknown product")
	ErrUnknownUnit    = errors.New("unknown dimension unit")
)

// DoseRecommendation quantifies one remediation dose. FluidOunces is set
// only for liquid products.
type DoseRecommendation struct {
	Product     Product  `json:"product"`
	Quantity    float64  `json:"quantity"`
	Unit        string   `json:"unit"`
	FluidOunces *float64 `json:"fluid_ounces,omitempty"`
}

const mlPerFluidOunce = 29.5735

// AlkalineBufferDoseGrams returns the grams of alkaline buffer needed to
// raise KH by deltaKH in a tank of volumeL litres. Per label, 1 teaspoon
// (6 g) raises 2.8 dKH in 80 L. A non-positive delta needs no dose.
func AlkalineBufferDoseGrams(volumeL, deltaKH float64) float64 {
	if deltaKH <= 0 {
		return 0
	}
	const tspPerLitrePerDKH = 1.0 / (80 * 2.8)
	const gramsPerTsp = 6.0
	return volumeL * deltaKH * tspPerLitrePerDKH * gramsPerTsp
}

// RemineralizerDoseGrams returns the grams of remineralizer needed to raise
// GH by deltaGH in a tank of volumeL litres. Per label, 16 g raises 3 dGH
// in 80 L. A non-positive delta needs no dose.
func RemineralizerDoseGrams(volumeL, deltaGH float64) float64 {
	if deltaGH <= 0 {
		return 0
	}
	const gramsPerLitrePerDGH = 16.0 / (80 * 3)
	return volumeL * deltaGH * gramsPerLitrePerDGH
}

// NitrifyingCultureDose returns the millilitres (and fluid-ounce equivalent)
// of nitrifying bacteria culture for a tank of volumeL litres. New systems
// dose 119 ml per 38 L; established systems 60 ml per 38 L.
func NitrifyingCultureDose(volumeL float64, newSystem bool) (ml, flOz float64) {
	if volumeL <= 0 {
		return 0, 0
	}
	perBatch := 60.0
	if newSystem {
		perBatch = 119.0
	}
	ml = volumeL / 38.0 * perBatch
	return ml, ml / mlPerFluidOunce
}

// DoseRequest selects a product and its inputs. Delta is the KH/GH deficit
// for the powder buffers and is ignored for the bacterial culture, which
// doses by system age instead.
type DoseRequest struct {
	Product   Product `json:"product"`
	Delta     float64 `json:"delta"`
	NewSystem bool    `json:"new_system"`
}

// RecommendDose maps a product request and tank volume to a quantified dose.
// A parameter already at or above target (non-positive delta) yields a zero
// dose, not an error.
func RecommendDose(req DoseRequest, volumeL float64) (DoseRecommendation, error) {
	switch req.Product {
	case ProductAlkalineBuffer:
		return DoseRecommendation{
			Product:  req.Product,
			Quantity: AlkalineBufferDoseGrams(volumeL, req.Delta),
			Unit:     "g",
		}, nil
	case ProductRemineralizer:
		return DoseRecommendation{
			Product:  req.Product,
			Quantity: RemineralizerDoseGrams(volumeL, req.Delta),
			Unit:     "g",
		}, nil
	case ProductNitrifyingCulture:
		ml, flOz := NitrifyingCultureDose(volumeL, req.NewSystem)
		return DoseRecommendation{
			Product:     req.Product,
			Quantity:    ml,
			Unit:        "ml",
			FluidOunces: &flOz,
		}, nil
	}
	return DoseRecommendation{}, fmt.Errorf("%w: %q", ErrUnknownProduct, req.Product)
}

// WaterChangePercent returns the water change percentage (0–100) that
// dilutes a parameter from current down to target. No reduction needed or
// possible yields zero.
func WaterChangePercent(current, target float64) float64 {
	if current <= 0 || target >= current {
		return 0
	}
	return (current - target) / current * 100
}

// DimensionUnit selects the measurement unit for TankVolume.
type DimensionUnit string

const (
	UnitCentimeters DimensionUnit = "cm"
	UnitInches      DimensionUnit = "inches"
)

// TankVolume computes the volume of a rectangular tank in litres and US
// gallons from its dimensions.
func TankVolume(length, width, height float64, unit DimensionUnit) (litres, gallons float64, err error) {
	switch unit {
	case UnitCentimeters:
		litres = length * width * height / 1000
	case UnitInches:
		litres = length * width * height * 0.0163871
	default:
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
	}
	return litres, litres * 0.264172, nil
}
