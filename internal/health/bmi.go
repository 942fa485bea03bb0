// Package health converts body metrics into a BMI, a weight status and a
// daily calorie target. Nothing in here performs I/O.
package health

import (
	"fmt"
	"math"

	"github.com/pageza/mealcraft/backend/internal/models"
)

// Status is the weight category derived from a BMI.
type Status string

const (
	StatusUnderweight Status = "Underweight"
	StatusHealthy     Status = "Healthy"
	StatusOverweight  Status = "Overweight"
	StatusObese       Status = "Obese"
)

// Bands selects the BMI thresholds used by Classify.
type Bands string

const (
	// BandsLegacy keeps the historical thresholds. Values in [24.9, 25) and
	// [29.9, 30) are reported as Obese.
	BandsLegacy Bands = "legacy"
	// BandsContiguous uses closed bands with no gaps.
	BandsContiguous Bands = "contiguous"
)

// ParseBands resolves a configuration value. Empty means legacy.
func ParseBands(s string) (Bands, error) {
	switch Bands(s) {
	case "", BandsLegacy:
		return BandsLegacy, nil
	case BandsContiguous:
		return BandsContiguous, nil
	default:
		return "", fmt.Errorf("unknown BMI bands %q (want %q or %q)", s, BandsLegacy, BandsContiguous)
	}
}

// Classify maps bmi to a Status using the selected thresholds.
func (b Bands) Classify(bmi float64) Status {
	if b == BandsContiguous {
		return ClassifyContiguous(bmi)
	}
	return Classify(bmi)
}

// BmiResult is the health report for one submission.
type BmiResult struct {
	BMI    float64 `json:"bmi" yaml:"bmi"`
	Status Status  `json:"status" yaml:"status"`
}

// ComputeBMI returns weight / height² with height converted to metres,
// rounded to two decimals. A result that is not a positive finite number is
// reported as a validation error.
func ComputeBMI(weightKg, heightCm float64) (float64, error) {
	if !models.PositiveFinite(weightKg) {
		return 0, models.NewValidationError("weight_kg", "must be a finite number greater than 0")
	}
	if !models.PositiveFinite(heightCm) {
		return 0, models.NewValidationError("height_cm", "must be a finite number greater than 0")
	}
	m := heightCm / 100
	bmi := round2(weightKg / (m * m))
	if !models.PositiveFinite(bmi) {
		return 0, models.NewValidationError("weight_kg", "out of range for height %g cm", heightCm)
	}
	return bmi, nil
}

// Classify applies the legacy thresholds.
func Classify(bmi float64) Status {
	switch {
	case bmi < 18.5:
		return StatusUnderweight
	case bmi >= 18.5 && bmi < 24.9:
		return StatusHealthy
	case bmi >= 25 && bmi < 29.9:
		return StatusOverweight
	default:
		return StatusObese
	}
}

// ClassifyContiguous applies the WHO bands: <18.5, [18.5,25), [25,30), >=30.
func ClassifyContiguous(bmi float64) Status {
	switch {
	case bmi < 18.5:
		return StatusUnderweight
	case bmi < 25:
		return StatusHealthy
	case bmi < 30:
		return StatusOverweight
	default:
		return StatusObese
	}
}

// Evaluate computes and classifies the BMI for profile.
func Evaluate(profile models.UserProfile, bands Bands) (BmiResult, error) {
	bmi, err := ComputeBMI(profile.WeightKg, profile.HeightCm)
	if err != nil {
		return BmiResult{}, err
	}
	return BmiResult{BMI: bmi, Status: bands.Classify(bmi)}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
