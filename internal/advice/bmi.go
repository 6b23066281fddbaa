// Package advice maps body measurements to a BMI category and the static
// diet, exercise, hydration and tips copy for that category.
package advice

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// Category is one of the four BMI buckets.
type Category string

const (
	Underweight  Category = "Underweight"
	NormalWeight Category = "Normal weight"
	Overweight   Category = "Overweight"
	Obese        Category = "Obese"
)

// Categories lists the buckets in ascending BMI order.
var Categories = []Category{Underweight, NormalWeight, Overweight, Obese}

// Lower bounds of the upper three buckets. Each bucket is half-open: a BMI
// equal to a breakpoint belongs to the higher bucket.
const (
	NormalWeightFrom = 18.5
	OverweightFrom   = 25.0
	ObeseFrom        = 30.0
)

// WaterCoefficient is liters of water per kilogram of body weight per day.
// It is a rule of thumb, not a medical formula.
const WaterCoefficient = 0.035

// ComputeBMI returns weight / (height in meters)^2 rounded to one decimal
// place. A non-positive height yields +Inf or NaN.
func ComputeBMI(weightKG, heightCM float64) float64 {
	m := heightCM / 100
	return round1(weightKG / (m * m))
}

// Categorize buckets bmi. It is total: anything not below 30 (NaN included)
// is Obese.
func Categorize(bmi float64) Category {
	switch {
	case bmi < NormalWeightFrom:
		return Underweight
	case bmi < OverweightFrom:
		return NormalWeight
	case bmi < ObeseFrom:
		return Overweight
	default:
		return Obese
	}
}

// WaterTarget returns the suggested daily intake in liters, one decimal place.
func WaterTarget(weightKG float64) float64 {
	return round1(weightKG * WaterCoefficient)
}

// round1 rounds the exact binary value of v to one decimal, ties to even.
// 24.949999999999999 stays below 24.95 and so becomes 24.9.
func round1(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return exactDecimal(v).RoundBank(1).InexactFloat64()
}

// exactDecimal converts a finite v without loss: v = m * 2^e, and for e < 0
// that is m * 5^-e * 10^e.
func exactDecimal(v float64) decimal.Decimal {
	frac, exp := math.Frexp(v)
	m := big.NewInt(int64(frac * (1 << 53)))
	exp -= 53
	if exp >= 0 {
		return decimal.NewFromBigInt(m.Lsh(m, uint(exp)), 0)
	}
	pow := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-exp)), nil)
	return decimal.NewFromBigInt(m.Mul(m, pow), int32(exp))
}
