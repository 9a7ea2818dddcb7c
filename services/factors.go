package services

import "math"

// Emission factors in kg CO₂ per activity unit (km, kg, kWh). Kept in code:
// they change with methodology revisions, not at runtime.

// transportFactors maps vehicle type -> fuel type -> kg CO₂ per km.
var transportFactors = map[string]map[string]float64{
	"Car":        {"Petrol": 0.21, "Diesel": 0.27, "Electric": 0.05, "CNG": 0.16, "Hybrid": 0.12},
	"Bike":       {"Petrol": 0, "Diesel": 0, "Electric": 0, "CNG": 0, "Hybrid": 0},
	"Bus":        {"Petrol": 0.089, "Diesel": 0.101, "Electric": 0.02, "CNG": 0.07, "Hybrid": 0.06},
	"Train":      {"Petrol": 0.041, "Diesel": 0.041, "Electric": 0.02, "CNG": 0.03, "Hybrid": 0.03},
	"Motorcycle": {"Petrol": 0.103, "Diesel": 0.12, "Electric": 0.02, "CNG": 0.08, "Hybrid": 0.07},
	"Airplane":   {"Petrol": 0.255, "Diesel": 0.255, "Electric": 0.1, "CNG": 0.2, "Hybrid": 0.18},
}

// defaultTransportFactor applies to (vehicle, fuel) pairs missing from the
// table.
const defaultTransportFactor = 0.2

// wasteFactors maps material -> kg CO₂ per kg disposed.
var wasteFactors = map[string]float64{
	"Plastic": 6.0,
	"Paper":   1.1,
	"Organic": 0.5,
	"Metal":   1.5,
	"E-waste": 20.0,
}

const (
	electricityFactor   = 0.82 // kg CO₂ per kWh of grid electricity
	lpgFactor           = 2.98 // kg CO₂ per kg of LPG
	renewableMultiplier = 0.3  // discount on the electricity term only

	oldVehicleAge       = 15
	oldVehicleAgeFactor = 1.5
	agePenaltyPerYear   = 0.02
)

// Round2 rounds half-up to 2 decimal places, the rounding every calculator
// and sub-result uses.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
