package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"carbontrack-api/models"
)

// The three category calculators are pure: inputs in, one rounded kg CO₂
// figure out. Nothing here touches storage; persistence is the aggregator's
// job.

var (
	ErrVehicleTypeRequired = errors.New("vehicle type is required")
	ErrFuelTypeRequired    = errors.New("fuel type is required")
	ErrDistanceRequired    = errors.New("distance must be a positive number of km")
)

// CalculateTransportation computes distance × factor(vehicle, fuel) ×
// ageFactor. Vehicles aged 15+ years carry a flat 1.5 factor; younger ones
// 1 + 0.02 per year. The age arrives as free text and counts as 0 when it
// does not parse.
func CalculateTransportation(req models.TransportationRequest) (models.TransportationResult, error) {
	if req.VehicleType == "" {
		return models.TransportationResult{}, ErrVehicleTypeRequired
	}
	if req.FuelType == "" {
		return models.TransportationResult{}, ErrFuelTypeRequired
	}
	if req.DistanceKm <= 0 {
		return models.TransportationResult{}, ErrDistanceRequired
	}

	factor := defaultTransportFactor
	if byFuel, ok := transportFactors[req.VehicleType]; ok {
		if f, ok := byFuel[req.FuelType]; ok {
			factor = f
		}
	}

	age, err := strconv.Atoi(strings.TrimSpace(req.VehicleAge))
	if err != nil || age < 0 {
		age = 0
	}

	ageFactor := 1 + float64(age)*agePenaltyPerYear
	old := age >= oldVehicleAge
	if old {
		ageFactor = oldVehicleAgeFactor
	}

	result := models.TransportationResult{
		Emission:   Round2(req.DistanceKm * factor * ageFactor),
		Factor:     factor,
		AgeFactor:  ageFactor,
		OldVehicle: old,
	}
	if old {
		result.Warning = "Your vehicle is over 15 years old. Old vehicles produce 50% more CO₂; consider servicing or replacing it."
	}
	return result, nil
}

// CalculateWaste sums amount × factor over the fixed material set.
// Unentered materials are zero. The total is the sum of the already-rounded
// per-material figures, rounded again.
func CalculateWaste(req models.WasteRequest) (models.WasteResult, error) {
	amounts := map[string]float64{
		"Plastic": req.PlasticKg,
		"Paper":   req.PaperKg,
		"Organic": req.OrganicKg,
		"Metal":   req.MetalKg,
		"E-waste": req.EwasteKg,
	}

	byMaterial := make(map[string]float64, len(amounts))
	total := 0.0
	for material, kg := range amounts {
		if kg < 0 {
			return models.WasteResult{}, fmt.Errorf("%s amount must not be negative", strings.ToLower(material))
		}
		e := Round2(kg * wasteFactors[material])
		byMaterial[material] = e
		total += e
	}

	return models.WasteResult{
		Emission:   Round2(total),
		ByMaterial: byMaterial,
	}, nil
}

// CalculateEnergy computes the electricity and LPG terms; the renewable
// discount applies to electricity only. The total is rounded from the
// unrounded terms.
func CalculateEnergy(req models.EnergyRequest) (models.EnergyResult, error) {
	if req.ElectricityKwh < 0 {
		return models.EnergyResult{}, errors.New("electricity usage must not be negative")
	}
	if req.LpgKg < 0 {
		return models.EnergyResult{}, errors.New("LPG usage must not be negative")
	}

	multiplier := 1.0
	if req.Renewable {
		multiplier = renewableMultiplier
	}

	elec := req.ElectricityKwh * electricityFactor * multiplier
	lpg := req.LpgKg * lpgFactor

	return models.EnergyResult{
		Emission:    Round2(elec + lpg),
		Electricity: Round2(elec),
		Lpg:         Round2(lpg),
	}, nil
}
