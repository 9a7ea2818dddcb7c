package services

import "carbontrack-api/models"

// Static educational content behind the learn endpoints. Mirrors the factor
// tables the calculators actually use.

func FactorCatalog() []models.FactorInfo {
	catalog := []models.FactorInfo{
		{
			Name:        "Electricity",
			Description: "Grid electricity from power plants.",
			Factor:      electricityFactor,
			Unit:        "kg CO₂/kWh",
		},
		{
			Name:        "LPG/Gas",
			Description: "Cooking and heating fuel.",
			Factor:      lpgFactor,
			Unit:        "kg CO₂/kg",
		},
		{
			Name:        "Renewable energy",
			Description: "Solar or wind supply discounts the electricity term to 30%.",
			Factor:      renewableMultiplier,
			Unit:        "multiplier",
		},
	}

	for vehicle, byFuel := range transportFactors {
		factors := make(map[string]float64, len(byFuel))
		for fuel, f := range byFuel {
			factors[fuel] = f
		}
		catalog = append(catalog, models.FactorInfo{
			Name:        vehicle,
			Description: "Per-km emissions by fuel type.",
			Factors:     factors,
			Unit:        "kg CO₂/km",
		})
	}

	for material, f := range wasteFactors {
		catalog = append(catalog, models.FactorInfo{
			Name:        material,
			Description: "Per-kg emissions of disposed " + material + " waste.",
			Factor:      f,
			Unit:        "kg CO₂/kg",
		})
	}

	return catalog
}

func ReductionTips() []models.ReductionTip {
	return []models.ReductionTip{
		{Category: "transportation", Title: "Use Public Transport", Text: "Taking the bus or train can reduce your carbon footprint by up to 50% compared to driving alone."},
		{Category: "transportation", Title: "Consider Electric Vehicles", Text: "EVs produce zero direct emissions and can significantly reduce your carbon footprint."},
		{Category: "waste", Title: "Reduce Plastic Usage", Text: "Carry reusable bags, bottles, and containers. Say no to single-use plastics."},
		{Category: "waste", Title: "Recycle E-waste Properly", Text: "Donate or recycle electronics instead of binning them; e-waste is the heaviest emitter per kg."},
		{Category: "energy", Title: "Use Renewable Energy", Text: "Switch to solar panels or choose a green energy provider for your home."},
		{Category: "energy", Title: "Energy-Efficient Appliances", Text: "Replace old appliances with energy-efficient models. Use LED bulbs."},
		{Category: "general", Title: "Plant Trees", Text: "Trees absorb CO₂. Support reforestation efforts or plant trees in your community."},
	}
}

func Quotes() []models.Quote {
	return []models.Quote{
		{Text: "The Earth does not belong to us: we belong to the Earth.", Author: "Marlee Matlin"},
		{Text: "We do not inherit the Earth from our ancestors; we borrow it from our children.", Author: "Native American Proverb"},
		{Text: "The greatest threat to our planet is the belief that someone else will save it.", Author: "Robert Swan"},
	}
}
