package models

import "time"

// Category is one of the three tracked emission sources.
type Category string

const (
	CategoryTransportation Category = "transportation"
	CategoryWaste          Category = "waste"
	CategoryEnergy         Category = "energy"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryTransportation, CategoryWaste, CategoryEnergy:
		return true
	}
	return false
}

// EmissionEntry is one persisted row: a user's amount for a category on a
// calendar day. At most one row exists per (user, category, date).
type EmissionEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Category  Category  `json:"category"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Snapshot holds the per-category sums for the current calendar month.
// Total is always derived from the three parts, never stored.
type Snapshot struct {
	Transport float64 `json:"transport"`
	Waste     float64 `json:"waste"`
	Energy    float64 `json:"energy"`
}

func (s Snapshot) Total() float64 {
	return s.Transport + s.Waste + s.Energy
}

type TransportationRequest struct {
	VehicleType string  `json:"vehicle_type"`
	FuelType    string  `json:"fuel_type"`
	VehicleAge  string  `json:"vehicle_age"`
	LastService string  `json:"last_service,omitempty"`
	DistanceKm  float64 `json:"distance_km"`
}

type TransportationResult struct {
	Emission   float64 `json:"emission"`
	Factor     float64 `json:"factor"`
	AgeFactor  float64 `json:"age_factor"`
	OldVehicle bool    `json:"old_vehicle"`
	Warning    string  `json:"warning,omitempty"`
}

type WasteRequest struct {
	PlasticKg float64 `json:"plastic_kg"`
	PaperKg   float64 `json:"paper_kg"`
	OrganicKg float64 `json:"organic_kg"`
	MetalKg   float64 `json:"metal_kg"`
	EwasteKg  float64 `json:"ewaste_kg"`
}

type WasteResult struct {
	Emission   float64            `json:"emission"`
	ByMaterial map[string]float64 `json:"by_material"`
}

type EnergyRequest struct {
	ElectricityKwh float64 `json:"electricity_kwh"`
	LpgKg          float64 `json:"lpg_kg"`
	Renewable      bool    `json:"renewable"`
}

type EnergyResult struct {
	Emission    float64 `json:"emission"`
	Electricity float64 `json:"electricity"`
	Lpg         float64 `json:"lpg"`
}

// SummaryResponse is the dashboard's single read: the current snapshot plus
// everything the target tracker derives from it.
type SummaryResponse struct {
	Emissions Snapshot `json:"emissions"`
	Total     float64  `json:"total"`
	Progress  Progress `json:"progress"`
}
