package services

import (
	"testing"

	"carbontrack-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateTransportation(t *testing.T) {
	cases := []struct {
		name    string
		req     models.TransportationRequest
		want    float64
		wantErr error
	}{
		{
			name: "car petrol with five year old vehicle",
			req:  models.TransportationRequest{VehicleType: "Car", FuelType: "Petrol", VehicleAge: "5", DistanceKm: 500},
			// 500 × 0.21 × 1.10
			want: 115.50,
		},
		{
			name: "age 15 and above caps the age factor at 1.5",
			req:  models.TransportationRequest{VehicleType: "Car", FuelType: "Petrol", VehicleAge: "20", DistanceKm: 100},
			want: 31.50,
		},
		{
			name: "empty age counts as zero",
			req:  models.TransportationRequest{VehicleType: "Car", FuelType: "Diesel", VehicleAge: "", DistanceKm: 100},
			want: 27.00,
		},
		{
			name: "unparseable age counts as zero",
			req:  models.TransportationRequest{VehicleType: "Car", FuelType: "Diesel", VehicleAge: "old-ish", DistanceKm: 100},
			want: 27.00,
		},
		{
			name: "unknown vehicle falls back to the default factor",
			req:  models.TransportationRequest{VehicleType: "Tractor", FuelType: "Petrol", VehicleAge: "0", DistanceKm: 100},
			want: 20.00,
		},
		{
			name: "unknown fuel falls back to the default factor",
			req:  models.TransportationRequest{VehicleType: "Car", FuelType: "Kerosene", VehicleAge: "0", DistanceKm: 100},
			want: 20.00,
		},
		{
			name: "bicycle is emission free",
			req:  models.TransportationRequest{VehicleType: "Bike", FuelType: "Petrol", VehicleAge: "3", DistanceKm: 250},
			want: 0,
		},
		{
			name:    "missing vehicle type",
			req:     models.TransportationRequest{FuelType: "Petrol", DistanceKm: 100},
			wantErr: ErrVehicleTypeRequired,
		},
		{
			name:    "missing fuel type",
			req:     models.TransportationRequest{VehicleType: "Car", DistanceKm: 100},
			wantErr: ErrFuelTypeRequired,
		},
		{
			name:    "missing distance",
			req:     models.TransportationRequest{VehicleType: "Car", FuelType: "Petrol"},
			wantErr: ErrDistanceRequired,
		},
		{
			name:    "negative distance",
			req:     models.TransportationRequest{VehicleType: "Car", FuelType: "Petrol", DistanceKm: -10},
			wantErr: ErrDistanceRequired,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := CalculateTransportation(tc.req)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, result.Emission)
			assert.GreaterOrEqual(t, result.Emission, 0.0)
		})
	}
}

func TestCalculateTransportationOldVehicleWarning(t *testing.T) {
	result, err := CalculateTransportation(models.TransportationRequest{
		VehicleType: "Car", FuelType: "Petrol", VehicleAge: "17", DistanceKm: 10,
	})
	require.NoError(t, err)
	assert.True(t, result.OldVehicle)
	assert.Equal(t, 1.5, result.AgeFactor)
	assert.NotEmpty(t, result.Warning)

	result, err = CalculateTransportation(models.TransportationRequest{
		VehicleType: "Car", FuelType: "Petrol", VehicleAge: "14", DistanceKm: 10,
	})
	require.NoError(t, err)
	assert.False(t, result.OldVehicle)
	assert.InDelta(t, 1.28, result.AgeFactor, 1e-9)
	assert.Empty(t, result.Warning)
}

func TestCalculateWaste(t *testing.T) {
	// 2 × 6.0 + 3 × 1.1
	result, err := CalculateWaste(models.WasteRequest{PlasticKg: 2, PaperKg: 3})
	require.NoError(t, err)
	assert.Equal(t, 15.3, result.Emission)
	assert.Equal(t, 12.0, result.ByMaterial["Plastic"])
	assert.Equal(t, 3.3, result.ByMaterial["Paper"])
	assert.Equal(t, 0.0, result.ByMaterial["Organic"])
	assert.Equal(t, 0.0, result.ByMaterial["Metal"])
	assert.Equal(t, 0.0, result.ByMaterial["E-waste"])
}

func TestCalculateWasteAllMaterials(t *testing.T) {
	result, err := CalculateWaste(models.WasteRequest{
		PlasticKg: 1, PaperKg: 1, OrganicKg: 1, MetalKg: 1, EwasteKg: 1,
	})
	require.NoError(t, err)
	// 6.0 + 1.1 + 0.5 + 1.5 + 20.0
	assert.Equal(t, 29.1, result.Emission)
}

func TestCalculateWasteRejectsNegative(t *testing.T) {
	_, err := CalculateWaste(models.WasteRequest{PlasticKg: -1})
	assert.Error(t, err)
}

func TestCalculateEnergy(t *testing.T) {
	cases := []struct {
		name string
		req  models.EnergyRequest
		want models.EnergyResult
	}{
		{
			name: "renewable discount applies to electricity only",
			req:  models.EnergyRequest{ElectricityKwh: 300, LpgKg: 14, Renewable: true},
			// 300 × 0.82 × 0.3 + 14 × 2.98
			want: models.EnergyResult{Emission: 115.52, Electricity: 73.8, Lpg: 41.72},
		},
		{
			name: "no renewable discount",
			req:  models.EnergyRequest{ElectricityKwh: 300, LpgKg: 14},
			want: models.EnergyResult{Emission: 287.72, Electricity: 246.0, Lpg: 41.72},
		},
		{
			name: "zero usage is zero emissions",
			req:  models.EnergyRequest{},
			want: models.EnergyResult{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := CalculateEnergy(tc.req)
			require.NoError(t, err)
			assert.Equal(t, tc.want, result)
		})
	}
}

func TestCalculateEnergyRejectsNegative(t *testing.T) {
	_, err := CalculateEnergy(models.EnergyRequest{ElectricityKwh: -1})
	assert.Error(t, err)
	_, err = CalculateEnergy(models.EnergyRequest{LpgKg: -1})
	assert.Error(t, err)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 115.5, Round2(115.50000000001))
	assert.Equal(t, 1.23, Round2(1.234))
	assert.Equal(t, 1.24, Round2(1.236))
	assert.Equal(t, 0.26, Round2(0.255000001))
	assert.Equal(t, 0.0, Round2(0))
}
