package domain

import (
	"strings"
	"time"
)

type VehicleStatus string

const (
	VehicleStatusAvailable     VehicleStatus = "AVAILABLE"
	VehicleStatusReserved      VehicleStatus = "RESERVED"
	VehicleStatusRented        VehicleStatus = "RENTED"
	VehicleStatusInMaintenance VehicleStatus = "IN_MAINTENANCE"
	VehicleStatusSold          VehicleStatus = "SOLD"
)

// Yard is the physical lot a vehicle is parked at while available.
type Yard struct {
	Code string `json:"code"`
	City string `json:"city"`
}

// YardForCity derives the lot a returned vehicle is assigned to from the
// pickup city: "São Paulo" becomes "YARD-SAOPAULO".
func YardForCity(city string) Yard {
	return Yard{Code: "YARD-" + normalizeCity(city), City: city}
}

var cityFolder = strings.NewReplacer(
	" ", "", "-", "",
	"á", "a", "à", "a", "â", "a", "ã", "a", "ä", "a",
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"í", "i", "ì", "i", "î", "i", "ï", "i",
	"ó", "o", "ò", "o", "ô", "o", "õ", "o", "ö", "o",
	"ú", "u", "ù", "u", "û", "u", "ü", "u",
	"ç", "c",
)

func normalizeCity(city string) string {
	return strings.ToUpper(cityFolder.Replace(strings.ToLower(strings.TrimSpace(city))))
}

// Vehicle is a concrete fleet unit. The plate is its identity and is stored
// uppercase. Vehicles are never deleted; decommissioning marks them SOLD.
type Vehicle struct {
	Plate                    string        `json:"plate"`
	Model                    string        `json:"model"`
	Category                 CategoryCode  `json:"category"`
	City                     string        `json:"city"`
	DailyRateCents           int64         `json:"daily_rate_cents"`
	Status                   VehicleStatus `json:"status"`
	ScheduledMaintenanceDate *time.Time    `json:"scheduled_maintenance_date,omitempty"`
	MaintenanceNote          string        `json:"maintenance_note,omitempty"`
	Yard                     *Yard         `json:"yard,omitempty"`
}

func NewVehicle(plate, model string, category CategoryCode, city string, dailyRateCents int64) (*Vehicle, error) {
	plate = strings.ToUpper(strings.TrimSpace(plate))
	if plate == "" || model == "" || city == "" || dailyRateCents <= 0 || !category.Valid() {
		return nil, ErrInvalidVehicle
	}
	yard := YardForCity(city)
	return &Vehicle{
		Plate:          plate,
		Model:          model,
		Category:       category,
		City:           city,
		DailyRateCents: dailyRateCents,
		Status:         VehicleStatusAvailable,
		Yard:           &yard,
	}, nil
}

func (v *Vehicle) Available() bool {
	return v.Status == VehicleStatusAvailable
}

// Rent hands the vehicle over at pickup.
func (v *Vehicle) Rent() error {
	switch v.Status {
	case VehicleStatusSold:
		return ErrVehicleSold
	case VehicleStatusInMaintenance:
		return ErrVehicleUnderMaintenance
	case VehicleStatusAvailable:
		v.Status = VehicleStatusRented
		v.Yard = nil
		return nil
	default:
		return ErrVehicleUnavailable
	}
}

// Return puts the vehicle back in the available pool at the given yard.
func (v *Vehicle) Return(yard Yard) {
	v.Status = VehicleStatusAvailable
	v.Yard = &yard
}

// SendToMaintenance routes a damaged vehicle to the shop at return time.
// No yard is assigned while the vehicle is off the pool.
func (v *Vehicle) SendToMaintenance() {
	v.Status = VehicleStatusInMaintenance
	v.Yard = nil
}

// ScheduleMaintenance takes an available vehicle out of the pool for planned
// work. Reserved or rented vehicles cannot be scheduled.
func (v *Vehicle) ScheduleMaintenance(expectedEnd time.Time, note string) error {
	if v.Status != VehicleStatusAvailable {
		return ErrInvalidTransition
	}
	v.Status = VehicleStatusInMaintenance
	v.ScheduledMaintenanceDate = &expectedEnd
	v.MaintenanceNote = note
	v.Yard = nil
	return nil
}

// Decommission retires the vehicle from the fleet.
func (v *Vehicle) Decommission() error {
	if v.Status == VehicleStatusRented {
		return ErrInvalidTransition
	}
	v.Status = VehicleStatusSold
	v.Yard = nil
	return nil
}
