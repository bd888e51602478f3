package domain

import "errors"

// Business-rule failures returned by the rental core. All of them mean the
// request itself was invalid, not that something transient went wrong, so
// callers must not retry. The HTTP adapter maps each one to a status code.
var (
	ErrInvalidRange = errors.New("return date cannot be before the pickup date")

	ErrCategoryNotFound    = errors.New("category not found")
	ErrVehicleNotFound     = errors.New("vehicle not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrRentalNotFound      = errors.New("rental not found")
	ErrCustomerNotFound    = errors.New("customer not found")

	ErrNoAvailability = errors.New("no vehicles available for the requested period")

	ErrCancellationWindowViolation = errors.New("cancellation is not allowed within 12 hours of pickup")

	ErrInvalidCredentials = errors.New("driver license expired, renewal required")

	ErrVehicleSold             = errors.New("a sold vehicle cannot be rented")
	ErrVehicleUnderMaintenance = errors.New("the selected vehicle is under maintenance")
	ErrVehicleUnavailable      = errors.New("the vehicle is not available")
	ErrCategoryMismatch        = errors.New("vehicle category does not match the reservation")

	ErrRentalAlreadyFinished     = errors.New("the rental has already been finished")
	ErrRentalNotActive           = errors.New("the rental is not active")
	ErrReservationNotProcessable = errors.New("the reservation is not active")
	ErrInvalidTransition         = errors.New("the vehicle status does not allow this transition")

	ErrInvalidCustomer    = errors.New("invalid customer data")
	ErrInvalidVehicle     = errors.New("invalid vehicle data")
	ErrInvalidMaintenance = errors.New("invalid maintenance request")
)
