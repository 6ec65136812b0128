// Package services holds the rental business rules on top of the repositories.
//
// # Interfaces
//
// Screens and CLI commands depend on [AgencyService], [VehicleService], [CustomerService] and [RentalService] only,
// so tests can swap in fakes. [New] wires the SQLite-backed implementations into a [Services] bundle.
//
// # Rental Rules
//
// A rental can only be opened for an available vehicle parked at the pickup agency, and its estimated return must
// come after pickup. Closing prices the rental by billable days (started 24h periods, at least one) times the daily
// rate frozen at pickup, then parks the vehicle, available again, at the return agency.
//
// # Hydration
//
// Listings return records with their references filled in ([models.Vehicle.Agency], [models.Rental.Customer], ...)
// so screens never need a second lookup. References are loaded after the listing rows are closed.
//
// # Error Handling
//
// Services return the shared sentinels wrapped with context:
//   - [shared.ErrVehicleUnavailable] : the vehicle is rented
//   - [shared.ErrWrongAgency] : the vehicle is parked elsewhere
//   - [shared.ErrInvalidPeriod] : dates out of order
//   - [shared.ErrRentalClosed] : the rental was already returned
package services
