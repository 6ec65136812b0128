// Package repositories implements SQLite persistence for all domain entities.
//
// Each repository handles CRUD operations with atomic sequence generation for human-readable ordering.
// All repositories support soft deletes via deleted_at timestamps and exclude deleted records from queries by default.
//
// Key Implementations:
//   - [AgencyRepository] : branches, filterable by name
//   - [VehicleRepository] : fleet, filterable by agency, availability and plate
//   - [CustomerRepository] : customers with document-based lookups
//   - [RentalRepository] : rentals, with transactional open/close that also move the vehicle
//
// Sequence numbers provide stable, human-readable ordering (e.g., rental #42, vehicle #15) independent of UUIDs and creation timestamps.
// The [NextSequence] function atomically increments per-table sequence counters in dedicated sequence tables.
//
// Repositories only read references by ID. Hydrating related entities is left to the services, which must not issue
// a query while a result set is still open: in-memory databases run on a single connection.
package repositories
