package store

// HealthStore provides health check operations
type HealthStore interface {
	// CheckConnectivity verifies database connectivity
	CheckConnectivity() error

	// DatabaseName returns the name of the connected database via a live
	// round-trip
	DatabaseName() (string, error)
}
