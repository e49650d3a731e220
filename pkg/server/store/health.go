package store

// HealthStore provides health check operations
type HealthStore interface {
	// CheckConnectivity verifies the cache database is reachable
	CheckConnectivity() error
}
