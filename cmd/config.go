package cmd

// Config carries the runtime settings of the application, loaded from the
// environment by the entrypoint.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// StorageMode selects the persistence backend: "postgres" or "inmemory".
	StorageMode string

	// GpsToleranceMeters is the maximum allowed distance between a rider's
	// reported position and the expected location at arrival checks.
	GpsToleranceMeters float64

	// RiderAcceptanceTimeout is how long an offered rider has to accept an
	// order before it is reassigned.
	RiderAcceptanceTimeoutMinutes int
}
