package configs

import "time"

// Redis configures the optional report cache. An empty Addr disables
// caching entirely; the service then reads reports straight from
// Postgres.
type Redis struct {
	Addr     string        `env:"ADDR" envDefault:""`
	Password string        `env:"PASSWORD" envDefault:""`
	DB       int           `env:"DB" envDefault:"0"`
	// TTL bounds how long a cached report is served before falling back
	// to the repository.
	TTL time.Duration `env:"TTL" envDefault:"1h"`
}

// Enabled reports whether a cache address was configured.
func (c Redis) Enabled() bool {
	return c.Addr != ""
}
