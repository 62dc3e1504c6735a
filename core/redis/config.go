package redis

// Config holds configuration for the Redis connection.
type Config struct {
	// Addr is the host:port of the Redis server.
	Addr string `mapstructure:"addr" default:"localhost:6379"`
	// Password is the Redis password.
	Password string `mapstructure:"password" default:""`
	// DB is the Redis database index.
	DB int `mapstructure:"db" default:"0"`
	// TimeoutSeconds is the dial/read/write timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"2"`
}
