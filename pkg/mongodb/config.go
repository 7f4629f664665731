package mongodb

import "time"

// Config represents the configuration for the database connection.
type Config struct {
	ConnectionURL   string        `env:"NOTIFY_MONGODB_URL,required"`
	Database        string        `env:"NOTIFY_MONGODB_DATABASE" envDefault:"notify"`
	ConnectTimeout  time.Duration `env:"NOTIFY_MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`
	MaxPoolSize     uint64        `env:"NOTIFY_MONGODB_MAX_POOL_SIZE" envDefault:"100"`
	MinPoolSize     uint64        `env:"NOTIFY_MONGODB_MIN_POOL_SIZE" envDefault:"1"`
	MaxConnIdleTime time.Duration `env:"NOTIFY_MONGODB_MAX_CONN_IDLE_TIME" envDefault:"300s"`
	RetryWrites     bool          `env:"NOTIFY_MONGODB_RETRY_WRITES" envDefault:"true"`
	RetryReads      bool          `env:"NOTIFY_MONGODB_RETRY_READS" envDefault:"true"`
	RetryAttempts   int           `env:"NOTIFY_MONGODB_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval   time.Duration `env:"NOTIFY_MONGODB_RETRY_INTERVAL" envDefault:"5s"`
}
