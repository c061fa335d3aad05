package config

import (
	"fmt"
	"time"
)

// Persistence engines a deployment can run on. The choice is read once at
// process start; there is no runtime switch and no mixing of backends.
const (
	DatabaseMongo = "mongodb"
	DatabaseMySQL = "mysql"
)

type DatabaseConfig struct {
	Type string `yaml:"type"`

	// Mongo settings
	URI            string        `yaml:"uri"`
	Database       string        `yaml:"database"`
	MaxPoolSize    int           `yaml:"max_pool_size"`
	MinPoolSize    int           `yaml:"min_pool_size"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	SocketTimeout  time.Duration `yaml:"socket_timeout"`

	// MySQL settings
	MySQLDatabase   string        `yaml:"mysql_database"`
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	Username        string        `yaml:"username"`
	Password        string        `yaml:"password"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

func loadDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		Type:           getEnv("DATABASE_TYPE", DatabaseMongo),
		URI:            getEnv("MONGODB_URI", "mongodb://localhost:27017/gofund"),
		Database:       getEnv("MONGODB_DATABASE", "gofund"),
		MaxPoolSize:    getEnvAsInt("MONGODB_MAX_POOL_SIZE", 100),
		MinPoolSize:    getEnvAsInt("MONGODB_MIN_POOL_SIZE", 5),
		ConnectTimeout: getEnvAsDuration("MONGODB_CONNECT_TIMEOUT", 10*time.Second),
		SocketTimeout:  getEnvAsDuration("MONGODB_SOCKET_TIMEOUT", 30*time.Second),

		MySQLDatabase:   getEnv("MYSQL_DATABASE", "gofund"),
		Host:            getEnv("MYSQL_HOST", "localhost"),
		Port:            getEnvAsInt("MYSQL_PORT", 3306),
		Username:        getEnv("MYSQL_USERNAME", "gofund"),
		Password:        getEnv("MYSQL_PASSWORD", ""),
		MaxOpenConns:    getEnvAsInt("MYSQL_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    getEnvAsInt("MYSQL_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: getEnvAsDuration("MYSQL_CONN_MAX_LIFETIME", time.Hour),
	}
}

// DSN builds the MySQL connection string. clientFoundRows makes UPDATE
// report matched rows rather than changed rows, which is what the bulk
// update count promises.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC&clientFoundRows=true",
		c.Username, c.Password, c.Host, c.Port, c.MySQLDatabase)
}
