package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseDSN(t *testing.T) {
	cfg := &DatabaseConfig{
		Username:      "fund",
		Password:      "secret",
		Host:          "db.internal",
		Port:          3307,
		MySQLDatabase: "gofund",
	}

	dsn := cfg.DSN()

	assert.Equal(t, "fund:secret@tcp(db.internal:3307)/gofund?charset=utf8mb4&parseTime=True&loc=UTC&clientFoundRows=true", dsn)
}

// Matched-rows reporting keeps the relational bulk update count in line with
// the document backend, which counts matched documents.
func TestDatabaseDSNRequestsFoundRows(t *testing.T) {
	cfg := loadDatabaseConfig()

	assert.Contains(t, cfg.DSN(), "clientFoundRows=true")
}
