package postgres

import (
	"testing"

	"github.com/shenikar/medical_dispatch/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationURL_OverridesDatabase(t *testing.T) {
	cfg := &config.Config{
		DatabaseURL:  "postgres://user:p%40ss@db:5432/postgres?sslmode=disable",
		DatabaseName: "medical_dispatch",
	}

	u, err := MigrationURL(cfg)
	require.NoError(t, err)
	assert.Equal(t, "pgx5://user:p%40ss@db:5432/medical_dispatch?sslmode=disable", u)
}

func TestMigrationURL_KeepsDatabaseWhenNameEmpty(t *testing.T) {
	cfg := &config.Config{DatabaseURL: "postgresql://user@db/dispatch"}

	u, err := MigrationURL(cfg)
	require.NoError(t, err)
	assert.Equal(t, "pgx5://user@db/dispatch", u)
}

func TestMigrationURL_RejectsOtherSchemes(t *testing.T) {
	_, err := MigrationURL(&config.Config{DatabaseURL: "mysql://db/dispatch"})
	assert.ErrorContains(t, err, "unsupported DATABASE_URL scheme")
}
