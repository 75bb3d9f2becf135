package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
)

func TestFS_ContainsOrderedMigrations(t *testing.T) {
	names, err := fs.Glob(FS, "*.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{"00001_init_schema.sql", "00002_seed_catalog.sql"}, names)

	for _, name := range names {
		body, err := fs.ReadFile(FS, name)
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", name)
		assert.Contains(t, string(body), "-- +goose Down", name)
	}
}

func TestSeed_MatchesDomainCatalog(t *testing.T) {
	body, err := fs.ReadFile(FS, "00002_seed_catalog.sql")
	require.NoError(t, err)
	seed := string(body)

	for _, c := range domain.SeedCourts() {
		assert.True(t, strings.Contains(seed, "'"+c.ID+"', '"+c.Name+"'"), c.ID)
	}
	for _, e := range domain.SeedEquipment() {
		assert.True(t, strings.Contains(seed, "'"+e.ID+"', '"+e.Name+"'"), e.ID)
	}
	for _, c := range domain.SeedCoaches() {
		assert.True(t, strings.Contains(seed, "'"+c.ID+"', '"+c.Name+"'"), c.ID)
	}
	for _, r := range domain.SeedPricingRules() {
		assert.True(t, strings.Contains(seed, "'"+r.ID+"', '"+r.Name+"'"), r.ID)
	}
}
