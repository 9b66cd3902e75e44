package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.Data.Dir)
	assert.Equal(t, "hand_dataset.csv", cfg.Data.PlacementsFile)
	assert.Equal(t, "vybrana_slova_30.csv", cfg.Data.BaselineFile)
	assert.Equal(t, "Detailed_Thematic_Codebook.csv", cfg.Data.CodebookFile)
	assert.Equal(t, ";", cfg.Data.PlacementsSeparator)
	assert.Equal(t, "", cfg.Data.BaselineWordColumn)
	assert.Equal(t, time.Hour, cfg.Data.CacheTTL)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("DATA_DIR", "/srv/study")
	t.Setenv("PLACEMENTS_FILE", "run2.xlsx")
	t.Setenv("BASELINE_WORD_COLUMN", "Adjektivum")
	t.Setenv("CACHE_TTL", "15m")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/srv/study", cfg.Data.Dir)
	assert.Equal(t, "run2.xlsx", cfg.Data.PlacementsFile)
	assert.Equal(t, "Adjektivum", cfg.Data.BaselineWordColumn)
	assert.Equal(t, 15*time.Minute, cfg.Data.CacheTTL)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoad_InvalidSeparatorRejected(t *testing.T) {
	t.Setenv("PLACEMENTS_SEPARATOR", ";;")
	_, err := Load()
	require.Error(t, err)
}

func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("CACHE_TTL", "soon")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.Data.CacheTTL)
}

func TestDataConfig_Paths(t *testing.T) {
	d := DataConfig{Dir: "data", PlacementsFile: "a.csv", BaselineFile: "b.csv", CodebookFile: "c.csv"}
	assert.Equal(t, filepath.Join("data", "a.csv"), d.PlacementsPath())
	assert.Equal(t, filepath.Join("data", "b.csv"), d.BaselinePath())
	assert.Equal(t, filepath.Join("data", "c.csv"), d.CodebookPath())
}
