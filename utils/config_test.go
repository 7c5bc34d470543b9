package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChinaStandardTime(t *testing.T) {
	t.Parallel()
	loc := ChinaStandardTime()
	require.NotNil(t, loc)
	_, offset := time.Date(2022, 6, 1, 12, 0, 0, 0, loc).Zone()
	assert.Equal(t, 8*60*60, offset)
}

func TestConfigParse(t *testing.T) {
	t.Parallel()

	cfg := Config{Timezone: ChinaStandardTime(), Region: "china"}
	err := cfg.Parse([]byte(`
region: guangxi
timezone: UTC
log_level: info
datasets:
  - /etc/chinacal/china.csv
  - /etc/chinacal/guangxi.csv
`))
	require.NoError(t, err)
	assert.Equal(t, "guangxi", cfg.Region)
	assert.Equal(t, "UTC", cfg.Timezone.String())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"/etc/chinacal/china.csv", "/etc/chinacal/guangxi.csv"}, cfg.Datasets)
}

func TestConfigParseDefaults(t *testing.T) {
	t.Parallel()

	cfg := Config{Timezone: ChinaStandardTime(), Region: "china"}
	require.NoError(t, cfg.Parse([]byte(``)))
	assert.Equal(t, "china", cfg.Region)
	assert.NotNil(t, cfg.Timezone)
}

func TestConfigParseBadInput(t *testing.T) {
	t.Parallel()

	cfg := Config{Timezone: ChinaStandardTime(), Region: "china"}

	// Unknown regions are rejected.
	assert.Error(t, cfg.Parse([]byte(`region: shanghai`)))

	// Unknown timezones keep the previous value.
	prev := cfg.Timezone
	require.NoError(t, cfg.Parse([]byte(`timezone: Mars/Olympus`)))
	assert.Equal(t, prev, cfg.Timezone)

	// Not yaml at all.
	assert.Error(t, cfg.Parse([]byte("\t{]")))
}
