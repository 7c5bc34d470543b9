package utils

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/almanachq/chinacal/utils/log"
)

// InstanceConfig is the process-wide configuration.
var InstanceConfig Config

func init() {
	InstanceConfig.Timezone = ChinaStandardTime()
	InstanceConfig.Region = "china"
}

// ChinaStandardTime returns the civil timezone the Chinese calendar is
// defined in. Falls back to a fixed UTC+8 zone when the tzdata is not
// available on the host.
func ChinaStandardTime() *time.Location {
	loc, err := time.LoadLocation("Asia/Shanghai")
	if err != nil {
		return time.FixedZone("CST", 8*60*60)
	}
	return loc
}

// Config holds the runtime settings for the CLI and any embedding
// application. The calendar computations themselves take no options;
// the config only selects the region, output timezone and log level.
type Config struct {
	Timezone *time.Location
	Region   string
	LogLevel string
	// Datasets lists holiday schedule CSV files that replace the
	// embedded ones.
	Datasets []string
}

func (c *Config) Parse(data []byte) error {
	var aux struct {
		Timezone string   `yaml:"timezone"`
		Region   string   `yaml:"region"`
		LogLevel string   `yaml:"log_level"`
		Datasets []string `yaml:"datasets"`
	}

	if err := yaml.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	if aux.Timezone != "" {
		loc, err := time.LoadLocation(aux.Timezone)
		if err != nil {
			log.Warn("unknown timezone %q, keeping %v", aux.Timezone, c.Timezone)
		} else {
			c.Timezone = loc
		}
	}

	switch aux.Region {
	case "":
	case "china", "guangxi":
		c.Region = aux.Region
	default:
		return fmt.Errorf("unknown region %q", aux.Region)
	}

	if aux.LogLevel != "" {
		c.LogLevel = aux.LogLevel
		log.SetLevelName(aux.LogLevel)
	}

	if len(aux.Datasets) > 0 {
		c.Datasets = aux.Datasets
	}

	return nil
}
