package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"smithwagnercv/domain/learning"
	"smithwagnercv/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Simulation SimulationConfig
	Output     OutputConfig
	LogLevel   string
}

// SimulationConfig holds the Monte Carlo settings
type SimulationConfig struct {
	NumOptions     int
	Repetitions    int
	CriticalValues []float64
	ConfInterval   []float64
	Workers        int
	Seed           uint64 // 0 draws fresh entropy
}

// OutputConfig holds export settings
type OutputConfig struct {
	Dir      string
	Workbook bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	simConfig, err := loadSimulationConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load simulation configuration")
	}

	config := &Config{
		Simulation: *simConfig,
		Output:     *loadOutputConfig(),
		LogLevel:   getEnvOrDefault("LOG_LEVEL", "INFO"),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func loadSimulationConfig() (*SimulationConfig, error) {
	criticalValues, err := getEnvFloatsOrDefault("SWCV_CRITICAL_VALUES", []float64{0.90, 0.95})
	if err != nil {
		return nil, err
	}
	confInterval, err := getEnvFloatsOrDefault("SWCV_CONF_INTERVAL", []float64{0.025, 0.975})
	if err != nil {
		return nil, err
	}
	seed, err := getEnvUintOrDefault("SWCV_SEED", 0)
	if err != nil {
		return nil, err
	}

	return &SimulationConfig{
		NumOptions:     getEnvIntOrDefault("SWCV_NUM_OPTIONS", 4),
		Repetitions:    getEnvIntOrDefault("SWCV_REPETITIONS", 10000),
		CriticalValues: criticalValues,
		ConfInterval:   confInterval,
		Workers:        getEnvIntOrDefault("SWCV_WORKERS", runtime.GOMAXPROCS(0)),
		Seed:           seed,
	}, nil
}

func loadOutputConfig() *OutputConfig {
	return &OutputConfig{
		Dir:      getEnvOrDefault("SWCV_OUTPUT_DIR", "."),
		Workbook: getEnvBoolOrDefault("SWCV_WORKBOOK", false),
	}
}

func validateConfig(config *Config) error {
	sim := config.Simulation
	if err := learning.ValidateNumOptions(sim.NumOptions); err != nil {
		return errors.WithCode(errors.CodeConfigInvalid, err)
	}
	if err := learning.ValidateRepetitions(sim.Repetitions); err != nil {
		return errors.WithCode(errors.CodeConfigInvalid, err)
	}
	if err := learning.ValidateQuantiles(sim.CriticalValues); err != nil {
		return errors.WithCode(errors.CodeConfigInvalid, err)
	}
	if err := learning.ValidateQuantiles(sim.ConfInterval); err != nil {
		return errors.WithCode(errors.CodeConfigInvalid, err)
	}
	if sim.Workers <= 0 {
		return errors.ConfigInvalid("SWCV_WORKERS must be > 0")
	}
	if config.Output.Dir == "" {
		return errors.ConfigInvalid("output directory is required")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvUintOrDefault(key string, defaultValue uint64) (uint64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, errors.ConfigInvalid(fmt.Sprintf("%s must be an unsigned integer, got %q", key, value))
	}
	return n, nil
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvFloatsOrDefault(key string, defaultValue []float64) ([]float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	floats, err := ParseFloatList(value)
	if err != nil {
		return nil, errors.ConfigInvalid(fmt.Sprintf("%s: %v", key, err))
	}
	return floats, nil
}

// ParseFloatList parses a comma separated list such as "0.90,0.95"
func ParseFloatList(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", part)
		}
		out = append(out, f)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty list")
	}
	return out, nil
}
