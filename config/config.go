// Package config holds the allsums run configuration and its viper wiring.
package config

import (
	"fmt"

	"github.com/on-the-ground/allsums/configkeys"
	"github.com/on-the-ground/allsums/log"
	"github.com/spf13/viper"
)

// Memo table backends.
const (
	TableTrie   = "trie"
	TableMemDB  = "memdb"
	TableTiered = "tiered"
)

// ValidTables returns the list of valid memo table backends
func ValidTables() []string {
	return []string{TableTrie, TableMemDB, TableTiered}
}

// root mirrors the viper key layout; every key lives under "allsums".
type root struct {
	AllSums Config `mapstructure:"allsums"`
}

// Config represents the complete allsums configuration
type Config struct {
	// N is the target sum
	N int `mapstructure:"n"`
	// Step is the minimum allowed part
	Step int `mapstructure:"step"`
	// MaxN rejects targets whose partition count would flood the terminal.
	// Zero disables the limit.
	MaxN int `mapstructure:"max_n"`

	Table  TableConfig  `mapstructure:"table"`
	Output OutputConfig `mapstructure:"output"`
	Log    LogConfig    `mapstructure:"log"`
}

// TableConfig selects the memo table
type TableConfig struct {
	// Backend is one of "trie", "memdb", "tiered"
	Backend string `mapstructure:"backend"`
	// HotEntries sizes the ristretto tier of the "tiered" backend
	HotEntries int `mapstructure:"hot_entries"`
}

// OutputConfig controls what is printed
type OutputConfig struct {
	Pairs bool `mapstructure:"pairs"`
	Count bool `mapstructure:"count"`
	Stats bool `mapstructure:"stats"`
}

// LogConfig controls diagnostics on stderr
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		N:    10,
		Step: 1,
		MaxN: 30,
		Table: TableConfig{
			Backend:    TableTrie,
			HotEntries: 256,
		},
		Log: LogConfig{
			Level: string(log.LogWarn),
		},
	}
}

// SetDefaults registers default values with v
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault(configkeys.ConfigTarget, defaults.N)
	v.SetDefault(configkeys.ConfigStep, defaults.Step)
	v.SetDefault(configkeys.ConfigMaxN, defaults.MaxN)

	v.SetDefault(configkeys.ConfigTableBackend, defaults.Table.Backend)
	v.SetDefault(configkeys.ConfigTableHotEntries, defaults.Table.HotEntries)

	v.SetDefault(configkeys.ConfigOutputPairs, defaults.Output.Pairs)
	v.SetDefault(configkeys.ConfigOutputCount, defaults.Output.Count)
	v.SetDefault(configkeys.ConfigOutputStats, defaults.Output.Stats)

	v.SetDefault(configkeys.ConfigLogLevel, defaults.Log.Level)
}

// Load decodes v into a Config and validates it
func Load(v *viper.Viper) (*Config, error) {
	var r root
	if err := v.Unmarshal(&r); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg := r.AllSums
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, errs
	}
	return &cfg, nil
}
