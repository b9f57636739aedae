// Package config provides the narrowway command configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"

	"narrowway-go/narrowway"
)

const (
	defaultVariant    = 256
	defaultField      = FieldTable
	defaultLogLevel   = "NOTICE"
	defaultSamples    = 100
	defaultResultsDir = "benchmark/results"
	defaultBlocks     = 1 << 14

	// FieldTable selects the tabulated GF(2^8) engine.
	FieldTable = "table"

	// FieldDirect selects the on-demand GF(2^8) engine.
	FieldDirect = "direct"
)

var defaultLogging = Logging{
	Disable: false,
	File:    "",
	Level:   defaultLogLevel,
}

// Cipher is the cipher selection.
type Cipher struct {
	// Variant is the block size in bits, 256, 384 or 512.
	Variant int

	// Field is the GF(2^8) engine, "table" or "direct".
	Field string
}

func (cCfg *Cipher) validate() error {
	if cCfg.Variant == 0 {
		cCfg.Variant = defaultVariant
	}
	if _, err := narrowway.ParamsFor(narrowway.Variant(cCfg.Variant)); err != nil {
		return fmt.Errorf("config: Cipher: Variant '%v' is invalid", cCfg.Variant)
	}

	f := strings.ToLower(cCfg.Field)
	switch f {
	case FieldTable, FieldDirect:
	case "":
		f = defaultField
	default:
		return fmt.Errorf("config: Cipher: Field '%v' is invalid", cCfg.Field)
	}
	cCfg.Field = f
	return nil
}

// Logging is the logging configuration.
type Logging struct {
	// Disable disables logging entirely.
	Disable bool

	// File specifies the log file, if omitted stderr will be used.
	File string

	// Level specifies the log level.
	Level string
}

func (lCfg *Logging) validate() error {
	lvl := strings.ToUpper(lCfg.Level)
	switch lvl {
	case "ERROR", "WARNING", "NOTICE", "INFO", "DEBUG":
	case "":
		lvl = defaultLogLevel
	default:
		return fmt.Errorf("config: Logging: Level '%v' is invalid", lCfg.Level)
	}
	lCfg.Level = lvl // Force uppercase.
	return nil
}

// Benchmark is the benchmark configuration.
type Benchmark struct {
	// Samples is the number of timed runs per operation.
	Samples int

	// ResultsDir is where JSON results are written.
	ResultsDir string

	// Workers is the number of goroutines in the throughput run.
	Workers int

	// Blocks is the total number of blocks the throughput run encrypts,
	// shared between all workers.
	Blocks int
}

func (bCfg *Benchmark) applyDefaults() {
	if bCfg.Samples == 0 {
		bCfg.Samples = defaultSamples
	}
	if bCfg.ResultsDir == "" {
		bCfg.ResultsDir = defaultResultsDir
	}
	if bCfg.Workers == 0 {
		bCfg.Workers = runtime.NumCPU()
	}
	if bCfg.Blocks == 0 {
		bCfg.Blocks = defaultBlocks
	}
}

func (bCfg *Benchmark) validate() error {
	if bCfg.Samples < 0 {
		return fmt.Errorf("config: Benchmark: Samples '%v' is invalid", bCfg.Samples)
	}
	if bCfg.Workers < 0 {
		return fmt.Errorf("config: Benchmark: Workers '%v' is invalid", bCfg.Workers)
	}
	if bCfg.Blocks < 0 {
		return fmt.Errorf("config: Benchmark: Blocks '%v' is invalid", bCfg.Blocks)
	}
	return nil
}

// Config is the top level narrowway configuration.
type Config struct {
	Cipher    *Cipher
	Logging   *Logging
	Benchmark *Benchmark
}

// Default returns a validated configuration with every default applied.
func Default() *Config {
	cfg := new(Config)
	if err := cfg.FixupAndValidate(); err != nil {
		panic(err)
	}
	return cfg
}

// FixupAndValidate applies defaults to config entries and validates the
// supplied configuration. Most people should call one of the Load variants
// instead.
func (cfg *Config) FixupAndValidate() error {
	if cfg.Cipher == nil {
		cfg.Cipher = &Cipher{}
	}
	if cfg.Logging == nil {
		l := defaultLogging
		cfg.Logging = &l
	}
	if cfg.Benchmark == nil {
		cfg.Benchmark = &Benchmark{}
	}
	cfg.Benchmark.applyDefaults()

	if err := cfg.Cipher.validate(); err != nil {
		return err
	}
	if err := cfg.Logging.validate(); err != nil {
		return err
	}
	if err := cfg.Benchmark.validate(); err != nil {
		return err
	}
	return nil
}

// Variant returns the configured cipher variant.
func (cfg *Config) Variant() narrowway.Variant {
	return narrowway.Variant(cfg.Cipher.Variant)
}

// Load parses and validates the provided buffer b as a config file body and
// returns the Config.
func Load(b []byte) (*Config, error) {
	if b == nil {
		return nil, errors.New("config: no nil buffer as config file")
	}

	cfg := new(Config)
	md, err := toml.Decode(string(b), cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		return nil, fmt.Errorf("config: undecoded keys in config file: %v", undecoded)
	}
	if err := cfg.FixupAndValidate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile loads, parses and validates the provided file and returns the
// Config.
func LoadFile(f string) (*Config, error) {
	b, err := os.ReadFile(f)
	if err != nil {
		return nil, err
	}
	return Load(b)
}
