package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"

	"massnet.org/crypto/logging"
)

const (
	DefaultConfigFilename  = "config.json"
	DefaultLoggingFilename = "masscrypto"
	DefaultLogLevel        = "info"
	defaultLogDir          = "logs"
	defaultLogAge          = 1
	defaultWorkers         = 32
	defaultCacheSize       = 1024
	// MaxWorkers bounds the digester worker pool size.
	MaxWorkers = 128
)

type Config struct {
	Log   *Log   `json:"log"`
	Batch *Batch `json:"batch"`
}

type Log struct {
	LogDir   string `json:"log_dir"`
	LogLevel string `json:"log_level"`
	Age      uint32 `json:"age"`
}

type Batch struct {
	Workers   int `json:"workers"`
	CacheSize int `json:"cache_size"`
}

func DefaultConfig() *Config {
	return &Config{
		Log:   DefaultLog(),
		Batch: DefaultBatch(),
	}
}

func DefaultLog() *Log {
	return &Log{
		LogDir:   defaultLogDir,
		LogLevel: DefaultLogLevel,
		Age:      defaultLogAge,
	}
}

func DefaultBatch() *Batch {
	return &Batch{
		Workers:   defaultWorkers,
		CacheSize: defaultCacheSize,
	}
}

func LoadConfig(filename string) (*Config, error) {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err = json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func CheckConfig(cfg *Config) error {
	if cfg.Log == nil {
		cfg.Log = DefaultLog()
	}
	if cfg.Batch == nil {
		cfg.Batch = DefaultBatch()
	}

	// Checks for log
	if cfg.Log.LogDir == "" {
		cfg.Log.LogDir = defaultLogDir
	}
	if cfg.Log.LogLevel == "" {
		cfg.Log.LogLevel = DefaultLogLevel
	}
	switch cfg.Log.LogLevel {
	case logging.PanicLevel, logging.FatalLevel, logging.ErrorLevel,
		logging.WarnLevel, logging.InfoLevel, logging.DebugLevel, logging.TraceLevel:
	default:
		return errors.New(fmt.Sprintf("invalid log level, %s", cfg.Log.LogLevel))
	}

	// Checks for batch
	if cfg.Batch.Workers <= 0 {
		cfg.Batch.Workers = defaultWorkers
	}
	if cfg.Batch.Workers > MaxWorkers {
		return errors.New(fmt.Sprintln("batch workers cannot be more than", MaxWorkers, "current", cfg.Batch.Workers))
	}
	if cfg.Batch.CacheSize < 0 {
		return errors.New("batch cache size cannot be negative")
	}
	if cfg.Batch.CacheSize == 0 {
		logging.CPrint(logging.WARN, "digest result cache unbounded", logging.LogFormat{"cache_size": 0})
	}

	return nil
}
