// Package config loads environment variables into typed structs.
//
// Fields are described with caarlos0/env struct tags. A .env file in the
// working directory is read once, on first use, and never overrides
// variables that are already set.
//
//	type Config struct {
//		LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
//		Obfuscator string `env:"FORMCHECK_OBFUSCATOR" envDefault:"none"`
//		Secret     string `env:"FORMCHECK_SECRET"`
//		Prefix     string `env:"FORMCHECK_PREFIX" envDefault:"f_"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return fmt.Errorf("load config: %w", err)
//	}
//
// MustLoad panics instead of returning the error and is meant for program
// startup.
//
// # Caching
//
// Each struct type is parsed once per process. Later calls with the same
// type copy the cached value, so changing FORMCHECK_PREFIX after the first
// Load has no effect on that type:
//
//	var a, b Config
//	config.MustLoad(&a) // reads the environment
//	config.MustLoad(&b) // copies a
//
// Distinct types have their own cache entries, which lets a command and a
// library each keep a small config struct for their own variables.
package config
