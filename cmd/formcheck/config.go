package main

import (
	"encoding/hex"
	"fmt"

	"github.com/dmitrymomot/forms/pkg/obfuscate"
)

// Config is read from the environment and an optional .env file.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// Obfuscator is one of none, signed, sealed or prefix.
	Obfuscator string `env:"FORMCHECK_OBFUSCATOR" envDefault:"none"`
	// Secret signs tokens, or is the hex-encoded application key for sealed tokens.
	Secret string `env:"FORMCHECK_SECRET"`
	// WorkspaceKey is the hex-encoded workspace key for sealed tokens.
	WorkspaceKey string `env:"FORMCHECK_WORKSPACE_KEY"`
	Prefix       string `env:"FORMCHECK_PREFIX" envDefault:"f_"`
}

// obfuscator builds the obfuscator selected by cfg. It returns nil for none.
func (cfg Config) obfuscator() (obfuscate.Obfuscator, error) {
	switch cfg.Obfuscator {
	case "", "none":
		return nil, nil
	case "signed":
		o, err := obfuscate.NewSigned(cfg.Secret)
		if err != nil {
			return nil, err
		}
		return o, nil
	case "sealed":
		appKey, err := hex.DecodeString(cfg.Secret)
		if err != nil {
			return nil, fmt.Errorf("decode FORMCHECK_SECRET: %w", err)
		}
		workspaceKey, err := hex.DecodeString(cfg.WorkspaceKey)
		if err != nil {
			return nil, fmt.Errorf("decode FORMCHECK_WORKSPACE_KEY: %w", err)
		}
		o, err := obfuscate.NewSealed(appKey, workspaceKey)
		if err != nil {
			return nil, err
		}
		return o, nil
	case "prefix":
		o, err := obfuscate.NewPrefix(cfg.Prefix)
		if err != nil {
			return nil, err
		}
		return o, nil
	default:
		return nil, fmt.Errorf("unknown obfuscator %q", cfg.Obfuscator)
	}
}
