package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/maksimkurb/iplist/src/internal/config"
	"github.com/maksimkurb/iplist/src/internal/log"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	Verbose    bool

	// Stdout and Stderr default to the process streams when nil.
	Stdout io.Writer
	Stderr io.Writer
}

func (ctx *AppContext) stdout() io.Writer {
	if ctx.Stdout == nil {
		return os.Stdout
	}
	return ctx.Stdout
}

func (ctx *AppContext) stderr() io.Writer {
	if ctx.Stderr == nil {
		return os.Stderr
	}
	return ctx.Stderr
}

// loadAndValidateConfigOrFail loads configuration from file and validates it.
func loadAndValidateConfigOrFail(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	if cfg.General.Verbose {
		log.SetVerbose(true)
	}

	return cfg, nil
}

func requireListFlag(name, listName string) error {
	if listName == "" {
		return fmt.Errorf("%s: -list flag is required", name)
	}
	return nil
}
