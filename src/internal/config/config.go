package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/pelletier/go-toml/v2"

	iperrors "github.com/maksimkurb/iplist/src/internal/errors"
	"github.com/maksimkurb/iplist/src/internal/log"
)

var (
	listNameRegexp = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)
)

const DefaultShell = "/bin/sh"

// Tags available in exec templates.
const (
	EXEC_TMPL_FILE      = "file"
	EXEC_TMPL_SOURCE    = "source"
	EXEC_TMPL_COUNT     = "count"
	EXEC_TMPL_LIST_NAME = "list_name"
)

func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, iperrors.NewConfigError("failed to get absolute path", err)
		} else {
			configFile = path
		}
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Errorf("Configuration file not found: %s", configFile)
		}
		return nil, iperrors.NewConfigError("failed to read config file", err)
	}

	var config Config
	if err := toml.Unmarshal(content, &config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf("%s", derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
			return nil, iperrors.NewConfigError(fmt.Sprintf("failed to parse config file at line %d, column %d", row, col), err)
		}
		return nil, iperrors.NewConfigError("failed to parse config file", err)
	}

	if config.General == nil {
		config.General = &GeneralConfig{}
	}
	config._absConfigFilePath = configFile

	log.Debugf("Configuration file path: %s", configFile)

	return &config, nil
}
