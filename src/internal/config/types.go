package config

import (
	"fmt"
	"path/filepath"

	"github.com/maksimkurb/iplist/src/internal/utils"
)

type Config struct {
	// General holds general configuration.
	General *GeneralConfig `toml:"general"`
	// Lists contains IPv4 lists. You must set "list_name" and either "file" or "addresses" for each list.
	Lists []*ListSource `toml:"list,omitempty"`

	_absConfigFilePath string
}

type GeneralConfig struct {
	// Verbose enables debug logging, same as the -verbose flag.
	Verbose bool `toml:"verbose" json:"verbose"`
	// Shell runs exec templates (default: /bin/sh).
	Shell string `toml:"shell,omitempty" json:"shell,omitempty"`
	// TempDir is where exec exports are created (default: OS temp directory).
	TempDir string `toml:"temp_dir,omitempty" json:"temp_dir,omitempty"`
}

type ListSource struct {
	// ListName is the name of the list.
	ListName string `toml:"list_name" json:"list_name" validate:"required,list_name"`
	// File is the local file path of the list, relative to the config directory (optional).
	File string `toml:"file,omitempty" json:"file,omitempty"`
	// Addresses is an inline list of IPv4 addresses (optional).
	Addresses []string `toml:"addresses,omitempty" json:"addresses,omitempty"`
	// IgnoreInvalid skips malformed and IPv6 entries instead of failing.
	IgnoreInvalid bool `toml:"ignore_invalid" json:"ignore_invalid"`
	// Output is the default target of the export command (optional).
	Output string `toml:"output,omitempty" json:"output,omitempty"`
	// Exec is a shell command template for the exec command. Available variables: {{file}}, {{source}}, {{count}}, {{list_name}}.
	Exec string `toml:"exec,omitempty" json:"exec,omitempty" validate:"omitempty,exec_template"`
}

func (c *Config) GetConfigDir() string {
	return filepath.Dir(c._absConfigFilePath)
}

func (c *Config) GetShell() string {
	if c.General != nil && c.General.Shell != "" {
		return c.General.Shell
	}
	return DefaultShell
}

func (c *Config) GetTempDir() string {
	if c.General == nil || c.General.TempDir == "" {
		return ""
	}
	return utils.GetAbsolutePath(c.General.TempDir, c.GetConfigDir())
}

func (c *Config) GetList(listName string) (*ListSource, error) {
	for _, l := range c.Lists {
		if l.ListName == listName {
			return l, nil
		}
	}
	return nil, fmt.Errorf("list \"%s\" not found", listName)
}

func (lst *ListSource) Type() string {
	if lst.File != "" {
		return "file"
	}
	return "addresses"
}

// GetAbsolutePath resolves the list file against the config directory.
func (lst *ListSource) GetAbsolutePath(cfg *Config) (string, error) {
	if lst.File == "" {
		return "", fmt.Errorf("list \"%s\" is not a file", lst.ListName)
	}
	return utils.GetAbsolutePath(lst.File, cfg.GetConfigDir()), nil
}

// GetAbsoluteOutputPath resolves the export target against the config directory.
func (lst *ListSource) GetAbsoluteOutputPath(cfg *Config) (string, error) {
	if lst.Output == "" {
		return "", fmt.Errorf("list \"%s\" has no output configured", lst.ListName)
	}
	return utils.GetAbsolutePath(lst.Output, cfg.GetConfigDir()), nil
}
