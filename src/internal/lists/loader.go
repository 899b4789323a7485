package lists

import (
	"fmt"

	"github.com/maksimkurb/iplist/src/internal/addrset"
	"github.com/maksimkurb/iplist/src/internal/config"
	"github.com/maksimkurb/iplist/src/internal/log"
)

// LoadList builds the address set described by list. File paths are resolved
// against the configuration directory.
func LoadList(list *config.ListSource, cfg *config.Config) (*addrset.AddressSet, error) {
	opts := addrset.Options{
		Addresses:     list.Addresses,
		IgnoreInvalid: list.IgnoreInvalid,
		Logger:        log.Default(),
	}

	if list.File != "" {
		path, err := list.GetAbsolutePath(cfg)
		if err != nil {
			return nil, err
		}
		opts.SourcePath = path
	}

	set, err := addrset.New(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load list \"%s\": %w", list.ListName, err)
	}
	return set, nil
}

// LoadListByName looks up listName in cfg and loads it.
func LoadListByName(cfg *config.Config, listName string) (*config.ListSource, *addrset.AddressSet, error) {
	list, err := cfg.GetList(listName)
	if err != nil {
		return nil, nil, err
	}

	set, err := LoadList(list, cfg)
	if err != nil {
		return nil, nil, err
	}
	return list, set, nil
}
