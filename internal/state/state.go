// Package state wires the configuration and the vault store into the single
// aggregate the command layer operates on.
package state

import (
	"fmt"
	"os"

	"github.com/nvault/nv/internal/config"
	"github.com/nvault/nv/internal/vault"
)

type State struct {
	Config *config.Config
	Store  *vault.Store
	Home   string
}

func NewState() (*State, error) {
	home, err := GetHomeDir()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(home)
	if err != nil {
		return nil, err
	}

	store, err := vault.Open(cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open vault: %w", err)
	}

	return &State{
		Config: cfg,
		Store:  store,
		Home:   home,
	}, nil
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory. err: %s", err)
	}
	return home, nil
}

func LoadConfig(home string) (*config.Config, error) {
	if err := config.EnsureConfigExists(home); err != nil {
		return nil, err
	}
	return config.Load(home)
}
