package cmd

import (
	"github.com/xiform/xiform/cmd/xiform/internal/config"
)

// loadConfig resolves the configuration for dir, or for the enclosing
// project when dir is empty.
func loadConfig(dir string) (*config.Resolved, error) {
	if dir == "" {
		root, err := config.FindProjectRoot()
		if err != nil {
			return nil, err
		}
		dir = root
	}
	return config.Resolve(dir)
}
