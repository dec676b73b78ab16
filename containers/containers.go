package containers

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/testcontainers/testcontainers-go"
)

const startupTimeout = 30 * time.Second

// moduleRoot walks up from the working directory to the directory holding
// go.mod, so tests in any package can find the schema.
func moduleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found above the working directory")
		}
		dir = parent
	}
}

func terminate(name string, c testcontainers.Container) {
	if err := c.Terminate(context.Background()); err != nil {
		log.Fatal().Err(err).Str("container", name).Msg("error terminating container")
	}
	log.Debug().Str("container", name).Msg("terminated container")
}
