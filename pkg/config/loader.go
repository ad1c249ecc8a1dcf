package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load parses environment variables into the provided configuration struct
// based on its `env` field tags. A .env file in the working directory is
// loaded once per process before the first parse; a missing file is not an
// error.
//
// Example:
//
//	type QueueConfig struct {
//		Capacity     int           `env:"TOAST_CAPACITY" envDefault:"1"`
//		DismissDelay time.Duration `env:"TOAST_DISMISS_DELAY" envDefault:"5s"`
//	}
//
//	var cfg QueueConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file might not exist and that's ok.
		_ = godotenv.Load()
	})

	if v == nil {
		return ErrNilPointer
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// MustLoad is like Load but panics on failure. Intended for process
// startup where a bad environment should prevent the application from
// running at all.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(err)
	}
}
