package toast

import (
	"time"

	"github.com/FackJox/toastkit/pkg/config"
)

// Config holds the environment-backed queue settings.
type Config struct {
	Capacity     int           `env:"TOAST_CAPACITY" envDefault:"1"`
	DismissDelay time.Duration `env:"TOAST_DISMISS_DELAY" envDefault:"5s"`
	RemoveDelay  time.Duration `env:"TOAST_REMOVE_DELAY" envDefault:"1000000ms"`
	WatchBuffer  int           `env:"TOAST_WATCH_BUFFER" envDefault:"16"`
}

// LoadConfig reads the queue settings from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
