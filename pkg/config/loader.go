package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load parses environment variables into the provided struct based on its
// `env` field tags. A `.env` file in the working directory is read once,
// best effort, before the first parse; variables already present in the
// environment win.
//
// Example:
//
//	type AppConfig struct {
//		Addr    string `env:"ADDR" envDefault:":8080"`
//		Debug   bool   `env:"DEBUG"`
//		Origins []string `env:"ORIGINS" envSeparator:","`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file might not exist and that's ok
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

// MustLoad works like Load but panics if parsing fails. Useful for
// configuration the application cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
