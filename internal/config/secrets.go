package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Secrets are deployment-time values kept out of the settings file.
type Secrets struct {
	URL        string `env:"SCROLLSIGN_URL,required"`
	Password   string `env:"SCROLLSIGN_PASSWORD"`
	ConfigPath string `env:"SCROLLSIGN_CONFIG" envDefault:"scrollsign.yml"`
}

// ReadSecrets loads the optional dotenv files first, then parses the
// environment. Variables already set in the environment win.
func ReadSecrets(dotenvFiles ...string) (Secrets, error) {
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Secrets{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}
	s, err := env.ParseAs[Secrets]()
	if err != nil {
		return Secrets{}, fmt.Errorf("parsing environment: %w", err)
	}
	return s, nil
}
