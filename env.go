package main

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// loadEnv sets defaults from an env file. A missing file is fine, anything
// else is worth a warning since the settings in it are then ignored.
func loadEnv(log zerolog.Logger, file string) {
	err := godotenv.Load(file)
	if errors.Is(err, os.ErrNotExist) {
		return
	}
	if err != nil {
		log.Warn().Err(err).Str("file", file).Msg("could not load environment file")
	}
}
