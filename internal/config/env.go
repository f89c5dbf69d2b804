package config

import (
	stderrors "errors"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
)

// envFiles are loaded in order. Variables already set in the process
// environment, or by an earlier file, are kept.
var envFiles = []string{".env", ".env.local"}

func loadEnvFiles() {
	for _, name := range envFiles {
		err := godotenv.Load(name)
		switch {
		case err == nil:
			slog.Debug("Loaded environment file", "file", name)
		case stderrors.Is(err, fs.ErrNotExist):
		default:
			slog.Warn("Could not load environment file", "file", name, "error", err)
		}
	}
}
