package main

import "github.com/vovakirdan/checker-snake/internal/app"

// loadSettings loads the config with the global flags applied.
func loadSettings() (app.Settings, error) {
	return app.Load(app.Overrides{ConfigPath: flagConfig, LogLevel: flagLogLevel})
}
