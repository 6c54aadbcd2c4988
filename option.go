package foreman

import (
	"os"

	"github.com/rs/zerolog"
)

// Option augments how a new App is assembled.
type Option func(*App)

// WithLogger replaces the App's logger. The default logger discards
// everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(app *App) {
		app.log = logger
	}
}

// WithPrettyLog directs human-readable log output to stderr.
func WithPrettyLog() Option {
	return func(app *App) {
		app.log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Logger()
	}
}

// WithStorageEvents installs callbacks fired as spawns and despawns are
// applied.
func WithStorageEvents(hooks StorageEvents) Option {
	return func(app *App) {
		app.commands.hooks = hooks
	}
}
