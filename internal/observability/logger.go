package observability

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component returns the global logger tagged with app and component.
func Component(app, name string) zerolog.Logger {
	return log.Logger.With().Str("app", app).Str("component", name).Logger()
}
