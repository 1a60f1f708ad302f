package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Install makes l the global logger with the context hook attached, so events
// logged with .Ctx(ctx) carry the command and surface fields.
func Install(l zerolog.Logger) {
	log.Logger = l.Hook(ContextHook{})
}

// Component derives a logger from the global one tagged with a component
// identifier under the "cmp" key.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}
