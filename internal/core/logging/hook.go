package logging

import (
	"github.com/rs/zerolog"
)

// hookFields are the context values copied onto log events, each under its
// own key name.
var hookFields = []contextKey{commandKey, surfaceKey}

// ContextHook copies the values stored by WithCommand and WithSurface onto
// every event logged with .Ctx(ctx).
type ContextHook struct{}

// Run implements zerolog.Hook.
func (ContextHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	ctx := e.GetCtx()
	if ctx == nil {
		return
	}

	for _, k := range hookFields {
		if v, ok := ctx.Value(k).(string); ok && v != "" {
			e.Str(string(k), v)
		}
	}
}
