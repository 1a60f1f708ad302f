package logging

import "context"

type contextKey string

const (
	commandKey contextKey = "command"
	surfaceKey contextKey = "surface"
)

// WithCommand adds the name of the running CLI command to the context.
func WithCommand(ctx context.Context, command string) context.Context {
	return context.WithValue(ctx, commandKey, command)
}

// WithSurface adds the driving surface ("tui" or "cli") to the context.
func WithSurface(ctx context.Context, surface string) context.Context {
	return context.WithValue(ctx, surfaceKey, surface)
}

// GetCommand retrieves the command name from the context.
// Returns empty string if not present.
func GetCommand(ctx context.Context) string {
	if v, ok := ctx.Value(commandKey).(string); ok {
		return v
	}
	return ""
}

// GetSurface retrieves the surface from the context.
// Returns empty string if not present.
func GetSurface(ctx context.Context) string {
	if v, ok := ctx.Value(surfaceKey).(string); ok {
		return v
	}
	return ""
}
