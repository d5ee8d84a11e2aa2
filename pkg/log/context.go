package log

import "context"

type contextKey int

const (
	requestIDKey contextKey = iota
	fieldsKey
)

// WithRequestID adds a request ID to the context. Every *Ctx call made
// with the returned context carries it as request_id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the request ID from context.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithFields returns a context whose log entries carry the given fields
// on top of the ones already attached.
func WithFields(ctx context.Context, keysAndValues ...any) context.Context {
	existing := FieldsFromContext(ctx)
	fields := make(map[string]any, len(existing)+len(keysAndValues)/2)
	for k, v := range existing {
		fields[k] = v
	}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		if key, ok := keysAndValues[i].(string); ok {
			fields[key] = keysAndValues[i+1]
		}
	}
	return context.WithValue(ctx, fieldsKey, fields)
}

// FieldsFromContext extracts structured fields from context, or nil.
func FieldsFromContext(ctx context.Context) map[string]any {
	if ctx == nil {
		return nil
	}
	fields, _ := ctx.Value(fieldsKey).(map[string]any)
	return fields
}
