package internal

import "context"

type facultyIDKey struct{}

// ContextWithFacultyID stamps the authenticated account's ID onto the
// request context.
func ContextWithFacultyID(ctx context.Context, facultyID int64) context.Context {
	return context.WithValue(ctx, facultyIDKey{}, facultyID)
}

// FacultyIDFromContext returns the authenticated account's ID, or zero when
// the request is anonymous.
func FacultyIDFromContext(ctx context.Context) int64 {
	if ctx == nil {
		return 0
	}
	if id, ok := ctx.Value(facultyIDKey{}).(int64); ok {
		return id
	}
	return 0
}
