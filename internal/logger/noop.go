package logger

// NoOpLogger is a logger that does nothing.
// Use this for testing or when logging should be disabled.
type NoOpLogger struct{}

// NewNop creates a new no-op logger instance.
func NewNop() Interface {
	return &NoOpLogger{}
}

// Debug does nothing.
func (l *NoOpLogger) Debug(string, ...any) {}

// Info does nothing.
func (l *NoOpLogger) Info(string, ...any) {}

// Warn does nothing.
func (l *NoOpLogger) Warn(string, ...any) {}

// Error does nothing.
func (l *NoOpLogger) Error(string, ...any) {}

// With returns the same no-op logger.
func (l *NoOpLogger) With(...any) Interface {
	return l
}

// Sync does nothing and returns nil.
func (l *NoOpLogger) Sync() error {
	return nil
}
