package fault

import "go.uber.org/zap"

// NewZapErrorHandler adapts a zap logger into an error Handler. The handler
// logs the message at Fatal level; zap's fatal hook then terminates the
// process (or panics, if the logger was built with a different
// zapcore.CheckWriteHook), satisfying the no-return contract.
func NewZapErrorHandler(l *zap.Logger) Handler {
	return func(msg string) {
		l.Fatal(msg)
	}
}

// NewZapArgHandler adapts a zap logger into an ArgHandler. The offending
// argument index is attached as a structured field.
func NewZapArgHandler(l *zap.Logger) ArgHandler {
	return func(argNumber int, msg string) {
		l.Fatal(msg, zap.Int("argument", argNumber))
	}
}
