package i

// Logger is the minimal logging surface threaded through the wiring.
type Logger interface {
	Info(msg string)
	Error(msg string)
}
