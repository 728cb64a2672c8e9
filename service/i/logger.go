package i

// Logger is the minimal logging surface services depend on.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
}
