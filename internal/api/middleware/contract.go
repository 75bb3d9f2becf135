package middleware

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// HTTPMetrics сборщик HTTP метрик
type HTTPMetrics interface {
	RecordHTTPRequest(method, path, status string, seconds float64)
}
