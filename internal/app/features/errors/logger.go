// internal/app/features/errors/logger.go
package errors

import (
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger logs infrastructure failures and renders the 500 page so raw
// error text never reaches the user.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger wraps logger. A nil logger is replaced with a no-op.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ErrorLogger{Log: logger}
}

// LogServerError logs msg and err with the request path, then renders the
// server error page showing userMsg and a link to backURL.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.Log.Error(msg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
	if userMsg == "" {
		userMsg = "An unexpected error occurred."
	}
	RenderServerError(w, r, userMsg, backURL)
}
