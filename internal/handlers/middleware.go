package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	ua "github.com/mileusna/useragent"
)

type (
	// responseData keeps what the handler wrote, for the access log.
	responseData struct {
		status int
		size   int
	}

	loggingResponseWriter struct {
		http.ResponseWriter
		responseData *responseData
	}
)

// Write passes b to the wrapped writer and counts the bytes written.
func (r *loggingResponseWriter) Write(b []byte) (int, error) {
	if r.responseData.status == 0 {
		r.responseData.status = http.StatusOK
	}
	size, err := r.ResponseWriter.Write(b)
	r.responseData.size += size
	return size, err
}

// WriteHeader passes statusCode to the wrapped writer and remembers it.
func (r *loggingResponseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.responseData.status = statusCode
}

// deviceClass reduces a parsed User-Agent to one word for the log.
func deviceClass(parsed ua.UserAgent) string {
	switch {
	case parsed.Bot:
		return "bot"
	case parsed.Tablet:
		return "tablet"
	case parsed.Mobile:
		return "mobile"
	case parsed.Desktop:
		return "desktop"
	default:
		return "unknown"
	}
}

// LoggingMiddleware logs every request with its status, size, duration and client OS/device.
func (con *Controller) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		start := time.Now()
		data := &responseData{}
		lw := &loggingResponseWriter{ResponseWriter: res, responseData: data}

		next.ServeHTTP(lw, req)

		parsed := ua.Parse(req.UserAgent())
		con.sugar.Infow("request",
			"uri", req.RequestURI,
			"method", req.Method,
			"status", data.status,
			"size", data.size,
			"duration", time.Since(start),
			"os", parsed.OS,
			"device", deviceClass(parsed),
			"request_id", middleware.GetReqID(req.Context()),
		)
	})
}
