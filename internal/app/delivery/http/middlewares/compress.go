package middlewares

import (
	"freeslot-service/internal/pkg/constvars"
	"io"
	"net/http"

	"github.com/andybalholm/brotli"
	"github.com/go-chi/chi/v5/middleware"
)

// Compress encodes JSON, HTML and text replies with brotli or gzip, whichever
// the client prefers.
func (m *Middlewares) Compress() func(next http.Handler) http.Handler {
	level := m.InternalConfig.App.CompressionLevel
	if level <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	compressor := middleware.NewCompressor(level,
		constvars.MIMEApplicationJSON,
		constvars.MIMETextHTML,
		constvars.MIMETextPlain,
	)
	compressor.SetEncoder(constvars.EncodingBrotli, func(w io.Writer, level int) io.Writer {
		return brotli.NewWriterLevel(w, level)
	})
	return compressor.Handler
}
