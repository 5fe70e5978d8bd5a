package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var gzipWriters = sync.Pool{
	New: func() any { return gzip.NewWriter(nil) },
}

var gzipReaders = sync.Pool{
	New: func() any { return new(gzip.Reader) },
}

// withGZip decompresses gzip request bodies and compresses API responses
// for clients that advertise gzip support. Media is exempt both ways:
// multipart uploads arrive uncompressed, and files under /uploads/ are
// photos and videos that gzip cannot shrink.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if strings.Contains(req.Header.Get("Content-Encoding"), "gzip") && req.Body != nil {
			zr := gzipReaders.Get().(*gzip.Reader)
			if err := zr.Reset(req.Body); err != nil {
				gzipReaders.Put(zr)
				http.Error(w, "invalid gzip data", http.StatusBadRequest)
				return
			}

			req.Body = &bodyCloser{
				Reader: zr,
				onClose: func() {
					zr.Close()
					gzipReaders.Put(zr)
				},
			}
			req.Header.Del("Content-Encoding")
		}

		if !strings.Contains(req.Header.Get("Accept-Encoding"), "gzip") ||
			strings.HasPrefix(req.URL.Path, "/uploads/") {
			next.ServeHTTP(w, req)
			return
		}

		zw := gzipWriters.Get().(*gzip.Writer)
		zw.Reset(w)

		next.ServeHTTP(&gzipResponseWriter{ResponseWriter: w, zw: zw}, req)

		zw.Close()
		gzipWriters.Put(zw)
	})
}

type bodyCloser struct {
	io.Reader
	onClose func()
}

func (b *bodyCloser) Close() error {
	if b.onClose != nil {
		b.onClose()
	}
	return nil
}

type gzipResponseWriter struct {
	http.ResponseWriter
	zw *gzip.Writer
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	w.Header().Set("Content-Encoding", "gzip")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	return w.zw.Write(data)
}
