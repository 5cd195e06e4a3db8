package server

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jacobpatterson1549/cathedral/game/piece"
	"github.com/jacobpatterson1549/cathedral/server/log"
)

const (
	// piecesPath lists every piece.  A piece is read by appending a slash and its name.
	piecesPath = "/pieces"
	// cellsPath lists the cells of every piece.
	cellsPath = "/cells"
	// jsonContentType is the mime type of every catalog response.
	jsonContentType = "application/json"
)

// catalogHandler creates a handler for the catalog endpoints.
// The catalog does not change, so every response body is encoded once, up front.
func (cfg Config) catalogHandler(p Parameters) (http.Handler, error) {
	pieces := p.Catalog.Pieces()
	piecesJSON, err := json.Marshal(pieces)
	if err != nil {
		return nil, fmt.Errorf("encoding pieces: %w", err)
	}
	cellsJSON, err := json.Marshal(p.Catalog.Cells())
	if err != nil {
		return nil, fmt.Errorf("encoding cells: %w", err)
	}
	pieceJSON := make(map[piece.Name][]byte, len(pieces))
	for _, pc := range pieces {
		b, err := json.Marshal(pc)
		if err != nil {
			return nil, fmt.Errorf("encoding %v: %w", pc.Name, err)
		}
		pieceJSON[pc.Name] = b
	}
	jw := jsonWriter{
		cacheMaxAge: fmt.Sprintf("max-age=%d", cfg.CacheSec),
		log:         p.Logger,
	}
	getMux := http.NewServeMux()
	getMux.Handle(piecesPath, jw.handler(piecesJSON))
	getMux.Handle(piecesPath+"/", jw.pieceHandler(pieceJSON))
	getMux.Handle(cellsPath, jw.handler(cellsJSON))
	return getOnlyHandler(getMux), nil
}

// getOnlyHandler rejects requests that are not reads.
func getOnlyHandler(h http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead:
			h.ServeHTTP(w, r)
		default:
			httpError(w, http.StatusMethodNotAllowed)
		}
	}
}

// jsonWriter writes encoded json documents with cache-control headers and gzip compression, if possible.
type jsonWriter struct {
	cacheMaxAge string
	log         log.Logger
}

// handler writes the encoded data.
func (jw jsonWriter) handler(data []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jw.write(w, r, data)
	}
}

// pieceHandler writes the encoded piece named by the last part of the path.
func (jw jsonWriter) pieceHandler(pieceJSON map[piece.Name][]byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := piece.Name(strings.TrimPrefix(r.URL.Path, piecesPath+"/"))
		data, ok := pieceJSON[name]
		if !ok {
			httpError(w, http.StatusNotFound)
			return
		}
		jw.write(w, r, data)
	}
}

// write writes the data as the response.
func (jw jsonWriter) write(w http.ResponseWriter, r *http.Request, data []byte) {
	w.Header().Set(HeaderContentType, jsonContentType)
	w.Header().Set(HeaderCacheControl, jw.cacheMaxAge)
	if strings.Contains(r.Header.Get(HeaderAcceptEncoding), "gzip") {
		w2 := gzip.NewWriter(w)
		defer w2.Close()
		w = wrappedResponseWriter{
			Writer:         w2,
			ResponseWriter: w,
		}
		w.Header().Add(HeaderContentEncoding, "gzip")
	}
	if _, err := w.Write(data); err != nil {
		jw.log.Printf("writing response for %v: %v", r.URL.Path, err)
	}
}

// httpError writes the error status code.
func httpError(w http.ResponseWriter, statusCode int) {
	http.Error(w, http.StatusText(statusCode), statusCode)
}

// wrappedResponseWriter wraps response writing with another writer.
type wrappedResponseWriter struct {
	io.Writer
	http.ResponseWriter
}

// Write delegates the write to the wrapped writer.
func (wrw wrappedResponseWriter) Write(p []byte) (n int, err error) {
	return wrw.Writer.Write(p)
}
