// Package server runs the http server which lets clients read the piece catalog.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jacobpatterson1549/cathedral/game/piece"
	"github.com/jacobpatterson1549/cathedral/server/log"
)

type (
	// Server runs the site.
	Server struct {
		log        log.Logger
		HTTPServer *http.Server
		Config
	}

	// Config contains fields which describe the server.
	Config struct {
		// Port is the TCP port for server http requests.
		Port int
		// StopDur is the maximum duration the server has to shut down.
		StopDur time.Duration
		// CacheSec is the number of seconds responses are cached.
		CacheSec int
	}

	// Parameters contains the interfaces needed to create a new server.
	Parameters struct {
		log.Logger
		Catalog
	}

	// Catalog provides the pieces that are served.
	Catalog interface {
		Pieces() []piece.Piece
		Cells() []piece.Cell
	}
)

const (
	// HeaderContentType is used to set the document type header on http responses.
	HeaderContentType = "Content-Type"
	// HeaderCacheControl is used to tell browsers how long to cache http responses.
	HeaderCacheControl = "Cache-Control"
	// HeaderAcceptEncoding is specified by the browser to tell the server what types of document encoding it can handle.
	HeaderAcceptEncoding = "Accept-Encoding"
	// HeaderContentEncoding is used to tell browsers how the document is encoded.
	HeaderContentEncoding = "Content-Encoding"
)

// NewServer creates a Server from the Config.
func (cfg Config) NewServer(p Parameters) (*Server, error) {
	if err := cfg.validate(p); err != nil {
		return nil, fmt.Errorf("creating server: validation: %w", err)
	}
	h, err := cfg.catalogHandler(p)
	if err != nil {
		return nil, fmt.Errorf("creating server: %w", err)
	}
	s := Server{
		log: p.Logger,
		HTTPServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      h,
			ReadTimeout:  60 * time.Second,
			WriteTimeout: 60 * time.Second,
		},
		Config: cfg,
	}
	return &s, nil
}

// validate ensures the configuration and parameters have no errors.
func (cfg Config) validate(p Parameters) error {
	if err := p.validate(); err != nil {
		return err
	}
	switch {
	case cfg.Port <= 0:
		return fmt.Errorf("positive port required")
	case cfg.StopDur <= 0:
		return fmt.Errorf("stop timeout duration required")
	case cfg.CacheSec < 0:
		return fmt.Errorf("nonnegative cache seconds required")
	}
	return nil
}

// validate ensures that all of the parameters are present.
func (p Parameters) validate() error {
	switch {
	case p.Logger == nil:
		return fmt.Errorf("log required")
	case p.Catalog == nil:
		return fmt.Errorf("catalog required")
	}
	return nil
}

// Run the server asynchronously until it receives a shutdown signal.
// When the server stops, the error is added to the returned channel.
func (s *Server) Run(ctx context.Context) <-chan error {
	errC := make(chan error, 1)
	s.log.Printf("starting http server at http://127.0.0.1%v", s.HTTPServer.Addr)
	go func() {
		errC <- s.HTTPServer.ListenAndServe()
	}()
	return errC
}

// Stop asks the server to shutdown and waits for the shutdown to complete.
// An error is returned if the server does not stop before the stop duration.
func (s *Server) Stop(ctx context.Context) error {
	ctx, cancelFunc := context.WithTimeout(ctx, s.StopDur)
	defer cancelFunc()
	if err := s.HTTPServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	return nil
}
