package main

import (
	"fmt"
	"time"

	"github.com/jacobpatterson1549/cathedral/game/piece"
	"github.com/jacobpatterson1549/cathedral/server"
	"github.com/jacobpatterson1549/cathedral/server/log"
)

// serverConfig creates the server configuration.
func (m mainFlags) serverConfig() server.Config {
	cfg := server.Config{
		Port:     m.port,
		StopDur:  time.Second,
		CacheSec: m.cacheSec,
	}
	return cfg
}

// createServer creates the server that shares the standard piece catalog.
func (m mainFlags) createServer(log log.Logger) (*server.Server, error) {
	catalog := piece.Standard()
	log.Printf("serving %v pieces (%v in a full set)", catalog.Len(), catalog.TotalCount())
	p := server.Parameters{
		Logger:  log,
		Catalog: catalog,
	}
	cfg := m.serverConfig()
	s, err := cfg.NewServer(p)
	if err != nil {
		return nil, fmt.Errorf("creating server: %w", err)
	}
	return s, nil
}
