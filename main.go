package main

import (
	"github.com/badcoders/filmbase/internal/config"
	"github.com/badcoders/filmbase/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	cfg := config.NewConfig()
	entrypoint.Run(cfg, Version)
}
