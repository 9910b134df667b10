package main

import (
	"github.com/jrsanchez/musica/internal/config"
	"github.com/jrsanchez/musica/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "1.0.0"
)

func main() {
	cfg := config.NewConfig()
	entrypoint.Run(cfg, Version)
}
