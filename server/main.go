//go:build !js
// +build !js

package main

import (
	_ "embed"
	"errors"
	"flag"
	"io/fs"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/simukka/catch-it/config"
	"github.com/simukka/catch-it/game"
)

//go:embed index.html
var indexHTML []byte

// loadConfigs reads the config directory. A missing directory is not an
// error; the built-in catalog is always served as "default".
func loadConfigs(dir string) (map[string]game.Config, error) {
	configs, err := config.LoadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("Config directory %s not found, serving the default game only", dir)
		configs, err = map[string]game.Config{}, nil
	}
	if err != nil {
		return nil, err
	}
	if _, ok := configs["default"]; !ok {
		configs["default"] = game.DefaultConfig()
	}
	return configs, nil
}

func main() {
	env := config.LoadEnv()

	addr := flag.String("addr", env.Addr, "HTTP listen address")
	staticDir := flag.String("static", env.StaticDir, "Directory to serve static files from")
	configDir := flag.String("configs", env.ConfigDir, "Directory of per-game configs")
	debug := flag.Bool("debug", env.Debug, "Debug logging and no-cache headers")
	flag.Parse()

	game.EnableDebug = *debug
	if !*debug {
		gin.SetMode(gin.ReleaseMode)
	}

	configs, err := loadConfigs(*configDir)
	if err != nil {
		log.Fatalf("Failed to load game configs: %v", err)
	}
	log.Printf("Loaded %d game configs", len(configs))

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	SetupRoutes(router, configs, *staticDir, *debug)

	log.Printf("Catch It server starting on http://localhost%s", *addr)
	if err := router.Run(*addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
