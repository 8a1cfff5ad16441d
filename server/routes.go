//go:build !js
// +build !js

package main

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/simukka/catch-it/game"
)

// SetupRoutes serves the page, the per-game configs and everything else from
// staticDir (the compiled bundle and sprite assets).
func SetupRoutes(router *gin.Engine, configs map[string]game.Config, staticDir string, dev bool) {
	if dev {
		router.Use(func(c *gin.Context) {
			// Always refetch the bundle while developing
			c.Header("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
			c.Next()
		})
	}

	// Serve embedded index.html at root path
	index := func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
	}
	router.GET("/", index)
	router.GET("/index.html", index)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "healthy"})
		})
		api.GET("/games", listGames(configs))
		api.GET("/config/:gameId", getConfig(configs))
	}

	// Serve other static files from disk
	files := http.FileServer(http.Dir(staticDir))
	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		files.ServeHTTP(c.Writer, c.Request)
	})
}

func listGames(configs map[string]game.Config) gin.HandlerFunc {
	ids := make([]string, 0, len(configs))
	for id := range configs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"games": ids})
	}
}

func getConfig(configs map[string]game.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("gameId")
		cfg, ok := configs[id]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown game " + id})
			return
		}
		c.JSON(http.StatusOK, cfg)
	}
}
