/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package server exposes the endpoint splitter as a JSON HTTP API.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jplu/splituri/internal/config"
)

// NewRouter wires the middlewares and routes.
func NewRouter(cfg config.Config, log *zap.Logger) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(accessLog(log.Named("access")))
	r.Use(limitBody(cfg.MaxBodyBytes))

	r.GET("/api/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"message": "pong"}) })

	h := NewURIHandler(log, cfg.Normalize, cfg.Strict)
	api := r.Group("/api/uri")
	api.POST("/split", h.Split)
	api.GET("/split", h.SplitQuery)
	api.POST("/encode", h.Encode)
	api.POST("/rebuild", h.Rebuild)

	return r
}

// New returns an HTTP server listening on cfg.Listen.
func New(cfg config.Config, log *zap.Logger) *http.Server {
	return &http.Server{
		Addr:              cfg.Listen,
		Handler:           NewRouter(cfg, log),
		ReadHeaderTimeout: 2 * time.Second,  // kills header-drip Slowloris
		ReadTimeout:       10 * time.Second, // full request read (incl. body)
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
		ErrorLog:          zap.NewStdLog(log.Named("http")),
	}
}
