// Copyright ©2026 The ngp-dag-layout Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command layoutd serves layered.Optimize over HTTP, for callers that want
// to submit graphs over the network instead of linking the Go library
// directly.
package main

import (
	"context"
	"net/http"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/thleu-ethz-ch/ngp-dag-layout/service"
)

func main() {
	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{ReportTimestamp: true})

	cfg := service.Config{
		RedisAddr:     os.Getenv("LAYOUTD_REDIS_ADDR"),
		CacheTTL:      time.Hour,
		MongoDatabase: envOr("LAYOUTD_MONGO_DB", "layoutd"),
		Logger:        logger,
	}

	if uri := os.Getenv("LAYOUTD_MONGO_URI"); uri != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err != nil {
			logger.Fatalf("connect mongo: %v", err)
		}
		cfg.Mongo = client
	}

	srv := service.NewServer(cfg)

	addr := envOr("LAYOUTD_ADDR", ":8080")
	logger.Infof("listening on %s", addr)
	if err := http.ListenAndServe(addr, srv); err != nil {
		logger.Fatalf("serve: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
