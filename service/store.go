// Copyright ©2026 The ngp-dag-layout Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// runRecord is one persisted /v1/layouts invocation. The core optimizer
// stays free of timing and telemetry concerns; this bookkeeping lives
// entirely in the host layer.
type runRecord struct {
	ID          string    `bson:"_id"`
	Digest      string    `bson:"digest"`
	NumRanks    int       `bson:"num_ranks"`
	NumEdges    int       `bson:"num_edges"`
	TotalBefore int64     `bson:"total_before"`
	TotalAfter  int64     `bson:"total_after"`
	Duration    int64     `bson:"duration_ms"`
	CacheHit    bool      `bson:"cache_hit"`
	CreatedAt   time.Time `bson:"created_at"`
}

// runStore persists runRecords to a MongoDB collection.
type runStore struct {
	collection *mongo.Collection
}

// newRunStore opens the "runs" collection in database dbName on client.
func newRunStore(client *mongo.Client, dbName string) *runStore {
	return &runStore{collection: client.Database(dbName).Collection("runs")}
}

// record inserts a new run record with a fresh run ID, returning the ID.
func (s *runStore) record(ctx context.Context, rec runRecord) (string, error) {
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now()
	if _, err := s.collection.InsertOne(ctx, rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

// recent returns the most recently recorded runs, newest first, up to
// limit entries.
func (s *runStore) recent(ctx context.Context, limit int64) ([]runRecord, error) {
	opts := options.Find().SetSort(map[string]int{"created_at": -1}).SetLimit(limit)
	cur, err := s.collection.Find(ctx, map[string]any{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []runRecord
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
