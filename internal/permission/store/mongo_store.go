/*
 * Copyright (c) 2026, the wallet-bridge project.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	model "github.com/HessamRisky-NEW/wallet-bridge/internal/permission/model"
)

const mongoOpTimeout = 5 * time.Second

type mongoPermissionRecord struct {
	Origin       string `bson:"origin"`
	DisplayIcon  string `bson:"display_icon,omitempty"`
	DisplayTitle string `bson:"display_title,omitempty"`
	State        string `bson:"state"`
	RequestedAt  int64  `bson:"requested_at,omitempty"`
}

// MongoPermissionStore persists permission records in a mongo collection
// keyed by origin.
type MongoPermissionStore struct {
	collection *mongo.Collection
}

// NewMongoPermissionStore initializes a store over the given collection.
func NewMongoPermissionStore(db *mongo.Database, collectionName string) *MongoPermissionStore {
	return &MongoPermissionStore{
		collection: db.Collection(collectionName),
	}
}

func (s *MongoPermissionStore) Check(origin string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoOpTimeout)
	defer cancel()

	filter := bson.M{"origin": origin, "state": string(model.StateAllowed)}
	count, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *MongoPermissionStore) Grant(record model.PermissionRequest) error {
	ctx, cancel := context.WithTimeout(context.Background(), mongoOpTimeout)
	defer cancel()

	doc := mongoPermissionRecord{
		Origin:       record.Origin,
		DisplayIcon:  record.DisplayIcon,
		DisplayTitle: record.DisplayTitle,
		State:        string(model.StateAllowed),
		RequestedAt:  record.RequestedAt,
	}

	filter := bson.M{"origin": record.Origin}
	update := bson.M{"$set": doc}
	opts := options.Update().SetUpsert(true)

	_, err := s.collection.UpdateOne(ctx, filter, update, opts)
	return err
}

func (s *MongoPermissionStore) Revoke(origin string) error {
	ctx, cancel := context.WithTimeout(context.Background(), mongoOpTimeout)
	defer cancel()

	// DeleteOne on an absent origin matches nothing, which is the intended no-op.
	_, err := s.collection.DeleteOne(ctx, bson.M{"origin": origin})
	return err
}

func (s *MongoPermissionStore) List() ([]model.PermissionRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoOpTimeout)
	defer cancel()

	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []mongoPermissionRecord
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	records := make([]model.PermissionRequest, 0, len(docs))
	for _, doc := range docs {
		records = append(records, model.PermissionRequest{
			Origin:       doc.Origin,
			DisplayIcon:  doc.DisplayIcon,
			DisplayTitle: doc.DisplayTitle,
			State:        model.PermissionState(doc.State),
			RequestedAt:  doc.RequestedAt,
		})
	}
	return records, nil
}
