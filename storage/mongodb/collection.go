/**
 * Copyright (c) 2019, The Chirp Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package mongodb implements storage.Collection on top of a MongoDB collection.
package mongodb

import (
	"context"
	"fmt"

	"github.com/botobag/chirp/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection adapts a *mongo.Collection to the storage.Collection contract.
type Collection struct {
	coll *mongo.Collection
}

var _ storage.Collection = (*Collection)(nil)

// Wrap returns a Collection backed by coll.
func Wrap(coll *mongo.Collection) *Collection {
	return &Collection{coll: coll}
}

// FindOne implements storage.Collection.
func (c *Collection) FindOne(ctx context.Context, id primitive.ObjectID, out interface{}) (bool, error) {
	err := c.coll.FindOne(ctx, bson.M{"_id": id}).Decode(out)
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// FindMany implements storage.Collection. It issues a single "id in set" query; the order of the
// returned documents follows the store's natural order, not the order of ids.
func (c *Collection) FindMany(ctx context.Context, ids []primitive.ObjectID, out interface{}) error {
	cursor, err := c.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}

// FindAll implements storage.Collection.
func (c *Collection) FindAll(ctx context.Context, out interface{}) error {
	cursor, err := c.coll.Find(ctx, bson.M{})
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}

// FindOneByField implements storage.Collection.
func (c *Collection) FindOneByField(ctx context.Context, field string, value interface{}, out interface{}) (bool, error) {
	result := c.coll.FindOne(ctx, bson.M{field: value})
	err := result.Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if out != nil {
		if err := result.Decode(out); err != nil {
			return false, err
		}
	}
	return true, nil
}

// InsertOne implements storage.Collection.
func (c *Collection) InsertOne(ctx context.Context, doc interface{}) (primitive.ObjectID, error) {
	result, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf(
			"chirp/storage/mongodb: store assigned a non-ObjectID identifier %v", result.InsertedID)
	}
	return id, nil
}

// UpdateOne implements storage.Collection. The merge is a "$set" restricted to the given fields and
// the post-merge document is returned.
func (c *Collection) UpdateOne(ctx context.Context, id primitive.ObjectID, fields bson.M, out interface{}) (bool, error) {
	err := c.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(out)
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// DeleteOne implements storage.Collection.
func (c *Collection) DeleteOne(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := c.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
