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

// Package storage defines the adapter contract over a schemaless document store. The store assigns
// each document an opaque identifier on insertion and enforces nothing else; uniqueness and
// referential invariants are the caller's concern.
package storage

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection provides identifier-keyed access to one collection of documents. Documents given to
// and loaded from a Collection are bson-encodable values.
type Collection interface {
	// FindOne loads the document with the given id into out. It returns false without error when no
	// document matches.
	FindOne(ctx context.Context, id primitive.ObjectID, out interface{}) (bool, error)

	// FindMany loads every document whose id is a member of ids into out, which must be a pointer to
	// a slice. Ids without a matching document are skipped; the result may therefore be shorter than
	// ids.
	FindMany(ctx context.Context, ids []primitive.ObjectID, out interface{}) error

	// FindAll loads every document in the collection into out, which must be a pointer to a slice.
	FindAll(ctx context.Context, out interface{}) error

	// FindOneByField loads the first document whose field equals value into out. out may be nil when
	// only existence is of interest.
	FindOneByField(ctx context.Context, field string, value interface{}, out interface{}) (bool, error)

	// InsertOne adds doc to the collection and returns the newly assigned identifier. Identifiers
	// are unique within the collection and never reused.
	InsertOne(ctx context.Context, doc interface{}) (primitive.ObjectID, error)

	// UpdateOne merges fields into the document with the given id and loads the post-merge document
	// into out. Document fields absent from fields are left untouched. It returns false without
	// error when no document matches.
	UpdateOne(ctx context.Context, id primitive.ObjectID, fields bson.M, out interface{}) (bool, error)

	// DeleteOne removes the document with the given id and returns the number of documents removed
	// (0 or 1).
	DeleteOne(ctx context.Context, id primitive.ObjectID) (int64, error)
}
