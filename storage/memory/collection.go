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

// Package memory implements storage.Collection in process memory. It mirrors the observable
// behavior of the MongoDB adapter (bson document round-trip, insertion-ordered scans, fresh
// ObjectID per insert) so suites and demos can run without a store deployment.
package memory

import (
	"bytes"
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/botobag/chirp/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection keeps documents as bson-encoded bytes keyed by identifier.
type Collection struct {
	mutex sync.RWMutex

	// ids in insertion order; deleted ids are removed and never reused.
	ids  []primitive.ObjectID
	docs map[primitive.ObjectID]bson.Raw
}

var _ storage.Collection = (*Collection)(nil)

// New creates an empty Collection.
func New() *Collection {
	return &Collection{
		docs: map[primitive.ObjectID]bson.Raw{},
	}
}

// FindOne implements storage.Collection.
func (c *Collection) FindOne(ctx context.Context, id primitive.ObjectID, out interface{}) (bool, error) {
	c.mutex.RLock()
	raw, found := c.docs[id]
	c.mutex.RUnlock()

	if !found {
		return false, nil
	}
	return true, bson.Unmarshal(raw, out)
}

// FindMany implements storage.Collection. Ids without a matching document are skipped.
func (c *Collection) FindMany(ctx context.Context, ids []primitive.ObjectID, out interface{}) error {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	slice, err := sliceValue(out)
	if err != nil {
		return err
	}
	for _, id := range ids {
		raw, found := c.docs[id]
		if !found {
			continue
		}
		if err := slice.appendDecoded(raw); err != nil {
			return err
		}
	}
	slice.store()
	return nil
}

// FindAll implements storage.Collection. Documents are returned in insertion order.
func (c *Collection) FindAll(ctx context.Context, out interface{}) error {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	slice, err := sliceValue(out)
	if err != nil {
		return err
	}
	for _, id := range c.ids {
		if err := slice.appendDecoded(c.docs[id]); err != nil {
			return err
		}
	}
	slice.store()
	return nil
}

// FindOneByField implements storage.Collection. Documents are probed in insertion order.
func (c *Collection) FindOneByField(ctx context.Context, field string, value interface{}, out interface{}) (bool, error) {
	valueType, valueData, err := bson.MarshalValue(value)
	if err != nil {
		return false, err
	}

	c.mutex.RLock()
	defer c.mutex.RUnlock()

	for _, id := range c.ids {
		raw := c.docs[id]
		stored := raw.Lookup(field)
		if stored.Type != valueType || !bytes.Equal(stored.Value, valueData) {
			continue
		}
		if out == nil {
			return true, nil
		}
		return true, bson.Unmarshal(raw, out)
	}
	return false, nil
}

// InsertOne implements storage.Collection. A document carrying a non-zero "_id" keeps it; any other
// document is assigned a fresh identifier.
func (c *Collection) InsertOne(ctx context.Context, doc interface{}) (primitive.ObjectID, error) {
	elems, err := documentElements(doc)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id := primitive.NewObjectID()
	for _, elem := range elems {
		if elem.Key != "_id" {
			continue
		}
		if oid, ok := elem.Value.(primitive.ObjectID); ok && !oid.IsZero() {
			id = oid
		}
	}

	stored := bson.D{{Key: "_id", Value: id}}
	for _, elem := range elems {
		if elem.Key != "_id" {
			stored = append(stored, elem)
		}
	}
	raw, err := bson.Marshal(stored)
	if err != nil {
		return primitive.NilObjectID, err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()
	if _, exists := c.docs[id]; exists {
		return primitive.NilObjectID, fmt.Errorf("chirp/storage/memory: duplicate identifier %s", id.Hex())
	}
	c.ids = append(c.ids, id)
	c.docs[id] = raw
	return id, nil
}

// UpdateOne implements storage.Collection.
func (c *Collection) UpdateOne(ctx context.Context, id primitive.ObjectID, fields bson.M, out interface{}) (bool, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	raw, found := c.docs[id]
	if !found {
		return false, nil
	}

	elems, err := documentElements(raw)
	if err != nil {
		return false, err
	}
	for key, value := range fields {
		updated := false
		for i := range elems {
			if elems[i].Key == key {
				elems[i].Value = value
				updated = true
				break
			}
		}
		if !updated {
			elems = append(elems, bson.E{Key: key, Value: value})
		}
	}

	merged, err := bson.Marshal(elems)
	if err != nil {
		return false, err
	}
	c.docs[id] = merged
	return true, bson.Unmarshal(merged, out)
}

// DeleteOne implements storage.Collection.
func (c *Collection) DeleteOne(ctx context.Context, id primitive.ObjectID) (int64, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if _, found := c.docs[id]; !found {
		return 0, nil
	}
	delete(c.docs, id)
	for i, storedID := range c.ids {
		if storedID == id {
			c.ids = append(c.ids[:i], c.ids[i+1:]...)
			break
		}
	}
	return 1, nil
}

// documentElements round-trips doc through bson into an ordered element list.
func documentElements(doc interface{}) (bson.D, error) {
	data, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var elems bson.D
	if err := bson.Unmarshal(data, &elems); err != nil {
		return nil, err
	}
	return elems, nil
}

// decodingSlice fills a caller-supplied slice the way mongo.Cursor.All does: out must be a pointer
// to a slice of T or *T.
type decodingSlice struct {
	target reflect.Value
	slice  reflect.Value
}

func sliceValue(out interface{}) (*decodingSlice, error) {
	value := reflect.ValueOf(out)
	if value.Kind() != reflect.Ptr || value.Elem().Kind() != reflect.Slice {
		return nil, fmt.Errorf("chirp/storage/memory: result argument must be a pointer to a slice, but was %T", out)
	}
	elem := value.Elem()
	return &decodingSlice{
		target: elem,
		slice:  elem.Slice(0, 0),
	}, nil
}

func (s *decodingSlice) appendDecoded(raw bson.Raw) error {
	elemType := s.slice.Type().Elem()
	if elemType.Kind() == reflect.Ptr {
		elem := reflect.New(elemType.Elem())
		if err := bson.Unmarshal(raw, elem.Interface()); err != nil {
			return err
		}
		s.slice = reflect.Append(s.slice, elem)
		return nil
	}

	elem := reflect.New(elemType)
	if err := bson.Unmarshal(raw, elem.Interface()); err != nil {
		return err
	}
	s.slice = reflect.Append(s.slice, elem.Elem())
	return nil
}

func (s *decodingSlice) store() {
	s.target.Set(s.slice)
}
