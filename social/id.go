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

package social

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Identifiers are opaque strings at the API boundary and ObjectIDs inside. kind names the entity
// type ("User", "Post", "Comment") for error messages.

// ParseID converts the boundary string form of an identifier into its store form.
func ParseID(kind string, s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, newInvalidIDError(kind, s)
	}
	return id, nil
}

// ParseIDs converts a list of boundary identifiers, failing on the first invalid one.
func ParseIDs(kind string, ss []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(ss))
	for _, s := range ss {
		id, err := ParseID(kind, s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
