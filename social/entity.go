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

// Package social implements the social-content domain: user, post and comment documents that
// reference one another by identifier, the mutations that keep those documents consistent, and the
// resolution of identifier references into full documents.
//
// References are plain identifier arrays with no store-enforced integrity and no maintained
// symmetry: creating a comment does not append its id to the post's comments array. Linkage is the
// caller's responsibility.
package social

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered account. Password holds the one-way hash, never the plaintext.
type User struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty"`
	Name       string               `bson:"name"`
	Email      string               `bson:"email"`
	Password   string               `bson:"password"`
	Posts      []primitive.ObjectID `bson:"posts"`
	Comments   []primitive.ObjectID `bson:"comments"`
	LikedPosts []primitive.ObjectID `bson:"likedPosts"`
}

// Post is a piece of content published by one author. The reference arrays are semantically
// unordered sets; insertion order is preserved but carries no meaning.
type Post struct {
	ID       primitive.ObjectID   `bson:"_id,omitempty"`
	Content  string               `bson:"content"`
	Author   primitive.ObjectID   `bson:"author"`
	Comments []primitive.ObjectID `bson:"comments"`
	Likes    []primitive.ObjectID `bson:"likes"`
}

// Comment is a remark on one post by one author.
type Comment struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Text   string             `bson:"text"`
	Author primitive.ObjectID `bson:"author"`
	Post   primitive.ObjectID `bson:"post"`
}
