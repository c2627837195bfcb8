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
	"context"

	"github.com/botobag/chirp/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service exposes the query, mutation and reference-resolution operations over the three entity
// collections. The collections are shared, long-lived resources acquired once at startup; Service
// itself holds no other state and is safe for use from concurrent requests.
type Service struct {
	users    storage.Collection
	posts    storage.Collection
	comments storage.Collection
}

// NewService creates a Service over the given collections.
func NewService(users, posts, comments storage.Collection) *Service {
	return &Service{
		users:    users,
		posts:    posts,
		comments: comments,
	}
}

// User returns the user with the given id.
func (s *Service) User(ctx context.Context, id primitive.ObjectID) (*User, error) {
	var user User
	found, err := s.users.FindOne(ctx, id, &user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, newNotFoundError("User", id)
	}
	return &user, nil
}

// Users returns every user document.
func (s *Service) Users(ctx context.Context) ([]*User, error) {
	users := []*User{}
	if err := s.users.FindAll(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Post returns the post with the given id.
func (s *Service) Post(ctx context.Context, id primitive.ObjectID) (*Post, error) {
	var post Post
	found, err := s.posts.FindOne(ctx, id, &post)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, newNotFoundError("Post", id)
	}
	return &post, nil
}

// Posts returns every post document.
func (s *Service) Posts(ctx context.Context) ([]*Post, error) {
	posts := []*Post{}
	if err := s.posts.FindAll(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Comment returns the comment with the given id.
func (s *Service) Comment(ctx context.Context, id primitive.ObjectID) (*Comment, error) {
	var comment Comment
	found, err := s.comments.FindOne(ctx, id, &comment)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, newNotFoundError("Comment", id)
	}
	return &comment, nil
}

// Comments returns every comment document.
func (s *Service) Comments(ctx context.Context) ([]*Comment, error) {
	comments := []*Comment{}
	if err := s.comments.FindAll(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
