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

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reference resolution. Each call translates one reference attribute of an already-loaded parent
// into the referenced document(s) with exactly one store query, at the moment the field is
// requested. Calls are independent: no batching or deduplication across siblings, no caching
// within a response, and resolution never writes.
//
// Single references are assumed valid; a missing target propagates as a not-found failure.
// Multi references tolerate dangling ids: documents that no longer exist are silently omitted, so
// the result may be shorter than the stored id array.

// UserPosts resolves the posts a user references.
func (s *Service) UserPosts(ctx context.Context, user *User) ([]*Post, error) {
	return s.postsByIDs(ctx, user.Posts)
}

// UserComments resolves the comments a user references.
func (s *Service) UserComments(ctx context.Context, user *User) ([]*Comment, error) {
	return s.commentsByIDs(ctx, user.Comments)
}

// UserLikedPosts resolves the posts a user has liked.
func (s *Service) UserLikedPosts(ctx context.Context, user *User) ([]*Post, error) {
	return s.postsByIDs(ctx, user.LikedPosts)
}

// PostAuthor resolves a post's author.
func (s *Service) PostAuthor(ctx context.Context, post *Post) (*User, error) {
	return s.User(ctx, post.Author)
}

// PostComments resolves the comments a post references.
func (s *Service) PostComments(ctx context.Context, post *Post) ([]*Comment, error) {
	return s.commentsByIDs(ctx, post.Comments)
}

// PostLikes resolves the users who liked a post.
func (s *Service) PostLikes(ctx context.Context, post *Post) ([]*User, error) {
	return s.usersByIDs(ctx, post.Likes)
}

// CommentAuthor resolves a comment's author.
func (s *Service) CommentAuthor(ctx context.Context, comment *Comment) (*User, error) {
	return s.User(ctx, comment.Author)
}

// CommentPost resolves the post a comment belongs to.
func (s *Service) CommentPost(ctx context.Context, comment *Comment) (*Post, error) {
	return s.Post(ctx, comment.Post)
}

func (s *Service) usersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*User, error) {
	users := []*User{}
	if err := s.users.FindMany(ctx, ids, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Service) postsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*Post, error) {
	posts := []*Post{}
	if err := s.posts.FindMany(ctx, ids, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *Service) commentsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*Comment, error) {
	comments := []*Comment{}
	if err := s.comments.FindMany(ctx, ids, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
