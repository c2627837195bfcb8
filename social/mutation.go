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

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// The mutation coordinator. Each operation acts on a single document and either fully applies or
// not at all. Creates take the full initial reference arrays from the caller; no back-reference is
// computed on their behalf. Updates are set-only partial merges over scalar fields. Deletes remove
// one document and never cascade into reference arrays held by other documents.

// CreateUserInput carries every field of a new user. Password is the plaintext to be hashed.
type CreateUserInput struct {
	Name       string
	Email      string
	Password   string
	Posts      []primitive.ObjectID
	Comments   []primitive.ObjectID
	LikedPosts []primitive.ObjectID
}

// CreatePostInput carries every field of a new post.
type CreatePostInput struct {
	Content  string
	Author   primitive.ObjectID
	Comments []primitive.ObjectID
	Likes    []primitive.ObjectID
}

// CreateCommentInput carries every field of a new comment.
type CreateCommentInput struct {
	Text   string
	Author primitive.ObjectID
	Post   primitive.ObjectID
}

// UpdateUserInput lists the scalar fields of a user that can change after creation; nil fields are
// left untouched. Reference arrays cannot be updated.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
}

// UpdatePostInput lists the updatable scalar fields of a post.
type UpdatePostInput struct {
	Content *string
}

// UpdateCommentInput lists the updatable scalar fields of a comment.
type UpdateCommentInput struct {
	Text *string
}

// CreateUser persists a new user and returns it with the store-assigned id. It fails with a
// uniqueness violation when another user already holds the email. The check and the insert are two
// store operations with no transaction between them; two concurrent creates with the same email
// can race past the check.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*User, error) {
	exists, err := s.users.FindOneByField(ctx, "email", input.Email, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, newEmailExistsError()
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &User{
		Name:       input.Name,
		Email:      input.Email,
		Password:   hash,
		Posts:      idSet(input.Posts),
		Comments:   idSet(input.Comments),
		LikedPosts: idSet(input.LikedPosts),
	}
	id, err := s.users.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id
	return user, nil
}

// UpdateUser merges the present fields of input into the stored user and returns the post-merge
// document. A supplied password is re-hashed before it is stored.
func (s *Service) UpdateUser(ctx context.Context, id primitive.ObjectID, input UpdateUserInput) (*User, error) {
	fields := bson.M{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Email != nil {
		fields["email"] = *input.Email
	}
	if input.Password != nil {
		hash, err := hashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		fields["password"] = hash
	}

	var user User
	found, err := s.updateFields(ctx, s.users, id, fields, &user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, newNotFoundError("User", id)
	}
	return &user, nil
}

// DeleteUser removes the user with the given id, reporting whether a document was deleted.
// References to the user held by posts and comments are left intact.
func (s *Service) DeleteUser(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := s.users.DeleteOne(ctx, id)
	return count == 1, err
}

// CreatePost persists a new post and returns it with the store-assigned id.
func (s *Service) CreatePost(ctx context.Context, input CreatePostInput) (*Post, error) {
	post := &Post{
		Content:  input.Content,
		Author:   input.Author,
		Comments: idSet(input.Comments),
		Likes:    idSet(input.Likes),
	}
	id, err := s.posts.InsertOne(ctx, post)
	if err != nil {
		return nil, err
	}
	post.ID = id
	return post, nil
}

// UpdatePost merges the present fields of input into the stored post and returns the post-merge
// document.
func (s *Service) UpdatePost(ctx context.Context, id primitive.ObjectID, input UpdatePostInput) (*Post, error) {
	fields := bson.M{}
	if input.Content != nil {
		fields["content"] = *input.Content
	}

	var post Post
	found, err := s.updateFields(ctx, s.posts, id, fields, &post)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, newNotFoundError("Post", id)
	}
	return &post, nil
}

// DeletePost removes the post with the given id, reporting whether a document was deleted.
func (s *Service) DeletePost(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := s.posts.DeleteOne(ctx, id)
	return count == 1, err
}

// CreateComment persists a new comment and returns it with the store-assigned id. The post's
// comments array is not touched; linkage is the caller's responsibility.
func (s *Service) CreateComment(ctx context.Context, input CreateCommentInput) (*Comment, error) {
	comment := &Comment{
		Text:   input.Text,
		Author: input.Author,
		Post:   input.Post,
	}
	id, err := s.comments.InsertOne(ctx, comment)
	if err != nil {
		return nil, err
	}
	comment.ID = id
	return comment, nil
}

// UpdateComment merges the present fields of input into the stored comment and returns the
// post-merge document.
func (s *Service) UpdateComment(ctx context.Context, id primitive.ObjectID, input UpdateCommentInput) (*Comment, error) {
	fields := bson.M{}
	if input.Text != nil {
		fields["text"] = *input.Text
	}

	var comment Comment
	found, err := s.updateFields(ctx, s.comments, id, fields, &comment)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, newNotFoundError("Comment", id)
	}
	return &comment, nil
}

// DeleteComment removes the comment with the given id, reporting whether a document was deleted.
func (s *Service) DeleteComment(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := s.comments.DeleteOne(ctx, id)
	return count == 1, err
}

// updateFields applies a partial merge, falling back to a plain lookup when no field is present in
// the request (the store rejects an empty "$set").
func (s *Service) updateFields(
	ctx context.Context,
	coll storage.Collection,
	id primitive.ObjectID,
	fields bson.M,
	out interface{},
) (bool, error) {
	if len(fields) == 0 {
		return coll.FindOne(ctx, id, out)
	}
	return coll.UpdateOne(ctx, id, fields, out)
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// idSet normalizes a reference array so an absent input stores as an empty array rather than null.
func idSet(ids []primitive.ObjectID) []primitive.ObjectID {
	if ids == nil {
		return []primitive.ObjectID{}
	}
	return ids
}
