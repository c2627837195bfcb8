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

package schema

import (
	"context"

	"github.com/botobag/chirp/social"

	"github.com/botobag/artemis/graphql"
)

// The update inputs restrict mutations to scalar fields; reference arrays are supplied once, at
// creation, and cannot be changed through the API afterwards.

func updateUserInputType() *graphql.InputObjectConfig {
	return &graphql.InputObjectConfig{
		Name: "UpdateUserInput",
		Fields: graphql.InputFields{
			"name":     {Type: graphql.T(graphql.String())},
			"password": {Type: graphql.T(graphql.String())},
			"email":    {Type: graphql.T(graphql.String())},
		},
	}
}

func updatePostInputType() *graphql.InputObjectConfig {
	return &graphql.InputObjectConfig{
		Name: "UpdatePostInput",
		Fields: graphql.InputFields{
			"content": {Type: graphql.T(graphql.String())},
		},
	}
}

func updateCommentInputType() *graphql.InputObjectConfig {
	return &graphql.InputObjectConfig{
		Name: "UpdateCommentInput",
		Fields: graphql.InputFields{
			"text": {Type: graphql.T(graphql.String())},
		},
	}
}

// mutationType defines the mutation root: create, update and delete per entity type. Creates take
// the full initial reference arrays from the client; the service computes no back-references on
// their behalf.
func mutationType(t *typeConfigs) *graphql.ObjectConfig {
	return &graphql.ObjectConfig{
		Name:   "Mutation",
		Fields: mergeFields(userMutations(t), postMutations(t), commentMutations(t)),
	}
}

func mergeFields(fieldMaps ...graphql.Fields) graphql.Fields {
	merged := graphql.Fields{}
	for _, fields := range fieldMaps {
		for name, field := range fields {
			merged[name] = field
		}
	}
	return merged
}

func userMutations(t *typeConfigs) graphql.Fields {
	return graphql.Fields{
		"createUser": {
			Type: graphql.NonNullOf(t.user),
			Args: graphql.ArgumentConfigMap{
				"name":       {Type: nonNullString},
				"password":   {Type: nonNullString},
				"email":      {Type: nonNullString},
				"posts":      {Type: nonNullIDList},
				"comments":   {Type: nonNullIDList},
				"likedPosts": {Type: nonNullIDList},
			},
			Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
				posts, err := idListArg(info, "Post", "posts")
				if err != nil {
					return nil, err
				}
				comments, err := idListArg(info, "Comment", "comments")
				if err != nil {
					return nil, err
				}
				likedPosts, err := idListArg(info, "Post", "likedPosts")
				if err != nil {
					return nil, err
				}
				return service(info).CreateUser(ctx, social.CreateUserInput{
					Name:       stringArg(info, "name"),
					Email:      stringArg(info, "email"),
					Password:   stringArg(info, "password"),
					Posts:      posts,
					Comments:   comments,
					LikedPosts: likedPosts,
				})
			}),
		},
		"updateUser": {
			Type: graphql.NonNullOf(t.user),
			Args: graphql.ArgumentConfigMap{
				"id":    {Type: nonNullID},
				"input": {Type: graphql.NonNullOf(updateUserInputType())},
			},
			Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
				id, err := idArg(info, "User", "id")
				if err != nil {
					return nil, err
				}
				input := inputArg(info, "input")
				return service(info).UpdateUser(ctx, id, social.UpdateUserInput{
					Name:     optionalString(input, "name"),
					Email:    optionalString(input, "email"),
					Password: optionalString(input, "password"),
				})
			}),
		},
		"deleteUser": {
			Type: nonNullBoolean,
			Args: graphql.ArgumentConfigMap{
				"id": {Type: nonNullID},
			},
			Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
				id, err := idArg(info, "User", "id")
				if err != nil {
					return nil, err
				}
				return service(info).DeleteUser(ctx, id)
			}),
		},
	}
}

func postMutations(t *typeConfigs) graphql.Fields {
	return graphql.Fields{
		"createPost": {
			Type: graphql.NonNullOf(t.post),
			Args: graphql.ArgumentConfigMap{
				"content":  {Type: nonNullString},
				"author":   {Type: nonNullID},
				"comments": {Type: nonNullIDList},
				"likes":    {Type: nonNullIDList},
			},
			Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
				author, err := idArg(info, "User", "author")
				if err != nil {
					return nil, err
				}
				comments, err := idListArg(info, "Comment", "comments")
				if err != nil {
					return nil, err
				}
				likes, err := idListArg(info, "User", "likes")
				if err != nil {
					return nil, err
				}
				return service(info).CreatePost(ctx, social.CreatePostInput{
					Content:  stringArg(info, "content"),
					Author:   author,
					Comments: comments,
					Likes:    likes,
				})
			}),
		},
		"updatePost": {
			Type: graphql.NonNullOf(t.post),
			Args: graphql.ArgumentConfigMap{
				"id":    {Type: nonNullID},
				"input": {Type: graphql.NonNullOf(updatePostInputType())},
			},
			Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
				id, err := idArg(info, "Post", "id")
				if err != nil {
					return nil, err
				}
				input := inputArg(info, "input")
				return service(info).UpdatePost(ctx, id, social.UpdatePostInput{
					Content: optionalString(input, "content"),
				})
			}),
		},
		"deletePost": {
			Type: nonNullBoolean,
			Args: graphql.ArgumentConfigMap{
				"id": {Type: nonNullID},
			},
			Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
				id, err := idArg(info, "Post", "id")
				if err != nil {
					return nil, err
				}
				return service(info).DeletePost(ctx, id)
			}),
		},
	}
}

func commentMutations(t *typeConfigs) graphql.Fields {
	return graphql.Fields{
		"createComment": {
			Type: graphql.NonNullOf(t.comment),
			Args: graphql.ArgumentConfigMap{
				"text":   {Type: nonNullString},
				"author": {Type: nonNullID},
				"post":   {Type: nonNullID},
			},
			Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
				author, err := idArg(info, "User", "author")
				if err != nil {
					return nil, err
				}
				post, err := idArg(info, "Post", "post")
				if err != nil {
					return nil, err
				}
				return service(info).CreateComment(ctx, social.CreateCommentInput{
					Text:   stringArg(info, "text"),
					Author: author,
					Post:   post,
				})
			}),
		},
		"updateComment": {
			Type: graphql.NonNullOf(t.comment),
			Args: graphql.ArgumentConfigMap{
				"id":    {Type: nonNullID},
				"input": {Type: graphql.NonNullOf(updateCommentInputType())},
			},
			Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
				id, err := idArg(info, "Comment", "id")
				if err != nil {
					return nil, err
				}
				input := inputArg(info, "input")
				return service(info).UpdateComment(ctx, id, social.UpdateCommentInput{
					Text: optionalString(input, "text"),
				})
			}),
		},
		"deleteComment": {
			Type: nonNullBoolean,
			Args: graphql.ArgumentConfigMap{
				"id": {Type: nonNullID},
			},
			Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
				id, err := idArg(info, "Comment", "id")
				if err != nil {
					return nil, err
				}
				return service(info).DeleteComment(ctx, id)
			}),
		},
	}
}
