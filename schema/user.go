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

// userFields defines the User object type. The relationship fields resolve lazily: each one runs a
// single store query when, and only when, the client requests it. The password field exposes the
// stored hash, never a plaintext.
func userFields(t *typeConfigs) graphql.Fields {
	return graphql.Fields{
		"id": {
			Type: nonNullID,
			Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
				return source.(*social.User).ID.Hex(), nil
			}),
		},
		"name": {
			Type: nonNullString,
			Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
				return source.(*social.User).Name, nil
			}),
		},
		"email": {
			Type: nonNullString,
			Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
				return source.(*social.User).Email, nil
			}),
		},
		"password": {
			Type: nonNullString,
			Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
				return source.(*social.User).Password, nil
			}),
		},
		"posts": {
			Type: nonNullListOf(t.post),
			Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
				return service(info).UserPosts(ctx, source.(*social.User))
			}),
		},
		"comments": {
			Type: nonNullListOf(t.comment),
			Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
				return service(info).UserComments(ctx, source.(*social.User))
			}),
		},
		"likedPosts": {
			Type: nonNullListOf(t.post),
			Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
				return service(info).UserLikedPosts(ctx, source.(*social.User))
			}),
		},
	}
}
