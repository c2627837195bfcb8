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

// postFields defines the Post object type. The author reference is assumed valid: a dangling
// author id surfaces as a not-found failure, unlike the multi-valued fields which drop dangling
// ids silently.
func postFields(t *typeConfigs) graphql.Fields {
	return graphql.Fields{
		"id": {
			Type: nonNullID,
			Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
				return source.(*social.Post).ID.Hex(), nil
			}),
		},
		"content": {
			Type: nonNullString,
			Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
				return source.(*social.Post).Content, nil
			}),
		},
		"author": {
			Type: graphql.NonNullOf(t.user),
			Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
				return service(info).PostAuthor(ctx, source.(*social.Post))
			}),
		},
		"comments": {
			Type: nonNullListOf(t.comment),
			Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
				return service(info).PostComments(ctx, source.(*social.Post))
			}),
		},
		"likes": {
			Type: nonNullListOf(t.user),
			Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
				return service(info).PostLikes(ctx, source.(*social.Post))
			}),
		},
	}
}
