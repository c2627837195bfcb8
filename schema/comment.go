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

// commentFields defines the Comment object type. Both references are single-valued and assumed
// valid.
func commentFields(t *typeConfigs) graphql.Fields {
	return graphql.Fields{
		"id": {
			Type: nonNullID,
			Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
				return source.(*social.Comment).ID.Hex(), nil
			}),
		},
		"text": {
			Type: nonNullString,
			Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
				return source.(*social.Comment).Text, nil
			}),
		},
		"author": {
			Type: graphql.NonNullOf(t.user),
			Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
				return service(info).CommentAuthor(ctx, source.(*social.Comment))
			}),
		},
		"post": {
			Type: graphql.NonNullOf(t.post),
			Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
				return service(info).CommentPost(ctx, source.(*social.Comment))
			}),
		},
	}
}
