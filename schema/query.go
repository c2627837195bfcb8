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

	"github.com/botobag/artemis/graphql"
)

// queryType defines the query root: a query-by-id and a query-all per entity type.
func queryType(t *typeConfigs) *graphql.ObjectConfig {
	return &graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"users": {
				Type: nonNullListOf(t.user),
				Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
					return service(info).Users(ctx)
				}),
			},
			"user": {
				Type: t.user,
				Args: graphql.ArgumentConfigMap{
					"id": {Type: nonNullID},
				},
				Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
					id, err := idArg(info, "User", "id")
					if err != nil {
						return nil, err
					}
					return service(info).User(ctx, id)
				}),
			},
			"posts": {
				Type: nonNullListOf(t.post),
				Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
					return service(info).Posts(ctx)
				}),
			},
			"post": {
				Type: t.post,
				Args: graphql.ArgumentConfigMap{
					"id": {Type: nonNullID},
				},
				Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
					id, err := idArg(info, "Post", "id")
					if err != nil {
						return nil, err
					}
					return service(info).Post(ctx, id)
				}),
			},
			"comments": {
				Type: nonNullListOf(t.comment),
				Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
					return service(info).Comments(ctx)
				}),
			},
			"comment": {
				Type: t.comment,
				Args: graphql.ArgumentConfigMap{
					"id": {Type: nonNullID},
				},
				Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
					id, err := idArg(info, "Comment", "id")
					if err != nil {
						return nil, err
					}
					return service(info).Comment(ctx, id)
				}),
			},
		},
	}
}
