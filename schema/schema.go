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

// Package schema declares the GraphQL API surface of the social-content service: the User, Post
// and Comment object types, the query and mutation roots, and the field resolvers that bridge into
// the social package. The social.Service rides in the execution's AppContext.
package schema

import (
	"github.com/botobag/chirp/social"

	"github.com/botobag/artemis/graphql"
)

// typeConfigs groups the mutually referential object type definitions. The engine memoizes type
// creation on definition identity, so sharing these pointers is what ties the reference cycle
// (User ↔ Post ↔ Comment) together.
type typeConfigs struct {
	user    *graphql.ObjectConfig
	post    *graphql.ObjectConfig
	comment *graphql.ObjectConfig
}

func newTypeConfigs() *typeConfigs {
	t := &typeConfigs{
		user:    &graphql.ObjectConfig{Name: "User"},
		post:    &graphql.ObjectConfig{Name: "Post"},
		comment: &graphql.ObjectConfig{Name: "Comment"},
	}
	t.user.Fields = userFields(t)
	t.post.Fields = postFields(t)
	t.comment.Fields = commentFields(t)
	return t
}

// New builds the schema served by this service. It panics on an invalid type definition, which is
// a programming error rather than a runtime condition.
func New() graphql.Schema {
	t := newTypeConfigs()
	schema, err := graphql.NewSchema(&graphql.SchemaConfig{
		Query:    graphql.MustNewObject(queryType(t)),
		Mutation: graphql.MustNewObject(mutationType(t)),
	})
	if err != nil {
		panic(err)
	}
	return schema
}

// service recovers the social.Service supplied via executor.ExecuteParams.AppContext.
func service(info graphql.ResolveInfo) *social.Service {
	return info.AppContext().(*social.Service)
}

// Shorthands for the non-null wrappers the schema uses throughout.
var (
	nonNullID      = graphql.NonNullOfType(graphql.ID())
	nonNullString  = graphql.NonNullOfType(graphql.String())
	nonNullBoolean = graphql.NonNullOfType(graphql.Boolean())
	nonNullIDList  = graphql.NonNullOf(graphql.ListOf(nonNullID))
)

// nonNullListOf builds the "[T!]!" wrapper around an object definition.
func nonNullListOf(typeDef graphql.TypeDefinition) graphql.TypeDefinition {
	return graphql.NonNullOf(graphql.ListOf(graphql.NonNullOf(typeDef)))
}
