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
	"github.com/botobag/chirp/social"

	"github.com/botobag/artemis/graphql"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Accessors for coerced argument values. Input coercion has already validated presence and kind
// for non-null arguments, so the type assertions here are on values the executor produced.

func stringArg(info graphql.ResolveInfo, name string) string {
	s, _ := info.Args().Get(name).(string)
	return s
}

// idArg converts an ID argument into its store form; kind names the entity type for the error.
func idArg(info graphql.ResolveInfo, kind string, name string) (primitive.ObjectID, error) {
	return social.ParseID(kind, stringArg(info, name))
}

// idListArg converts a [ID!]! argument into store identifiers.
func idListArg(info graphql.ResolveInfo, kind string, name string) ([]primitive.ObjectID, error) {
	values, _ := info.Args().Get(name).([]interface{})
	ids := make([]primitive.ObjectID, 0, len(values))
	for _, value := range values {
		s, _ := value.(string)
		id, err := social.ParseID(kind, s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// inputArg returns the coerced value of an input-object argument.
func inputArg(info graphql.ResolveInfo, name string) map[string]interface{} {
	m, _ := info.Args().Get(name).(map[string]interface{})
	return m
}

// optionalString extracts a nullable String input field: absent and explicit-null both map to nil.
func optionalString(input map[string]interface{}, name string) *string {
	value, present := input[name]
	if !present {
		return nil
	}
	s, ok := value.(string)
	if !ok {
		return nil
	}
	return &s
}
