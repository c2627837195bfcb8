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
	"fmt"

	"github.com/botobag/artemis/graphql"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error codes attached to the "extensions" entry of an error response. Failures raised here
// propagate unmodified to the API boundary; there is no local recovery or retry path.
const (
	errCodeNotFound   = "NOT_FOUND"
	errCodeUniqueness = "UNIQUENESS_VIOLATION"
	errCodeInvalidID  = "INVALID_ID"
)

// newNotFoundError reports that a single-entity lookup found no document with the given id.
func newNotFoundError(kind string, id primitive.ObjectID) error {
	return graphql.NewError(
		fmt.Sprintf("%s with ID %s not found", kind, id.Hex()),
		graphql.ErrKindExecution,
		graphql.ErrorExtensions{"code": errCodeNotFound},
	)
}

// newEmailExistsError reports a create colliding with an existing user on the unique email
// attribute.
func newEmailExistsError() error {
	return graphql.NewError(
		"Email already exists",
		graphql.ErrKindExecution,
		graphql.ErrorExtensions{"code": errCodeUniqueness},
	)
}

// newInvalidIDError reports an identifier string that is not a valid store identifier.
func newInvalidIDError(kind string, s string) error {
	return graphql.NewError(
		fmt.Sprintf("invalid %s ID %q", kind, s),
		graphql.ErrKindExecution,
		graphql.ErrorExtensions{"code": errCodeInvalidID},
	)
}

// IsNotFound reports whether err indicates a single-entity lookup that found no matching document.
func IsNotFound(err error) bool {
	return errCode(err) == errCodeNotFound
}

// IsUniquenessViolation reports whether err indicates a create colliding on a unique attribute.
func IsUniquenessViolation(err error) bool {
	return errCode(err) == errCodeUniqueness
}

func errCode(err error) string {
	e, ok := err.(*graphql.Error)
	if !ok {
		return ""
	}
	code, _ := e.Extensions["code"].(string)
	return code
}
