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

// Package testutil provides matchers shared by the test suites.
package testutil

import (
	"encoding/json"

	"github.com/botobag/artemis/graphql/executor"

	"github.com/onsi/gomega"
	"github.com/onsi/gomega/types"
)

// MatchResultInJSON matches a channel from which an executor.ExecutionResult is received whose
// JSON serialization equals resultJSON.
func MatchResultInJSON(resultJSON string) types.GomegaMatcher {
	stringify := func(result executor.ExecutionResult) []byte {
		encoded, err := json.Marshal(&result)
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		return encoded
	}
	return gomega.Receive(gomega.WithTransform(stringify, gomega.MatchJSON(resultJSON)))
}
