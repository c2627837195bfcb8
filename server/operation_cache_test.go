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

package server

import (
	"github.com/botobag/artemis/graphql/executor"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("operationCache", func() {
	It("rejects a zero capacity", func() {
		_, err := newOperationCache(0)
		Expect(err).Should(HaveOccurred())
	})

	It("stores and returns operations by key", func() {
		cache, err := newOperationCache(2)
		Expect(err).ShouldNot(HaveOccurred())

		op := &executor.PreparedOperation{}
		cache.Add("a", op)

		found, ok := cache.Get("a")
		Expect(ok).Should(BeTrue())
		Expect(found).Should(BeIdenticalTo(op))

		_, ok = cache.Get("b")
		Expect(ok).Should(BeFalse())
	})

	It("replaces the operation stored under an existing key", func() {
		cache, err := newOperationCache(2)
		Expect(err).ShouldNot(HaveOccurred())

		first := &executor.PreparedOperation{}
		second := &executor.PreparedOperation{}
		cache.Add("a", first)
		cache.Add("a", second)

		found, ok := cache.Get("a")
		Expect(ok).Should(BeTrue())
		Expect(found).Should(BeIdenticalTo(second))
	})

	It("evicts the least recently used entry at capacity", func() {
		cache, err := newOperationCache(2)
		Expect(err).ShouldNot(HaveOccurred())

		opA := &executor.PreparedOperation{}
		opB := &executor.PreparedOperation{}
		opC := &executor.PreparedOperation{}

		cache.Add("a", opA)
		cache.Add("b", opB)

		// Touch "a" so "b" becomes the eviction candidate.
		_, ok := cache.Get("a")
		Expect(ok).Should(BeTrue())

		cache.Add("c", opC)

		_, ok = cache.Get("b")
		Expect(ok).Should(BeFalse())

		found, ok := cache.Get("a")
		Expect(ok).Should(BeTrue())
		Expect(found).Should(BeIdenticalTo(opA))

		found, ok = cache.Get("c")
		Expect(ok).Should(BeTrue())
		Expect(found).Should(BeIdenticalTo(opC))
	})

	It("reuses a freed slot after eviction", func() {
		cache, err := newOperationCache(1)
		Expect(err).ShouldNot(HaveOccurred())

		cache.Add("a", &executor.PreparedOperation{})
		cache.Add("b", &executor.PreparedOperation{})
		cache.Add("c", &executor.PreparedOperation{})

		_, ok := cache.Get("a")
		Expect(ok).Should(BeFalse())
		_, ok = cache.Get("b")
		Expect(ok).Should(BeFalse())
		_, ok = cache.Get("c")
		Expect(ok).Should(BeTrue())
	})
})
