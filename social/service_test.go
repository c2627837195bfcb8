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

package social_test

import (
	"context"

	"github.com/botobag/chirp/social"
	"github.com/botobag/chirp/storage/memory"

	"go.mongodb.org/mongo-driver/bson/primitive"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func newTestService() *social.Service {
	return social.NewService(memory.New(), memory.New(), memory.New())
}

func createUser(ctx context.Context, service *social.Service, name string) *social.User {
	user, err := service.CreateUser(ctx, social.CreateUserInput{
		Name:     name,
		Email:    name + "@example.com",
		Password: "hunter2",
	})
	ExpectWithOffset(1, err).ShouldNot(HaveOccurred())
	return user
}

var _ = Describe("Service", func() {
	var (
		ctx     context.Context
		service *social.Service
	)

	BeforeEach(func() {
		ctx = context.Background()
		service = newTestService()
	})

	Describe("User", func() {
		It("returns the user with the given id", func() {
			created := createUser(ctx, service, "ada")

			user, err := service.User(ctx, created.ID)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(user).Should(Equal(created))
		})

		It("fails with a not-found error for an unknown id", func() {
			id := primitive.NewObjectID()
			_, err := service.User(ctx, id)
			Expect(err).Should(HaveOccurred())
			Expect(social.IsNotFound(err)).Should(BeTrue())
			Expect(err.Error()).Should(Equal("User with ID " + id.Hex() + " not found"))
		})
	})

	Describe("Users", func() {
		It("returns an empty list for an empty store", func() {
			users, err := service.Users(ctx)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(users).ShouldNot(BeNil())
			Expect(users).Should(BeEmpty())
		})

		It("returns every user in insertion order", func() {
			ada := createUser(ctx, service, "ada")
			grace := createUser(ctx, service, "grace")

			users, err := service.Users(ctx)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(users).Should(Equal([]*social.User{ada, grace}))
		})
	})

	Describe("Post", func() {
		It("fails with a not-found error for an unknown id", func() {
			id := primitive.NewObjectID()
			_, err := service.Post(ctx, id)
			Expect(social.IsNotFound(err)).Should(BeTrue())
			Expect(err.Error()).Should(Equal("Post with ID " + id.Hex() + " not found"))
		})
	})

	Describe("Comment", func() {
		It("fails with a not-found error for an unknown id", func() {
			id := primitive.NewObjectID()
			_, err := service.Comment(ctx, id)
			Expect(social.IsNotFound(err)).Should(BeTrue())
			Expect(err.Error()).Should(Equal("Comment with ID " + id.Hex() + " not found"))
		})
	})

	Describe("Posts and Comments", func() {
		It("list created documents", func() {
			author := createUser(ctx, service, "ada")
			post, err := service.CreatePost(ctx, social.CreatePostInput{
				Content: "hello",
				Author:  author.ID,
			})
			Expect(err).ShouldNot(HaveOccurred())
			comment, err := service.CreateComment(ctx, social.CreateCommentInput{
				Text:   "hi",
				Author: author.ID,
				Post:   post.ID,
			})
			Expect(err).ShouldNot(HaveOccurred())

			posts, err := service.Posts(ctx)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(posts).Should(Equal([]*social.Post{post}))

			comments, err := service.Comments(ctx)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(comments).Should(Equal([]*social.Comment{comment}))
		})
	})
})

var _ = Describe("ParseID", func() {
	It("parses a 24-character hex string", func() {
		id := primitive.NewObjectID()
		parsed, err := social.ParseID("User", id.Hex())
		Expect(err).ShouldNot(HaveOccurred())
		Expect(parsed).Should(Equal(id))
	})

	It("rejects a malformed identifier", func() {
		_, err := social.ParseID("User", "not-an-id")
		Expect(err).Should(HaveOccurred())
	})

	It("parses a list, rejecting the first malformed entry", func() {
		first := primitive.NewObjectID()
		second := primitive.NewObjectID()
		ids, err := social.ParseIDs("Post", []string{first.Hex(), second.Hex()})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(ids).Should(Equal([]primitive.ObjectID{first, second}))

		_, err = social.ParseIDs("Post", []string{first.Hex(), "bogus"})
		Expect(err).Should(HaveOccurred())
	})
})
