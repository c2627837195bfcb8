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

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func stringPtr(s string) *string {
	return &s
}

var _ = Describe("Mutations", func() {
	var (
		ctx     context.Context
		service *social.Service
	)

	BeforeEach(func() {
		ctx = context.Background()
		service = newTestService()
	})

	Describe("CreateUser", func() {
		It("persists the user and assigns an id", func() {
			user, err := service.CreateUser(ctx, social.CreateUserInput{
				Name:     "ada",
				Email:    "ada@example.com",
				Password: "hunter2",
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(user.ID.IsZero()).Should(BeFalse())
			Expect(user.Name).Should(Equal("ada"))
			Expect(user.Email).Should(Equal("ada@example.com"))

			stored, err := service.User(ctx, user.ID)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(stored).Should(Equal(user))
		})

		It("stores a hash of the password, not the plaintext", func() {
			user, err := service.CreateUser(ctx, social.CreateUserInput{
				Name:     "ada",
				Email:    "ada@example.com",
				Password: "hunter2",
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(user.Password).ShouldNot(Equal("hunter2"))
			Expect(bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("hunter2"))).
				Should(Succeed())
		})

		It("normalizes absent reference arrays to empty arrays", func() {
			user, err := service.CreateUser(ctx, social.CreateUserInput{
				Name:     "ada",
				Email:    "ada@example.com",
				Password: "hunter2",
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(user.Posts).Should(Equal([]primitive.ObjectID{}))
			Expect(user.Comments).Should(Equal([]primitive.ObjectID{}))
			Expect(user.LikedPosts).Should(Equal([]primitive.ObjectID{}))
		})

		It("stores reference arrays exactly as supplied, without validating targets", func() {
			dangling := primitive.NewObjectID()
			user, err := service.CreateUser(ctx, social.CreateUserInput{
				Name:     "ada",
				Email:    "ada@example.com",
				Password: "hunter2",
				Posts:    []primitive.ObjectID{dangling},
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(user.Posts).Should(Equal([]primitive.ObjectID{dangling}))
		})

		It("rejects a duplicate email and persists nothing", func() {
			_, err := service.CreateUser(ctx, social.CreateUserInput{
				Name:     "ada",
				Email:    "ada@example.com",
				Password: "hunter2",
			})
			Expect(err).ShouldNot(HaveOccurred())

			_, err = service.CreateUser(ctx, social.CreateUserInput{
				Name:     "impostor",
				Email:    "ada@example.com",
				Password: "hunter3",
			})
			Expect(err).Should(HaveOccurred())
			Expect(social.IsUniquenessViolation(err)).Should(BeTrue())
			Expect(err.Error()).Should(Equal("Email already exists"))

			users, err := service.Users(ctx)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(users).Should(HaveLen(1))
		})
	})

	Describe("UpdateUser", func() {
		It("merges present fields and leaves the rest intact", func() {
			created := createUser(ctx, service, "ada")

			updated, err := service.UpdateUser(ctx, created.ID, social.UpdateUserInput{
				Name: stringPtr("ada lovelace"),
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(updated.Name).Should(Equal("ada lovelace"))
			Expect(updated.Email).Should(Equal(created.Email))
			Expect(updated.Password).Should(Equal(created.Password))
			Expect(updated.Posts).Should(Equal(created.Posts))
		})

		It("re-hashes a supplied password", func() {
			created := createUser(ctx, service, "ada")

			updated, err := service.UpdateUser(ctx, created.ID, social.UpdateUserInput{
				Password: stringPtr("correct horse"),
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(updated.Password).ShouldNot(Equal("correct horse"))
			Expect(updated.Password).ShouldNot(Equal(created.Password))
			Expect(bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("correct horse"))).
				Should(Succeed())
		})

		It("returns the current document when no field is present", func() {
			created := createUser(ctx, service, "ada")

			updated, err := service.UpdateUser(ctx, created.ID, social.UpdateUserInput{})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(updated).Should(Equal(created))
		})

		It("fails with a not-found error for an unknown id", func() {
			_, err := service.UpdateUser(ctx, primitive.NewObjectID(), social.UpdateUserInput{
				Name: stringPtr("nobody"),
			})
			Expect(social.IsNotFound(err)).Should(BeTrue())
		})
	})

	Describe("DeleteUser", func() {
		It("reports whether a document was removed", func() {
			created := createUser(ctx, service, "ada")

			deleted, err := service.DeleteUser(ctx, created.ID)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(deleted).Should(BeTrue())

			deleted, err = service.DeleteUser(ctx, created.ID)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(deleted).Should(BeFalse())
		})

		It("leaves references held by other documents intact", func() {
			author := createUser(ctx, service, "ada")
			post, err := service.CreatePost(ctx, social.CreatePostInput{
				Content: "orphaned soon",
				Author:  author.ID,
			})
			Expect(err).ShouldNot(HaveOccurred())

			deleted, err := service.DeleteUser(ctx, author.ID)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(deleted).Should(BeTrue())

			stored, err := service.Post(ctx, post.ID)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(stored.Author).Should(Equal(author.ID))

			_, err = service.PostAuthor(ctx, stored)
			Expect(social.IsNotFound(err)).Should(BeTrue())
		})
	})

	Describe("CreatePost", func() {
		It("persists the supplied author reference", func() {
			author := createUser(ctx, service, "ada")
			post, err := service.CreatePost(ctx, social.CreatePostInput{
				Content: "hello",
				Author:  author.ID,
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(post.ID.IsZero()).Should(BeFalse())
			Expect(post.Author).Should(Equal(author.ID))
			Expect(post.Comments).Should(Equal([]primitive.ObjectID{}))
			Expect(post.Likes).Should(Equal([]primitive.ObjectID{}))
		})

		It("does not update the author's posts array", func() {
			author := createUser(ctx, service, "ada")
			_, err := service.CreatePost(ctx, social.CreatePostInput{
				Content: "hello",
				Author:  author.ID,
			})
			Expect(err).ShouldNot(HaveOccurred())

			stored, err := service.User(ctx, author.ID)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(stored.Posts).Should(BeEmpty())
		})
	})

	Describe("UpdatePost", func() {
		It("merges the content and leaves references intact", func() {
			author := createUser(ctx, service, "ada")
			liker := createUser(ctx, service, "grace")
			post, err := service.CreatePost(ctx, social.CreatePostInput{
				Content: "before",
				Author:  author.ID,
				Likes:   []primitive.ObjectID{liker.ID},
			})
			Expect(err).ShouldNot(HaveOccurred())

			updated, err := service.UpdatePost(ctx, post.ID, social.UpdatePostInput{
				Content: stringPtr("after"),
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(updated.Content).Should(Equal("after"))
			Expect(updated.Author).Should(Equal(author.ID))
			Expect(updated.Likes).Should(Equal([]primitive.ObjectID{liker.ID}))
		})

		It("fails with a not-found error for an unknown id", func() {
			_, err := service.UpdatePost(ctx, primitive.NewObjectID(), social.UpdatePostInput{
				Content: stringPtr("x"),
			})
			Expect(social.IsNotFound(err)).Should(BeTrue())
		})
	})

	Describe("CreateComment and UpdateComment", func() {
		It("persist and merge the comment's fields", func() {
			author := createUser(ctx, service, "ada")
			post, err := service.CreatePost(ctx, social.CreatePostInput{
				Content: "hello",
				Author:  author.ID,
			})
			Expect(err).ShouldNot(HaveOccurred())

			comment, err := service.CreateComment(ctx, social.CreateCommentInput{
				Text:   "before",
				Author: author.ID,
				Post:   post.ID,
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(comment.ID.IsZero()).Should(BeFalse())
			Expect(comment.Author).Should(Equal(author.ID))
			Expect(comment.Post).Should(Equal(post.ID))

			updated, err := service.UpdateComment(ctx, comment.ID, social.UpdateCommentInput{
				Text: stringPtr("after"),
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(updated.Text).Should(Equal("after"))
			Expect(updated.Author).Should(Equal(author.ID))
			Expect(updated.Post).Should(Equal(post.ID))
		})
	})

	Describe("DeletePost and DeleteComment", func() {
		It("report whether a document was removed", func() {
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

			deleted, err := service.DeletePost(ctx, post.ID)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(deleted).Should(BeTrue())

			deleted, err = service.DeleteComment(ctx, comment.ID)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(deleted).Should(BeTrue())

			deleted, err = service.DeletePost(ctx, post.ID)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(deleted).Should(BeFalse())
		})
	})
})
