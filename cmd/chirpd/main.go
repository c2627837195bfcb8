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

// chirpd serves the social-content GraphQL API over HTTP, backed by MongoDB.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/botobag/chirp/schema"
	"github.com/botobag/chirp/server"
	"github.com/botobag/chirp/social"
	"github.com/botobag/chirp/storage/mongodb"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	connectTimeout  = 10 * time.Second
	shutdownTimeout = 5 * time.Second
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(logger); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	config, err := server.LoadConfig(os.Getenv("CHIRP_CONFIG"))
	if err != nil {
		return err
	}

	connectCtx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(config.MongoURL))
	if err != nil {
		return err
	}
	defer client.Disconnect(context.Background())
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		return err
	}
	logger.Info("connected to MongoDB", "database", config.MongoDatabase)

	db := client.Database(config.MongoDatabase)
	service := social.NewService(
		mongodb.Wrap(db.Collection("users")),
		mongodb.Wrap(db.Collection("posts")),
		mongodb.Wrap(db.Collection("comments")),
	)

	graphqlHandler, err := server.New(schema.New(), service)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/graphql", graphqlHandler)

	httpServer := &http.Server{
		Addr:    config.Addr,
		Handler: mux,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- httpServer.ListenAndServe()
	}()
	logger.Info("server ready", "addr", config.Addr)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}
