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
	"errors"
	"os"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Config carries the settings of the HTTP server and its store connection.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string `json:"addr"`

	// MongoURL is the connection string of the document store.
	MongoURL string `json:"mongo_url"`

	// MongoDatabase names the database holding the users, posts and comments collections.
	MongoDatabase string `json:"mongo_database"`
}

// Environment variables overriding the file values.
const (
	envAddr     = "CHIRP_ADDR"
	envMongoURL = "CHIRP_MONGO_URL"
	envMongoDB  = "CHIRP_MONGO_DB"
)

var errMissingMongoURL = errors.New("chirp/server: must provide a Mongo URL (CHIRP_MONGO_URL)")

// LoadConfig builds a Config from an optional JSON file at path (skipped when path is empty) and
// the process environment. Environment variables take precedence over file values.
func LoadConfig(path string) (Config, error) {
	config := Config{
		Addr:          ":8080",
		MongoDatabase: "chirp",
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		if err := json.Unmarshal(data, &config); err != nil {
			return Config{}, err
		}
	}

	if addr := os.Getenv(envAddr); addr != "" {
		config.Addr = addr
	}
	if url := os.Getenv(envMongoURL); url != "" {
		config.MongoURL = url
	}
	if db := os.Getenv(envMongoDB); db != "" {
		config.MongoDatabase = db
	}

	if config.MongoURL == "" {
		return Config{}, errMissingMongoURL
	}
	return config, nil
}
