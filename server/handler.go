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

// Package server mounts the social GraphQL schema on an HTTP endpoint.
package server

import (
	"errors"
	"net/http"

	"github.com/botobag/chirp/social"

	"github.com/botobag/artemis/graphql"
	"github.com/botobag/artemis/graphql/executor"
	"github.com/botobag/artemis/graphql/parser"
	"github.com/botobag/artemis/graphql/token"
)

const (
	maxRequestBodySize = 10 << 20 // 10MB

	// Number of prepared operations kept across requests.
	operationCacheSize = 512
)

var errMissingService = errors.New("chirp/server: must provide a social service")

// Handler serves GraphQL queries over HTTP against the social schema. Each request executes as a
// serial sequence of store operations on its own serving goroutine; there is no worker pool.
// Prepared operations are cached across requests so repeated queries skip parsing and validation.
type Handler struct {
	schema  graphql.Schema
	service *social.Service
	cache   *operationCache
}

// New creates an http.Handler serving the given schema backed by service.
func New(schema graphql.Schema, service *social.Service) (http.Handler, error) {
	if service == nil {
		return nil, errMissingService
	}
	cache, err := newOperationCache(operationCacheSize)
	if err != nil {
		return nil, err
	}
	return &Handler{
		schema:  schema,
		service: service,
		cache:   cache,
	}, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, err := parseGraphQLRequest(r, maxRequestBodySize)
	if err != nil {
		http.Error(w, "invalid request: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Query) == 0 {
		http.Error(w, "empty query", http.StatusBadRequest)
		return
	}

	operation, ok := h.cache.Get(req.cacheKey())
	if !ok {
		document, err := parser.Parse(token.NewSourceFromBytes([]byte(req.Query)))
		if err != nil {
			http.Error(w, "invalid query: "+err.Error(), http.StatusBadRequest)
			return
		}

		var errs graphql.Errors
		operation, errs = executor.Prepare(h.schema, document,
			executor.OperationName(req.OperationName))
		if errs.HaveOccurred() {
			writeResult(w, &executor.ExecutionResult{Errors: errs})
			return
		}

		h.cache.Add(req.cacheKey(), operation)
	}

	result := operation.Execute(r.Context(),
		executor.AppContext(h.service),
		executor.VariableValues(req.Variables))
	writeResult(w, result)
}

func writeResult(w http.ResponseWriter, result *executor.ExecutionResult) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	// The connection is beyond saving if serialization fails halfway through a write.
	_ = result.MarshalJSONTo(w)
}
