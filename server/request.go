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
	"fmt"
	"io"
	"io/ioutil"
	"mime"
	"net/http"
	"net/url"
)

// graphqlRequest carries the query and its parameters extracted from an HTTP request.
type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// cacheKey identifies the prepared form of this request in the operation cache. Two requests with
// the same query but different operation names prepare differently.
func (req *graphqlRequest) cacheKey() string {
	return req.OperationName + "\x00" + req.Query
}

var errRequestBodyTooLarge = errors.New("request body is too large")

// getOneValue returns the single value for key in values: an empty string when absent, an error
// when multiple values are given.
func getOneValue(values url.Values, key string) (string, error) {
	v := values[key]
	switch len(v) {
	case 0:
		return "", nil
	case 1:
		return v[0], nil
	default:
		return "", fmt.Errorf(`multiple values are provided to "%s", but only one expected`, key)
	}
}

func parseRequestFromValues(values url.Values) (*graphqlRequest, error) {
	var (
		req graphqlRequest
		err error
	)

	if req.Query, err = getOneValue(values, "query"); err != nil {
		return nil, err
	}
	if req.OperationName, err = getOneValue(values, "operationName"); err != nil {
		return nil, err
	}

	variables, err := getOneValue(values, "variables")
	if err != nil {
		return nil, err
	}
	if len(variables) > 0 {
		if err := json.Unmarshal([]byte(variables), &req.Variables); err != nil {
			return nil, err
		}
	}

	return &req, nil
}

// parseGraphQLRequest extracts a graphqlRequest from r. GET requests carry the query in URL
// parameters; POST requests carry it in the body as application/json, application/graphql or
// form-urlencoded content. Unsupported methods and content types yield an empty request rather
// than an error.
func parseGraphQLRequest(r *http.Request, maxBodySize uint) (*graphqlRequest, error) {
	switch r.Method {
	case http.MethodGet:
		values := r.Form
		if values == nil {
			var err error
			values, err = url.ParseQuery(r.URL.RawQuery)
			if err != nil {
				return nil, err
			}
		}
		return parseRequestFromValues(values)

	case http.MethodPost:
		contentType := r.Header.Get("Content-Type")
		contentType, _, _ = mime.ParseMediaType(contentType)

		if contentType == "application/x-www-form-urlencoded" && r.Form != nil {
			return parseRequestFromValues(r.Form)
		}

		body, err := ioutil.ReadAll(io.LimitReader(r.Body, int64(maxBodySize+1)))
		if err != nil {
			return nil, err
		}
		if len(body) > int(maxBodySize) {
			return nil, errRequestBodyTooLarge
		}

		switch contentType {
		case "application/graphql":
			return &graphqlRequest{Query: string(body)}, nil

		case "application/x-www-form-urlencoded":
			values, err := url.ParseQuery(string(body))
			if err != nil {
				return nil, err
			}
			return parseRequestFromValues(values)

		case "", "application/json":
			var req graphqlRequest
			if err := json.Unmarshal(body, &req); err != nil {
				return nil, err
			}
			return &req, nil

		default:
			return &graphqlRequest{}, nil
		}

	default:
		return &graphqlRequest{}, nil
	}
}
