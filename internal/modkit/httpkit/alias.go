// Package httpkit is the handler and routing kit modules use instead of the platform http
// package directly
package httpkit

import (
	"net/http"

	phttp "wordguard/internal/platform/net/http"
	"wordguard/internal/platform/net/http/bind"
)

type (
	// Envelope is the response body
	Envelope = phttp.Envelope
	// Response is a return-style handler result
	Response = phttp.Response
	// Handler is the route handler shape
	Handler = phttp.Handler
	// Router is the routing surface
	Router = phttp.Router
	// JSONOptions tunes body decoding
	JSONOptions = bind.JSONOptions
)

// OK is a 200 around data
func OK(data any) Response { return phttp.OK(data) }

// Created is a 201 around data
func Created(data any) Response { return phttp.Created(data) }

// NoContent is a bodiless 204
func NoContent() Response { return phttp.NoContent() }

// Error maps err to its status and envelope
func Error(err error) Response { return phttp.Error(err) }

// JSON decodes and validates a T body before calling fn
func JSON[T any](fn func(*http.Request, T) (any, error), opts ...JSONOptions) Handler {
	return phttp.JSONHandler(fn, opts...)
}

// Call runs a handler that reads no body
func Call(fn func(*http.Request) (any, error)) Handler { return phttp.CallHandler(fn) }

// Handle adapts a Response-returning function
func Handle(fn func(*http.Request) Response) Handler { return phttp.Handle(fn) }
