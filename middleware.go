// Tencent is pleased to support the open source community by making trpc-accept available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-accept is licensed under the Apache License Version 2.0.

package accept

import (
	"context"
	"net/http"
)

// HTTP header constants.
const (
	// AcceptHeader is the HTTP Accept header
	AcceptHeader = "Accept"

	// ContentTypeHeader is the HTTP Content-Type header
	ContentTypeHeader = "Content-Type"
)

// FromRequest parses the Accept header of an incoming request. An absent
// header yields the empty Accept, same as an empty header value.
func FromRequest(r *http.Request) (Accept, error) {
	return Parse(r.Header.Get(AcceptHeader))
}

type contextKey int

const negotiatedContentTypeKey contextKey = iota

// WithContentType stores a negotiated content type in the context.
func WithContentType(ctx context.Context, mime MimeType) context.Context {
	return context.WithValue(ctx, negotiatedContentTypeKey, mime)
}

// ContentTypeFromContext returns the content type negotiated by Middleware
// for this request, if any.
func ContentTypeFromContext(ctx context.Context) (MimeType, bool) {
	mime, ok := ctx.Value(negotiatedContentTypeKey).(MimeType)
	return mime, ok
}

// MiddlewareConfig controls the negotiation middleware.
type MiddlewareConfig struct {
	offers        []MimeType
	logger        Logger
	recorder      MetricsRecorder
	notAcceptable http.Handler
}

// MiddlewareOption configures the negotiation middleware.
type MiddlewareOption func(*MiddlewareConfig)

// WithOffers sets the content types the server can produce, in the server's
// order of preference.
func WithOffers(offers ...MimeType) MiddlewareOption {
	return func(cfg *MiddlewareConfig) {
		cfg.offers = offers
	}
}

// WithLogger sets the logger used for negotiation decisions.
func WithLogger(logger Logger) MiddlewareOption {
	return func(cfg *MiddlewareConfig) {
		cfg.logger = logger
	}
}

// WithRecorder sets a metrics recorder for negotiation outcomes. No metrics
// are recorded without one.
func WithRecorder(recorder MetricsRecorder) MiddlewareOption {
	return func(cfg *MiddlewareConfig) {
		cfg.recorder = recorder
	}
}

// WithNotAcceptableHandler replaces the default plain 406 response.
func WithNotAcceptableHandler(h http.Handler) MiddlewareOption {
	return func(cfg *MiddlewareConfig) {
		cfg.notAcceptable = h
	}
}

// Middleware returns an http.Handler wrapper that negotiates each request's
// Accept header against the configured offers.
//
// On success it sets the response Content-Type to the chosen offer and stores
// the choice in the request context for ContentTypeFromContext. A request
// without an Accept header (or with an empty one) states no preference and
// gets the first offer. A malformed header answers 400; no acceptable offer
// answers 406 (or the configured handler).
func Middleware(opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &MiddlewareConfig{
		logger: GetDefaultLogger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get(AcceptHeader)
			acc, err := Parse(header)
			if err != nil {
				cfg.logger.Warnf("malformed Accept header %q: %v", header, err)
				if cfg.recorder != nil {
					cfg.recorder.IncParseFailure()
				}
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}

			var chosen MimeType
			ok := false
			switch {
			case acc.Wildcard == nil && len(acc.Types) == 0:
				// No stated preference: the server's first choice stands.
				if len(cfg.offers) > 0 {
					chosen, ok = cfg.offers[0], true
				}
			default:
				chosen, ok = Negotiate(acc, cfg.offers)
			}

			if !ok {
				cfg.logger.Debugf("no acceptable offer for Accept header %q", header)
				if cfg.recorder != nil {
					cfg.recorder.IncNotAcceptable()
				}
				if cfg.notAcceptable != nil {
					cfg.notAcceptable.ServeHTTP(w, r)
					return
				}
				http.Error(w, http.StatusText(http.StatusNotAcceptable), http.StatusNotAcceptable)
				return
			}

			if cfg.recorder != nil {
				cfg.recorder.IncNegotiated(chosen.String())
			}
			w.Header().Set(ContentTypeHeader, chosen.String())
			next.ServeHTTP(w, r.WithContext(WithContentType(r.Context(), chosen)))
		})
	}
}
