// Tencent is pleased to support the open source community by making trpc-accept available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-accept is licensed under the Apache License Version 2.0.

// Package accept parses HTTP Accept request headers and negotiates the best
// content type a server can respond with.
//
// Parse turns the raw header value into an Accept preference set; Negotiate
// matches it against the server's available types:
//
//	acc, err := accept.Parse("text/html;q=0.9, application/json, */*;q=0.1")
//	if err != nil {
//		// 400-class failure, the header is malformed
//	}
//	chosen, ok := accept.Negotiate(acc, offers)
//	if !ok {
//		// 406 Not Acceptable
//	}
//
// For server use, Middleware wraps an http.Handler and performs the whole
// round itself.
package accept

import (
	"strconv"
	"strings"
)

// MediaType is a single weighted preference from an Accept header.
type MediaType struct {
	Mime MimeType
	// Weight is the q value in [0.0, 1.0], or nil when the header gave no q.
	// A nil weight ranks as 1.0 during negotiation but formats back without
	// a q parameter.
	Weight *float64
}

// NewMediaType wraps a mime value as an unweighted preference.
func NewMediaType(mime MimeType) MediaType {
	return MediaType{Mime: mime}
}

// EffectiveWeight returns the weight used for ranking, treating nil as 1.0.
func (m MediaType) EffectiveWeight() float64 {
	if m.Weight == nil {
		return 1.0
	}
	return *m.Weight
}

// String formats the preference back to header form, e.g. "text/html;q=0.9".
func (m MediaType) String() string {
	s := m.Mime.String()
	if m.Weight != nil {
		s += ";q=" + strconv.FormatFloat(*m.Weight, 'g', -1, 64)
	}
	return s
}

// Accept is the parsed preference set of one Accept header.
type Accept struct {
	// Wildcard holds the full-wildcard entry ("*/*" with no parameters) if
	// the header contained one. It never appears in Types.
	Wildcard *MediaType
	// Types holds every other entry, including partial wildcards such as
	// "text/*", in header order.
	Types []MediaType
}

// NewAccept builds a preference set accepting a single mime value.
func NewAccept(mime MimeType) Accept {
	mt := NewMediaType(mime)
	if mime.IsWildcard() {
		return Accept{Wildcard: &mt}
	}
	return Accept{Types: []MediaType{mt}}
}

// String formats the preference set back to header form, explicit entries
// first and the full wildcard last.
func (a Accept) String() string {
	parts := make([]string, 0, len(a.Types)+1)
	for _, t := range a.Types {
		parts = append(parts, t.String())
	}
	if a.Wildcard != nil {
		parts = append(parts, a.Wildcard.String())
	}
	return strings.Join(parts, ", ")
}

// Parse parses the raw value of an HTTP Accept header.
//
// Entries are comma-separated media types, each optionally carrying
// ";"-separated parameters. The q parameter (case-insensitive name) becomes
// the entry's Weight and is stripped before the remaining token is handed to
// ParseMimeType; all other parameters stay on the mime value. A bare "*/*"
// entry routes to Accept.Wildcard, last one winning when duplicated; an
// entry like "*/*;v=1" is not the full wildcard and stays in Types.
//
// Parsing is all-or-nothing: the first malformed entry aborts the parse with
// an *InvalidMediaTypeError or *InvalidWeightError. An empty header parses
// to the empty Accept.
func Parse(header string) (Accept, error) {
	var out Accept
	if strings.TrimSpace(header) == "" {
		return out, nil
	}

	for _, part := range strings.Split(header, ",") {
		mt, err := parseEntry(strings.TrimSpace(part))
		if err != nil {
			return Accept{}, err
		}
		if mt.Mime.IsWildcard() {
			wildcard := mt
			out.Wildcard = &wildcard
		} else {
			out.Types = append(out.Types, mt)
		}
	}
	return out, nil
}

// parseEntry parses one comma-separated header entry like
// "text/html; v=2; q=0.5", splitting the q parameter off before mime value
// construction.
func parseEntry(entry string) (MediaType, error) {
	params := strings.Split(entry, ";")
	kept := make([]string, 1, len(params))
	kept[0] = strings.TrimSpace(params[0])

	rawQ := ""
	hasQ := false
	for _, param := range params[1:] {
		param = strings.TrimSpace(param)
		if name, value, ok := strings.Cut(param, "="); ok && strings.EqualFold(strings.TrimSpace(name), "q") {
			rawQ = strings.TrimSpace(value)
			hasQ = true
			continue
		}
		kept = append(kept, param)
	}

	mime, err := ParseMimeType(strings.Join(kept, ";"))
	if err != nil {
		return MediaType{}, &InvalidMediaTypeError{Token: entry, Err: err}
	}

	mt := MediaType{Mime: mime}
	if hasQ {
		weight, err := strconv.ParseFloat(rawQ, 64)
		if err != nil {
			return MediaType{}, &InvalidWeightError{Token: entry, RawQ: rawQ, Err: err}
		}
		// The negated form also rejects NaN.
		if !(weight >= 0.0 && weight <= 1.0) {
			return MediaType{}, &InvalidWeightError{Token: entry, RawQ: rawQ}
		}
		mt.Weight = &weight
	}
	return mt, nil
}
