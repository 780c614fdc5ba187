// Tencent is pleased to support the open source community by making trpc-accept available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-accept is licensed under the Apache License Version 2.0.

package accept

import (
	"fmt"
	"mime"
	"strings"
)

// MimeType is an immutable media type value: a type/subtype pair plus any
// parameters, e.g. "text/html" or "application/json;charset=utf-8".
// Type, subtype and parameter names are stored lowercase.
type MimeType struct {
	Type    string
	Subtype string
	Params  map[string]string
}

// ParseMimeType constructs a MimeType from its textual form. The input must
// contain a type and a subtype separated by "/"; parameters follow after ";".
func ParseMimeType(s string) (MimeType, error) {
	mediaType, params, err := mime.ParseMediaType(s)
	if err != nil {
		return MimeType{}, err
	}

	// mime.ParseMediaType accepts bare tokens like "form-data"; an Accept
	// entry must be a type/subtype pair.
	slash := strings.IndexByte(mediaType, '/')
	if slash < 0 {
		return MimeType{}, fmt.Errorf("media type %q missing subtype", mediaType)
	}

	return MimeType{Type: mediaType[:slash], Subtype: mediaType[slash+1:], Params: params}, nil
}

// MustParseMimeType is like ParseMimeType but panics on error. Intended for
// static offer lists and tests.
func MustParseMimeType(s string) MimeType {
	m, err := ParseMimeType(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Equal reports whether two mime values have the same type, subtype and
// parameter set. Type and subtype compare case-insensitively; parameter
// values compare verbatim.
func (m MimeType) Equal(other MimeType) bool {
	if !strings.EqualFold(m.Type, other.Type) || !strings.EqualFold(m.Subtype, other.Subtype) {
		return false
	}
	if len(m.Params) != len(other.Params) {
		return false
	}
	for name, value := range m.Params {
		if v, ok := other.Params[name]; !ok || v != value {
			return false
		}
	}
	return true
}

// IsWildcard reports whether the value is the literal full wildcard "*/*"
// with no parameters.
func (m MimeType) IsWildcard() bool {
	return m.Type == "*" && m.Subtype == "*" && len(m.Params) == 0
}

// String formats the value back to its canonical textual form.
func (m MimeType) String() string {
	return mime.FormatMediaType(m.Type+"/"+m.Subtype, m.Params)
}
