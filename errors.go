// Tencent is pleased to support the open source community by making trpc-accept available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-accept is licensed under the Apache License Version 2.0.

package accept

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is matching. Parse wraps them in the typed
// errors below, which carry the offending header fragment.
var (
	ErrInvalidMediaType = errors.New("invalid media type")
	ErrInvalidWeight    = errors.New("invalid weight")
)

// InvalidMediaTypeError reports a header entry whose type/subtype portion
// failed the media type grammar.
type InvalidMediaTypeError struct {
	// Token is the offending comma-separated header entry, trimmed.
	Token string
	// Err is the underlying constructor failure.
	Err error
}

func (e *InvalidMediaTypeError) Error() string {
	return fmt.Sprintf("invalid media type: %s", e.Token)
}

func (e *InvalidMediaTypeError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidMediaType, e.Err}
	}
	return []error{ErrInvalidMediaType}
}

// InvalidWeightError reports a q parameter that was not a valid decimal in
// [0.0, 1.0].
type InvalidWeightError struct {
	// Token is the offending comma-separated header entry, trimmed.
	Token string
	// RawQ is the q parameter value as written in the header.
	RawQ string
	// Err is the number parse failure; nil when the value parsed but fell
	// outside [0.0, 1.0].
	Err error
}

func (e *InvalidWeightError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid weight: %s", e.RawQ)
	}
	return fmt.Sprintf("weight should be 0.0-1.0, got %s", e.RawQ)
}

func (e *InvalidWeightError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidWeight, e.Err}
	}
	return []error{ErrInvalidWeight}
}
