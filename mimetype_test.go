// Tencent is pleased to support the open source community by making trpc-accept available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-accept is licensed under the Apache License Version 2.0.

package accept

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMimeType(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		wantType    string
		wantSubtype string
		wantParams  map[string]string
		wantErr     bool
	}{
		{
			name:        "Plain type",
			input:       "text/html",
			wantType:    "text",
			wantSubtype: "html",
		},
		{
			name:        "With parameter",
			input:       "application/json; charset=utf-8",
			wantType:    "application",
			wantSubtype: "json",
			wantParams:  map[string]string{"charset": "utf-8"},
		},
		{
			name:        "Case is normalized",
			input:       "Text/HTML",
			wantType:    "text",
			wantSubtype: "html",
		},
		{
			name:        "Full wildcard",
			input:       "*/*",
			wantType:    "*",
			wantSubtype: "*",
		},
		{
			name:        "Partial wildcard",
			input:       "text/*",
			wantType:    "text",
			wantSubtype: "*",
		},
		{
			name:    "Missing subtype",
			input:   "bogus",
			wantErr: true,
		},
		{
			name:    "Empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "Empty subtype",
			input:   "text/",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := ParseMimeType(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantType, m.Type)
			assert.Equal(t, tc.wantSubtype, m.Subtype)
			for name, value := range tc.wantParams {
				assert.Equal(t, value, m.Params[name])
			}
		})
	}
}

func TestMimeType_Equal(t *testing.T) {
	assert.True(t, MustParseMimeType("text/html").Equal(MustParseMimeType("Text/HTML")))
	assert.True(t, MustParseMimeType("application/json; charset=utf-8").
		Equal(MustParseMimeType("application/json;charset=utf-8")))

	// Parameter sets are part of identity.
	assert.False(t, MustParseMimeType("application/json").
		Equal(MustParseMimeType("application/json; charset=utf-8")))
	assert.False(t, MustParseMimeType("text/html").Equal(MustParseMimeType("text/plain")))
}

func TestMimeType_IsWildcard(t *testing.T) {
	assert.True(t, MustParseMimeType("*/*").IsWildcard())
	assert.False(t, MustParseMimeType("text/*").IsWildcard())
	assert.False(t, MustParseMimeType("text/html").IsWildcard())
	// Parameters make it a distinct entry, not the catch-all.
	assert.False(t, MustParseMimeType("*/*; v=1").IsWildcard())
}

func TestMimeType_String(t *testing.T) {
	assert.Equal(t, "text/html", MustParseMimeType("text/html").String())
	assert.Equal(t, "application/json; charset=utf-8",
		MustParseMimeType("application/json;  charset=utf-8").String())
}

func TestMustParseMimeType_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParseMimeType("bogus") })
}
