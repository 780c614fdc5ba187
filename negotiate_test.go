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

func mimes(values ...string) []MimeType {
	out := make([]MimeType, 0, len(values))
	for _, v := range values {
		out = append(out, MustParseMimeType(v))
	}
	return out
}

func TestNegotiate(t *testing.T) {
	testCases := []struct {
		name      string
		header    string
		available []string
		want      string
		wantNone  bool
	}{
		{
			name:      "Exact match",
			header:    "application/json, text/html",
			available: []string{"text/html"},
			want:      "text/html",
		},
		{
			name:      "Highest weight wins across offers",
			header:    "text/html;q=0.5, application/json;q=0.9",
			available: []string{"text/html", "application/json"},
			want:      "application/json",
		},
		{
			name:      "Absent q ranks as 1.0",
			header:    "text/html;q=0.9, application/json",
			available: []string{"text/html", "application/json"},
			want:      "application/json",
		},
		{
			name:      "Partial wildcard matches subtype",
			header:    "text/*",
			available: []string{"application/json", "text/plain"},
			want:      "text/plain",
		},
		{
			name:      "Specificity beats quality value",
			header:    "text/*;q=0.1, */*;q=0.9",
			available: []string{"text/plain"},
			want:      "text/plain",
		},
		{
			name:      "Exact entry beats wildcard with higher q",
			header:    "text/html;q=0.2, */*;q=0.9",
			available: []string{"text/html"},
			want:      "text/html",
		},
		{
			name:      "Rejection by q=0 despite wildcard",
			header:    "application/json;q=0, */*",
			available: []string{"application/json"},
			wantNone:  true,
		},
		{
			name:      "Wildcard accepts the other candidate",
			header:    "application/json;q=0, */*",
			available: []string{"application/json", "text/plain"},
			want:      "text/plain",
		},
		{
			name:      "Partial wildcard q=0 rejects the whole type",
			header:    "text/*;q=0",
			available: []string{"text/plain"},
			wantNone:  true,
		},
		{
			name:      "Server order breaks ties",
			header:    "*/*",
			available: []string{"b/b", "a/a"},
			want:      "b/b",
		},
		{
			name:      "Server order breaks exact-match ties",
			header:    "a/a, b/b",
			available: []string{"b/b", "a/a"},
			want:      "b/b",
		},
		{
			name:      "Unmatched offers are excluded",
			header:    "application/json",
			available: []string{"text/html", "application/json"},
			want:      "application/json",
		},
		{
			name:      "No match at all",
			header:    "application/json",
			available: []string{"text/html"},
			wantNone:  true,
		},
		{
			name:      "Empty accept matches nothing",
			header:    "",
			available: []string{"text/html"},
			wantNone:  true,
		},
		{
			name:      "Empty available",
			header:    "*/*",
			available: nil,
			wantNone:  true,
		},
		{
			name:      "Parameters count for exact matches",
			header:    "application/json;charset=utf-8",
			available: []string{"application/json"},
			wantNone:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			acc, err := Parse(tc.header)
			require.NoError(t, err)

			chosen, ok := Negotiate(acc, mimes(tc.available...))
			if tc.wantNone {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.True(t, chosen.Equal(MustParseMimeType(tc.want)),
				"got %s, want %s", chosen, tc.want)
		})
	}
}

func TestAccept_match(t *testing.T) {
	acc, err := Parse("text/html;q=0.4, text/*;q=0.3, */*;q=0.2")
	require.NoError(t, err)

	kind, weight := acc.match(MustParseMimeType("text/html"))
	assert.Equal(t, matchExact, kind)
	assert.Equal(t, 0.4, weight)

	kind, weight = acc.match(MustParseMimeType("text/plain"))
	assert.Equal(t, matchPartialWildcard, kind)
	assert.Equal(t, 0.3, weight)

	kind, weight = acc.match(MustParseMimeType("application/json"))
	assert.Equal(t, matchFullWildcard, kind)
	assert.Equal(t, 0.2, weight)

	noWildcard, err := Parse("text/html")
	require.NoError(t, err)
	kind, weight = noWildcard.match(MustParseMimeType("application/json"))
	assert.Equal(t, matchNone, kind)
	assert.Zero(t, weight)
}

func TestAccept_match_FirstEntryOfTierWins(t *testing.T) {
	acc, err := Parse("text/html;q=0.4, text/html;q=0.8")
	require.NoError(t, err)

	_, weight := acc.match(MustParseMimeType("text/html"))
	assert.Equal(t, 0.4, weight)
}

func TestNegotiate_DoesNotMutateInputs(t *testing.T) {
	acc, err := Parse("text/*;q=0.5, application/json")
	require.NoError(t, err)
	available := mimes("application/json", "text/plain")

	before := acc.String()
	_, ok := Negotiate(acc, available)
	require.True(t, ok)

	assert.Equal(t, before, acc.String())
	assert.True(t, available[0].Equal(MustParseMimeType("application/json")))
	assert.True(t, available[1].Equal(MustParseMimeType("text/plain")))
}
