// Tencent is pleased to support the open source community by making trpc-accept available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-accept is licensed under the Apache License Version 2.0.

package accept

import "strings"

// matchKind ranks how specifically an accept entry covers an available type.
// Specificity is decided before weight: an exact entry always supplies the
// weight over a partial wildcard, which in turn beats "*/*", regardless of
// their q values.
type matchKind int

const (
	matchNone matchKind = iota
	matchFullWildcard
	matchPartialWildcard
	matchExact
)

// Negotiate selects the best type the server can produce for the given
// preference set.
//
// available lists the types the server offers, in the server's own order of
// preference. Each offer gets the weight of the most specific accept entry
// covering it; a weight of exactly 0 excludes the offer (q=0 means not
// acceptable). Among the remaining offers the highest weight wins, with ties
// going to the earliest position in available. The second return is false
// when nothing is acceptable.
func Negotiate(acc Accept, available []MimeType) (MimeType, bool) {
	bestIdx := -1
	bestWeight := 0.0
	for i, a := range available {
		kind, weight := acc.match(a)
		if kind == matchNone || weight == 0.0 {
			continue
		}
		if bestIdx < 0 || weight > bestWeight {
			bestIdx = i
			bestWeight = weight
		}
	}
	if bestIdx < 0 {
		return MimeType{}, false
	}
	return available[bestIdx], true
}

// match finds the most specific entry covering the offered type and returns
// its effective weight. Entries are scanned in header order within each tier,
// so the first matching entry of a tier supplies the weight.
func (a Accept) match(offer MimeType) (matchKind, float64) {
	for _, t := range a.Types {
		if t.Mime.Equal(offer) {
			return matchExact, t.EffectiveWeight()
		}
	}
	for _, t := range a.Types {
		if t.Mime.Subtype == "*" && strings.EqualFold(t.Mime.Type, offer.Type) {
			return matchPartialWildcard, t.EffectiveWeight()
		}
	}
	if a.Wildcard != nil {
		return matchFullWildcard, a.Wildcard.EffectiveWeight()
	}
	return matchNone, 0.0
}
