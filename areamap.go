// Package areamap converts the ENTSO-E area directory XML into a JSON
// mapping from ISO 3166-1 alpha-2 country codes to lists of EIC market
// area identifiers.
//
// Country detection is best-effort: review the generated JSON before
// shipping it.
package areamap

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Area is one market area from the directory: an EIC identifier and its
// display name. The name may be empty.
type Area struct {
	EIC  string
	Name string
}

// AreaMap maps ISO country codes to EIC codes. Buckets are ordered-unique:
// no EIC appears twice under the same key, and pre-Finalize order is order
// of first appearance.
type AreaMap map[string][]string

// NewAreaMap returns an empty mapping.
func NewAreaMap() AreaMap {
	return make(AreaMap)
}

// NormalizeISO trims and uppercases a candidate ISO code, returning ""
// unless exactly 2 runes remain.
func NormalizeISO(value string) string {
	value = strings.ToUpper(strings.TrimSpace(value))
	if utf8.RuneCountInString(value) != 2 {
		return ""
	}
	return value
}

// tokenTrimCutset holds the punctuation stripped from name tokens before
// they are tested as ISO candidates.
const tokenTrimCutset = "()[]:/"

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// GuessISO detects the country for an area from its display name and EIC
// code. Detection order:
//
//  1. ForceISO override for the exact EIC.
//  2. A standalone 2-letter token in the uppercased name, with bracket,
//     colon and slash punctuation trimmed ("(DK)" yields "DK").
//  3. The leading letters of a token shaped like "NO5" (2 letters plus a
//     digit).
//  4. For "10Y"-prefixed EICs, the alphabetic characters at positions 3-4.
//     Many price areas keep their ISO code immediately after "10Y"; this
//     does not hold for every real-world code, hence the override table.
//
// Returns "" when nothing matches.
func GuessISO(name, eic string) string {
	if iso, ok := ForceISO[eic]; ok {
		return iso
	}

	tokens := strings.Fields(strings.ToUpper(name))
	for i, token := range tokens {
		tokens[i] = strings.Trim(token, tokenTrimCutset)
	}
	for _, token := range tokens {
		if utf8.RuneCountInString(token) == 2 && isAlpha(token) {
			return token
		}
	}
	for _, token := range tokens {
		r := []rune(token)
		if len(r) >= 3 && isAlpha(string(r[:2])) && unicode.IsDigit(r[2]) {
			return string(r[:2])
		}
	}

	if len(eic) >= 5 && strings.HasPrefix(eic, "10Y") {
		var candidate strings.Builder
		for _, r := range eic[3:5] {
			if unicode.IsLetter(r) {
				candidate.WriteRune(r)
			}
		}
		if candidate.Len() == 2 {
			return candidate.String()
		}
	}
	return ""
}

// Add appends an EIC to the bucket for iso unless it is already present.
// Empty iso or eic values are ignored.
func (m AreaMap) Add(iso, eic string) {
	if iso == "" || eic == "" {
		return
	}
	for _, existing := range m[iso] {
		if existing == eic {
			return
		}
	}
	m[iso] = append(m[iso], eic)
}

// Classify files one area under its detected country. When detection fails
// the normalized defaultISO is used; when that is empty too the area is
// dropped. Reports whether the area was filed.
func (m AreaMap) Classify(area Area, defaultISO string) bool {
	iso := NormalizeISO(GuessISO(area.Name, area.EIC))
	if iso == "" {
		iso = NormalizeISO(defaultISO)
	}
	if iso == "" {
		return false
	}
	m.Add(iso, area.EIC)
	return true
}

// MergeJSON folds one external mapping document into m. The document must
// be a JSON object; keys that fail ISO normalization or whose value is not
// an array are skipped, as are non-string or empty array elements. Merging
// the same document twice is a no-op the second time.
func (m AreaMap) MergeJSON(data []byte) error {
	var loaded map[string]json.RawMessage
	if err := json.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("parsing merge document: %w", err)
	}

	// json.Unmarshal into a map loses document order; sort keys so merge
	// results are reproducible across runs.
	keys := make([]string, 0, len(loaded))
	for key := range loaded {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		iso := NormalizeISO(key)
		if iso == "" {
			continue
		}
		var codes []any
		if err := json.Unmarshal(loaded[key], &codes); err != nil {
			continue
		}
		for _, raw := range codes {
			if code, ok := raw.(string); ok && code != "" {
				m.Add(iso, code)
			}
		}
	}
	return nil
}

// Finalize sorts every bucket lexicographically. Call once, before
// serializing.
func (m AreaMap) Finalize() {
	for _, codes := range m {
		sort.Strings(codes)
	}
}
