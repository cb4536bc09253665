// Package dedup filters candidate items against the signatures of already
// persisted ones. A signature is the (title, date) pair; extraction is
// tolerant of the heterogeneous key names found across provenances (store
// items, calendar events, legacy French payloads).
package dedup

import (
	"github.com/dondeestakoko/easemyday/internal/model"
)

// Signature is the set-membership key for duplicate detection.
type Signature struct {
	Title string
	Date  string
}

// titleKeys and dateKeys are the extraction rules, first match wins.
var (
	titleKeys = []string{"text", "summary", "titre"}
	dateKeys  = []string{"datetime_iso", "date", "start"}
)

// FromMap extracts a signature from a loosely-typed record. Records missing
// either key have no signature and are never treated as duplicates.
func FromMap(record map[string]any) (Signature, bool) {
	title, ok := firstString(record, titleKeys)
	if !ok {
		return Signature{}, false
	}
	date, ok := firstDate(record, dateKeys)
	if !ok {
		return Signature{}, false
	}
	return Signature{Title: title, Date: date}, true
}

// FromItem extracts a signature from a typed store item.
func FromItem(it model.ExtractedItem) (Signature, bool) {
	if it.Text == "" || it.DatetimeISO == nil || *it.DatetimeISO == "" {
		return Signature{}, false
	}
	return Signature{Title: it.Text, Date: *it.DatetimeISO}, true
}

// Set is a signature membership set.
type Set map[Signature]struct{}

// NewSet builds the signature set of already persisted items.
func NewSet(existing []model.ExtractedItem) Set {
	set := make(Set, len(existing))
	for _, it := range existing {
		if sig, ok := FromItem(it); ok {
			set[sig] = struct{}{}
		}
	}
	return set
}

// Add inserts the signature of a loosely-typed record, if it has one.
// Callers use this to fold calendar-sourced records into the set.
func (s Set) Add(record map[string]any) {
	if sig, ok := FromMap(record); ok {
		s[sig] = struct{}{}
	}
}

// Filter returns the candidates whose signature is absent from the set,
// preserving their order. Candidates without a signature always pass.
func (s Set) Filter(candidates []model.ExtractedItem) []model.ExtractedItem {
	kept := make([]model.ExtractedItem, 0, len(candidates))
	for _, c := range candidates {
		sig, ok := FromItem(c)
		if ok {
			if _, seen := s[sig]; seen {
				continue
			}
		}
		kept = append(kept, c)
	}
	return kept
}

func firstString(record map[string]any, keys []string) (string, bool) {
	for _, k := range keys {
		if v, ok := record[k]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s, true
			}
		}
	}
	return "", false
}

// firstDate resolves the date key, flattening Google-style nested start
// objects ({"dateTime": ...} or {"date": ...}).
func firstDate(record map[string]any, keys []string) (string, bool) {
	for _, k := range keys {
		v, ok := record[k]
		if !ok || v == nil {
			continue
		}
		switch d := v.(type) {
		case string:
			if d != "" {
				return d, true
			}
		case map[string]any:
			if s, ok := d["dateTime"].(string); ok && s != "" {
				return s, true
			}
			if s, ok := d["date"].(string); ok && s != "" {
				return s, true
			}
		}
	}
	return "", false
}
