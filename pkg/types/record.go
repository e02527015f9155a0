// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the researchlib utilities:
// records, universal records, the keyword index, citation styles, and
// configuration.
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/spf13/cast"
	"go.yaml.in/yaml/v3"
)

// Canonical field names. The order of this list is the order in which
// fields are emitted and searched.
const (
	FieldTitle           = "title"
	FieldName            = "name"
	FieldAuthor          = "author"
	FieldYear            = "year"
	FieldPublicationDate = "publication_date"
	FieldIdentifier      = "identifier"
	FieldAbstract        = "abstract"
	FieldKeywords        = "keywords"
	FieldLastUpdated     = "last_updated"
)

// KnownFields lists the fields Record models explicitly, in emission order.
var KnownFields = []string{
	FieldTitle, FieldName, FieldAuthor, FieldYear, FieldPublicationDate,
	FieldIdentifier, FieldAbstract, FieldKeywords, FieldLastUpdated,
}

// EpochDate is the timestamp assumed for records without last_updated.
const EpochDate = "1970-01-01"

// Record is a bibliographic entry. A nil pointer means the field is absent;
// a pointer to "" means the field is present but empty. Keywords follows the
// same rule: nil is absent, an empty slice is present.
//
// Field values read from files may be strings, numbers, or lists of
// strings. Known fields expose their text form; the decoded value is kept
// so that writing the record back reproduces it.
type Record struct {
	Title           *string
	Name            *string
	Author          *string
	Year            *string
	PublicationDate *string
	Identifier      *string
	Abstract        *string
	Keywords        []string
	LastUpdated     *string

	// Extra holds fields outside the known set. Each value is a string, an
	// int64, a float64, or a []string.
	Extra map[string]any

	// decoded holds the original value of known fields that were not read
	// as plain strings, keyed by field name.
	decoded map[string]any
}

// Str returns a pointer to s. It keeps record literals readable.
func Str(s string) *string {
	return &s
}

// Value dereferences p, returning "" for an absent field.
func Value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// ID returns the record identifier or "" when absent.
func (r Record) ID() string {
	return Value(r.Identifier)
}

// HasIdentifier reports whether the record carries a non-empty identifier.
func (r Record) HasIdentifier() bool {
	return r.Identifier != nil && *r.Identifier != ""
}

// Timestamp returns last_updated, or EpochDate when the field is absent.
func (r Record) Timestamp() string {
	if r.LastUpdated == nil {
		return EpochDate
	}
	return *r.LastUpdated
}

// Clone returns a deep copy so callers can hand records around without
// sharing the keyword slice or the extra map.
func (r Record) Clone() Record {
	out := Record{
		Title:           clonePtr(r.Title),
		Name:            clonePtr(r.Name),
		Author:          clonePtr(r.Author),
		Year:            clonePtr(r.Year),
		PublicationDate: clonePtr(r.PublicationDate),
		Identifier:      clonePtr(r.Identifier),
		Abstract:        clonePtr(r.Abstract),
		LastUpdated:     clonePtr(r.LastUpdated),
	}
	if r.Keywords != nil {
		out.Keywords = append([]string{}, r.Keywords...)
	}
	out.Extra = cloneValues(r.Extra)
	out.decoded = cloneValues(r.decoded)
	return out
}

func cloneValues(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		if list, ok := v.([]string); ok {
			v = append([]string{}, list...)
		}
		out[k] = v
	}
	return out
}

func clonePtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// FieldNames returns the names of the fields present on the record: known
// fields in KnownFields order, then extra fields sorted by name.
func (r Record) FieldNames() []string {
	var names []string
	for _, f := range KnownFields {
		if _, ok := r.Get(f); ok {
			names = append(names, f)
		}
	}
	extra := make([]string, 0, len(r.Extra))
	for k := range r.Extra {
		extra = append(extra, k)
	}
	sort.Strings(extra)
	return append(names, extra...)
}

// Get returns the string form of a field and whether it is present.
// Lists, keywords included, are rendered comma-separated.
func (r Record) Get(field string) (string, bool) {
	switch field {
	case FieldKeywords:
		if r.Keywords == nil {
			return "", false
		}
		return strings.Join(r.Keywords, ", "), true
	case FieldTitle, FieldName, FieldAuthor, FieldYear, FieldPublicationDate,
		FieldIdentifier, FieldAbstract, FieldLastUpdated:
		p := *r.field(field)
		if p == nil {
			return "", false
		}
		return *p, true
	}
	v, ok := r.Extra[field]
	if !ok {
		return "", false
	}
	return Render(v), true
}

// Render returns the text form of a field value: lists are joined with
// ", " and numbers use their shortest decimal form.
func Render(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		return strings.Join(t, ", ")
	}
	return cast.ToString(v)
}

func (r *Record) field(name string) **string {
	switch name {
	case FieldTitle:
		return &r.Title
	case FieldName:
		return &r.Name
	case FieldAuthor:
		return &r.Author
	case FieldYear:
		return &r.Year
	case FieldPublicationDate:
		return &r.PublicationDate
	case FieldIdentifier:
		return &r.Identifier
	case FieldAbstract:
		return &r.Abstract
	case FieldLastUpdated:
		return &r.LastUpdated
	}
	return nil
}

// Map returns the record as a generic mapping. Absent fields are omitted.
func (r Record) Map() map[string]any {
	m := make(map[string]any)
	for _, f := range KnownFields {
		if f == FieldKeywords {
			if r.Keywords != nil {
				m[f] = append([]string{}, r.Keywords...)
			}
			continue
		}
		p := *r.field(f)
		if p == nil {
			continue
		}
		// A decoded value is emitted only while the text field still matches it.
		if v, ok := r.decoded[f]; ok && Render(v) == *p {
			m[f] = cloneValue(v)
			continue
		}
		m[f] = *p
	}
	for k, v := range r.Extra {
		m[k] = cloneValue(v)
	}
	return m
}

func cloneValue(v any) any {
	if list, ok := v.([]string); ok {
		return append([]string{}, list...)
	}
	return v
}

// RecordFromMap builds a Record from a loosely typed mapping such as a
// decoded JSON object. Values may be strings, numbers, or lists of scalars;
// booleans are coerced to strings. Keywords may be a list or a
// comma-separated string. Nil values count as absent.
func RecordFromMap(m map[string]any) (Record, error) {
	var r Record
	for k, v := range m {
		if v == nil {
			continue
		}
		if k == FieldKeywords {
			kw, err := toKeywords(v)
			if err != nil {
				return Record{}, fmt.Errorf("field %s: %w", k, err)
			}
			r.Keywords = kw
			continue
		}
		val, err := NormalizeValue(v)
		if err != nil {
			return Record{}, fmt.Errorf("field %s: %w", k, err)
		}
		if p := r.field(k); p != nil {
			*p = Str(Render(val))
			if _, isText := val.(string); !isText {
				if r.decoded == nil {
					r.decoded = make(map[string]any)
				}
				r.decoded[k] = val
			}
			continue
		}
		if r.Extra == nil {
			r.Extra = make(map[string]any)
		}
		r.Extra[k] = val
	}
	return r, nil
}

// NormalizeValue converts a decoded field value to one of the forms a
// record holds: string, int64, float64, or []string. Whole numbers become
// int64 so that JSON and YAML sources decode to the same value.
func NormalizeValue(v any) (any, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case []string:
		return append([]string{}, t...), nil
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s, err := cast.ToStringE(item)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n, nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return normalizeFloat(f), nil
	case float64:
		return normalizeFloat(t), nil
	case float32:
		return normalizeFloat(float64(t)), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32:
		return cast.ToInt64E(t)
	case uint64:
		if t > math.MaxInt64 {
			return float64(t), nil
		}
		return int64(t), nil
	}
	return cast.ToStringE(v)
}

func normalizeFloat(f float64) any {
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return int64(f)
	}
	return f
}

func toKeywords(v any) ([]string, error) {
	switch kw := v.(type) {
	case []string:
		return append([]string{}, kw...), nil
	case []any:
		out := make([]string, 0, len(kw))
		for _, item := range kw {
			s, err := cast.ToStringE(item)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil
	case string:
		out := []string{}
		for _, part := range strings.Split(kw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported keywords value of type %T", v)
}

// MarshalJSON encodes the record as a flat JSON object. HTML characters
// are written literally.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r.Map()); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON decodes a flat JSON object into the record.
func (r *Record) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	rec, err := RecordFromMap(m)
	if err != nil {
		return err
	}
	*r = rec
	return nil
}

// MarshalYAML encodes the record as a flat YAML mapping.
func (r Record) MarshalYAML() (any, error) {
	return r.Map(), nil
}

// UnmarshalYAML decodes a flat YAML mapping into the record.
func (r *Record) UnmarshalYAML(value *yaml.Node) error {
	var m map[string]any
	if err := value.Decode(&m); err != nil {
		return err
	}
	rec, err := RecordFromMap(m)
	if err != nil {
		return err
	}
	*r = rec
	return nil
}
