// Package querystring parses raw URL query strings by hand into a map of
// decoded keys to ordered decoded values. It exists so every endpoint shares
// one parsing utility instead of re-splitting the query inline.
//
// Two policies are offered for malformed percent-escapes:
//
//	Parse        → best-effort: an undecodable component is kept verbatim
//	ParseStrict  → the first bad escape aborts with a *DecodeError
package querystring

import "strings"

// Values maps a decoded key to its decoded values in the order they appeared
// in the query string. A key occurring twice keeps both values.
type Values map[string][]string

// Get returns the first value recorded for key, or "" if the key is absent.
// First-match is the selection policy for every endpoint in this repo.
func (v Values) Get(key string) string {
	if vs := v[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// GetDefault returns the first value recorded for key, or def if absent.
func (v Values) GetDefault(key, def string) string {
	if vs := v[key]; len(vs) > 0 {
		return vs[0]
	}
	return def
}

// All returns every value recorded for key in appearance order, or nil.
func (v Values) All(key string) []string {
	return v[key]
}

// Has reports whether key appeared in the query string at all.
func (v Values) Has(key string) bool {
	_, ok := v[key]
	return ok
}

// Parse splits raw on '&', splits each segment on the first '=' (a segment
// without '=' becomes a key with an empty value), percent-decodes both sides
// with '+' meaning space, and groups values by key preserving order.
//
// Parse never fails: a key or value whose escapes cannot be decoded is kept
// as raw text. An empty raw string yields an empty, non-nil map. Empty
// segments ("a=1&&b=2") are skipped.
func Parse(raw string) Values {
	v, _ := parse(raw, false)
	return v
}

// ParseStrict behaves like Parse but returns a *DecodeError, wrapping
// ErrBadEncoding, for the first segment containing an invalid escape.
func ParseStrict(raw string) (Values, error) {
	return parse(raw, true)
}

func parse(raw string, strict bool) (Values, error) {
	values := make(Values)

	for _, segment := range strings.Split(raw, "&") {
		if segment == "" {
			continue
		}

		key, value := segment, ""
		if i := strings.IndexByte(segment, '='); i >= 0 {
			// Only the first '=' separates; any later '=' belongs
			// to the value.
			key, value = segment[:i], segment[i+1:]
		}

		decodedKey, keyErr := decode(key)
		decodedValue, valueErr := decode(value)
		if strict {
			if keyErr != nil {
				return nil, &DecodeError{Segment: segment, Err: keyErr}
			}
			if valueErr != nil {
				return nil, &DecodeError{Segment: segment, Err: valueErr}
			}
		}
		if keyErr != nil {
			decodedKey = key
		}
		if valueErr != nil {
			decodedValue = value
		}

		values[decodedKey] = append(values[decodedKey], decodedValue)
	}

	return values, nil
}

// decode resolves %XX escapes and turns '+' into a space. It reports
// ErrBadEncoding for a '%' not followed by two hex digits.
func decode(s string) (string, error) {
	if !strings.ContainsAny(s, "%+") {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '+':
			b.WriteByte(' ')
		case '%':
			if i+2 >= len(s) || !isHex(s[i+1]) || !isHex(s[i+2]) {
				return "", ErrBadEncoding
			}
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		default:
			b.WriteByte(c)
		}
	}

	return b.String(), nil
}

func isHex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
