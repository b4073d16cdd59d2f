package loadout

import (
	"regexp"
	"strconv"
	"strings"
)

type coerceKind int

const (
	coerceNone coerceKind = iota
	coerceBool
	coerceInt
	coerceFloat
	coerceList
)

func (k coerceKind) String() string {
	switch k {
	case coerceBool:
		return "bool"
	case coerceInt:
		return "int"
	case coerceFloat:
		return "float"
	case coerceList:
		return "list"
	}
	return "none"
}

// coercion is the closed set of conversions applied to raw environment
// strings. Credential values arrive already typed and are never coerced.
type coercion struct {
	kind    coerceKind
	sep     string
	pattern *regexp.Regexp
}

// defaultListPattern splits on runs of whitespace and punctuation. A run
// collapses to a single split point regardless of its length or mix.
var defaultListPattern = regexp.MustCompile(`[[:space:][:punct:]]+`)

func (c coercion) apply(raw, name string) (any, error) {
	switch c.kind {
	case coerceBool:
		switch strings.ToLower(raw) {
		case "", "0", "n", "no", "f", "false":
			return false, nil
		case "1", "y", "yes", "t", "true":
			return true, nil
		}
		return nil, c.invalid(raw, name)
	case coerceInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, c.invalid(raw, name)
		}
		return n, nil
	case coerceFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, c.invalid(raw, name)
		}
		return f, nil
	case coerceList:
		return c.splitList(raw, name)
	default:
		return raw, nil
	}
}

func (c coercion) splitList(raw, name string) (any, error) {
	// An empty string is never a valid list.
	if raw == "" {
		return nil, c.invalid(raw, name)
	}
	if c.sep != "" {
		return strings.Split(raw, c.sep), nil
	}
	if c.pattern != nil {
		return c.pattern.Split(raw, -1), nil
	}
	parts := defaultListPattern.Split(raw, -1)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out, nil
}

func (c coercion) invalid(raw, name string) error {
	return &InvalidValueError{Kind: c.kind.String(), Raw: raw, Name: name}
}
