package loadout

import "strings"

// EnvLookupFunc describes how to look up environment variables. Override with
// WithEnvLookup or WithEnviron when running in custom environments. Key
// matching is case-sensitive and exact.
type EnvLookupFunc func(string) (string, bool)

// envName builds the environment lookup name for a key sequence: the keys
// joined with underscores and upper-cased.
func envName(keys []string) string {
	return strings.ToUpper(strings.Join(keys, "_"))
}

// Credentials is an arbitrarily nested string-keyed tree. Interior nodes are
// maps; leaves may hold any already-typed value (string, bool, number,
// slice). Provider subpackages materialize trees from external secret stores.
type Credentials map[string]any

// Lookup descends through all but the last key and reports whether the last
// key is present in the map it reached. A single key is a direct top-level
// check. A missing key or a non-map interior node means not found, never an
// error.
func (c Credentials) Lookup(keys ...string) (any, bool) {
	if len(keys) == 0 {
		return nil, false
	}
	node := c
	for _, key := range keys[:len(keys)-1] {
		child, ok := node[key]
		if !ok {
			return nil, false
		}
		if node, ok = asTree(child); !ok {
			return nil, false
		}
	}
	value, ok := node[keys[len(keys)-1]]
	return value, ok
}

// Merge deep-merges other into a copy of c: maps merge recursively, and on a
// leaf conflict the value from other wins. Neither tree is modified, so
// several provider trees can be layered into one without aliasing surprises.
func (c Credentials) Merge(other Credentials) Credentials {
	out := make(Credentials, len(c)+len(other))
	for key, value := range c {
		out[key] = value
	}
	for key, value := range other {
		left, leftOK := asTree(out[key])
		right, rightOK := asTree(value)
		if leftOK && rightOK {
			out[key] = left.Merge(right)
			continue
		}
		out[key] = value
	}
	return out
}

// asTree widens interior nodes: trees decoded from JSON payloads arrive as
// map[string]any rather than Credentials.
func asTree(v any) (Credentials, bool) {
	switch node := v.(type) {
	case Credentials:
		return node, true
	case map[string]any:
		return Credentials(node), true
	}
	return nil, false
}
