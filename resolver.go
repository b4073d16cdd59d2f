package loadout

import "regexp"

// Source identifies one of the two value origins a lookup may consult.
type Source string

const (
	SourceEnv  Source = "env"
	SourceCred Source = "cred"
)

// Resolver accumulates resolution intent and performs lookups. Non-terminal
// calls (Env, Cred, Bool, Int, Float, List, ListPattern, Prefix,
// PrefixWithDefault) never modify the receiver; each returns an independent
// copy with one field changed, so partial chains are safe to keep, share, and
// reuse. Terminal calls (FetchEnv, FetchCred and their Or variants) append
// their source tag to the receiver's pending order, resolve, and always clear
// the pending order before returning — terminal calls on a shared Resolver
// must therefore be serialized by its owner.
type Resolver struct {
	envLookup EnvLookupFunc
	creds     Credentials
	sources   []Source
	coercion  coercion
	frames    []frame
}

// frame is one prefix scope: a key group prepended to every lookup made
// through it, plus an optional fallback bound when the scope was opened.
type frame struct {
	keys     []string
	fallback func() any
}

func (r *Resolver) clone() *Resolver {
	c := &Resolver{
		envLookup: r.envLookup,
		creds:     r.creds,
		coercion:  r.coercion,
	}
	c.sources = append([]Source(nil), r.sources...)
	c.frames = append([]frame(nil), r.frames...)
	return c
}

// appendSource queues a tag, collapsing duplicates: re-declaring a source
// already in the order is a no-op for ordering.
func appendSource(order []Source, tag Source) []Source {
	for _, queued := range order {
		if queued == tag {
			return order
		}
	}
	return append(order, tag)
}

// Env returns a copy with the environment source queued.
func (r *Resolver) Env() *Resolver {
	c := r.clone()
	c.sources = appendSource(c.sources, SourceEnv)
	return c
}

// Cred returns a copy with the credentials source queued.
func (r *Resolver) Cred() *Resolver {
	c := r.clone()
	c.sources = appendSource(c.sources, SourceCred)
	return c
}

// Bool returns a copy that coerces raw environment strings to booleans.
func (r *Resolver) Bool() *Resolver {
	c := r.clone()
	c.coercion = coercion{kind: coerceBool}
	return c
}

// Int returns a copy that coerces raw environment strings to base-10 ints.
func (r *Resolver) Int() *Resolver {
	c := r.clone()
	c.coercion = coercion{kind: coerceInt}
	return c
}

// Float returns a copy that coerces raw environment strings to float64.
func (r *Resolver) Float() *Resolver {
	c := r.clone()
	c.coercion = coercion{kind: coerceFloat}
	return c
}

// List returns a copy that splits raw environment strings into a []string.
// With no argument the default rule applies: runs of whitespace and
// punctuation become split points and fragments are trimmed. An explicit
// separator splits literally, with no trimming.
func (r *Resolver) List(separator ...string) *Resolver {
	c := r.clone()
	c.coercion = coercion{kind: coerceList}
	if len(separator) > 0 {
		c.coercion.sep = separator[0]
	}
	return c
}

// ListPattern is List with an explicit split pattern.
func (r *Resolver) ListPattern(pattern *regexp.Regexp) *Resolver {
	c := r.clone()
	c.coercion = coercion{kind: coerceList, pattern: pattern}
	return c
}

// Prefix returns a copy with the key group pushed onto the prefix stack. The
// group is prepended to the keys of every lookup made through the copy;
// chains derived from the receiver itself are unaffected.
func (r *Resolver) Prefix(keys ...string) *Resolver {
	c := r.clone()
	c.frames = append(c.frames, frame{keys: append([]string(nil), keys...)})
	return c
}

// PrefixWithDefault is Prefix with a fallback bound to the scope: lookups
// made through the copy that miss every source and carry no inline fallback
// resolve to the fallback's value instead of failing. An inner scope's
// fallback shadows an outer one.
func (r *Resolver) PrefixWithDefault(fallback func() any, keys ...string) *Resolver {
	c := r.clone()
	c.frames = append(c.frames, frame{keys: append([]string(nil), keys...), fallback: fallback})
	return c
}

// FetchEnv queues the environment source and resolves the given keys against
// every queued source in declared order.
func (r *Resolver) FetchEnv(keys ...string) (any, error) {
	return r.fetch(SourceEnv, nil, keys)
}

// FetchCred queues the credentials source and resolves the given keys against
// every queued source in declared order.
func (r *Resolver) FetchCred(keys ...string) (any, error) {
	return r.fetch(SourceCred, nil, keys)
}

// FetchEnvOr is FetchEnv with an inline fallback used when no source yields a
// value. A present but malformed environment value still fails: the fallback
// covers absence, not invalidity.
func (r *Resolver) FetchEnvOr(fallback func() any, keys ...string) (any, error) {
	return r.fetch(SourceEnv, fallback, keys)
}

// FetchCredOr is FetchCred with an inline fallback used when no source yields
// a value.
func (r *Resolver) FetchCredOr(fallback func() any, keys ...string) (any, error) {
	return r.fetch(SourceCred, fallback, keys)
}

func (r *Resolver) fetch(tag Source, fallback func() any, keys []string) (any, error) {
	r.sources = appendSource(r.sources, tag)
	state := resolveState{
		order:     r.sources,
		coercion:  r.coercion,
		envLookup: r.envLookup,
		creds:     r.creds,
	}
	// Drain before resolving so the receiver is clean for the next field no
	// matter how the lookup ends.
	r.sources = nil
	return state.lookup(r.effectiveKeys(keys), fallback, r.scopedFallback())
}

// effectiveKeys flattens the prefix stack in push order and appends the keys
// supplied to the terminating call.
func (r *Resolver) effectiveKeys(keys []string) []string {
	var out []string
	for _, f := range r.frames {
		out = append(out, f.keys...)
	}
	return append(out, keys...)
}

// scopedFallback returns the innermost prefix fallback, if any.
func (r *Resolver) scopedFallback() func() any {
	for i := len(r.frames) - 1; i >= 0; i-- {
		if r.frames[i].fallback != nil {
			return r.frames[i].fallback
		}
	}
	return nil
}

// resolveState is an immutable snapshot of everything a single lookup needs.
// Resolution is a pure function over it; the Resolver methods above are a
// thin shell that assembles snapshots and drains pending state.
type resolveState struct {
	order     []Source
	coercion  coercion
	envLookup EnvLookupFunc
	creds     Credentials
}

func (s resolveState) lookup(keys []string, fallback, scoped func() any) (any, error) {
	attempts := newAttemptCollector()
	for _, tag := range s.order {
		switch tag {
		case SourceCred:
			if value, ok := s.creds.Lookup(keys...); ok {
				return value, nil
			}
			attempts.miss(SourceCred, keys)
		case SourceEnv:
			name := envName(keys)
			if raw, ok := s.envLookup(name); ok {
				return s.coercion.apply(raw, name)
			}
			attempts.miss(SourceEnv, keys)
		}
	}
	if fallback != nil {
		return fallback(), nil
	}
	if scoped != nil {
		return scoped(), nil
	}
	return nil, attempts.missing()
}
