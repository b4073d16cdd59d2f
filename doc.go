// Package loadout resolves configuration values through a fluent chain of
// candidate sources: a flat environment-variable map and a nested credentials
// tree. Callers declare which sources to try and in what order, optionally a
// coercion for raw environment strings, and terminate the chain with lookup
// keys; the terminating call resolves immediately and either returns the
// value, falls back to a default, or fails with a message naming every source
// it consulted.
//
// Example:
//
//	cfg := loadout.New(loadout.WithCredentials(creds))
//	r := cfg.Resolver()
//
//	host, err := r.Env().Cred().FetchCred("server", "host")
//	debug, err := r.Bool().FetchEnv("debug")
//
//	db := r.Prefix("db")
//	pool, err := db.Int().FetchEnv("pool")       // reads DB_POOL
//	pass, err := db.Cred().Env().FetchCred("password")
//
// Non-terminal calls return independent copies, so partial chains like db
// above can be kept and reused. A terminating call always leaves its resolver
// with no pending sources, ready for the next field.
package loadout
