// Package store provides the key-value durable store backing the statistics
// ledger. The contract mirrors a browser localStorage: string keys, string
// values, absent keys distinguished from empty ones. Writes are absorbed
// locally and never fail the caller; a file-backed store logs write errors
// instead of propagating them.
package store

// Store is the key-value durable store contract
type Store interface {
	// Get returns the value for key; the second return is false when the
	// key is absent.
	Get(key string) (string, bool)

	// Set stores value under key, overwriting any previous value.
	Set(key, value string)

	// Remove deletes key. Removing an absent key is a no-op.
	Remove(key string)
}
