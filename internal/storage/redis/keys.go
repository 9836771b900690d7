package redis

// Key prefix for all directory data
const keyPrefix = "queueup"

// fixtureKey returns the Redis key for the seeded fixture document.
// The snapshot is stored as a single JSON blob; it is read once per
// process at startup, so per-record keys would buy nothing.
func fixtureKey() string {
	return keyPrefix + ":fixture"
}
