package redis

// Key prefix for all skillrank data
const keyPrefix = "skillrank"

// rosterKey returns the Redis key the full roster snapshot lives under.
// The whole player list is one value; saves overwrite it in place.
func rosterKey() string {
	return keyPrefix + ":roster"
}
