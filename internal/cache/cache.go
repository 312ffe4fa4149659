package cache

import "strconv"

// Cache defines the interface for the resolver's lookup cache
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string)
	Clear()
}

// TypeKey builds a cache key for a type-level parameter lookup.
// Elements sharing a type repeat the same type-level lookups, so those
// are the entries worth memoizing.
func TypeKey(typeID int64, param string) string {
	return "type:" + strconv.FormatInt(typeID, 10) + ":" + param
}
