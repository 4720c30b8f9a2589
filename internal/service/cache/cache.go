package cache

import "time"

// BytesCache is a minimal cache API storing raw bytes with TTL. Analytics
// overviews are cached serialized; a miss simply recomputes, correctness
// never depends on a hit.
type BytesCache interface {
	GetBytes(key string) (b []byte, ok bool, err error)
	SetBytes(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
}
