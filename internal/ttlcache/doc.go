// Package ttlcache provides a bounded key-value cache where every entry
// carries its own mutable time-to-live. Expiry is enforced lazily at access
// time; there is no background sweeper. When an insert would exceed the
// configured capacity, the live entry closest to expiry is evicted first,
// with ties broken by insertion order.
package ttlcache
