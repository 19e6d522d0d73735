// Package field exposes raw string stores as typed, lazily evaluated header
// fields.
//
// # Stores
//
// A [Store] is the minimal contract over an underlying header collection:
// lookup of the last value for a key, appending an entry and dropping all
// entries for a key. Two reference stores ship with the package: the ordered
// [HeaderList] matching names case insensitively through their canonical
// form, and the CGI style [Environ] map with exact keys.
//
// # Accessors
//
// [Raw] reads and writes one field of a store as a plain string. [Convert]
// composes a [Raw] with a [Codec] into a typed [Field]: reads parse the raw
// value on demand, writes serialize the typed value back, and a serialized
// value reporting absence removes the field instead of writing it. Accessors
// are cheap values built once at definition time and applied to any number
// of stores; the typed results they return are snapshots, independent of the
// store until written back.
//
// # Deprecation
//
// [Deprecate] wraps any [Accessor] so that each use either logs a warning
// and delegates, or fails with [ErrDeprecated], depending on the configured
// policy.
package field
