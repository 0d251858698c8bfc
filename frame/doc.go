// Package frame is a small in-memory columnar table engine. It stores typed, named Series with a
// row index, and provides the primitives the plyr verbs are built from: column and row indexing,
// stable multi-key sorting, hash partitioning, hash joins, deduplication, random sampling and
// index reset. Keys are hashed with https://github.com/cespare/xxhash.
package frame
