// Package journal provides a SQLite-backed, append-only log of completed
// vector exports.
//
// Each entry records where an export went, its format, the vector length and
// a content digest, so a file on disk can later be matched to the export that
// produced it.
//
// # Ordering
//
//   - Entries carry a seq INTEGER from a logical clock, never timestamps.
//   - The clock resumes from MAX(seq) when a journal is reopened.
//   - All queries use ORDER BY seq ASC, id ASC COLLATE BINARY.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// Digests are SHA-256 with domain separation (see Digest).
package journal
