// Package entitystore provides the keyed record store abstraction that
// holds user profile records.
//
// EntityStore is deliberately narrow: point reads, unconditional
// upserts, and a conditional create whose exactly-once semantics back
// duplicate-registration prevention. Implementations must be safe for
// concurrent use.
//
// # Built-in Implementations
//
//   - MemoryStore: in-memory map, for tests and embedding
//   - dynamodb.Store: Amazon DynamoDB with conditional writes
package entitystore
