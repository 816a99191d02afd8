// Package dynamodb provides a DynamoDB implementation of the
// entitystore.EntityStore interface.
//
// Records are stored under a fixed partition key ("User") with the
// account email as the sort key, mirroring the two-part addressing of
// table-style record stores. CreateIfAbsent uses a DynamoDB conditional
// write, which supplies the exactly-once create semantics that back
// duplicate-registration prevention.
//
// # Usage
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	store := dynamodb.NewStore(awsdynamodb.NewFromConfig(cfg), "profiles")
package dynamodb
