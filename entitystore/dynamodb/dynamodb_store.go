package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hupe1980/profilestore/entitystore"
)

// userPartition is the fixed partition key under which all profile
// records live; the email is the sort key.
const userPartition = "User"

// DDBClient is the interface for DynamoDB operations.
type DDBClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// Store implements entitystore.EntityStore backed by DynamoDB.
//
// Table schema:
//   - Partition key: pk (string) - always "User"
//   - Sort key: sk (string) - the account email
//
// Create table with:
//
//	aws dynamodb create-table \
//	  --table-name profiles \
//	  --attribute-definitions AttributeName=pk,AttributeType=S AttributeName=sk,AttributeType=S \
//	  --key-schema AttributeName=pk,KeyType=HASH AttributeName=sk,KeyType=RANGE \
//	  --billing-mode PAY_PER_REQUEST
type Store struct {
	client    DDBClient
	tableName string
}

// NewStore creates a new DynamoDB entity store writing to tableName.
func NewStore(client DDBClient, tableName string) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
	}
}

// Get returns the record for the given email.
func (s *Store) Get(ctx context.Context, email string) (entitystore.Record, error) {
	resp, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: userPartition},
			"sk": &types.AttributeValueMemberS{Value: email},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entitystore.Record{}, fmt.Errorf("failed to get item from DynamoDB: %w", err)
	}
	if resp.Item == nil {
		return entitystore.Record{}, entitystore.ErrNotFound
	}
	return unmarshalRecord(email, resp.Item)
}

// Upsert writes the record unconditionally.
func (s *Store) Upsert(ctx context.Context, rec entitystore.Record) error {
	_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      marshalRecord(rec),
	})
	if err != nil {
		return fmt.Errorf("failed to put item to DynamoDB: %w", err)
	}
	return nil
}

// CreateIfAbsent writes the record only if its email is unused.
// The conditional write is the atomic create that duplicate-registration
// prevention relies on.
func (s *Store) CreateIfAbsent(ctx context.Context, rec entitystore.Record) error {
	_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName),
		Item:                marshalRecord(rec),
		ConditionExpression: aws.String("attribute_not_exists(sk)"),
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return entitystore.ErrAlreadyExists
		}
		return fmt.Errorf("failed to put item to DynamoDB: %w", err)
	}
	return nil
}

func marshalRecord(rec entitystore.Record) map[string]types.AttributeValue {
	item := map[string]types.AttributeValue{
		"pk":         &types.AttributeValueMemberS{Value: userPartition},
		"sk":         &types.AttributeValueMemberS{Value: rec.Email},
		"full_name":  &types.AttributeValueMemberS{Value: rec.FullName},
		"credential": &types.AttributeValueMemberS{Value: rec.Credential},
	}
	if rec.PictureAssetID != "" {
		item["picture_asset_id"] = &types.AttributeValueMemberS{Value: rec.PictureAssetID}
	}
	// DynamoDB string sets cannot be empty; omit the attribute instead.
	if len(rec.DocumentRefs) > 0 {
		item["document_refs"] = &types.AttributeValueMemberSS{Value: rec.DocumentRefs}
	}
	return item
}

func unmarshalRecord(email string, item map[string]types.AttributeValue) (entitystore.Record, error) {
	rec := entitystore.Record{Email: email}

	if v, ok := item["full_name"].(*types.AttributeValueMemberS); ok {
		rec.FullName = v.Value
	}
	if v, ok := item["credential"].(*types.AttributeValueMemberS); ok {
		rec.Credential = v.Value
	}
	if v, ok := item["picture_asset_id"].(*types.AttributeValueMemberS); ok {
		rec.PictureAssetID = v.Value
	}
	if v, ok := item["document_refs"]; ok {
		ss, ok := v.(*types.AttributeValueMemberSS)
		if !ok {
			return entitystore.Record{}, errors.New("invalid document_refs attribute in DynamoDB")
		}
		rec.DocumentRefs = ss.Value
	}
	return rec, nil
}
