package recordstore

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of *dynamodb.Client the table needs.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

type dynamoTable[T any] struct {
	client    DynamoAPI
	tableName string
	keyAttr   string
}

// NewDynamoTable serves T from a DynamoDB table with a string partition key
// named keyAttr. Items are (un)marshalled through their dynamodbav tags.
func NewDynamoTable[T any](client DynamoAPI, tableName, keyAttr string) Table[T] {
	return &dynamoTable[T]{client: client, tableName: tableName, keyAttr: keyAttr}
}

func (t *dynamoTable[T]) key(k string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		t.keyAttr: &types.AttributeValueMemberS{Value: k},
	}
}

func (t *dynamoTable[T]) Get(ctx context.Context, key string) (*T, error) {
	out, err := t.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(t.tableName),
		Key:       t.key(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get %s from %s: %w", key, t.tableName, err)
	}
	if len(out.Item) == 0 {
		return nil, ErrNotFound
	}

	var item T
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("decode %s item: %w", t.tableName, err)
	}
	return &item, nil
}

func (t *dynamoTable[T]) Scan(ctx context.Context, filter Filter) ([]T, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(t.tableName)}

	if len(filter) > 0 {
		names := sortedKeys(filter)
		cond := expression.Name(names[0]).Equal(expression.Value(filter[names[0]]))
		for _, name := range names[1:] {
			cond = cond.And(expression.Name(name).Equal(expression.Value(filter[name])))
		}

		expr, err := expression.NewBuilder().WithFilter(cond).Build()
		if err != nil {
			return nil, fmt.Errorf("build %s filter: %w", t.tableName, err)
		}
		input.FilterExpression = expr.Filter()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	items := make([]T, 0)
	paginator := dynamodb.NewScanPaginator(t.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", t.tableName, err)
		}

		var batch []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, fmt.Errorf("decode %s items: %w", t.tableName, err)
		}
		items = append(items, batch...)
	}

	return items, nil
}

func (t *dynamoTable[T]) Put(ctx context.Context, item *T) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("encode %s item: %w", t.tableName, err)
	}

	_, err = t.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(t.tableName),
		Item:      av,
	})
	return err
}

func (t *dynamoTable[T]) InsertIfAbsent(ctx context.Context, item *T) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("encode %s item: %w", t.tableName, err)
	}

	expr, err := expression.NewBuilder().
		WithCondition(expression.AttributeNotExists(expression.Name(t.keyAttr))).
		Build()
	if err != nil {
		return err
	}

	_, err = t.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(t.tableName),
		Item:                     av,
		ConditionExpression:      expr.Condition(),
		ExpressionAttributeNames: expr.Names(),
	})
	if isConditionalCheckFailed(err) {
		return ErrConditionFailed
	}
	return err
}

func (t *dynamoTable[T]) Update(ctx context.Context, key string, fields Fields) error {
	if len(fields) == 0 {
		return nil
	}

	names := sortedKeys(fields)
	update := expression.Set(expression.Name(names[0]), expression.Value(fields[names[0]]))
	for _, name := range names[1:] {
		update = update.Set(expression.Name(name), expression.Value(fields[name]))
	}

	expr, err := expression.NewBuilder().
		WithUpdate(update).
		WithCondition(expression.AttributeExists(expression.Name(t.keyAttr))).
		Build()
	if err != nil {
		return fmt.Errorf("build %s update: %w", t.tableName, err)
	}

	_, err = t.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(t.tableName),
		Key:                       t.key(key),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if isConditionalCheckFailed(err) {
		return ErrNotFound
	}
	return err
}

func (t *dynamoTable[T]) Delete(ctx context.Context, key string) error {
	_, err := t.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(t.tableName),
		Key:       t.key(key),
	})
	return err
}

func isConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return err != nil && errors.As(err, &ccf)
}

func sortedKeys[M ~map[string]any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
