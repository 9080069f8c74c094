package recordstore

import (
	"context"
	"reflect"
	"regexp"
	"sort"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var assignment = regexp.MustCompile(`(#\w+)\s*=\s*(:\w+)`)

// fakeDynamo keeps one table in memory. It understands the equality filters,
// SET updates and existence conditions the expression builder produces for
// this package, and pages scans so the paginator is exercised.
type fakeDynamo struct {
	mu       sync.Mutex
	keyAttr  string
	pageSize int
	items    map[string]map[string]types.AttributeValue
}

func newFakeDynamo(keyAttr string) *fakeDynamo {
	return &fakeDynamo{
		keyAttr:  keyAttr,
		pageSize: 2,
		items:    map[string]map[string]types.AttributeValue{},
	}
}

func (f *fakeDynamo) keyOf(item map[string]types.AttributeValue) string {
	if s, ok := item[f.keyAttr].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &dynamodb.GetItemOutput{Item: f.items[f.keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	k := f.keyOf(in.Item)
	if in.ConditionExpression != nil {
		if _, exists := f.items[k]; exists {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("conditional request failed")}
		}
	}
	f.items[k] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	keys := make([]string, 0, len(f.items))
	for k := range f.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	start := 0
	if in.ExclusiveStartKey != nil {
		last := f.keyOf(in.ExclusiveStartKey)
		start = sort.SearchStrings(keys, last) + 1
	}

	out := &dynamodb.ScanOutput{}
	end := start + f.pageSize
	if end < len(keys) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			f.keyAttr: &types.AttributeValueMemberS{Value: keys[end-1]},
		}
	} else {
		end = len(keys)
	}

	for _, k := range keys[start:end] {
		item := f.items[k]
		if in.FilterExpression != nil && !matches(item, *in.FilterExpression, in.ExpressionAttributeNames, in.ExpressionAttributeValues) {
			continue
		}
		out.Items = append(out.Items, item)
	}
	return out, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	item, exists := f.items[f.keyOf(in.Key)]
	if !exists {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("conditional request failed")}
	}

	for _, m := range assignment.FindAllStringSubmatch(aws.ToString(in.UpdateExpression), -1) {
		item[in.ExpressionAttributeNames[m[1]]] = in.ExpressionAttributeValues[m[2]]
	}
	return &dynamodb.UpdateItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, f.keyOf(in.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func matches(item map[string]types.AttributeValue, filter string, names map[string]string, values map[string]types.AttributeValue) bool {
	for _, m := range assignment.FindAllStringSubmatch(filter, -1) {
		if !reflect.DeepEqual(item[names[m[1]]], values[m[2]]) {
			return false
		}
	}
	return true
}

func TestDynamoTable(t *testing.T) {
	runTableContract(t, func(t *testing.T) Table[widget] {
		return NewDynamoTable[widget](newFakeDynamo("code"), "Widgets", "code")
	})
}

func TestDynamoTable_InsertIfAbsentSendsCondition(t *testing.T) {
	fake := &recordingDynamo{fakeDynamo: newFakeDynamo("code")}
	table := NewDynamoTable[widget](fake, "Widgets", "code")

	require.NoError(t, table.InsertIfAbsent(context.Background(), &widget{Code: "W-1"}))

	require.NotNil(t, fake.lastPut)
	assert.Equal(t, "Widgets", aws.ToString(fake.lastPut.TableName))
	assert.Contains(t, aws.ToString(fake.lastPut.ConditionExpression), "attribute_not_exists")
}

type recordingDynamo struct {
	*fakeDynamo
	lastPut *dynamodb.PutItemInput
}

func (r *recordingDynamo) PutItem(ctx context.Context, in *dynamodb.PutItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	r.lastPut = in
	return r.fakeDynamo.PutItem(ctx, in, opts...)
}
