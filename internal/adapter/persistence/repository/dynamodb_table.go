package repository

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// DynamoAPI is the subset of the DynamoDB client used by the repositories.
// *dynamodb.Client satisfies it.
type DynamoAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// dynamoTable holds the generic item operations shared by every entity
// table. Items are keyed by "id" and carry a "created_at" RFC3339 string.
type dynamoTable[I any] struct {
	ddb       DynamoAPI
	tableName string
	createdAt func(I) string
}

func (t dynamoTable[I]) key(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func (t dynamoTable[I]) put(ctx context.Context, it I) error {
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}
	_, err = t.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(t.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func (t dynamoTable[I]) get(ctx context.Context, id string) (I, bool, error) {
	var it I
	out, err := t.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(t.tableName),
		Key:            t.key(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return it, false, err
	}
	if len(out.Item) == 0 {
		return it, false, nil
	}
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return it, false, err
	}
	return it, true, nil
}

// scan reads the whole table, following pagination, and returns the items
// newest first. An optional filter narrows the scan server side.
func (t dynamoTable[I]) scan(ctx context.Context, filter *scanFilter) ([]I, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(t.tableName)}
	if filter != nil {
		in.FilterExpression = aws.String("#f = :v")
		in.ExpressionAttributeNames = map[string]string{"#f": filter.attr}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: filter.value},
		}
	}

	var items []I
	for {
		out, err := t.ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		var page []I
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		items = append(items, page...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}

	sort.SliceStable(items, func(i, j int) bool {
		return parseTime(t.createdAt(items[i])).After(parseTime(t.createdAt(items[j])))
	})
	return items, nil
}

type scanFilter struct {
	attr  string
	value string
}

// update applies the expression to an existing item. A missing item is
// reported as found=false.
func (t dynamoTable[I]) update(ctx context.Context, id string, u *updateBuilder) (I, bool, error) {
	var it I
	out, err := t.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(t.tableName),
		Key:                       t.key(id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(u.expression()),
		ExpressionAttributeValues: u.values,
		ExpressionAttributeNames:  mergeNames(u.names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return it, false, nil
		}
		return it, false, err
	}
	if len(out.Attributes) == 0 {
		return it, false, nil
	}
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return it, false, err
	}
	return it, true, nil
}

func (t dynamoTable[I]) delete(ctx context.Context, id string) error {
	_, err := t.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(t.tableName),
		Key:       t.key(id),
	})
	return err
}

// deleteWhere removes every item whose attribute equals value.
func (t dynamoTable[I]) deleteWhere(ctx context.Context, attr, value string, idOf func(I) string) error {
	items, err := t.scan(ctx, &scanFilter{attr: attr, value: value})
	if err != nil {
		return err
	}
	for _, it := range items {
		if err := t.delete(ctx, idOf(it)); err != nil {
			return err
		}
	}
	return nil
}

// updateBuilder collects SET and REMOVE clauses for an UpdateItem call.
type updateBuilder struct {
	sets    []string
	removes []string
	names   map[string]string
	values  map[string]types.AttributeValue
}

func newUpdateBuilder() *updateBuilder {
	return &updateBuilder{
		names:  map[string]string{},
		values: map[string]types.AttributeValue{},
	}
}

func (u *updateBuilder) set(attr, value string) *updateBuilder {
	u.names["#"+attr] = attr
	u.values[":"+attr] = &types.AttributeValueMemberS{Value: value}
	u.sets = append(u.sets, "#"+attr+" = :"+attr)
	return u
}

// setOptional sets the attribute when value is non-nil and removes it
// otherwise.
func (u *updateBuilder) setOptional(attr string, value *string) *updateBuilder {
	if value != nil {
		return u.set(attr, *value)
	}
	u.names["#"+attr] = attr
	u.removes = append(u.removes, "#"+attr)
	return u
}

func (u *updateBuilder) expression() string {
	expr := ""
	if len(u.sets) > 0 {
		expr = "SET " + strings.Join(u.sets, ", ")
	}
	if len(u.removes) > 0 {
		if expr != "" {
			expr += " "
		}
		expr += "REMOVE " + strings.Join(u.removes, ", ")
	}
	return expr
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

// parseDecimal decodes a stored amount. Missing or unparsable values
// count as zero.
func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
