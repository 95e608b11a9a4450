package repository

import (
	"context"
	"errors"
	"time"

	"fellowship_escrow/internal/domain/entities"
	"fellowship_escrow/internal/domain/errs"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the slice of *dynamodb.Client the repositories use.
type DynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// Tables names every table the repositories touch.
type Tables struct {
	Challenges    string
	Proposals     string
	Rooms         string
	Messages      string
	PaymentOrders string
}

func (t Tables) withDefaults() Tables {
	t.Challenges = tableOr(t.Challenges, "challenges")
	t.Proposals = tableOr(t.Proposals, "proposals")
	t.Rooms = tableOr(t.Rooms, "project_rooms")
	t.Messages = tableOr(t.Messages, "room_messages")
	t.PaymentOrders = tableOr(t.PaymentOrders, "payment_orders")
	return t
}

func tableOr(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

// formatTime uses a fixed-width layout so that string order on sort keys
// equals time order.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(entities.SeqTimeLayout)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(entities.SeqTimeLayout, s)
	if err != nil {
		t, _ = time.Parse(time.RFC3339Nano, s)
	}
	return t
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTime(s)
	return &t
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func isConditionFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

// cancelledAt reports whether a cancelled transaction failed its condition
// on item i.
func cancelledAt(err error, i int) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) || i >= len(tce.CancellationReasons) {
		return false
	}
	code := tce.CancellationReasons[i].Code
	return code != nil && *code == "ConditionalCheckFailed"
}

func isTransactionConflict(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, r := range tce.CancellationReasons {
		if r.Code != nil && (*r.Code == "ConditionalCheckFailed" || *r.Code == "TransactionConflict") {
			return true
		}
	}
	return false
}

// storeErr marks an unexpected DynamoDB failure as the store being
// unavailable.
func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return errs.Unavailable("dynamodb "+op, err)
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

func str(v string) *types.AttributeValueMemberS {
	return &types.AttributeValueMemberS{Value: v}
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"id": str(id)}
}

// queryAll follows LastEvaluatedKey until the query is exhausted.
func queryAll(ctx context.Context, ddb DynamoAPI, in *dynamodb.QueryInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	for {
		out, err := ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}
