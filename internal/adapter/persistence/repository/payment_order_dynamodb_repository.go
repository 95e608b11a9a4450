package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"fellowship_escrow/internal/domain/entities"
	"fellowship_escrow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const paymentOrdersProposalIDIndex = "proposal_id-index"

type paymentOrderItem struct {
	ID                 string `dynamodbav:"id"`
	ChallengeID        string `dynamodbav:"challenge_id"`
	ProposalID         string `dynamodbav:"proposal_id"`
	SelectionToken     string `dynamodbav:"selection_token"`
	Amount             int64  `dynamodbav:"amount"`
	Currency           string `dynamodbav:"currency"`
	Status             string `dynamodbav:"status"`
	ProviderRef        string `dynamodbav:"provider_ref,omitempty"`
	CheckoutURL        string `dynamodbav:"checkout_url,omitempty"`
	RoomID             string `dynamodbav:"room_id,omitempty"`
	FailureReason      string `dynamodbav:"failure_reason,omitempty"`
	ProviderPayloadRaw string `dynamodbav:"provider_payload_raw,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// PaymentOrderDynamoRepository persists PaymentOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: proposal_id-index (PK: proposal_id)
type PaymentOrderDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentOrderRepository = (*PaymentOrderDynamoRepository)(nil)

func NewPaymentOrderDynamoRepository(ddb DynamoAPI, tableName string) *PaymentOrderDynamoRepository {
	return &PaymentOrderDynamoRepository{ddb: ddb, tableName: tableOr(tableName, "payment_orders")}
}

func (r *PaymentOrderDynamoRepository) Create(ctx context.Context, o entities.PaymentOrder) (entities.PaymentOrder, error) {
	av, err := attributevalue.MarshalMap(toPaymentOrderItem(o))
	if err != nil {
		return entities.PaymentOrder{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.PaymentOrder{}, interfaces.ErrAlreadyExists
		}
		return entities.PaymentOrder{}, storeErr("put payment order", err)
	}
	return o, nil
}

func (r *PaymentOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentOrder{}, storeErr("get payment order", err)
	}
	if len(out.Item) == 0 {
		return entities.PaymentOrder{}, nil
	}
	var it paymentOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentOrder{}, err
	}
	return fromPaymentOrderItem(it), nil
}

func (r *PaymentOrderDynamoRepository) ListByProposalID(ctx context.Context, proposalID string) ([]entities.PaymentOrder, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentOrdersProposalIDIndex),
		KeyConditionExpression: aws.String("proposal_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": str(proposalID),
		},
	})
	if err != nil {
		return nil, storeErr("query payment orders", err)
	}
	items := make([]entities.PaymentOrder, 0, len(raw))
	for _, item := range raw {
		var it paymentOrderItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentOrderItem(it))
	}
	return items, nil
}

func (r *PaymentOrderDynamoRepository) Transition(
	ctx context.Context,
	id string,
	from []entities.PaymentOrderStatus,
	to entities.PaymentOrderStatus,
	patch interfaces.PaymentOrderPatch,
	at time.Time,
) (entities.PaymentOrder, bool, error) {
	if len(from) == 0 {
		return entities.PaymentOrder{}, false, nil
	}

	names := map[string]string{"#id": "id", "#status": "status", "#updated_at": "updated_at"}
	values := map[string]types.AttributeValue{
		":to":         str(string(to)),
		":updated_at": str(formatTime(at)),
	}
	placeholders := make([]string, 0, len(from))
	for i, s := range from {
		key := fmt.Sprintf(":from%d", i)
		values[key] = str(string(s))
		placeholders = append(placeholders, key)
	}

	sets := []string{"#status = :to", "#updated_at = :updated_at"}
	setIf := func(attr, value string) {
		if value == "" {
			return
		}
		names["#"+attr] = attr
		values[":"+attr] = str(value)
		sets = append(sets, "#"+attr+" = :"+attr)
	}
	setIf("provider_ref", patch.ProviderRef)
	setIf("checkout_url", patch.CheckoutURL)
	setIf("room_id", patch.RoomID)
	setIf("failure_reason", patch.FailureReason)
	setIf("provider_payload_raw", string(patch.ProviderPayloadRaw))

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status IN (" + strings.Join(placeholders, ", ") + ")"),
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.PaymentOrder{}, false, nil
		}
		return entities.PaymentOrder{}, false, storeErr("transition payment order", err)
	}
	var it paymentOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentOrder{}, true, err
	}
	return fromPaymentOrderItem(it), true, nil
}

func toPaymentOrderItem(o entities.PaymentOrder) paymentOrderItem {
	return paymentOrderItem{
		ID:                 o.ID,
		ChallengeID:        o.ChallengeID,
		ProposalID:         o.ProposalID,
		SelectionToken:     o.SelectionToken,
		Amount:             o.Amount,
		Currency:           o.Currency,
		Status:             string(o.Status),
		ProviderRef:        o.ProviderRef,
		CheckoutURL:        o.CheckoutURL,
		RoomID:             o.RoomID,
		FailureReason:      o.FailureReason,
		ProviderPayloadRaw: string(o.ProviderPayloadRaw),
		CreatedAt:          formatTime(o.CreatedAt),
		UpdatedAt:          formatTime(o.UpdatedAt),
	}
}

func fromPaymentOrderItem(it paymentOrderItem) entities.PaymentOrder {
	o := entities.PaymentOrder{
		ID:             it.ID,
		ChallengeID:    it.ChallengeID,
		ProposalID:     it.ProposalID,
		SelectionToken: it.SelectionToken,
		Amount:         it.Amount,
		Currency:       it.Currency,
		Status:         entities.PaymentOrderStatus(it.Status),
		ProviderRef:    it.ProviderRef,
		CheckoutURL:    it.CheckoutURL,
		RoomID:         it.RoomID,
		FailureReason:  it.FailureReason,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
	if it.ProviderPayloadRaw != "" {
		o.ProviderPayloadRaw = json.RawMessage(it.ProviderPayloadRaw)
	}
	return o
}
