package repository

import (
	"context"

	"fellowship_escrow/internal/domain/entities"
	"fellowship_escrow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	messageGuardPrefix = "id#"
	// Every timestamp seq sorts inside [seqLowerBound, seqUpperBound]; guard
	// items ("id#...") sort after it.
	seqLowerBound = "0"
	seqUpperBound = "9"
)

type roomMessageItem struct {
	RoomID         string `dynamodbav:"room_id"`
	Seq            string `dynamodbav:"seq"`
	ID             string `dynamodbav:"id"`
	SenderID       string `dynamodbav:"sender_id"`
	SenderRole     string `dynamodbav:"sender_role"`
	Type           string `dynamodbav:"type"`
	Content        string `dynamodbav:"content"`
	AttachmentURL  string `dynamodbav:"attachment_url,omitempty"`
	AttachmentName string `dynamodbav:"attachment_name,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// RoomMessageDynamoRepository is the append-only message log.
//
// Table requirements:
//   - PK: room_id (string)
//   - SK: seq (string)
//
// Each message is written twice in one transaction: under its seq, which
// gives the (created_at, id) order, and under "id#<id>", which makes the id
// unique per room and serves GetByID.
type RoomMessageDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IRoomMessageRepository = (*RoomMessageDynamoRepository)(nil)

func NewRoomMessageDynamoRepository(ddb DynamoAPI, tableName string) *RoomMessageDynamoRepository {
	return &RoomMessageDynamoRepository{ddb: ddb, tableName: tableOr(tableName, "room_messages")}
}

func (r *RoomMessageDynamoRepository) Append(ctx context.Context, m entities.RoomMessage) (entities.RoomMessage, error) {
	it := toRoomMessageItem(m)
	msg, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.RoomMessage{}, err
	}
	it.Seq = messageGuardPrefix + m.ID
	guard, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.RoomMessage{}, err
	}

	notExists := aws.String("attribute_not_exists(#seq)")
	names := map[string]string{"#seq": "seq"}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{TableName: aws.String(r.tableName), Item: guard, ConditionExpression: notExists, ExpressionAttributeNames: names}},
			{Put: &types.Put{TableName: aws.String(r.tableName), Item: msg, ConditionExpression: notExists, ExpressionAttributeNames: names}},
		},
	})
	if err != nil {
		if cancelledAt(err, 0) {
			return entities.RoomMessage{}, interfaces.ErrAlreadyExists
		}
		return entities.RoomMessage{}, storeErr("append message", err)
	}
	return m, nil
}

func (r *RoomMessageDynamoRepository) GetByID(ctx context.Context, roomID, id string) (entities.RoomMessage, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"room_id": str(roomID),
			"seq":     str(messageGuardPrefix + id),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RoomMessage{}, storeErr("get message", err)
	}
	if len(out.Item) == 0 {
		return entities.RoomMessage{}, nil
	}
	var it roomMessageItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RoomMessage{}, err
	}
	return fromRoomMessageItem(it), nil
}

func (r *RoomMessageDynamoRepository) ListByRoom(ctx context.Context, roomID, afterSeq string) ([]entities.RoomMessage, error) {
	from := seqLowerBound
	if afterSeq != "" {
		from = afterSeq
	}
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("room_id = :room AND #seq BETWEEN :from AND :to"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":room": str(roomID),
			":from": str(from),
			":to":   str(seqUpperBound),
		},
		ConsistentRead:   aws.Bool(true),
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, storeErr("list messages", err)
	}
	out := make([]entities.RoomMessage, 0, len(raw))
	for _, item := range raw {
		var it roomMessageItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		if it.Seq == afterSeq {
			continue
		}
		out = append(out, fromRoomMessageItem(it))
	}
	return out, nil
}

func toRoomMessageItem(m entities.RoomMessage) roomMessageItem {
	it := roomMessageItem{
		RoomID:     m.RoomID,
		Seq:        m.Seq(),
		ID:         m.ID,
		SenderID:   m.SenderID,
		SenderRole: string(m.SenderRole),
		Type:       string(m.Type),
		Content:    m.Content,
		CreatedAt:  formatTime(m.CreatedAt),
	}
	if m.Attachment != nil {
		it.AttachmentURL = m.Attachment.URL
		it.AttachmentName = m.Attachment.Name
	}
	return it
}

func fromRoomMessageItem(it roomMessageItem) entities.RoomMessage {
	m := entities.RoomMessage{
		ID:         it.ID,
		RoomID:     it.RoomID,
		SenderID:   it.SenderID,
		SenderRole: entities.ParticipantRole(it.SenderRole),
		Type:       entities.MessageType(it.Type),
		Content:    it.Content,
		CreatedAt:  parseTime(it.CreatedAt),
	}
	if it.AttachmentURL != "" {
		m.Attachment = &entities.Attachment{URL: it.AttachmentURL, Name: it.AttachmentName}
	}
	return m
}
