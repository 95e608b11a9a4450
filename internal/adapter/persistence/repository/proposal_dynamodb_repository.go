package repository

import (
	"context"
	"time"

	"fellowship_escrow/internal/domain/entities"
	"fellowship_escrow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	proposalsChallengeIDIndex = "challenge_id-index"
	proposalsStatusIndex      = "status-index"
)

type proposalItem struct {
	ID               string `dynamodbav:"id"`
	ChallengeID      string `dynamodbav:"challenge_id"`
	StudentID        string `dynamodbav:"student_id"`
	CoverLetter      string `dynamodbav:"cover_letter"`
	Status           string `dynamodbav:"status"`
	SelectionToken   string `dynamodbav:"selection_token,omitempty"`
	PaymentStartedAt string `dynamodbav:"payment_started_at,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// ProposalDynamoRepository persists Proposal entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: challenge_id-index (PK: challenge_id, SK: created_at)
//   - GSI: status-index (PK: status, SK: payment_started_at), sparse on the
//     sort key so only payment_pending proposals are indexed
type ProposalDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb DynamoAPI, tableName string) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{ddb: ddb, tableName: tableOr(tableName, "proposals")}
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proposal{}, storeErr("get proposal", err)
	}
	if len(out.Item) == 0 {
		return entities.Proposal{}, nil
	}
	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func (r *ProposalDynamoRepository) ListByChallengeID(ctx context.Context, challengeID string) ([]entities.Proposal, error) {
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(proposalsChallengeIDIndex),
		KeyConditionExpression: aws.String("challenge_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": str(challengeID),
		},
	})
}

func (r *ProposalDynamoRepository) ListPaymentPendingBefore(ctx context.Context, cutoff time.Time) ([]entities.Proposal, error) {
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(proposalsStatusIndex),
		KeyConditionExpression: aws.String("#status = :pp AND #started < :cutoff"),
		ExpressionAttributeNames: map[string]string{
			"#status":  "status",
			"#started": "payment_started_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pp":     str(string(entities.ProposalStatusPaymentPending)),
			":cutoff": str(formatTime(cutoff)),
		},
	})
}

func (r *ProposalDynamoRepository) MarkPaymentPending(ctx context.Context, id, token string, at time.Time) (bool, error) {
	return r.update(ctx, id,
		"#status = :pending",
		"SET #status = :pp, #selection_token = :token, #started = :at, #updated_at = :at",
		map[string]types.AttributeValue{
			":pending": str(string(entities.ProposalStatusPending)),
			":pp":      str(string(entities.ProposalStatusPaymentPending)),
			":token":   str(token),
			":at":      str(formatTime(at)),
		},
		map[string]string{
			"#status":          "status",
			"#selection_token": "selection_token",
			"#started":         "payment_started_at",
			"#updated_at":      "updated_at",
		},
	)
}

func (r *ProposalDynamoRepository) RevertPaymentPending(ctx context.Context, id, token string, at time.Time) (bool, error) {
	return r.update(ctx, id,
		"#status = :pp AND #selection_token = :token",
		"SET #status = :pending, #updated_at = :at REMOVE #selection_token, #started",
		map[string]types.AttributeValue{
			":pending": str(string(entities.ProposalStatusPending)),
			":pp":      str(string(entities.ProposalStatusPaymentPending)),
			":token":   str(token),
			":at":      str(formatTime(at)),
		},
		map[string]string{
			"#status":          "status",
			"#selection_token": "selection_token",
			"#started":         "payment_started_at",
			"#updated_at":      "updated_at",
		},
	)
}

func (r *ProposalDynamoRepository) update(
	ctx context.Context,
	id, condition, updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id) AND " + condition),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
	})
	if err != nil {
		if isConditionFailed(err) {
			return false, nil
		}
		return false, storeErr("update proposal", err)
	}
	return true, nil
}

func (r *ProposalDynamoRepository) query(ctx context.Context, in *dynamodb.QueryInput) ([]entities.Proposal, error) {
	raw, err := queryAll(ctx, r.ddb, in)
	if err != nil {
		return nil, storeErr("query proposals", err)
	}
	items := make([]entities.Proposal, 0, len(raw))
	for _, item := range raw {
		var it proposalItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		items = append(items, fromProposalItem(it))
	}
	return items, nil
}

func toProposalItem(p entities.Proposal) proposalItem {
	return proposalItem{
		ID:               p.ID,
		ChallengeID:      p.ChallengeID,
		StudentID:        p.StudentID,
		CoverLetter:      p.CoverLetter,
		Status:           string(p.Status),
		SelectionToken:   p.SelectionToken,
		PaymentStartedAt: formatTimePtr(p.PaymentStartedAt),
		CreatedAt:        formatTime(p.CreatedAt),
		UpdatedAt:        formatTime(p.UpdatedAt),
	}
}

func fromProposalItem(it proposalItem) entities.Proposal {
	return entities.Proposal{
		ID:               it.ID,
		ChallengeID:      it.ChallengeID,
		StudentID:        it.StudentID,
		CoverLetter:      it.CoverLetter,
		Status:           entities.ProposalStatus(it.Status),
		SelectionToken:   it.SelectionToken,
		PaymentStartedAt: parseTimePtr(it.PaymentStartedAt),
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
