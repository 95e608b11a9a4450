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
	challengesLockedIndex = "locked-index"
	lockedMarker          = "1"
)

type challengeItem struct {
	ID                  string `dynamodbav:"id"`
	CorporateID         string `dynamodbav:"corporate_id"`
	Title               string `dynamodbav:"title"`
	Description         string `dynamodbav:"description"`
	Price               int64  `dynamodbav:"price"`
	Currency            string `dynamodbav:"currency"`
	Status              string `dynamodbav:"status"`
	Deadline            string `dynamodbav:"deadline"`
	ProposalCount       int    `dynamodbav:"proposal_count"`
	SelectionToken      string `dynamodbav:"selection_token,omitempty"`
	SelectionProposalID string `dynamodbav:"selection_proposal_id,omitempty"`
	SelectionAcquiredAt string `dynamodbav:"selection_acquired_at,omitempty"`
	Locked              string `dynamodbav:"locked,omitempty"`
	CreatedAt           string `dynamodbav:"created_at"`
	UpdatedAt           string `dynamodbav:"updated_at"`
}

// ChallengeDynamoRepository persists Challenge entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: locked-index (PK: locked, SK: selection_acquired_at), sparse;
//     only challenges with a selection in flight carry "locked".
type ChallengeDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IChallengeRepository = (*ChallengeDynamoRepository)(nil)

func NewChallengeDynamoRepository(ddb DynamoAPI, tableName string) *ChallengeDynamoRepository {
	return &ChallengeDynamoRepository{ddb: ddb, tableName: tableOr(tableName, "challenges")}
}

func (r *ChallengeDynamoRepository) Create(ctx context.Context, c entities.Challenge) (entities.Challenge, error) {
	av, err := attributevalue.MarshalMap(toChallengeItem(c))
	if err != nil {
		return entities.Challenge{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Challenge{}, interfaces.ErrAlreadyExists
		}
		return entities.Challenge{}, storeErr("put challenge", err)
	}
	return c, nil
}

func (r *ChallengeDynamoRepository) GetByID(ctx context.Context, id string) (entities.Challenge, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Challenge{}, storeErr("get challenge", err)
	}
	if len(out.Item) == 0 {
		return entities.Challenge{}, nil
	}
	var it challengeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Challenge{}, err
	}
	return fromChallengeItem(it), nil
}

func (r *ChallengeDynamoRepository) AcquireSelection(ctx context.Context, id string, lock entities.SelectionLock) (bool, error) {
	_, ok, err := r.update(ctx, id,
		"#status = :open AND attribute_not_exists(#selection_token)",
		"SET #selection_token = :token, #selection_proposal_id = :proposal_id, #selection_acquired_at = :acquired_at, #locked = :locked, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":open":        str(string(entities.ChallengeStatusOpen)),
			":token":       str(lock.Token),
			":proposal_id": str(lock.ProposalID),
			":acquired_at": str(formatTime(lock.AcquiredAt)),
			":locked":      str(lockedMarker),
			":updated_at":  str(formatTime(lock.AcquiredAt)),
		},
		map[string]string{
			"#status":                "status",
			"#selection_token":       "selection_token",
			"#selection_proposal_id": "selection_proposal_id",
			"#selection_acquired_at": "selection_acquired_at",
			"#locked":                "locked",
			"#updated_at":            "updated_at",
		},
	)
	return ok, err
}

func (r *ChallengeDynamoRepository) ReleaseSelection(ctx context.Context, id, token string) (bool, error) {
	_, ok, err := r.update(ctx, id,
		"#selection_token = :token",
		"REMOVE #selection_token, #selection_proposal_id, #selection_acquired_at, #locked",
		map[string]types.AttributeValue{":token": str(token)},
		map[string]string{
			"#selection_token":       "selection_token",
			"#selection_proposal_id": "selection_proposal_id",
			"#selection_acquired_at": "selection_acquired_at",
			"#locked":                "locked",
		},
	)
	return ok, err
}

func (r *ChallengeDynamoRepository) Cancel(ctx context.Context, id string, at time.Time) (entities.Challenge, bool, error) {
	return r.update(ctx, id,
		"#status = :open AND attribute_not_exists(#selection_token)",
		"SET #status = :cancelled, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":open":       str(string(entities.ChallengeStatusOpen)),
			":cancelled":  str(string(entities.ChallengeStatusCancelled)),
			":updated_at": str(formatTime(at)),
		},
		map[string]string{
			"#status":          "status",
			"#selection_token": "selection_token",
			"#updated_at":      "updated_at",
		},
	)
}

func (r *ChallengeDynamoRepository) ListWithSelectionBefore(ctx context.Context, cutoff time.Time) ([]entities.Challenge, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(challengesLockedIndex),
		KeyConditionExpression: aws.String("#locked = :locked AND #acquired_at < :cutoff"),
		ExpressionAttributeNames: map[string]string{
			"#locked":      "locked",
			"#acquired_at": "selection_acquired_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":locked": str(lockedMarker),
			":cutoff": str(formatTime(cutoff)),
		},
	})
	if err != nil {
		return nil, storeErr("query locked challenges", err)
	}
	out := make([]entities.Challenge, 0, len(raw))
	for _, item := range raw {
		var it challengeItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		out = append(out, fromChallengeItem(it))
	}
	return out, nil
}

// update applies a conditional UpdateItem on an existing challenge. A failed
// condition is reported as ok=false.
func (r *ChallengeDynamoRepository) update(
	ctx context.Context,
	id, condition, updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Challenge, bool, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id) AND " + condition),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Challenge{}, false, nil
		}
		return entities.Challenge{}, false, storeErr("update challenge", err)
	}
	var it challengeItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Challenge{}, true, err
	}
	return fromChallengeItem(it), true, nil
}

func toChallengeItem(c entities.Challenge) challengeItem {
	it := challengeItem{
		ID:            c.ID,
		CorporateID:   c.CorporateID,
		Title:         c.Title,
		Description:   c.Description,
		Price:         c.Price,
		Currency:      c.Currency,
		Status:        string(c.Status),
		Deadline:      formatTime(c.Deadline),
		ProposalCount: c.ProposalCount,
		CreatedAt:     formatTime(c.CreatedAt),
		UpdatedAt:     formatTime(c.UpdatedAt),
	}
	if c.Selection != nil {
		it.SelectionToken = c.Selection.Token
		it.SelectionProposalID = c.Selection.ProposalID
		it.SelectionAcquiredAt = formatTime(c.Selection.AcquiredAt)
		it.Locked = lockedMarker
	}
	return it
}

func fromChallengeItem(it challengeItem) entities.Challenge {
	c := entities.Challenge{
		ID:            it.ID,
		CorporateID:   it.CorporateID,
		Title:         it.Title,
		Description:   it.Description,
		Price:         it.Price,
		Currency:      it.Currency,
		Status:        entities.ChallengeStatus(it.Status),
		Deadline:      parseTime(it.Deadline),
		ProposalCount: it.ProposalCount,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
	if it.SelectionToken != "" {
		c.Selection = &entities.SelectionLock{
			Token:      it.SelectionToken,
			ProposalID: it.SelectionProposalID,
			AcquiredAt: parseTime(it.SelectionAcquiredAt),
		}
	}
	return c
}
