package repository

import (
	"context"

	"fellowship_escrow/internal/domain/entities"
	"fellowship_escrow/internal/infrastructure/logger"
	"fellowship_escrow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// maxTransactItems is the DynamoDB limit per TransactWriteItems call.
const maxTransactItems = 100

// MarketplaceDynamoTransactor implements the multi-document writes with
// TransactWriteItems, so each one is all-or-nothing.
type MarketplaceDynamoTransactor struct {
	ddb    DynamoAPI
	tables Tables
}

var _ interfaces.IMarketplaceTransactor = (*MarketplaceDynamoTransactor)(nil)

func NewMarketplaceDynamoTransactor(ddb DynamoAPI, tables Tables) *MarketplaceDynamoTransactor {
	return &MarketplaceDynamoTransactor{ddb: ddb, tables: tables.withDefaults()}
}

func (t *MarketplaceDynamoTransactor) SubmitProposal(ctx context.Context, p entities.Proposal) error {
	item, err := attributevalue.MarshalMap(toProposalItem(p))
	if err != nil {
		return err
	}
	_, err = t.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(t.tables.Proposals),
				Item:                     item,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Update: &types.Update{
				TableName:           aws.String(t.tables.Challenges),
				Key:                 idKey(p.ChallengeID),
				ConditionExpression: aws.String("attribute_exists(#id) AND #status = :open AND attribute_not_exists(#selection_token)"),
				UpdateExpression:    aws.String("SET #proposal_count = if_not_exists(#proposal_count, :zero) + :one, #updated_at = :at"),
				ExpressionAttributeNames: map[string]string{
					"#id":              "id",
					"#status":          "status",
					"#selection_token": "selection_token",
					"#proposal_count":  "proposal_count",
					"#updated_at":      "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":open": str(string(entities.ChallengeStatusOpen)),
					":zero": &types.AttributeValueMemberN{Value: "0"},
					":one":  &types.AttributeValueMemberN{Value: "1"},
					":at":   str(formatTime(p.CreatedAt)),
				},
			}},
		},
	})
	if err != nil {
		if cancelledAt(err, 0) {
			return interfaces.ErrAlreadyExists
		}
		if isTransactionConflict(err) {
			return interfaces.ErrConditionFailed
		}
		return storeErr("submit proposal", err)
	}
	return nil
}

// CommitAward writes room, winner, challenge and as many rejections as fit
// in one transaction. Rejections beyond the item limit follow as single
// conditional updates; by then the challenge is in_progress and no other
// proposal can be selected.
func (t *MarketplaceDynamoTransactor) CommitAward(ctx context.Context, a interfaces.AwardCommit) error {
	roomItem, err := attributevalue.MarshalMap(toProjectRoomItem(a.Room))
	if err != nil {
		return err
	}
	at := str(formatTime(a.At))

	items := []types.TransactWriteItem{
		{Put: &types.Put{
			TableName:                aws.String(t.tables.Rooms),
			Item:                     roomItem,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}},
		{Update: &types.Update{
			TableName:           aws.String(t.tables.Challenges),
			Key:                 idKey(a.ChallengeID),
			ConditionExpression: aws.String("#status = :open AND #selection_token = :token"),
			UpdateExpression:    aws.String("SET #status = :in_progress, #updated_at = :at REMOVE #selection_token, #selection_proposal_id, #selection_acquired_at, #locked"),
			ExpressionAttributeNames: map[string]string{
				"#status":                "status",
				"#updated_at":            "updated_at",
				"#selection_token":       "selection_token",
				"#selection_proposal_id": "selection_proposal_id",
				"#selection_acquired_at": "selection_acquired_at",
				"#locked":                "locked",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":open":        str(string(entities.ChallengeStatusOpen)),
				":in_progress": str(string(entities.ChallengeStatusInProgress)),
				":token":       str(a.SelectionToken),
				":at":          at,
			},
		}},
		{Update: &types.Update{
			TableName:           aws.String(t.tables.Proposals),
			Key:                 idKey(a.ProposalID),
			ConditionExpression: aws.String("#status = :pp AND #selection_token = :token"),
			UpdateExpression:    aws.String("SET #status = :selected, #updated_at = :at REMOVE #selection_token, #started"),
			ExpressionAttributeNames: map[string]string{
				"#status":          "status",
				"#updated_at":      "updated_at",
				"#selection_token": "selection_token",
				"#started":         "payment_started_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pp":       str(string(entities.ProposalStatusPaymentPending)),
				":selected": str(string(entities.ProposalStatusSelected)),
				":token":    str(a.SelectionToken),
				":at":       at,
			},
		}},
	}

	inline := a.RejectedProposalIDs
	var overflow []string
	if room := maxTransactItems - len(items); len(inline) > room {
		inline, overflow = inline[:room], inline[room:]
	}
	for _, id := range inline {
		items = append(items, types.TransactWriteItem{Update: t.rejectProposal(id, at)})
	}

	if _, err := t.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		if isTransactionConflict(err) {
			return interfaces.ErrConditionFailed
		}
		return storeErr("commit award", err)
	}

	for _, id := range overflow {
		u := t.rejectProposal(id, at)
		_, err := t.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName:                 u.TableName,
			Key:                       u.Key,
			ConditionExpression:       u.ConditionExpression,
			UpdateExpression:          u.UpdateExpression,
			ExpressionAttributeNames:  u.ExpressionAttributeNames,
			ExpressionAttributeValues: u.ExpressionAttributeValues,
		})
		if err != nil && !isConditionFailed(err) {
			logger.Error("[lifecycle][repository] reject overflow proposal failed",
				zap.String("challenge_id", a.ChallengeID),
				zap.String("proposal_id", id),
				zap.Error(err),
			)
		}
	}
	return nil
}

func (t *MarketplaceDynamoTransactor) rejectProposal(id string, at types.AttributeValue) *types.Update {
	return &types.Update{
		TableName:           aws.String(t.tables.Proposals),
		Key:                 idKey(id),
		ConditionExpression: aws.String("#status IN (:pending, :pp)"),
		UpdateExpression:    aws.String("SET #status = :rejected, #updated_at = :at REMOVE #selection_token, #started"),
		ExpressionAttributeNames: map[string]string{
			"#status":          "status",
			"#updated_at":      "updated_at",
			"#selection_token": "selection_token",
			"#started":         "payment_started_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":  str(string(entities.ProposalStatusPending)),
			":pp":       str(string(entities.ProposalStatusPaymentPending)),
			":rejected": str(string(entities.ProposalStatusRejected)),
			":at":       at,
		},
	}
}

func (t *MarketplaceDynamoTransactor) CommitEscrowDecision(ctx context.Context, s interfaces.EscrowSettlement) error {
	at := str(formatTime(s.At))
	roomUpdate := &types.Update{
		TableName:           aws.String(t.tables.Rooms),
		Key:                 idKey(s.RoomID),
		ConditionExpression: aws.String("#escrow_status = :held"),
		UpdateExpression:    aws.String("SET #escrow_status = :decided"),
		ExpressionAttributeNames: map[string]string{
			"#escrow_status": "escrow_status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":held":    str(string(entities.EscrowStatusHeld)),
			":decided": str(string(s.Decision.ResultingEscrowStatus())),
		},
	}
	items := []types.TransactWriteItem{{Update: roomUpdate}}

	if s.Decision == entities.EscrowDecisionRelease {
		roomUpdate.UpdateExpression = aws.String("SET #escrow_status = :decided, #status = :completed, #completed_at = :at")
		roomUpdate.ExpressionAttributeNames["#status"] = "status"
		roomUpdate.ExpressionAttributeNames["#completed_at"] = "completed_at"
		roomUpdate.ExpressionAttributeValues[":completed"] = str(string(entities.RoomStatusCompleted))
		roomUpdate.ExpressionAttributeValues[":at"] = at

		items = append(items, types.TransactWriteItem{Update: &types.Update{
			TableName:           aws.String(t.tables.Challenges),
			Key:                 idKey(s.ChallengeID),
			ConditionExpression: aws.String("#status = :in_progress"),
			UpdateExpression:    aws.String("SET #status = :completed, #updated_at = :at"),
			ExpressionAttributeNames: map[string]string{
				"#status":     "status",
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":in_progress": str(string(entities.ChallengeStatusInProgress)),
				":completed":   str(string(entities.ChallengeStatusCompleted)),
				":at":          at,
			},
		}})
	}

	if _, err := t.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		if isTransactionConflict(err) {
			return interfaces.ErrConditionFailed
		}
		return storeErr("commit escrow decision", err)
	}
	return nil
}
