package repository

import (
	"context"

	"fellowship_escrow/internal/domain/entities"
	"fellowship_escrow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type projectRoomItem struct {
	ID           string `dynamodbav:"id"`
	ChallengeID  string `dynamodbav:"challenge_id"`
	ProposalID   string `dynamodbav:"proposal_id"`
	StudentID    string `dynamodbav:"student_id"`
	CorporateID  string `dynamodbav:"corporate_id"`
	EscrowAmount int64  `dynamodbav:"escrow_amount"`
	Currency     string `dynamodbav:"currency"`
	EscrowStatus string `dynamodbav:"escrow_status"`
	Status       string `dynamodbav:"status"`
	OrderID      string `dynamodbav:"order_id,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	CompletedAt  string `dynamodbav:"completed_at,omitempty"`
}

// ProjectRoomDynamoRepository reads rooms; MarketplaceDynamoTransactor
// writes them.
//
// Table requirements:
//   - PK: id (string)
type ProjectRoomDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IProjectRoomRepository = (*ProjectRoomDynamoRepository)(nil)

func NewProjectRoomDynamoRepository(ddb DynamoAPI, tableName string) *ProjectRoomDynamoRepository {
	return &ProjectRoomDynamoRepository{ddb: ddb, tableName: tableOr(tableName, "project_rooms")}
}

func (r *ProjectRoomDynamoRepository) GetByID(ctx context.Context, id string) (entities.ProjectRoom, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ProjectRoom{}, storeErr("get room", err)
	}
	if len(out.Item) == 0 {
		return entities.ProjectRoom{}, nil
	}
	var it projectRoomItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ProjectRoom{}, err
	}
	return fromProjectRoomItem(it), nil
}

func toProjectRoomItem(r entities.ProjectRoom) projectRoomItem {
	return projectRoomItem{
		ID:           r.ID,
		ChallengeID:  r.ChallengeID,
		ProposalID:   r.ProposalID,
		StudentID:    r.StudentID,
		CorporateID:  r.CorporateID,
		EscrowAmount: r.EscrowAmount,
		Currency:     r.Currency,
		EscrowStatus: string(r.EscrowStatus),
		Status:       string(r.Status),
		OrderID:      r.OrderID,
		CreatedAt:    formatTime(r.CreatedAt),
		CompletedAt:  formatTimePtr(r.CompletedAt),
	}
}

func fromProjectRoomItem(it projectRoomItem) entities.ProjectRoom {
	return entities.ProjectRoom{
		ID:           it.ID,
		ChallengeID:  it.ChallengeID,
		ProposalID:   it.ProposalID,
		StudentID:    it.StudentID,
		CorporateID:  it.CorporateID,
		EscrowAmount: it.EscrowAmount,
		Currency:     it.Currency,
		EscrowStatus: entities.EscrowStatus(it.EscrowStatus),
		Status:       entities.RoomStatus(it.Status),
		OrderID:      it.OrderID,
		CreatedAt:    parseTime(it.CreatedAt),
		CompletedAt:  parseTimePtr(it.CompletedAt),
	}
}
