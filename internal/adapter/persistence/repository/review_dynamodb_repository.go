package repository

import (
	"context"
	"time"

	"medibook/internal/domain/entities"
	"medibook/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultReviewsTableName = "reviews"
	reviewsDoctorIDIndex    = "doctor_id-index"
)

type reviewItem struct {
	ID        string `dynamodbav:"id"`
	DoctorID  string `dynamodbav:"doctor_id"`
	PatientID string `dynamodbav:"patient_id"`
	Rating    int    `dynamodbav:"rating"`
	Comment   string `dynamodbav:"comment,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// ReviewDynamoRepository persists Review entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: doctor_id-index (PK: doctor_id)

type ReviewDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReviewRepository = (*ReviewDynamoRepository)(nil)

func NewReviewDynamoRepository(ddb *dynamodb.Client) *ReviewDynamoRepository {
	return &ReviewDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REVIEWS_TABLE", defaultReviewsTableName),
	}
}

func (r *ReviewDynamoRepository) Create(ctx context.Context, rev entities.Review) (entities.Review, error) {
	it := toReviewItem(rev)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Review{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Review{}, err
	}
	return rev, nil
}

func (r *ReviewDynamoRepository) ListByDoctorID(ctx context.Context, doctorID string) ([]entities.Review, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(reviewsDoctorIDIndex),
		KeyConditionExpression: aws.String("doctor_id = :did"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":did": &types.AttributeValueMemberS{Value: doctorID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Review, 0, len(out.Items))
	for _, raw := range out.Items {
		var it reviewItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromReviewItem(it))
	}
	return items, nil
}

func toReviewItem(r entities.Review) reviewItem {
	return reviewItem{
		ID:        r.ID,
		DoctorID:  r.DoctorID,
		PatientID: r.PatientID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromReviewItem(it reviewItem) entities.Review {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Review{
		ID:        it.ID,
		DoctorID:  it.DoctorID,
		PatientID: it.PatientID,
		Rating:    it.Rating,
		Comment:   it.Comment,
		CreatedAt: createdAt,
	}
}
