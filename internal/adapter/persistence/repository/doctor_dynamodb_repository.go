package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"medibook/internal/domain/entities"
	"medibook/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDoctorsTableName = "doctors"
	doctorsSpecialtyIndex   = "specialty-index"
)

type doctorItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Specialty string `dynamodbav:"specialty"`
	Fees      string `dynamodbav:"fees"`
	Available bool   `dynamodbav:"available"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// DoctorDynamoRepository persists Doctor entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: specialty-index (PK: specialty)

type DoctorDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDoctorRepository = (*DoctorDynamoRepository)(nil)

func NewDoctorDynamoRepository(ddb *dynamodb.Client) *DoctorDynamoRepository {
	return &DoctorDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DOCTORS_TABLE", defaultDoctorsTableName),
	}
}

func (r *DoctorDynamoRepository) Create(ctx context.Context, d entities.Doctor) (entities.Doctor, error) {
	it := toDoctorItem(d)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Doctor{}, err
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
		return entities.Doctor{}, err
	}
	return d, nil
}

func (r *DoctorDynamoRepository) GetByID(ctx context.Context, id string) (entities.Doctor, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Doctor{}, err
	}
	if len(out.Item) == 0 {
		return entities.Doctor{}, nil
	}

	var it doctorItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Doctor{}, err
	}
	return fromDoctorItem(it), nil
}

func (r *DoctorDynamoRepository) ListBySpecialty(ctx context.Context, specialty string) ([]entities.Doctor, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(doctorsSpecialtyIndex),
		KeyConditionExpression: aws.String("specialty = :spec"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":spec": &types.AttributeValueMemberS{Value: specialty},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Doctor, 0, len(out.Items))
	for _, raw := range out.Items {
		var it doctorItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromDoctorItem(it))
	}
	return items, nil
}

func (r *DoctorDynamoRepository) ListAll(ctx context.Context) ([]entities.Doctor, error) {
	items := make([]entities.Doctor, 0)

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it doctorItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromDoctorItem(it))
		}
	}
	return items, nil
}

func (r *DoctorDynamoRepository) UpdateAvailability(ctx context.Context, id string, available bool) (entities.Doctor, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #available = :available, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":available":  &types.AttributeValueMemberBOOL{Value: available},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#available":  "available",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Doctor{}, nil
		}
		return entities.Doctor{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Doctor{}, nil
	}

	var it doctorItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Doctor{}, err
	}
	return fromDoctorItem(it), nil
}

func toDoctorItem(d entities.Doctor) doctorItem {
	return doctorItem{
		ID:        d.ID,
		Name:      d.Name,
		Specialty: d.Specialty,
		Fees:      floatToString(d.Fees),
		Available: d.Available,
		CreatedAt: d.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: d.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromDoctorItem(it doctorItem) entities.Doctor {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	fees, _ := strconv.ParseFloat(it.Fees, 64)
	return entities.Doctor{
		ID:        it.ID,
		Name:      it.Name,
		Specialty: it.Specialty,
		Fees:      fees,
		Available: it.Available,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
