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
	defaultAppointmentsTableName = "appointments"
	appointmentsDoctorIDIndex    = "doctor_id-index"
	appointmentsPatientIDIndex   = "patient_id-index"
)

type appointmentItem struct {
	ID            string `dynamodbav:"id"`
	DoctorID      string `dynamodbav:"doctor_id"`
	PatientID     string `dynamodbav:"patient_id"`
	PatientName   string `dynamodbav:"patient_name,omitempty"`
	SlotDate      string `dynamodbav:"slot_date"`
	SlotTime      string `dynamodbav:"slot_time"`
	Amount        string `dynamodbav:"amount"`
	Status        string `dynamodbav:"status"`
	PaymentStatus string `dynamodbav:"payment_status"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// AppointmentDynamoRepository persists Appointment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: doctor_id-index (PK: doctor_id)
//   - GSI: patient_id-index (PK: patient_id)

type AppointmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAppointmentRepository = (*AppointmentDynamoRepository)(nil)

func NewAppointmentDynamoRepository(ddb *dynamodb.Client) *AppointmentDynamoRepository {
	return &AppointmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("APPOINTMENTS_TABLE", defaultAppointmentsTableName),
	}
}

func (r *AppointmentDynamoRepository) Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	it := toAppointmentItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Appointment{}, err
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
		return entities.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Appointment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Appointment{}, nil
	}

	var it appointmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Appointment{}, err
	}
	return fromAppointmentItem(it), nil
}

func (r *AppointmentDynamoRepository) ListByDoctorID(ctx context.Context, doctorID string) ([]entities.Appointment, error) {
	return r.queryIndex(ctx, appointmentsDoctorIDIndex, "doctor_id = :v", doctorID)
}

func (r *AppointmentDynamoRepository) ListByPatientID(ctx context.Context, patientID string) ([]entities.Appointment, error) {
	return r.queryIndex(ctx, appointmentsPatientIDIndex, "patient_id = :v", patientID)
}

func (r *AppointmentDynamoRepository) queryIndex(ctx context.Context, index, keyCond, value string) ([]entities.Appointment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyCond),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Appointment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it appointmentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromAppointmentItem(it))
	}
	return items, nil
}

func (r *AppointmentDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus) (entities.Appointment, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *AppointmentDynamoRepository) UpdatePaymentStatus(ctx context.Context, id string, status entities.AppointmentPaymentStatus) (entities.Appointment, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #payment_status = :payment_status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":payment_status": &types.AttributeValueMemberS{Value: string(status)},
			":updated_at":     &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#payment_status": "payment_status",
			"#updated_at":     "updated_at",
		}
		return expr, vals, names
	})
}

func (r *AppointmentDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Appointment, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Appointment{}, nil
		}
		return entities.Appointment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Appointment{}, nil
	}

	var it appointmentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Appointment{}, err
	}
	return fromAppointmentItem(it), nil
}

func toAppointmentItem(a entities.Appointment) appointmentItem {
	return appointmentItem{
		ID:            a.ID,
		DoctorID:      a.DoctorID,
		PatientID:     a.PatientID,
		PatientName:   a.PatientName,
		SlotDate:      a.SlotDate,
		SlotTime:      a.SlotTime,
		Amount:        floatToString(a.Amount),
		Status:        string(a.Status),
		PaymentStatus: string(a.PaymentStatus),
		CreatedAt:     a.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     a.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAppointmentItem(it appointmentItem) entities.Appointment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.Appointment{
		ID:            it.ID,
		DoctorID:      it.DoctorID,
		PatientID:     it.PatientID,
		PatientName:   it.PatientName,
		SlotDate:      it.SlotDate,
		SlotTime:      it.SlotTime,
		Amount:        amount,
		Status:        entities.AppointmentStatus(it.Status),
		PaymentStatus: entities.AppointmentPaymentStatus(it.PaymentStatus),
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
