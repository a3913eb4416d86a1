package interfaces

import (
	"context"
	"medibook/internal/domain/entities"
)

// IReviewRepository abstracts DynamoDB persistence for Review.

type IReviewRepository interface {
	Create(ctx context.Context, r entities.Review) (entities.Review, error)
	ListByDoctorID(ctx context.Context, doctorID string) ([]entities.Review, error)
}
