package usecase

import (
	"context"
	"errors"
	"medibook/internal/domain/entities"
	"medibook/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidReviewRating = errors.New("invalid review rating")
)

// IReviewUseCase exposes doctor review operations.

type IReviewUseCase interface {
	AddReview(ctx context.Context, doctorID, patientID string, rating int, comment string) (entities.Review, error)
	ListByDoctorID(ctx context.Context, doctorID string) ([]entities.Review, error)
}

type ReviewUseCase struct {
	repo       interfaces.IReviewRepository
	doctorRepo interfaces.IDoctorRepository
}

var _ IReviewUseCase = (*ReviewUseCase)(nil)

func NewReviewUseCase(repo interfaces.IReviewRepository, doctorRepo interfaces.IDoctorRepository) *ReviewUseCase {
	return &ReviewUseCase{repo: repo, doctorRepo: doctorRepo}
}

func (u *ReviewUseCase) AddReview(ctx context.Context, doctorID, patientID string, rating int, comment string) (entities.Review, error) {
	doctorID = strings.TrimSpace(doctorID)
	if doctorID == "" {
		return entities.Review{}, ErrInvalidDoctorID
	}
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return entities.Review{}, ErrInvalidPatientID
	}
	if rating < 1 || rating > 5 {
		return entities.Review{}, ErrInvalidReviewRating
	}

	doctor, err := u.doctorRepo.GetByID(ctx, doctorID)
	if err != nil {
		return entities.Review{}, err
	}
	if doctor.ID == "" {
		return entities.Review{}, ErrDoctorNotFound
	}

	r := entities.Review{
		ID:        uuid.NewString(),
		DoctorID:  doctorID,
		PatientID: patientID,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
		CreatedAt: time.Now().UTC(),
	}
	return u.repo.Create(ctx, r)
}

func (u *ReviewUseCase) ListByDoctorID(ctx context.Context, doctorID string) ([]entities.Review, error) {
	doctorID = strings.TrimSpace(doctorID)
	if doctorID == "" {
		return nil, ErrInvalidDoctorID
	}
	return u.repo.ListByDoctorID(ctx, doctorID)
}
