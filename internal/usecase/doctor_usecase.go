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
	ErrDoctorNotFound         = errors.New("doctor not found")
	ErrInvalidDoctorID        = errors.New("invalid doctor id")
	ErrInvalidDoctorName      = errors.New("invalid doctor name")
	ErrInvalidDoctorSpecialty = errors.New("invalid doctor specialty")
	ErrInvalidDoctorFees      = errors.New("invalid doctor fees")
)

// IDoctorUseCase exposes doctor catalog operations used by the admin panel
// and the public listing.

type IDoctorUseCase interface {
	RegisterDoctor(ctx context.Context, name, specialty string, fees float64) (entities.Doctor, error)
	GetByID(ctx context.Context, id string) (entities.Doctor, error)
	List(ctx context.Context, specialty string) ([]entities.Doctor, error)
	SetAvailability(ctx context.Context, id string, available bool) (entities.Doctor, error)
}

type DoctorUseCase struct {
	repo interfaces.IDoctorRepository
}

var _ IDoctorUseCase = (*DoctorUseCase)(nil)

func NewDoctorUseCase(repo interfaces.IDoctorRepository) *DoctorUseCase {
	return &DoctorUseCase{repo: repo}
}

func (u *DoctorUseCase) RegisterDoctor(ctx context.Context, name, specialty string, fees float64) (entities.Doctor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Doctor{}, ErrInvalidDoctorName
	}
	specialty = strings.TrimSpace(specialty)
	if specialty == "" {
		return entities.Doctor{}, ErrInvalidDoctorSpecialty
	}
	if fees <= 0 {
		return entities.Doctor{}, ErrInvalidDoctorFees
	}

	now := time.Now().UTC()
	d := entities.Doctor{
		ID:        uuid.NewString(),
		Name:      name,
		Specialty: specialty,
		Fees:      fees,
		Available: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, d)
}

func (u *DoctorUseCase) GetByID(ctx context.Context, id string) (entities.Doctor, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Doctor{}, ErrInvalidDoctorID
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Doctor{}, err
	}
	if d.ID == "" {
		return entities.Doctor{}, ErrDoctorNotFound
	}
	return d, nil
}

func (u *DoctorUseCase) List(ctx context.Context, specialty string) ([]entities.Doctor, error) {
	specialty = strings.TrimSpace(specialty)
	if specialty == "" {
		return u.repo.ListAll(ctx)
	}
	return u.repo.ListBySpecialty(ctx, specialty)
}

func (u *DoctorUseCase) SetAvailability(ctx context.Context, id string, available bool) (entities.Doctor, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Doctor{}, ErrInvalidDoctorID
	}

	updated, err := u.repo.UpdateAvailability(ctx, id, available)
	if err != nil {
		return entities.Doctor{}, err
	}
	if updated.ID == "" {
		return entities.Doctor{}, ErrDoctorNotFound
	}
	return updated, nil
}
