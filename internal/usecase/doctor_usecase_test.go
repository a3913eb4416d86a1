package usecase

import (
	"context"
	"errors"
	"testing"

	"medibook/internal/domain/entities"
	mock_interfaces "medibook/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDoctorUseCase_RegisterDoctor(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		uc := NewDoctorUseCase(nil)
		_, err := uc.RegisterDoctor(context.Background(), " ", "cardiology", 150)
		if !errors.Is(err, ErrInvalidDoctorName) {
			t.Fatalf("expected ErrInvalidDoctorName, got %v", err)
		}
	})

	t.Run("empty specialty", func(t *testing.T) {
		uc := NewDoctorUseCase(nil)
		_, err := uc.RegisterDoctor(context.Background(), "Dr. House", "", 150)
		if !errors.Is(err, ErrInvalidDoctorSpecialty) {
			t.Fatalf("expected ErrInvalidDoctorSpecialty, got %v", err)
		}
	})

	t.Run("non-positive fees", func(t *testing.T) {
		uc := NewDoctorUseCase(nil)
		_, err := uc.RegisterDoctor(context.Background(), "Dr. House", "cardiology", 0)
		if !errors.Is(err, ErrInvalidDoctorFees) {
			t.Fatalf("expected ErrInvalidDoctorFees, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDoctorRepository(ctrl)
		uc := NewDoctorUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.Doctor) (entities.Doctor, error) {
				if d.ID == "" {
					t.Fatal("expected generated doctor id")
				}
				if !d.Available {
					t.Fatal("new doctors must start available")
				}
				return d, nil
			})

		d, err := uc.RegisterDoctor(context.Background(), "Dr. House", "cardiology", 150)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Name != "Dr. House" || d.Specialty != "cardiology" || d.Fees != 150 {
			t.Fatalf("unexpected doctor: %+v", d)
		}
	})
}

func TestDoctorUseCase_GetByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewDoctorUseCase(nil)
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidDoctorID) {
			t.Fatalf("expected ErrInvalidDoctorID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDoctorRepository(ctrl)
		uc := NewDoctorUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(entities.Doctor{}, nil)

		_, err := uc.GetByID(context.Background(), "doc-1")
		if !errors.Is(err, ErrDoctorNotFound) {
			t.Fatalf("expected ErrDoctorNotFound, got %v", err)
		}
	})
}

func TestDoctorUseCase_List(t *testing.T) {
	t.Run("no specialty lists all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDoctorRepository(ctrl)
		uc := NewDoctorUseCase(repo)

		repo.EXPECT().ListAll(gomock.Any()).Return([]entities.Doctor{{ID: "doc-1"}}, nil)

		got, err := uc.List(context.Background(), "  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("specialty filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDoctorRepository(ctrl)
		uc := NewDoctorUseCase(repo)

		repo.EXPECT().ListBySpecialty(gomock.Any(), "cardiology").Return(nil, nil)

		if _, err := uc.List(context.Background(), "cardiology"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestDoctorUseCase_SetAvailability(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDoctorRepository(ctrl)
		uc := NewDoctorUseCase(repo)

		repo.EXPECT().UpdateAvailability(gomock.Any(), "doc-1", false).Return(entities.Doctor{}, nil)

		_, err := uc.SetAvailability(context.Background(), "doc-1", false)
		if !errors.Is(err, ErrDoctorNotFound) {
			t.Fatalf("expected ErrDoctorNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDoctorRepository(ctrl)
		uc := NewDoctorUseCase(repo)

		repo.EXPECT().UpdateAvailability(gomock.Any(), "doc-1", false).
			Return(entities.Doctor{ID: "doc-1", Available: false}, nil)

		d, err := uc.SetAvailability(context.Background(), "doc-1", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Available {
			t.Fatal("expected doctor to be unavailable")
		}
	})
}
