package owners

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type UpsertInput struct {
	FirstName string
	LastName  string
	Address   string
	City      string
	State     string
	ZipCode   string
	Phone     string

	EmergencyContact string
	EmergencyPhone   string
}

// Upsert crea el perfil del usuario o sobreescribe sus campos mutables si ya
// existe. Nunca genera un segundo Owner para el mismo UserID.
func (s *Service) Upsert(ctx context.Context, userID string, in UpsertInput) (Owner, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Owner{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return Owner{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Address) == "" || strings.TrimSpace(in.City) == "" ||
		strings.TrimSpace(in.State) == "" || strings.TrimSpace(in.ZipCode) == "" {
		return Owner{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Phone) == "" {
		return Owner{}, ErrInvalidInput
	}

	now := s.now()

	existing, err := s.repo.GetByUserID(ctx, userID)
	if err == nil {
		existing.FirstName = strings.TrimSpace(in.FirstName)
		existing.LastName = strings.TrimSpace(in.LastName)
		existing.Address = strings.TrimSpace(in.Address)
		existing.City = strings.TrimSpace(in.City)
		existing.State = strings.TrimSpace(in.State)
		existing.ZipCode = strings.TrimSpace(in.ZipCode)
		existing.Phone = strings.TrimSpace(in.Phone)
		existing.EmergencyContact = strings.TrimSpace(in.EmergencyContact)
		existing.EmergencyPhone = strings.TrimSpace(in.EmergencyPhone)
		existing.UpdatedAt = now

		if err := s.repo.Update(ctx, existing); err != nil {
			return Owner{}, err
		}
		return existing, nil
	}

	o := Owner{
		ID:               uuid.NewString(),
		UserID:           userID,
		FirstName:        strings.TrimSpace(in.FirstName),
		LastName:         strings.TrimSpace(in.LastName),
		Address:          strings.TrimSpace(in.Address),
		City:             strings.TrimSpace(in.City),
		State:            strings.TrimSpace(in.State),
		ZipCode:          strings.TrimSpace(in.ZipCode),
		Phone:            strings.TrimSpace(in.Phone),
		EmergencyContact: strings.TrimSpace(in.EmergencyContact),
		EmergencyPhone:   strings.TrimSpace(in.EmergencyPhone),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return Owner{}, err
	}
	return o, nil
}

func (s *Service) GetByUser(ctx context.Context, userID string) (Owner, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Owner{}, ErrInvalidInput
	}
	o, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return Owner{}, ErrNotFound
	}
	return o, nil
}
