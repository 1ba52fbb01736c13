package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"dog-licensing/internal/domain/dogs"
)

type dogsRepo struct {
	mu   sync.RWMutex
	byID map[string]dogs.Dog
}

func NewDogsRepo() dogs.Repository {
	return &dogsRepo{
		byID: make(map[string]dogs.Dog),
	}
}

func (r *dogsRepo) Create(ctx context.Context, d dogs.Dog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(d.ID) == "" {
		return errors.New("dog id required")
	}
	if _, exists := r.byID[d.ID]; exists {
		return errors.New("dog already exists")
	}
	r.byID[d.ID] = d
	return nil
}

func (r *dogsRepo) GetByID(ctx context.Context, id string) (dogs.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byID[id]
	if !ok {
		return dogs.Dog{}, ErrNotFound
	}
	return d, nil
}

func (r *dogsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]dogs.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]dogs.Dog, 0)
	for _, d := range r.byID {
		if d.OwnerUserID == ownerUserID {
			out = append(out, d)
		}
	}

	// Orden estable por created_at asc (solo para consistencia en dev)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *dogsRepo) SetLicense(ctx context.Context, dogID, licenseID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.byID[dogID]
	if !ok {
		return ErrNotFound
	}
	d.LicenseID = licenseID
	r.byID[dogID] = d
	return nil
}
