package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"dog-licensing/internal/domain/owners"
)

var (
	ErrNotFound = errors.New("not found")
)

type ownersRepo struct {
	mu       sync.RWMutex
	byID     map[string]owners.Owner
	byUserID map[string]string // índice único owner-by-user
}

func NewOwnersRepo() owners.Repository {
	return &ownersRepo{
		byID:     make(map[string]owners.Owner),
		byUserID: make(map[string]string),
	}
}

func (r *ownersRepo) Create(ctx context.Context, o owners.Owner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(o.ID) == "" || strings.TrimSpace(o.UserID) == "" {
		return errors.New("owner id and user id required")
	}
	if _, exists := r.byID[o.ID]; exists {
		return errors.New("owner already exists")
	}
	if _, exists := r.byUserID[o.UserID]; exists {
		return errors.New("owner already exists for user")
	}

	r.byID[o.ID] = o
	r.byUserID[o.UserID] = o.ID
	return nil
}

func (r *ownersRepo) Update(ctx context.Context, o owners.Owner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(o.ID) == "" {
		return errors.New("owner id required")
	}
	if _, exists := r.byID[o.ID]; !exists {
		return ErrNotFound
	}
	r.byID[o.ID] = o
	return nil
}

func (r *ownersRepo) GetByUserID(ctx context.Context, userID string) (owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUserID[userID]
	if !ok {
		return owners.Owner{}, ErrNotFound
	}
	return r.byID[id], nil
}
