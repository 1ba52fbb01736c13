package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"dog-licensing/internal/domain/licensing"
)

type licensesRepo struct {
	mu       sync.RWMutex
	byID     map[string]licensing.License
	byNumber map[string]string // índice license-by-number
}

func NewLicensesRepo() licensing.Repository {
	return &licensesRepo{
		byID:     make(map[string]licensing.License),
		byNumber: make(map[string]string),
	}
}

func (r *licensesRepo) Create(ctx context.Context, l licensing.License) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(l.ID) == "" || strings.TrimSpace(l.LicenseNumber) == "" {
		return errors.New("license id and number required")
	}
	if _, exists := r.byID[l.ID]; exists {
		return errors.New("license already exists")
	}

	r.byID[l.ID] = l
	r.byNumber[l.LicenseNumber] = l.ID
	return nil
}

func (r *licensesRepo) Update(ctx context.Context, l licensing.License) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(l.ID) == "" {
		return errors.New("license id required")
	}
	prev, exists := r.byID[l.ID]
	if !exists {
		return ErrNotFound
	}

	// La renovación no cambia el número, pero mantenemos el índice coherente.
	if prev.LicenseNumber != l.LicenseNumber {
		delete(r.byNumber, prev.LicenseNumber)
		r.byNumber[l.LicenseNumber] = l.ID
	}

	r.byID[l.ID] = l
	return nil
}

func (r *licensesRepo) GetByID(ctx context.Context, id string) (licensing.License, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.byID[id]
	if !ok {
		return licensing.License{}, ErrNotFound
	}
	return l, nil
}

func (r *licensesRepo) GetByNumber(ctx context.Context, licenseNumber string) (licensing.License, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byNumber[licenseNumber]
	if !ok {
		return licensing.License{}, ErrNotFound
	}
	return r.byID[id], nil
}
