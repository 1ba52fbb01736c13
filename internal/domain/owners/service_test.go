package owners

import (
	"context"
	"errors"
	"testing"
	"time"
)

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID   map[string]Owner
	byUser map[string]string
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Owner{}, byUser: map[string]string{}}
}

func (r *testRepo) Create(ctx context.Context, o Owner) error {
	if _, ok := r.byUser[o.UserID]; ok {
		return errors.New("repo: owner already exists for user")
	}
	r.byID[o.ID] = o
	r.byUser[o.UserID] = o.ID
	return nil
}

func (r *testRepo) Update(ctx context.Context, o Owner) error {
	if _, ok := r.byID[o.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[o.ID] = o
	return nil
}

func (r *testRepo) GetByUserID(ctx context.Context, userID string) (Owner, error) {
	id, ok := r.byUser[userID]
	if !ok {
		return Owner{}, errRepoNotFound
	}
	return r.byID[id], nil
}

func validInput() UpsertInput {
	return UpsertInput{
		FirstName: "Ana",
		LastName:  "Rojas",
		Address:   "Av. Siempre Viva 742",
		City:      "Fort Collins",
		State:     "CO",
		ZipCode:   "80521",
		Phone:     "555-0101",
	}
}

func TestService_Upsert_CreaPerfilNuevo(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	o, err := svc.Upsert(context.Background(), "user-1", validInput())
	if err != nil {
		t.Fatalf("Upsert returned error: %v", err)
	}
	if o.ID == "" {
		t.Fatalf("expected generated owner id")
	}
	if o.CreatedAt != now || o.UpdatedAt != now {
		t.Fatalf("expected timestamps pinned to now")
	}
	if len(repo.byID) != 1 {
		t.Fatalf("expected 1 owner persisted, got %d", len(repo.byID))
	}
}

func TestService_Upsert_ActualizaEnElLugar(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	now2 := now1.Add(48 * time.Hour)

	svc.now = func() time.Time { return now1 }
	first, err := svc.Upsert(context.Background(), "user-1", validInput())
	if err != nil {
		t.Fatalf("Upsert #1 error: %v", err)
	}

	svc.now = func() time.Time { return now2 }
	in := validInput()
	in.Phone = "555-9999"
	in.EmergencyContact = "Luis Rojas"
	second, err := svc.Upsert(context.Background(), "user-1", in)
	if err != nil {
		t.Fatalf("Upsert #2 error: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("expected same owner row (update in place), got %s vs %s", first.ID, second.ID)
	}
	if len(repo.byID) != 1 {
		t.Fatalf("expected 1 owner after re-registration, got %d", len(repo.byID))
	}
	if second.Phone != "555-9999" || second.EmergencyContact != "Luis Rojas" {
		t.Fatalf("expected mutable fields overwritten")
	}
	if second.CreatedAt != now1 {
		t.Fatalf("expected CreatedAt preserved on update")
	}
	if second.UpdatedAt != now2 {
		t.Fatalf("expected UpdatedAt re-stamped")
	}
}

func TestService_Upsert_ValidaCamposObligatorios(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	in := validInput()
	in.Phone = "   "
	if _, err := svc.Upsert(context.Background(), "user-1", in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	if _, err := svc.Upsert(context.Background(), "", validInput()); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty user, got %v", err)
	}
}

func TestService_GetByUser_NoRegistrado(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	if _, err := svc.GetByUser(context.Background(), "nadie"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
