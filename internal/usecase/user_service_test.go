package usecase

import (
	"errors"
	"testing"

	"github.com/pennantrace/sandlot/internal/domain/user"
)

type staticIDGenerator struct {
	id string
}

func (g staticIDGenerator) NewID() (string, error) {
	return g.id, nil
}

func TestUserService_Create_AdminOnly(t *testing.T) {
	st := newSeededStore(t)
	service := NewUserService(st.Users(), staticIDGenerator{id: "usr-new"}, discardLogger())

	_, err := service.Create(t.Context(), memberPrincipal("usr-ivy"), CreateUserInput{Name: "Pat Doyle"})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserService_Create_DefaultsToUserRole(t *testing.T) {
	st := newSeededStore(t)
	service := NewUserService(st.Users(), staticIDGenerator{id: "usr-new"}, discardLogger())

	created, err := service.Create(t.Context(), adminPrincipal(), CreateUserInput{Name: "Pat Doyle", ExternalID: " ext-pat "})
	if err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	if created.ID != "usr-new" {
		t.Fatalf("expected id usr-new, got %s", created.ID)
	}
	if created.Role != user.RoleUser {
		t.Fatalf("expected default role user, got %s", created.Role)
	}
	if created.ExternalID != "ext-pat" {
		t.Fatalf("expected trimmed external id, got %q", created.ExternalID)
	}

	loaded, err := service.GetByID(t.Context(), "usr-new")
	if err != nil {
		t.Fatalf("get created user: %v", err)
	}
	if loaded.Name != "Pat Doyle" {
		t.Fatalf("expected persisted name, got %q", loaded.Name)
	}
}

func TestUserService_Create_RequiresName(t *testing.T) {
	st := newSeededStore(t)
	service := NewUserService(st.Users(), staticIDGenerator{id: "usr-new"}, discardLogger())

	_, err := service.Create(t.Context(), adminPrincipal(), CreateUserInput{Name: "   "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUserService_GetByID_Unknown(t *testing.T) {
	st := newSeededStore(t)
	service := NewUserService(st.Users(), staticIDGenerator{id: "usr-new"}, discardLogger())

	_, err := service.GetByID(t.Context(), "usr-ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
