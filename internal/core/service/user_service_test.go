package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/ghiblihub/catalog-api/internal/core/domain"
	"github.com/ghiblihub/catalog-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newUserSvc() (*UserService, *stubUserRepo) {
	roles := newStubRoleRepo(domain.SeedRoles...)
	users := newStubUserRepo(roles)
	return NewUserService(users, roles, discardLogger), users
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestUserService_Create_HashesPasswordAndResolvesRole(t *testing.T) {
	svc, _ := newUserSvc()

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "pass123",
		RoleName: domain.RolePeople,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected generated id")
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.RoleName() != domain.RolePeople {
		t.Fatalf("unexpected role: %q", user.RoleName())
	}
}

func TestUserService_Create_UnknownRole(t *testing.T) {
	svc, users := newUserSvc()

	_, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "bob", Email: "bob@example.com", Password: "x", RoleName: "wizards",
	})
	if !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("ErrRoleNotFound should match ErrNotFound")
	}
	if len(users.users) != 0 {
		t.Fatalf("nothing should be stored on role failure")
	}
}

func TestUserService_Create_Duplicate(t *testing.T) {
	svc, _ := newUserSvc()
	in := ports.CreateUserInput{Username: "bob", Email: "bob@example.com", Password: "x", RoleName: domain.RoleAdmin}

	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func TestUserService_Update_OnlySuppliedFieldsChange(t *testing.T) {
	svc, users := newUserSvc()
	orig := seedUser(t, users, "fiona", "oldpass", domain.RoleFilms)

	updated, err := svc.Update(context.Background(), orig.ID, ports.UpdateUserInput{
		Email: strPtr("fiona@new.example.com"),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Email != "fiona@new.example.com" {
		t.Fatalf("email not updated: %s", updated.Email)
	}
	if updated.Username != "fiona" {
		t.Fatalf("username changed unexpectedly: %s", updated.Username)
	}
	if updated.PasswordHash != orig.PasswordHash {
		t.Fatalf("password hash changed unexpectedly")
	}
	if updated.RoleName() != domain.RoleFilms {
		t.Fatalf("role changed unexpectedly: %s", updated.RoleName())
	}
}

func TestUserService_Update_RehashesPasswordAndResolvesRoleName(t *testing.T) {
	svc, users := newUserSvc()
	orig := seedUser(t, users, "gus", "oldpass", domain.RoleFilms)

	updated, err := svc.Update(context.Background(), orig.ID, ports.UpdateUserInput{
		Password: strPtr("newpass"),
		RoleName: strPtr(domain.RoleVehicles),
		RoleID:   int64Ptr(1),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newpass")); err != nil {
		t.Fatalf("new password not hashed into store: %v", err)
	}
	if updated.RoleName() != domain.RoleVehicles {
		t.Fatalf("role_name should win over role_id, got %s", updated.RoleName())
	}
}

func TestUserService_Update_RoleID(t *testing.T) {
	svc, users := newUserSvc()
	orig := seedUser(t, users, "hana", "pw", domain.RoleFilms)
	species, _ := users.roles.FindByName(context.Background(), domain.RoleSpecies)

	updated, err := svc.Update(context.Background(), orig.ID, ports.UpdateUserInput{RoleID: &species.ID})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.RoleID != species.ID || updated.RoleName() != domain.RoleSpecies {
		t.Fatalf("unexpected role after update: %+v", updated)
	}

	if _, err := svc.Update(context.Background(), orig.ID, ports.UpdateUserInput{RoleID: int64Ptr(999)}); !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound for unknown role id, got %v", err)
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	svc, _ := newUserSvc()

	if _, err := svc.Update(context.Background(), 42, ports.UpdateUserInput{Username: strPtr("x")}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// List / Get / Delete
// ---------------------------------------------------------------------------

func TestUserService_List_FilterByUsername(t *testing.T) {
	svc, users := newUserSvc()
	seedUser(t, users, "alice", "pw", domain.RoleAdmin)
	seedUser(t, users, "david", "pw", domain.RoleFilms)
	seedUser(t, users, "fiona", "pw", domain.RoleFilms)

	got, err := svc.List(context.Background(), ports.UserFilter{Username: strPtr("david")}, ports.Page{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 1 || got[0].Username != "david" {
		t.Fatalf("expected only david, got %+v", got)
	}
}

func TestUserService_List_DefaultPage(t *testing.T) {
	svc, users := newUserSvc()
	for _, name := range []string{"a", "b", "c"} {
		seedUser(t, users, name, "pw", domain.RoleAdmin)
	}

	got, err := svc.List(context.Background(), ports.UserFilter{}, ports.Page{Limit: -1, Start: -5})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 3 || got[0].Username != "a" {
		t.Fatalf("expected all three users in insertion order, got %d", len(got))
	}
}

func TestUserService_Delete(t *testing.T) {
	svc, users := newUserSvc()
	u := seedUser(t, users, "ivan", "pw", domain.RoleAdmin)

	if err := svc.Delete(context.Background(), u.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.Get(context.Background(), u.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound after delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), u.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}
