package users

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/warefront/warefront-backend/pkg/config"
	"github.com/warefront/warefront-backend/pkg/db/models"
	pkgerrors "github.com/warefront/warefront-backend/pkg/errors"
	"github.com/warefront/warefront-backend/pkg/security"
)

func testUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := security.HashPassword(password, config.PasswordConfig{})
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &models.User{
		ID:           uuid.New(),
		Name:         "Dana",
		Email:        "dana@example.com",
		PasswordHash: hash,
		IsActive:     true,
	}
}

func strPtr(s string) *string { return &s }

func TestServiceUpdateHashesPlaintextPassword(t *testing.T) {
	user := testUser(t, "old-password")
	repo := &stubUserRepo{user: user}
	svc, err := NewService(repo, config.PasswordConfig{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.Update(context.Background(), user.ID, UpdateUserInput{
		Password: strPtr("new-password-123"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if !security.IsHash(repo.saved.PasswordHash) {
		t.Fatalf("stored password is not a hash: %q", repo.saved.PasswordHash)
	}
	ok, err := security.VerifyPassword("new-password-123", repo.saved.PasswordHash)
	if err != nil || !ok {
		t.Fatalf("new password does not verify: ok=%v err=%v", ok, err)
	}
}

func TestServiceUpdateLeavesEchoedHashUntouched(t *testing.T) {
	user := testUser(t, "old-password")
	original := user.PasswordHash
	repo := &stubUserRepo{user: user}
	svc, err := NewService(repo, config.PasswordConfig{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	// Clients echoing the stored hash back must not trigger a re-hash.
	_, err = svc.Update(context.Background(), user.ID, UpdateUserInput{
		Password: strPtr(original),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if repo.saved.PasswordHash != original {
		t.Fatalf("echoed hash was re-hashed")
	}
	ok, err := security.VerifyPassword("old-password", repo.saved.PasswordHash)
	if err != nil || !ok {
		t.Fatalf("old password no longer verifies: ok=%v err=%v", ok, err)
	}
}

func TestServiceUpdateDuplicateEmail(t *testing.T) {
	user := testUser(t, "password-123")
	repo := &stubUserRepo{
		user:      user,
		updateErr: errors.New(`duplicate key value violates unique constraint "idx_users_email"`),
	}
	svc, err := NewService(repo, config.PasswordConfig{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.Update(context.Background(), user.ID, UpdateUserInput{
		Email: strPtr("taken@example.com"),
	})
	if err == nil {
		t.Fatalf("expected conflict error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestServiceUpdateNormalizesEmail(t *testing.T) {
	user := testUser(t, "password-123")
	repo := &stubUserRepo{user: user}
	svc, err := NewService(repo, config.PasswordConfig{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dto, err := svc.Update(context.Background(), user.ID, UpdateUserInput{
		Email: strPtr("  Dana.New@Example.COM "),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if dto.Email != "dana.new@example.com" {
		t.Fatalf("expected normalized email, got %q", dto.Email)
	}
}

func TestServiceGetByIDNotFound(t *testing.T) {
	repo := &stubUserRepo{findErr: gorm.ErrRecordNotFound}
	svc, err := NewService(repo, config.PasswordConfig{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.GetByID(context.Background(), uuid.New())
	if err == nil {
		t.Fatalf("expected not found error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}

type stubUserRepo struct {
	user      *models.User
	findErr   error
	updateErr error
	saved     *models.User
}

func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.user, nil
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.user, nil
}

func (s *stubUserRepo) Update(ctx context.Context, user *models.User) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.saved = user
	return nil
}
