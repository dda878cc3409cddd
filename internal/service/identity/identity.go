package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/mdanilova/boutique/internal/hash"
	"github.com/mdanilova/boutique/internal/logging"
	"github.com/mdanilova/boutique/internal/models"
	"github.com/mdanilova/boutique/internal/repo"
	"github.com/mdanilova/boutique/internal/session"
)

var (
	ErrValidation     = errors.New("validation")
	ErrConflict       = errors.New("conflict")
	ErrAuthentication = errors.New("authentication")
)

type Service struct {
	Repo *repo.GormRepo
}

// Register creates the account. The caller logs in separately afterwards.
func (s *Service) Register(ctx context.Context, username, password string) error {
	l := logging.FromContext(ctx).With("svc", "identity.register")

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return fmt.Errorf("username and password required: %w", ErrValidation)
	}

	taken, err := s.Repo.UserExists(ctx, username)
	if err != nil {
		l.Error("register_error", "error", err)
		return err
	}
	if taken {
		return fmt.Errorf("user %q already exists: %w", username, ErrConflict)
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_error", "reason", "cannot hash the password", "error", err)
		return err
	}

	user := models.User{Username: username, PasswordHash: pwHash}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		// The unique index catches the race between the existence check and
		// the insert; report it the same way as the check itself.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("user %q already exists: %w", username, ErrConflict)
		}
		l.Error("register_error", "error", err)
		return err
	}

	l.Info("user registered", "user_id", user.ID, "username", user.Username)
	return nil
}

// Login matches credentials and returns the identity for the session cookie.
// Unknown username and wrong password collapse into one generic error so the
// response never leaks which field was wrong.
func (s *Service) Login(ctx context.Context, username, password string) (session.Identity, error) {
	l := logging.FromContext(ctx).With("svc", "identity.login")

	username = strings.TrimSpace(username)

	user, err := s.Repo.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return session.Identity{}, fmt.Errorf("invalid credentials: %w", ErrAuthentication)
		}
		l.Error("login_error", "error", err)
		return session.Identity{}, err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		return session.Identity{}, fmt.Errorf("invalid credentials: %w", ErrAuthentication)
	}

	l.Info("user logged in", "user_id", user.ID)
	return session.Identity{UserID: user.ID, Username: user.Username}, nil
}
