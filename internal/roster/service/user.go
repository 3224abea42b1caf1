package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/roster/internal/roster/domain"
	"github.com/aussiebroadwan/roster/internal/roster/store"
	"github.com/aussiebroadwan/roster/pkg/cryptox"
	"github.com/aussiebroadwan/roster/pkg/slogx"
)

// PasswordHasher is satisfied by *cryptox.PasswordHasher.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) error
}

// TokenIssuer is satisfied by *TokenService.
type TokenIssuer interface {
	Issue(ctx context.Context, subject string) (string, error)
}

type UserService struct {
	Store  store.Store
	Hasher PasswordHasher
	Tokens TokenIssuer
}

// Register creates a credential for username. The returned user carries the
// password hash and must not be echoed to clients.
func (s *UserService) Register(ctx context.Context, username, password string) (domain.User, error) {
	l := slogx.FromContext(ctx).With(slog.String("username", username))

	_, err := s.Store.Users().GetUserByUsername(ctx, username)
	switch {
	case err == nil:
		l.Info("registration rejected, username taken")
		return domain.User{}, domain.Duplicate("username %s is already registered", username)
	case !errors.Is(err, store.ErrNotFound):
		return domain.User{}, classify(err)
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return domain.User{}, domain.Internal(err)
	}

	u, err := s.Store.Users().CreateUser(ctx, domain.User{Username: username, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, domain.Duplicate("username %s is already registered", username)
		}
		return domain.User{}, classify(err)
	}

	l.Info("user registered", slog.Int64("user_id", u.ID))
	return u, nil
}

// Login checks the credentials and returns a signed token for username. An
// unknown user and a wrong password produce the same error.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	l := slogx.FromContext(ctx).With(slog.String("username", username))

	u, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Debug("login failed, unknown user")
			return "", domain.InvalidCredentials()
		}
		return "", classify(err)
	}

	if err := s.Hasher.Verify(password, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			l.Debug("login failed, wrong password")
			return "", domain.InvalidCredentials()
		}
		return "", domain.Internal(err)
	}

	token, err := s.Tokens.Issue(ctx, u.Username)
	if err != nil {
		return "", domain.Internal(err)
	}

	l.Info("user logged in")
	return token, nil
}
