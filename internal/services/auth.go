// Package services contains the application services of the showcase demo:
// session/auth management and admin moderation over the record store.
package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dmitrijs2005/showcase/internal/common"
	"github.com/dmitrijs2005/showcase/internal/models"
	"github.com/dmitrijs2005/showcase/internal/store"
	"github.com/google/uuid"
)

// SessionService authenticates, registers, and logs out the single active
// user. The session reference is persisted separately from the users
// collection.
//
// Credentials are compared in plaintext to match the demo data; a real
// deployment would hash and compare instead.
type SessionService interface {
	// Login establishes a session for an active user with matching
	// credentials. Wrong credentials and banned accounts are rejected
	// without any state change.
	Login(ctx context.Context, username, password string) (*models.User, error)

	// Register creates a new active user account and immediately
	// establishes a session for it.
	Register(ctx context.Context, username, password string) (*models.User, error)

	// Logout clears the session reference only.
	Logout(ctx context.Context) error

	// Current returns the persisted session reference, or nil.
	Current(ctx context.Context) (*models.User, error)
}

type sessionService struct {
	store         *store.Store
	avatarBaseURL string
}

// NewSessionService constructs a SessionService over the given store.
// avatarBaseURL is the service used to synthesize avatar references.
func NewSessionService(s *store.Store, avatarBaseURL string) SessionService {
	return &sessionService{store: s, avatarBaseURL: avatarBaseURL}
}

func (s *sessionService) Login(ctx context.Context, username, password string) (*models.User, error) {
	users, err := s.store.LoadUsers(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Username != username || u.Password != password {
			continue
		}
		if u.Status == models.StatusBanned {
			return nil, common.ErrAccountBanned
		}
		if err := s.store.SetCurrentUser(ctx, u); err != nil {
			return nil, err
		}
		return &u, nil
	}
	return nil, common.ErrInvalidCredentials
}

func (s *sessionService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, common.ErrEmptyCredentials
	}

	users, err := s.store.LoadUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Username == username {
			return nil, common.ErrUsernameTaken
		}
	}

	newUser := models.User{
		ID:       "u" + uuid.NewString(),
		Username: username,
		Password: password,
		Role:     models.RoleUser,
		Status:   models.StatusActive,
		Avatar:   s.avatarURL(username),
	}

	if err := s.store.SaveUsers(ctx, append(users, newUser)); err != nil {
		return nil, err
	}
	if err := s.store.SetCurrentUser(ctx, newUser); err != nil {
		return nil, err
	}
	return &newUser, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	return s.store.ClearCurrentUser(ctx)
}

func (s *sessionService) Current(ctx context.Context) (*models.User, error) {
	return s.store.CurrentUser(ctx)
}

func (s *sessionService) avatarURL(username string) string {
	return fmt.Sprintf("%s?name=%s&background=random&color=fff",
		s.avatarBaseURL, url.QueryEscape(username))
}
