// Package store implements the typed record store of the showcase demo on
// top of the string-keyed records repository, and the startup data migration
// that reconciles persisted users with the baseline seed.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/showcase/internal/logging"
	"github.com/dmitrijs2005/showcase/internal/models"
	"github.com/dmitrijs2005/showcase/internal/repositories/records"
)

// Storage keys of the durable medium. Each key holds one JSON value.
const (
	KeyUsers       = "users"
	KeyPosts       = "posts"
	KeyComments    = "comments"
	KeyCurrentUser = "currentUser"
)

// Store owns the persisted collections. Every mutation goes through a full
// write-through save of the touched collection; a failed save is returned to
// the caller, never swallowed.
type Store struct {
	repo     records.Repository
	log      logging.Logger
	migrated bool
}

// New returns a Store over the given repository. Call Migrate before reading
// the users collection.
func New(repo records.Repository, log logging.Logger) *Store {
	return &Store{repo: repo, log: log}
}

func (s *Store) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.repo.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}

// LoadUsers returns the persisted users collection. After Migrate has run the
// collection is never absent; an absent key decodes to an empty slice.
func (s *Store) LoadUsers(ctx context.Context) ([]models.User, error) {
	raw, err := s.repo.Get(ctx, KeyUsers)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var users []models.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", KeyUsers, err)
	}
	return users, nil
}

// SaveUsers overwrites the persisted users collection.
func (s *Store) SaveUsers(ctx context.Context, users []models.User) error {
	return s.save(ctx, KeyUsers, users)
}

// Posts returns the persisted posts, or the seed posts when nothing has been
// persisted yet. The seed is served from memory; it is only written through
// once a mutation saves the collection.
func (s *Store) Posts(ctx context.Context) ([]models.Post, error) {
	raw, err := s.repo.Get(ctx, KeyPosts)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return SeedPosts(), nil
	}
	var posts []models.Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", KeyPosts, err)
	}
	return posts, nil
}

// SavePosts overwrites the persisted posts collection.
func (s *Store) SavePosts(ctx context.Context, posts []models.Post) error {
	return s.save(ctx, KeyPosts, posts)
}

// Comments returns the persisted comment threads, or an empty map when the
// key is absent.
func (s *Store) Comments(ctx context.Context) (models.Comments, error) {
	raw, err := s.repo.Get(ctx, KeyComments)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return models.Comments{}, nil
	}
	var comments models.Comments
	if err := json.Unmarshal(raw, &comments); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", KeyComments, err)
	}
	return comments, nil
}

// SaveComments overwrites the persisted comment threads.
func (s *Store) SaveComments(ctx context.Context, comments models.Comments) error {
	return s.save(ctx, KeyComments, comments)
}

// CurrentUser returns the persisted session reference, or nil when logged out.
func (s *Store) CurrentUser(ctx context.Context) (*models.User, error) {
	raw, err := s.repo.Get(ctx, KeyCurrentUser)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", KeyCurrentUser, err)
	}
	return &u, nil
}

// SetCurrentUser persists the session reference.
func (s *Store) SetCurrentUser(ctx context.Context, u models.User) error {
	return s.save(ctx, KeyCurrentUser, u)
}

// ClearCurrentUser removes the session reference. The users collection is
// not touched.
func (s *Store) ClearCurrentUser(ctx context.Context) error {
	if err := s.repo.Delete(ctx, KeyCurrentUser); err != nil {
		return fmt.Errorf("failed to clear %s: %w", KeyCurrentUser, err)
	}
	return nil
}
