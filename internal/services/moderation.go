package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/showcase/internal/dbx"
	"github.com/dmitrijs2005/showcase/internal/logging"
	"github.com/dmitrijs2005/showcase/internal/models"
	"github.com/dmitrijs2005/showcase/internal/repositories/records"
	"github.com/dmitrijs2005/showcase/internal/store"
)

// ModerationService applies admin mutations directly to the record store.
// Role checks on the caller are the presentation layer's concern; the
// admin-account protection in ToggleBan is not.
//
// Each mutator is a read-modify-write of a whole collection, so it runs
// inside a single transaction.
type ModerationService interface {
	// ToggleBan flips a user between active and banned. Admin accounts
	// are left untouched (silent no-op, not an error).
	ToggleBan(ctx context.Context, userID string) error

	// DeletePost removes exactly the matching post. The caller is
	// expected to have confirmed the deletion. A missing id is a no-op.
	DeletePost(ctx context.Context, postID int) error
}

type moderationService struct {
	db  *sql.DB
	log logging.Logger
}

// NewModerationService constructs a ModerationService over the given database.
func NewModerationService(db *sql.DB, log logging.Logger) ModerationService {
	return &moderationService{db: db, log: log}
}

func (m *moderationService) ToggleBan(ctx context.Context, userID string) error {
	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		st := store.New(records.NewSQLiteRepository(tx), m.log)

		users, err := st.LoadUsers(ctx)
		if err != nil {
			return err
		}

		for i, u := range users {
			if u.ID != userID || u.IsAdmin() {
				continue
			}
			if u.Status == models.StatusActive {
				users[i].Status = models.StatusBanned
			} else {
				users[i].Status = models.StatusActive
			}
		}

		return st.SaveUsers(ctx, users)
	})
}

func (m *moderationService) DeletePost(ctx context.Context, postID int) error {
	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		st := store.New(records.NewSQLiteRepository(tx), m.log)

		posts, err := st.Posts(ctx)
		if err != nil {
			return err
		}

		kept := make([]models.Post, 0, len(posts))
		for _, p := range posts {
			if p.ID != postID {
				kept = append(kept, p)
			}
		}

		return st.SavePosts(ctx, kept)
	})
}
