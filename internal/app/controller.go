// Package app wires the record store, the session service, moderation, and
// the configuration wizard behind a single Controller. The presentation
// layer drives the core exclusively through the On* methods and reads state
// back via Snapshot; after every accepted action the controller notifies
// its subscribers that a new view can be materialized.
package app

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/showcase/internal/common"
	"github.com/dmitrijs2005/showcase/internal/logging"
	"github.com/dmitrijs2005/showcase/internal/models"
	"github.com/dmitrijs2005/showcase/internal/services"
	"github.com/dmitrijs2005/showcase/internal/store"
	"github.com/dmitrijs2005/showcase/internal/wizard"
)

// WizardAction names one input of the configuration wizard.
type WizardAction string

const (
	ActionStart        WizardAction = "start"
	ActionConfirm      WizardAction = "confirm"
	ActionChange       WizardAction = "change"
	ActionCountTier    WizardAction = "countTier"
	ActionDisplayMode  WizardAction = "displayMode"
	ActionSelectOption WizardAction = "selectOption"
	ActionToggleAddon  WizardAction = "toggleAddon"
	ActionRestart      WizardAction = "restart"
)

// Snapshot is the read surface handed back to the presentation layer after
// each call.
type Snapshot struct {
	Step      wizard.Step
	BuildSpec wizard.BuildSpec
	User      *models.User
	Users     []models.User
	Posts     []models.Post
}

// Controller owns the transient session reference and the wizard. No state
// is ambient; independent controllers can coexist in tests.
type Controller struct {
	store       *store.Store
	sessions    services.SessionService
	moderation  services.ModerationService
	wizard      *wizard.Machine
	user        *models.User
	subscribers []func()
	log         logging.Logger
}

// New constructs a Controller. Call Init before use.
func New(s *store.Store, sessions services.SessionService, moderation services.ModerationService, log logging.Logger) *Controller {
	return &Controller{
		store:      s,
		sessions:   sessions,
		moderation: moderation,
		wizard:     wizard.New(),
		log:        log,
	}
}

// Init runs the startup data migration and restores a persisted session.
func (c *Controller) Init(ctx context.Context) error {
	if err := c.store.Migrate(ctx); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	u, err := c.sessions.Current(ctx)
	if err != nil {
		return err
	}
	c.user = u
	return nil
}

// Subscribe registers a callback invoked after every accepted action.
func (c *Controller) Subscribe(fn func()) {
	c.subscribers = append(c.subscribers, fn)
}

func (c *Controller) materialized() {
	for _, fn := range c.subscribers {
		fn()
	}
}

// User returns the active session reference, or nil when logged out.
func (c *Controller) User() *models.User {
	return c.user
}

// Wizard exposes read access to the wizard for step/spec queries.
func (c *Controller) Wizard() *wizard.Machine {
	return c.wizard
}

// OnIntakeSelect handles the concierge intake shortcut.
func (c *Controller) OnIntakeSelect(collectType string) error {
	if err := c.wizard.IntakeSelect(collectType); err != nil {
		return err
	}
	c.materialized()
	return nil
}

// OnWizardAction dispatches one wizard input. The payload is ignored by
// actions that carry none.
func (c *Controller) OnWizardAction(action WizardAction, payload string) error {
	var err error
	switch action {
	case ActionStart:
		err = c.wizard.Start()
	case ActionConfirm:
		err = c.wizard.Confirm()
	case ActionChange:
		err = c.wizard.Change()
	case ActionCountTier:
		err = c.wizard.ChooseCountTier(payload)
	case ActionDisplayMode:
		err = c.wizard.ChooseDisplayMode(wizard.DisplayMode(payload))
	case ActionSelectOption:
		err = c.wizard.SelectOption(payload)
	case ActionToggleAddon:
		err = c.wizard.ToggleAddon(payload)
	case ActionRestart:
		err = c.wizard.Restart()
	default:
		err = fmt.Errorf("%w: wizard action %q", common.ErrValidation, action)
	}
	if err != nil {
		return err
	}
	c.materialized()
	return nil
}

// OnLogin authenticates and establishes a session.
func (c *Controller) OnLogin(ctx context.Context, username, password string) error {
	u, err := c.sessions.Login(ctx, username, password)
	if err != nil {
		return err
	}
	c.user = u
	c.log.Info(ctx, "login", "username", u.Username, "role", u.Role)
	c.materialized()
	return nil
}

// OnRegister creates an account and logs it in.
func (c *Controller) OnRegister(ctx context.Context, username, password string) error {
	u, err := c.sessions.Register(ctx, username, password)
	if err != nil {
		return err
	}
	c.user = u
	c.log.Info(ctx, "registered", "username", u.Username)
	c.materialized()
	return nil
}

// OnLogout clears the session.
func (c *Controller) OnLogout(ctx context.Context) error {
	if err := c.sessions.Logout(ctx); err != nil {
		return err
	}
	c.user = nil
	c.materialized()
	return nil
}

// OnToggleBan flips a user's moderation status.
func (c *Controller) OnToggleBan(ctx context.Context, userID string) error {
	if err := c.moderation.ToggleBan(ctx, userID); err != nil {
		return err
	}
	c.materialized()
	return nil
}

// OnDeletePost removes a post. Confirmation is the caller's responsibility.
func (c *Controller) OnDeletePost(ctx context.Context, postID int) error {
	if err := c.moderation.DeletePost(ctx, postID); err != nil {
		return err
	}
	c.materialized()
	return nil
}

// Snapshot assembles the current read surface.
func (c *Controller) Snapshot(ctx context.Context) (*Snapshot, error) {
	users, err := c.store.LoadUsers(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := c.store.Posts(ctx)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		Step:      c.wizard.Step(),
		BuildSpec: c.wizard.Spec(),
		User:      c.user,
		Users:     users,
		Posts:     posts,
	}, nil
}
