// Package controllers implements the management-screen state machine every
// entity type shares: list + filter state, a modal form session with an
// optional edit target, and the confirm → mutate → refresh discipline around
// every write.
package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/demostore/go-store-admin/app/feedback"
	"github.com/demostore/go-store-admin/app/fetch"
	"github.com/demostore/go-store-admin/app/helpers"
	"github.com/demostore/go-store-admin/app/models"
)

var (
	// ErrCancelled means the user declined the confirmation dialog. The
	// pending form state is untouched.
	ErrCancelled = errors.New("cancelled by user")

	// ErrNameTaken means the uniqueness pre-check found another record with
	// the same name; no request was issued.
	ErrNameTaken = errors.New("name is already taken")

	// ErrNoFormSession means a submit arrived without an open form session.
	ErrNoFormSession = errors.New("no form session is open")
)

// Entity is implemented by every managed record type.
type Entity interface {
	EntityID() int64
	EntityName() string
	EntityStatus() models.Status
}

// Config binds one entity type to its endpoint set and payload accessors.
// The controller is generic; everything type-specific lives here.
type Config[T Entity, C any, U any] struct {
	// Label is the singular human-readable entity name ("color").
	Label string

	List      func(ctx context.Context, includeInactive bool) ([]T, error)
	GetByName func(ctx context.Context, name string) (*T, error)
	Create    func(ctx context.Context, req C) (*T, error)
	Update    func(ctx context.Context, id int64, req U) (*T, error)
	Delete    func(ctx context.Context, id int64) error

	CreateName func(req C) string
	UpdateName func(req U) string

	// Optional extra checks run against the current list snapshot before
	// the confirmation dialog (category parent acyclicity lives here).
	ValidateCreate func(req C, snapshot []T) error
	ValidateUpdate func(id int64, req U, snapshot []T) error
}

type updateArgs[U any] struct {
	id  int64
	req U
}

// EntityController drives one management screen. All mutating operations
// follow the same sequence: validate, uniqueness pre-check, explicit
// confirmation, mutation, then a full list refresh so server-derived fields
// stay accurate.
type EntityController[T Entity, C any, U any] struct {
	cfg      Config[T, C, U]
	fb       feedback.Feedback
	confirm  feedback.Confirmer
	validate *validator.Validate

	query     *fetch.Query[[]T]
	createMut *fetch.Mutation[C, *T]
	updateMut *fetch.Mutation[updateArgs[U], *T]
	deleteMut *fetch.Mutation[int64, struct{}]

	mu              sync.Mutex
	search          string
	statusFilter    models.Status
	includeInactive bool
	modalOpen       bool
	editing         *T
}

func New[T Entity, C any, U any](cfg Config[T, C, U], fb feedback.Feedback, confirm feedback.Confirmer) *EntityController[T, C, U] {
	c := &EntityController[T, C, U]{
		cfg:      cfg,
		fb:       fb,
		confirm:  confirm,
		validate: helpers.NewValidator(),
	}

	c.query = fetch.NewQuery(fb, func(ctx context.Context) ([]T, error) {
		return cfg.List(ctx, c.IncludeInactive())
	})
	c.createMut = fetch.NewMutation(fb, cfg.Create)
	c.updateMut = fetch.NewMutation(fb, func(ctx context.Context, args updateArgs[U]) (*T, error) {
		return cfg.Update(ctx, args.id, args.req)
	})
	c.deleteMut = fetch.NewMutation(fb, func(ctx context.Context, id int64) (struct{}, error) {
		return struct{}{}, cfg.Delete(ctx, id)
	})
	return c
}

// Load performs the mount-time fetch.
func (c *EntityController[T, C, U]) Load(ctx context.Context) error {
	return c.query.SetDeps(ctx, c.IncludeInactive())
}

// Refresh re-fetches the full list; the result replaces the stored list
// wholesale.
func (c *EntityController[T, C, U]) Refresh(ctx context.Context) error {
	return c.query.Refetch(ctx)
}

// List returns the current server snapshot (possibly patched by an
// optimistic delete that has not reconciled yet).
func (c *EntityController[T, C, U]) List() []T {
	data, _ := c.query.Data()
	out := make([]T, len(data))
	copy(out, data)
	return out
}

func (c *EntityController[T, C, U]) Loading() bool { return c.query.Loading() }

func (c *EntityController[T, C, U]) Submitting() bool {
	return c.createMut.Loading() || c.updateMut.Loading() || c.deleteMut.Loading()
}

func (c *EntityController[T, C, U]) SetSearch(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.search = s
}

func (c *EntityController[T, C, U]) SetStatusFilter(status models.Status) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.statusFilter = status
}

// SetIncludeInactive flips the server-side scope toggle. The toggle is a
// query dependency, so flipping it triggers a fetch; the client-side filter
// predicate is unaffected.
func (c *EntityController[T, C, U]) SetIncludeInactive(ctx context.Context, include bool) error {
	c.mu.Lock()
	c.includeInactive = include
	c.mu.Unlock()
	return c.query.SetDeps(ctx, include)
}

func (c *EntityController[T, C, U]) IncludeInactive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.includeInactive
}

// Filtered applies the client-side predicate to the current list. It is a
// pure function of the list and the filter state and never touches the
// server.
func (c *EntityController[T, C, U]) Filtered() []T {
	c.mu.Lock()
	search, status := c.search, c.statusFilter
	c.mu.Unlock()
	return FilterEntities(c.List(), search, status)
}

// FilterEntities combines a case-insensitive substring match on the name
// with an optional exact status match.
func FilterEntities[T Entity](list []T, search string, status models.Status) []T {
	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]T, 0, len(list))
	for _, e := range list {
		if needle != "" && !strings.Contains(strings.ToLower(e.EntityName()), needle) {
			continue
		}
		if status != "" && e.EntityStatus() != status {
			continue
		}
		out = append(out, e)
	}
	return out
}

// OpenCreate starts a form session in create mode.
func (c *EntityController[T, C, U]) OpenCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.modalOpen = true
	c.editing = nil
}

// OpenEdit starts a form session pre-targeted at the record with the given
// id, which must be present in the current list.
func (c *EntityController[T, C, U]) OpenEdit(id int64) error {
	for _, e := range c.List() {
		if e.EntityID() == id {
			record := e
			c.mu.Lock()
			c.modalOpen = true
			c.editing = &record
			c.mu.Unlock()
			return nil
		}
	}
	return fmt.Errorf("%s with id %d not found in the current list", c.cfg.Label, id)
}

func (c *EntityController[T, C, U]) CloseModal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.modalOpen = false
	c.editing = nil
}

func (c *EntityController[T, C, U]) ModalOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.modalOpen
}

// Editing returns the current edit target, nil in create mode.
func (c *EntityController[T, C, U]) Editing() *T {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.editing == nil {
		return nil
	}
	record := *c.editing
	return &record
}

// SubmitCreate runs the create path of the open form session: payload
// validation, name-uniqueness pre-check, explicit confirmation, the POST,
// then a full refresh. On any failure the session stays open and the list
// is untouched.
func (c *EntityController[T, C, U]) SubmitCreate(ctx context.Context, req C) (*T, error) {
	c.mu.Lock()
	if !c.modalOpen {
		c.mu.Unlock()
		return nil, ErrNoFormSession
	}
	if c.editing != nil {
		c.mu.Unlock()
		return nil, fmt.Errorf("form session is targeting %s %d, use SubmitUpdate", c.cfg.Label, (*c.editing).EntityID())
	}
	c.mu.Unlock()

	if err := c.validatePayload(req); err != nil {
		return nil, err
	}
	if c.cfg.ValidateCreate != nil {
		if err := c.cfg.ValidateCreate(req, c.List()); err != nil {
			c.reportError(err.Error())
			return nil, err
		}
	}

	name := c.cfg.CreateName(req)
	if c.nameTaken(ctx, name, 0) {
		c.reportError(fmt.Sprintf("A %s named %q already exists", c.cfg.Label, name))
		return nil, ErrNameTaken
	}

	if !c.confirm.Confirm(fmt.Sprintf("Create %s %q?", c.cfg.Label, name)) {
		return nil, ErrCancelled
	}
	c.fb.Cue(feedback.KindConfirm)

	result, err := c.createMut.Do(ctx, req)
	if err != nil {
		c.fb.Cue(feedback.KindError)
		return nil, err
	}

	c.fb.Notify(feedback.KindSuccess, fmt.Sprintf("%s created successfully", capitalize(c.cfg.Label)))
	c.fb.Cue(feedback.KindSuccess)
	c.CloseModal()

	if err := c.Refresh(ctx); err != nil {
		log.Printf("EntityController[%s]: post-create refresh failed: %v", c.cfg.Label, err)
	}
	return result, nil
}

// SubmitUpdate runs the update path against the session's edit target.
func (c *EntityController[T, C, U]) SubmitUpdate(ctx context.Context, req U) (*T, error) {
	c.mu.Lock()
	if !c.modalOpen || c.editing == nil {
		c.mu.Unlock()
		return nil, ErrNoFormSession
	}
	targetID := (*c.editing).EntityID()
	targetName := (*c.editing).EntityName()
	c.mu.Unlock()

	if err := c.validatePayload(req); err != nil {
		return nil, err
	}
	if c.cfg.ValidateUpdate != nil {
		if err := c.cfg.ValidateUpdate(targetID, req, c.List()); err != nil {
			c.reportError(err.Error())
			return nil, err
		}
	}

	name := c.cfg.UpdateName(req)
	if name != "" && c.nameTaken(ctx, name, targetID) {
		c.reportError(fmt.Sprintf("A %s named %q already exists", c.cfg.Label, name))
		return nil, ErrNameTaken
	}

	display := name
	if display == "" {
		display = targetName
	}
	if !c.confirm.Confirm(fmt.Sprintf("Update %s %q (ID: %d)?", c.cfg.Label, display, targetID)) {
		return nil, ErrCancelled
	}
	c.fb.Cue(feedback.KindConfirm)

	result, err := c.updateMut.Do(ctx, updateArgs[U]{id: targetID, req: req})
	if err != nil {
		c.fb.Cue(feedback.KindError)
		return nil, err
	}

	c.fb.Notify(feedback.KindSuccess, fmt.Sprintf("%s updated successfully", capitalize(c.cfg.Label)))
	c.fb.Cue(feedback.KindSuccess)
	c.CloseModal()

	if err := c.Refresh(ctx); err != nil {
		log.Printf("EntityController[%s]: post-update refresh failed: %v", c.cfg.Label, err)
	}
	return result, nil
}

// DeleteByID confirms, deletes, removes the record from the local list
// optimistically, and reconciles against a full refresh. On mutation failure
// the list is never locally altered.
func (c *EntityController[T, C, U]) DeleteByID(ctx context.Context, id int64) error {
	name := fmt.Sprintf("#%d", id)
	for _, e := range c.List() {
		if e.EntityID() == id {
			name = fmt.Sprintf("%q", e.EntityName())
			break
		}
	}

	if !c.confirm.Confirm(fmt.Sprintf("Delete %s %s (ID: %d)? This cannot be undone.", c.cfg.Label, name, id)) {
		return ErrCancelled
	}
	c.fb.Cue(feedback.KindConfirm)

	if _, err := c.deleteMut.Do(ctx, id); err != nil {
		c.fb.Cue(feedback.KindError)
		return err
	}

	// Optimistic removal; the refresh below re-establishes the server's
	// view, which wins even if it still contains the record.
	c.query.Patch(func(list []T) []T {
		out := make([]T, 0, len(list))
		for _, e := range list {
			if e.EntityID() != id {
				out = append(out, e)
			}
		}
		return out
	})

	c.fb.Notify(feedback.KindSuccess, fmt.Sprintf("%s deleted successfully", capitalize(c.cfg.Label)))
	c.fb.Cue(feedback.KindSuccess)

	if err := c.Refresh(ctx); err != nil {
		log.Printf("EntityController[%s]: post-delete refresh failed: %v", c.cfg.Label, err)
	}
	return nil
}

// nameTaken asks the server whether another record owns the name. The
// editing record's own name never counts as taken. Lookup failures are
// treated as "not taken"; the server remains the real gatekeeper.
func (c *EntityController[T, C, U]) nameTaken(ctx context.Context, name string, excludeID int64) bool {
	found, err := c.cfg.GetByName(ctx, name)
	if err != nil {
		log.Printf("EntityController[%s]: name lookup for %q failed, continuing: %v", c.cfg.Label, name, err)
	} else if found != nil && (*found).EntityID() != excludeID {
		return true
	}

	// The lookup endpoint matches exactly; the duplicate rule is
	// case-insensitive, so also scan the current snapshot.
	for _, e := range c.List() {
		if strings.EqualFold(e.EntityName(), name) && e.EntityID() != excludeID {
			return true
		}
	}
	return false
}

func (c *EntityController[T, C, U]) validatePayload(req any) error {
	err := c.validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msg := helpers.ValidationSummary(verrs)
		c.reportError(msg)
		return fmt.Errorf("invalid %s: %s", c.cfg.Label, msg)
	}
	return err
}

func (c *EntityController[T, C, U]) reportError(msg string) {
	c.fb.Notify(feedback.KindError, msg)
	c.fb.Cue(feedback.KindError)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
