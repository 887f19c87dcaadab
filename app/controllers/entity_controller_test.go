package controllers

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/demostore/go-store-admin/app/feedback"
	"github.com/demostore/go-store-admin/app/models"
)

// colorStore is an in-memory stand-in for the colors endpoint set.
type colorStore struct {
	mu     sync.Mutex
	nextID int64
	colors map[int64]models.Color

	listCalls  int
	createErr  error
	deleteErr  error
	listFrozen []models.Color // when set, List ignores the map
}

func newColorStore(names ...string) *colorStore {
	s := &colorStore{colors: map[int64]models.Color{}}
	for _, name := range names {
		s.nextID++
		s.colors[s.nextID] = models.Color{ColorID: s.nextID, ColorName: name, Status: models.StatusActive}
	}
	return s
}

func (s *colorStore) config() Config[models.Color, models.CreateColorRequest, models.UpdateColorRequest] {
	return Config[models.Color, models.CreateColorRequest, models.UpdateColorRequest]{
		Label: "color",
		List: func(ctx context.Context, includeInactive bool) ([]models.Color, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.listCalls++
			if s.listFrozen != nil {
				return append([]models.Color(nil), s.listFrozen...), nil
			}
			out := make([]models.Color, 0, len(s.colors))
			for _, c := range s.colors {
				if !includeInactive && c.Status != models.StatusActive {
					continue
				}
				out = append(out, c)
			}
			return out, nil
		},
		GetByName: func(ctx context.Context, name string) (*models.Color, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			for _, c := range s.colors {
				if c.ColorName == name {
					found := c
					return &found, nil
				}
			}
			return nil, nil
		},
		Create: func(ctx context.Context, req models.CreateColorRequest) (*models.Color, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.createErr != nil {
				return nil, s.createErr
			}
			s.nextID++
			c := models.Color{ColorID: s.nextID, ColorName: req.ColorName, Status: models.StatusActive}
			s.colors[c.ColorID] = c
			return &c, nil
		},
		Update: func(ctx context.Context, id int64, req models.UpdateColorRequest) (*models.Color, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			c, ok := s.colors[id]
			if !ok {
				return nil, errors.New("color not found")
			}
			c.ColorName = req.ColorName
			if req.Status != "" {
				c.Status = req.Status
			}
			s.colors[id] = c
			return &c, nil
		},
		Delete: func(ctx context.Context, id int64) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.deleteErr != nil {
				return s.deleteErr
			}
			delete(s.colors, id)
			return nil
		},
		CreateName: func(req models.CreateColorRequest) string { return req.ColorName },
		UpdateName: func(req models.UpdateColorRequest) string { return req.ColorName },
	}
}

func setupController(t *testing.T, store *colorStore, accept bool) (*ColorController, *feedback.Recorder) {
	t.Helper()
	rec := feedback.NewRecorder(accept)
	ctrl := New(store.config(), rec, rec)
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return ctrl, rec
}

func TestCreateFlow(t *testing.T) {
	ctx := context.Background()
	store := newColorStore("Red")
	ctrl, rec := setupController(t, store, true)

	ctrl.OpenCreate()
	created, err := ctrl.SubmitCreate(ctx, models.CreateColorRequest{ColorName: "Blue"})
	if err != nil {
		t.Fatalf("SubmitCreate: %v", err)
	}
	if created == nil || created.ColorName != "Blue" {
		t.Fatalf("created = %+v, want Blue", created)
	}

	if len(rec.Confirmations) != 1 || !strings.Contains(rec.Confirmations[0], `"Blue"`) {
		t.Errorf("confirmations = %v, want one naming Blue", rec.Confirmations)
	}
	wantCues := []feedback.Kind{feedback.KindConfirm, feedback.KindSuccess}
	if len(rec.Cues) != 2 || rec.Cues[0] != wantCues[0] || rec.Cues[1] != wantCues[1] {
		t.Errorf("cues = %v, want %v", rec.Cues, wantCues)
	}
	if len(rec.Notifications) != 1 || rec.Notifications[0].Kind != feedback.KindSuccess {
		t.Errorf("notifications = %v, want one success", rec.Notifications)
	}

	if ctrl.ModalOpen() {
		t.Error("form session still open after a successful create")
	}
	if got := len(ctrl.List()); got != 2 {
		t.Errorf("list has %d entries after create+refresh, want 2", got)
	}
}

func TestSubmitWithoutSession(t *testing.T) {
	ctx := context.Background()
	ctrl, _ := setupController(t, newColorStore("Red"), true)

	if _, err := ctrl.SubmitCreate(ctx, models.CreateColorRequest{ColorName: "Blue"}); !errors.Is(err, ErrNoFormSession) {
		t.Errorf("SubmitCreate without a session = %v, want ErrNoFormSession", err)
	}
	if _, err := ctrl.SubmitUpdate(ctx, models.UpdateColorRequest{ColorName: "Blue"}); !errors.Is(err, ErrNoFormSession) {
		t.Errorf("SubmitUpdate without a session = %v, want ErrNoFormSession", err)
	}
}

func TestCreateValidationFailure(t *testing.T) {
	ctx := context.Background()
	store := newColorStore("Red")
	ctrl, rec := setupController(t, store, true)

	ctrl.OpenCreate()
	_, err := ctrl.SubmitCreate(ctx, models.CreateColorRequest{ColorName: ""})
	if err == nil {
		t.Fatal("expected a validation error for the empty name")
	}

	if len(rec.Confirmations) != 0 {
		t.Error("validation failure still asked for confirmation")
	}
	if got := rec.Errors(); len(got) != 1 {
		t.Errorf("error notifications = %v, want exactly one", got)
	}
	if !ctrl.ModalOpen() {
		t.Error("form session closed on a validation failure")
	}
	if got := len(ctrl.List()); got != 1 {
		t.Errorf("list changed on a validation failure, has %d entries", got)
	}
}

func TestCreateDuplicateNameBlocked(t *testing.T) {
	ctx := context.Background()
	store := newColorStore("Red")
	ctrl, rec := setupController(t, store, true)

	ctrl.OpenCreate()
	// Duplicate detection is case-insensitive even though the lookup
	// endpoint matches exactly.
	if _, err := ctrl.SubmitCreate(ctx, models.CreateColorRequest{ColorName: "RED"}); !errors.Is(err, ErrNameTaken) {
		t.Fatalf("SubmitCreate duplicate = %v, want ErrNameTaken", err)
	}
	if len(rec.Confirmations) != 0 {
		t.Error("duplicate name still asked for confirmation")
	}
	if got := len(store.colors); got != 1 {
		t.Errorf("store has %d colors, duplicate create went through", got)
	}
}

func TestCreateDeclined(t *testing.T) {
	ctx := context.Background()
	store := newColorStore("Red")
	ctrl, rec := setupController(t, store, false)

	ctrl.OpenCreate()
	if _, err := ctrl.SubmitCreate(ctx, models.CreateColorRequest{ColorName: "Blue"}); !errors.Is(err, ErrCancelled) {
		t.Fatalf("declined SubmitCreate = %v, want ErrCancelled", err)
	}

	if got := len(store.colors); got != 1 {
		t.Errorf("store has %d colors, declined create went through", got)
	}
	if !ctrl.ModalOpen() {
		t.Error("form session closed after a declined confirmation")
	}
	if len(rec.Cues) != 0 {
		t.Errorf("cues = %v, want none for a declined confirmation", rec.Cues)
	}
}

func TestCreateServerFailure(t *testing.T) {
	ctx := context.Background()
	store := newColorStore("Red")
	store.createErr = errors.New("color name must be unique")
	ctrl, rec := setupController(t, store, true)

	ctrl.OpenCreate()
	if _, err := ctrl.SubmitCreate(ctx, models.CreateColorRequest{ColorName: "Blue"}); err == nil {
		t.Fatal("expected the server error to surface")
	}

	if !ctrl.ModalOpen() {
		t.Error("form session closed on a failed create")
	}
	if got := len(ctrl.List()); got != 1 {
		t.Errorf("list changed on a failed create, has %d entries", got)
	}
	// One error notification from the mutation, nothing more.
	if got := rec.Errors(); len(got) != 1 || got[0] != "color name must be unique" {
		t.Errorf("error notifications = %v, want the server message exactly once", got)
	}
	if rec.Cues[len(rec.Cues)-1] != feedback.KindError {
		t.Errorf("cues = %v, want the error cue last", rec.Cues)
	}
}

func TestUpdateSelfRenameAllowed(t *testing.T) {
	ctx := context.Background()
	store := newColorStore("Red", "Blue")
	ctrl, _ := setupController(t, store, true)

	// Changing only the capitalization of the record's own name is not a
	// duplicate.
	if err := ctrl.OpenEdit(1); err != nil {
		t.Fatalf("OpenEdit: %v", err)
	}
	updated, err := ctrl.SubmitUpdate(ctx, models.UpdateColorRequest{ColorName: "RED"})
	if err != nil {
		t.Fatalf("SubmitUpdate: %v", err)
	}
	if updated.ColorName != "RED" {
		t.Errorf("updated name = %q, want RED", updated.ColorName)
	}
}

func TestUpdateToExistingNameBlocked(t *testing.T) {
	ctx := context.Background()
	store := newColorStore("Red", "Blue")
	ctrl, _ := setupController(t, store, true)

	if err := ctrl.OpenEdit(2); err != nil {
		t.Fatalf("OpenEdit: %v", err)
	}
	if _, err := ctrl.SubmitUpdate(ctx, models.UpdateColorRequest{ColorName: "red"}); !errors.Is(err, ErrNameTaken) {
		t.Fatalf("SubmitUpdate to a taken name = %v, want ErrNameTaken", err)
	}
}

func TestDeleteOptimisticThenReconciled(t *testing.T) {
	ctx := context.Background()
	store := newColorStore("Red", "Blue")
	ctrl, rec := setupController(t, store, true)

	// The backend lags: the delete succeeds but list responses still
	// contain the deleted record.
	store.mu.Lock()
	store.listFrozen = []models.Color{
		{ColorID: 1, ColorName: "Red", Status: models.StatusActive},
		{ColorID: 2, ColorName: "Blue", Status: models.StatusActive},
	}
	store.mu.Unlock()

	if err := ctrl.DeleteByID(ctx, 2); err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}
	if _, ok := store.colors[2]; ok {
		t.Fatal("delete never reached the store")
	}

	// The refresh response wins over the optimistic removal.
	if got := len(ctrl.List()); got != 2 {
		t.Errorf("list has %d entries, want the server snapshot of 2", got)
	}
	if len(rec.Notifications) != 1 || rec.Notifications[0].Kind != feedback.KindSuccess {
		t.Errorf("notifications = %v, want one success", rec.Notifications)
	}
}

func TestDeleteDeclined(t *testing.T) {
	ctx := context.Background()
	store := newColorStore("Red", "Blue")
	ctrl, rec := setupController(t, store, false)

	if err := ctrl.DeleteByID(ctx, 1); !errors.Is(err, ErrCancelled) {
		t.Fatalf("declined DeleteByID = %v, want ErrCancelled", err)
	}
	if got := len(store.colors); got != 2 {
		t.Errorf("store has %d colors, declined delete went through", got)
	}
	if !strings.Contains(rec.Confirmations[0], "This cannot be undone.") {
		t.Errorf("confirmation %q does not warn about irreversibility", rec.Confirmations[0])
	}
}

func TestDeleteFailureLeavesListIntact(t *testing.T) {
	ctx := context.Background()
	store := newColorStore("Red", "Blue")
	store.deleteErr = errors.New("color is referenced by 3 products")
	ctrl, rec := setupController(t, store, true)

	if err := ctrl.DeleteByID(ctx, 1); err == nil {
		t.Fatal("expected the delete error to surface")
	}
	if got := len(ctrl.List()); got != 2 {
		t.Errorf("list has %d entries after a failed delete, want 2 untouched", got)
	}
	if got := rec.Errors(); len(got) != 1 || got[0] != "color is referenced by 3 products" {
		t.Errorf("error notifications = %v, want the server message exactly once", got)
	}
}

func TestIncludeInactiveTriggersRefetch(t *testing.T) {
	ctx := context.Background()
	store := newColorStore("Red")
	store.mu.Lock()
	store.colors[9] = models.Color{ColorID: 9, ColorName: "Ivory", Status: models.StatusInactive}
	store.mu.Unlock()
	ctrl, _ := setupController(t, store, true)

	if got := len(ctrl.List()); got != 1 {
		t.Fatalf("active-only list has %d entries, want 1", got)
	}

	if err := ctrl.SetIncludeInactive(ctx, true); err != nil {
		t.Fatalf("SetIncludeInactive: %v", err)
	}
	if got := len(ctrl.List()); got != 2 {
		t.Errorf("inclusive list has %d entries, want 2", got)
	}

	// Flipping to the same value is a no-op.
	calls := store.listCalls
	if err := ctrl.SetIncludeInactive(ctx, true); err != nil {
		t.Fatalf("SetIncludeInactive: %v", err)
	}
	if store.listCalls != calls {
		t.Error("unchanged toggle refetched the list")
	}
}

func TestFilterEntities(t *testing.T) {
	list := []models.Color{
		{ColorID: 1, ColorName: "Navy Blue", Status: models.StatusActive},
		{ColorID: 2, ColorName: "Sky Blue", Status: models.StatusInactive},
		{ColorID: 3, ColorName: "Red", Status: models.StatusActive},
	}

	tests := []struct {
		search string
		status models.Status
		want   []int64
	}{
		{"", "", []int64{1, 2, 3}},
		{"blue", "", []int64{1, 2}},
		{"  BLUE ", "", []int64{1, 2}},
		{"", models.StatusActive, []int64{1, 3}},
		{"blue", models.StatusActive, []int64{1}},
		{"green", "", nil},
	}

	for _, tt := range tests {
		got := FilterEntities(list, tt.search, tt.status)
		var ids []int64
		for _, c := range got {
			ids = append(ids, c.ColorID)
		}
		if len(ids) != len(tt.want) {
			t.Errorf("FilterEntities(%q, %q) = %v, want ids %v", tt.search, tt.status, ids, tt.want)
			continue
		}
		for i := range ids {
			if ids[i] != tt.want[i] {
				t.Errorf("FilterEntities(%q, %q) = %v, want ids %v", tt.search, tt.status, ids, tt.want)
				break
			}
		}
	}

	if len(list) != 3 {
		t.Error("FilterEntities modified its input")
	}
}

func TestCategoryParentValidation(t *testing.T) {
	ctx := context.Background()
	rec := feedback.NewRecorder(true)

	snapshot := []models.Category{
		{CategoryID: 1, CategoryName: "Clothing"},
		{CategoryID: 2, CategoryName: "Shirts", ParentID: ptr(int64(1))},
		{CategoryID: 3, CategoryName: "T-Shirts", ParentID: ptr(int64(2))},
	}

	cfg := Config[models.Category, models.CreateCategoryRequest, models.UpdateCategoryRequest]{
		Label: "category",
		List: func(ctx context.Context, includeInactive bool) ([]models.Category, error) {
			return append([]models.Category(nil), snapshot...), nil
		},
		GetByName: func(ctx context.Context, name string) (*models.Category, error) { return nil, nil },
		Update: func(ctx context.Context, id int64, req models.UpdateCategoryRequest) (*models.Category, error) {
			t.Fatal("update reached the server despite the cycle")
			return nil, nil
		},
		Delete:     func(ctx context.Context, id int64) error { return nil },
		CreateName: func(req models.CreateCategoryRequest) string { return req.CategoryName },
		UpdateName: func(req models.UpdateCategoryRequest) string { return req.CategoryName },
		ValidateUpdate: func(id int64, req models.UpdateCategoryRequest, snap []models.Category) error {
			if req.ParentID != nil && models.ParentWouldCycle(snap, id, *req.ParentID) {
				return errors.New("parent assignment would create a cycle in the category tree")
			}
			return nil
		},
	}

	ctrl := New(cfg, rec, rec)
	if err := ctrl.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Re-parenting Clothing under T-Shirts closes a loop.
	if err := ctrl.OpenEdit(1); err != nil {
		t.Fatalf("OpenEdit: %v", err)
	}
	_, err := ctrl.SubmitUpdate(ctx, models.UpdateCategoryRequest{CategoryName: "Clothing", ParentID: ptr(int64(3))})
	if err == nil {
		t.Fatal("expected the cycle to be rejected")
	}
	if got := rec.Errors(); len(got) != 1 {
		t.Errorf("error notifications = %v, want exactly one", got)
	}
}

func ptr[T any](v T) *T { return &v }
