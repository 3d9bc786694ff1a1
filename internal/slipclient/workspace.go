package slipclient

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DeletePrompt is the question put to the confirmer before a delete.
const DeletePrompt = "Are you sure you want to delete this salary slip?"

var ErrSlipNotListed = errors.New("salary slip is not in the current list")

// SlipAPI is the subset of Client the Workspace drives.
type SlipAPI interface {
	List(ctx context.Context) ([]Slip, error)
	Create(ctx context.Context, d Draft) (Slip, error)
	Update(ctx context.Context, id string, d Draft) (*Slip, error)
	Delete(ctx context.Context, id string) (string, error)
}

// Confirmer answers a yes/no prompt.
type Confirmer func(prompt string) bool

// Row is a listed slip with its rendered total.
type Row struct {
	Slip
	Total string
}

// Workspace is the console's state: the fetched list, the search term, the
// draft form and the edit flag.
type Workspace struct {
	api    SlipAPI
	logger *zap.Logger

	refresh singleflight.Group

	mu      sync.RWMutex
	mounted bool
	slips   []Slip
	search  string
	draft   Draft
	editing bool
}

func NewWorkspace(api SlipAPI) *Workspace {
	return &Workspace{
		api:    api,
		logger: zap.L().Named("slipclient.workspace"),
		slips:  []Slip{},
	}
}

// Mount fetches the list until one fetch has succeeded. Later calls are
// no-ops; use Refresh to re-read.
func (w *Workspace) Mount(ctx context.Context) error {
	w.mu.RLock()
	mounted := w.mounted
	w.mu.RUnlock()
	if mounted {
		return nil
	}
	return w.Refresh(ctx)
}

// Refresh replaces the list with the API's. Overlapping calls share one
// request. On failure the current list is kept.
func (w *Workspace) Refresh(ctx context.Context) error {
	_, err, _ := w.refresh.Do("list", func() (any, error) {
		slips, err := w.api.List(ctx)
		if err != nil {
			return nil, err
		}
		w.mu.Lock()
		w.slips = slips
		w.mounted = true
		w.mu.Unlock()
		return nil, nil
	})
	if err != nil {
		w.logger.Error("error fetching slips", zap.Error(err))
	}
	return err
}

func (w *Workspace) Slips() []Slip {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]Slip(nil), w.slips...)
}

func (w *Workspace) SetSearch(term string) {
	w.mu.Lock()
	w.search = term
	w.mu.Unlock()
}

func (w *Workspace) Search() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.search
}

// Visible returns the listed slips matching the search term.
func (w *Workspace) Visible() []Slip {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return FilterByEmployeeNumber(w.slips, w.search)
}

// Rows returns the visible slips with their totals.
func (w *Workspace) Rows() []Row {
	visible := w.Visible()
	rows := make([]Row, 0, len(visible))
	for _, s := range visible {
		rows = append(rows, Row{Slip: s, Total: FormatTotal(Total(s))})
	}
	return rows
}

func (w *Workspace) Draft() Draft {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.draft
}

// SetDraft replaces the form inputs. The id of the record being edited is
// kept.
func (w *Workspace) SetDraft(d Draft) {
	w.mu.Lock()
	d.ID = w.draft.ID
	w.draft = d
	w.mu.Unlock()
}

func (w *Workspace) Editing() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.editing
}

// Edit loads a listed slip into the draft and enters edit mode.
func (w *Workspace) Edit(id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, s := range w.slips {
		if s.ID == id {
			w.draft = DraftFromSlip(s)
			w.editing = true
			return nil
		}
	}
	return ErrSlipNotListed
}

// Submit updates the edited slip or creates a new one from the draft. The
// draft is cleared, edit mode left and the list fetched again whether or not
// the mutation succeeded. The mutation error is returned.
func (w *Workspace) Submit(ctx context.Context) error {
	w.mu.RLock()
	draft := w.draft
	editing := w.editing
	w.mu.RUnlock()

	var err error
	if editing {
		_, err = w.api.Update(ctx, draft.ID, draft)
	} else {
		_, err = w.api.Create(ctx, draft)
	}
	if err != nil {
		w.logger.Error("error saving slip", zap.Bool("editing", editing), zap.Error(err))
	}

	w.mu.Lock()
	w.draft = Draft{}
	w.editing = false
	w.mu.Unlock()

	_ = w.Refresh(ctx)
	return err
}

// Delete removes a slip once confirm agrees, then fetches the list again.
// A transport failure leaves the list as it was. It reports whether a delete
// was attempted.
func (w *Workspace) Delete(ctx context.Context, id string, confirm Confirmer) (bool, error) {
	if confirm == nil || !confirm(DeletePrompt) {
		return false, nil
	}

	if _, err := w.api.Delete(ctx, id); err != nil {
		w.logger.Error("error deleting slip", zap.String("id", id), zap.Error(err))
		// the API answered, so the list may have changed
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			_ = w.Refresh(ctx)
		}
		return true, err
	}

	_ = w.Refresh(ctx)
	return true, nil
}
