// Package app is the application core: one state object, one dispatch entry
// point. The presentation layer feeds it commands and renders snapshots; it
// never touches the store directly.
package app

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todoterm/internal/filter"
	"github.com/idilsaglam/todoterm/internal/model"
	"github.com/idilsaglam/todoterm/internal/page"
	"github.com/idilsaglam/todoterm/internal/store"
)

// Effect is remote work scheduled by Dispatch. It runs off the update loop,
// performs I/O only, and returns a completion command that must be fed back
// into Dispatch. Effects never mutate state themselves, which keeps all
// state transitions on the single update loop.
type Effect func(ctx context.Context) Command

type App struct {
	store  *store.Store
	remote store.Remote
	log    *log.Logger

	pageSize int
	spec     filter.Spec
	current  int

	// loadSeq guards against two in-flight loads resolving out of order:
	// only the most recent load's result is applied.
	loadSeq int
	loading bool
}

func New(st *store.Store, remote store.Remote, pageSize int, logger *log.Logger) *App {
	if pageSize < 1 {
		pageSize = page.DefaultSize
	}
	return &App{
		store:    st,
		remote:   remote,
		log:      logger,
		pageSize: pageSize,
		current:  1,
	}
}

// Snapshot is everything the presentation layer needs on each state change.
type Snapshot struct {
	Visible   []model.Todo
	Page      int
	PageCount int
	Window    []page.Entry
	Range     string
	Filtered  int
	Counts    model.Counts
	Spec      filter.Spec
	Loading   bool
}

func (a *App) Snapshot() Snapshot {
	filtered := filter.Apply(a.store.Todos(), a.spec)
	n := len(filtered)
	return Snapshot{
		Visible:   page.Slice(filtered, a.pageSize, a.current),
		Page:      a.current,
		PageCount: page.Count(n, a.pageSize),
		Window:    page.Window(a.current, page.Count(n, a.pageSize)),
		Range:     page.RangeLabel(n, a.pageSize, a.current),
		Filtered:  n,
		Counts:    a.store.Counts(),
		Spec:      a.spec,
		Loading:   a.loading,
	}
}

// Dispatch applies cmd. Local mutations happen synchronously before the
// returned Effect (if any) is run, so a re-render right after Dispatch
// always sees the latest local state. The returned error is user-facing:
// validation failures, and remote failures for load/add. Sync failures for
// toggle/delete are swallowed here by design.
func (a *App) Dispatch(cmd Command) (Effect, error) {
	switch c := cmd.(type) {
	case CmdLoad:
		a.loadSeq++
		a.loading = true
		seq := a.loadSeq
		return func(ctx context.Context) Command {
			todos, err := a.remote.ListTodos(ctx)
			return loadDone{seq: seq, todos: todos, err: err}
		}, nil

	case loadDone:
		if c.seq != a.loadSeq {
			a.log.Debug("dropping stale load result", "seq", c.seq, "want", a.loadSeq)
			return nil, nil
		}
		a.loading = false
		if c.err != nil {
			return nil, c.err
		}
		a.store.Replace(c.todos)
		a.current = 1
		return nil, nil

	case CmdAdd:
		title, err := store.ValidateTitle(c.Title)
		if err != nil {
			return nil, err
		}
		userID := c.UserID
		return func(ctx context.Context) Command {
			todo, err := a.remote.CreateTodo(ctx, title, userID)
			return addDone{todo: todo, err: err}
		}, nil

	case addDone:
		if c.err != nil {
			return nil, c.err
		}
		a.store.Prepend(c.todo)
		a.clampPage()
		return nil, nil

	case CmdToggle:
		t, ok := a.store.ToggleComplete(c.ID)
		if !ok {
			return nil, nil
		}
		return func(ctx context.Context) Command {
			return syncDone{op: "toggle", id: t.ID, err: a.remote.SetCompleted(ctx, t.ID, t.Completed)}
		}, nil

	case CmdDelete:
		if !c.Confirmed {
			return nil, nil
		}
		if !a.store.Delete(c.ID) {
			return nil, nil
		}
		a.clampPage()
		id := c.ID
		return func(ctx context.Context) Command {
			return syncDone{op: "delete", id: id, err: a.remote.DeleteTodo(ctx, id)}
		}, nil

	case syncDone:
		// Local state is king: the optimistic mutation stands even when the
		// remote write failed.
		if c.err != nil {
			a.log.Warn("remote sync failed, keeping local change", "op", c.op, "id", c.id, "err", c.err)
		}
		return nil, nil

	case CmdFilter:
		a.spec = filter.Spec{Search: c.Search, From: c.From, To: c.To}
		a.current = 1
		return nil, nil

	case CmdClearFilters:
		a.spec = filter.Spec{}
		a.current = 1
		return nil, nil

	case CmdPage:
		n := len(filter.Apply(a.store.Todos(), a.spec))
		if !page.Valid(n, a.pageSize, c.Page) {
			// Rejected outright, never clamped to the nearest valid page.
			return nil, nil
		}
		a.current = c.Page
		return nil, nil
	}
	return nil, nil
}

// clampPage keeps the current page addressable after the filtered set
// shrinks underneath it (a delete on the last page, for instance).
func (a *App) clampPage() {
	n := len(filter.Apply(a.store.Todos(), a.spec))
	if max := page.Count(n, a.pageSize); a.current > max {
		a.current = max
	}
}
