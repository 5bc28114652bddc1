package app

import (
	"time"

	"github.com/idilsaglam/todoterm/internal/model"
)

// Command is anything Dispatch accepts. User intents come from the
// presentation layer; completion commands are produced by effects and fed
// back through the same entry point.
type Command interface{ command() }

// User intents.

type CmdLoad struct{}

type CmdAdd struct {
	Title  string
	UserID int
}

type CmdToggle struct{ ID int }

// CmdDelete carries the confirmation answer; an unconfirmed delete is a no-op.
type CmdDelete struct {
	ID        int
	Confirmed bool
}

type CmdFilter struct {
	Search string
	From   time.Time
	To     time.Time
}

type CmdClearFilters struct{}

type CmdPage struct{ Page int }

// Completion commands, produced by effects.

type loadDone struct {
	seq   int
	todos []model.Todo
	err   error
}

type addDone struct {
	todo model.Todo
	err  error
}

// syncDone reports the outcome of a fire-and-forget remote write
// (toggle or delete). Failures are logged, never surfaced.
type syncDone struct {
	op  string
	id  int
	err error
}

func (CmdLoad) command()         {}
func (CmdAdd) command()          {}
func (CmdToggle) command()       {}
func (CmdDelete) command()       {}
func (CmdFilter) command()       {}
func (CmdClearFilters) command() {}
func (CmdPage) command()         {}
func (loadDone) command()        {}
func (addDone) command()         {}
func (syncDone) command()        {}
