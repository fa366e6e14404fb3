package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dpetrovs/registro/internal/client/state"
	"github.com/dpetrovs/registro/internal/common"
)

// notifyText reduces a transport error to the short message shown in the
// notification area.
func notifyText(err error) string {
	switch {
	case errors.Is(err, common.ErrDuplicateEmail):
		return common.ErrDuplicateEmail.Error()
	case errors.Is(err, common.ErrNotFound):
		return common.ErrNotFound.Error()
	case errors.Is(err, common.ErrValidation):
		return common.ErrValidation.Error()
	default:
		return common.ErrUnavailable.Error()
	}
}

// Refresh reloads the user list from the server and replaces the cache
// wholesale. On failure the previous cache stays.
func (a *App) Refresh(ctx context.Context) error {
	a.transition(state.StartRequest)

	users, err := a.api.List(ctx)
	if err != nil {
		a.transition(func(s state.State) state.State {
			return state.LoadFailed(s, "failed to load users")
		})
		a.printNotice()
		return err
	}

	a.transition(func(s state.State) state.State {
		return state.ListLoaded(s, users)
	})
	return nil
}

// List prints the cached user list. It never contacts the server; use
// Refresh for that.
func (a *App) List(ctx context.Context) error {
	s := a.snapshot()

	fmt.Fprintf(a.out, "Registered users (%d)\n", len(s.Users))
	if len(s.Users) == 0 {
		fmt.Fprintln(a.out, "  no users registered yet")
		return nil
	}
	for _, u := range s.Users {
		fmt.Fprintln(a.out, u)
	}
	return nil
}

// Add runs the interactive registration form. Fields are prefilled from
// the preserved draft, so a failed submit can be corrected instead of
// retyped. A draft that fails local validation never reaches the network.
func (a *App) Add(ctx context.Context) error {
	prev := a.snapshot().Draft

	name, err := GetWithDefault(a.reader, "Name", prev.Name, a.out)
	if err != nil {
		return err
	}
	age, err := GetWithDefault(a.reader, "Age", prev.Age, a.out)
	if err != nil {
		return err
	}
	email, err := GetWithDefault(a.reader, "Email", prev.Email, a.out)
	if err != nil {
		return err
	}

	draft := state.Draft{Name: name, Age: age, Email: email}
	a.transition(func(s state.State) state.State {
		return state.SetDraft(s, draft)
	})

	parsed, err := draft.Parse()
	if err != nil {
		a.transition(func(s state.State) state.State {
			return state.DraftRejected(s, err.Error())
		})
		a.printNotice()
		return nil
	}

	a.transition(state.StartRequest)

	if _, err := a.api.Create(ctx, parsed.Name, parsed.Age, parsed.Email); err != nil {
		a.transition(func(s state.State) state.State {
			return state.CreateFailed(s, notifyText(err))
		})
		a.printNotice()
		return nil
	}

	a.transition(state.CreateSucceeded)
	a.printNotice()

	// reconcile: the created id and timestamp only exist server-side
	return a.Refresh(ctx)
}

// Delete removes a user by id after an explicit confirmation. Declining
// leaves all state untouched.
func (a *App) Delete(ctx context.Context, idArg string) error {
	id, err := strconv.ParseInt(idArg, 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: delete <id>")
		return nil
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Delete user %d?", id), a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "cancelled")
		return nil
	}

	a.transition(state.StartRequest)

	if err := a.api.Delete(ctx, id); err != nil {
		a.transition(func(s state.State) state.State {
			return state.DeleteFailed(s, notifyText(err))
		})
		a.printNotice()
		return nil
	}

	a.transition(state.DeleteSucceeded)
	a.printNotice()

	return a.Refresh(ctx)
}
