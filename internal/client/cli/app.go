package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"

	"github.com/dpetrovs/registro/internal/client/api"
	"github.com/dpetrovs/registro/internal/client/config"
	"github.com/dpetrovs/registro/internal/client/state"
)

// App drives the interactive registry client. It owns the state machine
// value, the notice-expiry timers, and terminal I/O; every state change
// goes through a pure transition from the state package.
type App struct {
	config      *config.Config
	api         api.Client
	reader      *bufio.Reader
	out         io.Writer
	interactive bool

	mu sync.Mutex
	st state.State
}

func NewApp(c *config.Config) *App {
	return &App{
		config:      c,
		api:         api.NewHTTPClient(c.ServerURL, c.RequestTimeout),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
		st:          state.New(),
	}
}

func (a *App) Run(ctx context.Context) {
	if a.interactive {
		fmt.Fprintln(a.out, "Registry CLI (type 'help' for commands)")
	}

	// initial load; failure keeps the empty cache and shows the notice
	_ = a.Refresh(ctx)
	_ = a.List(ctx)

	runREPL(ctx, a, bufio.NewScanner(os.Stdin))
}

// Status renders the one-line prompt suffix.
func (a *App) Status() string {
	s := a.snapshot()
	if s.Phase == state.PhaseLoading {
		return "loading"
	}
	return fmt.Sprintf("%d users", len(s.Users))
}

func (a *App) snapshot() state.State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.st
}

// transition applies a pure state transition under the lock. If it produced
// a new notice, an expiry timer is armed for it; a stale timer firing after
// a newer notice took over is a no-op thanks to the sequence check in
// state.ClearNotice.
func (a *App) transition(f func(state.State) state.State) state.State {
	a.mu.Lock()
	prevSeq := a.st.Notice.Seq
	a.st = f(a.st)
	s := a.st
	a.mu.Unlock()

	if s.Notice.Seq != prevSeq && s.Notice.Kind != state.NoticeNone {
		a.scheduleNoticeClear(s.Notice.Seq)
	}
	return s
}

func (a *App) scheduleNoticeClear(seq uint64) {
	time.AfterFunc(state.NoticeTTL, func() {
		a.mu.Lock()
		a.st = state.ClearNotice(a.st, seq)
		a.mu.Unlock()
	})
}

func (a *App) printNotice() {
	s := a.snapshot()
	switch s.Notice.Kind {
	case state.NoticeSuccess:
		fmt.Fprintf(a.out, "[ok] %s\n", s.Notice.Text)
	case state.NoticeError:
		fmt.Fprintf(a.out, "[error] %s\n", s.Notice.Text)
	}
}
