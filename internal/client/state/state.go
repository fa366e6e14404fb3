// Package state models the client's synchronization state machine as pure
// transition functions: State in, State out. The CLI layer owns timers,
// prompts, and network calls; nothing here performs I/O.
//
// The cached user list is only ever replaced wholesale from a fresh server
// read. Mutations never patch it in place, so the cache cannot drift from
// the authoritative store.
package state

import (
	"time"

	"github.com/dpetrovs/registro/internal/client/models"
)

// NoticeTTL is how long a transient notification stays on screen before it
// clears itself.
const NoticeTTL = 4 * time.Second

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
)

type NoticeKind int

const (
	NoticeNone NoticeKind = iota
	NoticeSuccess
	NoticeError
)

// Notice is a transient notification. Seq increases with every new notice;
// a clear request carries the Seq it intends to clear, so a timer set for
// an old notice can never wipe a newer one.
type Notice struct {
	Kind NoticeKind
	Text string
	Seq  uint64
}

// Draft mirrors the three unsaved form fields as the user typed them.
// Age stays a raw string until Parse produces a typed, range-checked value.
type Draft struct {
	Name  string
	Age   string
	Email string
}

func (d Draft) Empty() bool {
	return d.Name == "" && d.Age == "" && d.Email == ""
}

// State is the complete client-side state: current phase, the cached user
// list, the pending form draft, and the transient notice.
type State struct {
	Phase  Phase
	Users  []models.User
	Draft  Draft
	Notice Notice
}

func New() State {
	return State{Phase: PhaseIdle}
}

func withNotice(s State, kind NoticeKind, text string) State {
	s.Notice = Notice{Kind: kind, Text: text, Seq: s.Notice.Seq + 1}
	return s
}

// StartRequest marks an in-flight network call.
func StartRequest(s State) State {
	s.Phase = PhaseLoading
	return s
}

// ListLoaded replaces the cached list wholesale with a fresh server read.
func ListLoaded(s State, users []models.User) State {
	s.Phase = PhaseIdle
	s.Users = users
	return s
}

// LoadFailed reports a failed list fetch. The previous cache stays as-is
// (empty on first load).
func LoadFailed(s State, text string) State {
	s.Phase = PhaseIdle
	return withNotice(s, NoticeError, text)
}

// SetDraft stores the form fields as typed by the user.
func SetDraft(s State, d Draft) State {
	s.Draft = d
	return s
}

// DraftRejected reports a local validation failure. No network call was
// made; the draft stays so the user can correct it.
func DraftRejected(s State, text string) State {
	return withNotice(s, NoticeError, text)
}

// CreateSucceeded clears the draft and shows the success notice. The caller
// follows up with a full list reload.
func CreateSucceeded(s State) State {
	s.Phase = PhaseIdle
	s.Draft = Draft{}
	return withNotice(s, NoticeSuccess, "user registered")
}

// CreateFailed keeps the draft so the user can correct and resubmit.
func CreateFailed(s State, text string) State {
	s.Phase = PhaseIdle
	return withNotice(s, NoticeError, text)
}

// DeleteSucceeded shows the success notice. The caller follows up with a
// full list reload; the cached list is never mutated optimistically.
func DeleteSucceeded(s State) State {
	s.Phase = PhaseIdle
	return withNotice(s, NoticeSuccess, "user deleted")
}

func DeleteFailed(s State, text string) State {
	s.Phase = PhaseIdle
	return withNotice(s, NoticeError, text)
}

// ClearNotice removes the notice identified by seq. A stale seq (a newer
// notice has since replaced the one the timer was set for) is a no-op.
func ClearNotice(s State, seq uint64) State {
	if s.Notice.Seq != seq {
		return s
	}
	s.Notice = Notice{Seq: s.Notice.Seq}
	return s
}
