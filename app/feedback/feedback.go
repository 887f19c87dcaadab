package feedback

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
)

// Kind selects the feedback vocabulary entry: both the notification styling
// and the audio cue are keyed by it.
type Kind string

const (
	KindConfirm Kind = "confirm"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Feedback is the outcome-reporting capability injected into the fetch
// primitives and controllers. Implementations must tolerate concurrent use.
type Feedback interface {
	// Notify reports a transient, human-readable outcome message.
	Notify(kind Kind, message string)
	// Cue plays the short audio cue for the kind. Playback is cosmetic:
	// implementations swallow every platform failure.
	Cue(kind Kind)
}

// Confirmer gates state-changing actions behind an explicit user decision.
type Confirmer interface {
	Confirm(message string) bool
}

// SoundConfig maps cue kinds to audio files played through an external
// player command. Unset entries mean no cue for that kind.
type SoundConfig struct {
	Player  string
	Confirm string
	Success string
	Error   string
}

func (sc SoundConfig) path(kind Kind) string {
	switch kind {
	case KindConfirm:
		return sc.Confirm
	case KindSuccess:
		return sc.Success
	case KindError:
		return sc.Error
	}
	return ""
}

// Terminal prints notifications to a writer and plays sound cues through an
// external audio player, best-effort.
type Terminal struct {
	Out    io.Writer
	Sounds SoundConfig
}

func NewTerminal(sounds SoundConfig) *Terminal {
	return &Terminal{Out: os.Stderr, Sounds: sounds}
}

func (t *Terminal) Notify(kind Kind, message string) {
	prefix := "ℹ️"
	switch kind {
	case KindSuccess:
		prefix = "✅"
	case KindError:
		prefix = "❌"
	}
	fmt.Fprintf(t.Out, "%s %s\n", prefix, message)
}

// Cue spawns the configured player and does not wait for it. Any failure
// (no player, missing file, no audio device) is ignored; the cue is never
// load-bearing.
func (t *Terminal) Cue(kind Kind) {
	path := t.Sounds.path(kind)
	if path == "" || t.Sounds.Player == "" {
		return
	}
	cmd := exec.Command(t.Sounds.Player, path)
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Start(); err != nil {
		return
	}
	go func() { _ = cmd.Wait() }()
}

// TerminalConfirmer prompts on the terminal and accepts y/yes.
type TerminalConfirmer struct {
	In  io.Reader
	Out io.Writer
}

func NewTerminalConfirmer() *TerminalConfirmer {
	return &TerminalConfirmer{In: os.Stdin, Out: os.Stderr}
}

func (c *TerminalConfirmer) Confirm(message string) bool {
	fmt.Fprintf(c.Out, "%s [y/N]: ", message)
	reader := bufio.NewReader(c.In)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// Recorder captures notifications and cues for assertions in tests, and
// answers every confirmation with a fixed decision.
type Recorder struct {
	mu sync.Mutex

	Accept        bool
	Notifications []RecordedNote
	Cues          []Kind
	Confirmations []string
}

type RecordedNote struct {
	Kind    Kind
	Message string
}

func NewRecorder(accept bool) *Recorder {
	return &Recorder{Accept: accept}
}

func (r *Recorder) Notify(kind Kind, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Notifications = append(r.Notifications, RecordedNote{Kind: kind, Message: message})
}

func (r *Recorder) Cue(kind Kind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Cues = append(r.Cues, kind)
}

func (r *Recorder) Confirm(message string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Confirmations = append(r.Confirmations, message)
	return r.Accept
}

// Errors returns the recorded error-kind notification messages.
func (r *Recorder) Errors() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var msgs []string
	for _, n := range r.Notifications {
		if n.Kind == KindError {
			msgs = append(msgs, n.Message)
		}
	}
	return msgs
}

// Discard ignores everything. Useful for wiring code paths that must not
// produce user-visible output.
type Discard struct{}

func (Discard) Notify(Kind, string) {}
func (Discard) Cue(Kind)            {}

var _ Feedback = (*Terminal)(nil)
var _ Feedback = (*Recorder)(nil)
var _ Feedback = Discard{}
var _ Confirmer = (*TerminalConfirmer)(nil)
var _ Confirmer = (*Recorder)(nil)
