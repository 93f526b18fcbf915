package engine

import (
	"context"
	"errors"
	"hash/fnv"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/coachmate/matchday/internal/domain/squad"
	"github.com/coachmate/matchday/internal/platform/logging"
)

// DraftWriter persists the draft composite against the remote game store.
type DraftWriter interface {
	SaveDraft(ctx context.Context, gameID string, draft squad.Draft) error
}

// SaveState is the autosaver's user-visible status indicator.
type SaveState string

const (
	SaveIdle    SaveState = "IDLE"
	SavePending SaveState = "PENDING"
	SaveSaving  SaveState = "SAVING"
	SaveError   SaveState = "ERROR"
)

type AutosaverOptions struct {
	// Debounce is the quiet period after the last edit before one write is
	// issued for the whole batch.
	Debounce time.Duration

	// HydrationGrace is the window after opening during which observed
	// changes come from hydration, not the user; they rebaseline the last
	// known snapshot instead of scheduling a write. Zero selects the one
	// second default; a negative value disables the window.
	HydrationGrace time.Duration

	Logger *logging.Logger
}

// Autosaver coalesces draft edits into debounced writes. At most one write is
// pending at a time; a write whose content hash matches the last persisted
// snapshot is skipped. Failed writes keep the dirty snapshot queued so the
// next timer tick retries; writes cancelled by session teardown are benign.
type Autosaver struct {
	writer   DraftWriter
	gameID   string
	debounce time.Duration
	grace    time.Duration
	logger   *logging.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	timer    *time.Timer
	openedAt time.Time
	baseline uint64
	pending  *squad.Draft
	state    SaveState
	closed   bool

	now func() time.Time
}

func NewAutosaver(ctx context.Context, writer DraftWriter, gameID string, opts AutosaverOptions) *Autosaver {
	if opts.Debounce <= 0 {
		opts.Debounce = 2500 * time.Millisecond
	}
	if opts.HydrationGrace == 0 {
		opts.HydrationGrace = time.Second
	}
	if opts.HydrationGrace < 0 {
		opts.HydrationGrace = 0
	}
	if opts.Logger == nil {
		opts.Logger = logging.Default()
	}

	sessionCtx, cancel := context.WithCancel(ctx)
	a := &Autosaver{
		writer:   writer,
		gameID:   gameID,
		debounce: opts.Debounce,
		grace:    opts.HydrationGrace,
		logger:   opts.Logger,
		ctx:      sessionCtx,
		cancel:   cancel,
		state:    SaveIdle,
		now:      time.Now,
	}
	a.openedAt = a.now()
	return a
}

// State reports the current save status.
func (a *Autosaver) State() SaveState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Observe records the current draft composite. Within the hydration grace
// window it only rebaselines; afterwards a semantic change restarts the
// debounce timer, and an observation identical to the persisted snapshot
// clears any pending write.
func (a *Autosaver) Observe(draft squad.Draft) {
	hash, err := contentHash(draft)
	if err != nil {
		a.logger.Error("serialize draft snapshot", "game_id", a.gameID, "error", err)
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return
	}

	if a.now().Sub(a.openedAt) < a.grace {
		a.baseline = hash
		a.pending = nil
		a.stopTimerLocked()
		a.state = SaveIdle
		return
	}

	if hash == a.baseline {
		a.pending = nil
		a.stopTimerLocked()
		if a.state == SavePending {
			a.state = SaveIdle
		}
		return
	}

	copied := draft
	a.pending = &copied
	a.state = SavePending
	a.restartTimerLocked()
}

// Close tears the session down. An in-flight write is abandoned and its
// outcome ignored.
func (a *Autosaver) Close() {
	a.mu.Lock()
	a.closed = true
	a.stopTimerLocked()
	a.pending = nil
	a.mu.Unlock()
	a.cancel()
}

func (a *Autosaver) restartTimerLocked() {
	a.stopTimerLocked()
	a.timer = time.AfterFunc(a.debounce, a.flush)
}

func (a *Autosaver) stopTimerLocked() {
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}

func (a *Autosaver) flush() {
	a.mu.Lock()
	if a.closed || a.pending == nil {
		a.mu.Unlock()
		return
	}
	draft := *a.pending
	hash, err := contentHash(draft)
	if err != nil {
		a.pending = nil
		a.state = SaveIdle
		a.mu.Unlock()
		return
	}
	if hash == a.baseline {
		a.pending = nil
		a.state = SaveIdle
		a.mu.Unlock()
		return
	}
	a.pending = nil
	a.state = SaveSaving
	ctx := a.ctx
	a.mu.Unlock()

	writeErr := a.writer.SaveDraft(ctx, a.gameID, draft)

	a.mu.Lock()
	defer a.mu.Unlock()

	switch {
	case writeErr == nil:
		a.baseline = hash
		if a.pending == nil {
			a.state = SaveIdle
		}
	case isAbort(writeErr):
		// Session torn down mid-request; not a failure, nothing to retry.
		if a.pending == nil {
			a.state = SaveIdle
		}
	default:
		a.logger.WarnContext(ctx, "draft autosave failed", "game_id", a.gameID, "error", writeErr)
		a.state = SaveError
		// Keep the unsaved snapshot queued; the baseline is not advanced so
		// the next tick re-attempts even without a further edit.
		if a.pending == nil {
			a.pending = &draft
		}
		if !a.closed {
			a.restartTimerLocked()
		}
	}
}

func isAbort(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// contentHash fingerprints the serialized composite; identical drafts always
// produce identical bytes because map keys are sorted.
func contentHash(draft squad.Draft) (uint64, error) {
	encoded, err := sonic.ConfigStd.Marshal(draft)
	if err != nil {
		return 0, err
	}
	h := fnv.New64a()
	_, _ = h.Write(encoded)
	return h.Sum64(), nil
}
