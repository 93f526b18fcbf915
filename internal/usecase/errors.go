package usecase

import (
	"errors"
	"strings"

	"github.com/coachmate/matchday/internal/domain/squad"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrConflict              = errors.New("conflicting game state")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// SquadValidationError carries the structured validation result when a
// lifecycle transition is rejected. It matches ErrInvalidInput so generic
// error mapping treats it as a client error, while callers that care can
// recover the individual messages with errors.As.
type SquadValidationError struct {
	Result squad.Result

	// ConfirmationOnly is true when only soft warnings remain and the caller
	// may retry with explicit acknowledgement.
	ConfirmationOnly bool
}

func (e *SquadValidationError) Error() string {
	messages := e.Result.HardMessages()
	if e.ConfirmationOnly {
		messages = e.Result.SoftMessages()
	}

	texts := make([]string, 0, len(messages))
	for _, m := range messages {
		texts = append(texts, m.Text)
	}
	if len(texts) == 0 {
		return "squad validation failed"
	}
	return "squad validation failed: " + strings.Join(texts, "; ")
}

func (e *SquadValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
