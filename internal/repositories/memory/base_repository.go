package memory

import (
	"context"
	"net/http"
	"sync"

	"github.com/SscSPs/brew_notes_app/internal/apperrors"
)

// BaseRepository provides common functionality for all in-memory repositories.
// gin serves requests on many goroutines, so every store is guarded by mu.
type BaseRepository struct {
	mu sync.RWMutex
}

// checkCtx refuses work on a cancelled or expired context.
func (r *BaseRepository) checkCtx(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewAppError(http.StatusServiceUnavailable, "request cancelled", err)
	}
	return nil
}
