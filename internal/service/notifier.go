package service

import (
	"context"
	"time"

	"wheelhouse-backend/internal/domain"
	"wheelhouse-backend/internal/logger"
	"wheelhouse-backend/internal/repository"
)

// Notifier persists user notifications off the request path. Dispatch
// returns immediately; persistence failures are logged and never reach
// the caller, so a notification outage cannot fail a rental operation.
type Notifier struct {
	noteRepo repository.NotificationRepository
	timeout  time.Duration
}

func NewNotifier(noteRepo repository.NotificationRepository) *Notifier {
	return &Notifier{noteRepo: noteRepo, timeout: 10 * time.Second}
}

func (n *Notifier) Dispatch(userID int32, title, message string) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("notification dispatch panicked", "user_id", userID, "panic", r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
		defer cancel()

		note := &domain.Notification{
			UserID:  userID,
			Title:   title,
			Message: message,
		}
		if err := n.noteRepo.Create(ctx, note); err != nil {
			logger.Error("failed to create notification", "user_id", userID, "title", title, "error", err)
		}
	}()
}
