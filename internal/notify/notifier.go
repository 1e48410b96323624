//go:generate go run go.uber.org/mock/mockgen -source=notifier.go -destination=../mocks/mock_notifier.go -package=mocks
package notify

import (
	"context"

	"github.com/octobees/portfolio-contact/api/internal/entity"
)

// Notifier delivers a single submission to the site owner.
type Notifier interface {
	Notify(ctx context.Context, sub entity.Submission) error
}
