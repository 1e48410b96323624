package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/octobees/portfolio-contact/api/internal/dto"
	"github.com/octobees/portfolio-contact/api/internal/entity"
	"github.com/octobees/portfolio-contact/api/internal/notify"
	"github.com/octobees/portfolio-contact/api/internal/repository"
)

// ErrMissingFields is returned when any form field is absent or blank.
var ErrMissingFields = errors.New("name, email and message are required")

// ContactService stores contact submissions and triggers owner notifications.
type ContactService struct {
	repo       repository.SubmissionsRepository
	dispatcher *notify.Dispatcher
	log        logrus.FieldLogger
	now        func() time.Time
}

// NewContactService builds a ContactService. A nil dispatcher disables notifications.
func NewContactService(repo repository.SubmissionsRepository, dispatcher *notify.Dispatcher, log logrus.FieldLogger) *ContactService {
	return &ContactService{
		repo:       repo,
		dispatcher: dispatcher,
		log:        log,
		now:        time.Now,
	}
}

// Submit validates presence, persists the submission and hands it to the
// dispatcher. Only the write is awaited.
func (s *ContactService) Submit(ctx context.Context, req dto.SubmitMessageRequest) (*entity.Submission, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Message) == "" {
		return nil, ErrMissingFields
	}

	sub := entity.NewSubmission(req.Name, req.Email, req.Message, s.now())
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("store submission: %w", err)
	}

	s.log.WithField("submission_id", sub.ID).Info("submission stored")
	s.dispatcher.Dispatch(*sub)

	return sub, nil
}
