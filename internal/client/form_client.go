package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/octobees/portfolio-contact/api/internal/dto"
)

// Feedback strings shown to the person filling in the form.
const (
	FeedbackIncomplete    = "Por favor, preencha todos os campos."
	FeedbackSent          = "Mensagem enviada com sucesso!"
	FeedbackErrorPrefix   = "Erro ao enviar: "
	FeedbackUnknownError  = "Ocorreu um erro."
	FeedbackNetworkFailed = "Ocorreu um erro ao enviar a mensagem. Verifique sua conexão."
)

const submitPath = "/enviar-mensagem"

var (
	// ErrSubmitInProgress is returned when Submit is called while another submission is pending.
	ErrSubmitInProgress = errors.New("submission already in progress")
	// ErrIncompleteForm is returned when a field is empty; no request is made.
	ErrIncompleteForm = errors.New("all fields are required")
)

// RejectedError reports a non-2xx answer from the contact endpoint.
type RejectedError struct {
	Status  int
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("contact endpoint returned %d: %s", e.Status, e.Message)
}

// FormClient holds the state of a contact form and submits it to the backend.
// It is safe for concurrent use; at most one submission runs at a time.
type FormClient struct {
	client  *http.Client
	baseURL string

	mu         sync.Mutex
	name       string
	email      string
	message    string
	feedback   string
	submitting bool
}

// NewFormClient builds a client for the backend at baseURL.
func NewFormClient(client *http.Client, baseURL string) *FormClient {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &FormClient{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

// SetFields replaces the form values.
func (f *FormClient) SetFields(name, email, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.name, f.email, f.message = name, email, message
}

// Fields returns the current form values.
func (f *FormClient) Fields() (name, email, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.name, f.email, f.message
}

// Feedback returns the message describing the last submission outcome.
func (f *FormClient) Feedback() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.feedback
}

// Submitting reports whether a submission is pending.
func (f *FormClient) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Submit sends the form once. Feedback is updated for every outcome except
// ErrSubmitInProgress; fields are cleared only on success.
func (f *FormClient) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitInProgress
	}
	if f.name == "" || f.email == "" || f.message == "" {
		f.feedback = FeedbackIncomplete
		f.mu.Unlock()
		return ErrIncompleteForm
	}
	f.submitting = true
	f.feedback = ""
	payload := dto.SubmitMessageRequest{Name: f.name, Email: f.email, Message: f.message}
	f.mu.Unlock()

	err := f.post(ctx, payload)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false

	var rejected *RejectedError
	switch {
	case err == nil:
		f.feedback = FeedbackSent
		f.name, f.email, f.message = "", "", ""
	case errors.As(err, &rejected):
		msg := rejected.Message
		if msg == "" {
			msg = FeedbackUnknownError
		}
		f.feedback = FeedbackErrorPrefix + msg
	default:
		f.feedback = FeedbackNetworkFailed
	}
	return err
}

func (f *FormClient) post(ctx context.Context, payload dto.SubmitMessageRequest) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+submitPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("contact request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &RejectedError{Status: resp.StatusCode, Message: extractMessage(resp.Body)}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// Ping fetches the backend's online indicator.
func (f *FormClient) Ping(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/", nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ping failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return "", fmt.Errorf("read ping response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ping returned %d", resp.StatusCode)
	}
	return strings.TrimSpace(string(body)), nil
}

func extractMessage(r io.Reader) string {
	var payload dto.MessageResponse
	if err := json.NewDecoder(io.LimitReader(r, 64*1024)).Decode(&payload); err != nil {
		return ""
	}
	return strings.TrimSpace(payload.Message)
}
