// Package tasks defines the asynq task types exchanged between the API and
// the worker process.
package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/comcode/blog-engine/internal/mail"
	"github.com/comcode/blog-engine/pkg/logger"
)

const TypeVerificationEmail = "email:verification"

// VerificationEmailPayload carries everything the worker needs to send a
// verification email without touching the database.
type VerificationEmailPayload struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Token  string `json:"token"`
}

// NewVerificationEmailTask builds the signup-verification task. Retries are
// capped because the embedded token expires on its own.
func NewVerificationEmailTask(p VerificationEmailPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal verification email payload: %w", err)
	}
	return asynq.NewTask(TypeVerificationEmail, payload,
		asynq.MaxRetry(5),
		asynq.Timeout(30*time.Second),
	), nil
}

// EmailHandler processes email tasks on the worker.
type EmailHandler struct {
	sender    mail.Sender
	verifyURL string
}

// NewEmailHandler builds the handler. verifyURL is the public endpoint the
// token gets appended to.
func NewEmailHandler(sender mail.Sender, verifyURL string) *EmailHandler {
	return &EmailHandler{sender: sender, verifyURL: verifyURL}
}

func (h *EmailHandler) HandleVerificationEmail(ctx context.Context, t *asynq.Task) error {
	var p VerificationEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("unmarshal verification email payload: %w", err)
	}

	subject, body := mail.BuildVerificationEmail(p.Name, h.verifyURL+p.Token)
	if err := h.sender.Send(ctx, p.Email, subject, body); err != nil {
		return fmt.Errorf("send verification email to %s: %w", p.Email, err)
	}

	logger.L().Info("verification email sent",
		zap.Uint("user_id", p.UserID),
		zap.String("email", p.Email),
	)
	return nil
}
