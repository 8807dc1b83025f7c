// Package mail sends transactional email over SMTP.
package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"github.com/comcode/blog-engine/pkg/logger"
)

// Sender delivers a single message. Body may be plain text or HTML; the
// implementation picks the content type.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMTPSender sends through a single SMTP relay with PLAIN auth.
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewSMTPSender(host string, port int, username, password, from string) *SMTPSender {
	return &SMTPSender{host: host, port: port, username: username, password: password, from: from}
}

func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	contentType := "text/plain; charset=UTF-8"
	if isHTML(body) {
		contentType = "text/html; charset=UTF-8"
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", s.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	fmt.Fprintf(&msg, "MIME-Version: 1.0\r\nContent-Type: %s\r\n\r\n", contentType)
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	if err := smtp.SendMail(addr, auth, s.from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}

	logger.L().Debug("mail sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

// isHTML uses a cheap prefix heuristic; templates built here always start
// with a tag.
func isHTML(body string) bool {
	trimmed := strings.TrimSpace(body)
	return strings.HasPrefix(trimmed, "<")
}
