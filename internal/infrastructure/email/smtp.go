package email

import (
	"context"
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/gomail.v2"

	"github.com/lexdoc-ai/lexdoc/internal/domain/shared/services"
	"github.com/lexdoc-ai/lexdoc/internal/shared/config"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
	"github.com/lexdoc-ai/lexdoc/internal/shared/utils"
)

var ErrNoRecipients = errors.New("email has no recipients")

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

// SMTPNotifier delivers notifications through an SMTP relay.
type SMTPNotifier struct {
	config SMTPConfig
	dialer *gomail.Dialer
	logger logger.Interface
}

func NewSMTPNotifier(cfg SMTPConfig, log logger.Interface) *SMTPNotifier {
	return &SMTPNotifier{
		config: cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		logger: log,
	}
}

func (s *SMTPNotifier) Send(ctx context.Context, msg services.EmailMessage) error {
	if len(msg.To) == 0 {
		return ErrNoRecipients
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	fromName := msg.FromName
	if fromName == "" {
		fromName = s.config.FromName
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, fromName)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", PlainText(msg.HTMLBody))
	m.AddAlternative("text/html", msg.HTMLBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Debugw("email sent", "subject", msg.Subject, "recipients", len(msg.To))
	return nil
}

// LogNotifier records messages instead of sending them. It is used when no
// SMTP host is configured.
type LogNotifier struct {
	logger logger.Interface
}

func NewLogNotifier(log logger.Interface) *LogNotifier {
	return &LogNotifier{logger: log}
}

func (n *LogNotifier) Send(_ context.Context, msg services.EmailMessage) error {
	if len(msg.To) == 0 {
		return ErrNoRecipients
	}
	n.logger.Infow("email delivery disabled, message not sent",
		"to", utils.MaskEmails(msg.To),
		"subject", msg.Subject,
	)
	return nil
}

// NewNotifier picks the SMTP notifier when a host is configured.
func NewNotifier(cfg config.EmailConfig, log logger.Interface) services.Notifier {
	if cfg.SMTPHost == "" {
		log.Warnw("email service not configured, smtp_host is empty")
		return NewLogNotifier(log)
	}

	log.Infow("email service initialized",
		"host", cfg.SMTPHost,
		"port", cfg.SMTPPort,
		"from", cfg.FromAddress,
	)
	return NewSMTPNotifier(SMTPConfig{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		Username:    cfg.SMTPUser,
		Password:    cfg.SMTPPassword,
		FromAddress: cfg.FromAddress,
		FromName:    cfg.FromName,
	}, log)
}

var (
	blockBreaks = regexp.MustCompile(`(?i)<\s*(br|/p|/div|/h[1-6]|/li|/tr)\s*/?>`)
	blankLines  = regexp.MustCompile(`\n{3,}`)
	stripPolicy = bluemonday.StrictPolicy()
)

// PlainText derives the text/plain alternative from an HTML body.
func PlainText(htmlBody string) string {
	text := blockBreaks.ReplaceAllString(htmlBody, "\n")
	text = html.UnescapeString(stripPolicy.Sanitize(text))

	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	text = strings.Join(lines, "\n")
	return strings.TrimSpace(blankLines.ReplaceAllString(text, "\n\n"))
}
