// Package sidechannel carries best-effort work (audit entries and email)
// off the request path. Failures are logged and never reach the caller.
package sidechannel

import (
	"context"
	"fmt"
	"time"

	"github.com/lexdoc-ai/lexdoc/internal/domain/audit"
	"github.com/lexdoc-ai/lexdoc/internal/domain/shared/events"
	"github.com/lexdoc-ai/lexdoc/internal/domain/shared/services"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
	"github.com/lexdoc-ai/lexdoc/internal/shared/utils"
)

const (
	EventAuditRecorded  = "audit.recorded"
	EventEmailRequested = "email.requested"

	defaultTaskTimeout = 30 * time.Second
)

type AuditRecorded struct {
	events.BaseEvent
	Record audit.Record
}

type EmailRequested struct {
	events.BaseEvent
	Message services.EmailMessage
}

// Dispatcher is the part of the event dispatcher the channel needs.
type Dispatcher interface {
	Publish(event events.DomainEvent) error
	Subscribe(eventType string, handler events.EventHandler) error
}

// Channel publishes side effects onto the dispatcher and, once registered,
// executes them from the dispatcher's goroutines.
type Channel struct {
	dispatcher  Dispatcher
	auditRepo   audit.Repository
	notifier    services.Notifier
	taskTimeout time.Duration
	logger      logger.Interface
}

func NewChannel(
	dispatcher Dispatcher,
	auditRepo audit.Repository,
	notifier services.Notifier,
	logger logger.Interface,
) *Channel {
	return &Channel{
		dispatcher:  dispatcher,
		auditRepo:   auditRepo,
		notifier:    notifier,
		taskTimeout: defaultTaskTimeout,
		logger:      logger,
	}
}

// Register subscribes the audit and email handlers. Call before Start.
func (c *Channel) Register() error {
	if err := c.dispatcher.Subscribe(EventAuditRecorded, events.NewSimpleEventHandler(EventAuditRecorded, c.handleAudit)); err != nil {
		return fmt.Errorf("failed to subscribe audit handler: %w", err)
	}
	if err := c.dispatcher.Subscribe(EventEmailRequested, events.NewSimpleEventHandler(EventEmailRequested, c.handleEmail)); err != nil {
		return fmt.Errorf("failed to subscribe email handler: %w", err)
	}
	return nil
}

// Audit queues an audit entry.
func (c *Channel) Audit(r audit.Record) {
	evt := AuditRecorded{
		BaseEvent: events.NewBaseEvent(EventAuditRecorded, r.EntityID),
		Record:    r,
	}
	if err := c.dispatcher.Publish(evt); err != nil {
		c.logger.Warnw("audit entry dropped",
			"action", r.Action,
			"entity_id", r.EntityID,
			"error", err,
		)
	}
}

// Email queues a notification.
func (c *Channel) Email(msg services.EmailMessage) {
	evt := EmailRequested{
		BaseEvent: events.NewBaseEvent(EventEmailRequested, msg.Subject),
		Message:   msg,
	}
	if err := c.dispatcher.Publish(evt); err != nil {
		c.logger.Warnw("email dropped",
			"subject", msg.Subject,
			"recipients", utils.MaskEmails(msg.To),
			"error", err,
		)
	}
}

func (c *Channel) handleAudit(event events.DomainEvent) error {
	evt, ok := event.(AuditRecorded)
	if !ok {
		return fmt.Errorf("unexpected event %T", event)
	}

	entry, err := audit.NewEntry(evt.Record)
	if err != nil {
		return fmt.Errorf("invalid audit record: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.taskTimeout)
	defer cancel()

	if err := c.auditRepo.Append(ctx, entry); err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}

func (c *Channel) handleEmail(event events.DomainEvent) error {
	evt, ok := event.(EmailRequested)
	if !ok {
		return fmt.Errorf("unexpected event %T", event)
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.taskTimeout)
	defer cancel()

	if err := c.notifier.Send(ctx, evt.Message); err != nil {
		return fmt.Errorf("failed to send email to %v: %w", utils.MaskEmails(evt.Message.To), err)
	}
	return nil
}
