package services

import "context"

type EmailMessage struct {
	To       []string
	Subject  string
	HTMLBody string
	FromName string
}

type Notifier interface {
	Send(ctx context.Context, msg EmailMessage) error
}
