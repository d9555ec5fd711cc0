// Package notifier carries confirmation codes and links to their
// recipients. Real delivery belongs to the mail subsystem; this
// implementation writes to the process log so local setups can read
// the codes without an SMTP server.
package notifier

import (
	"context"
	"log"
)

type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) SendRegistrationCode(_ context.Context, email, code, deviceInfo string) error {
	log.Printf("notify %s: confirmation code %s (device %q)", email, code, deviceInfo)
	return nil
}

func (n *LogNotifier) SendEmailChangeCode(_ context.Context, email, code, username string) error {
	log.Printf("notify %s: email change code %s for %s", email, code, username)
	return nil
}

func (n *LogNotifier) SendRollbackLink(_ context.Context, email, applicationID, username string) error {
	log.Printf("notify %s: rollback link for %s, application %s", email, username, applicationID)
	return nil
}

func (n *LogNotifier) SendPasswordResetLink(_ context.Context, email, applicationID string) error {
	log.Printf("notify %s: password reset application %s", email, applicationID)
	return nil
}
