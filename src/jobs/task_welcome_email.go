package jobs

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strings"

	"Agency-Backend/src/services/newsletter"

	"github.com/hibiken/asynq"
)

// HandleWelcomeEmailTask sends the newsletter confirmation email.
// Missing SMTP configuration drops the task without retry.
func HandleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var payload WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return err
	}

	sender, err := newsletter.NewSMTPSenderFromEnv()
	if err != nil {
		log.Println("welcome email skipped:", err)
		return nil
	}

	base := os.Getenv("APP_BASE_URL")
	if base == "" {
		base = "http://localhost:8888"
	}
	base = strings.TrimRight(base, "/")
	unsubscribeURL := base + "/newsletter/unsubscribe/" + payload.UnsubscribeToken

	return sender.Send(payload.Email, "Welcome to our newsletter", newsletter.WelcomeEmailHTML(unsubscribeURL))
}
