package contact

import (
	"context"
	"fmt"
	"html"

	"github.com/resend/resend-go/v2"
)

// Mailer delivers contact-form notifications to the club inbox.
type Mailer interface {
	SendContactNotification(ctx context.Context, msg *Message) error
}

type resendMailer struct {
	client *resend.Client
	from   string
	inbox  string
}

func NewResendMailer(apiKey, from, inbox string) Mailer {
	return &resendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
		inbox:  inbox,
	}
}

func (m *resendMailer) SendContactNotification(ctx context.Context, msg *Message) error {
	body := fmt.Sprintf(
		"<p><strong>From:</strong> %s &lt;%s&gt;</p><p><strong>Phone:</strong> %s</p><hr><p>%s</p>",
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		html.EscapeString(msg.Phone),
		html.EscapeString(msg.Body),
	)

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{m.inbox},
		ReplyTo: msg.Email,
		Subject: "Contact form: " + msg.Subject,
		Html:    body,
	}

	_, err := m.client.Emails.SendWithContext(ctx, params)
	return err
}
