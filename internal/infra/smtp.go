package infra

import (
	"bytes"
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
)

// Mailer sends transactional mail: low stock alerts and the monthly report.
type Mailer struct {
	host     string
	port     int
	user     string
	password string
}

func NewMailer(host string, port int, user, password string) *Mailer {
	return &Mailer{host: host, port: port, user: user, password: password}
}

// Enabled reports whether SMTP is configured. Callers skip sending when not.
func (m *Mailer) Enabled() bool { return m.host != "" && m.user != "" }

// Send delivers a plain-text mail with optional attachments, keyed by
// filename.
func (m *Mailer) Send(to []string, subject, body string, attachments map[string][]byte) error {
	e := email.NewEmail()
	e.From = m.user
	e.To = to
	e.Subject = subject
	e.Text = []byte(body)
	for name, data := range attachments {
		if _, err := e.Attach(bytes.NewReader(data), name, ""); err != nil {
			return fmt.Errorf("adjuntar %s: %w", name, err)
		}
	}
	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	return e.Send(addr, smtp.PlainAuth("", m.user, m.password, m.host))
}
