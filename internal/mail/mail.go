// Package mail sends outbound transactional mail over SMTP.
//
// The only message the portal sends today is the password-reset mail; the
// [Sender] interface keeps the service layer decoupled from the SMTP
// transport so tests can substitute a recording fake.
package mail

import (
	"fmt"

	"github.com/communication-ltd/portal/internal/config"
	"github.com/communication-ltd/portal/internal/logger"
	"gopkg.in/gomail.v2"
)

// Sender delivers outbound mail to a single recipient.
type Sender interface {
	SendPasswordReset(to string, token string, resetURL string) error
}

// SMTPSender is the gomail-backed [Sender] implementation.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
	logger *logger.Logger
}

// NewSMTPSender builds a sender from the SMTP settings in cfg.
func NewSMTPSender(cfg config.Mail, log *logger.Logger) *SMTPSender {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return &SMTPSender{
		dialer: d,
		from:   cfg.From,
		logger: log,
	}
}

// SendPasswordReset mails the reset token and link to the given address.
// The token is also rendered as plain text so the mail stays usable for
// clients that strip HTML.
func (s *SMTPSender) SendPasswordReset(to string, token string, resetURL string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Password Reset - Communication_LTD")
	m.SetBody("text/html", passwordResetBody(token, resetURL))

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Err(err).Str("func", "*SMTPSender.SendPasswordReset").Msg("error sending password reset mail")
		return fmt.Errorf("error sending password reset mail: %w", err)
	}

	s.logger.Info().Str("func", "*SMTPSender.SendPasswordReset").Msg("password reset mail sent")
	return nil
}

func passwordResetBody(token string, resetURL string) string {
	return fmt.Sprintf(`<html>
<body>
  <h2>Password Reset Request</h2>
  <p>We received a request to reset the password for your Communication_LTD account.</p>
  <p>Your reset code is:</p>
  <p><code>%s</code></p>
  <p>You can also follow this link to reset your password:</p>
  <p><a href="%s">%s</a></p>
  <p>The code expires in 1 hour. If you did not request a reset, you can ignore this mail.</p>
</body>
</html>`, token, resetURL, resetURL)
}
