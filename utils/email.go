package utils

import (
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"gopkg.in/gomail.v2"

	"travelworld-backend/config"
)

const smtpTimeout = 15 * time.Second

const (
	ErrMailNotConfigured      = "Email service not configured - missing EMAIL_USER or EMAIL_PASS"
	ErrAdminMailNotConfigured = "Admin email not configured - ADMIN_EMAIL not set"
)

type MailResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type VerifyResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

// Mailer hands rendered email to an SMTP transport. Every call is one-shot:
// no retries, no queueing. Callers decide what a failure means, and in this
// service it is never fatal to the request that triggered the send.
type Mailer interface {
	SendToUser(to, subject, html string) MailResult
	SendToAdmin(subject, html, replyTo string) MailResult
	Verify() VerifyResult
	Configured() bool
	AdminConfigured() bool
}

type SMTPMailer struct {
	cfg     *config.Config
	logger  *logrus.Logger
	breaker *gobreaker.CircuitBreaker
}

func NewSMTPMailer(cfg *config.Config, logger *logrus.Logger) *SMTPMailer {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: "smtp",
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.WithFields(logrus.Fields{"breaker": name, "from": from.String(), "to": to.String()}).Warn("Circuit breaker state changed")
		},
	})
	return &SMTPMailer{cfg: cfg, logger: logger, breaker: breaker}
}

func (m *SMTPMailer) Configured() bool {
	return m.cfg.EmailUser != "" && m.cfg.EmailPass != ""
}

func (m *SMTPMailer) AdminConfigured() bool {
	return m.cfg.AdminEmail != ""
}

func (m *SMTPMailer) SendToUser(to, subject, html string) MailResult {
	return m.send(to, subject, html, "")
}

func (m *SMTPMailer) SendToAdmin(subject, html, replyTo string) MailResult {
	if !m.AdminConfigured() {
		return MailResult{Success: false, Error: ErrAdminMailNotConfigured}
	}
	return m.send(m.cfg.AdminEmail, subject, html, replyTo)
}

// Verify performs a connection handshake without sending mail. Used by the
// admin diagnostics endpoint only.
func (m *SMTPMailer) Verify() VerifyResult {
	if !m.Configured() {
		return VerifyResult{Success: false, Error: ErrMailNotConfigured, Code: "NOT_CONFIGURED"}
	}

	type dialOutcome struct {
		closer gomail.SendCloser
		err    error
	}
	done := make(chan dialOutcome, 1)
	go func() {
		closer, err := m.dialer().Dial()
		done <- dialOutcome{closer, err}
	}()

	select {
	case outcome := <-done:
		if outcome.err != nil {
			return VerifyResult{Success: false, Error: ClassifyMailError(outcome.err), Code: classifyCode(outcome.err)}
		}
		outcome.closer.Close()
		return VerifyResult{Success: true}
	case <-time.After(smtpTimeout):
		return VerifyResult{Success: false, Error: "SMTP handshake timed out", Code: "ETIMEDOUT"}
	}
}

func (m *SMTPMailer) send(to, subject, html, replyTo string) MailResult {
	if !m.Configured() {
		return MailResult{Success: false, Error: ErrMailNotConfigured}
	}

	from := m.cfg.EmailFrom
	if from == "" {
		from = m.cfg.EmailUser
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	if replyTo != "" {
		msg.SetHeader("Reply-To", replyTo)
	}
	msg.SetBody("text/html", html)

	_, err := m.breaker.Execute(func() (interface{}, error) {
		return nil, m.dialAndSend(msg)
	})
	if err != nil {
		m.logger.WithFields(logrus.Fields{"to": to, "subject": subject}).Error("Could not send email: ", err)
		return MailResult{Success: false, Error: ClassifyMailError(err)}
	}
	return MailResult{Success: true}
}

// dialAndSend bounds the whole SMTP exchange. gomail has no timeout of its
// own, and a stalled transport must not hold a request open indefinitely.
func (m *SMTPMailer) dialAndSend(msg *gomail.Message) error {
	done := make(chan error, 1)
	go func() {
		done <- m.dialer().DialAndSend(msg)
	}()

	select {
	case err := <-done:
		return err
	case <-time.After(smtpTimeout):
		return fmt.Errorf("smtp operation timed out after %s", smtpTimeout)
	}
}

func (m *SMTPMailer) dialer() *gomail.Dialer {
	d := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.EmailUser, m.cfg.EmailPass)
	d.TLSConfig = &tls.Config{ServerName: m.cfg.SMTPHost}
	return d
}

// ClassifyMailError maps transport errors into the two named buckets used for
// user-facing diagnostics; everything else passes through untouched.
func ClassifyMailError(err error) string {
	msg := err.Error()
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "535") ||
		strings.Contains(lower, "username and password not accepted") ||
		strings.Contains(lower, "authentication failed") ||
		strings.Contains(lower, "invalid credentials"):
		return "Authentication failed - check EMAIL_USER and EMAIL_PASS (Gmail requires an app password)"
	case strings.Contains(lower, "connection refused") ||
		strings.Contains(lower, "no such host") ||
		strings.Contains(lower, "i/o timeout") ||
		strings.Contains(lower, "timed out") ||
		strings.Contains(lower, "broken pipe") ||
		strings.Contains(lower, "dial tcp"):
		return "Could not connect to SMTP server - check SMTP_HOST and SMTP_PORT"
	default:
		return msg
	}
}

func classifyCode(err error) string {
	classified := ClassifyMailError(err)
	switch {
	case strings.HasPrefix(classified, "Authentication failed"):
		return "EAUTH"
	case strings.HasPrefix(classified, "Could not connect"):
		return "ECONNECTION"
	default:
		return "EOTHER"
	}
}
