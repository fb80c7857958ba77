package utils

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"travelworld-backend/config"
)

func newTestMailer(cfg *config.Config) *SMTPMailer {
	logger := logrus.New()
	return NewSMTPMailer(cfg, logger)
}

func TestSendFailsFastWithoutCredentials(t *testing.T) {
	mailer := newTestMailer(&config.Config{SMTPHost: "smtp.gmail.com", SMTPPort: 587})

	assert.False(t, mailer.Configured())

	result := mailer.SendToUser("john@x.com", "subject", "<p>hi</p>")
	assert.False(t, result.Success)
	assert.Equal(t, ErrMailNotConfigured, result.Error)
}

func TestSendToAdminFailsFastWithoutAdminAddress(t *testing.T) {
	mailer := newTestMailer(&config.Config{
		EmailUser: "sender@x.com",
		EmailPass: "secret",
		SMTPHost:  "smtp.gmail.com",
		SMTPPort:  587,
	})

	assert.True(t, mailer.Configured())
	assert.False(t, mailer.AdminConfigured())

	result := mailer.SendToAdmin("subject", "<p>hi</p>", "")
	assert.False(t, result.Success)
	assert.Equal(t, ErrAdminMailNotConfigured, result.Error)
}

func TestVerifyWithoutCredentials(t *testing.T) {
	mailer := newTestMailer(&config.Config{})

	result := mailer.Verify()
	assert.False(t, result.Success)
	assert.Equal(t, "NOT_CONFIGURED", result.Code)
}

func TestClassifyMailError(t *testing.T) {
	auth := ClassifyMailError(errors.New("535 5.7.8 Username and Password not accepted"))
	assert.Contains(t, auth, "Authentication failed")

	connection := ClassifyMailError(errors.New("dial tcp 1.2.3.4:587: connection refused"))
	assert.Contains(t, connection, "Could not connect to SMTP server")

	timeout := ClassifyMailError(errors.New("smtp operation timed out after 15s"))
	assert.Contains(t, timeout, "Could not connect to SMTP server")

	other := ClassifyMailError(errors.New("552 message size exceeds limit"))
	assert.Equal(t, "552 message size exceeds limit", other)
}
