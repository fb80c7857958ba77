package domain

import "strings"

// Per-attempt notification statuses. These are observability strings, not
// control flow: a Failed or Skipped attempt never fails the request that
// triggered it.
const (
	StatusNotAttempted = "Not attempted"
	StatusSuccess      = "Success"

	ReasonMissingCredentials = "Missing email credentials"
	ReasonAdminEmailNotSet   = "ADMIN_EMAIL not set"
)

func StatusSkipped(reason string) string {
	return "Skipped - " + reason
}

func StatusFailed(reason string) string {
	return "Failed - " + reason
}

// OperationResults records the outcome of each notification attempt made
// while handling a single request.
type OperationResults struct {
	UserEmail  string `json:"userEmail"`
	AdminEmail string `json:"adminEmail"`
}

func NewOperationResults() OperationResults {
	return OperationResults{
		UserEmail:  StatusNotAttempted,
		AdminEmail: StatusNotAttempted,
	}
}

func (r OperationResults) UserEmailSent() bool {
	return r.UserEmail == StatusSuccess
}

func (r OperationResults) AdminNotified() bool {
	return r.AdminEmail == StatusSuccess
}

type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Phone   string `json:"phone"`
}

func (m *ContactMessage) FirstMissingField() string {
	switch {
	case strings.TrimSpace(m.Name) == "":
		return "name"
	case strings.TrimSpace(m.Email) == "":
		return "email"
	case strings.TrimSpace(m.Subject) == "":
		return "subject"
	case strings.TrimSpace(m.Message) == "":
		return "message"
	}
	return ""
}

type NewsletterSignup struct {
	Email string `json:"email"`
}
