package services

import (
	"travelworld-backend/utils"
)

// fakeMailer records dispatch attempts in order so tests can assert on the
// user-first sequencing and the exact payload handed to the transport.
type fakeMailer struct {
	configured      bool
	adminConfigured bool
	userResult      utils.MailResult
	adminResult     utils.MailResult

	calls        []string
	userTo       string
	userSubject  string
	userHTML     string
	adminSubject string
	adminHTML    string
	adminReplyTo string
}

func (f *fakeMailer) SendToUser(to, subject, html string) utils.MailResult {
	f.calls = append(f.calls, "user")
	f.userTo = to
	f.userSubject = subject
	f.userHTML = html
	return f.userResult
}

func (f *fakeMailer) SendToAdmin(subject, html, replyTo string) utils.MailResult {
	f.calls = append(f.calls, "admin")
	f.adminSubject = subject
	f.adminHTML = html
	f.adminReplyTo = replyTo
	if !f.adminConfigured {
		return utils.MailResult{Success: false, Error: utils.ErrAdminMailNotConfigured}
	}
	return f.adminResult
}

func (f *fakeMailer) Verify() utils.VerifyResult {
	if !f.configured {
		return utils.VerifyResult{Success: false, Error: utils.ErrMailNotConfigured, Code: "NOT_CONFIGURED"}
	}
	return utils.VerifyResult{Success: true}
}

func (f *fakeMailer) Configured() bool      { return f.configured }
func (f *fakeMailer) AdminConfigured() bool { return f.adminConfigured }

func successResult() utils.MailResult {
	return utils.MailResult{Success: true}
}

func failedResult(reason string) utils.MailResult {
	return utils.MailResult{Success: false, Error: reason}
}
