package usecase

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"go-autoresponder-backend/internal/domain"
)

// acknowledgmentTemplate is the HTML body of the thank-you email. It is a
// self-contained document: inline styles only, no external assets.
const acknowledgmentTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <h1 style="color: #2c5282;">Thank you for reaching out!</h1>
    <p>Dear {{.Greeting}},</p>
    <p>We have received your message and will get back to you shortly.</p>
    <p style="color: #718096; font-size: 14px;">Submitted on {{.SubmittedAt}}</p>
    <p>Here's a summary of your submission:</p>
    <div style="background-color: #f7fafc; padding: 15px; border-radius: 5px;">
        <p><strong>Name:</strong> {{.FullName}}</p>
        <p><strong>Email:</strong> {{.Email}}</p>
        {{if .Subject}}<p><strong>Subject:</strong> {{.Subject}}</p>
        {{end}}{{if .Message}}<p><strong>Message:</strong> {{.Message}}</p>
        {{end}}</div>
    <p>We strive to respond to all inquiries within 24-48 business hours.</p>
    <p>Best regards,<br>Choosing Justice Initiative<br>
    <a href="https://cjinashville.org" style="color: #2c5282;">cjinashville.org</a> &middot; contact@cjinashville.org</p>
</body>
</html>`

// acknowledgmentData holds the interpolated fields of the acknowledgment email
type acknowledgmentData struct {
	Greeting    string
	SubmittedAt string
	FullName    string
	Email       string
	Subject     string
	Message     template.HTML
}

// RenderAcknowledgment renders the thank-you email body for a submission.
// It is deterministic for a fixed (submission, now) pair and performs no I/O.
func RenderAcknowledgment(sub domain.FormSubmission, now time.Time) (string, error) {
	tmpl, err := template.New("acknowledgment").Parse(acknowledgmentTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse acknowledgment template: %w", err)
	}

	greeting := strings.TrimSpace(sub.FirstName)
	if greeting == "" {
		greeting = "Friend"
	}

	data := acknowledgmentData{
		Greeting:    greeting,
		SubmittedAt: now.Format("Monday, January 2, 2006 at 3:04 PM"),
		FullName:    strings.TrimSpace(sub.FirstName + " " + sub.LastName),
		Email:       sub.Email,
		Subject:     sub.Subject,
		Message:     messageHTML(sub.Message),
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute acknowledgment template: %w", err)
	}

	return body.String(), nil
}

// messageHTML escapes the submitted message line by line and joins the lines
// with <br> tags so multi-line messages keep their breaks. User text itself
// is never interpreted as markup.
func messageHTML(message string) template.HTML {
	if message == "" {
		return ""
	}
	lines := strings.Split(message, "\n")
	for i, line := range lines {
		lines[i] = template.HTMLEscapeString(line)
	}
	return template.HTML(strings.Join(lines, "<br>"))
}
