package services

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/manish-reddy7/Manish-Reddy-Portfolio/config"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/types"
)

const confirmationSubject = "Thanks for reaching out! 🚀"

var emailFuncs = template.FuncMap{
	"nl2br": nl2br,
}

var (
	notificationTmpl = template.Must(template.New("notification").Funcs(emailFuncs).Parse(notificationEmailTemplate))
	confirmationTmpl = template.Must(template.New("confirmation").Funcs(emailFuncs).Parse(confirmationEmailTemplate))
)

// nl2br escapes s and turns line breaks into <br>.
func nl2br(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

// RenderNotification builds the email sent to the site owner.
func RenderNotification(cfg *config.EmailConfig, sub *types.ContactSubmission) (types.EmailMessage, error) {
	var body bytes.Buffer
	data := map[string]interface{}{
		"FullName": sub.FullName(),
		"Email":    sub.Email,
		"Subject":  sub.Subject,
		"Message":  sub.Message,
	}
	if err := notificationTmpl.Execute(&body, data); err != nil {
		return types.EmailMessage{}, fmt.Errorf("failed to execute notification template: %w", err)
	}

	return types.EmailMessage{
		From:    cfg.NotificationFrom(),
		To:      []string{cfg.OwnerAddress},
		Subject: "New Portfolio Contact: " + sub.Subject,
		HTML:    body.String(),
	}, nil
}

// RenderConfirmation builds the email sent back to the submitter.
func RenderConfirmation(cfg *config.EmailConfig, profile *config.ProfileConfig, sub *types.ContactSubmission) (types.EmailMessage, error) {
	var body bytes.Buffer
	data := map[string]interface{}{
		"FirstName":   sub.FirstName,
		"Subject":     sub.Subject,
		"OwnerName":   profile.OwnerName,
		"Tagline":     profile.Tagline,
		"LinkedInURL": profile.LinkedInURL,
		"GitHubURL":   profile.GitHubURL,
	}
	if err := confirmationTmpl.Execute(&body, data); err != nil {
		return types.EmailMessage{}, fmt.Errorf("failed to execute confirmation template: %w", err)
	}

	return types.EmailMessage{
		From:    cfg.ConfirmationFrom(),
		To:      []string{sub.Email},
		Subject: confirmationSubject,
		HTML:    body.String(),
	}, nil
}

const notificationEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #8B5CF6, #06B6D4); padding: 30px; border-radius: 12px 12px 0 0; }
        .header h1 { color: white; margin: 0; font-size: 24px; }
        .content { background: #f8fafc; padding: 30px; border-radius: 0 0 12px 12px; }
        .field { margin-bottom: 20px; }
        .label { font-weight: 600; color: #64748b; font-size: 12px; text-transform: uppercase; letter-spacing: 0.5px; }
        .value { color: #1e293b; font-size: 16px; margin-top: 4px; }
        .message-box { background: white; padding: 20px; border-radius: 8px; border-left: 4px solid #8B5CF6; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>📬 New Contact Form Submission</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">From</div>
                <div class="value">{{.FullName}}</div>
            </div>
            <div class="field">
                <div class="label">Email</div>
                <div class="value"><a href="mailto:{{.Email}}">{{.Email}}</a></div>
            </div>
            <div class="field">
                <div class="label">Subject</div>
                <div class="value">{{.Subject}}</div>
            </div>
            <div class="field">
                <div class="label">Message</div>
                <div class="message-box">{{nl2br .Message}}</div>
            </div>
        </div>
    </div>
</body>
</html>`

const confirmationEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #8B5CF6, #06B6D4); padding: 30px; border-radius: 12px 12px 0 0; text-align: center; }
        .header h1 { color: white; margin: 0; font-size: 28px; }
        .content { background: #f8fafc; padding: 30px; border-radius: 0 0 12px 12px; }
        .emoji { font-size: 48px; text-align: center; margin-bottom: 20px; }
        p { color: #475569; line-height: 1.6; }
        .signature { margin-top: 30px; padding-top: 20px; border-top: 1px solid #e2e8f0; }
        .links { margin-top: 20px; }
        .links a { color: #8B5CF6; text-decoration: none; margin-right: 15px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Message Received!</h1>
        </div>
        <div class="content">
            <div class="emoji">🎉</div>
            <p>Hey {{.FirstName}}!</p>
            <p>Thank you for reaching out through my portfolio. I've received your message about "<strong>{{.Subject}}</strong>" and I'm excited to connect with you!</p>
            <p>I typically respond within 24-48 hours. In the meantime, feel free to check out my latest projects on GitHub or connect with me on LinkedIn.</p>
            <div class="signature">
                <p><strong>Best regards,</strong><br>{{.OwnerName}}</p>
                <p style="color: #64748b; font-size: 14px;">{{.Tagline}}</p>
                <div class="links">
                    <a href="{{.LinkedInURL}}">LinkedIn</a>
                    <a href="{{.GitHubURL}}">GitHub</a>
                </div>
            </div>
        </div>
    </div>
</body>
</html>`
