package mail

import (
	"fmt"
	"html"
)

const baseTemplate = `<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; color: #1f2933; margin: 0; padding: 24px;">
    <div style="max-width: 560px; margin: 0 auto; border: 1px solid #e4e7eb; border-radius: 8px; padding: 32px;">
      %s
    </div>
  </body>
</html>`

// BuildVerificationEmail renders the signup verification message. The link
// already contains the token.
func BuildVerificationEmail(name, link string) (subject, body string) {
	subject = "Verify your email address"
	content := fmt.Sprintf(`<h2 style="margin-top: 0;">Welcome, %s!</h2>
      <p>Thanks for signing up. Confirm your email address to activate your account.</p>
      <p style="margin: 24px 0;">
        <a href="%s" style="background: #2563eb; color: #ffffff; padding: 12px 24px; border-radius: 6px; text-decoration: none;">Verify email</a>
      </p>
      <p style="color: #52606d; font-size: 13px;">The link expires in one hour. If you did not create this account, ignore this message.</p>`,
		html.EscapeString(name), link)
	body = fmt.Sprintf(baseTemplate, content)
	return subject, body
}
