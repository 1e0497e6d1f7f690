package emails

import (
	"fmt"
	"html"
	"time"
)

const (
	orgName      = "NVP Welfare Foundation India"
	themePrimary = "#C2410C"
	themeBgBody  = "#F3F4F6"
	supportEmail = "support@nvpwelfare.in"
)

// EmailLayout wraps content in the shared HTML shell.
func EmailLayout(contentHTML string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>%s</title>
  <style>
    body { margin: 0; padding: 0; background-color: %s; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Helvetica, Arial, sans-serif; color: #1F2937; }
    .content p { margin: 0 0 16px 0; font-size: 15px; line-height: 1.6; }
    .content h2 { color: %s; font-size: 22px; margin: 0 0 20px 0; }
    .qr { display: block; margin: 16px auto; width: 180px; height: 180px; }
  </style>
</head>
<body>
  <table role="presentation" width="100%%" cellspacing="0" cellpadding="0" style="background-color: %s;">
    <tr>
      <td align="center" style="padding: 32px 0;">
        <table role="presentation" width="600" cellspacing="0" cellpadding="0" style="width: 600px; background: #FFFFFF; border-radius: 8px;">
          <tr><td class="content" style="padding: 40px 48px 24px 48px;">%s</td></tr>
          <tr>
            <td align="center" style="padding: 16px 48px 32px 48px; font-size: 13px; color: #6B7280;">
              Questions? Write to <a href="mailto:%s" style="color: %s;">%s</a><br>
              © %d %s
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`,
		orgName, themeBgBody, themePrimary, themeBgBody, contentHTML,
		supportEmail, themePrimary, supportEmail, time.Now().Year(), orgName)
}

// EscapeHTML escapes HTML specials for safe interpolation.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}
