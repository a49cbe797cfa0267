package service

import (
	"fmt"
	"net/url"
)

// brand palette used across club emails
const (
	colorValencia  = "#dc3d43" // A
	colorOceangren = "#3cb179" // D
	colorAzure     = "#0091ff" // S
	colorSupernova = "#f7ce00" // C
)

func emailShell(header, body, footerNote string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="margin: 0; padding: 0; background-color: #0a0a0a; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;">
  <table width="100%%" cellpadding="0" cellspacing="0" style="background-color: #0a0a0a; padding: 40px 20px;">
    <tr>
      <td align="center">
        <table width="600" cellpadding="0" cellspacing="0" style="background-color: #171717; border-radius: 12px; overflow: hidden;">
          <tr>
            <td style="background: linear-gradient(135deg, %s 0%%, %s 50%%, %s 100%%); padding: 40px; text-align: center;">
              %s
            </td>
          </tr>
          <tr>
            <td style="padding: 40px;">
              %s
            </td>
          </tr>
          <tr>
            <td style="background-color: #0a0a0a; padding: 30px; text-align: center; border-top: 1px solid #262626;">
              <p style="color: #737373; font-size: 12px; margin: 0 0 10px;">
                Atmiya Developer Students Club | Atmiya University
              </p>
              <p style="color: #525252; font-size: 11px; margin: 0;">
                %s
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`, colorValencia, colorSupernova, colorOceangren, header, body, footerNote)
}

// welcomeEmailTemplate builds the message sent after a successful
// subscription. Pure function of its inputs.
func welcomeEmailTemplate(email, appURL string) (string, string) {
	subject := "Welcome to ADSC Newsletter!"

	header := `<h1 style="margin: 0; color: #fff; font-size: 28px; font-weight: bold;">Welcome to ADSC!</h1>`

	body := fmt.Sprintf(`<p style="color: #e5e5e5; font-size: 16px; line-height: 1.6; margin: 0 0 20px;">Hey there!</p>
              <p style="color: #a3a3a3; font-size: 16px; line-height: 1.6; margin: 0 0 20px;">
                Thank you for subscribing to the <strong style="color: %s;">Atmiya Developer Students Club</strong> newsletter!
              </p>
              <p style="color: #a3a3a3; font-size: 16px; line-height: 1.6; margin: 0 0 20px;">You'll now receive updates about:</p>
              <ul style="color: #a3a3a3; font-size: 16px; line-height: 1.8; margin: 0 0 30px; padding-left: 20px;">
                <li>Upcoming workshops &amp; events</li>
                <li>Hackathons &amp; coding challenges</li>
                <li>Tech tutorials &amp; resources</li>
                <li>Career opportunities &amp; internships</li>
              </ul>
              <table width="100%%" cellpadding="0" cellspacing="0">
                <tr>
                  <td align="center" style="padding: 20px 0;">
                    <a href="%s/events" style="display: inline-block; background: linear-gradient(90deg, %s, %s, %s); color: #000; padding: 14px 32px; text-decoration: none; border-radius: 8px; font-weight: bold; font-size: 16px;">Explore Events</a>
                  </td>
                </tr>
              </table>
              <p style="color: #a3a3a3; font-size: 16px; line-height: 1.6; margin: 30px 0 0;">Stay curious, keep building!</p>`,
		colorSupernova, appURL, colorValencia, colorSupernova, colorOceangren)

	// The address goes into a query string; "+" and "%" are legal in the
	// local part and must survive the round trip through the link.
	footer := fmt.Sprintf(`You received this email because %s subscribed to our newsletter.
                <a href="%s/newsletter?email=%s" style="color: %s; text-decoration: none;">Unsubscribe</a>`,
		email, appURL, url.QueryEscape(email), colorAzure)

	return subject, emailShell(header, body, footer)
}

// eventEmailTemplate builds the event announcement message. It is rendered
// once per broadcast; every recipient gets the identical body.
func eventEmailTemplate(name, description, date, registerURL string) (string, string) {
	subject := fmt.Sprintf("New Event: %s", name)

	header := fmt.Sprintf(`<p style="margin: 0 0 10px; color: #fff; font-size: 14px; text-transform: uppercase; letter-spacing: 2px;">New Event</p>
              <h1 style="margin: 0; color: #fff; font-size: 26px; font-weight: bold;">%s</h1>`, name)

	register := ""
	if registerURL != "" {
		register = fmt.Sprintf(`<table width="100%%" cellpadding="0" cellspacing="0">
                <tr>
                  <td align="center" style="padding: 20px 0;">
                    <a href="%s" style="display: inline-block; background: linear-gradient(90deg, %s, %s, %s); color: #000; padding: 14px 32px; text-decoration: none; border-radius: 8px; font-weight: bold; font-size: 16px;">Register Now</a>
                  </td>
                </tr>
              </table>`, registerURL, colorValencia, colorSupernova, colorOceangren)
	}

	body := fmt.Sprintf(`<div style="color: #a3a3a3; font-size: 16px; line-height: 1.6; margin: 0 0 20px;">%s</div>
              <div style="background-color: #262626; border-radius: 8px; padding: 20px; margin: 20px 0; text-align: center; border-left: 4px solid %s;">
                <p style="color: #737373; font-size: 12px; margin: 0 0 5px; text-transform: uppercase;">Event Date</p>
                <p style="color: %s; font-size: 24px; font-weight: bold; margin: 0;">%s</p>
              </div>
              %s
              <p style="color: #737373; font-size: 14px; margin: 20px 0 0; text-align: center;">Don't miss out! See you there!</p>`,
		description, colorOceangren, colorSupernova, date, register)

	footer := fmt.Sprintf(`<a href="https://adsc-atmiya.in" style="color: %s; text-decoration: none;">Visit Website</a>`, colorAzure)

	return subject, emailShell(header, body, footer)
}
