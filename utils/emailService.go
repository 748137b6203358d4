package utils

import (
	"fmt"
	"log"
	"net/http"

	"kurs/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers one HTML email through SendGrid.
func SendEmail(to string, subject string, htmlBody string) error {
	from := mail.NewEmail("Kurs Platform", config.AppConfig.EmailSender)
	message := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridApiKey)
	response, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", to, err)
		return err
	}
	if response.StatusCode >= http.StatusBadRequest {
		log.Printf("Failed to send email to %s, response code: %d", to, response.StatusCode)
		return fmt.Errorf("failed to send email, code: %d", response.StatusCode)
	}
	return nil
}

// HTML wrapper shared by every outgoing mail
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A237E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A237E; line-height: 1.6; }
			.content h2 { color: #1A237E; margin-top: 0; }
			.code-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #4CAF50; margin: 20px 0; text-align: center; font-size: 28px; letter-spacing: 6px; font-weight: bold; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>KURS PLATFORM</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Kurs Platform. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendVerificationEmail mails a fresh registration its verification code.
func SendVerificationEmail(email, username, code string) {
	subject := "Welcome to Kurs Platform"
	body := fmt.Sprintf(`
		<p>Hello %s,</p>
		<p>Thanks for registering. Confirm your email with the code below:</p>
		<div class="code-box">%s</div>
		<p>If you did not create this account, you can safely ignore this email.</p>
	`, username, code)

	go SendEmail(email, subject, getEmailTemplate("Confirm Your Email", body))
}

// BroadcastEmail fans a message out to every address, one mail per
// recipient. Transport failures are logged, not retried.
func BroadcastEmail(emails []string, subject, message string) {
	body := fmt.Sprintf("<p>%s</p>", message)
	html := getEmailTemplate(subject, body)

	go func() {
		for _, email := range emails {
			if email == "" {
				continue
			}
			if err := SendEmail(email, subject, html); err != nil {
				log.Printf("Broadcast to %s failed: %v", email, err)
			}
		}
		log.Printf("Broadcast %q dispatched to %d recipients", subject, len(emails))
	}()
}
