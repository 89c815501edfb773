package utils

import (
	"antuf/config"
	"fmt"
	"net/smtp"
	"strings"
)

// SendEmail sends an HTML email through the configured SMTP account
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: ANTUF <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1B5E20; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #212121; line-height: 1.6; }
			.content h2 { color: #1B5E20; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F5E9; padding: 15px; border-radius: 4px; border-left: 4px solid #1B5E20; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>%s</h1>
			</div>
			<div class="content">
				%s
			</div>
			<div class="footer">
				ANTUF &middot; This is an automated message, please do not reply.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendCardShippedEmail notifies a member that their membership card is on the way
func SendCardShippedEmail(email, name, trackingNumber string) error {
	body := fmt.Sprintf(`
		<h2>Your membership card has shipped!</h2>
		<p>Hi %s,</p>
		<p>Your ANTUF membership card is on its way.</p>
		<div class="info-box">
			Tracking number: <strong>%s</strong>
		</div>
		<p>Thank you for being a member.</p>
	`, name, trackingNumber)

	html := getEmailTemplate("Card Shipped", body)
	return SendEmail([]string{email}, "Your ANTUF membership card has shipped", html)
}

// SendChatAssignedEmail tells an admin a support conversation was handed to them
func SendChatAssignedEmail(email, adminName, subject string) error {
	body := fmt.Sprintf(`
		<h2>Support conversation assigned</h2>
		<p>Hi %s,</p>
		<p>The conversation <strong>%s</strong> has been assigned to you.</p>
	`, adminName, subject)

	html := getEmailTemplate("Support Assignment", body)
	return SendEmail([]string{email}, "A support conversation was assigned to you", html)
}
