package mailing

import (
	"fmt"
	"strconv"

	"Fitlog-Backend/internal/utils"

	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	AppURL       string
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

// SendVerificationMail mails the account-verification link. The token is a
// short-lived claim token minted by the caller.
func SendVerificationMail(name, toEmail, token string) error {
	config := LoadMailConfig()
	link := fmt.Sprintf("%s/verify-email?token=%s", config.AppURL, token)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Welcome to Fitlog! Click <a href=\"%s\">here</a> to verify your email address and start logging meals.</p>",
		name, link,
	)
	return SendMail(toEmail, "Verify your Fitlog email", body)
}

// SendPasswordResetMail mails the password-reset link; the token expires in
// 30 minutes.
func SendPasswordResetMail(name, toEmail, token string) error {
	config := LoadMailConfig()
	link := fmt.Sprintf("%s/reset-password?token=%s", config.AppURL, token)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Click <a href=\"%s\">here</a> to reset your Fitlog password. The link expires in 30 minutes.</p>",
		name, link,
	)
	return SendMail(toEmail, "Reset your Fitlog password", body)
}

func SendMail(toEmail string, subject string, body string) error {
	emailConfig := LoadMailConfig()

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", emailConfig.SMTPEmail)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	port, err := strconv.Atoi(emailConfig.SMTPPort)
	if err != nil {
		return err
	}
	dialer := gomail.NewDialer(
		emailConfig.SMTPHost,
		port,
		emailConfig.SMTPEmail,
		emailConfig.SMTPPassword,
	)

	return dialer.DialAndSend(mailer)
}
