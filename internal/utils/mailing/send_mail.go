package mailing

import (
	"Agro-Assistant-Backend/internal/utils"
	"fmt"
	"strconv"

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

// SendWelcomeMail greets a freshly auto-provisioned account. Mailing is a
// no-op when SMTP is not configured.
func SendWelcomeMail(toEmail string, username string) error {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your gardening assistant account is ready. "+
			"Log in any time to check on your plants, tasks and trends.</p>",
		username,
	)
	return SendMail(toEmail, "Welcome to Agro Assistant", body)
}

func SendMail(toEmail string, subject string, body string) error {
	emailConfig := LoadMailConfig()
	if emailConfig.SMTPHost == "" {
		return nil
	}

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

	err = dialer.DialAndSend(mailer)
	if err != nil {
		return err
	}

	return nil
}
