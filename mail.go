package main

import (
	"fmt"
	"net/smtp"
	"os"
)

type mailConfig struct {
	host string
	port string
	user string
	pass string
	to   string
}

// loadMailConfig reads SMTP settings from the environment. ok is false when
// credentials are missing, in which case submissions are logged locally
// instead of mailed.
func loadMailConfig(defaultTo string) (mailConfig, bool) {
	cfg := mailConfig{
		host: os.Getenv("SMTP_HOST"),
		port: os.Getenv("SMTP_PORT"),
		user: os.Getenv("SMTP_USER"),
		pass: os.Getenv("SMTP_PASS"),
		to:   os.Getenv("TO_EMAIL"),
	}
	if cfg.host == "" {
		cfg.host = "smtp.gmail.com"
	}
	if cfg.port == "" {
		cfg.port = "587"
	}
	if cfg.to == "" {
		cfg.to = defaultTo
	}
	if cfg.user == "" || cfg.pass == "" {
		return cfg, false
	}
	return cfg, true
}

func sendContactEmail(cfg mailConfig, name, email, message string) error {
	subject := fmt.Sprintf("Portfolio Contact: %s", name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, name, email, message)

	msg := []byte("To: " + cfg.to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + cfg.user + "\r\n" +
		"Reply-To: " + email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", cfg.user, cfg.pass, cfg.host)
	if err := smtp.SendMail(cfg.host+":"+cfg.port, auth, cfg.user, []string{cfg.to}, msg); err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}
	return nil
}
