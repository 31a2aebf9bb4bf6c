package services

import (
	"fmt"
	"net/smtp"
	"net/url"
	"strings"

	"nestling/pkg/config"
)

type MailServiceInterface interface {
	SendWelcome(to, firstName string) error
	SendPasswordReset(to, token string) error
}

type smtpMailService struct {
	cfg config.SMTPConfig
}

func NewMailService(cfg config.SMTPConfig) MailServiceInterface {
	return &smtpMailService{cfg: cfg}
}

func (s *smtpMailService) SendWelcome(to, firstName string) error {
	subject := "Welcome to Nestling"
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nYour account is ready. Add your first child to start tracking growth, feeding, sleep and more.\r\n",
		firstName)
	return s.send(to, subject, body)
}

func (s *smtpMailService) SendPasswordReset(to, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s",
		strings.TrimRight(s.cfg.AppBaseURL, "/"), url.QueryEscape(token))
	subject := "Reset your password"
	body := fmt.Sprintf(
		"We received a request to reset your password.\r\n\r\nOpen the link below to choose a new one. The link is valid for 15 minutes and can be used once.\r\n\r\n%s\r\n\r\nIf you did not request this, you can ignore this email.\r\n",
		link)
	return s.send(to, subject, body)
}

func (s *smtpMailService) send(to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n")
	msg.WriteString(body)

	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg.String()))
}
