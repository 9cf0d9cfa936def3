package service

import (
	"context"
	"fmt"

	"docshare-backend/internal/domain"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendRegistrationDecision(ctx context.Context, email, username string, approved bool) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)

	if approved {
		m.SetHeader("Subject", "Your account request has been approved")
		m.SetBody("text/plain", fmt.Sprintf("Hello %s,\n\nYour registration request has been approved. You can now sign in with your username.\n\nThe Docshare Team", username))
	} else {
		m.SetHeader("Subject", "Your account request has been declined")
		m.SetBody("text/plain", fmt.Sprintf("Hello %s,\n\nYour registration request has been declined by an administrator.\n\nThe Docshare Team", username))
	}

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send registration decision email: %w", err)
	}
	return nil
}

func (s *emailService) SendPendingRequestDigest(ctx context.Context, adminEmail string, pending []domain.RegisterRequest) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", adminEmail)
	m.SetHeader("Subject", fmt.Sprintf("%d registration requests awaiting review", len(pending)))

	body := "The following registration requests are waiting for a decision:\n\n"
	for _, req := range pending {
		body += fmt.Sprintf("- %s <%s>, submitted %s\n", req.Username, req.Email, req.CreateDate.Format("2006-01-02"))
	}
	body += "\nThe Docshare Team"
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send pending request digest: %w", err)
	}
	return nil
}
