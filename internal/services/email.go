package services

import (
	"context"
	"fmt"
	"log/slog"

	"weddinginvitation/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendWelcomeMessage sends a welcome email using the "welcome" template and the given data.
func (s *emailService) SendWelcomeMessage(ctx context.Context, data *domain.WelcomeMessageEmailData) error {
	if data == nil {
		return fmt.Errorf("welcome message data is nil")
	}
	if err := s.send(ctx, "welcome", data.Email, data); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	s.logger.InfoContext(ctx, "welcome email sent", "to", data.Email)
	return nil
}

// SendRSVPReceived notifies the wedding owner of a new RSVP using the "rsvp_received" template.
func (s *emailService) SendRSVPReceived(ctx context.Context, data *domain.RSVPReceivedEmailData) error {
	if data == nil {
		return fmt.Errorf("rsvp received data is nil")
	}
	if err := s.send(ctx, "rsvp_received", data.Email, data); err != nil {
		return fmt.Errorf("failed to send rsvp notification: %w", err)
	}
	s.logger.InfoContext(ctx, "rsvp notification sent", "to", data.Email)
	return nil
}

func (s *emailService) send(ctx context.Context, template, to string, data any) error {
	subject, htmlBody, textBody, err := s.renderer.Render(template, data)
	if err != nil {
		return fmt.Errorf("render %s template: %w", template, err)
	}
	return s.mailer.Send(ctx, to, subject, htmlBody, textBody)
}
