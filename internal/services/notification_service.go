package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"medequip-system/internal/dto"
	"medequip-system/internal/repositories"
	"medequip-system/pkg/mailer"
)

type NotificationServiceInterface interface {
	SendRequestCreated(ctx context.Context, request *dto.RequestDTO) error
}

// EmailNotificationService mails every admin plus the requester when a new
// request comes in, if the emailNotifications setting is on.
type EmailNotificationService struct {
	settings       SettingServiceInterface
	userRepository repositories.UserRepositoryInterface
	mailer         mailer.Mailer
	logger         *zap.Logger
}

func NewEmailNotificationService(
	settings SettingServiceInterface,
	userRepository repositories.UserRepositoryInterface,
	m mailer.Mailer,
	logger *zap.Logger,
) NotificationServiceInterface {
	return &EmailNotificationService{
		settings:       settings,
		userRepository: userRepository,
		mailer:         m,
		logger:         logger,
	}
}

func (s *EmailNotificationService) SendRequestCreated(ctx context.Context, request *dto.RequestDTO) error {
	if !s.settings.EmailNotificationsEnabled(ctx) {
		return nil
	}

	adminEmails, err := s.userRepository.GetAdminEmails(ctx)
	if err != nil {
		return fmt.Errorf("collecting admin recipients: %w", err)
	}

	recipients := RequestRecipients(adminEmails, request.Owner.Email)
	if len(recipients) == 0 {
		return nil
	}

	subject, body := ComposeRequestEmail(request)
	if err := s.mailer.Send(recipients, subject, body); err != nil {
		return fmt.Errorf("sending request email: %w", err)
	}

	s.logger.Info("request notification sent",
		zap.Uint64("request_id", request.ID),
		zap.Int("recipients", len(recipients)),
	)
	return nil
}

// RequestRecipients is the deduplicated union of all admin addresses and
// the requester's address.
func RequestRecipients(adminEmails []string, requesterEmail string) []string {
	seen := make(map[string]bool, len(adminEmails)+1)
	recipients := make([]string, 0, len(adminEmails)+1)

	add := func(email string) {
		if email == "" || seen[email] {
			return
		}
		seen[email] = true
		recipients = append(recipients, email)
	}

	for _, email := range adminEmails {
		add(email)
	}
	add(requesterEmail)

	return recipients
}

// ComposeRequestEmail renders the plain-text notification for a new request.
func ComposeRequestEmail(request *dto.RequestDTO) (subject, body string) {
	subject = fmt.Sprintf("New equipment request #%d", request.ID)

	var b strings.Builder
	fmt.Fprintf(&b, "A new request was submitted by %s (%s).\n\n", request.Owner.Name, request.Owner.Email)
	fmt.Fprintf(&b, "Status: %s\n", request.Status)
	if request.Notes.Valid {
		fmt.Fprintf(&b, "Notes: %s\n", request.Notes.String)
	}

	b.WriteString("\nItems:\n")
	for _, item := range request.Items {
		fmt.Fprintf(&b, "  - %s", item.Type)
		if item.Description.Valid {
			fmt.Fprintf(&b, ": %s", item.Description.String)
		}
		if item.Equipment != nil {
			fmt.Fprintf(&b, " (equipment: %s", item.Equipment.TypeName)
			if item.Equipment.Reference.Valid {
				fmt.Fprintf(&b, " %s", item.Equipment.Reference.String)
			}
			fmt.Fprintf(&b, ", resident %s)", item.Equipment.Resident)
		}
		b.WriteString("\n")
	}

	return subject, b.String()
}
