package service

import (
	"context"
	netmail "net/mail"
	"strings"

	"aesthetic-cakes/internal/mail"
	"aesthetic-cakes/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// ContactSentMessage is shown to the visitor after a successful submission.
const ContactSentMessage = "Message sent successfully!"

// contactService implements ContactService.
type contactService struct {
	relay    mail.Relay
	inflight singleflight.Group
	logger   zerolog.Logger
}

// NewContactService creates a new contact service that delivers through relay.
func NewContactService(relay mail.Relay, logger zerolog.Logger) ContactService {
	return &contactService{
		relay:  relay,
		logger: logger.With().Str("service", "contact").Logger(),
	}
}

// Submit validates the message and relays it once. Identical submissions
// from the same session that arrive while one is in flight share its result.
// A caller that goes away stops waiting but does not cancel the shared send.
func (s *contactService) Submit(ctx context.Context, sessionID uuid.UUID, msg *model.ContactMessage) (*model.ContactResponse, error) {
	if err := validateContactMessage(msg); err != nil {
		return nil, err
	}

	key := strings.Join([]string{sessionID.String(), msg.UserName, msg.UserEmail, msg.Message}, "\x00")

	// The shared send outlives any single caller; the relay timeout bounds it.
	sendCtx := context.WithoutCancel(ctx)
	relayed := *msg
	ch := s.inflight.DoChan(key, func() (any, error) {
		return nil, s.relay.Send(sendCtx, relayed)
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		s.logger.Warn().
			Err(ctx.Err()).
			Str("session_id", sessionID.String()).
			Msg("contact submission abandoned by client")
		return nil, model.ErrSubmissionFailed
	}

	err, shared := res.Err, res.Shared
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("session_id", sessionID.String()).
			Msg("contact message not delivered")
		return nil, model.ErrSubmissionFailed
	}

	s.logger.Info().
		Str("session_id", sessionID.String()).
		Bool("shared", shared).
		Msg("contact message delivered")

	return &model.ContactResponse{
		Status:  "sent",
		Message: ContactSentMessage,
	}, nil
}

// validateContactMessage trims the fields in place and checks them.
func validateContactMessage(msg *model.ContactMessage) error {
	if msg == nil {
		return model.ErrMissingField
	}

	msg.UserName = strings.TrimSpace(msg.UserName)
	msg.UserEmail = strings.TrimSpace(msg.UserEmail)
	msg.Message = strings.TrimSpace(msg.Message)

	if msg.UserName == "" || msg.UserEmail == "" || msg.Message == "" {
		return model.ErrMissingField
	}

	addr, err := netmail.ParseAddress(msg.UserEmail)
	if err != nil || addr.Address != msg.UserEmail {
		return model.ErrInvalidEmail
	}

	return nil
}
