package notifications

import (
	"context"
	"errors"
	"fmt"

	"saudeplus/internal/config"
	"saudeplus/internal/usecase/interfaces"

	"github.com/rs/zerolog"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

var ErrTwilioNotConfigured = errors.New("twilio notifier not configured")

// TwilioNotifier delivers negotiation requests to the operator follow-up
// number. Delivery is best-effort by contract: the workflow never blocks on
// the channel.
type TwilioNotifier struct {
	client *twilio.RestClient
	from   string
	to     string
	log    zerolog.Logger
}

var _ interfaces.INegotiationNotifier = (*TwilioNotifier)(nil)

func NewTwilioNotifier(cfg config.TwilioConfig, log zerolog.Logger) (*TwilioNotifier, error) {
	if cfg.AccountSID == "" || cfg.AuthToken == "" || cfg.From == "" || cfg.FollowUpTo == "" {
		return nil, ErrTwilioNotConfigured
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &TwilioNotifier{client: client, from: cfg.From, to: cfg.FollowUpTo, log: log}, nil
}

func (n *TwilioNotifier) SendNegotiation(ctx context.Context, quoteID, clientID, message string) error {
	body := fmt.Sprintf("Negociação solicitada para o orçamento %s (cliente %s): %s", quoteID, clientID, message)

	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(n.from)
	params.SetTo(n.to)
	params.SetBody(body)

	resp, err := n.client.Api.CreateMessage(params)
	if err != nil {
		return err
	}

	sid := ""
	if resp.Sid != nil {
		sid = *resp.Sid
	}
	n.log.Info().Str("quote_id", quoteID).Str("message_sid", sid).Msg("negotiation message delivered")
	return nil
}
