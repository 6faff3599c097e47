package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// TwilioGateway sends WhatsApp content templates through the Twilio API.
type TwilioGateway struct {
	client      *twilio.RestClient
	from        string // whatsapp:+<countrycode><number>
	contentSIDs map[string]string
	logger      *zap.Logger
}

func NewTwilioGateway(accountSID, authToken, from string, contentSIDs map[string]string, logger ...*zap.Logger) *TwilioGateway {
	l := zap.L().Named("notify.twilio")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notify.twilio")
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioGateway{
		client:      client,
		from:        from,
		contentSIDs: contentSIDs,
		logger:      l,
	}
}

func (g *TwilioGateway) Send(ctx context.Context, to, templateKey string, vars map[string]string) error {
	sid, ok := g.contentSIDs[templateKey]
	if !ok || sid == "" {
		return fmt.Errorf("no content SID configured for template %q", templateKey)
	}

	varsJSON, err := json.Marshal(vars)
	if err != nil {
		return fmt.Errorf("encode template vars: %w", err)
	}

	params := &openapi.CreateMessageParams{}
	params.SetFrom(g.from)
	params.SetTo(to)
	params.SetContentSid(sid)
	params.SetContentVariables(string(varsJSON))

	resp, err := g.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("send template %q: %w", templateKey, err)
	}

	messageSid := ""
	if resp.Sid != nil {
		messageSid = *resp.Sid
	}
	g.logger.Info("whatsapp template sent",
		zap.String("template", templateKey),
		zap.String("sid", messageSid),
	)
	return nil
}
