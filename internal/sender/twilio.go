package sender

import (
	"context"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// messageCreator - часть Twilio API, нужная для отправки SMS
type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// TwilioSender отправляет SMS через Twilio Messages API
type TwilioSender struct {
	api messageCreator
}

// NewTwilioSender создает TwilioSender поверх REST-клиента Twilio
func NewTwilioSender(client *twilio.RestClient) *TwilioSender {
	return &TwilioSender{api: client.Api}
}

// Send отправляет одно сообщение. Ошибка провайдера возвращается как есть,
// ее текст уходит вызывающему в ответе. SDK не принимает context.
func (s *TwilioSender) Send(_ context.Context, from, to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(body)

	_, err := s.api.CreateMessage(params)
	return err
}
