package twilio

import (
	"errors"

	"github.com/twilio/twilio-go"
)

// NewTwilioClient создает REST-клиент Twilio по SID аккаунта и токену
func NewTwilioClient(accountSID, authToken string) (*twilio.RestClient, error) {
	if accountSID == "" || authToken == "" {
		return nil, errors.New("twilio credentials are not configured")
	}

	return twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   accountSID,
		Password:   authToken,
		AccountSid: accountSID,
	}), nil
}
