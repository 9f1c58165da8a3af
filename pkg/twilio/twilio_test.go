package twilio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTwilioClient(t *testing.T) {
	client, err := NewTwilioClient("AC123", "secret")

	require.NoError(t, err)
	require.NotNil(t, client)
	assert.NotNil(t, client.Api)
}

func TestNewTwilioClient_MissingCredentials(t *testing.T) {
	_, err := NewTwilioClient("", "secret")
	assert.Error(t, err)

	_, err = NewTwilioClient("AC123", "")
	assert.Error(t, err)
}
