package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNew_Level(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, New("debug", "json").GetLevel())
	assert.Equal(t, logrus.InfoLevel, New("not-a-level", "json").GetLevel())
}

func TestNew_Formatter(t *testing.T) {
	assert.IsType(t, &logrus.JSONFormatter{}, New("info", "json").Formatter)
	assert.IsType(t, &logrus.JSONFormatter{}, New("info", "").Formatter)
	assert.IsType(t, &logrus.TextFormatter{}, New("info", "text").Formatter)
}
