package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	previousOut := logrus.StandardLogger().Out
	previousFormatter := logrus.StandardLogger().Formatter

	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	t.Cleanup(func() {
		logrus.SetOutput(previousOut)
		logrus.SetFormatter(previousFormatter)
	})
	return &buf
}

func TestWithCorrelationIDValue(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		validate func(t *testing.T, id string)
	}{
		{
			name:     "Mantém o ID recebido",
			incoming: "abc-123",
			validate: func(t *testing.T, id string) {
				assert.Equal(t, "abc-123", id)
			},
		},
		{
			name:     "Gera um novo ID quando vazio",
			incoming: "  ",
			validate: func(t *testing.T, id string) {
				assert.Len(t, id, 36)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, id := WithCorrelationIDValue(context.Background(), tt.incoming)
			tt.validate(t, id)
			assert.Equal(t, id, GetCorrelationID(ctx))
		})
	}
}

func TestGetCorrelationID_Missing(t *testing.T) {
	assert.Equal(t, "", GetCorrelationID(context.Background()))
}

func TestLogger_DevelopmentFieldFilter(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf := captureOutput(t)

	ForContext(context.Background()).WithFields(Fields{
		"startup":     "Zomato",
		"remote_addr": "127.0.0.1",
		"user_email":  "a@b.c",
	}).Info("teste")

	out := buf.String()
	assert.Contains(t, out, "startup=Zomato")
	assert.Contains(t, out, "user_email=a@b.c")
	assert.NotContains(t, out, "remote_addr")
}

func TestLogger_ProductionKeepsAllFields(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf := captureOutput(t)

	ctx, _ := WithCorrelationIDValue(context.Background(), "corr-1")
	ForContext(ctx).WithField("remote_addr", "127.0.0.1").Info("teste")

	out := buf.String()
	assert.Contains(t, out, "correlation_id=corr-1")
	assert.Contains(t, out, "remote_addr=127.0.0.1")
}
