package okerr

import (
	"context"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
	"github.com/stretchr/testify/assert"
)

func TestLoggerFrom(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	assert.Equal(t, log.Log, LoggerFrom(ctx))

	logger := &log.Logger{Handler: discard.Default, Level: log.DebugLevel}
	assert.Equal(t, log.Interface(logger), LoggerFrom(WithLogger(ctx, logger)))
}
