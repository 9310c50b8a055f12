package mongo

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"playlog/config"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/event"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestCommandMonitor_LogsFailures(t *testing.T) {
	var buf bytes.Buffer
	monitor := newCommandMonitor(newBufferLogger(&buf), &config.Config{})

	monitor.Failed(context.Background(), &event.CommandFailedEvent{
		CommandFinishedEvent: event.CommandFinishedEvent{CommandName: "find", DatabaseName: "playlog"},
		Failure:              "connection reset",
	})

	assert.Contains(t, buf.String(), "MongoDB command failed")
	assert.Contains(t, buf.String(), "connection reset")
	assert.Contains(t, buf.String(), "command=find")
}

func TestCommandMonitor_SlowAndDebug(t *testing.T) {
	var buf bytes.Buffer
	monitor := newCommandMonitor(newBufferLogger(&buf), &config.Config{})

	monitor.Succeeded(context.Background(), &event.CommandSucceededEvent{
		CommandFinishedEvent: event.CommandFinishedEvent{CommandName: "insert", Duration: time.Millisecond},
	})
	assert.Empty(t, buf.String(), "fast commands are silent outside debug mode")

	monitor.Succeeded(context.Background(), &event.CommandSucceededEvent{
		CommandFinishedEvent: event.CommandFinishedEvent{CommandName: "insert", Duration: time.Second},
	})
	assert.Contains(t, buf.String(), "MongoDB slow command")

	buf.Reset()
	debugCfg := &config.Config{}
	debugCfg.Env.Debug = true
	debugMonitor := newCommandMonitor(newBufferLogger(&buf), debugCfg)
	debugMonitor.Succeeded(context.Background(), &event.CommandSucceededEvent{
		CommandFinishedEvent: event.CommandFinishedEvent{CommandName: "find", Duration: time.Millisecond},
	})
	assert.Contains(t, buf.String(), "MongoDB command")
}
