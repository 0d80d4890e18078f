package common

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

const (
	// SSEKeepaliveInterval is the interval for sending keepalive comments.
	SSEKeepaliveInterval = 30 * time.Second

	SSEContentType = "text/event-stream"
)

// PollFunc returns the next event payload. done ends the stream after the
// payload is written.
type PollFunc func(ctx context.Context) (payload any, done bool, err error)

// SSEStreamer pushes polled state to a client as server-sent events.
type SSEStreamer struct {
	pollInterval time.Duration
	keepalive    time.Duration
	logger       logger.Interface
}

func NewSSEStreamer(pollInterval time.Duration, log logger.Interface) *SSEStreamer {
	if pollInterval <= 0 {
		pollInterval = time.Second
	}
	return &SSEStreamer{
		pollInterval: pollInterval,
		keepalive:    SSEKeepaliveInterval,
		logger:       log,
	}
}

// SetupSSEResponse sets common SSE response headers. CORS headers come from
// the global middleware.
func (s *SSEStreamer) SetupSSEResponse(c *gin.Context) {
	c.Header("Content-Type", SSEContentType)
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
}

// Stream writes one event per poll until poll reports done, poll fails or
// the client disconnects. Unchanged payloads are not re-sent.
func (s *SSEStreamer) Stream(c *gin.Context, event string, poll PollFunc) {
	s.SetupSSEResponse(c)

	if _, err := c.Writer.WriteString(": connected\n\n"); err != nil {
		s.logger.Warnw("SSE initial write error", "error", err)
		return
	}
	c.Writer.Flush()

	ctx := c.Request.Context()
	pollTicker := time.NewTicker(s.pollInterval)
	defer pollTicker.Stop()
	keepAliveTicker := time.NewTicker(s.keepalive)
	defer keepAliveTicker.Stop()

	var last []byte
	emit := func() bool {
		payload, done, err := poll(ctx)
		if err != nil {
			_ = s.writeEvent(c, "error", gin.H{"message": err.Error()})
			return false
		}
		data, err := json.Marshal(payload)
		if err != nil {
			s.logger.Errorw("failed to encode SSE payload", "error", err)
			return false
		}
		if string(data) != string(last) {
			if err := s.writeRaw(c, event, data); err != nil {
				s.logger.Warnw("SSE write error", "error", err)
				return false
			}
			last = data
		}
		return !done
	}

	if !emit() {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-pollTicker.C:
			if !emit() {
				return
			}
		case <-keepAliveTicker.C:
			if _, err := c.Writer.WriteString(": keepalive\n\n"); err != nil {
				s.logger.Warnw("SSE keepalive error", "error", err)
				return
			}
			c.Writer.Flush()
		}
	}
}

func (s *SSEStreamer) writeEvent(c *gin.Context, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return s.writeRaw(c, event, data)
}

func (s *SSEStreamer) writeRaw(c *gin.Context, event string, data []byte) error {
	if _, err := fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	c.Writer.Flush()
	return nil
}
