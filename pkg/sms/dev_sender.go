package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DevSender implements Sender for local development. Messages are written as
// JSON files to a directory instead of being delivered. Destination numbers
// go through the same E.164 normalization as the twilio sender so that
// validation bugs surface in development too.
type DevSender struct {
	dir           string
	defaultRegion string
}

// NewDevSender creates a development SMS sender that writes to dir.
func NewDevSender(dir, defaultRegion string) *DevSender {
	return &DevSender{dir: dir, defaultRegion: defaultRegion}
}

type devMessage struct {
	Timestamp        string            `json:"timestamp"`
	To               string            `json:"to"`
	Message          string            `json:"message,omitempty"`
	ContentSID       string            `json:"content_sid,omitempty"`
	ContentVariables map[string]string `json:"content_variables,omitempty"`
}

// Send validates, normalizes and writes the message to disk.
func (d *DevSender) Send(ctx context.Context, params SendParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	to, err := NormalizeE164(params.To, d.defaultRegion)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrFailedToSend, err)
	}

	now := time.Now()
	msg := devMessage{
		Timestamp:        now.Format(time.RFC3339),
		To:               to,
		Message:          params.Message,
		ContentSID:       params.ContentSID,
		ContentVariables: params.ContentVariables,
	}

	data, err := json.MarshalIndent(msg, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal message: %v", ErrFailedToSend, err)
	}

	name := fmt.Sprintf("%s_%s.json", now.Format("2006_01_02_150405.000"), sanitizePhone(to))
	if err := os.WriteFile(filepath.Join(d.dir, name), data, 0644); err != nil {
		return fmt.Errorf("%w: failed to write message file: %v", ErrFailedToSend, err)
	}

	return nil
}

func sanitizePhone(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
