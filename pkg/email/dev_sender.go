package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DevSender implements Sender for local development. It saves emails as HTML
// and JSON files to a directory instead of delivering them.
type DevSender struct {
	dir string
}

// NewDevSender creates a development email sender that writes to dir.
// The directory is created on first send if it doesn't exist.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir}
}

type devEmailMetadata struct {
	Timestamp     string         `json:"timestamp"`
	To            string         `json:"to"`
	Subject       string         `json:"subject"`
	TemplateAlias string         `json:"template_alias,omitempty"`
	TemplateModel map[string]any `json:"template_model,omitempty"`
	Tag           string         `json:"tag,omitempty"`
}

// Send writes the email body and metadata to the configured directory.
// Templated sends produce a metadata file only, since the template lives on
// the provider side.
func (d *DevSender) Send(ctx context.Context, params SendParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrFailedToSend, err)
	}

	now := time.Now()
	identifier := params.Tag
	if identifier == "" {
		identifier = params.Subject
	}
	if identifier == "" {
		identifier = params.TemplateAlias
	}
	base := fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405"), sanitizeFilename(identifier))

	if params.BodyHTML != "" {
		htmlPath := filepath.Join(d.dir, base+".html")
		if err := os.WriteFile(htmlPath, []byte(params.BodyHTML), 0644); err != nil {
			return fmt.Errorf("%w: failed to write HTML file: %v", ErrFailedToSend, err)
		}
	}

	meta := devEmailMetadata{
		Timestamp:     now.Format(time.RFC3339),
		To:            params.To,
		Subject:       params.Subject,
		TemplateAlias: params.TemplateAlias,
		TemplateModel: params.TemplateModel,
		Tag:           params.Tag,
	}
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal metadata: %v", ErrFailedToSend, err)
	}
	if err := os.WriteFile(filepath.Join(d.dir, base+".json"), data, 0644); err != nil {
		return fmt.Errorf("%w: failed to write JSON file: %v", ErrFailedToSend, err)
	}

	return nil
}

var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "email"
	}
	return strings.ToLower(s)
}
