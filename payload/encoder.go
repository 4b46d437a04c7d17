// Package payload encodes a text message plus binary attachments into the
// backend's message-parts structure.
package payload

import (
	"fmt"
	"io"
	"strings"

	"github.com/datar/agentchat/domain"
)

// DefaultMimeType is assumed for attachments with no declared MIME type.
const DefaultMimeType = "application/octet-stream"

// BuildParts converts text and attachments into an ordered part sequence:
// one text part first (omitted when the text is empty after trimming), then
// one inline part per attachment in submission order. A read failure on any
// attachment fails the whole build. Empty text with no attachments yields an
// empty sequence; refusing to send that is the caller's job.
func BuildParts(text string, attachments []domain.Attachment) ([]domain.Part, error) {
	var parts []domain.Part

	if strings.TrimSpace(text) != "" {
		parts = append(parts, domain.NewTextPart(text))
	}

	for _, att := range attachments {
		data, err := io.ReadAll(att.Reader)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrAttachmentRead, att.Name, err)
		}
		mimeType := att.MimeType
		if mimeType == "" {
			mimeType = DefaultMimeType
		}
		parts = append(parts, domain.NewInlinePart(mimeType, data))
	}

	return parts, nil
}
