// Package domain defines the wire types exchanged with the agent backend.
package domain

import (
	"encoding/base64"
	"encoding/json"
)

// PartKind discriminates the variants of a Part.
type PartKind int

const (
	PartKindUnknown PartKind = iota
	PartKindText
	PartKindInline
	PartKindFile
)

// Part is one unit of message content: plain text, inline base64 binary, or a
// reference to externally hosted binary. Exactly one variant is populated.
type Part struct {
	Text       string   `json:"text,omitempty"`
	InlineData *Blob    `json:"inline_data,omitempty"`
	FileData   *FileRef `json:"file_data,omitempty"`
}

// Blob is binary content embedded in the payload as base64.
type Blob struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

// FileRef points to binary content hosted outside the payload.
type FileRef struct {
	MimeType string `json:"mime_type"`
	FileURI  string `json:"file_uri"`
}

// NewTextPart returns a text part. The text is carried verbatim.
func NewTextPart(text string) Part {
	return Part{Text: text}
}

// NewInlinePart base64-encodes data into an inline part.
func NewInlinePart(mimeType string, data []byte) Part {
	return Part{InlineData: &Blob{
		MimeType: mimeType,
		Data:     base64.StdEncoding.EncodeToString(data),
	}}
}

// NewFilePart returns a part referencing externally hosted content.
func NewFilePart(mimeType, uri string) Part {
	return Part{FileData: &FileRef{MimeType: mimeType, FileURI: uri}}
}

// Kind reports which variant of the union is populated.
func (p Part) Kind() PartKind {
	switch {
	case p.InlineData != nil:
		return PartKindInline
	case p.FileData != nil:
		return PartKindFile
	case p.Text != "":
		return PartKindText
	}
	return PartKindUnknown
}

// partWire tolerates both the snake_case spelling the backend envelope uses and
// the camelCase spelling some ADK revisions emit for event parts.
type partWire struct {
	Text string `json:"text"`

	InlineData  *blobWire `json:"inline_data"`
	InlineDataC *blobWire `json:"inlineData"`

	FileData  *fileRefWire `json:"file_data"`
	FileDataC *fileRefWire `json:"fileData"`
}

type blobWire struct {
	MimeType  string `json:"mime_type"`
	MimeTypeC string `json:"mimeType"`
	Data      string `json:"data"`
}

type fileRefWire struct {
	MimeType  string `json:"mime_type"`
	MimeTypeC string `json:"mimeType"`
	FileURI   string `json:"file_uri"`
	FileURIC  string `json:"fileUri"`
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// UnmarshalJSON decodes a part, accepting either field-name spelling.
func (p *Part) UnmarshalJSON(data []byte) error {
	var w partWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*p = Part{Text: w.Text}

	if blob := w.InlineData; blob != nil || w.InlineDataC != nil {
		if blob == nil {
			blob = w.InlineDataC
		}
		p.InlineData = &Blob{
			MimeType: firstNonEmpty(blob.MimeType, blob.MimeTypeC),
			Data:     blob.Data,
		}
	}

	if ref := w.FileData; ref != nil || w.FileDataC != nil {
		if ref == nil {
			ref = w.FileDataC
		}
		p.FileData = &FileRef{
			MimeType: firstNonEmpty(ref.MimeType, ref.MimeTypeC),
			FileURI:  firstNonEmpty(ref.FileURI, ref.FileURIC),
		}
	}

	return nil
}
