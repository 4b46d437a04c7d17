package payload

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/datar/agentchat/domain"
)

func TestBuildPartsEmpty(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		parts, err := BuildParts(text, nil)
		if err != nil {
			t.Fatalf("BuildParts(%q) failed: %v", text, err)
		}
		if len(parts) != 0 {
			t.Fatalf("expected empty parts for %q, got %d", text, len(parts))
		}
	}
}

func TestBuildPartsTextFirst(t *testing.T) {
	parts, err := BuildParts("  Hola Mundo  ", []domain.Attachment{
		{Name: "a.bin", MimeType: "application/pdf", Reader: bytes.NewReader([]byte{1, 2})},
	})
	if err != nil {
		t.Fatalf("BuildParts failed: %v", err)
	}
	if len(parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(parts))
	}
	if parts[0].Kind() != domain.PartKindText {
		t.Fatalf("expected text part first, got %+v", parts[0])
	}
	// Trimming only gates the empty check, the text itself is untouched.
	if parts[0].Text != "  Hola Mundo  " {
		t.Fatalf("text not preserved: %q", parts[0].Text)
	}
	if parts[1].Kind() != domain.PartKindInline {
		t.Fatalf("expected inline part second, got %+v", parts[1])
	}
}

func TestBuildPartsRoundTrip(t *testing.T) {
	original := []byte{0x89, 0x50, 0x4e, 0x47, 0x00, 0xff}
	parts, err := BuildParts("", []domain.Attachment{
		{Name: "pic.png", MimeType: "image/png", Reader: bytes.NewReader(original)},
	})
	if err != nil {
		t.Fatalf("BuildParts failed: %v", err)
	}
	if len(parts) != 1 {
		t.Fatalf("expected 1 part, got %d", len(parts))
	}
	decoded, err := base64.StdEncoding.DecodeString(parts[0].InlineData.Data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !bytes.Equal(decoded, original) {
		t.Fatalf("round trip mismatch: %v != %v", decoded, original)
	}
	if parts[0].InlineData.MimeType != "image/png" {
		t.Fatalf("unexpected mime type: %s", parts[0].InlineData.MimeType)
	}
}

func TestBuildPartsDefaultMimeType(t *testing.T) {
	parts, err := BuildParts("", []domain.Attachment{
		{Name: "mystery", Reader: strings.NewReader("x")},
	})
	if err != nil {
		t.Fatalf("BuildParts failed: %v", err)
	}
	if got := parts[0].InlineData.MimeType; got != DefaultMimeType {
		t.Fatalf("expected %s, got %s", DefaultMimeType, got)
	}
}

func TestBuildPartsReadError(t *testing.T) {
	boom := errors.New("disk gone")
	_, err := BuildParts("hola", []domain.Attachment{
		{Name: "ok.txt", MimeType: "text/plain", Reader: strings.NewReader("fine")},
		{Name: "bad.txt", MimeType: "text/plain", Reader: iotest.ErrReader(boom)},
	})
	if !errors.Is(err, domain.ErrAttachmentRead) {
		t.Fatalf("expected ErrAttachmentRead, got %v", err)
	}
}

func TestBuildPartsAttachmentOrder(t *testing.T) {
	parts, err := BuildParts("", []domain.Attachment{
		{Name: "one", MimeType: "image/png", Reader: strings.NewReader("1")},
		{Name: "two", MimeType: "audio/mpeg", Reader: strings.NewReader("2")},
	})
	if err != nil {
		t.Fatalf("BuildParts failed: %v", err)
	}
	if parts[0].InlineData.MimeType != "image/png" || parts[1].InlineData.MimeType != "audio/mpeg" {
		t.Fatalf("submission order not preserved: %+v", parts)
	}
}
