package domain

import "strings"

// UnknownAuthor is reported for events that carry no author tag.
const UnknownAuthor = "unknown"

// ExtractContent flattens an event into renderable text plus image and audio
// media lists. Text parts are concatenated in order with no separator. Inline
// parts become data URIs; file references keep their URI as-is. Parts whose
// MIME type is neither image/* nor audio/* contribute nothing to the media
// lists.
func ExtractContent(ev AgentEvent) NormalizedContent {
	var out NormalizedContent
	if ev.Content == nil {
		return out
	}

	var text strings.Builder
	for _, p := range ev.Content.Parts {
		switch p.Kind() {
		case PartKindText:
			text.WriteString(p.Text)
		case PartKindInline:
			classify(&out, MediaRef{
				URL:      "data:" + p.InlineData.MimeType + ";base64," + p.InlineData.Data,
				MimeType: p.InlineData.MimeType,
			})
		case PartKindFile:
			classify(&out, MediaRef{
				URL:      p.FileData.FileURI,
				MimeType: p.FileData.MimeType,
			})
		}
	}
	out.Text = text.String()
	return out
}

func classify(out *NormalizedContent, ref MediaRef) {
	switch {
	case strings.HasPrefix(ref.MimeType, "image/"):
		out.Images = append(out.Images, ref)
	case strings.HasPrefix(ref.MimeType, "audio/"):
		out.Audio = append(out.Audio, ref)
	}
}

// ExtractText returns the concatenated text of an event's text parts. The
// second return is false when the event produced no text, for callers that
// only care about textual replies.
func ExtractText(ev AgentEvent) (string, bool) {
	text := ExtractContent(ev).Text
	return text, text != ""
}

// Author returns the event's author tag, or UnknownAuthor if absent.
func Author(ev AgentEvent) string {
	if ev.Author == "" {
		return UnknownAuthor
	}
	return ev.Author
}
