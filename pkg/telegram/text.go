package telegram

import (
	"strings"
	"unicode/utf16"
)

// MaxMessageLength is the longest text sendMessage accepts, in characters.
const MaxMessageLength = 4096

// SplitMessage breaks an over-long sendMessage bundle into bundles that each
// fit MaxMessageLength. Cuts land on the last newline inside the window,
// which starts the next chunk; a window without one is cut hard. Every
// chunk keeps the parse mode and reply markup.
func SplitMessage(args SendMessageArgs) []SendMessageArgs {
	var out []SendMessageArgs
	rest := []rune(args.Text)
	for len(rest) > MaxMessageLength {
		at := lastNewline(rest[:MaxMessageLength])
		if at <= 0 {
			at = MaxMessageLength
		}
		chunk := args
		chunk.Text = string(rest[:at])
		out = append(out, chunk)
		rest = rest[at:]
	}
	last := args
	last.Text = string(rest)
	return append(out, last)
}

func lastNewline(rs []rune) int {
	for i := len(rs) - 1; i >= 0; i-- {
		if rs[i] == '\n' {
			return i
		}
	}
	return -1
}

// EntityText returns the span of text covered by e, or "" when the span
// falls outside the text.
func EntityText(text string, e MessageEntity) string {
	units := utf16.Encode([]rune(text))
	if e.Offset < 0 || e.Length < 0 || e.Offset > len(units) || e.Length > len(units)-e.Offset {
		return ""
	}
	return string(utf16.Decode(units[e.Offset : e.Offset+e.Length]))
}

// Commands returns the bot commands in the message, in entity order,
// without their leading slash. A command addressed as /cmd@name is kept
// only when name is one of botNames; bare commands are always kept.
func (m *Message) Commands(botNames ...string) []string {
	if m.Text == nil {
		return nil
	}
	var out []string
	for _, e := range m.Entities {
		if e.Type != EntityBotCommand {
			continue
		}
		cmd := strings.TrimPrefix(EntityText(*m.Text, e), "/")
		name, target, addressed := strings.Cut(cmd, "@")
		if addressed && !containsFold(botNames, target) {
			continue
		}
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
