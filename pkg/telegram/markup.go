package telegram

import (
	"encoding/json"
)

// ReplyMarkup is one of ReplyKeyboardMarkup, ReplyKeyboardHide, ForceReply
// or InlineKeyboardMarkup.
type ReplyMarkup interface {
	replyMarkup()
}

// ReplyKeyboardMarkup shows a custom keyboard. Keyboard rows are kept in
// wire order, and so are the buttons within a row.
type ReplyKeyboardMarkup struct {
	Keyboard        [][]string `json:"keyboard,omitempty"`
	ResizeKeyboard  *bool      `json:"resize_keyboard,omitempty"`
	OneTimeKeyboard *bool      `json:"one_time_keyboard,omitempty"`
	Selective       *bool      `json:"selective,omitempty"`
}

type ReplyKeyboardHide struct {
	HideKeyboard bool  `json:"hide_keyboard"`
	Selective    *bool `json:"selective,omitempty"`
}

type ForceReply struct {
	ForceReply bool  `json:"force_reply"`
	Selective  *bool `json:"selective,omitempty"`
}

type InlineKeyboardMarkup struct {
	InlineKeyboard [][]InlineKeyboardButton `json:"inline_keyboard" validate:"omitempty,dive,dive"`
}

type InlineKeyboardButton struct {
	Text              string  `json:"text" validate:"required"`
	URL               *string `json:"url,omitempty"`
	CallbackData      *string `json:"callback_data,omitempty"`
	SwitchInlineQuery *string `json:"switch_inline_query,omitempty"`
}

func (*ReplyKeyboardMarkup) replyMarkup()  {}
func (*ReplyKeyboardHide) replyMarkup()    {}
func (*ForceReply) replyMarkup()           {}
func (*InlineKeyboardMarkup) replyMarkup() {}

// SingleRowKeyboard lays the labels out as one keyboard row.
// With no labels it returns ResizeOnlyKeyboard.
func SingleRowKeyboard(labels ...string) *ReplyKeyboardMarkup {
	if len(labels) == 0 {
		return ResizeOnlyKeyboard()
	}
	row := make([]string, len(labels))
	copy(row, labels)
	return &ReplyKeyboardMarkup{Keyboard: [][]string{row}}
}

// ResizeOnlyKeyboard is the markup sent when no keyboard is wanted.
func ResizeOnlyKeyboard() *ReplyKeyboardMarkup {
	return &ReplyKeyboardMarkup{ResizeKeyboard: Ptr(true)}
}

// decodeReplyMarkup picks the concrete markup by its distinguishing key.
func decodeReplyMarkup(data []byte) (ReplyMarkup, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, &json.UnmarshalTypeError{
			Value: jsonValueKind(data),
			Type:  replyMarkupType,
			Field: "reply_markup",
		}
	}

	var m ReplyMarkup
	switch {
	case has(keys, "inline_keyboard"):
		m = &InlineKeyboardMarkup{}
	case has(keys, "hide_keyboard"):
		m = &ReplyKeyboardHide{}
	case has(keys, "force_reply"):
		m = &ForceReply{}
	default:
		m = &ReplyKeyboardMarkup{}
	}
	if err := json.Unmarshal(data, m); err != nil {
		return nil, err
	}
	return m, nil
}

func has(m map[string]json.RawMessage, key string) bool {
	_, ok := m[key]
	return ok
}
