package telegram

import (
	"encoding/json"
	"errors"
	"reflect"
)

// API method names.
const (
	MethodGetUpdates     = "getUpdates"
	MethodGetFile        = "getFile"
	MethodSendMessage    = "sendMessage"
	MethodKickChatMember = "kickChatMember"
)

// Request is an outbound argument bundle.
type Request interface {
	Method() string
}

// GetUpdatesArgs is the body of getUpdates.
type GetUpdatesArgs struct {
	Offset  *int64 `json:"offset,omitempty"`
	Limit   *int   `json:"limit,omitempty"`
	Timeout *int   `json:"timeout,omitempty"`
}

// GetFileArgs is the body of getFile.
type GetFileArgs struct {
	FileID string `json:"file_id" validate:"required"`
}

// SendMessageArgs is the body of sendMessage.
type SendMessageArgs struct {
	ChatID      int64       `json:"chat_id" validate:"required"`
	Text        string      `json:"text" validate:"required"`
	ParseMode   *ParseMode  `json:"parse_mode,omitempty" validate:"omitempty,wireenum"`
	ReplyMarkup ReplyMarkup `json:"reply_markup,omitempty"`
}

// KickArgs is the body of kickChatMember.
type KickArgs struct {
	ChatID int64 `json:"chat_id" validate:"required"`
	UserID int64 `json:"user_id" validate:"required"`
}

func (GetUpdatesArgs) Method() string  { return MethodGetUpdates }
func (GetFileArgs) Method() string     { return MethodGetFile }
func (SendMessageArgs) Method() string { return MethodSendMessage }
func (KickArgs) Method() string        { return MethodKickChatMember }

// NewGetFileArgs builds a getFile bundle.
func NewGetFileArgs(fileID string) (GetFileArgs, error) {
	args := GetFileArgs{FileID: fileID}
	return args, Validate(args)
}

// SendMessageOption sets an optional sendMessage field.
type SendMessageOption func(*SendMessageArgs)

func WithParseMode(m ParseMode) SendMessageOption {
	return func(a *SendMessageArgs) { a.ParseMode = &m }
}

func WithReplyMarkup(m ReplyMarkup) SendMessageOption {
	return func(a *SendMessageArgs) { a.ReplyMarkup = m }
}

// NewSendMessageArgs builds a sendMessage bundle. A zero chatID or empty
// text is reported as a missing field.
func NewSendMessageArgs(chatID int64, text string, opts ...SendMessageOption) (SendMessageArgs, error) {
	args := SendMessageArgs{ChatID: chatID, Text: text}
	for _, opt := range opts {
		opt(&args)
	}
	if err := Validate(args); err != nil {
		return SendMessageArgs{}, err
	}
	return args, nil
}

// NewKickArgs builds a kickChatMember bundle.
func NewKickArgs(chatID, userID int64) (KickArgs, error) {
	args := KickArgs{ChatID: chatID, UserID: userID}
	if err := Validate(args); err != nil {
		return KickArgs{}, err
	}
	return args, nil
}

var replyMarkupType = reflect.TypeOf((*ReplyMarkup)(nil)).Elem()

// UnmarshalJSON resolves the polymorphic reply_markup field.
func (a *SendMessageArgs) UnmarshalJSON(data []byte) error {
	var raw sendMessageWire
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	markup, err := decodeReplyMarkup(raw.ReplyMarkup)
	if err != nil {
		var te *json.UnmarshalTypeError
		if errors.As(err, &te) && te.Field != "reply_markup" {
			te.Field = "reply_markup." + te.Field
		}
		return err
	}
	*a = SendMessageArgs{
		ChatID:      raw.ChatID,
		Text:        raw.Text,
		ParseMode:   raw.ParseMode,
		ReplyMarkup: markup,
	}
	return nil
}

// sendMessageWire mirrors SendMessageArgs with reply_markup left raw.
type sendMessageWire struct {
	ChatID      int64           `json:"chat_id"`
	Text        string          `json:"text"`
	ParseMode   *ParseMode      `json:"parse_mode,omitempty"`
	ReplyMarkup json.RawMessage `json:"reply_markup,omitempty"`
}
