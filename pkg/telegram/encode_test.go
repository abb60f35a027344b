package telegram_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"botschema/pkg/telegram"
)

func TestEncodeOmitsAbsentFields(t *testing.T) {
	tests := []struct {
		name string
		req  telegram.Request
		want string
	}{
		{
			name: "empty getUpdates",
			req:  telegram.GetUpdatesArgs{},
			want: `{}`,
		},
		{
			name: "zero offset is present",
			req:  telegram.GetUpdatesArgs{Offset: telegram.Ptr(int64(0)), Timeout: telegram.Ptr(30)},
			want: `{"offset":0,"timeout":30}`,
		},
		{
			name: "getFile",
			req:  telegram.GetFileArgs{FileID: "AgAD"},
			want: `{"file_id":"AgAD"}`,
		},
		{
			name: "plain sendMessage",
			req:  telegram.SendMessageArgs{ChatID: -1001, Text: "hi"},
			want: `{"chat_id":-1001,"text":"hi"}`,
		},
		{
			name: "sendMessage with markup",
			req: telegram.SendMessageArgs{
				ChatID:      5,
				Text:        "pick",
				ParseMode:   telegram.Ptr(telegram.ParseModeHTML),
				ReplyMarkup: telegram.SingleRowKeyboard("yes", "no"),
			},
			want: `{"chat_id":5,"text":"pick","parse_mode":"HTML","reply_markup":{"keyboard":[["yes","no"]]}}`,
		},
		{
			name: "kickChatMember",
			req:  telegram.KickArgs{ChatID: -5, UserID: 9},
			want: `{"chat_id":-5,"user_id":9}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := telegram.Encode(tt.req)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(body))
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	d := telegram.NewDecoder(telegram.WithEnumPolicy(telegram.PolicyStrict))

	requests := []telegram.Request{
		telegram.GetUpdatesArgs{},
		telegram.GetUpdatesArgs{Offset: telegram.Ptr(int64(100)), Limit: telegram.Ptr(10), Timeout: telegram.Ptr(0)},
		telegram.GetFileArgs{FileID: "f"},
		telegram.KickArgs{ChatID: 1, UserID: 2},
		telegram.SendMessageArgs{ChatID: 1, Text: "t"},
		telegram.SendMessageArgs{ChatID: 1, Text: "t", ParseMode: telegram.Ptr(telegram.ParseModeMarkdown)},
		telegram.SendMessageArgs{ChatID: 1, Text: "t", ReplyMarkup: telegram.ResizeOnlyKeyboard()},
		telegram.SendMessageArgs{ChatID: 1, Text: "t", ReplyMarkup: &telegram.ReplyKeyboardMarkup{
			Keyboard:        [][]string{{"A", "B"}, {"C"}},
			OneTimeKeyboard: telegram.Ptr(false),
		}},
		telegram.SendMessageArgs{ChatID: 1, Text: "t", ReplyMarkup: &telegram.ReplyKeyboardHide{HideKeyboard: true}},
		telegram.SendMessageArgs{ChatID: 1, Text: "t", ReplyMarkup: &telegram.ForceReply{ForceReply: true, Selective: telegram.Ptr(true)}},
		telegram.SendMessageArgs{ChatID: 1, Text: "t", ReplyMarkup: &telegram.InlineKeyboardMarkup{
			InlineKeyboard: [][]telegram.InlineKeyboardButton{
				{{Text: "open", URL: telegram.Ptr("https://example.com")}, {Text: "vote", CallbackData: telegram.Ptr("v:1")}},
				{{Text: "share", SwitchInlineQuery: telegram.Ptr("")}},
			},
		}},
	}

	for _, req := range requests {
		t.Run(req.Method(), func(t *testing.T) {
			body, err := telegram.Encode(req)
			require.NoError(t, err)

			got, err := d.DecodeRequest(req.Method(), body)
			require.NoError(t, err)
			assert.Equal(t, req, got)
		})
	}
}

func TestNewSendMessageArgsRequiresFields(t *testing.T) {
	tests := []struct {
		name   string
		chatID int64
		text   string
		field  string
	}{
		{"missing chat id", 0, "hello", "chat_id"},
		{"missing text", 42, "", "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, err := telegram.NewSendMessageArgs(tt.chatID, tt.text)
			assert.Equal(t, telegram.SendMessageArgs{}, args)

			var sv *telegram.SchemaViolation
			require.True(t, errors.As(err, &sv), "got %v", err)
			assert.Equal(t, "SendMessageArgs", sv.Entity)
			assert.Equal(t, tt.field, sv.Field)
		})
	}

	args, err := telegram.NewSendMessageArgs(42, "hello", telegram.WithParseMode(telegram.ParseModeHTML))
	require.NoError(t, err)
	assert.Equal(t, telegram.ParseModeHTML, *args.ParseMode)
}

func TestEncodeRejectsMissingRequired(t *testing.T) {
	_, err := telegram.Encode(telegram.KickArgs{ChatID: 1})
	var sv *telegram.SchemaViolation
	require.True(t, errors.As(err, &sv), "got %v", err)
	assert.Equal(t, "KickArgs", sv.Entity)
	assert.Equal(t, "user_id", sv.Field)

	_, err = telegram.NewGetFileArgs("")
	require.True(t, errors.As(err, &sv), "got %v", err)
	assert.Equal(t, "file_id", sv.Field)

	_, err = telegram.Encode(nil)
	assert.Error(t, err)
}

func TestEncodeKeepsUnknownParseMode(t *testing.T) {
	body, err := telegram.Encode(telegram.SendMessageArgs{ChatID: 1, Text: "*x*", ParseMode: telegram.Ptr(telegram.ParseMode("MarkdownV2"))})
	require.NoError(t, err)
	assert.JSONEq(t, `{"chat_id":1,"text":"*x*","parse_mode":"MarkdownV2"}`, string(body))
}

func TestDecodeRequestErrors(t *testing.T) {
	d := telegram.NewDecoder()

	_, err := d.DecodeRequest("sendMessage", []byte(`{"chat_id":1}`))
	var sv *telegram.SchemaViolation
	require.True(t, errors.As(err, &sv), "got %v", err)
	assert.Equal(t, "SendMessageArgs", sv.Entity)
	assert.Equal(t, "text", sv.Field)

	_, err = d.DecodeRequest("sendMessage", []byte(`{"chat_id":"1","text":"x"}`))
	var tm *telegram.TypeMismatch
	require.True(t, errors.As(err, &tm), "got %v", err)
	assert.Equal(t, "SendMessageArgs", tm.Entity)
	assert.Equal(t, "chat_id", tm.Field)
	assert.Equal(t, `telegram: SendMessageArgs.chat_id: expected integer, got string`, tm.Error())

	_, err = d.DecodeRequest("sendMessage", []byte(`{"chat_id":1,"text":"x","parse_mode":5}`))
	require.True(t, errors.As(err, &tm), "got %v", err)
	assert.Equal(t, "SendMessageArgs", tm.Entity)
	assert.Equal(t, "parse_mode", tm.Field)

	_, err = d.DecodeRequest("sendMessage", []byte(`{"chat_id":1,"text":"x","reply_markup":{"resize_keyboard":"yes"}}`))
	require.True(t, errors.As(err, &tm), "got %v", err)
	assert.Equal(t, "SendMessageArgs", tm.Entity)
	assert.Equal(t, "reply_markup.resize_keyboard", tm.Field)
	assert.Equal(t, "boolean", tm.Expected)

	_, err = d.DecodeRequest("sendMessage", []byte(`{"chat_id":1,"text":"x","reply_markup":[1]}`))
	require.True(t, errors.As(err, &tm), "got %v", err)
	assert.Equal(t, "reply_markup", tm.Field)
	assert.Equal(t, "array", tm.Actual)

	_, err = d.DecodeRequest("sendSticker", []byte(`{}`))
	assert.True(t, errors.Is(err, telegram.ErrUnknownEntity))
}
