package jsonschema

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"botschema/pkg/telegram"
)

func TestLoadBundledSchemas(t *testing.T) {
	r, err := Load()
	require.NoError(t, err)
	assert.Equal(t, telegram.Methods(), r.IDs())

	_, err = r.Get("sendSticker")
	assert.True(t, errors.Is(err, ErrSchemaNotFound))
}

func TestLoadFSKeysByID(t *testing.T) {
	fsys := fstest.MapFS{
		"schemas/a.json":        {Data: []byte(`{"$id":"http://botschema.local/custom","type":"object"}`)},
		"schemas/nested/b.json": {Data: []byte(`{"type":"string"}`)},
		"schemas/readme.txt":    {Data: []byte(`ignored`)},
	}
	r, err := LoadFS(fsys, "schemas")
	require.NoError(t, err)
	assert.Equal(t, []string{"http://botschema.local/custom", "nested/b"}, r.IDs())

	_, err = LoadFS(fstest.MapFS{"s/bad.json": {Data: []byte(`{`)}}, "s")
	assert.Error(t, err)
}

func TestEncodedBundlesConform(t *testing.T) {
	r, err := Load()
	require.NoError(t, err)

	requests := []telegram.Request{
		telegram.GetUpdatesArgs{Offset: telegram.Ptr(int64(-1)), Limit: telegram.Ptr(100), Timeout: telegram.Ptr(0)},
		telegram.GetFileArgs{FileID: "f"},
		telegram.KickArgs{ChatID: -100, UserID: 5},
		telegram.SendMessageArgs{ChatID: 1, Text: "t", ParseMode: telegram.Ptr(telegram.ParseModeMarkdown), ReplyMarkup: telegram.SingleRowKeyboard("a")},
		telegram.SendMessageArgs{ChatID: 1, Text: "t", ReplyMarkup: &telegram.ForceReply{ForceReply: true}},
		telegram.SendMessageArgs{ChatID: 1, Text: "t", ReplyMarkup: &telegram.InlineKeyboardMarkup{
			InlineKeyboard: [][]telegram.InlineKeyboardButton{{{Text: "go", URL: telegram.Ptr("https://example.com")}}},
		}},
	}
	for _, req := range requests {
		body, err := telegram.Encode(req)
		require.NoError(t, err)
		assert.NoError(t, r.ValidateDocument(req.Method(), body), string(body))
	}
}

func TestValidateDocumentMapsIssues(t *testing.T) {
	r, err := Load()
	require.NoError(t, err)

	err = r.ValidateDocument(telegram.MethodSendMessage, []byte(`{"chat_id":1}`))
	var verr *Error
	require.True(t, errors.As(err, &verr), "got %v", err)
	require.Len(t, verr.Issues, 1)
	assert.Equal(t, "text", verr.Issues[0].Field)
	assert.Equal(t, "required", verr.Issues[0].Type)

	var sv *telegram.SchemaViolation
	require.True(t, errors.As(err, &sv))
	assert.Equal(t, "sendMessage", sv.Entity)
	assert.Equal(t, "text", sv.Field)
	assert.True(t, errors.Is(err, telegram.ErrSchema))

	err = r.ValidateDocument(telegram.MethodSendMessage, []byte(`{"chat_id":1,"text":"x","reply_markup":{"resize_keyboard":"yes"}}`))
	var tm *telegram.TypeMismatch
	require.True(t, errors.As(err, &tm), "got %v", err)
	assert.Equal(t, "reply_markup.resize_keyboard", tm.Field)
	assert.Equal(t, "boolean", tm.Expected)
	assert.Equal(t, "string", tm.Actual)

	err = r.ValidateDocument(telegram.MethodGetUpdates, []byte(`{"limit":500}`))
	require.True(t, errors.As(err, &verr), "got %v", err)
	assert.Equal(t, "limit", verr.Issues[0].Field)
	assert.False(t, errors.As(err, &sv))
	assert.False(t, errors.As(err, &tm))

	err = r.ValidateDocument(telegram.MethodGetFile, []byte(`not json`))
	assert.True(t, errors.Is(err, telegram.ErrMalformedDocument))
}
