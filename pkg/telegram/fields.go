package telegram

import (
	"reflect"
	"sort"
	"strings"
)

// wireNames is the reviewable name mapping: for every entity, the wire keys
// of its fields in declaration order. TestWireNamesMatchStructTags keeps it
// in lockstep with the struct tags.
var wireNames = map[string][]string{
	"User": {"id", "first_name", "last_name", "username"},
	"Chat": {"id", "type", "title", "username", "first_name", "last_name"},
	"Message": {
		"message_id", "from", "date", "chat", "forward_from", "forward_from_chat", "forward_date",
		"reply_to_message", "edit_date", "text", "entities", "audio", "document", "photo", "sticker",
		"video", "voice", "caption", "contact", "location", "venue", "new_chat_member",
		"left_chat_member", "new_chat_title", "new_chat_photo", "delete_chat_photo",
		"group_chat_created", "supergroup_chat_created", "channel_chat_created",
		"migrate_to_chat_id", "migrate_from_chat_id", "pinned_message",
	},
	"MessageEntity":     {"type", "offset", "length", "url", "user"},
	"PhotoSize":         {"file_id", "width", "height", "file_size"},
	"Audio":             {"file_id", "duration", "performer", "title", "mime_type", "file_size"},
	"Document":          {"file_id", "thumb", "file_name", "mime_type", "file_size"},
	"Sticker":           {"file_id", "width", "height", "thumb", "emoji", "file_size"},
	"Video":             {"file_id", "width", "height", "duration", "thumb", "mime_type", "file_size"},
	"Voice":             {"file_id", "duration", "mime_type", "file_size"},
	"Contact":           {"phone_number", "first_name", "last_name", "user_id"},
	"Location":          {"longitude", "latitude"},
	"Venue":             {"location", "title", "address", "foursquare_id"},
	"UserProfilePhotos": {"total_count", "photos"},
	"File":              {"file_id", "file_size", "file_path"},
	"ChatMember":        {"user", "status"},
	"CallbackQuery":     {"id", "from", "message", "inline_message_id", "data"},
	"InlineQuery":       {"id", "from", "location", "query", "offset"},
	"ChosenInlineResult": {
		"result_id", "from", "location", "inline_message_id", "query",
	},
	"Update": {
		"update_id", "message", "edited_message", "inline_query", "chosen_inline_result", "callback_query",
	},
	"ReplyKeyboardMarkup":  {"keyboard", "resize_keyboard", "one_time_keyboard", "selective"},
	"ReplyKeyboardHide":    {"hide_keyboard", "selective"},
	"ForceReply":           {"force_reply", "selective"},
	"InlineKeyboardMarkup": {"inline_keyboard"},
	"InlineKeyboardButton": {"text", "url", "callback_data", "switch_inline_query"},
	"GetUpdatesArgs":       {"offset", "limit", "timeout"},
	"GetFileArgs":          {"file_id"},
	"SendMessageArgs":      {"chat_id", "text", "parse_mode", "reply_markup"},
	"KickArgs":             {"chat_id", "user_id"},
	"Response":             {"ok", "result", "description", "error_code"},
}

var entities = map[string]reflect.Type{
	"User":                 reflect.TypeOf(User{}),
	"Chat":                 reflect.TypeOf(Chat{}),
	"Message":              reflect.TypeOf(Message{}),
	"MessageEntity":        reflect.TypeOf(MessageEntity{}),
	"PhotoSize":            reflect.TypeOf(PhotoSize{}),
	"Audio":                reflect.TypeOf(Audio{}),
	"Document":             reflect.TypeOf(Document{}),
	"Sticker":              reflect.TypeOf(Sticker{}),
	"Video":                reflect.TypeOf(Video{}),
	"Voice":                reflect.TypeOf(Voice{}),
	"Contact":              reflect.TypeOf(Contact{}),
	"Location":             reflect.TypeOf(Location{}),
	"Venue":                reflect.TypeOf(Venue{}),
	"UserProfilePhotos":    reflect.TypeOf(UserProfilePhotos{}),
	"File":                 reflect.TypeOf(File{}),
	"ChatMember":           reflect.TypeOf(ChatMember{}),
	"CallbackQuery":        reflect.TypeOf(CallbackQuery{}),
	"InlineQuery":          reflect.TypeOf(InlineQuery{}),
	"ChosenInlineResult":   reflect.TypeOf(ChosenInlineResult{}),
	"Update":               reflect.TypeOf(Update{}),
	"ReplyKeyboardMarkup":  reflect.TypeOf(ReplyKeyboardMarkup{}),
	"ReplyKeyboardHide":    reflect.TypeOf(ReplyKeyboardHide{}),
	"ForceReply":           reflect.TypeOf(ForceReply{}),
	"InlineKeyboardMarkup": reflect.TypeOf(InlineKeyboardMarkup{}),
	"InlineKeyboardButton": reflect.TypeOf(InlineKeyboardButton{}),
	"GetUpdatesArgs":       reflect.TypeOf(GetUpdatesArgs{}),
	"GetFileArgs":          reflect.TypeOf(GetFileArgs{}),
	"SendMessageArgs":      reflect.TypeOf(SendMessageArgs{}),
	"KickArgs":             reflect.TypeOf(KickArgs{}),
	"Response":             reflect.TypeOf(Response{}),
}

var requestTypes = map[string]reflect.Type{
	MethodGetUpdates:     reflect.TypeOf(GetUpdatesArgs{}),
	MethodGetFile:        reflect.TypeOf(GetFileArgs{}),
	MethodSendMessage:    reflect.TypeOf(SendMessageArgs{}),
	MethodKickChatMember: reflect.TypeOf(KickArgs{}),
}

// Entities lists every mapped entity name, sorted.
func Entities() []string {
	out := make([]string, 0, len(entities))
	for name := range entities {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Methods lists the API methods with an argument bundle, sorted.
func Methods() []string {
	out := make([]string, 0, len(requestTypes))
	for m := range requestTypes {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// WireNames returns the wire keys of an entity in declaration order.
// The name match is case-insensitive.
func WireNames(entity string) ([]string, bool) {
	t, ok := lookupEntity(entity)
	if !ok {
		return nil, false
	}
	names := wireNames[t.Name()]
	out := make([]string, len(names))
	copy(out, names)
	return out, true
}

func lookupEntity(name string) (reflect.Type, bool) {
	if t, ok := entities[name]; ok {
		return t, true
	}
	for k, t := range entities {
		if strings.EqualFold(k, name) {
			return t, true
		}
	}
	return nil, false
}
