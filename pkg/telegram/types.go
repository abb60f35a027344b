package telegram

// Optional scalars are pointers: nil means the key was absent on the wire,
// which is distinct from a present zero value. Identifier fields carry a
// required tag and are the only inbound fields whose absence fails a decode.

// User represents a Telegram user or bot.
// Compare users with SameUser, not ==.
type User struct {
	ID        int64   `json:"id" validate:"required"`
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name,omitempty"`
	Username  *string `json:"username,omitempty"`
}

// Chat represents a Telegram chat.
type Chat struct {
	ID        int64    `json:"id" validate:"required"`
	Type      ChatType `json:"type" validate:"omitempty,wireenum"`
	Title     *string  `json:"title,omitempty"`
	Username  *string  `json:"username,omitempty"`
	FirstName *string  `json:"first_name,omitempty"`
	LastName  *string  `json:"last_name,omitempty"`
}

// Message represents a Telegram message. Usually exactly one payload field
// is populated, but nothing enforces it.
type Message struct {
	MessageID             int64           `json:"message_id" validate:"required"`
	From                  *User           `json:"from,omitempty"`
	Date                  int64           `json:"date"`
	Chat                  *Chat           `json:"chat,omitempty"`
	ForwardFrom           *User           `json:"forward_from,omitempty"`
	ForwardFromChat       *Chat           `json:"forward_from_chat,omitempty"`
	ForwardDate           *int64          `json:"forward_date,omitempty"`
	ReplyToMessage        *Message        `json:"reply_to_message,omitempty"`
	EditDate              *int64          `json:"edit_date,omitempty"`
	Text                  *string         `json:"text,omitempty"`
	Entities              []MessageEntity `json:"entities,omitempty" validate:"omitempty,dive"`
	Audio                 *Audio          `json:"audio,omitempty"`
	Document              *Document       `json:"document,omitempty"`
	Photo                 []PhotoSize     `json:"photo,omitempty" validate:"omitempty,dive"`
	Sticker               *Sticker        `json:"sticker,omitempty"`
	Video                 *Video          `json:"video,omitempty"`
	Voice                 *Voice          `json:"voice,omitempty"`
	Caption               *string         `json:"caption,omitempty"`
	Contact               *Contact        `json:"contact,omitempty"`
	Location              *Location       `json:"location,omitempty"`
	Venue                 *Venue          `json:"venue,omitempty"`
	NewChatMember         *User           `json:"new_chat_member,omitempty"`
	LeftChatMember        *User           `json:"left_chat_member,omitempty"`
	NewChatTitle          *string         `json:"new_chat_title,omitempty"`
	NewChatPhoto          []PhotoSize     `json:"new_chat_photo,omitempty" validate:"omitempty,dive"`
	DeleteChatPhoto       *bool           `json:"delete_chat_photo,omitempty"`
	GroupChatCreated      *bool           `json:"group_chat_created,omitempty"`
	SupergroupChatCreated *bool           `json:"supergroup_chat_created,omitempty"`
	ChannelChatCreated    *bool           `json:"channel_chat_created,omitempty"`
	MigrateToChatID       *int64          `json:"migrate_to_chat_id,omitempty"`
	MigrateFromChatID     *int64          `json:"migrate_from_chat_id,omitempty"`
	PinnedMessage         *Message        `json:"pinned_message,omitempty"`
}

// MessageEntity annotates a span of message text.
// Offset and Length count UTF-16 code units.
type MessageEntity struct {
	Type   MessageEntityType `json:"type" validate:"omitempty,wireenum"`
	Offset int               `json:"offset"`
	Length int               `json:"length"`
	URL    *string           `json:"url,omitempty"`
	User   *User             `json:"user,omitempty"`
}

// PhotoSize is one size variant of a photo or thumbnail.
type PhotoSize struct {
	FileID   string `json:"file_id" validate:"required"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	FileSize *int   `json:"file_size,omitempty"`
}

type Audio struct {
	FileID    string  `json:"file_id" validate:"required"`
	Duration  int     `json:"duration"`
	Performer *string `json:"performer,omitempty"`
	Title     *string `json:"title,omitempty"`
	MimeType  *string `json:"mime_type,omitempty"`
	FileSize  *int    `json:"file_size,omitempty"`
}

type Document struct {
	FileID   string     `json:"file_id" validate:"required"`
	Thumb    *PhotoSize `json:"thumb,omitempty"`
	FileName *string    `json:"file_name,omitempty"`
	MimeType *string    `json:"mime_type,omitempty"`
	FileSize *int       `json:"file_size,omitempty"`
}

type Sticker struct {
	FileID   string     `json:"file_id" validate:"required"`
	Width    int        `json:"width"`
	Height   int        `json:"height"`
	Thumb    *PhotoSize `json:"thumb,omitempty"`
	Emoji    *string    `json:"emoji,omitempty"`
	FileSize *int       `json:"file_size,omitempty"`
}

type Video struct {
	FileID   string     `json:"file_id" validate:"required"`
	Width    int        `json:"width"`
	Height   int        `json:"height"`
	Duration int        `json:"duration"`
	Thumb    *PhotoSize `json:"thumb,omitempty"`
	MimeType *string    `json:"mime_type,omitempty"`
	FileSize *int       `json:"file_size,omitempty"`
}

// Voice represents a Telegram voice message.
type Voice struct {
	FileID   string  `json:"file_id" validate:"required"`
	Duration int     `json:"duration"`
	MimeType *string `json:"mime_type,omitempty"`
	FileSize *int    `json:"file_size,omitempty"`
}

type Contact struct {
	PhoneNumber string  `json:"phone_number"`
	FirstName   string  `json:"first_name"`
	LastName    *string `json:"last_name,omitempty"`
	UserID      *int64  `json:"user_id,omitempty"`
}

type Location struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

type Venue struct {
	Location     Location `json:"location"`
	Title        string   `json:"title"`
	Address      string   `json:"address"`
	FoursquareID *string  `json:"foursquare_id,omitempty"`
}

// UserProfilePhotos lists a user's photos; each row holds the size
// variants of one photo.
type UserProfilePhotos struct {
	TotalCount int           `json:"total_count"`
	Photos     [][]PhotoSize `json:"photos" validate:"omitempty,dive,dive"`
}

// File is the result of getFile.
type File struct {
	FileID   string  `json:"file_id" validate:"required"`
	FileSize *int    `json:"file_size,omitempty"`
	FilePath *string `json:"file_path,omitempty"`
}

type ChatMember struct {
	User   User             `json:"user"`
	Status ChatMemberStatus `json:"status" validate:"omitempty,wireenum"`
}

// CallbackQuery is sent when a user presses an inline keyboard button.
type CallbackQuery struct {
	ID              string   `json:"id" validate:"required"`
	From            User     `json:"from"`
	Message         *Message `json:"message,omitempty"`
	InlineMessageID *string  `json:"inline_message_id,omitempty"`
	Data            *string  `json:"data,omitempty"`
}

type InlineQuery struct {
	ID       string    `json:"id" validate:"required"`
	From     User      `json:"from"`
	Location *Location `json:"location,omitempty"`
	Query    string    `json:"query"`
	Offset   string    `json:"offset"`
}

type ChosenInlineResult struct {
	ResultID        string    `json:"result_id" validate:"required"`
	From            User      `json:"from"`
	Location        *Location `json:"location,omitempty"`
	InlineMessageID *string   `json:"inline_message_id,omitempty"`
	Query           string    `json:"query"`
}

// Update represents a Telegram incoming update. At most one variant is
// expected to be set.
type Update struct {
	UpdateID           int64               `json:"update_id" validate:"required"`
	Message            *Message            `json:"message,omitempty"`
	EditedMessage      *Message            `json:"edited_message,omitempty"`
	InlineQuery        *InlineQuery        `json:"inline_query,omitempty"`
	ChosenInlineResult *ChosenInlineResult `json:"chosen_inline_result,omitempty"`
	CallbackQuery      *CallbackQuery      `json:"callback_query,omitempty"`
}

// Kind names the populated variant, or "" when none is.
func (u *Update) Kind() string {
	switch {
	case u.Message != nil:
		return "message"
	case u.EditedMessage != nil:
		return "edited_message"
	case u.InlineQuery != nil:
		return "inline_query"
	case u.ChosenInlineResult != nil:
		return "chosen_inline_result"
	case u.CallbackQuery != nil:
		return "callback_query"
	}
	return ""
}

// ContentKind names the first populated payload of the message, checked in
// wire declaration order. Service notifications report "service".
func (m *Message) ContentKind() string {
	switch {
	case m.Text != nil:
		return "text"
	case m.Audio != nil:
		return "audio"
	case m.Document != nil:
		return "document"
	case m.Photo != nil:
		return "photo"
	case m.Sticker != nil:
		return "sticker"
	case m.Video != nil:
		return "video"
	case m.Voice != nil:
		return "voice"
	case m.Contact != nil:
		return "contact"
	case m.Venue != nil:
		return "venue"
	case m.Location != nil:
		return "location"
	case m.isService():
		return "service"
	}
	return ""
}

func (m *Message) isService() bool {
	return m.NewChatMember != nil || m.LeftChatMember != nil || m.NewChatTitle != nil ||
		m.NewChatPhoto != nil || m.DeleteChatPhoto != nil || m.GroupChatCreated != nil ||
		m.SupergroupChatCreated != nil || m.ChannelChatCreated != nil ||
		m.MigrateToChatID != nil || m.MigrateFromChatID != nil || m.PinnedMessage != nil
}
