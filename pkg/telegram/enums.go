package telegram

// ChatType is the kind of a chat.
type ChatType string

const (
	ChatTypePrivate    ChatType = "private"
	ChatTypeGroup      ChatType = "group"
	ChatTypeSupergroup ChatType = "supergroup"
	ChatTypeChannel    ChatType = "channel"
)

var chatTypes = newEnumTable("ChatType",
	ChatTypePrivate, ChatTypeGroup, ChatTypeSupergroup, ChatTypeChannel)

func (t ChatType) Known() bool                   { return chatTypes.known(t) }
func (t ChatType) EnumKind() string              { return "ChatType" }
func (t ChatType) MarshalJSON() ([]byte, error)  { return chatTypes.marshal(t) }
func (t *ChatType) UnmarshalJSON(b []byte) error { return chatTypes.unmarshal(b, t) }

// MessageEntityType is the kind of annotation a MessageEntity applies.
type MessageEntityType string

const (
	EntityMention     MessageEntityType = "mention"
	EntityHashtag     MessageEntityType = "hashtag"
	EntityBotCommand  MessageEntityType = "bot_command"
	EntityURL         MessageEntityType = "url"
	EntityEmail       MessageEntityType = "email"
	EntityBold        MessageEntityType = "bold"
	EntityItalic      MessageEntityType = "italic"
	EntityCode        MessageEntityType = "code"
	EntityPre         MessageEntityType = "pre"
	EntityTextLink    MessageEntityType = "text_link"
	EntityTextMention MessageEntityType = "text_mention"
)

var entityKinds = newEnumTable("MessageEntityType",
	EntityMention, EntityHashtag, EntityBotCommand, EntityURL, EntityEmail,
	EntityBold, EntityItalic, EntityCode, EntityPre, EntityTextLink, EntityTextMention)

func (t MessageEntityType) Known() bool                   { return entityKinds.known(t) }
func (t MessageEntityType) EnumKind() string              { return "MessageEntityType" }
func (t MessageEntityType) MarshalJSON() ([]byte, error)  { return entityKinds.marshal(t) }
func (t *MessageEntityType) UnmarshalJSON(b []byte) error { return entityKinds.unmarshal(b, t) }

// ChatMemberStatus is a member's standing in a chat.
type ChatMemberStatus string

const (
	StatusCreator       ChatMemberStatus = "creator"
	StatusAdministrator ChatMemberStatus = "administrator"
	StatusMember        ChatMemberStatus = "member"
	StatusLeft          ChatMemberStatus = "left"
	StatusKicked        ChatMemberStatus = "kicked"
)

// LegacyAdministratorToken is the misspelled status token emitted by older
// deployments. It decodes to StatusAdministrator.
const LegacyAdministratorToken = "administartor"

var memberStatuses = newEnumTable("ChatMemberStatus",
	StatusCreator, StatusAdministrator, StatusMember, StatusLeft, StatusKicked).
	alias(LegacyAdministratorToken, StatusAdministrator)

func (s ChatMemberStatus) Known() bool                   { return memberStatuses.known(s) }
func (s ChatMemberStatus) EnumKind() string              { return "ChatMemberStatus" }
func (s ChatMemberStatus) MarshalJSON() ([]byte, error)  { return memberStatuses.marshal(s) }
func (s *ChatMemberStatus) UnmarshalJSON(b []byte) error { return memberStatuses.unmarshal(b, s) }

// ParseMode selects how the API renders message text.
type ParseMode string

const (
	ParseModeMarkdown ParseMode = "Markdown"
	ParseModeHTML     ParseMode = "HTML"
)

var parseModes = newEnumTable("ParseMode", ParseModeMarkdown, ParseModeHTML)

func (m ParseMode) Known() bool                   { return parseModes.known(m) }
func (m ParseMode) EnumKind() string              { return "ParseMode" }
func (m ParseMode) MarshalJSON() ([]byte, error)  { return parseModes.marshal(m) }
func (m *ParseMode) UnmarshalJSON(b []byte) error { return parseModes.unmarshal(b, m) }
