package discord

// ResponseType identifies the kind of interaction response.
type ResponseType int

const (
	// ResponsePong acknowledges a PING handshake.
	ResponsePong ResponseType = 1

	// ResponseChannelMessage replies with a message in the channel.
	ResponseChannelMessage ResponseType = 4

	// ResponseModal opens a modal form.
	ResponseModal ResponseType = 9
)

// Component type identifiers.
const (
	ComponentActionRow    = 1
	ComponentStringSelect = 3
	ComponentTextInput    = 4
)

// TextInputShort is the single-line text input style.
const TextInputShort = 1

// FlagEphemeral marks a message as visible only to the invoking user.
const FlagEphemeral = 1 << 6

// Response is an outbound interaction response payload.
type Response struct {
	Type ResponseType  `json:"type"`
	Data *ResponseData `json:"data,omitempty"`
}

// ResponseData is the body of a message or modal response.
type ResponseData struct {
	Content    string      `json:"content,omitempty"`
	Flags      int         `json:"flags,omitempty"`
	CustomID   string      `json:"custom_id,omitempty"`
	Title      string      `json:"title,omitempty"`
	Components []Component `json:"components,omitempty"`
}

// Component is a message or modal component. Discord uses one polymorphic
// object for action rows, selects, and text inputs; which fields apply
// depends on Type.
type Component struct {
	Type       int            `json:"type"`
	CustomID   string         `json:"custom_id,omitempty"`
	Label      string         `json:"label,omitempty"`
	Style      int            `json:"style,omitempty"`
	MinLength  int            `json:"min_length,omitempty"`
	MaxLength  int            `json:"max_length,omitempty"`
	Required   bool           `json:"required,omitempty"`
	Value      string         `json:"value,omitempty"`
	Options    []SelectOption `json:"options,omitempty"`
	MinValues  *int           `json:"min_values,omitempty"`
	MaxValues  int            `json:"max_values,omitempty"`
	Components []Component    `json:"components,omitempty"`
}

// SelectOption is one entry in a string select menu.
type SelectOption struct {
	Label   string `json:"label"`
	Value   string `json:"value"`
	Default bool   `json:"default,omitempty"`
}

// Pong returns the PING handshake acknowledgment.
func Pong() *Response {
	return &Response{Type: ResponsePong}
}

// EphemeralMessage returns a channel message visible only to the invoking
// user.
func EphemeralMessage(content string) *Response {
	return &Response{
		Type: ResponseChannelMessage,
		Data: &ResponseData{
			Content: content,
			Flags:   FlagEphemeral,
		},
	}
}
