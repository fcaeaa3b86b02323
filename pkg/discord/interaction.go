// Package discord holds the subset of the Discord interaction wire format
// this service speaks: inbound interaction payloads, outbound response
// payloads, and webhook signature verification.
package discord

// InteractionType identifies the kind of inbound interaction.
type InteractionType int

const (
	InteractionPing InteractionType = iota + 1
	InteractionApplicationCommand
	InteractionMessageComponent
	InteractionApplicationCommandAutocomplete
	InteractionModalSubmit
)

// Interaction is an inbound webhook event: a user invoking a command,
// submitting a modal, or making a component selection.
type Interaction struct {
	Type   InteractionType  `json:"type"`
	Member *Member          `json:"member,omitempty"`
	Data   *InteractionData `json:"data,omitempty"`
}

// Member carries the guild member that invoked the interaction.
type Member struct {
	User User `json:"user"`
}

// User identifies the invoking user.
type User struct {
	Username string `json:"username"`
}

// InteractionData is the command- or component-specific payload. Which
// fields are populated depends on the interaction type: Name for
// application commands, Components for modal submits, Values for select
// menu submits.
type InteractionData struct {
	Name       string      `json:"name,omitempty"`
	CustomID   string      `json:"custom_id,omitempty"`
	Components []Component `json:"components,omitempty"`
	Values     []string    `json:"values,omitempty"`
}

// Username returns the invoking username, or "" when the member block is
// absent (e.g. a PING handshake).
func (i *Interaction) Username() string {
	if i.Member == nil {
		return ""
	}

	return i.Member.User.Username
}

// SubmittedText returns the value of the first text input in a modal
// submit payload. The second return is false when the payload does not
// carry the expected component shape.
func (i *Interaction) SubmittedText() (string, bool) {
	if i.Data == nil {
		return "", false
	}

	for _, row := range i.Data.Components {
		for _, component := range row.Components {
			if component.Type == ComponentTextInput {
				return component.Value, true
			}
		}
	}

	return "", false
}

// SelectedValues returns the selected option values of a message
// component payload. The second return is false when no values are
// present.
func (i *Interaction) SelectedValues() ([]string, bool) {
	if i.Data == nil || i.Data.Values == nil {
		return nil, false
	}

	return i.Data.Values, true
}
