// Package router dispatches inbound Discord interactions to the facts
// store and builds the response payloads. It is the only control flow in
// the service: one decision per request, no state held between requests.
package router

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/luggagemoose/factbot/pkg/access"
	"github.com/luggagemoose/factbot/pkg/discord"
	"github.com/luggagemoose/factbot/pkg/facts"
)

// ErrUnknownType is returned for unrecognized interaction types, unknown
// command names, and submit payloads that do not carry the expected shape.
var ErrUnknownType = errors.New("unknown interaction type")

// Command names registered with the Discord application.
const (
	CommandAdd    = "add"
	CommandSelect = "select"
)

// Component custom IDs. The router emits these in prompts and matches on
// the follow-up interactions they produce.
const (
	AddModalID     = "add_fact_modal"
	FactInputID    = "fact_text"
	SelectFactsID  = "select_facts"
	addModalTitle  = "Add a fact"
	factInputLabel = "Fact"
)

// Router dispatches interactions. The store and guard are injected so
// tests can swap backends.
type Router struct {
	store  facts.Store
	guard  *access.Guard
	logger *slog.Logger
}

// New creates a router over the given store and guard.
func New(store facts.Store, guard *access.Guard, logger *slog.Logger) *Router {
	return &Router{
		store:  store,
		guard:  guard,
		logger: logger,
	}
}

// Dispatch routes one interaction to its handler and returns the response
// payload. It returns access.ErrDenied when the invoking user is not
// allowed, ErrUnknownType for unroutable payloads, and a facts.WriteError
// when persistence fails. PING never reaches the guard.
func (r *Router) Dispatch(ctx context.Context, in *discord.Interaction) (*discord.Response, error) {
	if in.Type == discord.InteractionPing {
		return discord.Pong(), nil
	}

	switch in.Type {
	case discord.InteractionApplicationCommand, discord.InteractionModalSubmit, discord.InteractionMessageComponent:
		if err := r.guard.Check(in.Username()); err != nil {
			r.logger.Warn("interaction denied", "username", in.Username())
			return nil, err
		}
	default:
		return nil, ErrUnknownType
	}

	switch in.Type {
	case discord.InteractionApplicationCommand:
		return r.handleCommand(ctx, in)
	case discord.InteractionModalSubmit:
		return r.handleModalSubmit(ctx, in)
	case discord.InteractionMessageComponent:
		return r.handleComponentSubmit(ctx, in)
	}

	return nil, ErrUnknownType
}

// handleCommand routes a slash command by name.
func (r *Router) handleCommand(ctx context.Context, in *discord.Interaction) (*discord.Response, error) {
	if in.Data == nil {
		return nil, ErrUnknownType
	}

	switch in.Data.Name {
	case CommandAdd:
		return addFactModal(), nil
	case CommandSelect:
		return r.selectFactsMenu(ctx)
	}

	r.logger.Warn("unknown command", "command", in.Data.Name)
	return nil, ErrUnknownType
}

// handleModalSubmit persists the submitted fact text.
func (r *Router) handleModalSubmit(ctx context.Context, in *discord.Interaction) (*discord.Response, error) {
	text, ok := in.SubmittedText()
	if !ok || text == "" {
		return nil, ErrUnknownType
	}

	if err := r.store.Add(ctx, text, true); err != nil {
		return nil, fmt.Errorf("adding fact: %w", err)
	}

	r.logger.Info("fact added", "username", in.Username())
	return discord.EphemeralMessage("Fact added."), nil
}

// handleComponentSubmit applies the selected set of active facts.
func (r *Router) handleComponentSubmit(ctx context.Context, in *discord.Interaction) (*discord.Response, error) {
	selected, ok := in.SelectedValues()
	if !ok {
		return nil, ErrUnknownType
	}

	if err := r.store.SetEnabled(ctx, selected); err != nil {
		return nil, fmt.Errorf("selecting facts: %w", err)
	}

	r.logger.Info("active facts updated", "username", in.Username(), "selected", len(selected))
	return discord.EphemeralMessage("Active facts updated."), nil
}

// addFactModal builds the form prompting for fact text.
func addFactModal() *discord.Response {
	return &discord.Response{
		Type: discord.ResponseModal,
		Data: &discord.ResponseData{
			CustomID: AddModalID,
			Title:    addModalTitle,
			Components: []discord.Component{
				{
					Type: discord.ComponentActionRow,
					Components: []discord.Component{
						{
							Type:      discord.ComponentTextInput,
							CustomID:  FactInputID,
							Label:     factInputLabel,
							Style:     discord.TextInputShort,
							MinLength: 1,
							MaxLength: 1000,
							Required:  true,
						},
					},
				},
			},
		},
	}
}

// selectFactsMenu builds a select menu listing every stored fact,
// pre-selected according to its current enabled flag.
func (r *Router) selectFactsMenu(ctx context.Context) (*discord.Response, error) {
	all, err := r.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing facts: %w", err)
	}

	// Discord rejects select menus with zero options.
	if len(all) == 0 {
		return discord.EphemeralMessage("No facts stored yet. Use /add first."), nil
	}

	options := make([]discord.SelectOption, len(all))
	for i, f := range all {
		options[i] = discord.SelectOption{
			Label:   f.Text,
			Value:   f.Text,
			Default: f.Enabled,
		}
	}

	minValues := 1
	return &discord.Response{
		Type: discord.ResponseChannelMessage,
		Data: &discord.ResponseData{
			Content: "Select the active facts:",
			Flags:   discord.FlagEphemeral,
			Components: []discord.Component{
				{
					Type: discord.ComponentActionRow,
					Components: []discord.Component{
						{
							Type:      discord.ComponentStringSelect,
							CustomID:  SelectFactsID,
							Options:   options,
							MinValues: &minValues,
							MaxValues: len(all),
						},
					},
				},
			},
		},
	}, nil
}
