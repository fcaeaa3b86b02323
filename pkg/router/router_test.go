package router_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/luggagemoose/factbot/pkg/access"
	"github.com/luggagemoose/factbot/pkg/discord"
	"github.com/luggagemoose/factbot/pkg/facts"
	"github.com/luggagemoose/factbot/pkg/facts/inmemory"
	"github.com/luggagemoose/factbot/pkg/logger"
	"github.com/luggagemoose/factbot/pkg/router"
)

// command builds an APPLICATION_COMMAND interaction from the allowed user.
func command(name string) *discord.Interaction {
	return &discord.Interaction{
		Type:   discord.InteractionApplicationCommand,
		Member: &discord.Member{User: discord.User{Username: "LuggageMoose"}},
		Data:   &discord.InteractionData{Name: name},
	}
}

var _ = Describe("Router", func() {
	var (
		store *inmemory.Driver
		rtr   *router.Router
		ctx   context.Context
	)

	BeforeEach(func() {
		store = inmemory.NewDriver()
		guard := access.NewGuard([]string{"LuggageMoose", "encryptoknight"})
		rtr = router.New(store, guard, logger.Nop())
		ctx = context.Background()
	})

	Describe("PING", func() {
		It("acknowledges without consulting the guard", func() {
			resp, err := rtr.Dispatch(ctx, &discord.Interaction{Type: discord.InteractionPing})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Type).To(Equal(discord.ResponsePong))
		})
	})

	Describe("access control", func() {
		It("denies commands from users off the allow-list", func() {
			in := command(router.CommandAdd)
			in.Member.User.Username = "somebody"

			_, err := rtr.Dispatch(ctx, in)
			Expect(err).To(MatchError(access.ErrDenied))
		})

		It("denies commands without a member block", func() {
			in := command(router.CommandAdd)
			in.Member = nil

			_, err := rtr.Dispatch(ctx, in)
			Expect(err).To(MatchError(access.ErrDenied))
		})

		It("denies before any store access", func() {
			in := &discord.Interaction{
				Type:   discord.InteractionModalSubmit,
				Member: &discord.Member{User: discord.User{Username: "somebody"}},
				Data: &discord.InteractionData{
					Components: []discord.Component{
						{Type: discord.ComponentActionRow, Components: []discord.Component{
							{Type: discord.ComponentTextInput, Value: "sneaky"},
						}},
					},
				},
			}

			_, err := rtr.Dispatch(ctx, in)
			Expect(err).To(MatchError(access.ErrDenied))
			Expect(store.Count()).To(Equal(0))
		})
	})

	Describe("the add command", func() {
		It("answers with a modal asking for fact text", func() {
			resp, err := rtr.Dispatch(ctx, command(router.CommandAdd))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Type).To(Equal(discord.ResponseModal))
			Expect(resp.Data.CustomID).To(Equal(router.AddModalID))

			input := resp.Data.Components[0].Components[0]
			Expect(input.Type).To(Equal(discord.ComponentTextInput))
			Expect(input.CustomID).To(Equal(router.FactInputID))
			Expect(input.MinLength).To(Equal(1))
			Expect(input.MaxLength).To(Equal(1000))
			Expect(input.Required).To(BeTrue())
		})

		It("does not touch the store", func() {
			Expect(store.Add(ctx, "existing", true)).To(Succeed())

			_, err := rtr.Dispatch(ctx, command(router.CommandAdd))
			Expect(err).NotTo(HaveOccurred())
			Expect(store.Count()).To(Equal(1))
		})
	})

	Describe("the select command", func() {
		It("lists every stored fact as an option with its current state", func() {
			Expect(store.Add(ctx, "Ben likes tea", true)).To(Succeed())

			resp, err := rtr.Dispatch(ctx, command(router.CommandSelect))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Type).To(Equal(discord.ResponseChannelMessage))
			Expect(resp.Data.Flags).To(Equal(discord.FlagEphemeral))

			menu := resp.Data.Components[0].Components[0]
			Expect(menu.Type).To(Equal(discord.ComponentStringSelect))
			Expect(menu.CustomID).To(Equal(router.SelectFactsID))
			Expect(*menu.MinValues).To(Equal(1))
			Expect(menu.MaxValues).To(Equal(1))
			Expect(menu.Options).To(Equal([]discord.SelectOption{
				{Label: "Ben likes tea", Value: "Ben likes tea", Default: true},
			}))
		})

		It("pre-selects only the enabled facts", func() {
			Expect(store.Add(ctx, "A", true)).To(Succeed())
			Expect(store.Add(ctx, "B", false)).To(Succeed())

			resp, err := rtr.Dispatch(ctx, command(router.CommandSelect))
			Expect(err).NotTo(HaveOccurred())

			menu := resp.Data.Components[0].Components[0]
			Expect(menu.MaxValues).To(Equal(2))
			Expect(menu.Options[0].Default).To(BeTrue())
			Expect(menu.Options[1].Default).To(BeFalse())
		})

		It("answers with a plain message when no facts are stored", func() {
			resp, err := rtr.Dispatch(ctx, command(router.CommandSelect))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Type).To(Equal(discord.ResponseChannelMessage))
			Expect(resp.Data.Components).To(BeEmpty())
		})
	})

	Describe("unknown commands and types", func() {
		It("rejects an unknown command name", func() {
			_, err := rtr.Dispatch(ctx, command("frobnicate"))
			Expect(err).To(MatchError(router.ErrUnknownType))
		})

		It("rejects a command without data", func() {
			in := command(router.CommandAdd)
			in.Data = nil

			_, err := rtr.Dispatch(ctx, in)
			Expect(err).To(MatchError(router.ErrUnknownType))
		})

		It("rejects an unrecognized interaction type", func() {
			_, err := rtr.Dispatch(ctx, &discord.Interaction{Type: 42})
			Expect(err).To(MatchError(router.ErrUnknownType))
		})

		It("rejects autocomplete interactions", func() {
			in := command(router.CommandAdd)
			in.Type = discord.InteractionApplicationCommandAutocomplete

			_, err := rtr.Dispatch(ctx, in)
			Expect(err).To(MatchError(router.ErrUnknownType))
		})
	})

	Describe("modal submit", func() {
		submit := func(text string) *discord.Interaction {
			return &discord.Interaction{
				Type:   discord.InteractionModalSubmit,
				Member: &discord.Member{User: discord.User{Username: "encryptoknight"}},
				Data: &discord.InteractionData{
					CustomID: router.AddModalID,
					Components: []discord.Component{
						{Type: discord.ComponentActionRow, Components: []discord.Component{
							{Type: discord.ComponentTextInput, CustomID: router.FactInputID, Value: text},
						}},
					},
				},
			}
		}

		It("stores the submitted text enabled and confirms", func() {
			resp, err := rtr.Dispatch(ctx, submit("New fact"))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Type).To(Equal(discord.ResponseChannelMessage))
			Expect(resp.Data.Flags).To(Equal(discord.FlagEphemeral))

			all, err := store.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(Equal([]facts.Fact{{Text: "New fact", Enabled: true}}))
		})

		It("rejects a submit without a text value", func() {
			_, err := rtr.Dispatch(ctx, submit(""))
			Expect(err).To(MatchError(router.ErrUnknownType))
		})
	})

	Describe("component submit", func() {
		It("applies the selection and confirms", func() {
			Expect(store.Add(ctx, "A", true)).To(Succeed())
			Expect(store.Add(ctx, "B", false)).To(Succeed())

			in := &discord.Interaction{
				Type:   discord.InteractionMessageComponent,
				Member: &discord.Member{User: discord.User{Username: "LuggageMoose"}},
				Data:   &discord.InteractionData{CustomID: router.SelectFactsID, Values: []string{"B"}},
			}

			resp, err := rtr.Dispatch(ctx, in)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Data.Flags).To(Equal(discord.FlagEphemeral))

			all, err := store.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(Equal([]facts.Fact{
				{Text: "A", Enabled: false},
				{Text: "B", Enabled: true},
			}))
		})

		It("rejects a component submit without values", func() {
			in := &discord.Interaction{
				Type:   discord.InteractionMessageComponent,
				Member: &discord.Member{User: discord.User{Username: "LuggageMoose"}},
				Data:   &discord.InteractionData{CustomID: router.SelectFactsID},
			}

			_, err := rtr.Dispatch(ctx, in)
			Expect(err).To(MatchError(router.ErrUnknownType))
		})
	})
})
