package factbotcmder_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	factbotcmder "github.com/luggagemoose/factbot/cmd/factbot"
)

var _ = Describe("NewFactbotCmd", func() {
	It("creates a command with the correct use string", func() {
		cmd := factbotcmder.NewFactbotCmd()
		Expect(cmd.Use).To(Equal("factbot"))
	})

	It("has serve, facts, config, and version subcommands", func() {
		cmd := factbotcmder.NewFactbotCmd()
		cmds := cmd.Commands()
		subcommands := make([]string, 0, len(cmds))
		for _, sub := range cmds {
			subcommands = append(subcommands, sub.Name())
		}
		Expect(subcommands).To(ContainElements("serve", "facts", "config", "version"))
	})

	It("registers the global debug and config-dir flags", func() {
		cmd := factbotcmder.NewFactbotCmd()
		Expect(cmd.PersistentFlags().Lookup("debug")).NotTo(BeNil())
		Expect(cmd.PersistentFlags().Lookup("config-dir")).NotTo(BeNil())
	})
})
