package jsonfile_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/luggagemoose/factbot/pkg/facts"
	"github.com/luggagemoose/factbot/pkg/facts/jsonfile"
	"github.com/luggagemoose/factbot/pkg/logger"
)

var _ = Describe("Driver", func() {
	var (
		path   string
		driver *jsonfile.Driver
		ctx    context.Context
	)

	BeforeEach(func() {
		path = filepath.Join(GinkgoT().TempDir(), "facts.json")
		driver = jsonfile.NewDriver(path, logger.Nop())
		ctx = context.Background()
	})

	Describe("List", func() {
		It("returns an empty collection for a missing file", func() {
			all, err := driver.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(BeEmpty())
		})

		It("returns an empty collection for a corrupt file", func() {
			Expect(os.WriteFile(path, []byte("{not json"), 0o600)).To(Succeed())

			all, err := driver.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(BeEmpty())
		})

		It("reads the persisted array layout", func() {
			Expect(os.WriteFile(path, []byte(`[{"fact":"Ben likes tea","is_enabled":true}]`), 0o600)).To(Succeed())

			all, err := driver.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(Equal([]facts.Fact{{Text: "Ben likes tea", Enabled: true}}))
		})
	})

	Describe("Add", func() {
		It("stores a new fact enabled on an empty store", func() {
			Expect(driver.Add(ctx, "New fact", true)).To(Succeed())

			all, err := driver.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(Equal([]facts.Fact{{Text: "New fact", Enabled: true}}))
		})

		It("persists with the exact file layout", func() {
			Expect(driver.Add(ctx, "New fact", true)).To(Succeed())

			data, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())

			var raw []map[string]any
			Expect(json.Unmarshal(data, &raw)).To(Succeed())
			Expect(raw).To(HaveLen(1))
			Expect(raw[0]).To(HaveKeyWithValue("fact", "New fact"))
			Expect(raw[0]).To(HaveKeyWithValue("is_enabled", true))
		})

		It("deduplicates by text with last write wins", func() {
			Expect(driver.Add(ctx, "A", true)).To(Succeed())
			Expect(driver.Add(ctx, "B", true)).To(Succeed())
			Expect(driver.Add(ctx, "A", false)).To(Succeed())

			all, err := driver.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(Equal([]facts.Fact{
				{Text: "A", Enabled: false},
				{Text: "B", Enabled: true},
			}))
		})

		It("appends new facts at the tail preserving insertion order", func() {
			for _, text := range []string{"one", "two", "three"} {
				Expect(driver.Add(ctx, text, true)).To(Succeed())
			}

			all, err := driver.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(3))
			Expect(all[0].Text).To(Equal("one"))
			Expect(all[1].Text).To(Equal("two"))
			Expect(all[2].Text).To(Equal("three"))
		})

		It("surfaces write failures as a WriteError", func() {
			dirPath := GinkgoT().TempDir()
			broken := jsonfile.NewDriver(dirPath, logger.Nop())

			err := broken.Add(ctx, "A", true)
			Expect(err).To(HaveOccurred())

			var writeErr facts.WriteError
			Expect(errors.As(err, &writeErr)).To(BeTrue())
		})
	})

	Describe("SetEnabled", func() {
		BeforeEach(func() {
			Expect(driver.Add(ctx, "A", true)).To(Succeed())
			Expect(driver.Add(ctx, "B", false)).To(Succeed())
		})

		It("enables exactly the selected facts", func() {
			Expect(driver.SetEnabled(ctx, []string{"B"})).To(Succeed())

			all, err := driver.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(Equal([]facts.Fact{
				{Text: "A", Enabled: false},
				{Text: "B", Enabled: true},
			}))
		})

		It("never changes the set of stored texts", func() {
			Expect(driver.SetEnabled(ctx, []string{"B", "not stored"})).To(Succeed())

			all, err := driver.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(2))
			Expect(all[0].Text).To(Equal("A"))
			Expect(all[1].Text).To(Equal("B"))
		})

		It("disables everything for an empty selection", func() {
			Expect(driver.SetEnabled(ctx, nil)).To(Succeed())

			all, err := driver.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			for _, f := range all {
				Expect(f.Enabled).To(BeFalse())
			}
		})
	})

	Describe("round trip", func() {
		It("reads back exactly what a mutation wrote", func() {
			Expect(driver.Add(ctx, "A", true)).To(Succeed())
			Expect(driver.Add(ctx, "B", false)).To(Succeed())

			reopened := jsonfile.NewDriver(path, logger.Nop())
			all, err := reopened.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(Equal([]facts.Fact{
				{Text: "A", Enabled: true},
				{Text: "B", Enabled: false},
			}))
		})
	})
})
