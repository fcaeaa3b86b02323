package access_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/luggagemoose/factbot/pkg/access"
)

var _ = Describe("Guard", func() {
	var guard *access.Guard

	BeforeEach(func() {
		guard = access.NewGuard([]string{"LuggageMoose", "encryptoknight"})
	})

	It("allows both listed identities", func() {
		Expect(guard.Check("LuggageMoose")).To(Succeed())
		Expect(guard.Check("encryptoknight")).To(Succeed())
	})

	It("denies any other username", func() {
		Expect(guard.Check("somebody")).To(MatchError(access.ErrDenied))
	})

	It("denies the empty username", func() {
		Expect(guard.Check("")).To(MatchError(access.ErrDenied))
	})

	It("matches exactly, not case-insensitively", func() {
		Expect(guard.Check("luggagemoose")).To(MatchError(access.ErrDenied))
	})

	It("denies everything with an empty allow-list", func() {
		empty := access.NewGuard(nil)
		Expect(empty.Check("LuggageMoose")).To(MatchError(access.ErrDenied))
	})
})
