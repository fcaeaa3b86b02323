// Package access implements the allow-list guard for interaction handlers.
package access

import "errors"

// ErrDenied is returned when the invoking username is not on the allow-list.
var ErrDenied = errors.New("access denied")

// Guard checks invoking usernames against a fixed allow-list.
// Membership is exact string match; an empty or missing username is denied.
type Guard struct {
	allowed map[string]struct{}
}

// NewGuard creates a guard allowing exactly the given usernames.
func NewGuard(usernames []string) *Guard {
	allowed := make(map[string]struct{}, len(usernames))
	for _, u := range usernames {
		allowed[u] = struct{}{}
	}

	return &Guard{allowed: allowed}
}

// Check returns nil when username is on the allow-list and ErrDenied
// otherwise. Callers must stop processing on ErrDenied before touching
// any state.
func (g *Guard) Check(username string) error {
	if _, ok := g.allowed[username]; !ok {
		return ErrDenied
	}

	return nil
}
