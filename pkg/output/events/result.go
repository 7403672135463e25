package events

import "github.com/verdictsh/verdict/pkg/check"

// ResultEvent carries one canonical result together with the profile
// and control it resolved to. Control and Profile are nil for an
// "other check". The references point into the run's accumulating tree
// and must be treated as read-only by consumers.
type ResultEvent struct {
	BaseEvent
	Result  *check.Result  `json:"result"`
	Control *check.Control `json:"-"`
	Profile *check.Profile `json:"-"`
}
