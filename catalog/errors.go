package catalog

import "fmt"

// UnknownRuleIDError is returned by lookup operations given an id that is
// not in the catalog. It carries the list of valid ids so callers can
// surface acceptable values alongside the failure.
type UnknownRuleIDError struct {
	ID       string
	ValidIDs []string
}

func (e *UnknownRuleIDError) Error() string {
	return fmt.Sprintf("unknown rule id %q (%d valid ids)", e.ID, len(e.ValidIDs))
}
