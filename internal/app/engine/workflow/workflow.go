// Package workflow governs a quotation's status lifecycle.
//
// The only rule the engine enforces is the initial-state split: small
// bookings need a human approval pass, larger ones are pre-approved.
// After creation, status changes are operator-driven and unconstrained
// within the enumerated set.
package workflow

import (
	"github.com/atoengine/portal/internal/app/system/apperr"
)

// Quote statuses.
const (
	StatusDraft           = "draft"
	StatusPendingApproval = "pending_approval"
	StatusApproved        = "approved"
	StatusSent            = "sent"
	StatusPaid            = "paid"
)

// ApprovalThreshold is the delegate count at which a new quote skips the
// approval queue.
const ApprovalThreshold = 5

var valid = map[string]struct{}{
	StatusDraft:           {},
	StatusPendingApproval: {},
	StatusApproved:        {},
	StatusSent:            {},
	StatusPaid:            {},
}

// Parse validates a status value, returning ErrInvalidStatus for anything
// outside the enumerated set.
func Parse(s string) (string, error) {
	if _, ok := valid[s]; !ok {
		return "", apperr.ErrInvalidStatus
	}
	return s, nil
}

// InitialStatus applies the creation-time rule from the declared delegate
// count (not the length of the delegate list, which may be partial):
// fewer than ApprovalThreshold delegates go to pending_approval, the rest
// are approved. Applied exactly once, at creation.
func InitialStatus(delegateCount int) string {
	if delegateCount < ApprovalThreshold {
		return StatusPendingApproval
	}
	return StatusApproved
}
