package workflow_test

import (
	"errors"
	"testing"

	"github.com/atoengine/portal/internal/app/engine/workflow"
	"github.com/atoengine/portal/internal/app/system/apperr"
)

func TestInitialStatus(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{1, workflow.StatusPendingApproval},
		{4, workflow.StatusPendingApproval},
		{5, workflow.StatusApproved},
		{12, workflow.StatusApproved},
	}
	for _, tt := range tests {
		if got := workflow.InitialStatus(tt.count); got != tt.want {
			t.Errorf("InitialStatus(%d) = %q, want %q", tt.count, got, tt.want)
		}
	}
}

func TestParse_Valid(t *testing.T) {
	for _, s := range []string{
		workflow.StatusDraft,
		workflow.StatusPendingApproval,
		workflow.StatusApproved,
		workflow.StatusSent,
		workflow.StatusPaid,
	} {
		got, err := workflow.Parse(s)
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", s, err)
		}
		if got != s {
			t.Errorf("Parse(%q) = %q", s, got)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, s := range []string{"", "DRAFT", "cancelled", "pending"} {
		_, err := workflow.Parse(s)
		if !errors.Is(err, apperr.ErrInvalidStatus) {
			t.Errorf("Parse(%q): got %v, want ErrInvalidStatus", s, err)
		}
	}
}
