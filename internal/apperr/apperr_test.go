package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassification(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("lookup: %w", &Error{Kind: ErrNotFound, Err: cause})
	if !IsNotFound(err) {
		t.Error("expected not found")
	}
	if IsInvalidParameter(err) {
		t.Error("unexpected invalid parameter")
	}
	if !errors.Is(err, cause) {
		t.Error("cause must stay reachable")
	}
}

func TestMessages(t *testing.T) {
	err := InvalidParameter("facility id %q", "abc")
	if got := err.Error(); got != `invalid parameter: facility id "abc"` {
		t.Errorf("message = %q", got)
	}
	if !IsInvalidParameter(err) {
		t.Error("expected invalid parameter")
	}
	bare := &Error{Kind: ErrNotFound}
	if bare.Error() != "not found" {
		t.Errorf("bare message = %q", bare.Error())
	}
}
