package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantEmpty bool
	}{
		{name: "nil", wantEmpty: true},
		{name: "plain stdlib error", err: stderrors.New("plain"), wantEmpty: true},
		{name: "wrapped", err: Wrap(stderrors.New("plain"), "load seed")},
		{name: "std wrap around stack", err: fmt.Errorf("generate: %w", New("inner"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Stack(tt.err)
			if tt.wantEmpty {
				assert.Empty(t, got)

				return
			}
			assert.Contains(t, got, "TestStack")
		})
	}
}

func TestWrapKeepsCause(t *testing.T) {
	sentinel := stderrors.New("not found")

	err := Wrapf(sentinel, "find week %s", "2024-01-01")

	assert.True(t, Is(err, sentinel))
	assert.EqualError(t, err, "find week 2024-01-01: not found")
}
