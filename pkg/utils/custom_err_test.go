package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"validation", Validation("bad input"), KindValidation},
		{"unauthenticated", Unauthenticated("who are you"), KindUnauthenticated},
		{"authorization", Authorization("not yours"), KindAuthorization},
		{"not found", NotFound("nope"), KindNotFound},
		{"infrastructure", Infrastructure("db down", errors.New("conn refused")), KindInfrastructure},
		{"plain error", errors.New("anything"), KindInfrastructure},
		{"wrapped service error", fmt.Errorf("context: %w", NotFound("gone")), KindNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, KindOf(tc.err))
		})
	}
}

func TestMessageOfNeverLeaksInfraDetails(t *testing.T) {
	assert.Equal(t, "bad input", MessageOf(Validation("bad input")))
	assert.Equal(t, "Internal server error", MessageOf(Infrastructure("db down", errors.New("password=hunter2"))))
	assert.Equal(t, "Internal server error", MessageOf(errors.New("raw driver error")))
}

func TestServiceErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Infrastructure("wrapper", cause)
	assert.True(t, errors.Is(err, cause))
}
