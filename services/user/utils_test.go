package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyPasswordComplexity(t *testing.T) {
	t.Run("accepts a compliant password", func(t *testing.T) {
		assert.NoError(t, VerifyPasswordComplexity("Str0ng!pass"))
	})

	cases := []struct {
		name     string
		password string
	}{
		{"too short", "S1!a"},
		{"missing uppercase", "str0ng!pass"},
		{"missing lowercase", "STR0NG!PASS"},
		{"missing number", "Strong!pass"},
		{"missing symbol", "Str0ngpass"},
	}
	for _, tc := range cases {
		t.Run("rejects "+tc.name, func(t *testing.T) {
			assert.Error(t, VerifyPasswordComplexity(tc.password))
		})
	}
}
