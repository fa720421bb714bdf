package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantError bool
		expected  string
	}{
		{
			name:     "valid email",
			input:    "test@example.com",
			expected: "test@example.com",
		},
		{
			name:     "normalized to lowercase",
			input:    "Test@Example.COM",
			expected: "test@example.com",
		},
		{
			name:     "surrounding spaces trimmed",
			input:    " test@example.com ",
			expected: "test@example.com",
		},
		{
			name:      "empty",
			input:     "",
			wantError: true,
		},
		{
			name:      "missing at sign",
			input:     "testexample.com",
			wantError: true,
		},
		{
			name:      "missing domain",
			input:     "test@",
			wantError: true,
		},
		{
			name:      "missing local part",
			input:     "@example.com",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := NewEmail(tt.input)

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, email)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, email.String())
			}
		})
	}
}

func TestEmail_Domain(t *testing.T) {
	email, err := NewEmail("user@mail.example.com")
	require.NoError(t, err)
	assert.Equal(t, "mail.example.com", email.Domain())
}

func TestEmail_Equals(t *testing.T) {
	a, err := NewEmail("test@example.com")
	require.NoError(t, err)
	b, err := NewEmail("Test@Example.com")
	require.NoError(t, err)
	c, err := NewEmail("other@example.com")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(nil))
}
