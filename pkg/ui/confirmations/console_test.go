package confirmations

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleDialog_Confirm(t *testing.T) {
	tests := []struct {
		input    string
		approved bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{" yes \n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"maybe\n", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			out := &bytes.Buffer{}
			d := NewConsoleDialog(strings.NewReader(tt.input), out)

			ok, err := d.Confirm("Remove 1 template:", []string{"/a/b.xctemplate"})
			require.NoError(t, err)
			assert.Equal(t, tt.approved, ok)
			assert.Contains(t, out.String(), "└── /a/b.xctemplate")
			assert.Contains(t, out.String(), "[y/N]")
		})
	}
}
