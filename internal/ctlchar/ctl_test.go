package ctlchar_test

import (
	"testing"

	"github.com/jcorbin/tapevm/internal/ctlchar"
	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	for _, tc := range []struct {
		b    byte
		name string
	}{
		{0x00, "<NUL>"},
		{'\n', "<NL>"},
		{0x1b, "<ESC>"},
		{' ', "<SP>"},
		{'A', "'A'"},
		{'\'', `'\''`},
		{0x7f, "<DEL>"},
		{0x9b, "<CSI>"},
		{0xff, "0xff"},
	} {
		assert.Equal(t, tc.name, ctlchar.Name(tc.b), "expected name for %#02x", tc.b)
	}
}
