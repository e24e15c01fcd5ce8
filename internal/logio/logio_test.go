package logio_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jcorbin/tapevm/internal/logio"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var out strings.Builder
	var log logio.Logger
	log.SetOutput(&out)

	trace := log.Leveledf("TRACE")
	trace("exec @%v %v", 3, "inc")
	trace("no args %v")
	assert.Equal(t, 0, log.ExitCode(), "trace logs are not errors")

	log.ErrorIf(nil)
	assert.Equal(t, 0, log.ExitCode(), "nil errors are not logged")

	log.ErrorIf(errors.New("bang"))
	assert.Equal(t, 1, log.ExitCode(), "error logs set the exit code")

	log.SetExitCode(2)
	log.SetExitCode(1)
	assert.Equal(t, 2, log.ExitCode(), "exit code only increases")

	assert.Equal(t, strings.Join([]string{
		"TRACE: exec @3 inc",
		"TRACE: no args %v",
		"ERROR: bang",
		"",
	}, "\n"), out.String())
}

func TestWriter(t *testing.T) {
	var lines []string
	lw := &logio.Writer{Logf: func(mess string, args ...interface{}) {
		lines = append(lines, fmt.Sprintf(mess, args...))
	}}

	fmt.Fprintf(lw, "one\ntw")
	assert.Equal(t, []string{"one"}, lines, "partial lines are held back")

	fmt.Fprintf(lw, "o\nthree")
	assert.Equal(t, []string{"one", "two"}, lines)

	assert.NoError(t, lw.Close())
	assert.Equal(t, []string{"one", "two", "three"}, lines, "close flushes the remainder")
}
