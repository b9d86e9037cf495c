// Package soclog wraps the standard logger with the prefixing and
// output-swapping conveniences mdflow's CLI needs, ported from
// cmd/soc/main.go's package-level logState/init()/addPrefix.
package soclog

import (
	"io"
	"log"
	"os"

	"github.com/jcorbin/mdflow/internal/socutil"
)

var state logState

func init() { state.setOutput(os.Stderr) }

type logState struct {
	out   io.Writer
	flags int
}

// Restore returns a function that puts the standard logger back the way it
// was when Restore was called; typically deferred around a scoped
// SetOutput/AddPrefix change.
func Restore() func() {
	st := state
	return func() {
		if st.out == nil {
			st.out = os.Stderr
		}
		log.SetOutput(st.out)
		log.SetFlags(st.flags)
		state = st
	}
}

// SetFlags sets the standard logger's flag bits, as with log.SetFlags.
func SetFlags(flags int) {
	log.SetFlags(flags)
	state.flags = flags
}

// SetOutput redirects the standard logger's output.
func SetOutput(out io.Writer) {
	log.SetOutput(out)
	state.out = out
}

// AddPrefix wraps the current log output so every line is prefixed with
// prefix, the way a subcommand tags its own diagnostic chatter apart from
// its sibling subcommands in mdflow's CLI.
func AddPrefix(prefix string) {
	SetOutput(socutil.PrefixWriter(prefix, state.out))
}

func (st logState) setOutput(out io.Writer) {
	log.SetOutput(out)
	st.out = out
	state = st
}
