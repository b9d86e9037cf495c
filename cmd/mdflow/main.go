// Command mdflow is a demonstration CLI over this module's flow
// tokenizer: it tokenizes a Markdown file and either dumps its event log,
// renders it to HTML, serializes it back to Markdown, or checks the event
// log's structural invariants. Restructured
// from cmd/poc/main.go and cmd/soc/main.go's single-purpose flag-parsed
// tools into a cobra subcommand tree, since this CLI fronts several
// independent operations rather than one.
package main

import (
	"log"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
