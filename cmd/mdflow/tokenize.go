package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jcorbin/mdflow/constructs"
	"github.com/jcorbin/mdflow/token"
)

func newTokenizeCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize",
		Short: "Dump the flow tokenizer's event log",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := cfg.read()
			if err != nil {
				return err
			}
			t, err := constructs.Tokenize(data)
			if err != nil {
				return err
			}
			return cfg.write(dumpEvents(t.Events))
		},
	}
}

// dumpEvents renders one Event per line, indented by its current nesting
// depth -- the same depth-prefixed line shape scandown/fmt.go's
// BlockStack.Format uses for its verbose dump, adapted from a block stack
// snapshot to a flat event log.
func dumpEvents(events []token.Event) []byte {
	var buf bytes.Buffer
	depth := 0
	for _, e := range events {
		if e.Kind == token.Exit {
			depth--
		}
		for i := 0; i < depth; i++ {
			buf.WriteString("  ")
		}
		fmt.Fprintf(&buf, "%v\n", e)
		if e.Kind == token.Enter {
			depth++
		}
	}
	return buf.Bytes()
}
