package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jcorbin/mdflow/constructs"
	"github.com/jcorbin/mdflow/token"
)

func newCheckCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Tokenize input and verify the event log's structural invariants",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := cfg.read()
			if err != nil {
				return err
			}
			t, err := constructs.Tokenize(data)
			if err != nil {
				return err
			}
			if err := checkCoverage(len(t.Codes), t.Events); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

// checkCoverage verifies spec.md §8 invariant 3: the union of top-level
// event spans covers the input exactly once, with no gap and no overlap.
func checkCoverage(totalLen int, events []token.Event) error {
	var stack []token.Event
	pos := 0
	for _, e := range events {
		if e.Kind == token.Enter {
			if len(stack) == 0 && e.Index != pos {
				return fmt.Errorf("gap or overlap before index %d entering %v (expected %d)", e.Index, e.Type, pos)
			}
			stack = append(stack, e)
			continue
		}
		n := len(stack)
		if n == 0 {
			return fmt.Errorf("unmatched Exit(%v) at index %d", e.Type, e.Index)
		}
		top := stack[n-1]
		if top.Type != e.Type {
			return fmt.Errorf("Exit(%v) does not match open Enter(%v) at index %d", e.Type, top.Type, e.Index)
		}
		stack = stack[:n-1]
		if len(stack) == 0 {
			pos = e.Index
		}
	}
	if len(stack) != 0 {
		return fmt.Errorf("%d span(s) left open at EOF", len(stack))
	}
	if pos != totalLen {
		return fmt.Errorf("coverage ends at %d, want %d", pos, totalLen)
	}
	return nil
}
