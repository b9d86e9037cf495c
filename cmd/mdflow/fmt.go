package main

import (
	"github.com/spf13/cobra"

	"github.com/jcorbin/mdflow/constructs"
	"github.com/jcorbin/mdflow/mdast"
)

func newFmtCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "fmt",
		Short: "Tokenize Markdown and serialize it back to Markdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := cfg.read()
			if err != nil {
				return err
			}
			t, err := constructs.Tokenize(data)
			if err != nil {
				return err
			}
			root, defs, err := mdast.Build(t)
			if err != nil {
				return err
			}
			return cfg.write(mdast.RenderMarkdown(root, defs))
		},
	}
}
