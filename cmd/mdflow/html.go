package main

import (
	"github.com/spf13/cobra"

	"github.com/jcorbin/mdflow/constructs"
	"github.com/jcorbin/mdflow/mdast"
)

func newHTMLCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "html",
		Short: "Render Markdown to HTML",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := cfg.read()
			if err != nil {
				return err
			}
			t, err := constructs.Tokenize(data)
			if err != nil {
				return err
			}
			root, _, err := mdast.Build(t)
			if err != nil {
				return err
			}
			return cfg.write(mdast.RenderHTML(root))
		},
	}
}
