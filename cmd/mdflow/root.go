package main

import (
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"

	"github.com/jcorbin/mdflow/internal/soclog"
	"github.com/jcorbin/mdflow/internal/socstore"
)

// Config holds the flags shared by every subcommand: where to read input
// Markdown from and where to write rendered output to.
type Config struct {
	InputFile  string
	OutputFile string
}

// read returns the configured input, defaulting to stdin.
func (c *Config) read() ([]byte, error) {
	if c.InputFile == "" || c.InputFile == "-" {
		return ioutil.ReadAll(os.Stdin)
	}
	return ioutil.ReadFile(c.InputFile)
}

// write sends data to the configured output, defaulting to stdout, and
// going through socstore for atomic replacement when a file is named.
func (c *Config) write(data []byte) error {
	if c.OutputFile == "" || c.OutputFile == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return socstore.WriteFile(c.OutputFile, data, 0644)
}

func newRootCmd() *cobra.Command {
	cfg := &Config{}
	root := &cobra.Command{
		Use:           "mdflow",
		Short:         "Tokenize and render CommonMark flow-level Markdown",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			soclog.AddPrefix(cmd.Name() + ": ")
		},
	}
	root.PersistentFlags().StringVarP(&cfg.InputFile, "file", "f", "-", "input file, or - for stdin")
	root.PersistentFlags().StringVarP(&cfg.OutputFile, "out", "o", "-", "output file, or - for stdout")

	root.AddCommand(
		newTokenizeCmd(cfg),
		newHTMLCmd(cfg),
		newFmtCmd(cfg),
		newCheckCmd(cfg),
	)
	return root
}
