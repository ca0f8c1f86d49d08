package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootCommand struct {
	gs         *globalState
	cmd        *cobra.Command
	configPath string
	verbose    bool
	noColor    bool
}

func newRootCommand(gs *globalState) *cobra.Command {
	c := &rootCommand{gs: gs}
	c.cmd = &cobra.Command{
		Use:               "protocst",
		Short:             "Inspect the tokens and comments of protobuf source files",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.persistentPreRunE,
	}
	c.cmd.SetOut(gs.stdout)
	c.cmd.SetErr(gs.stderr)

	flags := c.cmd.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", defaultConfigFile, "TOML config file")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&c.noColor, "no-color", false, "disable colored output")

	c.cmd.AddCommand(
		getTokensCmd(gs),
		getRoundTripCmd(gs),
		getLocateCmd(gs),
	)
	return c.cmd
}

func (c *rootCommand) persistentPreRunE(cmd *cobra.Command, _ []string) error {
	c.gs.logger.SetOutput(c.gs.stderr)
	if c.verbose {
		c.gs.logger.SetLevel(logrus.DebugLevel)
	}
	c.gs.noColor = c.noColor
	cfg, err := loadConfig(c.gs.fs, c.configPath, cmd.Flags().Changed("config"), c.gs.logger)
	if err != nil {
		return err
	}
	c.gs.cfg = cfg
	return nil
}
