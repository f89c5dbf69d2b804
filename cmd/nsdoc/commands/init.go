package commands

import (
	"fmt"

	"git.home.luguber.info/inful/nsdoc/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	fmt.Fprintf(g.stdout(), "Writing configuration to %s\n", root.Config)
	if err := config.Init(root.Config, i.Force); err != nil {
		fmt.Fprintln(g.stdout(), "Initialization failed")
		return err
	}
	fmt.Fprintln(g.stdout(), "initialized successfully")
	return nil
}
