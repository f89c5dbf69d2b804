package commands

import (
	"fmt"

	"git.home.luguber.info/inful/nsdoc/internal/linkverify"
	"git.home.luguber.info/inful/nsdoc/internal/model"
)

// VerifyCmd implements the 'verify' command.
type VerifyCmd struct {
	Output string `short:"o" help:"Site directory to check" type:"path"`
}

func (v *VerifyCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig(g, false)
	if err != nil {
		return err
	}

	dir := firstNonEmpty(v.Output, cfg.Output.Directory)
	if dir == "" && cfg.Project != "" {
		p, err := model.Load(cfg.Project)
		if err != nil {
			return err
		}
		dir = p.Output()
	}
	return verifySite(g, firstNonEmpty(dir, model.DefaultOutputDir))
}

func verifySite(g *Global, dir string) error {
	broken, err := linkverify.NewVerifier(linkverify.WithLogger(g.Logger)).Verify(g.context(), dir)
	if err != nil {
		return err
	}
	for _, b := range broken {
		fmt.Fprintf(g.stdout(), "broken link: %s\n", b)
	}
	if err := linkverify.Failure(broken); err != nil {
		return err
	}
	fmt.Fprintf(g.stdout(), "All links in %s resolve\n", dir)
	return nil
}
