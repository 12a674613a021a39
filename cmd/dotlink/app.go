package dotlink

import (
	"fmt"
	"io"

	"github.com/arthur-debert/dotlink/pkg/config"
	"github.com/arthur-debert/dotlink/pkg/filesystem"
	"github.com/arthur-debert/dotlink/pkg/git"
	"github.com/arthur-debert/dotlink/pkg/paths"
	"github.com/arthur-debert/dotlink/pkg/types"
	"github.com/arthur-debert/dotlink/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalOptions holds the persistent flags shared by every command
type globalOptions struct {
	verbosity  int
	output     string
	configFile string
	repo       string
}

// dependencies are the collaborators a command needs beyond configuration
type dependencies struct {
	newGit func(binary string) git.Runner
	fs     types.FS
}

func defaultDependencies() dependencies {
	return dependencies{
		newGit: func(binary string) git.Runner { return git.NewExecRunner(binary) },
		fs:     filesystem.NewOS(),
	}
}

// app is the fully resolved runtime of one command invocation
type app struct {
	cfg    *config.Config
	paths  paths.Paths
	fs     types.FS
	git    git.Runner
	format ui.Format
	out    io.Writer
	errOut io.Writer
}

// newApp loads configuration once and resolves every path from it
func newApp(cmd *cobra.Command, g *globalOptions, deps dependencies) (*app, error) {
	format, err := ui.ParseFormat(g.output)
	if err != nil {
		return nil, fmt.Errorf(MsgErrOutput, err)
	}

	overrides := map[string]interface{}{}
	if g.repo != "" {
		overrides["repository.path"] = g.repo
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: g.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}

	p, err := paths.New(cfg)
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitPaths, err)
	}

	log.Debug().
		Str("repository", p.Repository()).
		Str("source", p.Source()).
		Str("home", p.Home()).
		Msg("Resolved paths")

	return &app{
		cfg:    cfg,
		paths:  p,
		fs:     deps.fs,
		git:    deps.newGit(cfg.Git.Binary),
		format: format,
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
	}, nil
}

// render writes a command report in the selected output format
func (a *app) render(result interface{}) error {
	r, err := ui.NewRenderer(a.format, a.out)
	if err != nil {
		return err
	}
	return r.RenderResult(result)
}

// renderLinkReport adds the empty-source note and the pretend notice
func (a *app) renderLinkReport(report *types.LinkReport) error {
	if len(report.Entries) == 0 && !ui.IsStructured(a.format) {
		fmt.Fprintf(a.errOut, MsgNoEntries, a.paths.Source())
	}
	if err := a.render(report); err != nil {
		return err
	}
	if report.Pretend && !ui.IsStructured(a.format) {
		fmt.Fprintln(a.errOut, MsgPretendNotice)
	}
	return nil
}
