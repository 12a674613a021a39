package dotlink

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/arthur-debert/dotlink/internal/version"
	"github.com/arthur-debert/dotlink/pkg/cobrax/topics"
	"github.com/arthur-debert/dotlink/pkg/commands/clone"
	"github.com/arthur-debert/dotlink/pkg/commands/importfile"
	"github.com/arthur-debert/dotlink/pkg/commands/link"
	"github.com/arthur-debert/dotlink/pkg/commands/status"
	"github.com/arthur-debert/dotlink/pkg/commands/unlink"
	"github.com/arthur-debert/dotlink/pkg/commands/update"
	"github.com/arthur-debert/dotlink/pkg/config"
	"github.com/arthur-debert/dotlink/pkg/git"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicsFS embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(defaultDependencies())
}

func newRootCmd(deps dependencies) *cobra.Command {
	initTemplateFormatting()

	g := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "dotlink",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(g.verbosity)
			logging.LogInvocation(cmd.CommandPath(), args)
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}
	rootCmd.SetVersionTemplate(MsgVersionFormat)

	rootCmd.PersistentFlags().CountVar(&g.verbosity, "verbose", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&g.output, "output", "o", "auto", MsgFlagOutput)
	rootCmd.PersistentFlags().StringVar(&g.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&g.repo, "repo", "", MsgFlagRepo)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "repo", Title: "REPOSITORY:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newLinkCmd(g, deps))
	rootCmd.AddCommand(newUnlinkCmd(g, deps))
	rootCmd.AddCommand(newImportCmd(g, deps))
	rootCmd.AddCommand(newStatusCmd(g, deps))
	rootCmd.AddCommand(newCloneCmd(g, deps))
	rootCmd.AddCommand(newUpdateCmd(g, deps))
	rootCmd.AddCommand(newConfigCmd(g))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())

	if sub, err := fs.Sub(topicsFS, "topics"); err == nil {
		opts := topics.Options{Renderer: topics.NewGlamourRenderer()}
		if _, err := topics.InitializeWithOptions(rootCmd, sub, opts); err != nil {
			log.Debug().Err(err).Msg("Help topics unavailable")
		}
	}

	return rootCmd
}

func newLinkCmd(g *globalOptions, deps dependencies) *cobra.Command {
	var force, pretend bool

	cmd := &cobra.Command{
		Use:     "link",
		Short:   MsgLinkShort,
		Long:    MsgLinkLong,
		Example: MsgLinkExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, g, deps)
			if err != nil {
				return err
			}

			report, err := link.LinkEntries(link.Options{
				Paths:   a.paths,
				FS:      a.fs,
				Force:   force,
				Pretend: pretend,
			})
			if err != nil {
				return err
			}
			return a.renderLinkReport(report)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	cmd.Flags().BoolVarP(&pretend, "pretend", "p", false, MsgFlagPretend)
	return cmd
}

func newUnlinkCmd(g *globalOptions, deps dependencies) *cobra.Command {
	var pretend bool

	cmd := &cobra.Command{
		Use:     "unlink",
		Short:   MsgUnlinkShort,
		Long:    MsgUnlinkLong,
		Example: MsgUnlinkExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, g, deps)
			if err != nil {
				return err
			}

			report, err := unlink.UnlinkEntries(unlink.Options{
				Paths:   a.paths,
				FS:      a.fs,
				Pretend: pretend,
			})
			if err != nil {
				return err
			}
			return a.renderLinkReport(report)
		},
	}

	cmd.Flags().BoolVarP(&pretend, "pretend", "p", false, MsgFlagPretend)
	return cmd
}

func newImportCmd(g *globalOptions, deps dependencies) *cobra.Command {
	return &cobra.Command{
		Use:     "import <name>",
		Short:   MsgImportShort,
		Long:    MsgImportLong,
		Example: MsgImportExample,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, g, deps)
			if err != nil {
				return err
			}

			// A missing name is reported by ImportFile as a validation error
			name := ""
			if len(args) == 1 {
				name = args[0]
			}

			result, err := importfile.ImportFile(importfile.Options{
				Paths: a.paths,
				FS:    a.fs,
				Name:  name,
			})
			if err != nil {
				return err
			}
			return a.render(result)
		},
	}
}

func newStatusCmd(g *globalOptions, deps dependencies) *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, g, deps)
			if err != nil {
				return err
			}

			report, err := status.GetStatus(status.Options{Paths: a.paths, FS: a.fs})
			if err != nil {
				return err
			}
			return a.renderLinkReport(report)
		},
	}
}

func newCloneCmd(g *globalOptions, deps dependencies) *cobra.Command {
	return &cobra.Command{
		Use:     "clone <url>",
		Short:   MsgCloneShort,
		Long:    MsgCloneLong,
		Example: MsgCloneExample,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "repo",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, g, deps)
			if err != nil {
				return err
			}

			url := ""
			if len(args) == 1 {
				url = args[0]
			}

			result, err := clone.Clone(cmd.Context(), clone.Options{
				Paths: a.paths,
				FS:    a.fs,
				Git:   a.git,
				URL:   url,
			})
			if err != nil {
				writeToolOutput(a, err)
				return err
			}
			return a.render(result)
		},
	}
}

func newUpdateCmd(g *globalOptions, deps dependencies) *cobra.Command {
	var subtrees bool

	cmd := &cobra.Command{
		Use:     "update",
		Short:   MsgUpdateShort,
		Long:    MsgUpdateLong,
		Example: MsgUpdateExample,
		Args:    cobra.NoArgs,
		GroupID: "repo",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, g, deps)
			if err != nil {
				return err
			}

			report, err := update.Update(cmd.Context(), update.Options{
				Paths:    a.paths,
				FS:       a.fs,
				Git:      a.git,
				Remote:   a.cfg.Repository.Remote,
				Subtrees: subtrees,
				Branch:   a.cfg.Subtrees.Branch,
				Pause:    a.cfg.Subtrees.Pause,
			})
			// Steps completed before a failure, and the failing step's output, are still shown
			if report != nil && len(report.Steps) > 0 {
				if rerr := a.render(report); rerr != nil && err == nil {
					return rerr
				}
			}
			return err
		},
	}

	cmd.Flags().BoolVarP(&subtrees, "subtrees", "s", false, MsgFlagSubtrees)
	return cmd
}

func newConfigCmd(g *globalOptions) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.DefaultContent())
				return err
			}

			overrides := map[string]interface{}{}
			if g.repo != "" {
				overrides["repository.path"] = g.repo
			}
			cfg, err := config.Load(config.LoadOptions{ConfigFile: g.configFile, Overrides: overrides})
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}

			doc, err := cfg.Document()
			if err != nil {
				return fmt.Errorf(MsgErrConfigPrint, err)
			}
			_, err = cmd.OutOrStdout().Write(doc)
			return err
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd.Run != nil {
				helpCmd.SetOut(cmd.OutOrStdout())
				helpCmd.Run(helpCmd, []string{"topics"})
				return nil
			}
			return fmt.Errorf("help command not found")
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

// writeToolOutput shows what git printed before it failed
func writeToolOutput(a *app, err error) {
	if out := style.IndentOutput(git.Output(err), style.OutputIndent); out != "" {
		fmt.Fprintln(a.errOut, out)
	}
}

// PrintError writes the fatal error line, styled when stderr is a terminal
func PrintError(err error) {
	f := style.Formatter{Styled: isTerminal(os.Stderr)}
	fmt.Fprintln(os.Stderr, f.ErrorLine(err))
}
