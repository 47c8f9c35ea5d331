// Package cli builds the geommat command tree.
package cli

import (
	"embed"
	"fmt"

	"github.com/arthur-debert/geommat/internal/version"
	"github.com/arthur-debert/geommat/pkg/cobrax/topics"
	"github.com/arthur-debert/geommat/pkg/config"
	"github.com/arthur-debert/geommat/pkg/errors"
	"github.com/arthur-debert/geommat/pkg/logging"
	"github.com/arthur-debert/geommat/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicsFS embed.FS

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	verbosity int
	dir       string
	format    string
}

// loadConfig layers the persistent flags over files and environment
func (o *globalOptions) loadConfig() (*config.Config, error) {
	overrides := map[string]interface{}{}
	if o.dir != "" {
		overrides["scan.dir"] = o.dir
	}
	if o.format != "" {
		overrides["output.format"] = o.format
	}

	cfg, err := config.Load(config.LoadOptions{Dir: o.dir, Overrides: overrides})
	if err != nil {
		if errors.GetErrorCode(err) == errors.ErrUnknown {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, MsgErrLoadConfig)
		}
		return nil, err
	}
	return cfg, nil
}

// renderer picks the output renderer for cmd according to cfg
func renderer(cmd *cobra.Command, cfg *config.Config) (ui.Renderer, error) {
	format, err := ui.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, MsgErrFormat, cfg.Output.Format).
			WithDetail("format", cfg.Output.Format)
	}
	r, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRender, "failed to create renderer")
	}
	return r, nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:               "geommat <name>",
		Short:             MsgRootShort,
		Long:              MsgRootLong,
		Example:           MsgRootExample,
		Version:           version.Version,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: materialCompletion(opts),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLoggerTo(cmd.ErrOrStderr(), opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, opts, args[0])
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&opts.dir, "dir", "d", "", MsgFlagDir)
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "o", "", MsgFlagFormat)
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "term", "text", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.MarkPersistentFlagDirname("dir")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newFindCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	topicOpts := topics.Options{
		Extensions: []string{".md", ".txt"},
		Renderer:   topics.NewGlamourRenderer(),
	}
	if _, err := topics.InitializeWithOptions(rootCmd, topicsFS, "topics", topicOpts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

// Execute runs rootCmd and reports a failure once on the error stream of
// the command that failed
func Execute(rootCmd *cobra.Command) error {
	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return nil
	}
	if cmd == nil {
		cmd = rootCmd
	}

	errOut := cmd.ErrOrStderr()
	r, rerr := ui.NewRenderer(ui.FormatAuto, errOut)
	if rerr != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return err
	}
	_ = r.RenderError(err)

	// Usage problems carry no error code; show how the command is called
	if errors.GetErrorCode(err) == errors.ErrUnknown {
		fmt.Fprintln(errOut)
		fmt.Fprint(errOut, cmd.UsageString())
	}

	return err
}
