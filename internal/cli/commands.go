package cli

import (
	"fmt"
	"sort"

	"github.com/arthur-debert/geommat/internal/version"
	"github.com/arthur-debert/geommat/pkg/commands/find"
	"github.com/arthur-debert/geommat/pkg/commands/genconfig"
	"github.com/arthur-debert/geommat/pkg/commands/list"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func runFind(cmd *cobra.Command, opts *globalOptions, name string) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	r, err := renderer(cmd, cfg)
	if err != nil {
		return err
	}

	log.Info().Str("dir", cfg.Scan.Dir).Str("name", name).Msg("Looking for geometry material pair")

	result, err := find.Find(find.FindOptions{
		Name:   name,
		Config: cfg,
	})
	if err != nil {
		return err
	}

	return r.RenderResult(result)
}

// materialCompletion offers the materials present in the scanned directory
func materialCompletion(opts *globalOptions) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		cfg, err := opts.loadConfig()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		result, err := list.List(list.ListOptions{Config: cfg, PairedOnly: true})
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		seen := make(map[string]bool)
		var materials []string
		for _, e := range result.Entries {
			if !seen[e.Material] {
				seen[e.Material] = true
				materials = append(materials, e.Material)
			}
		}
		sort.Strings(materials)

		return materials, cobra.ShellCompDirectiveNoFileComp
	}
}

func newFindCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "find <name>",
		Short:             MsgFindShort,
		Long:              MsgRootLong,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: materialCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, opts, args[0])
		},
	}
}

func newListCmd(opts *globalOptions) *cobra.Command {
	var paired bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			r, err := renderer(cmd, cfg)
			if err != nil {
				return err
			}

			log.Info().Str("dir", cfg.Scan.Dir).Bool("paired", paired).Msg("Listing geometry materials")

			result, err := list.List(list.ListOptions{
				Config:     cfg,
				PairedOnly: paired,
			})
			if err != nil {
				return err
			}

			return r.RenderResult(result)
		},
	}

	cmd.Flags().BoolVar(&paired, "paired", false, MsgFlagPaired)
	return cmd
}

func newConfigCmd(opts *globalOptions) *cobra.Command {
	var template bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			r, err := renderer(cmd, cfg)
			if err != nil {
				return err
			}

			result, err := genconfig.GenConfig(genconfig.GenConfigOptions{
				Config:   cfg,
				Template: template,
			})
			if err != nil {
				return err
			}

			return r.RenderResult(result)
		},
	}

	cmd.Flags().BoolVar(&template, "template", false, MsgFlagTemplate)
	return cmd
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics [topic]",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			helpArgs := []string{"topics"}
			if len(args) == 1 {
				helpArgs = args
			}
			// Find the help command and execute it with the topic argument
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd.Name() == "help" {
				if helpCmd.RunE != nil {
					return helpCmd.RunE(helpCmd, helpArgs)
				} else if helpCmd.Run != nil {
					helpCmd.Run(helpCmd, helpArgs)
					return nil
				}
			}
			return fmt.Errorf("help command not found")
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
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
