package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/techradar/pkg/pipeline"
	"github.com/matzehuels/techradar/pkg/radar"
	"github.com/matzehuels/techradar/pkg/render/styles"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for techradar.

Bash:
  $ source <(techradar completion bash)

Zsh:
  $ techradar completion zsh > "${fpath[1]}/_techradar"

Fish:
  $ techradar completion fish > ~/.config/fish/completions/techradar.fish

PowerShell:
  PS> techradar completion powershell | Out-String | Invoke-Expression

Ring, style and format flags complete their allowed values.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(w, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
			return nil
		},
	}

	return cmd
}

// registerValueCompletions attaches value completion to the known enum flags
// of cmd. Flags the command does not define are skipped.
func registerValueCompletions(cmd *cobra.Command) {
	values := map[string][]string{
		"style":  styles.Names,
		"type":   {pipeline.VizTypeRadar, pipeline.VizTypeNodelink},
		"sort":   {string(radar.SortByName), string(radar.SortByRing), string(radar.SortByNewest), string(radar.SortByChanged)},
		"format": {pipeline.FormatSVG, pipeline.FormatPNG, pipeline.FormatPDF, pipeline.FormatJSON, pipeline.FormatDOT},
	}
	rings := make([]string, len(radar.RingOrder))
	for i, r := range radar.RingOrder {
		rings[i] = string(r)
	}
	values["ring"] = rings

	for name, vals := range values {
		if cmd.Flags().Lookup(name) == nil {
			continue
		}
		_ = cmd.RegisterFlagCompletionFunc(name, cobra.FixedCompletions(vals, cobra.ShellCompDirectiveNoFileComp))
	}
}
