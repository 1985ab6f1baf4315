package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/rinkplot/pkg/pipeline"
	"github.com/matzehuels/rinkplot/pkg/render/styles"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for rinkplot.

To load completions:

Bash:
  $ source <(rinkplot completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ rinkplot completion bash > /etc/bash_completion.d/rinkplot
  # macOS:
  $ rinkplot completion bash > $(brew --prefix)/etc/bash_completion.d/rinkplot

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ rinkplot completion zsh > "${fpath[1]}/_rinkplot"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ rinkplot completion fish | source

  # To load completions for each session, execute once:
  $ rinkplot completion fish > ~/.config/fish/completions/rinkplot.fish

PowerShell:
  PS> rinkplot completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> rinkplot completion powershell > rinkplot.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
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

	return cmd
}

// registerRenderCompletions completes the enumerated render flags that cmd
// defines.
func registerRenderCompletions(cmd *cobra.Command) {
	fixed := func(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return values, cobra.ShellCompDirectiveNoFileComp
		}
	}
	completions := map[string]func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective){
		"format":      fixed(pipeline.FormatNames()...),
		"orientation": fixed("horizontal", "vertical"),
		"style":       fixed(styles.Names()...),
		"x":           fixed("half", "ozone"),
		"y":           fixed("half"),
	}
	for name, fn := range completions {
		if cmd.Flags().Lookup(name) != nil {
			_ = cmd.RegisterFlagCompletionFunc(name, fn)
		}
	}
}
