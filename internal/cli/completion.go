package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for wordchain.

To load completions:

Bash:
  $ source <(wordchain completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ wordchain completion bash > /etc/bash_completion.d/wordchain
  # macOS:
  $ wordchain completion bash > $(brew --prefix)/etc/bash_completion.d/wordchain

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ wordchain completion zsh > "${fpath[1]}/_wordchain"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ wordchain completion fish | source

  # To load completions for each session, execute once:
  $ wordchain completion fish > ~/.config/fish/completions/wordchain.fish

PowerShell:
  PS> wordchain completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> wordchain completion powershell > wordchain.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(c.out, true)
			case "zsh":
				return root.GenZshCompletion(c.out)
			case "fish":
				return root.GenFishCompletion(c.out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(c.out)
			}
			return nil
		},
	}

	return cmd
}
