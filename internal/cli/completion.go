package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

// completionShell pairs a shell with its generator and install hint.
type completionShell struct {
	name    string
	install string // %[1]s is the program name
	gen     func(root *cobra.Command, w io.Writer) error
}

var completionShells = []completionShell{
	{
		name:    "bash",
		install: "  $ source <(%[1]s completion bash)\n  $ %[1]s completion bash > /etc/bash_completion.d/%[1]s",
		gen:     func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
	},
	{
		name:    "zsh",
		install: `  $ %[1]s completion zsh > "${fpath[1]}/_%[1]s"`,
		gen:     func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
	},
	{
		name:    "fish",
		install: "  $ %[1]s completion fish | source\n  $ %[1]s completion fish > ~/.config/fish/completions/%[1]s.fish",
		gen:     func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	},
	{
		name:    "powershell",
		install: "  PS> %[1]s completion powershell | Out-String | Invoke-Expression",
		gen:     func(root *cobra.Command, w io.Writer) error { return root.GenPowerShellCompletionWithDesc(w) },
	},
}

func completionHelp(program string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate shell completion scripts for %s.\n", program)
	for _, sh := range completionShells {
		fmt.Fprintf(&b, "\n%s:\n%s\n", sh.name, fmt.Sprintf(sh.install, program))
	}
	return b.String()
}

func (c *CLI) completionCommand() *cobra.Command {
	names := make([]string, len(completionShells))
	for i, sh := range completionShells {
		names[i] = sh.name
	}
	return &cobra.Command{
		Use:                   "completion [" + strings.Join(names, "|") + "]",
		Short:                 "Generate shell completion scripts",
		Long:                  completionHelp(appName),
		DisableFlagsInUseLine: true,
		ValidArgs:             names,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			i := slices.IndexFunc(completionShells, func(sh completionShell) bool { return sh.name == args[0] })
			return completionShells[i].gen(cmd.Root(), cmd.OutOrStdout())
		},
	}
}
