// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"

	"wol-manager/internal/config"

	"github.com/spf13/cobra"
)

// hostNameCompletionFunc suggests host names from the inventory. Completion
// runs before PersistentPreRunE, so the records are read directly; errors
// are silently ignored.
func hostNameCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	path, err := configPath()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	hosts, err := config.LoadRecords(path)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	already := make(map[string]bool, len(args))
	for _, a := range args {
		already[strings.ToLower(a)] = true
	}

	var suggestions []string
	for _, h := range hosts {
		if h.Name == "" || already[strings.ToLower(h.Name)] {
			continue
		}
		if strings.HasPrefix(strings.ToLower(h.Name), strings.ToLower(toComplete)) {
			suggestions = append(suggestions, h.Name)
		}
	}

	return suggestions, cobra.ShellCompDirectiveNoFileComp
}
