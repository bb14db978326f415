// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagWakeAll bool

var hostCmd = &cobra.Command{
	Use:               "host [names...]",
	Short:             "Wake the specified host(s)",
	Long:              `Sends a Wake-on-LAN magic packet to each named host, in order. Unknown names are skipped with a warning.`,
	Example:           "  wm host office-nas\n  wm host foo bar\n  wm host --all",
	ValidArgsFunction: hostNameCompletionFunc,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagWakeAll && len(args) > 0 {
			return fmt.Errorf("--all cannot be used with named hosts")
		}
		if !flagWakeAll && len(args) == 0 {
			return fmt.Errorf("no host(s) specified")
		}

		targets := dispatcher.Targets(registry, args, flagWakeAll)
		if len(targets) == 0 {
			// Informational outcome: nothing resolved, nothing sent.
			log.Warn("No hosts to wake")
			return nil
		}

		sent, err := dispatcher.Wake(cmd.Context(), targets)
		if err != nil {
			return err
		}
		successColor.Printf("Sent %d magic packet(s).\n", sent)
		return nil
	},
}

func init() {
	hostCmd.Flags().BoolVarP(&flagWakeAll, "all", "a", false, "wake all defined hosts")
}
