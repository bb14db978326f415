// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show all defined hosts",
	RunE: func(cmd *cobra.Command, args []string) error {
		if registry.Count() == 0 {
			dimColor.Println("No hosts defined.")
			return nil
		}
		fmt.Println("\n" + registry.Table())
		return nil
	},
}
