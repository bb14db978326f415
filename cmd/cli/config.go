// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"strings"

	"wol-manager/internal/config"
	"wol-manager/internal/wol"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the host inventory",
	Long:  `Provides subcommands to inspect and edit the Wake-on-LAN host inventory file.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the inventory file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var (
	flagAddMAC  string
	flagAddIP   string
	flagAddPort int
)

var configAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a host to the inventory",
	Example: `  wm config add office-nas --mac aa:bb:cc:00:11:22
  wm config add desk --mac aabb.cc00.1122 --ip 192.168.1.255 --port 7`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		host := wol.NewHost(name, flagAddMAC, flagAddIP, flagAddPort)
		if err := host.Validate(); err != nil {
			return fmt.Errorf("invalid host definition: %s", err)
		}

		path, err := configPath()
		if err != nil {
			return err
		}
		hosts, err := config.LoadRecords(path)
		if err != nil {
			return err
		}
		hosts = append(hosts, config.HostRecord{
			Name: host.Name,
			MAC:  host.MAC,
			IP:   host.IP,
			Port: host.Port,
		})
		if err := config.SaveRecords(path, hosts); err != nil {
			return err
		}

		successColor.Printf("Added host %q.\n", name)
		return nil
	},
}

var configRemoveCmd = &cobra.Command{
	Use:               "remove <name>",
	Short:             "Remove a host from the inventory",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: hostNameCompletionFunc,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		path, err := configPath()
		if err != nil {
			return err
		}
		hosts, err := config.LoadRecords(path)
		if err != nil {
			return err
		}

		kept := hosts[:0]
		removed := 0
		for _, h := range hosts {
			if strings.EqualFold(h.Name, name) {
				removed++
				continue
			}
			kept = append(kept, h)
		}
		if removed == 0 {
			return fmt.Errorf("host %q not found in configuration", name)
		}

		if err := config.SaveRecords(path, kept); err != nil {
			return err
		}
		successColor.Printf("Removed %d host entry(ies) named %q.\n", removed, name)
		return nil
	},
}

var configImportSSHCmd = &cobra.Command{
	Use:   "import-ssh",
	Short: "Seed host entries from ~/.ssh/config",
	Long: `Imports host aliases from the OpenSSH client configuration as inventory
entries. SSH configs carry no MAC addresses, so imported entries are saved
with an empty MAC and will be skipped with a warning until one is filled in.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sshPath, err := config.DefaultSSHConfigPath()
		if err != nil {
			return err
		}
		potential, err := config.ParseSSHConfig(sshPath)
		if err != nil {
			return err
		}
		if len(potential) == 0 {
			dimColor.Println("No importable hosts found in SSH config.")
			return nil
		}

		path, err := configPath()
		if err != nil {
			return err
		}
		hosts, err := config.LoadRecords(path)
		if err != nil {
			return err
		}

		existing := make(map[string]bool, len(hosts))
		for _, h := range hosts {
			existing[strings.ToLower(h.Name)] = true
		}

		imported := 0
		for _, p := range potential {
			if existing[strings.ToLower(p.Alias)] {
				log.Debug("Skipping already-defined host", "name", p.Alias)
				continue
			}
			hosts = append(hosts, config.ConvertToHostRecord(p))
			imported++
		}

		if imported == 0 {
			dimColor.Println("All SSH hosts are already defined.")
			return nil
		}
		if err := config.SaveRecords(path, hosts); err != nil {
			return err
		}

		successColor.Printf("Imported %d host(s).\n", imported)
		dimColor.Println("Edit the inventory to add their MAC addresses before waking them.")
		return nil
	},
}

func init() {
	configAddCmd.Flags().StringVar(&flagAddMAC, "mac", "", "MAC address (any common separator style)")
	configAddCmd.Flags().StringVar(&flagAddIP, "ip", wol.DefaultIP, "IPv4 broadcast/unicast target address")
	configAddCmd.Flags().IntVar(&flagAddPort, "port", wol.DefaultPort, "UDP destination port")
	_ = configAddCmd.MarkFlagRequired("mac")

	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configAddCmd)
	configCmd.AddCommand(configRemoveCmd)
	configCmd.AddCommand(configImportSSHCmd)
}
