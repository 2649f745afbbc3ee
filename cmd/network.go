package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tranvictor/lensens/networks"
	"github.com/tranvictor/lensens/ui"
)

var listNetworkCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all of supported networks",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		u := newUI()
		rows := [][]string{}
		seen := map[string]bool{}
		for _, name := range networks.GetSupportedNetworkNames() {
			n, err := networks.GetNetwork(name)
			if err != nil || seen[n.GetName()] {
				continue
			}
			seen[n.GetName()] = true

			node := u.Style(ui.StyledText{Text: "not set", Severity: ui.SeverityWarn})
			if os.Getenv(n.GetNodeVariableName()) != "" {
				node = u.Style(ui.StyledText{Text: "set", Severity: ui.SeveritySuccess})
			}
			rows = append(rows, []string{
				n.GetName(),
				fmt.Sprintf("%d", n.GetChainID()),
				n.GetNodeVariableName(),
				node,
			})
		}
		u.Table([]string{"Name", "Chain ID", "Node env var", "Node"}, rows)
		u.Info("To add a network, drop its json config in ~/.lensens/networks/.")
	},
}

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Manage the networks lensens knows about",
	Long:  ``,
}

func init() {
	networkCmd.AddCommand(listNetworkCmd)
	rootCmd.AddCommand(networkCmd)
}
