package cmd

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/tranvictor/lensens/ui"
)

var ownerCmd = &cobra.Command{
	Use:   "owner <name|node>",
	Short: "Show the ENS registry owner of a name",
	Long:  ``,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		node, err := nodeFromArg(args[0])
		if err != nil {
			return err
		}
		r, err := getResolver()
		if err != nil {
			return err
		}
		defer r.Close()
		ctx, cancel := lookupContext(cmd.Context())
		defer cancel()

		u := newUI()
		owner, err := r.Owner(ctx, node)
		if err != nil {
			return err
		}
		u.KeyValue([][2]string{
			{"node", hexutil.Encode(node[:])},
			{"registry", r.Config().RegistryAddress().Hex()},
			{"owner", u.Style(ui.StyledText{Text: owner.Hex(), Severity: ui.SeveritySuccess})},
		})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ownerCmd)
}
