package cmd

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/tranvictor/lensens/contenthash"
	"github.com/tranvictor/lensens/resolver"
)

var DecodeContentHash bool

var contenthashCmd = &cobra.Command{
	Use:     "contenthash <name|node>",
	Short:   "Resolve contenthash(bytes32) for a name",
	Long:    ``,
	Example: "  lensens contenthash charchar.eth --decode",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		node, err := nodeFromArg(args[0])
		if err != nil {
			return err
		}
		if !DecodeContentHash {
			return printRecord(cmd, node, resolver.ContentHash())
		}

		r, err := getResolver()
		if err != nil {
			return err
		}
		defer r.Close()
		ctx, cancel := lookupContext(cmd.Context())
		defer cancel()

		u := newUI()
		value, found, err := r.ContentHash(ctx, node)
		if err != nil {
			return err
		}
		if !found {
			u.Warn("No contenthash record for this name")
			return nil
		}
		u.Value(value)

		info, err := contenthash.Describe(value)
		if err != nil {
			u.Warn("Couldn't decode contenthash: %s", err)
			return nil
		}
		rows := [][2]string{{"scheme", info.Scheme}}
		if info.CID != "" {
			rows = append(rows,
				[2]string{"cid", info.CID},
				[2]string{"codec", info.Codec},
				[2]string{"hash", info.Hash},
			)
		}
		rows = append(rows, [2]string{"eip1577", hexutil.Encode(info.Encoded)})
		u.KeyValue(rows)
		return nil
	},
}

func init() {
	contenthashCmd.Flags().BoolVarP(&DecodeContentHash, "decode", "d", false, "Show the cid, codec and EIP-1577 encoding of the value")
	rootCmd.AddCommand(contenthashCmd)
}
