package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tranvictor/lensens/resolver"
)

var textCmd = &cobra.Command{
	Use:     "text <name|node> <key>",
	Short:   "Resolve text(bytes32,string) for a name",
	Long:    ``,
	Example: "  lensens text charchar.eth twitter",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		node, err := nodeFromArg(args[0])
		if err != nil {
			return err
		}
		return printRecord(cmd, node, resolver.TextRecord(args[1]))
	},
}

// printRecord resolves record and prints its value, or a notice when there is
// none. Not found is not an error.
func printRecord(cmd *cobra.Command, node [32]byte, record resolver.Record) error {
	r, err := getResolver()
	if err != nil {
		return err
	}
	defer r.Close()
	ctx, cancel := lookupContext(cmd.Context())
	defer cancel()

	u := newUI()
	stop := u.Spinner("Resolving " + record.String() + "...")
	value, found, err := r.Lookup(ctx, node, record)
	stop()
	if err != nil {
		return err
	}
	if !found {
		u.Warn("No %s record for this name", record.Key())
		return nil
	}
	u.Value(value)
	return nil
}

func init() {
	rootCmd.AddCommand(textCmd)
}
