package cmd

import (
	"github.com/spf13/cobra"
)

var attrsCmd = &cobra.Command{
	Use:   "attrs <name|node>",
	Short: "List the Lens profile attributes backing a name",
	Long: `Shows every attribute of the first Lens profile owned by the owner of the
name, in the order the Lens API returns them. When a key appears more than
once only the first one is used for lookups.`,
	Args: cobra.ExactArgs(1),
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
		attrs, err := r.Attributes(ctx, node)
		if err != nil {
			return err
		}
		if len(attrs) == 0 {
			u.Warn("The owner has no Lens profile or no attributes")
			return nil
		}
		rows := make([][]string, 0, len(attrs))
		for _, a := range attrs {
			rows = append(rows, []string{a.Key, a.Value})
		}
		u.Table([]string{"Key", "Value"}, rows)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(attrsCmd)
}
