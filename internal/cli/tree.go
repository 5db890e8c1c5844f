package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var treeMembers bool

var treeCmd = &cobra.Command{
	Use:   "tree [schema]",
	Short: "Render the type hierarchy as a tree",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTree,
}

func init() {
	treeCmd.Flags().BoolVarP(&treeMembers, "members", "m", false, "Annotate each type with its declared members")
	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	var positional string
	if len(args) == 1 {
		positional = args[0]
	}
	path, err := resolveSchemaPath(positional)
	if err != nil {
		return err
	}

	reg, err := loadRegistry(path)
	if err != nil {
		return err
	}
	if reg.Len() == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No types defined.")
		return nil
	}

	p, err := newPrinter(os.Stdout.Fd())
	if err != nil {
		return err
	}
	p.SetShowMembers(treeMembers)
	p.PrintForest(reg)
	fmt.Fprint(cmd.OutOrStdout(), p.String())
	return nil
}
