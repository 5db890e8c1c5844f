package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve TYPE [MEMBER]",
	Short: "Show where members of a type resolve from",
	Long: `Resolve a type against the schema and print its delegation chain and
visible members together with the type that supplies each one. With a
MEMBER argument, resolve that single member.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	path, err := resolveSchemaPath("")
	if err != nil {
		return err
	}

	reg, err := loadRegistry(path)
	if err != nil {
		return err
	}

	c, ok := reg.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown type: %s (have: %s)", args[0], strings.Join(reg.Names(), ", "))
	}

	p, err := newPrinter(os.Stdout.Fd())
	if err != nil {
		return err
	}

	if len(args) == 2 {
		if err := p.PrintResolution(c, args[1]); err != nil {
			return err
		}
	} else {
		p.PrintChain(c)
		p.PrintMembers(c)
	}
	fmt.Fprint(cmd.OutOrStdout(), p.String())
	return nil
}
