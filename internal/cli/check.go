package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/protokin/kin/pkg/object"
)

var checkJSON bool

var checkCmd = &cobra.Command{
	Use:   "check [schema]",
	Short: "Validate a schema and report its types",
	Long: `Parse a schema document, link the declared hierarchy and report every
type with its base and member count. A schema that fails to parse,
names an undefined base or declares an inheritance cycle fails the
check.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(checkCmd)
}

// checkEntry represents one linked type for display.
type checkEntry struct {
	Name    string   `json:"name"`
	Extends string   `json:"extends,omitempty"`
	Members []string `json:"members,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
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

	entries := make([]checkEntry, 0, reg.Len())
	for _, name := range reg.Names() {
		c, ok := reg.Lookup(name)
		if !ok {
			continue
		}
		entry := checkEntry{Name: name}
		if base, ok := object.Base(c); ok {
			entry.Extends = base.Name()
		}
		for _, key := range c.Prototype().Keys() {
			if key == object.ConstructorKey {
				continue
			}
			entry.Members = append(entry.Members, key)
		}
		entries = append(entries, entry)
	}

	if checkJSON {
		return printCheckJSON(cmd, entries)
	}
	return printCheckTable(cmd, path, entries)
}

func printCheckTable(cmd *cobra.Command, path string, entries []checkEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "TYPE\tEXTENDS\tMEMBERS")
	for _, e := range entries {
		extends := e.Extends
		if extends == "" {
			extends = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\n", e.Name, extends, len(e.Members))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d types ok\n", path, len(entries))
	return nil
}

func printCheckJSON(cmd *cobra.Command, entries []checkEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
