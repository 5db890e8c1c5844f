package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/protokin/kin/internal/config"
	"github.com/protokin/kin/internal/prettyprinter"
	"github.com/protokin/kin/internal/schema"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var schemaPath string

var rootCmd = &cobra.Command{
	Use:   "kin",
	Short: "Inspect prototype delegation hierarchies",
	Long: `kin builds prototype hierarchies from YAML schema documents and shows
how types link to their bases and where each member resolves from.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&schemaPath, "schema", "s", "", "Path to the schema document (default: nearest kin.yaml)")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// resolveSchemaPath picks the schema to operate on: an explicit
// positional argument wins, then the --schema flag, then the nearest
// kin.yaml above the working directory.
func resolveSchemaPath(positional string) (string, error) {
	if positional != "" {
		return positional, nil
	}
	if schemaPath != "" {
		return schemaPath, nil
	}
	found, err := schema.FindSchema(".")
	if err != nil {
		return "", err
	}
	if found == "" {
		return "", fmt.Errorf("no %s found, pass a schema path or --schema", config.DefaultSchemaFile)
	}
	return found, nil
}

// loadRegistry parses and builds the schema at path.
func loadRegistry(path string) (*schema.Registry, error) {
	doc, err := schema.Load(path)
	if err != nil {
		return nil, err
	}
	reg, err := schema.Build(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reg, nil
}

// newPrinter builds a hierarchy printer with color resolved from the
// environment and the terminal.
func newPrinter(fd uintptr) (*prettyprinter.HierarchyPrinter, error) {
	settings, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	p := prettyprinter.NewHierarchyPrinter()
	p.SetColor(settings.ColorEnabled(fd))
	return p, nil
}
