package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/willfong/flightdb/internal/database"
)

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema [dialect]",
	Short: "Output the expected database schema",
	Long: `Output the SQL schema flightdb reads from.

Available dialects:
  sqlite    SQLite 3 (default)
  mysql     MySQL 8+ / MariaDB
  postgres  PostgreSQL

The schema has two tables: flights and airlines. flightdb never writes
to the store; load your data with the tools of your database.

Examples:
  flightdb schema                              # SQLite schema
  flightdb schema mysql | mysql -u root flights
  flightdb schema postgres -o schema.sql       # Save to file`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: dialectNames(),
	RunE:      runSchema,
}

var schemaOutputFile string

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().StringVarP(&schemaOutputFile, "output", "o", "", "output file (default: stdout)")
}

func dialectNames() []string {
	var names []string
	for _, d := range database.Dialects() {
		names = append(names, string(d))
	}
	return names
}

func runSchema(cmd *cobra.Command, args []string) error {
	u := newUI()

	dialect := database.DialectSQLite
	if len(args) > 0 {
		dialect = database.Dialect(strings.ToLower(args[0]))
	}

	content, err := database.Schema(dialect)
	if err != nil {
		fmt.Fprintln(os.Stderr, u.Error(fmt.Sprintf("Unknown dialect '%s'", args[0])))
		fmt.Fprintln(os.Stderr, "Valid dialects: "+strings.Join(dialectNames(), ", "))
		return errReported
	}

	if schemaOutputFile == "" {
		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(schemaOutputFile)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(schemaOutputFile, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}
	fmt.Fprintln(os.Stderr, u.Success("Schema written to: "+schemaOutputFile))
	return nil
}
