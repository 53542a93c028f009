package database

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed schemas/*.sql
var schemaFS embed.FS

// Schema returns the DDL flightdb expects for a dialect
func Schema(dialect Dialect) (string, error) {
	content, err := schemaFS.ReadFile("schemas/" + string(dialect) + ".sql")
	if err != nil {
		return "", fmt.Errorf("no schema for dialect %q", dialect)
	}
	return string(content), nil
}

// SchemaStatements splits a dialect's DDL into individual statements
func SchemaStatements(dialect Dialect) ([]string, error) {
	ddl, err := Schema(dialect)
	if err != nil {
		return nil, err
	}

	var stmts []string
	for _, part := range strings.Split(ddl, ";") {
		if stmt := strings.TrimSpace(stripComments(part)); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts, nil
}

func stripComments(sql string) string {
	lines := strings.Split(sql, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
