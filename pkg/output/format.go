// Package output provides utilities for formatting and displaying model
// summary field views.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lensview/lens-go/internal/summary"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(name string, fields []summary.Field) {
	p := message.NewPrinter(language.English)
	fmt.Printf("--- Model summary %s ---\n", name)
	fmt.Printf("Field              | Value\n")
	fmt.Printf("_____              | _____\n")
	for _, field := range fields {
		switch v := field.Value.(type) {
		case float64:
			_, _ = p.Printf("%-18s | %.6f\n", field.Name, v)
		case []summary.FeatureSummary:
			names := make([]string, len(v))
			for i, fs := range v {
				names[i] = fmt.Sprintf("%s (%d bins)", fs.Name, len(fs.Data.BinEdgeRight))
			}
			fmt.Printf("%-18s | %s\n", field.Name, strings.Join(names, ", "))
		default:
			fmt.Printf("%-18s | %v\n", field.Name, v)
		}
	}
}

// CsvFormat outputs in comma-separated value format, one row per field.
func CsvFormat(fields []summary.Field) {
	fmt.Printf("\"field\",\"value\"\n")
	for _, field := range fields {
		switch v := field.Value.(type) {
		case float64:
			fmt.Printf("\"%s\",\"%.6f\"\n", field.Name, v)
		case []summary.FeatureSummary:
			names := make([]string, len(v))
			for i, fs := range v {
				names[i] = fs.Name
			}
			fmt.Printf("\"%s\",\"%s\"\n", field.Name, strings.Join(names, ","))
		default:
			fmt.Printf("\"%s\",\"%v\"\n", field.Name, v)
		}
	}
}

// JSONFormat outputs the field view as an indented JSON object, preserving
// field declaration order.
func JSONFormat(fields []summary.Field) error {
	var b strings.Builder
	b.WriteString("{\n")
	for i, field := range fields {
		value, err := json.MarshalIndent(field.Value, "  ", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize field %s, %w", field.Name, err)
		}
		fmt.Fprintf(&b, "  %q: %s", field.Name, value)
		if i < len(fields)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n")
	fmt.Print(b.String())
	return nil
}
