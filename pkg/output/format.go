// Package output provides utilities for formatting and displaying
// evaluation results.
package output

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/finflags/flag-probe/internal/rules"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(result rules.Result) {
	fmt.Print(PrettyString(result))
}

// PrettyString renders the human-readable table as a string.
func PrettyString(result rules.Result) string {
	var b strings.Builder
	b.WriteString("--- Evaluation flags ---\n")
	b.WriteString(fmt.Sprintf("%-25s | Raised\n", "Flag"))
	b.WriteString(fmt.Sprintf("%-25s | ______\n", "____"))

	names := make([]string, 0, len(result.Flags))
	for name := range result.Flags {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.WriteString(fmt.Sprintf("%-25s | %t\n", name, result.Flags[name]))
	}

	if result.Metrics != nil {
		p := message.NewPrinter(language.English)
		b.WriteString("\n--- Latest period values ---\n")
		b.WriteString(p.Sprintf("Total revenue   | %.2f\n", result.Metrics.TotalRevenue))
		b.WriteString(p.Sprintf("Total borrowing | %.2f\n", result.Metrics.TotalBorrowing))
		b.WriteString(fmt.Sprintf("ISCR            | %.4f\n", result.Metrics.ISCR))
	}

	return b.String()
}

// JSONFormat outputs the result as a single JSON document.
func JSONFormat(result rules.Result) error {
	s, err := JSONString(result)
	if err != nil {
		return err
	}
	fmt.Println(s)
	return nil
}

// JSONString renders the result as an indented JSON document.
func JSONString(result rules.Result) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(data), nil
}
