package catalog

import (
	"fmt"
	"strings"

	"awsicons/internal/model"
)

// GenerateReport renders a plain-text summary of the catalog. Verbose mode
// adds one line per icon.
func GenerateReport(records []model.IconRecord, verbose bool) string {
	var b strings.Builder

	b.WriteString("AWS Icon Catalog\n")
	b.WriteString("================\n\n")
	fmt.Fprintf(&b, "Icons: %d\n\n", len(records))

	if len(records) == 0 {
		b.WriteString("No icons found. Check the asset directory and its find.txt manifest.\n")
		return b.String()
	}

	// Per-classification and per-format tallies.
	byClass := map[model.Classification]int{}
	byFormat := map[string]int{}
	var formatOrder []string
	for _, r := range records {
		byClass[r.Classification]++
		for _, f := range r.Formats {
			if _, seen := byFormat[f]; !seen {
				formatOrder = append(formatOrder, f)
			}
			byFormat[f]++
		}
	}

	b.WriteString("By classification:\n")
	for _, c := range []model.Classification{
		model.Architecture, model.Resource, model.Category, model.ArchitectureGroup,
	} {
		if byClass[c] > 0 {
			fmt.Fprintf(&b, "  %-20s %d\n", c, byClass[c])
		}
	}

	b.WriteString("\nBy format:\n")
	for _, f := range formatOrder {
		fmt.Fprintf(&b, "  %-20s %d\n", f, byFormat[f])
	}

	if verbose {
		b.WriteString("\nIcons:\n")
		for i, r := range records {
			fmt.Fprintf(&b, "%4d. %s (%s) [%s]\n",
				i+1, r.Name, r.Subtitle(), strings.Join(r.Formats, ", "))
		}
	}

	return b.String()
}
