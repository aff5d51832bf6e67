package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"awsicons/internal/assets"
	"awsicons/internal/catalog"
	"awsicons/internal/clipboard"
	"awsicons/internal/model"
	"awsicons/internal/tui"
	"awsicons/internal/web"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "awsicons",
		Repository: "awsicons",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/awsicons/awsicons/releases")
	} else if pflag.Lookup("update").Changed {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: awsicons [options]\n\n")
		fmt.Fprintf(os.Stderr, "awsicons is a browser for the bundled AWS icon set.\n")
		fmt.Fprintf(os.Stderr, "It reads the icon manifest, deduplicates icons across file formats,\n")
		fmt.Fprintf(os.Stderr, "and lets you copy any icon (PNG or SVG) to the system clipboard.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  awsicons                         # Start TUI mode (searchable icon list)\n")
		fmt.Fprintf(os.Stderr, "  awsicons --list                  # Print a catalog report to stdout\n")
		fmt.Fprintf(os.Stderr, "  awsicons -l -v -o report.txt     # Save a verbose report to file\n")
		fmt.Fprintf(os.Stderr, "  awsicons --json                  # Output the catalog as JSON\n")
		fmt.Fprintf(os.Stderr, "  awsicons --copy Amazon-EC2       # Copy an icon without the TUI\n")
		fmt.Fprintf(os.Stderr, "  awsicons --copy Amazon-S3 -f svg # Copy the SVG variant\n")
	}

	jsonFlag := pflag.BoolP("json", "j", false, "Output the icon catalog as JSON")
	listFlag := pflag.BoolP("list", "l", false, "Print a catalog report (CLI mode)")
	outputFlag := pflag.StringP("output", "o", "", "Save the report to the specified file (combined with --list)")
	verboseFlag := pflag.BoolP("verbose", "v", false, "Include one line per icon in the report")
	copyFlag := pflag.StringP("copy", "c", "", "Copy the named icon to the clipboard and exit")
	formatFlag := pflag.StringP("format", "f", "png", "Icon format for --copy (png or svg)")
	dirFlag := pflag.StringP("dir", "d", "", "Asset directory (default: bundled icons in the user cache)")
	webFlag := pflag.BoolP("web", "w", false, "Start Web Mode on http://localhost:8080")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("awsicons version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	assetDir := resolveAssetDir(*dirFlag)

	if *webFlag {
		web.StartServer(assetDir)
		return
	}

	if *listFlag {
		runReportMode(assetDir, *outputFlag, *verboseFlag)
		return
	}

	if *jsonFlag {
		runJsonMode(assetDir)
		return
	}

	if *copyFlag != "" {
		runCopyMode(assetDir, *copyFlag, *formatFlag)
		return
	}

	// Default: TUI
	runTuiMode(assetDir)
}

// resolveAssetDir picks the asset directory: an explicit --dir wins,
// otherwise the bundled icon set is materialized under the user cache dir.
func resolveAssetDir(dirFlag string) string {
	if dirFlag != "" {
		return dirFlag
	}
	dir, err := assets.Dir()
	if err != nil {
		// The loader copes with a missing directory by returning an
		// empty catalog, so this is not fatal.
		fmt.Fprintf(os.Stderr, "Warning: cannot extract bundled icons: %v\n", err)
		return ""
	}
	return dir
}

func runReportMode(assetDir, outputFile string, verbose bool) {
	records := catalog.Load(assetDir)
	report := catalog.GenerateReport(records, verbose)

	if outputFile != "" {
		err := os.WriteFile(outputFile, []byte(report), 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report to %s: %v\n", outputFile, err)
			os.Exit(1)
		}
		fmt.Printf("Report saved to %s\n", outputFile)
	} else {
		fmt.Println(report)
	}
}

func runJsonMode(assetDir string) {
	records := catalog.Load(assetDir)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(records)
}

func runCopyMode(assetDir, name, format string) {
	records := catalog.Load(assetDir)

	for _, rec := range records {
		if !strings.EqualFold(rec.Name, name) {
			continue
		}
		if !rec.HasFormat(format) {
			fmt.Fprintf(os.Stderr, "Icon %s has no %s file (available: %s)\n",
				rec.Name, format, strings.Join(rec.Formats, ", "))
			os.Exit(1)
		}
		if err := clipboard.CopyFile(catalog.ResolvePath(rec, format)); err != nil {
			fmt.Fprintf(os.Stderr, "Copy failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Copied %s (%s) to clipboard\n", rec.Name, format)
		return
	}

	fmt.Fprintf(os.Stderr, "No icon named %q in the catalog\n", name)
	os.Exit(1)
}

func runTuiMode(assetDir string) {
	m := tui.InitialModel(assetDir)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
