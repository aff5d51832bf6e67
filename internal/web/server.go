package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"net/http"

	"awsicons/internal/catalog"
	"awsicons/internal/model"
)

//go:embed static/*
var staticFS embed.FS

// StartServer serves the icon catalog on the given port (or default 8080).
// The catalog is loaded once at startup, matching the TUI's one-shot load.
func StartServer(assetDir string) {
	records := catalog.Load(assetDir)

	mux := http.NewServeMux()

	// Serve the browser UI
	subFS, _ := fs.Sub(staticFS, "static")
	mux.Handle("/", http.FileServer(http.FS(subFS)))

	// Serve the actual icon files so the grid can render them
	mux.Handle("/icons/", http.StripPrefix("/icons/",
		http.FileServer(http.Dir(catalog.ExpandTilde(assetDir)))))

	// API Endpoints
	mux.HandleFunc("/api/icons", handleIcons(records))
	mux.HandleFunc("/api/report", handleReport(records))

	port := "8080"
	fmt.Printf("Starting awsicons web server at http://localhost:%s\n", port)
	fmt.Printf("Go to http://localhost:%s in your browser.\n", port)

	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.Fatal(err)
	}
}

func handleIcons(records []model.IconRecord) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := struct {
			Icons   []model.IconRecord `json:"Icons"`
			Count   int                `json:"Count"`
			Version string             `json:"Version"`
		}{
			Icons:   records,
			Count:   len(records),
			Version: model.Version,
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

func handleReport(records []model.IconRecord) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		verbose := r.URL.Query().Get("verbose") == "1"

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(catalog.GenerateReport(records, verbose)))
	}
}
