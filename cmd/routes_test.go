package main

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"travelsuzBack/internal/config"
)

func TestUploadsServedWithFileMIMEType(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "hotels"), 0o755); err != nil {
		t.Fatal(err)
	}
	// Minimal PNG header is enough for content sniffing.
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	if err := os.WriteFile(filepath.Join(dir, "hotels", "a.png"), png, 0o644); err != nil {
		t.Fatal(err)
	}

	var cfg config.Config
	cfg.Storage.LocalDir = dir
	cfg.Permissions.CreateRole = "user"
	cfg.Permissions.UpdateRole = "admin"

	app := &application{
		cfg:      cfg,
		infoLog:  log.New(io.Discard, "", 0),
		errorLog: log.New(io.Discard, "", 0),
	}

	srv := httptest.NewServer(app.routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/uploads/hotels/a.png")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	contentType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/png") {
		t.Errorf("Content-Type = %q, want image/png", contentType)
	}
}
