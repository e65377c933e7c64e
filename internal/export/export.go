// Package export saves files downloaded through the portal's export modal
// and parses them as CSV or JSON.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// Format of a parsed export file.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// File is a saved and parsed export download. Records is set for CSV
// exports, JSON for JSON exports.
type File struct {
	Format  Format
	Path    string
	Records []Record
	JSON    any
}

// SaveDownload writes download into dir under its suggested filename and
// returns the absolute path.
func SaveDownload(download playwright.Download, dir string) (string, error) {
	path := filepath.Join(dir, download.SuggestedFilename())
	if err := download.SaveAs(path); err != nil {
		return "", fmt.Errorf("save download %q: %w", download.SuggestedFilename(), err)
	}
	return path, nil
}

// ParseDownload saves download into dir and parses it by file extension.
// Anything that is not .json is treated as CSV.
func ParseDownload(download playwright.Download, dir string) (File, error) {
	path, err := SaveDownload(download, dir)
	if err != nil {
		return File{}, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read export file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		var data any
		if err := json.Unmarshal(raw, &data); err != nil {
			return File{}, fmt.Errorf("parse json export: %w", err)
		}
		return File{Format: FormatJSON, Path: path, JSON: data}, nil
	}

	records, err := ParseCSV(string(raw))
	if err != nil {
		return File{}, err
	}
	return File{Format: FormatCSV, Path: path, Records: records}, nil
}
