// Package officemeta extracts document properties from OOXML office files
// and ePub books. Both are ZIP containers; the interesting inner XML
// entries are extracted to a scoped temporary directory and scraped with
// tag-name regular expressions.
//
// The scrape is deliberately not an XML parse: it pulls flat string values
// and does not distinguish nested or attributed occurrences of the same
// tag name elsewhere in the document.
package officemeta

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/simonhull/filemeta/internal/types"
)

// maxEntrySize caps how much of a single inner XML entry gets extracted.
const maxEntrySize = 8 << 20

// ExtractOffice reads OOXML core and application properties.
func ExtractOffice(path string) (types.OfficeInfo, []types.Warning) {
	var info types.OfficeInfo
	var warnings []types.Warning

	err := withExtracted(path, []string{"docProps/core.xml", "docProps/app.xml"}, func(files map[string]string) {
		if core, ok := files["docProps/core.xml"]; ok {
			doc := readAll(core)
			info.Title = scrapeTag(doc, "dc:title")
			info.Author = scrapeTag(doc, "dc:creator")
			info.Subject = scrapeTag(doc, "dc:subject")
			info.Keywords = scrapeTag(doc, "cp:keywords")
			info.LastModifiedBy = scrapeTag(doc, "cp:lastModifiedBy")
			info.Revision = scrapeTag(doc, "cp:revision")
			info.Created = scrapeTag(doc, "dcterms:created")
			info.Modified = scrapeTag(doc, "dcterms:modified")
		}
		if app, ok := files["docProps/app.xml"]; ok {
			doc := readAll(app)
			info.Application = scrapeTag(doc, "Application")
			info.Company = scrapeTag(doc, "Company")
			info.Pages = scrapeTag(doc, "Pages")
			info.Words = scrapeTag(doc, "Words")
		}
	})
	if err != nil {
		warnings = append(warnings, types.Warning{Stage: "office", Message: err.Error()})
	}

	return info, warnings
}

// ExtractEPub reads Dublin Core properties from the ePub's OPF document,
// located through META-INF/container.xml.
func ExtractEPub(path string) (types.EPubInfo, []types.Warning) {
	var info types.EPubInfo
	var warnings []types.Warning

	const container = "META-INF/container.xml"

	var opfEntry string
	err := withExtracted(path, []string{container}, func(files map[string]string) {
		if f, ok := files[container]; ok {
			opfEntry = scrapeAttr(readAll(f), "full-path")
		}
	})
	if err != nil {
		warnings = append(warnings, types.Warning{Stage: "epub", Message: err.Error()})
		return info, warnings
	}
	if opfEntry == "" {
		warnings = append(warnings, types.Warning{Stage: "epub", Message: "no rootfile in container.xml"})
		return info, warnings
	}

	err = withExtracted(path, []string{opfEntry}, func(files map[string]string) {
		f, ok := files[opfEntry]
		if !ok {
			return
		}
		doc := readAll(f)
		info.Title = scrapeTag(doc, "dc:title")
		info.Author = scrapeTag(doc, "dc:creator")
		info.Language = scrapeTag(doc, "dc:language")
		info.Publisher = scrapeTag(doc, "dc:publisher")
		info.Date = scrapeTag(doc, "dc:date")
		info.Identifier = scrapeTag(doc, "dc:identifier")
		info.Description = scrapeTag(doc, "dc:description")
	})
	if err != nil {
		warnings = append(warnings, types.Warning{Stage: "epub", Message: err.Error()})
	}

	return info, warnings
}

// withExtracted extracts the named zip entries into a temporary directory,
// passes entry-name → extracted-path to fn, and removes the directory on
// every exit path. Entries missing from the archive are simply absent
// from the map.
func withExtracted(archivePath string, entries []string, fn func(files map[string]string)) error {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("open container: %w", err)
	}
	defer r.Close()

	dir, err := os.MkdirTemp("", "filemeta-*")
	if err != nil {
		return fmt.Errorf("temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	files := make(map[string]string, len(entries))
	for _, f := range r.File {
		for _, want := range entries {
			if f.Name != want {
				continue
			}
			dest := filepath.Join(dir, filepath.Base(f.Name))
			if err := extractEntry(f, dest); err != nil {
				return fmt.Errorf("extract %s: %w", f.Name, err)
			}
			files[want] = dest
		}
	}

	fn(files)
	return nil
}

func extractEntry(f *zip.File, dest string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, io.LimitReader(rc, maxEntrySize))
	return err
}

func readAll(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}

// scrapeTag pulls the content of the first <tag ...>content</tag>
// occurrence, dot matching newlines.
func scrapeTag(doc, tag string) string {
	re := regexp.MustCompile(`(?s)<` + regexp.QuoteMeta(tag) + `[^>]*>(.*?)</` + regexp.QuoteMeta(tag) + `>`)
	m := re.FindStringSubmatch(doc)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// scrapeAttr pulls the first attr="value" occurrence.
func scrapeAttr(doc, attr string) string {
	re := regexp.MustCompile(regexp.QuoteMeta(attr) + `="([^"]+)"`)
	m := re.FindStringSubmatch(doc)
	if m == nil {
		return ""
	}
	return m[1]
}
