package officemeta

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func writeZip(t *testing.T, name string, entries map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for entry, content := range entries {
		ew, err := w.Create(entry)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := ew.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

const coreXML = `<?xml version="1.0"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties">
  <dc:title>Quarterly Report</dc:title>
  <dc:creator>Jane Author</dc:creator>
  <dc:subject>Finance</dc:subject>
  <cp:keywords>q3, revenue</cp:keywords>
  <cp:lastModifiedBy>Bob Editor</cp:lastModifiedBy>
  <cp:revision>14</cp:revision>
  <dcterms:created xsi:type="dcterms:W3CDTF">2024-01-10T08:00:00Z</dcterms:created>
  <dcterms:modified xsi:type="dcterms:W3CDTF">2024-02-20T16:30:00Z</dcterms:modified>
</cp:coreProperties>`

const appXML = `<?xml version="1.0"?>
<Properties>
  <Application>Microsoft Office Word</Application>
  <Company>Example Corp</Company>
  <Pages>12</Pages>
  <Words>4523</Words>
</Properties>`

func TestExtractOffice(t *testing.T) {
	path := writeZip(t, "report.docx", map[string]string{
		"[Content_Types].xml": "<Types/>",
		"docProps/core.xml":   coreXML,
		"docProps/app.xml":    appXML,
		"word/document.xml":   "<w:document/>",
	})

	info, warnings := ExtractOffice(path)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	if info.Title != "Quarterly Report" {
		t.Errorf("title: got %q", info.Title)
	}
	if info.Author != "Jane Author" {
		t.Errorf("author: got %q", info.Author)
	}
	if info.Subject != "Finance" {
		t.Errorf("subject: got %q", info.Subject)
	}
	if info.Keywords != "q3, revenue" {
		t.Errorf("keywords: got %q", info.Keywords)
	}
	if info.LastModifiedBy != "Bob Editor" {
		t.Errorf("lastModifiedBy: got %q", info.LastModifiedBy)
	}
	if info.Revision != "14" {
		t.Errorf("revision: got %q", info.Revision)
	}
	if info.Created != "2024-01-10T08:00:00Z" {
		t.Errorf("created: got %q", info.Created)
	}
	if info.Application != "Microsoft Office Word" {
		t.Errorf("application: got %q", info.Application)
	}
	if info.Company != "Example Corp" {
		t.Errorf("company: got %q", info.Company)
	}
	if info.Pages != "12" || info.Words != "4523" {
		t.Errorf("pages/words: got %q / %q", info.Pages, info.Words)
	}
}

func TestExtractOffice_MissingProps(t *testing.T) {
	path := writeZip(t, "bare.docx", map[string]string{
		"word/document.xml": "<w:document/>",
	})

	info, warnings := ExtractOffice(path)
	if len(warnings) != 0 {
		t.Fatalf("missing entries are not an error, got %v", warnings)
	}
	if info.Title != "" || info.Application != "" {
		t.Errorf("expected empty info, got %+v", info)
	}
}

func TestExtractOffice_NotAZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.docx")
	if err := os.WriteFile(path, []byte("not a zip"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, warnings := ExtractOffice(path)
	if len(warnings) == 0 {
		t.Error("expected a warning for a non-zip container")
	}
}

const containerXML = `<?xml version="1.0"?>
<container>
  <rootfiles>
    <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>`

const opfXML = `<?xml version="1.0"?>
<package xmlns:dc="http://purl.org/dc/elements/1.1/">
  <metadata>
    <dc:title>A Long Story</dc:title>
    <dc:creator opf:role="aut">Sam Writer</dc:creator>
    <dc:language>en</dc:language>
    <dc:publisher>Example Press</dc:publisher>
    <dc:date>2019-06-01</dc:date>
    <dc:identifier id="bookid">urn:isbn:9780000000000</dc:identifier>
    <dc:description>Quite a long story indeed.</dc:description>
  </metadata>
</package>`

func TestExtractEPub(t *testing.T) {
	path := writeZip(t, "book.epub", map[string]string{
		"mimetype":               "application/epub+zip",
		"META-INF/container.xml": containerXML,
		"OEBPS/content.opf":      opfXML,
	})

	info, warnings := ExtractEPub(path)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	if info.Title != "A Long Story" {
		t.Errorf("title: got %q", info.Title)
	}
	if info.Author != "Sam Writer" {
		t.Errorf("author: got %q", info.Author)
	}
	if info.Language != "en" {
		t.Errorf("language: got %q", info.Language)
	}
	if info.Publisher != "Example Press" {
		t.Errorf("publisher: got %q", info.Publisher)
	}
	if info.Date != "2019-06-01" {
		t.Errorf("date: got %q", info.Date)
	}
	if info.Identifier != "urn:isbn:9780000000000" {
		t.Errorf("identifier: got %q", info.Identifier)
	}
	if info.Description != "Quite a long story indeed." {
		t.Errorf("description: got %q", info.Description)
	}
}

func TestExtractEPub_NoRootfile(t *testing.T) {
	path := writeZip(t, "book.epub", map[string]string{
		"META-INF/container.xml": "<container/>",
	})

	_, warnings := ExtractEPub(path)
	if len(warnings) == 0 {
		t.Error("expected a warning when container.xml names no rootfile")
	}
}

func TestScrapeTag(t *testing.T) {
	doc := "<dc:title>First</dc:title><dc:title>Second</dc:title>"
	if got := scrapeTag(doc, "dc:title"); got != "First" {
		t.Errorf("expected first occurrence, got %q", got)
	}
	if got := scrapeTag(doc, "dc:missing"); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
	// Attributes on the opening tag and surrounding whitespace.
	doc = "<dcterms:created xsi:type=\"w3c\">\n  2024-01-01\n</dcterms:created>"
	if got := scrapeTag(doc, "dcterms:created"); got != "2024-01-01" {
		t.Errorf("expected trimmed content, got %q", got)
	}
}

func TestScrapeAttr(t *testing.T) {
	doc := `<rootfile full-path="OEBPS/content.opf"/>`
	if got := scrapeAttr(doc, "full-path"); got != "OEBPS/content.opf" {
		t.Errorf("got %q", got)
	}
	if got := scrapeAttr(doc, "absent"); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}
