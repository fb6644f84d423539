// Command filemeta prints and edits single-file metadata.
//
// Usage:
//
//	filemeta report.pdf
//	filemeta -extended photo.jpg
//	filemeta -json -extended movie.mp4
//	filemeta -set project=apollo -set status=draft -save notes.md
//	filemeta -del project -save notes.md
//	filemeta -strip notes.md
//	filemeta -unquarantine download.dmg
//	filemeta -comment "reviewed" photo.jpg
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/simonhull/filemeta"
)

type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func main() {
	var (
		extended     = flag.Bool("extended", false, "load and print extended metadata")
		jsonOut      = flag.Bool("json", false, "print metadata as JSON")
		save         = flag.Bool("save", false, "persist pending -set/-del edits")
		strip        = flag.Bool("strip", false, "remove all annotations written by this tool")
		unquarantine = flag.Bool("unquarantine", false, "remove the quarantine attribute")
		comment      = flag.String("comment", "", "set the Finder comment (empty leaves it alone)")
		version      = flag.Bool("version", false, "print version and exit")
		sets         stringList
		dels         stringList
	)
	flag.Var(&sets, "set", "set a custom field, key=value (repeatable)")
	flag.Var(&dels, "del", "delete a custom field by key (repeatable)")
	flag.Parse()

	if *version {
		info := filemeta.GetVersionInfo()
		fmt.Printf("filemeta %s (commit %s, built %s, %s)\n",
			info.Version, info.GitCommit, info.BuildTime, info.GoVersion)
		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: filemeta [flags] <file>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	ctx := context.Background()

	file, err := filemeta.Open(path)
	if err != nil {
		fatal(err)
	}

	if *strip {
		if err := file.RemoveAnnotations(); err != nil {
			fatal(err)
		}
		fmt.Println("annotations removed")
		return
	}

	if *unquarantine {
		if err := file.RemoveQuarantine(); err != nil {
			fatal(err)
		}
		fmt.Println("quarantine removed")
	}

	if *comment != "" {
		if err := file.SetComment(*comment); err != nil {
			fatal(err)
		}
	}

	if len(sets) > 0 || len(dels) > 0 {
		if err := applyEdits(file, sets, dels); err != nil {
			fatal(err)
		}
		if !*save {
			fmt.Fprintln(os.Stderr, "warning: edits pending, pass -save to persist")
		}
	}
	if *save {
		if err := file.Save(); err != nil {
			fatal(err)
		}
	}

	if *extended {
		if err := file.LoadExtended(ctx); err != nil {
			fatal(err)
		}
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(file.Meta); err != nil {
			fatal(err)
		}
	} else {
		printMeta(file)
	}

	for _, w := range file.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
}

func applyEdits(file *filemeta.File, sets, dels []string) error {
	for _, kv := range sets {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("invalid -set %q: want key=value", kv)
		}
		updated := false
		for i, f := range file.Meta.CustomFields {
			if f.Key == key {
				file.Meta.CustomFields[i].Value = value
				updated = true
				break
			}
		}
		if !updated {
			file.Meta.CustomFields = append(file.Meta.CustomFields, filemeta.NewCustomField(key, value))
		}
	}
	for _, key := range dels {
		kept := file.Meta.CustomFields[:0]
		found := false
		for _, f := range file.Meta.CustomFields {
			if f.Key == key {
				found = true
				continue
			}
			kept = append(kept, f)
		}
		if !found {
			return fmt.Errorf("no custom field %q", key)
		}
		file.Meta.CustomFields = kept
	}
	return nil
}

func printMeta(file *filemeta.File) {
	m := file.Meta
	fmt.Printf("%s\n", m.Path)
	fmt.Printf("  Kind:      %s\n", m.Kind)
	fmt.Printf("  Size:      %d bytes\n", m.Size)
	fmt.Printf("  Perms:     %s\n", m.Permissions)
	fmt.Printf("  Created:   %s\n", m.CreationDate.Format(time.RFC3339))
	fmt.Printf("  Modified:  %s\n", m.ModificationDate.Format(time.RFC3339))
	if m.EditedByTool {
		fmt.Printf("  Annotated: v%s on %s\n", m.ToolVersion, m.LastEditDate.Format(time.RFC3339))
	}
	for _, f := range m.CustomFields {
		fmt.Printf("  %s = %s\n", f.Key, f.Value)
	}

	ext, ok := file.Extended()
	if !ok || !ext.HasAnyData() {
		return
	}
	printExtended(ext)
}

func printExtended(ext *filemeta.ExtendedMetadata) {
	sys := &ext.System
	var lines []string
	if q := sys.Quarantine; q != nil {
		lines = append(lines, entry("Quarantine", fmt.Sprintf("%s at %s", q.AgentName, q.Timestamp.Format(time.RFC3339))))
	}
	for _, u := range sys.WhereFroms {
		lines = append(lines, entry("From", u))
	}
	if len(sys.UserTags) > 0 {
		lines = append(lines, entry("Tags", strings.Join(sys.UserTags, ", ")))
	}
	lines = append(lines, entry("Comment", sys.FinderComment))
	group("System", lines)

	p := &ext.PDF
	group("PDF", []string{
		entry("Version", p.Version),
		entryInt("Pages", p.PageCount),
		entryBool("Encrypted", p.Encrypted),
		entry("Title", p.Title),
		entry("Author", p.Author),
		entry("Subject", p.Subject),
		entry("Producer", p.Producer),
		entry("Keywords", p.Keywords),
		entryTime("Created", p.Created),
		entryTime("Modified", p.Modified),
	})

	i := &ext.Image
	imgLines := []string{
		entryDims(i.Width, i.Height),
		entry("Orientation", i.Orientation),
		entry("Camera", strings.TrimSpace(i.CameraMake+" "+i.CameraModel)),
		entry("Lens", i.LensModel),
		entry("Aperture", i.Aperture),
		entry("Shutter", i.ShutterSpeed),
		entry("ISO", i.ISO),
		entry("Focal", i.FocalLength),
		entryTime("Taken", i.DateTaken),
		entry("Latitude", i.GPSLatitude),
		entry("Longitude", i.GPSLongitude),
		entry("Altitude", i.GPSAltitude),
		entry("Caption", i.IPTCCaption),
		entry("Credit", i.IPTCCredit),
		entry("Copyright", i.IPTCCopyright),
		entryInt("Rating", i.XMPRating),
		entry("Software", i.PNGSoftware),
		entry("CreatedPNG", i.PNGCreationTime),
		entry("ContentID", i.HEICContentID),
	}
	if len(i.IPTCKeywords) > 0 {
		imgLines = append(imgLines, entry("Keywords", strings.Join(i.IPTCKeywords, ", ")))
	}
	for k, v := range i.PNGText {
		imgLines = append(imgLines, entry(k, v))
	}
	group("Image", imgLines)

	a := &ext.Audio
	group("Audio", []string{
		entry("Title", a.Title),
		entry("Artist", a.Artist),
		entry("Album", a.Album),
		entry("Year", a.Year),
		entry("Genre", a.Genre),
		entry("Composer", a.Composer),
		entry("Comment", a.Comment),
		entryInt("Track", a.TrackNumber),
		entry("Codec", a.Codec),
		entry("Bitrate", a.Bitrate),
		entrySeconds("Duration", a.Duration),
	})

	v := &ext.Video
	vidLines := []string{
		entry("Container", v.Container),
		entry("Codec", v.Codec),
		entry("Bitrate", v.Bitrate),
		entry("Created", v.CreationDate),
		entry("Location", v.Location),
		entryDims(v.Width, v.Height),
		entry("FrameRate", v.FrameRate),
		entrySeconds("Duration", v.Duration),
		entryInt("Audio", v.AudioTracks),
		entryInt("Subtitles", v.SubtitleTracks),
	}
	if len(v.AudioLanguages) > 0 {
		vidLines = append(vidLines, entry("AudioLangs", strings.Join(v.AudioLanguages, ", ")))
	}
	if len(v.SubtitleLanguages) > 0 {
		vidLines = append(vidLines, entry("SubLangs", strings.Join(v.SubtitleLanguages, ", ")))
	}
	group("Video", vidLines)

	o := &ext.Office
	group("Document", []string{
		entry("Title", o.Title),
		entry("Author", o.Author),
		entry("Subject", o.Subject),
		entry("Keywords", o.Keywords),
		entry("LastSaved", o.LastModifiedBy),
		entry("Revision", o.Revision),
		entry("Created", o.Created),
		entry("Modified", o.Modified),
		entry("App", o.Application),
		entry("Company", o.Company),
		entry("Pages", o.Pages),
		entry("Words", o.Words),
	})

	e := &ext.EPub
	group("EPUB", []string{
		entry("Title", e.Title),
		entry("Author", e.Author),
		entry("Language", e.Language),
		entry("Publisher", e.Publisher),
		entry("Date", e.Date),
		entry("Identifier", e.Identifier),
		entry("Description", e.Description),
	})

	t := &ext.Text
	txtLines := []string{
		entry("Encoding", t.Encoding),
		entry("LineEndings", t.LineEndings),
	}
	for k, v := range t.FrontMatter {
		txtLines = append(txtLines, entry(k, v))
	}
	group("Text", txtLines)

	ar := &ext.Archive
	group("Archive", []string{
		entry("Format", ar.Format),
		entryInt("Entries", ar.FileCount),
	})

	x := &ext.Executable
	execLines := []string{
		entry("Format", x.Format),
		entry("Signing", x.SigningStatus),
	}
	if len(x.Architectures) > 0 {
		execLines = append(execLines, entry("Arch", strings.Join(x.Architectures, ", ")))
	}
	group("Executable", execLines)
}

// group prints a labelled section, skipping it entirely when every line
// is empty.
func group(name string, lines []string) {
	printed := false
	for _, line := range lines {
		if line == "" {
			continue
		}
		if !printed {
			fmt.Printf("  %s:\n", name)
			printed = true
		}
		fmt.Println(line)
	}
}

func entry(label, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf("    %-11s %s", label+":", value)
}

func entryInt(label string, value int) string {
	if value == 0 {
		return ""
	}
	return entry(label, fmt.Sprintf("%d", value))
}

func entryBool(label string, value bool) string {
	if !value {
		return ""
	}
	return entry(label, "yes")
}

func entryTime(label string, value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return entry(label, value.Format(time.RFC3339))
}

func entrySeconds(label string, value float64) string {
	if value == 0 {
		return ""
	}
	return entry(label, fmt.Sprintf("%.1fs", value))
}

func entryDims(width, height int) string {
	if width == 0 && height == 0 {
		return ""
	}
	return entry("Dimensions", fmt.Sprintf("%dx%d", width, height))
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
