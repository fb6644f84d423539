// Package filemeta inspects single files: what they are, what metadata
// they carry, and what annotations have been attached to them.
//
// # Quick Start
//
// Reading metadata from a file:
//
//	file, err := filemeta.Open("report.pdf")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Printf("%s (%s, %d bytes)\n", file.Meta.Name, file.Meta.Kind, file.Meta.Size)
//
//	if err := file.LoadExtended(ctx); err != nil {
//		log.Fatal(err)
//	}
//	if ext, ok := file.Extended(); ok && ext.PDF.PageCount > 0 {
//		fmt.Printf("%d pages, by %s\n", ext.PDF.PageCount, ext.PDF.Author)
//	}
//
// # What It Reads
//
//   - Format classification by content sniffing, with extension fallback
//   - PDF: document info dictionary, page count, encryption
//   - Images: EXIF, GPS, IPTC, XMP rating, PNG text chunks
//   - Audio/Video: tags plus technical properties via ffprobe
//   - Office documents and EPUB: embedded core/app properties
//   - Plain text: encoding, line endings, Markdown front matter
//   - Archives and Mach-O executables: format, entry counts, signing
//   - System attributes: quarantine, download origin, tags, comments
//
// # Two-Phase Loading
//
// Open is fast: it stats the file, classifies it and reads the
// annotation ledger. The extended phase — per-format extraction, which
// may shell out to external utilities — runs only when LoadExtended is
// called (or up front with WithExtendedPreload). While an extraction is
// in flight, further LoadExtended calls are no-ops.
//
// # Annotations
//
// filemeta stores its own state as extended attributes under the
// com.filemeta. prefix: custom key/value fields, edit stamps and an
// optional creation-date override. Edits go through the record and Save:
//
//	file.Meta.CustomFields = append(file.Meta.CustomFields,
//		filemeta.NewCustomField("project", "apollo"))
//	if err := file.Save(); err != nil {
//		log.Fatal(err)
//	}
//
// Sessions diff the record against the as-loaded snapshot:
//
//	session := file.NewSession()
//	file.Meta.CreationDate = file.Meta.CreationDate.Add(-time.Hour)
//	fmt.Println(session.HasChanges()) // true
//
// RemoveAnnotations strips everything the tool has written and leaves
// attributes owned by other software alone.
//
// # Error Handling
//
// filemeta distinguishes between fatal errors and warnings:
//
//   - Fatal errors prevent loading entirely (file not found, unreadable
//     attributes)
//   - Warnings indicate non-fatal issues (a malformed EXIF block, an
//     unavailable probe utility)
//
// Extraction never fails outright. Fields that cannot be read stay
// absent, and the reasons land in file.Warnings:
//
//	for _, w := range file.Warnings {
//		log.Printf("Warning: %s", w)
//	}
//
// # Dependency Injection
//
// External capabilities — the attribute store, the media prober, the
// archive and executable inspectors — are interfaces with working
// defaults, replaceable through options:
//
//	store := filemeta.NewMemoryStore()
//	file, err := filemeta.Open(path, filemeta.WithStore(store))
//
// This keeps the library testable without fixtures on disk and usable on
// systems without ffprobe or the Mach-O toolchain.
package filemeta
