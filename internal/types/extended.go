package types

import (
	"maps"
	"slices"
	"time"
)

// ExtendedMetadata is the sparse aggregate of format-specific metadata.
//
// Every field across every group is independently optional; the zero value
// means "not determined". No field's presence implies another's. The
// aggregate is wholly owned by its parent FileMetadata and is never shared.
type ExtendedMetadata struct {
	System     SystemAttrs
	PDF        PDFInfo
	Image      ImageInfo
	Audio      AudioInfo
	Video      VideoInfo
	Office     OfficeInfo
	EPub       EPubInfo
	Text       TextInfo
	Archive    ArchiveInfo
	Executable ExecutableInfo
}

// SystemAttrs holds OS-level provenance metadata, extracted for every file
// regardless of its FormatKind.
type SystemAttrs struct {
	// Attributes maps every extended attribute name present on the file to
	// its value decoded as UTF-8, or the BinaryValue sentinel when the raw
	// bytes are not valid text.
	Attributes    map[string]string
	Quarantine    *QuarantineInfo
	WhereFroms    []string
	UserTags      []string
	FinderComment string
}

// BinaryValue is the placeholder recorded in SystemAttrs.Attributes for
// attribute values that do not decode as UTF-8 text.
const BinaryValue = "<binary data>"

// PDFInfo holds document-level PDF attributes.
type PDFInfo struct {
	Version   string // "major.minor" from the %PDF- header
	PageCount int
	Encrypted bool
	Title     string
	Author    string
	Subject   string
	Producer  string
	Keywords  string
	Created   time.Time
	Modified  time.Time
}

// ImageInfo holds raster image metadata: dimensions, EXIF, IPTC, XMP and
// PNG text chunks.
type ImageInfo struct {
	Width       int
	Height      int
	Orientation string

	CameraMake   string
	CameraModel  string
	LensModel    string
	Aperture     string
	ShutterSpeed string
	ISO          string
	FocalLength  string
	DateTaken    time.Time

	GPSLatitude  string
	GPSLongitude string
	GPSAltitude  string

	IPTCKeywords  []string
	IPTCCaption   string
	IPTCCredit    string
	IPTCCopyright string

	// XMPRating is the xmp:Rating value (1-5). Zero means absent; a stored
	// rating of 0 is indistinguishable from no rating.
	XMPRating int

	PNGSoftware     string
	PNGCreationTime string
	PNGText         map[string]string

	// HEICContentID pairs a HEIC still with its live-photo movie.
	HEICContentID string
}

// AudioInfo holds audio tag and technical metadata.
type AudioInfo struct {
	Duration    float64 // seconds
	Title       string
	Artist      string
	Album       string
	Year        string
	Genre       string
	Comment     string
	Composer    string
	TrackNumber int
	Bitrate     string
	Codec       string // four-character code of the first audio track
}

// VideoInfo holds video container and track metadata.
type VideoInfo struct {
	Duration          float64 // seconds
	CreationDate      string  // ISO-8601 as recorded by the container
	Location          string
	Width             int
	Height            int
	FrameRate         string
	Codec             string // four-character code of the video track
	Bitrate           string
	Container         string // upper-cased file extension
	AudioTracks       int
	SubtitleTracks    int
	AudioLanguages    []string
	SubtitleLanguages []string
}

// OfficeInfo holds OOXML document properties scraped from docProps/core.xml
// and docProps/app.xml. Values are kept as the raw scraped strings.
type OfficeInfo struct {
	Title          string
	Author         string
	Subject        string
	Keywords       string
	LastModifiedBy string
	Revision       string
	Created        string
	Modified       string
	Application    string
	Company        string
	Pages          string
	Words          string
}

// EPubInfo holds Dublin Core properties scraped from the ePub OPF document.
type EPubInfo struct {
	Title       string
	Author      string
	Language    string
	Publisher   string
	Date        string
	Identifier  string
	Description string
}

// TextInfo holds plain-text encoding facts and, for markdown files, parsed
// front matter.
type TextInfo struct {
	Encoding    string
	LineEndings string
	FrontMatter map[string]string
}

// ArchiveInfo holds archive facts.
type ArchiveInfo struct {
	Format string
	// FileCount is the number of entries reported by the listing utility.
	// Zero means the count could not be determined.
	FileCount int
}

// ExecutableInfo holds Mach-O facts.
type ExecutableInfo struct {
	Format        string // "Mach-O 32-bit", "Mach-O 64-bit" or "Mach-O Universal"
	Architectures []string
	SigningStatus string // "Signed", "Unsigned", or absent when undetermined
}

// HasAnyData reports whether at least one field across all groups is set.
//
// Used by callers to decide whether extended metadata is worth displaying
// at all.
func (m *ExtendedMetadata) HasAnyData() bool {
	return m.System.hasData() ||
		m.PDF.hasData() ||
		m.Image.hasData() ||
		m.Audio.hasData() ||
		m.Video.hasData() ||
		m.Office.hasData() ||
		m.EPub.hasData() ||
		m.Text.hasData() ||
		m.Archive.hasData() ||
		m.Executable.hasData()
}

func (s *SystemAttrs) hasData() bool {
	return len(s.Attributes) > 0 || s.Quarantine != nil ||
		len(s.WhereFroms) > 0 || len(s.UserTags) > 0 || s.FinderComment != ""
}

func (p *PDFInfo) hasData() bool {
	return p.Version != "" || p.PageCount != 0 || p.Encrypted ||
		p.Title != "" || p.Author != "" || p.Subject != "" ||
		p.Producer != "" || p.Keywords != "" ||
		!p.Created.IsZero() || !p.Modified.IsZero()
}

func (i *ImageInfo) hasData() bool {
	return i.Width != 0 || i.Height != 0 || i.Orientation != "" ||
		i.CameraMake != "" || i.CameraModel != "" || i.LensModel != "" ||
		i.Aperture != "" || i.ShutterSpeed != "" || i.ISO != "" ||
		i.FocalLength != "" || !i.DateTaken.IsZero() ||
		i.GPSLatitude != "" || i.GPSLongitude != "" || i.GPSAltitude != "" ||
		len(i.IPTCKeywords) > 0 || i.IPTCCaption != "" || i.IPTCCredit != "" ||
		i.IPTCCopyright != "" || i.XMPRating != 0 ||
		i.PNGSoftware != "" || i.PNGCreationTime != "" || len(i.PNGText) > 0 ||
		i.HEICContentID != ""
}

func (a *AudioInfo) hasData() bool {
	return a.Duration != 0 || a.Title != "" || a.Artist != "" || a.Album != "" ||
		a.Year != "" || a.Genre != "" || a.Comment != "" || a.Composer != "" ||
		a.TrackNumber != 0 || a.Bitrate != "" || a.Codec != ""
}

func (v *VideoInfo) hasData() bool {
	return v.Duration != 0 || v.CreationDate != "" || v.Location != "" ||
		v.Width != 0 || v.Height != 0 || v.FrameRate != "" || v.Codec != "" ||
		v.Bitrate != "" || v.Container != "" ||
		v.AudioTracks != 0 || v.SubtitleTracks != 0 ||
		len(v.AudioLanguages) > 0 || len(v.SubtitleLanguages) > 0
}

func (o *OfficeInfo) hasData() bool {
	return o.Title != "" || o.Author != "" || o.Subject != "" ||
		o.Keywords != "" || o.LastModifiedBy != "" || o.Revision != "" ||
		o.Created != "" || o.Modified != "" || o.Application != "" ||
		o.Company != "" || o.Pages != "" || o.Words != ""
}

func (e *EPubInfo) hasData() bool {
	return e.Title != "" || e.Author != "" || e.Language != "" ||
		e.Publisher != "" || e.Date != "" || e.Identifier != "" ||
		e.Description != ""
}

func (t *TextInfo) hasData() bool {
	return t.Encoding != "" || t.LineEndings != "" || len(t.FrontMatter) > 0
}

func (a *ArchiveInfo) hasData() bool {
	return a.Format != "" || a.FileCount != 0
}

func (e *ExecutableInfo) hasData() bool {
	return e.Format != "" || len(e.Architectures) > 0 || e.SigningStatus != ""
}

// Equal checks if two ExtendedMetadata values carry the same data.
//
// Slices are compared element-wise in order; maps by key set and values.
func (m *ExtendedMetadata) Equal(other *ExtendedMetadata) bool {
	if m == nil && other == nil {
		return true
	}
	if m == nil || other == nil {
		return false
	}

	if !m.System.equal(&other.System) {
		return false
	}
	if !m.PDF.equal(&other.PDF) {
		return false
	}
	if !m.Image.equal(&other.Image) {
		return false
	}
	if m.Audio != other.Audio {
		return false
	}
	if !m.Video.equal(&other.Video) {
		return false
	}
	if m.Office != other.Office || m.EPub != other.EPub {
		return false
	}
	if m.Text.Encoding != other.Text.Encoding ||
		m.Text.LineEndings != other.Text.LineEndings ||
		!maps.Equal(m.Text.FrontMatter, other.Text.FrontMatter) {
		return false
	}
	if m.Archive != other.Archive {
		return false
	}
	return m.Executable.Format == other.Executable.Format &&
		m.Executable.SigningStatus == other.Executable.SigningStatus &&
		slices.Equal(m.Executable.Architectures, other.Executable.Architectures)
}

func (s *SystemAttrs) equal(other *SystemAttrs) bool {
	if !maps.Equal(s.Attributes, other.Attributes) {
		return false
	}
	if (s.Quarantine == nil) != (other.Quarantine == nil) {
		return false
	}
	if s.Quarantine != nil && *s.Quarantine != *other.Quarantine {
		return false
	}
	return slices.Equal(s.WhereFroms, other.WhereFroms) &&
		slices.Equal(s.UserTags, other.UserTags) &&
		s.FinderComment == other.FinderComment
}

func (p *PDFInfo) equal(other *PDFInfo) bool {
	return p.Version == other.Version && p.PageCount == other.PageCount &&
		p.Encrypted == other.Encrypted &&
		p.Title == other.Title && p.Author == other.Author &&
		p.Subject == other.Subject && p.Producer == other.Producer &&
		p.Keywords == other.Keywords &&
		p.Created.Equal(other.Created) && p.Modified.Equal(other.Modified)
}

func (i *ImageInfo) equal(other *ImageInfo) bool {
	if i.Width != other.Width || i.Height != other.Height ||
		i.Orientation != other.Orientation ||
		i.CameraMake != other.CameraMake || i.CameraModel != other.CameraModel ||
		i.LensModel != other.LensModel || i.Aperture != other.Aperture ||
		i.ShutterSpeed != other.ShutterSpeed || i.ISO != other.ISO ||
		i.FocalLength != other.FocalLength ||
		!i.DateTaken.Equal(other.DateTaken) ||
		i.GPSLatitude != other.GPSLatitude ||
		i.GPSLongitude != other.GPSLongitude ||
		i.GPSAltitude != other.GPSAltitude ||
		i.IPTCCaption != other.IPTCCaption || i.IPTCCredit != other.IPTCCredit ||
		i.IPTCCopyright != other.IPTCCopyright ||
		i.XMPRating != other.XMPRating ||
		i.PNGSoftware != other.PNGSoftware ||
		i.PNGCreationTime != other.PNGCreationTime ||
		i.HEICContentID != other.HEICContentID {
		return false
	}
	return slices.Equal(i.IPTCKeywords, other.IPTCKeywords) &&
		maps.Equal(i.PNGText, other.PNGText)
}

func (v *VideoInfo) equal(other *VideoInfo) bool {
	if v.Duration != other.Duration || v.CreationDate != other.CreationDate ||
		v.Location != other.Location ||
		v.Width != other.Width || v.Height != other.Height ||
		v.FrameRate != other.FrameRate || v.Codec != other.Codec ||
		v.Bitrate != other.Bitrate || v.Container != other.Container ||
		v.AudioTracks != other.AudioTracks ||
		v.SubtitleTracks != other.SubtitleTracks {
		return false
	}
	return slices.Equal(v.AudioLanguages, other.AudioLanguages) &&
		slices.Equal(v.SubtitleLanguages, other.SubtitleLanguages)
}

// Clone creates a deep copy of the ExtendedMetadata.
func (m *ExtendedMetadata) Clone() *ExtendedMetadata {
	if m == nil {
		return nil
	}

	clone := *m

	clone.System.Attributes = maps.Clone(m.System.Attributes)
	clone.System.WhereFroms = slices.Clone(m.System.WhereFroms)
	clone.System.UserTags = slices.Clone(m.System.UserTags)
	if m.System.Quarantine != nil {
		q := *m.System.Quarantine
		clone.System.Quarantine = &q
	}

	clone.Image.IPTCKeywords = slices.Clone(m.Image.IPTCKeywords)
	clone.Image.PNGText = maps.Clone(m.Image.PNGText)

	clone.Video.AudioLanguages = slices.Clone(m.Video.AudioLanguages)
	clone.Video.SubtitleLanguages = slices.Clone(m.Video.SubtitleLanguages)

	clone.Text.FrontMatter = maps.Clone(m.Text.FrontMatter)
	clone.Executable.Architectures = slices.Clone(m.Executable.Architectures)

	return &clone
}
