package imagemeta

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/simonhull/filemeta/internal/types"
)

func pngChunk(chunkType string, data []byte) []byte {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.BigEndian, uint32(len(data)))
	buf.WriteString(chunkType)
	buf.Write(data)
	buf.Write([]byte{0, 0, 0, 0}) // CRC, unchecked
	return buf.Bytes()
}

func writePNG(t *testing.T, chunks ...[]byte) string {
	t.Helper()
	buf := &bytes.Buffer{}
	buf.Write(pngSignature)
	buf.Write(pngChunk("IHDR", make([]byte, 13)))
	for _, c := range chunks {
		buf.Write(c)
	}
	buf.Write(pngChunk("IEND", nil))

	path := filepath.Join(t.TempDir(), "img.png")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadPNGText_DedicatedKeys(t *testing.T) {
	path := writePNG(t,
		pngChunk("tEXt", []byte("Software\x00Pixelmator Pro")),
		pngChunk("tEXt", []byte("Creation Time\x002024-03-01")),
	)

	var info types.ImageInfo
	readPNGText(path, &info)

	if info.PNGSoftware != "Pixelmator Pro" {
		t.Errorf("software: got %q", info.PNGSoftware)
	}
	if info.PNGCreationTime != "2024-03-01" {
		t.Errorf("creation time: got %q", info.PNGCreationTime)
	}
	if len(info.PNGText) != 0 {
		t.Errorf("expected no generic entries, got %v", info.PNGText)
	}
}

func TestReadPNGText_GenericEntries(t *testing.T) {
	path := writePNG(t,
		pngChunk("tEXt", []byte("Comment\x00test shot")),
		pngChunk("tEXt", []byte("Author\x00Jane")),
	)

	var info types.ImageInfo
	readPNGText(path, &info)

	if info.PNGText["Comment"] != "test shot" || info.PNGText["Author"] != "Jane" {
		t.Errorf("got %v", info.PNGText)
	}
}

func TestReadPNGText_UncompressedITXt(t *testing.T) {
	// keyword NUL, compression flag 0, method 0, empty language tag NUL,
	// empty translated keyword NUL, text.
	body := []byte("Description\x00\x00\x00\x00\x00a night scene")
	path := writePNG(t, pngChunk("iTXt", body))

	var info types.ImageInfo
	readPNGText(path, &info)

	if info.PNGText["Description"] != "a night scene" {
		t.Errorf("got %v", info.PNGText)
	}
}

func TestReadPNGText_CompressedITXtSkipped(t *testing.T) {
	body := []byte("Description\x00\x01\x00\x00\x00compressed bytes")
	path := writePNG(t, pngChunk("iTXt", body))

	var info types.ImageInfo
	readPNGText(path, &info)

	if len(info.PNGText) != 0 {
		t.Errorf("expected compressed entry skipped, got %v", info.PNGText)
	}
}

func TestReadPNGText_NotPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.png")
	if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	var info types.ImageInfo
	readPNGText(path, &info)
	if info.PNGSoftware != "" || len(info.PNGText) != 0 {
		t.Error("expected nothing from a non-PNG file")
	}
}

func TestDecodeTextChunk_MissingSeparator(t *testing.T) {
	key, value := decodeTextChunk("tEXt", []byte("no separator here"))
	if key != "" || value != "" {
		t.Errorf("expected empty pair, got %q=%q", key, value)
	}
}

func TestStoreText_SkipsEmpty(t *testing.T) {
	var info types.ImageInfo
	storeText(&info, "", "value")
	storeText(&info, "Key", "")
	if len(info.PNGText) != 0 {
		t.Errorf("expected nothing stored, got %v", info.PNGText)
	}
}
