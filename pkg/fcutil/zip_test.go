package fcutil

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func writeTestTree(t *testing.T) string {
	dir, err := ioutil.TempDir("", "fcutil-test")
	if err != nil {
		t.Fatalf("Test setup failed: %v\n", err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "lib"), 0755); err != nil {
		t.Fatalf("Test setup failed: %v\n", err)
	}
	if err := ioutil.WriteFile(filepath.Join(dir, "index.py"), []byte("def handler(e, c):\n    return e\n"), 0644); err != nil {
		t.Fatalf("Test setup failed: %v\n", err)
	}
	if err := ioutil.WriteFile(filepath.Join(dir, "lib", "util.py"), []byte("x = 1\n"), 0644); err != nil {
		t.Fatalf("Test setup failed: %v\n", err)
	}
	return dir
}

func TestWriteZip(t *testing.T) {
	dir := writeTestTree(t)
	defer os.RemoveAll(dir)

	var buf bytes.Buffer
	if err := WriteZip(&buf, dir, dir); err != nil {
		t.Fatalf("Failed to zip directory: %v\n", err)
	}

	reader, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("Output is not a valid zip archive: %v\n", err)
	}

	names := map[string]bool{}
	for _, f := range reader.File {
		names[f.Name] = true
	}
	if !names["index.py"] || !names[filepath.Join("lib", "util.py")] {
		t.Fatalf("Archive missing expected entries, got: %v\n", names)
	}
}

func TestZipDirBase64(t *testing.T) {
	dir := writeTestTree(t)
	defer os.RemoveAll(dir)

	encoded, err := ZipDirBase64(dir)
	if err != nil {
		t.Fatalf("Failed to package directory: %v\n", err)
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("Output is not valid base64: %v\n", err)
	}
	if _, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw))); err != nil {
		t.Fatalf("Decoded payload is not a valid zip archive: %v\n", err)
	}
}
