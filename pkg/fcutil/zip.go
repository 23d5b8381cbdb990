// Packaging helpers for function code uploads.
package fcutil

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// WriteZip writes a zip archive of srcPath to w. The paths in the archive
// are relative to basePath, so WriteZip(w, "foo/bar", "foo/bar") archives
// the contents of bar/ without the bar/ prefix.
func WriteZip(w io.Writer, basePath, srcPath string) error {
	zipWriter := zip.NewWriter(w)

	err := filepath.Walk(srcPath, func(filePath string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(basePath, filePath)
		if err != nil {
			return errors.Wrap(err, "Couldn't make relative path while zipping")
		}

		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}
		header.Name = relPath
		header.Method = zip.Deflate

		writer, err := zipWriter.CreateHeader(header)
		if err != nil {
			return err
		}

		sourceFile, err := os.Open(filePath)
		if err != nil {
			return err
		}
		defer sourceFile.Close()

		_, err = io.Copy(writer, sourceFile)
		return err
	})
	if err != nil {
		zipWriter.Close()
		return err
	}

	return zipWriter.Close()
}

// ZipDirBase64 packages srcPath into an in-memory zip archive and returns
// it base64-encoded, ready for the zipFile field of a function code upload.
func ZipDirBase64(srcPath string) (string, error) {
	var buf bytes.Buffer
	if err := WriteZip(&buf, srcPath, srcPath); err != nil {
		return "", errors.Wrap(err, "Failed to package "+srcPath)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
