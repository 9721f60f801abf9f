package test

import (
	"bytes"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// LoadTestFile loads a file from the testdata directory of the importer
// as a multipart form with the file in the "file" field.
//
// File contents are returned as a buffer and a map for the HTTP request headers
func LoadTestFile(t *testing.T, fileName string) (*bytes.Buffer, map[string]string) {
	f, err := os.Open(filepath.Join(testdataDir(t), fileName))
	require.Nil(t, err)
	defer f.Close()

	return MultipartFile(t, fileName, f)
}

// MultipartFile returns a multipart form with the content of r as the
// "file" field, named fileName.
func MultipartFile(t *testing.T, fileName string, r io.Reader) (*bytes.Buffer, map[string]string) {
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	w, err := mw.CreateFormFile("file", fileName)
	require.Nil(t, err)

	_, err = io.Copy(w, r)
	require.Nil(t, err)

	require.Nil(t, mw.Close())

	return body, map[string]string{"Content-Type": mw.FormDataContentType()}
}
