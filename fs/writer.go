// Package fs provides output-path derivation and atomic file writing
// for rendered documents.
package fs

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/fwojciec/pagescribe"
)

// Extension returns the conventional file extension for a format,
// including the leading dot.
func Extension(format pagescribe.Format) string {
	switch format {
	case pagescribe.FormatMarkdown:
		return ".md"
	case pagescribe.FormatText:
		return ".txt"
	case pagescribe.FormatHTML:
		return ".html"
	case pagescribe.FormatPDF:
		return ".pdf"
	default:
		return ""
	}
}

// FormatForPath maps a file extension back to a format. Returns
// EUNSUPPORTED for extensions no renderer recognizes.
func FormatForPath(path string) (pagescribe.Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return pagescribe.FormatMarkdown, nil
	case ".txt", ".text":
		return pagescribe.FormatText, nil
	case ".html", ".htm":
		return pagescribe.FormatHTML, nil
	case ".pdf":
		return pagescribe.FormatPDF, nil
	default:
		return "", pagescribe.Errorf(pagescribe.EUNSUPPORTED, "no format known for %q", filepath.Ext(path))
	}
}

// OutputPath derives a default output file name from a page URL.
// Example: https://example.com/docs/Getting-Started → example.com-docs-getting-started.md
func OutputPath(rawURL string, format pagescribe.Format) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", pagescribe.Errorf(pagescribe.EINVALID, "invalid URL: %v", err)
	}

	name := slugify(u.Host + " " + u.Path)
	if name == "" {
		name = "page"
	}
	return name + Extension(format), nil
}

// WriteFile writes content to path atomically: the content lands in a
// temporary file beside path and is renamed into place, so failures
// never leave a partial file. Parent directories are created as
// needed.
func WriteFile(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

// slugify lowercases s and maps runs of non-alphanumeric characters to
// single hyphens.
func slugify(s string) string {
	var b strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			prevHyphen = false
		} else if !prevHyphen && b.Len() > 0 {
			b.WriteRune('-')
			prevHyphen = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
