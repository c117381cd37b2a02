package infrastructure

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// Font files the document stylesheet expects in the fonts directory.
const (
	FontRegular    = "Roboto-Regular.ttf"
	FontBold       = "Roboto-Medium.ttf"
	FontItalic     = "Roboto-Italic.ttf"
	FontBoldItalic = "Roboto-MediumItalic.ttf"
)

// FontSet holds absolute paths of the four font variants.
type FontSet struct {
	Regular    string
	Bold       string
	Italic     string
	BoldItalic string
}

// LoadFontSet resolves the font files in dir. Every missing or unreadable
// file is reported in the returned error.
func LoadFontSet(dir string) (FontSet, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return FontSet{}, fmt.Errorf("resolve fonts dir %q: %w", dir, err)
	}

	var errs []error
	resolve := func(name string) string {
		p := filepath.Join(abs, name)
		info, err := os.Stat(p)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("font %s: %w", name, err))
		case info.IsDir():
			errs = append(errs, fmt.Errorf("font %s: is a directory", name))
		}
		return p
	}

	fs := FontSet{
		Regular:    resolve(FontRegular),
		Bold:       resolve(FontBold),
		Italic:     resolve(FontItalic),
		BoldItalic: resolve(FontBoldItalic),
	}
	if err := errors.Join(errs...); err != nil {
		return FontSet{}, err
	}
	return fs, nil
}

// Paths lists the font files in regular, bold, italic, bold italic order.
func (f FontSet) Paths() []string {
	return []string{f.Regular, f.Bold, f.Italic, f.BoldItalic}
}

// URLs returns the same set with every path turned into a file:// URL.
func (f FontSet) URLs() FontSet {
	return FontSet{
		Regular:    FileURL(f.Regular),
		Bold:       FileURL(f.Bold),
		Italic:     FileURL(f.Italic),
		BoldItalic: FileURL(f.BoldItalic),
	}
}

// FileURL turns an absolute filesystem path into a file:// URL.
func FileURL(path string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u.String()
}
