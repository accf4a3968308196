// Package source loads books from TOML manifests.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"booklike/internal/domain"
)

// ErrEmptyBook is returned for a manifest without pages
var ErrEmptyBook = errors.New("book has no pages")

// Book is a titled sequence of pages
type Book struct {
	Title string
	Pages []domain.Page
}

type manifest struct {
	Title string      `toml:"title"`
	Pages []pageEntry `toml:"page"`
}

type pageEntry struct {
	Title    string `toml:"title"`
	Body     string `toml:"body"`
	Action   string `toml:"action"`
	Animated bool   `toml:"animated"`
}

// Load reads a manifest file
func Load(path string) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open book: %w", err)
	}
	defer f.Close()

	b, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Parse decodes a manifest. Unknown keys are rejected.
func Parse(r io.Reader) (*Book, error) {
	var m manifest
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		var de *toml.DecodeError
		if errors.As(err, &de) {
			row, col := de.Position()
			return nil, fmt.Errorf("failed to parse book at line %d column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("failed to parse book: %w", err)
	}
	if len(m.Pages) == 0 {
		return nil, ErrEmptyBook
	}

	b := &Book{Title: m.Title, Pages: make([]domain.Page, len(m.Pages))}
	for i, e := range m.Pages {
		b.Pages[i] = domain.Page{
			ID:       domain.PageID(i),
			Title:    e.Title,
			Body:     strings.TrimRight(e.Body, "\n"),
			ActionID: e.Action,
			Animated: e.Animated,
		}
	}
	return b, nil
}
