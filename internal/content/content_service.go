package content

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// pageNamePattern restricts page slugs to safe path segments.
var pageNamePattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Page is a rendered site page.
type Page struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	HTML  string `json:"html"`
}

// Service renders markdown pages from a content directory. Rendered pages
// are cached until Invalidate; the page set is small and changes rarely.
type Service struct {
	dir string
	md  goldmark.Markdown

	mu    sync.Mutex
	cache map[string]*Page
}

func NewService(dir string) *Service {
	return &Service{
		dir: dir,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
		cache: make(map[string]*Page),
	}
}

// GetPage renders the named page. Returns os.ErrNotExist for unknown or
// invalid slugs so callers can map it to a 404.
func (s *Service) GetPage(slug string) (*Page, error) {
	if !pageNamePattern.MatchString(slug) {
		return nil, os.ErrNotExist
	}

	s.mu.Lock()
	if page, ok := s.cache[slug]; ok {
		s.mu.Unlock()
		return page, nil
	}
	s.mu.Unlock()

	source, err := os.ReadFile(filepath.Join(s.dir, slug+".md"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, os.ErrNotExist
		}
		return nil, fmt.Errorf("read page %q: %w", slug, err)
	}

	var buf bytes.Buffer
	if err := s.md.Convert(source, &buf); err != nil {
		return nil, fmt.Errorf("render page %q: %w", slug, err)
	}

	page := &Page{
		Slug:  slug,
		Title: extractTitle(source, slug),
		HTML:  buf.String(),
	}

	s.mu.Lock()
	s.cache[slug] = page
	s.mu.Unlock()
	return page, nil
}

// ListPages returns the slugs of every markdown file in the content directory.
func (s *Service) ListPages() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}

	slugs := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}
		slug := strings.TrimSuffix(name, ".md")
		if pageNamePattern.MatchString(slug) {
			slugs = append(slugs, slug)
		}
	}
	return slugs, nil
}

// Invalidate drops the rendered cache, forcing the next read to hit disk.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.cache = make(map[string]*Page)
	s.mu.Unlock()
}

// extractTitle takes the first top-level heading, falling back to a
// title-cased slug.
func extractTitle(source []byte, slug string) string {
	for _, line := range strings.Split(string(source), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}

	words := strings.Split(slug, "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
