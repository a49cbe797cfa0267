package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adsc-atmiya/website/internal/markdown"
	"github.com/adsc-atmiya/website/internal/model"
)

var ErrEventNotFound = errors.New("event not found")

// Catalog is the read-only source of club events the newsletter announces.
// It is an interface so tests can substitute a fixed set of events.
type Catalog interface {
	ByID(id string) (*model.Event, error)
	List() ([]*model.Event, error)
}

// fileCatalog reads events from markdown files under <contentPath>/events.
// The file name (without extension) is the event id; frontmatter carries the
// structured fields and the markdown body becomes the description.
type fileCatalog struct {
	parser      *markdown.Parser
	contentPath string
}

func New(contentPath string) Catalog {
	return &fileCatalog{
		parser:      markdown.NewParser(),
		contentPath: contentPath,
	}
}

func (c *fileCatalog) List() ([]*model.Event, error) {
	pattern := filepath.Join(c.contentPath, "events", "*.md")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}

	var events []*model.Event
	for _, file := range files {
		id := filepath.Base(file)
		id = id[:len(id)-len(".md")]

		event, err := c.ByID(id)
		if err != nil {
			continue
		}
		events = append(events, event)
	}

	return events, nil
}

func (c *fileCatalog) ByID(id string) (*model.Event, error) {
	// The id names a file inside the events directory; anything carrying
	// path elements is treated as unknown rather than joined into the path.
	if id == "" || filepath.Base(id) != id {
		return nil, fmt.Errorf("%w: %s", ErrEventNotFound, id)
	}

	path := filepath.Join(c.contentPath, "events", id+".md")
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEventNotFound, id)
	}

	htmlContent, meta, err := c.parser.ParseWithFrontmatter(source)
	if err != nil {
		return nil, err
	}

	event := &model.Event{
		ID:          id,
		Description: string(htmlContent),
	}

	name, ok := meta["name"].(string)
	if ok {
		event.Name = name
	}

	date, ok := meta["date"].(string)
	if ok {
		event.Date = date
	}

	category, ok := meta["category"].(string)
	if ok {
		event.Category = category
	}

	registerURL, ok := meta["register_url"].(string)
	if ok {
		event.RegisterURL = registerURL
	}

	viewURL, ok := meta["view_url"].(string)
	if ok {
		event.ViewURL = viewURL
	}

	return event, nil
}
