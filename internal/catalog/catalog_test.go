package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hackathonMD = `---
name: Hack The Campus 2026
date: 4 April 2026
category: Hackathon
register_url: https://adsc-atmiya.in/register/hack-the-campus
---

A **24-hour** hackathon open to all Atmiya students.
`

const seminarMD = `---
name: Cloud Careers Seminar
date: 19 September 2026
category: Seminar
view_url: https://adsc-atmiya.in/events/cloud-careers
---

Industry speakers on cloud careers.
`

func writeContent(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	eventsDir := filepath.Join(dir, "events")
	require.NoError(t, os.MkdirAll(eventsDir, 0o755))

	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(eventsDir, name), []byte(body), 0o644))
	}

	return dir
}

func TestCatalogByID(t *testing.T) {
	dir := writeContent(t, map[string]string{"hack-the-campus.md": hackathonMD})
	cat := New(dir)

	t.Run("parses frontmatter and body", func(t *testing.T) {
		event, err := cat.ByID("hack-the-campus")
		require.NoError(t, err)

		assert.Equal(t, "hack-the-campus", event.ID)
		assert.Equal(t, "Hack The Campus 2026", event.Name)
		assert.Equal(t, "4 April 2026", event.Date)
		assert.Equal(t, "Hackathon", event.Category)
		assert.Equal(t, "https://adsc-atmiya.in/register/hack-the-campus", event.RegisterURL)
		assert.Empty(t, event.ViewURL)

		assert.Contains(t, event.Description, "<strong>24-hour</strong>")
		assert.NotContains(t, event.Description, "---", "frontmatter stripped from the body")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := cat.ByID("nope")
		require.ErrorIs(t, err, ErrEventNotFound)
	})

	t.Run("id cannot escape the events directory", func(t *testing.T) {
		escDir := writeContent(t, map[string]string{"hack-the-campus.md": hackathonMD})
		require.NoError(t, os.WriteFile(filepath.Join(escDir, "outside.md"), []byte(hackathonMD), 0o644))

		escCat := New(escDir)
		for _, id := range []string{"../outside", "events/../../outside", "/etc/passwd", ""} {
			_, err := escCat.ByID(id)
			require.ErrorIs(t, err, ErrEventNotFound, "id %q", id)
		}
	})
}

func TestCatalogList(t *testing.T) {
	t.Run("collects every event file", func(t *testing.T) {
		dir := writeContent(t, map[string]string{
			"hack-the-campus.md": hackathonMD,
			"cloud-careers.md":   seminarMD,
		})

		events, err := New(dir).List()
		require.NoError(t, err)
		require.Len(t, events, 2)

		names := []string{events[0].Name, events[1].Name}
		assert.Contains(t, names, "Hack The Campus 2026")
		assert.Contains(t, names, "Cloud Careers Seminar")
	})

	t.Run("empty content directory", func(t *testing.T) {
		events, err := New(t.TempDir()).List()
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestEventLink(t *testing.T) {
	dir := writeContent(t, map[string]string{
		"hack-the-campus.md": hackathonMD,
		"cloud-careers.md":   seminarMD,
	})
	cat := New(dir)

	hack, err := cat.ByID("hack-the-campus")
	require.NoError(t, err)
	assert.Equal(t, "https://adsc-atmiya.in/register/hack-the-campus", hack.Link(), "register link wins")

	seminar, err := cat.ByID("cloud-careers")
	require.NoError(t, err)
	assert.Equal(t, "https://adsc-atmiya.in/events/cloud-careers", seminar.Link(), "falls back to the view link")
}
