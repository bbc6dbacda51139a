package content_test

import (
	"io/fs"
	"testing"
	"testing/fstest"
	"time"

	"github.com/mctaylorpants/alextaylor-ca/article"
	"github.com/mctaylorpants/alextaylor-ca/content"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

func siteFS() fstest.MapFS {
	mod := time.Date(2019, 7, 1, 0, 0, 0, 0, time.UTC)
	return fstest.MapFS{
		"index.md":                  {Data: []byte("+++\ntitle = \"Home\"\n+++\nWelcome")},
		"articles/index.md":         {Data: []byte("+++\ntitle = \"Articles\"\n+++\n")},
		"articles/first.md":         {Data: []byte("+++\ntitle = \"First\"\ndate = 2020-01-01T00:00:00Z\n+++\nOne")},
		"articles/second.md":        {Data: []byte("---\ntitle: Second\ncreated_at: 2021-01-01 12:00:00 +0000\ntags: [go]\n---\nTwo")},
		"articles/untitled.md":      {Data: []byte("No front matter"), ModTime: mod},
		"articles/future.md":        {Data: []byte("+++\ntitle = \"Future\"\ndate = 2030-01-01T00:00:00Z\n+++\n")},
		"articles/broken.md":        {Data: []byte("+++\ntitle = \n+++\n")},
		"articles/note.md":          {Data: []byte("+++\ntitle = \"Note\"\nkind = \"note\"\ndate = 2021-06-01T00:00:00Z\n+++\n")},
		"articles/photo.png":        {Data: []byte("png")},
		"articles/.draft.md":        {Data: []byte("hidden")},
		"articles/2022/nested.md":   {Data: []byte("+++\ndate = 2022-02-02T00:00:00Z\n+++\nDeep")},
		"articles/template/x.md":    {Data: []byte("+++\ntitle = \"Templates\"\ndate = 2021-03-01T00:00:00Z\n+++\nNested folder")},
		"articles/moved.md":         {Data: []byte("+++\ndate = 2020-06-01T00:00:00Z\nredirect = \"/articles/first.html\"\n+++\n")},
		"articles/gone.md":          {Data: []byte("---\ntitle: Gone\ncreated_at: 2021-02-02\nredirect: /articles/second.html\n---\n")},
		"template/notes.md":         {Data: []byte("+++\ntitle = \"Site template notes\"\n+++\n")},
		"articles/.git/HEAD.md":     {Data: []byte("not content")},
		"pages/about.md":            {Data: []byte("+++\ntitle = \"About\"\n+++\n")},
		"template/default.html":     {Data: []byte("{{.Content}}")},
		"articles/2022/nested.html": {Data: []byte("static")},
	}
}

func byID(articles []article.Article) map[string]article.Article {
	m := make(map[string]article.Article, len(articles))
	for _, a := range articles {
		m[a.ID] = a
	}
	return m
}

func TestLoad(t *testing.T) {
	got, err := content.Load(siteFS(), "articles", content.LoadOptions{Kind: article.DefaultKind, Now: now})
	require.NoError(t, err)
	m := byID(got)
	require.Len(t, m, 5)

	first := m["articles/first"]
	require.Equal(t, "First", first.Title)
	require.Equal(t, article.DefaultKind, first.Kind)
	require.Equal(t, "One", string(first.Body))

	second := m["articles/second"]
	require.Equal(t, []string{"go"}, second.Tags)
	require.True(t, time.Date(2021, 1, 1, 12, 0, 0, 0, time.UTC).Equal(second.Created))

	untitled := m["articles/untitled"]
	require.Equal(t, "untitled", untitled.Title)
	require.True(t, time.Date(2019, 7, 1, 0, 0, 0, 0, time.UTC).Equal(untitled.Created))

	nested := m["articles/2022/nested"]
	require.Equal(t, "nested", nested.Title)
	require.Equal(t, "Deep", string(nested.Body))

	// only the template folder at the root is hidden
	require.Equal(t, "Templates", m["articles/template/x"].Title)
}

func TestLoadSkipsRedirects(t *testing.T) {
	for _, kind := range []string{article.DefaultKind, ""} {
		got, err := content.Load(siteFS(), "articles", content.LoadOptions{Kind: kind, Now: now})
		require.NoError(t, err)
		m := byID(got)
		require.NotContains(t, m, "articles/moved", kind)
		require.NotContains(t, m, "articles/gone", kind)
	}
}

func TestLoadAllKinds(t *testing.T) {
	got, err := content.Load(siteFS(), "/articles/", content.LoadOptions{Now: now})
	require.NoError(t, err)
	m := byID(got)
	require.Contains(t, m, "articles/note")
	require.Equal(t, "note", m["articles/note"].Kind)
	require.NotContains(t, m, "articles/future")
	require.NotContains(t, m, "articles/broken")
	require.NotContains(t, m, "articles/index")
}

func TestLoadRoot(t *testing.T) {
	got, err := content.Load(siteFS(), ".", content.LoadOptions{Now: now})
	require.NoError(t, err)
	m := byID(got)
	require.Contains(t, m, "pages/about")
	require.Contains(t, m, "articles/first")
	require.NotContains(t, m, "index")
	require.NotContains(t, m, "template/default")
	require.NotContains(t, m, "template/notes")
	require.Contains(t, m, "articles/template/x")
}

func TestLoadFuture(t *testing.T) {
	got, err := content.Load(siteFS(), "articles", content.LoadOptions{Now: time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	require.Contains(t, byID(got), "articles/future")
}

func TestLoadMissingFolder(t *testing.T) {
	_, err := content.Load(siteFS(), "missing", content.LoadOptions{})
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadThenSort(t *testing.T) {
	got, err := content.Load(siteFS(), "articles", content.LoadOptions{Kind: article.DefaultKind, Now: now})
	require.NoError(t, err)
	c := article.Sort(got, article.Ascending)
	next, ok := c.Next("articles/first")
	require.True(t, ok)
	require.Equal(t, "articles/second", next.ID)
	prev, ok := c.Prev("articles/first")
	require.True(t, ok)
	require.Equal(t, "articles/untitled", prev.ID)
}
