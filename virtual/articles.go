package virtual

import (
	"html/template"

	"github.com/mctaylorpants/alextaylor-ca/article"
	"github.com/mctaylorpants/alextaylor-ca/content"
	log "github.com/sirupsen/logrus"
)

// articles loads the articles in folder and sorts them in the configured
// order. It is used in templates, and a fresh collection is built on every
// call so that newly published articles appear without a restart.
func (vfs *FS) articles(folder string) article.Collection {
	if folder == "" {
		folder = vfs.cfg.Articles.Folder
	}
	list, err := content.Load(vfs.fs, folder, content.LoadOptions{
		Kind: vfs.cfg.Articles.Kind,
		Now:  vfs.now(),
	})
	if err != nil {
		log.WithField("folder", folder).Errorf("articles: %s", err)
	}
	return article.Sort(list, vfs.cfg.Articles.Order)
}

// next returns the article after id in c, or nil so templates can omit the link.
func next(c article.Collection, id string) *article.Article {
	a, ok := c.Next(id)
	if !ok {
		return nil
	}
	return &a
}

// prev returns the article before id in c, or nil so templates can omit the link.
func prev(c article.Collection, id string) *article.Article {
	a, ok := c.Prev(id)
	if !ok {
		return nil
	}
	return &a
}

// articleHTML renders the Markdown body of an article.
func (vfs *FS) articleHTML(a article.Article) template.HTML {
	b, err := vfs.renderer.Render(a.Body)
	if err != nil {
		log.WithField("article", a.ID).Errorf("articlehtml: %s", err)
		return ""
	}
	return template.HTML(b)
}

// summary returns a plain-text summary of an article. The optional word
// count defaults to the configured summary length.
func (vfs *FS) summary(a article.Article, words ...int) string {
	n := vfs.cfg.Articles.SummaryWords
	if len(words) > 0 {
		n = words[0]
	}
	b, err := vfs.renderer.Render(a.Body)
	if err != nil {
		log.WithField("article", a.ID).Errorf("summary: %s", err)
		return ""
	}
	return content.Summary(b, n)
}
