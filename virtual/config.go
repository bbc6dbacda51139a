package virtual

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/mctaylorpants/alextaylor-ca/article"
	"github.com/mctaylorpants/alextaylor-ca/content"
	"github.com/pelletier/go-toml/v2"
)

// configFile is the name of the site configuration at the root.
const configFile = "blog.cfg"

// Config contains configuration data from the blog.cfg file.
type Config struct {
	Title         string            `toml:"title"`
	Expires       content.Duration  `toml:"expires"`
	StaticExpires content.Duration  `toml:"staticexpires"`
	Headers       map[string]string `toml:"headers"`
	Renderer      string            `toml:"renderer"` // "blackfriday" or "goldmark"
	Articles      ArticlesConfig    `toml:"articles"`
}

// ArticlesConfig controls how articles are collected for listings and
// previous/next navigation.
type ArticlesConfig struct {
	Folder       string        `toml:"folder"`       // Folder holding the articles
	Order        article.Order `toml:"order"`        // "ascending" or "descending"
	Kind         string        `toml:"kind"`         // Kind of content counted as an article
	SummaryWords int           `toml:"summarywords"` // Default length of summaries
}

func defaultConfig() Config {
	return Config{
		Renderer: content.Blackfriday,
		Articles: ArticlesConfig{
			Folder:       "articles",
			Order:        article.Descending,
			Kind:         article.DefaultKind,
			SummaryWords: 50,
		},
	}
}

// Config returns a copy of the configuration read from the blog.cfg file.
func (vfs *FS) Config() *Config {
	cfg := vfs.cfg
	if cfg.Headers != nil {
		cfg.Headers = make(map[string]string, len(vfs.cfg.Headers))
		for k, v := range vfs.cfg.Headers {
			cfg.Headers[k] = v
		}
	}
	return &cfg
}

// readConfig reads blog.cfg from fsys on top of the defaults.
// It is not an error if the file does not exist.
func readConfig(fsys fs.FS) (Config, error) {
	cfg := defaultConfig()
	cfgBytes, err := fs.ReadFile(fsys, configFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("Cannot read config file: %w", err)
	}
	err = toml.Unmarshal(cfgBytes, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("Cannot parse config file: %w", err)
	}
	return cfg, nil
}
