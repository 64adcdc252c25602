// Package msgcat renders player-facing messages from YAML catalogs.
package msgcat

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	yaml "gopkg.in/yaml.v3"
)

// BaseLocale is the locale every other catalog falls back to.
const BaseLocale = "en"

//go:embed messages.*.yaml
var embeddedFS embed.FS

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Catalog holds the messages of all loaded locales.
type Catalog struct {
	builder *catalog.Builder
	keys    map[string]map[string]bool // locale -> keys
	tags    []language.Tag
}

// Printer renders messages for one locale.
type Printer struct {
	p    *message.Printer
	keys map[string]bool
	tag  language.Tag
}

// LoadEmbedded loads the catalogs shipped with the binary.
func LoadEmbedded() (*Catalog, error) {
	return LoadFromFS(embeddedFS)
}

// LoadFromFS loads every messages.<locale>.yaml file in fsys.
func LoadFromFS(fsys fs.FS) (*Catalog, error) {
	paths, err := fs.Glob(fsys, "messages.*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, errors.New("no catalog files found")
	}
	sort.Strings(paths)

	c := &Catalog{
		builder: catalog.NewBuilder(catalog.Fallback(language.MustParse(BaseLocale))),
		keys:    map[string]map[string]bool{},
	}
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		if err := c.add(path, data); err != nil {
			return nil, err
		}
	}
	if _, ok := c.keys[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	return c, nil
}

func (c *Catalog) add(path string, data []byte) error {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse catalog %s: %w", path, err)
	}
	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		return fmt.Errorf("catalog %s: locale is required", path)
	}
	if want := strings.TrimSuffix(strings.TrimPrefix(path, "messages."), ".yaml"); want != locale {
		return fmt.Errorf("catalog %s: locale %q must match file name locale %q", path, locale, want)
	}
	if _, exists := c.keys[locale]; exists {
		return fmt.Errorf("catalog %s: locale %q already loaded", path, locale)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("catalog %s: parse locale tag %q: %w", path, locale, err)
	}

	keys := make(map[string]bool, len(file.Messages))
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", path)
		}
		if err := c.builder.SetString(tag, key, value); err != nil {
			return fmt.Errorf("catalog %s: key %q: %w", path, key, err)
		}
		keys[key] = true
	}
	c.keys[locale] = keys
	c.tags = append(c.tags, tag)
	return nil
}

// Locales returns the loaded locale identifiers.
func (c *Catalog) Locales() []string {
	out := make([]string, 0, len(c.keys))
	for locale := range c.keys {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Printer returns a printer for the closest loaded match of locale.
func (c *Catalog) Printer(locale string) *Printer {
	tag := language.MustParse(BaseLocale)
	if requested, err := language.Parse(strings.TrimSpace(locale)); err == nil {
		_, idx, conf := language.NewMatcher(c.tags).Match(requested)
		if conf != language.No {
			tag = c.tags[idx]
		}
	}
	keys := c.keys[tag.String()]
	if keys == nil {
		keys = c.keys[BaseLocale]
	}
	return &Printer{
		p:    message.NewPrinter(tag, message.Catalog(c.builder)),
		keys: keys,
		tag:  tag,
	}
}

// Locale returns the locale the printer renders.
func (p *Printer) Locale() string {
	return p.tag.String()
}

// Has reports whether key is defined for the printer's locale.
func (p *Printer) Has(key string) bool {
	return p.keys[key]
}

// Sprintf renders the message stored under key.
func (p *Printer) Sprintf(key string, args ...any) string {
	return p.p.Sprintf(key, args...)
}

// Error renders err through its message key when it has one, and falls back
// to err.Error() otherwise.
func (p *Printer) Error(err error) string {
	var keyed interface{ Key() string }
	if errors.As(err, &keyed) && p.Has(keyed.Key()) {
		return p.Sprintf(keyed.Key())
	}
	return err.Error()
}
