package ymp

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/beevik/etree"
	"github.com/charmbracelet/log"
)

var (
	// ErrNotFound is returned when the document path does not resolve to a
	// readable file.
	ErrNotFound = errors.New("repository description not found")

	// ErrSyntax is returned when the document is not well-formed XML.
	ErrSyntax = errors.New("malformed repository description")
)

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger that receives failure diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithExists replaces the file-existence check consulted before reading.
func WithExists(exists func(path string) bool) Option {
	return func(p *Parser) {
		if exists != nil {
			p.exists = exists
		}
	}
}

// Parser reads repository descriptions from the filesystem. A Parser holds
// no per-document state and may be shared between goroutines.
type Parser struct {
	logger *log.Logger
	exists func(path string) bool
}

// NewParser returns a Parser that logs through the default charm logger and
// checks existence with os.Stat unless overridden by options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		logger: log.Default(),
		exists: fileExists,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads the document at path and returns its repositories in
// document order. It never fails: a missing file or malformed XML is logged
// at error level and yields an empty, non-nil slice.
func Parse(path string) []Descriptor {
	return NewParser().Parse(path)
}

// Load is Parse with an explicit outcome. Errors wrap ErrNotFound or ErrSyntax.
func Load(path string) ([]Descriptor, error) {
	return NewParser().Load(path)
}

// Parse reads the document at path. See the package-level Parse.
func (p *Parser) Parse(path string) []Descriptor {
	descriptors, err := p.Load(path)
	if err != nil {
		p.logger.Error("cannot parse repository description", "path", path, "err", err)
		return []Descriptor{}
	}
	p.logger.Debug("parsed repository description", "path", path, "repositories", len(descriptors))
	return descriptors
}

// Load reads the document at path and returns its repositories or an error
// wrapping ErrNotFound or ErrSyntax.
func (p *Parser) Load(path string) ([]Descriptor, error) {
	if !p.exists(path) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading file %s: %w", ErrNotFound, path, err)
	}

	descriptors, err := ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return descriptors, nil
}

// ParseBytes parses document content already in memory. Structural gaps
// (no metapackage, no groups, missing attributes) are not errors; the only
// failure is malformed XML, reported as ErrSyntax.
func ParseBytes(data []byte) ([]Descriptor, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = false
	doc.ReadSettings.PreserveDuplicateAttrs = true

	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	if err := checkWellFormed(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	return collect(doc), nil
}

// checkWellFormed rejects what the etree reader lets through: zero or
// several root elements, text outside the root, and repeated attributes.
func checkWellFormed(doc *etree.Document) error {
	roots := doc.ChildElements()
	switch len(roots) {
	case 0:
		return errors.New("no root element")
	case 1:
	default:
		return fmt.Errorf("%d root elements", len(roots))
	}

	for _, tok := range doc.Child {
		if cd, ok := tok.(*etree.CharData); ok && strings.TrimSpace(cd.Data) != "" {
			return fmt.Errorf("text outside the root element: %q", strings.TrimSpace(cd.Data))
		}
	}

	return checkAttrs(roots[0])
}

// checkAttrs fails on the first element, in document order, that carries
// the same prefixed attribute name twice.
func checkAttrs(e *etree.Element) error {
	seen := make(map[string]bool, len(e.Attr))
	for _, a := range e.Attr {
		name := a.FullKey()
		if seen[name] {
			return fmt.Errorf("attribute %s repeated on <%s>", name, e.FullTag())
		}
		seen[name] = true
	}
	for _, child := range e.ChildElements() {
		if err := checkAttrs(child); err != nil {
			return err
		}
	}
	return nil
}

// collect walks metapackage/group/repositories/repository in document order.
func collect(doc *etree.Document) []Descriptor {
	descriptors := []Descriptor{}
	for _, group := range doc.FindElements(elemMetapackage + "/" + elemGroup) {
		distVersion := attrValue(group, attrDistVersion)
		for _, repo := range group.FindElements(elemRepositories + "/" + elemRepository) {
			descriptors = append(descriptors, describe(repo, distVersion))
		}
	}
	return descriptors
}

func describe(repo *etree.Element, distVersion string) Descriptor {
	d := Descriptor{
		DistVersion: distVersion,
		Format:      attrValue(repo, attrFormat),
		Name:        localized(repo, elemName),
		Description: localized(repo, elemDescription),
		Summary:     localized(repo, elemSummary),
	}

	if u := repo.SelectElement(elemURL); u != nil {
		d.URL = textContent(u)
	}
	if a := attr(repo, attrAlias); a != nil {
		alias := a.Value
		d.Alias = &alias
	}
	d.Recommended = attrValue(repo, attrRecommended) == "true"

	return d
}

// localized merges every tag child of repo. Children without a lang
// attribute overwrite the default; the rest land in Locales. Later
// elements win in both cases.
func localized(repo *etree.Element, tag string) LocalizedText {
	text := LocalizedText{Locales: map[string]string{}}
	for _, el := range repo.SelectElements(tag) {
		if lang := attr(el, attrLang); lang != nil {
			text.Locales[lang.Value] = textContent(el)
			continue
		}
		text.Default = textContent(el)
	}
	return text
}

// textContent joins the character data directly under e, CDATA included.
// Comments and processing instructions between the pieces are dropped.
func textContent(e *etree.Element) string {
	var b strings.Builder
	for _, tok := range e.Child {
		if cd, ok := tok.(*etree.CharData); ok {
			b.WriteString(cd.Data)
		}
	}
	return b.String()
}

// attr finds an attribute by local name, ignoring any prefix except xmlns
// declarations.
func attr(e *etree.Element, key string) *etree.Attr {
	for i := range e.Attr {
		a := &e.Attr[i]
		if a.Key == key && a.Space != "xmlns" {
			return a
		}
	}
	return nil
}

func attrValue(e *etree.Element, key string) string {
	if a := attr(e, key); a != nil {
		return a.Value
	}
	return ""
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
