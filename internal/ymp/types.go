package ymp

// LocalizedText is a text field with a default-locale value and any number
// of localized variants keyed by the literal lang attribute (e.g. "en_GB").
type LocalizedText struct {
	Default string            `yaml:"default" json:"default"`
	Locales map[string]string `yaml:"locales" json:"locales"`
}

// Descriptor is the normalized form of one <repository> element.
type Descriptor struct {
	DistVersion string        `yaml:"dist_version" json:"dist_version"`
	URL         string        `yaml:"url" json:"url"`
	Format      string        `yaml:"format" json:"format"`
	Alias       *string       `yaml:"alias,omitempty" json:"alias,omitempty"` // nil when the attribute is absent
	Recommended bool          `yaml:"recommended" json:"recommended"`
	Name        LocalizedText `yaml:"name" json:"name"`
	Description LocalizedText `yaml:"description" json:"description"`
	Summary     LocalizedText `yaml:"summary" json:"summary"`
}

// AliasOr returns the alias, or fallback when the attribute was absent.
func (d Descriptor) AliasOr(fallback string) string {
	if d.Alias == nil {
		return fallback
	}
	return *d.Alias
}

// Element and attribute names of the document format.
const (
	elemMetapackage  = "metapackage"
	elemGroup        = "group"
	elemRepositories = "repositories"
	elemRepository   = "repository"
	elemURL          = "url"
	elemName         = "name"
	elemDescription  = "description"
	elemSummary      = "summary"

	attrDistVersion = "distversion"
	attrFormat      = "format"
	attrAlias       = "alias"
	attrRecommended = "recommended"
	attrLang        = "lang"
)
