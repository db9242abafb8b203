package ymp

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/descriptor.schema.json
var schemaBytes []byte

var printer = message.NewPrinter(language.English)

// descriptorSchema compiles the embedded schema on first use.
var descriptorSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
	if err != nil {
		return nil, fmt.Errorf("decoding descriptor schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("descriptor.schema.json", doc); err != nil {
		return nil, fmt.Errorf("registering descriptor schema: %w", err)
	}
	sch, err := c.Compile("descriptor.schema.json")
	if err != nil {
		return nil, fmt.Errorf("compiling descriptor schema: %w", err)
	}
	return sch, nil
})

// ValidationResult contains the outcome of validating a set of descriptors.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue is a single schema violation.
type ValidationIssue struct {
	Index   int    // Position of the descriptor in document order
	Path    string // Instance location within the descriptor (e.g., "/url", "/name/locales")
	Message string // Human-readable error message
	Keyword string // Schema keyword that failed
}

func (i ValidationIssue) String() string {
	return fmt.Sprintf("repository %d %s: %s", i.Index, i.Path, i.Message)
}

// Validate checks each descriptor against the descriptor schema. Parsing
// never rejects a document on structure, so this is where empty URLs,
// unknown formats and odd locale keys are reported. The error return is
// for schema compilation or encoding failures only.
func Validate(descriptors []Descriptor) (*ValidationResult, error) {
	schema, err := descriptorSchema()
	if err != nil {
		return nil, err
	}

	result := &ValidationResult{Valid: true}
	for i, d := range descriptors {
		jsonData, err := json.Marshal(d)
		if err != nil {
			return nil, fmt.Errorf("encoding repository %d: %w", i, err)
		}

		inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
		if err != nil {
			return nil, fmt.Errorf("preparing repository %d for validation: %w", i, err)
		}

		err = schema.Validate(inst)
		if err == nil {
			continue
		}

		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			return nil, fmt.Errorf("validating repository %d: %w", i, err)
		}

		result.Valid = false
		result.Issues = append(result.Issues, issuesOf(i, ve)...)
	}
	return result, nil
}

// ValidateFile loads a document and validates its descriptors. Load
// failures (missing file, malformed XML) are returned as errors.
func ValidateFile(path string) (*ValidationResult, error) {
	descriptors, err := Load(path)
	if err != nil {
		return nil, err
	}
	return Validate(descriptors)
}

// issuesOf flattens the error tree of repository index into its leaves.
// The descriptor schema nests only through the $ref to the localized text
// definition, so a leaf is any error without causes. Bad locale keys surface
// as additionalProperties at /<field>/locales.
func issuesOf(index int, ve *jsonschema.ValidationError) []ValidationIssue {
	set := issueSet{seen: map[issueKey]bool{}}
	set.walk(index, ve)
	if len(set.issues) == 0 {
		return []ValidationIssue{{Index: index, Message: ve.Error()}}
	}
	return set.issues
}

type issueKey struct {
	path, keyword, message string
}

// issueSet keeps issues in discovery order, once each.
type issueSet struct {
	seen   map[issueKey]bool
	issues []ValidationIssue
}

func (s *issueSet) walk(index int, ve *jsonschema.ValidationError) {
	for _, cause := range ve.Causes {
		s.walk(index, cause)
	}
	if len(ve.Causes) > 0 || ve.ErrorKind == nil {
		return
	}

	kw := ve.ErrorKind.KeywordPath()
	if len(kw) == 0 {
		return
	}
	s.add(ValidationIssue{
		Index:   index,
		Path:    instancePath(ve.InstanceLocation),
		Keyword: kw[len(kw)-1],
		Message: ve.ErrorKind.LocalizedString(printer),
	})
}

func (s *issueSet) add(issue ValidationIssue) {
	k := issueKey{issue.Path, issue.Keyword, issue.Message}
	if s.seen[k] {
		return
	}
	s.seen[k] = true
	s.issues = append(s.issues, issue)
}

// instancePath renders a location as a JSON pointer; the descriptor itself is "".
func instancePath(loc []string) string {
	if len(loc) == 0 {
		return ""
	}
	return "/" + strings.Join(loc, "/")
}
