package ymp

import (
	"errors"
	"testing"
)

func TestValidateFile_Valid(t *testing.T) {
	validFiles := []string{
		"factory.ymp",
		"two-groups.ymp",
		"namespaced.ymp",
		"default-namespace.ymp",
		"no-groups.ymp",
	}

	for _, file := range validFiles {
		t.Run(file, func(t *testing.T) {
			result, err := ValidateFile(testPath(file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) error: %v", file, err)
			}
			if !result.Valid {
				t.Errorf("expected valid, got invalid with %d issues:", len(result.Issues))
				for _, issue := range result.Issues {
					t.Errorf("  %s (keyword=%s)", issue, issue.Keyword)
				}
			}
		})
	}
}

func TestValidateFile_Invalid(t *testing.T) {
	result, err := ValidateFile(testPath("invalid.ymp"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid, got valid")
	}

	paths := map[string]bool{}
	for _, issue := range result.Issues {
		if issue.Index != 0 {
			t.Errorf("issue reported against repository %d, only repository 0 is broken: %s", issue.Index, issue)
		}
		if issue.Message == "" {
			t.Errorf("issue without message: %+v", issue)
		}
		paths[issue.Path] = true
	}

	for _, want := range []string{"/url", "/format", "/alias", "/name/locales"} {
		if !paths[want] {
			t.Errorf("missing issue for %s; got paths %v", want, paths)
		}
	}
}

func TestValidateFile_EmptyURL(t *testing.T) {
	result, err := ValidateFile(testPath("attributes.ymp"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid for repositories without url")
	}

	broken := map[int]bool{}
	for _, issue := range result.Issues {
		if issue.Path == "/url" {
			broken[issue.Index] = true
		}
	}
	if !broken[0] || !broken[1] {
		t.Errorf("expected url issues for repositories 0 and 1, got %v", broken)
	}
	if broken[2] {
		t.Error("file:// url reported as invalid")
	}
}

func TestValidateFile_LoadErrors(t *testing.T) {
	tests := []struct {
		file string
		want error
	}{
		{"nonexistent.ymp", ErrNotFound},
		{"malformed.ymp", ErrSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			_, err := ValidateFile(testPath(tt.file))
			if !errors.Is(err, tt.want) {
				t.Errorf("ValidateFile(%s) error = %v, want %v", tt.file, err, tt.want)
			}
		})
	}
}

func TestValidate_Empty(t *testing.T) {
	result, err := Validate(nil)
	if err != nil {
		t.Fatalf("Validate(nil) error: %v", err)
	}
	if !result.Valid || len(result.Issues) != 0 {
		t.Errorf("Validate(nil) = %+v, want valid with no issues", result)
	}
}

func TestIssueSet_DropsRepeats(t *testing.T) {
	set := issueSet{seen: map[issueKey]bool{}}
	set.add(ValidationIssue{Path: "/url", Keyword: "pattern", Message: "m"})
	set.add(ValidationIssue{Path: "/url", Keyword: "pattern", Message: "m"})
	set.add(ValidationIssue{Path: "/url", Keyword: "minLength", Message: "m"})

	if len(set.issues) != 2 {
		t.Fatalf("issues = %d, want 2", len(set.issues))
	}
	if set.issues[1].Keyword != "minLength" {
		t.Errorf("second issue keyword = %q, want minLength", set.issues[1].Keyword)
	}
}

func TestInstancePath(t *testing.T) {
	tests := []struct {
		loc  []string
		want string
	}{
		{nil, ""},
		{[]string{"url"}, "/url"},
		{[]string{"name", "locales"}, "/name/locales"},
	}
	for _, tt := range tests {
		if got := instancePath(tt.loc); got != tt.want {
			t.Errorf("instancePath(%v) = %q, want %q", tt.loc, got, tt.want)
		}
	}
}
