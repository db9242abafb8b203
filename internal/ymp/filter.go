package ymp

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// releasePattern finds the first dotted numeric release in a distribution
// name, e.g. "15.6" in "openSUSE Leap 15.6".
var releasePattern = regexp.MustCompile(`\d+(?:\.\d+){0,2}`)

// Recommended returns the descriptors marked recommended, in order.
func Recommended(descriptors []Descriptor) []Descriptor {
	out := []Descriptor{}
	for _, d := range descriptors {
		if d.Recommended {
			out = append(out, d)
		}
	}
	return out
}

// FilterDist keeps descriptors whose distribution release satisfies a
// semver constraint such as ">= 15.0" or "~13". Descriptors whose
// dist_version carries no numeric release (rolling distributions like
// "openSUSE Factory") never match. An empty constraint returns the input.
func FilterDist(descriptors []Descriptor, constraint string) ([]Descriptor, error) {
	constraint = strings.TrimSpace(constraint)
	if constraint == "" {
		return descriptors, nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return nil, fmt.Errorf("parsing dist constraint %q: %w", constraint, err)
	}

	out := []Descriptor{}
	for _, d := range descriptors {
		v, ok := DistRelease(d.DistVersion)
		if ok && c.Check(v) {
			out = append(out, d)
		}
	}
	return out, nil
}

// DistRelease extracts the numeric release from a distribution name.
func DistRelease(distVersion string) (*semver.Version, bool) {
	m := releasePattern.FindString(distVersion)
	if m == "" {
		return nil, false
	}
	v, err := semver.NewVersion(m)
	if err != nil {
		return nil, false
	}
	return v, true
}
