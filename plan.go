package ragbuild

import (
	"net/url"
	"path/filepath"
	"strings"
)

// ClonePlan is one directive to materialize a documentation source
// locally. Plans are created once per ComponentAssignment and
// consumed exactly once by the build orchestrator.
type ClonePlan struct {
	ComponentName string `json:"componentName"`
	TargetDir     string `json:"targetDir"`
	RepositoryURL string `json:"repositoryUrl"`
	Ref           string `json:"ref"`
}

// Slug converts a component name into a filesystem-safe directory
// name. The transformation is fixed and reversible via Unslug, so two
// distinct component names can never produce the same slug.
func Slug(componentName string) string {
	return url.PathEscape(componentName)
}

// Unslug inverts Slug.
func Unslug(slug string) (string, error) {
	name, err := url.PathUnescape(slug)
	if err != nil {
		return "", Errorf(EINVALID, "invalid slug %q: %v", slug, err)
	}
	return name, nil
}

// reservedSlugs are directory names the build itself claims inside
// the work dir: the render output and the playbook.
var reservedSlugs = map[string]bool{
	"public":   true,
	"site.yml": true,
}

// PlanClones converts assignments into clone plans rooted at baseDir.
// It fails with ECONFLICT if any two assignments would collide on
// target directory, checked case-insensitively so a collision is
// caught before any clone runs even on case-folding filesystems.
// Component names that would resolve at or above baseDir ("." and
// "..", which url.PathEscape leaves unescaped) are rejected with
// EINVALID, and names that collide with the build's own files in the
// work dir fail with ECONFLICT.
func PlanClones(assignments []ComponentAssignment, baseDir string) ([]ClonePlan, error) {
	plans := make([]ClonePlan, 0, len(assignments))
	seen := make(map[string]string) // folded slug -> component name

	for _, a := range assignments {
		slug := Slug(a.ComponentName)
		if slug == "." || slug == ".." {
			return nil, Errorf(EINVALID, "component name %q would resolve outside the target directory", a.ComponentName)
		}
		folded := strings.ToLower(slug)
		if reservedSlugs[folded] {
			return nil, Errorf(ECONFLICT, "component %q maps to reserved directory name %q", a.ComponentName, slug)
		}
		if prev, ok := seen[folded]; ok {
			return nil, Errorf(ECONFLICT, "components %q and %q map to the same target directory %q", prev, a.ComponentName, slug)
		}
		seen[folded] = a.ComponentName

		plans = append(plans, ClonePlan{
			ComponentName: a.ComponentName,
			TargetDir:     filepath.Join(baseDir, slug),
			RepositoryURL: a.Chosen.RepositoryURL,
			Ref:           a.Chosen.Ref,
		})
	}

	return plans, nil
}
