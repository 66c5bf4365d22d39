package ragbuild

import "fmt"

// ComponentAssignment maps one Antora component name to the single
// registry entry that will render it, recording every entry it
// shadowed in the process.
type ComponentAssignment struct {
	ComponentName string          `json:"componentName"`
	Chosen        RegistryEntry   `json:"chosen"`
	Shadowed      []RegistryEntry `json:"shadowed,omitempty"`
}

// DiagnosticKind classifies a non-fatal resolution finding.
type DiagnosticKind string

// Diagnostic kinds reported by ResolveComponents.
const (
	DiagnosticDuplicateComponent   DiagnosticKind = "duplicate_component"
	DiagnosticInvalidComponentName DiagnosticKind = "invalid_component_name"
)

// Diagnostic records a registry entry that was shadowed or dropped
// during component resolution. Diagnostics are reported even on an
// otherwise successful run; nothing is silently discarded.
type Diagnostic struct {
	Kind    DiagnosticKind `json:"kind"`
	Entry   RegistryEntry  `json:"entry"`
	Message string         `json:"message"`
}

// ResolveComponents resolves the raw registry into exactly one
// assignment per distinct valid component name.
//
// Entries with an empty or whitespace component name are excluded
// with an InvalidComponentName diagnostic. Within a group of entries
// sharing a component name, the winner is the entry with the lowest
// Priority; ties break to the lexicographically smallest repository
// URL so the outcome is reproducible across runs. The winner beats
// every other member of its group, not just a neighbor. Shadowed
// entries keep their input order and each produces a
// DuplicateComponent diagnostic.
//
// Assignments are ordered by the first appearance of each component
// name in the input. The function is a pure transformation: given the
// same input sequence, the output is always identical.
func ResolveComponents(entries []RegistryEntry) ([]ComponentAssignment, []Diagnostic) {
	var diags []Diagnostic

	// Group valid entries by component name, preserving both the
	// order of names and the order of entries within a group.
	groups := make(map[string][]RegistryEntry)
	var names []string
	for _, entry := range entries {
		if !entry.HasValidComponentName() {
			diags = append(diags, Diagnostic{
				Kind:    DiagnosticInvalidComponentName,
				Entry:   entry,
				Message: fmt.Sprintf("entry %s has an empty component name and was excluded", entry.RepositoryURL),
			})
			continue
		}
		if _, ok := groups[entry.ComponentName]; !ok {
			names = append(names, entry.ComponentName)
		}
		groups[entry.ComponentName] = append(groups[entry.ComponentName], entry)
	}

	assignments := make([]ComponentAssignment, 0, len(names))
	for _, name := range names {
		group := groups[name]

		winner := 0
		for i := 1; i < len(group); i++ {
			if beats(group[i], group[winner]) {
				winner = i
			}
		}

		assignment := ComponentAssignment{
			ComponentName: name,
			Chosen:        group[winner],
		}
		for i, entry := range group {
			if i == winner {
				continue
			}
			assignment.Shadowed = append(assignment.Shadowed, entry)
			diags = append(diags, Diagnostic{
				Kind:    DiagnosticDuplicateComponent,
				Entry:   entry,
				Message: fmt.Sprintf("component %q: %s shadowed by %s", name, entry.RepositoryURL, group[winner].RepositoryURL),
			})
		}
		assignments = append(assignments, assignment)
	}

	return assignments, diags
}

// beats reports whether a takes precedence over b for the same
// component name: lower priority wins, then smaller repository URL.
func beats(a, b RegistryEntry) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.RepositoryURL < b.RepositoryURL
}
