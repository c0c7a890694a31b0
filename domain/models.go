package domain

// Project is a single manifest entry: a remote repository on a hosting
// provider, plus an optional build command to run after it is synced.
type Project struct {
	Provider string   `toml:"provider"`
	Path     string   `toml:"path"`
	Cmd      []string `toml:"cmd,omitempty"`
}

// Key returns the identity used for deduplication inside a workspace.
// Two projects are the same entry iff they share provider and path.
func (p Project) Key() ProjectKey {
	return ProjectKey{Provider: p.Provider, Path: p.Path}
}

// HasBuildCmd reports whether the project declares a build step.
func (p Project) HasBuildCmd() bool {
	return len(p.Cmd) > 0
}

// ProjectKey is the (provider, path) pair identifying a manifest entry.
type ProjectKey struct {
	Provider string
	Path     string
}

// Workspace is the manifest root: the ordered list of projects under
// management. Order is preserved from the manifest but carries no
// semantic meaning — every operation is applied per project.
type Workspace struct {
	Projects []Project `toml:"workspace"`
}

// Find returns the index of the project matching the given key, or -1.
func (w *Workspace) Find(key ProjectKey) int {
	for i, p := range w.Projects {
		if p.Key() == key {
			return i
		}
	}
	return -1
}

// Contains reports whether a project with the given key is declared.
func (w *Workspace) Contains(key ProjectKey) bool {
	return w.Find(key) >= 0
}

// Append adds a project to the end of the list. Callers are expected to
// check Contains first; Append itself does not deduplicate.
func (w *Workspace) Append(p Project) {
	w.Projects = append(w.Projects, p)
}

// Remove deletes the project at the given index, preserving the order
// of the remaining entries.
func (w *Workspace) Remove(index int) {
	w.Projects = append(w.Projects[:index], w.Projects[index+1:]...)
}
