package entitybuilders

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/gitws/domain"
)

// ProjectBuilder helps create test projects with a fluent interface.
type ProjectBuilder struct {
	*testkit.BaseBuilder
	provider string
	path     string
	cmd      []string
}

// NewProjectBuilder creates a new project builder with sensible defaults.
func NewProjectBuilder() *ProjectBuilder {
	return &ProjectBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		provider:    "github",
		path:        "octo/widget",
		cmd:         nil,
	}
}

// WithProvider sets the provider name.
func (b *ProjectBuilder) WithProvider(provider string) *ProjectBuilder {
	b.provider = provider
	return b
}

// WithPath sets the remote path.
func (b *ProjectBuilder) WithPath(path string) *ProjectBuilder {
	b.path = path
	return b
}

// WithCmd sets the build command.
func (b *ProjectBuilder) WithCmd(cmd ...string) *ProjectBuilder {
	b.cmd = cmd
	return b
}

// Build creates the project (satisfies testkit.Builder interface).
func (b *ProjectBuilder) Build() interface{} {
	return b.BuildProject()
}

// BuildProject creates the project with a concrete return type.
func (b *ProjectBuilder) BuildProject() domain.Project {
	return domain.Project{
		Provider: b.provider,
		Path:     b.path,
		Cmd:      b.cmd,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ProjectBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.provider = "github"
	b.path = "octo/widget"
	b.cmd = nil
	return b
}

// Clone creates a deep copy of the ProjectBuilder.
func (b *ProjectBuilder) Clone() testkit.Builder {
	cmd := make([]string, len(b.cmd))
	copy(cmd, b.cmd)
	return &ProjectBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		provider:    b.provider,
		path:        b.path,
		cmd:         cmd,
	}
}
