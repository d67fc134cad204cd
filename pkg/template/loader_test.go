package template

import (
	"errors"
	"net/url"
	"testing"

	"github.com/arthur-debert/xctemplates/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInspector struct {
	calls map[string]int
	info  RepoInfo
	err   error
}

func (f *fakeInspector) Inspect(dir string) (RepoInfo, error) {
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[dir]++
	return f.info, f.err
}

func TestLoader_ReadsPlistAndGit(t *testing.T) {
	mem := afero.NewMemMapFs()
	bundle := "/catalog/github.com/alice/templates/View.xctemplate"
	require.NoError(t, afero.WriteFile(mem, bundle+"/TemplateInfo.plist", []byte(samplePlist), 0644))

	remote, _ := url.Parse("https://github.com/alice-org/ios-templates")
	inspector := &fakeInspector{info: RepoInfo{Remote: remote, Commit: "deadbee"}}
	loader := NewLoader(filesystem.NewAferoFS(mem), inspector)

	tmpl := loader.Load(bundle)

	assert.Equal(t, "View", tmpl.Name)
	assert.Equal(t, "SwiftUI view", tmpl.Summary)
	assert.Equal(t, "A SwiftUI view with a preview.", tmpl.Description)
	assert.Equal(t, "deadbee", tmpl.Version)
	assert.Equal(t, "https://github.com/alice-org/ios-templates", tmpl.RemoteRepoURL.String())
	assert.Equal(t, "https://github.com/alice-org/ios-templates/tree/HEAD/View.xctemplate", tmpl.RemoteFileURL.String())

	loader.Load("/catalog/github.com/alice/templates/Other.xctemplate")
	assert.Equal(t, 1, inspector.calls["/catalog/github.com/alice/templates"], "repository inspected once")
}

func TestLoader_MissingMetadataKeepsDerivedValues(t *testing.T) {
	inspector := &fakeInspector{err: errors.New("not a git repository")}
	loader := NewLoader(filesystem.NewAferoFS(afero.NewMemMapFs()), inspector)

	tmpl := loader.Load("/catalog/github.com/alice/templates/Foo.xctemplate")

	assert.Empty(t, tmpl.Summary)
	assert.Empty(t, tmpl.Version)
	require.NotNil(t, tmpl.RemoteRepoURL)
	assert.Equal(t, "https://github.com/alice/templates", tmpl.RemoteRepoURL.String())
}

func TestLoader_NilInspector(t *testing.T) {
	loader := NewLoader(filesystem.NewAferoFS(afero.NewMemMapFs()), nil)

	tmpl := loader.Load("/catalog/local/me/scratch/Foo.xctemplate")
	assert.Nil(t, tmpl.RemoteRepoURL)
	assert.Empty(t, tmpl.Version)
}
