package template

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DerivesHierarchy(t *testing.T) {
	path := filepath.FromSlash("/catalog/github.com/alice/templates/Foo.xctemplate")

	tmpl := New(path)

	assert.Equal(t, path, tmpl.Path)
	assert.Equal(t, "Foo", tmpl.Name)
	assert.Equal(t, "Foo.xctemplate", tmpl.NameWithExtension)
	assert.Equal(t, "templates", tmpl.Repository)
	assert.Equal(t, "alice", tmpl.User)
	assert.Equal(t, "github.com", tmpl.Host)
	assert.Equal(t, filepath.FromSlash("/catalog/github.com/alice/templates"), tmpl.RepositoryDir())

	require.NotNil(t, tmpl.RemoteRepoURL)
	require.NotNil(t, tmpl.RemoteFileURL)
	assert.Equal(t, "https://github.com/alice/templates", tmpl.RemoteRepoURL.String())
	assert.Equal(t, "https://github.com/alice/templates/tree/HEAD/Foo.xctemplate", tmpl.RemoteFileURL.String())
}

func TestNew_LocalHostHasNoRemote(t *testing.T) {
	tmpl := New(filepath.FromSlash("/catalog/local/me/scratch/Bar.xctemplate"))

	assert.Nil(t, tmpl.RemoteRepoURL)
	assert.Nil(t, tmpl.RemoteFileURL)
}

func TestFormattedString(t *testing.T) {
	tmpl := New(filepath.FromSlash("/catalog/github.com/alice/templates/Foo.xctemplate"))

	assert.Equal(t, "Foo", tmpl.FormattedString(false, false))
	assert.Equal(t, "github.com/alice/templates/Foo", tmpl.FormattedString(true, false))
	assert.Equal(t, "Foo", tmpl.FormattedString(false, true), "unknown version is omitted")

	tmpl.Version = "abc1234"
	assert.Equal(t, "Foo (abc1234)", tmpl.FormattedString(false, true))
	assert.Equal(t, "github.com/alice/templates/Foo (abc1234)", tmpl.FormattedString(true, true))
	assert.Equal(t, "github.com/alice/templates/Foo", tmpl.String())
}
