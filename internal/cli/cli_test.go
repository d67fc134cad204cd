package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/xctemplates/pkg/config"
	"github.com/arthur-debert/xctemplates/pkg/errors"
	"github.com/arthur-debert/xctemplates/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setup isolates configuration and logging and points the catalog at a
// fresh tree holding two templates
func setup(t *testing.T) *testutil.Tree {
	t.Helper()

	tree := testutil.NewTree(t)
	tree.AddTemplate("github.com", "alice", "repo", "Foo")
	tree.AddTemplate("github.com", "alice", "repo", "Bar")

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")
	t.Setenv(config.EnvConfigFile, "")
	t.Setenv("XCTEMPLATES_PATHS_ROOT", tree.Root())
	t.Setenv("XCTEMPLATES_CATALOG_INSPECT_GIT", "false")
	t.Setenv("XCTEMPLATES_OUTPUT_FORMAT", "text")
	return tree
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func requireBinaries(t *testing.T, names ...string) {
	t.Helper()
	for _, name := range names {
		if _, err := exec.LookPath(name); err != nil {
			t.Skipf("%s not available: %v", name, err)
		}
	}
}

func TestNoCommand(t *testing.T) {
	setup(t)

	_, err := run(t, "")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestList(t *testing.T) {
	tree := setup(t)

	t.Run("stats", func(t *testing.T) {
		out, err := run(t, "", "list")
		require.NoError(t, err)
		assert.Contains(t, out, "root: "+tree.Root()+"\n")
		assert.Contains(t, out, "hosts: 1\n")
		assert.Contains(t, out, "repositories: 1\n")
		assert.Contains(t, out, "templates: 2\n")
	})

	t.Run("hosts", func(t *testing.T) {
		out, err := run(t, "", "list", "hosts")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(tree.Root(), "github.com")+"\n", out)
	})

	t.Run("templates", func(t *testing.T) {
		out, err := run(t, "", "list", "templates")
		require.NoError(t, err)
		assert.Equal(t, "github.com/alice/repo/Bar  Bar template\ngithub.com/alice/repo/Foo  Foo template\n", out)
	})

	t.Run("unknown level", func(t *testing.T) {
		_, err := run(t, "", "list", "planets")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestSearch(t *testing.T) {
	setup(t)

	t.Run("match", func(t *testing.T) {
		out, err := run(t, "", "search", "Foo")
		require.NoError(t, err)
		assert.Equal(t, "github.com/alice/repo/Foo  Foo template\n", out)
	})

	t.Run("no arguments lists everything", func(t *testing.T) {
		out, err := run(t, "", "search")
		require.NoError(t, err)
		assert.Equal(t, 2, strings.Count(out, "\n"))
	})

	t.Run("suggestions", func(t *testing.T) {
		out, err := run(t, "", "search", "Fooo")
		require.NoError(t, err)
		assert.Contains(t, out, `No templates match "Fooo"`)
		assert.Contains(t, out, "Did you mean:\n  github.com/alice/repo/Foo\n")
	})

	t.Run("suggestions disabled", func(t *testing.T) {
		t.Setenv("XCTEMPLATES_SEARCH_SUGGESTIONS", "false")
		out, err := run(t, "", "search", "Fooo")
		require.NoError(t, err)
		assert.NotContains(t, out, "Did you mean")
	})

	t.Run("json", func(t *testing.T) {
		out, err := run(t, "", "--format", "json", "search", "Bar")
		require.NoError(t, err)

		var decoded struct {
			Query     string `json:"query"`
			Templates []struct {
				Identifier string `json:"identifier"`
				Summary    string `json:"summary"`
			} `json:"templates"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, "Bar", decoded.Query)
		require.Len(t, decoded.Templates, 1)
		assert.Equal(t, "github.com/alice/repo/Bar", decoded.Templates[0].Identifier)
		assert.Equal(t, "Bar template", decoded.Templates[0].Summary)
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := run(t, "", "--format", "xml", "search", "Bar")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestShow(t *testing.T) {
	tree := setup(t)

	out, err := run(t, "", "show", "Foo")
	require.NoError(t, err)
	assert.Contains(t, out, "github.com/alice/repo/Foo\n")
	assert.Contains(t, out, filepath.Join(tree.Root(), "github.com", "alice", "repo", "Foo.xctemplate"))
	assert.Contains(t, out, "https://github.com/alice/repo/tree/HEAD/Foo.xctemplate")

	_, err = run(t, "", "show", "Missing")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestMkdirAndRmdir(t *testing.T) {
	requireBinaries(t, "env", "mkdir", "rm")
	tree := setup(t)
	target := filepath.Join(tree.Root(), "gitlab.com", "team", "new")

	out, err := run(t, "", "mkdir", "gitlab.com/team/new")
	require.NoError(t, err)
	assert.Equal(t, "mkdir "+target+": ok\n", out)
	assert.DirExists(t, target)

	out, err = run(t, "", "list", "users")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(tree.Root(), "gitlab.com", "team"))

	_, err = run(t, "", "rmdir", "https://gitlab.com/team")
	require.NoError(t, err)
	assert.NoDirExists(t, filepath.Join(tree.Root(), "gitlab.com", "team"))
	assert.DirExists(t, filepath.Join(tree.Root(), "gitlab.com"))
}

func TestMkdir_DryRun(t *testing.T) {
	tree := setup(t)
	target := filepath.Join(tree.Root(), "gitlab.com", "team")

	out, err := run(t, "", "--dry-run", "mkdir", "gitlab.com/team")
	require.NoError(t, err)
	assert.Equal(t, "[dry-run] env mkdir -p "+target+"\n", out)
	assert.NoDirExists(t, target)
}

func TestRmdir_RejectsEscape(t *testing.T) {
	setup(t)

	_, err := run(t, "", "rmdir", "https://github.com/../..")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestRemove(t *testing.T) {
	requireBinaries(t, "env", "rm")

	t.Run("declined", func(t *testing.T) {
		tree := setup(t)
		bundle := filepath.Join(tree.Root(), "github.com", "alice", "repo", "Foo.xctemplate")

		out, err := run(t, "n\n", "remove", "Foo")
		require.NoError(t, err)
		assert.Contains(t, out, "└── "+bundle)
		assert.Contains(t, out, "Nothing removed.")
		assert.DirExists(t, bundle)
	})

	t.Run("confirmed", func(t *testing.T) {
		tree := setup(t)
		bundle := filepath.Join(tree.Root(), "github.com", "alice", "repo", "Foo.xctemplate")

		out, err := run(t, "y\n", "remove", "Foo")
		require.NoError(t, err)
		assert.Contains(t, out, "remove "+bundle+": ok")
		assert.NoDirExists(t, bundle)
		assert.DirExists(t, filepath.Join(tree.Root(), "github.com", "alice", "repo", "Bar.xctemplate"))
	})

	t.Run("force removes every match", func(t *testing.T) {
		tree := setup(t)

		_, err := run(t, "", "--force", "remove", "repo")
		require.NoError(t, err)

		entries, err := os.ReadDir(filepath.Join(tree.Root(), "github.com", "alice", "repo"))
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("dry run", func(t *testing.T) {
		tree := setup(t)
		bundle := filepath.Join(tree.Root(), "github.com", "alice", "repo", "Bar.xctemplate")

		out, err := run(t, "", "--dry-run", "remove", "Bar")
		require.NoError(t, err)
		assert.Equal(t, "[dry-run] env rm -rf "+bundle+"\n", out)
		assert.DirExists(t, bundle)
	})

	t.Run("full identifier selects one bundle", func(t *testing.T) {
		tree := setup(t)
		tree.AddTemplate("github.com", "alice", "repo", "FooBar")
		repo := filepath.Join(tree.Root(), "github.com", "alice", "repo")

		_, err := run(t, "", "--force", "remove", "github.com/alice/repo/Foo")
		require.NoError(t, err)
		assert.NoDirExists(t, filepath.Join(repo, "Foo.xctemplate"))
		assert.DirExists(t, filepath.Join(repo, "FooBar.xctemplate"))
		assert.DirExists(t, filepath.Join(repo, "Bar.xctemplate"))
	})

	t.Run("identifier prefix still matches by search", func(t *testing.T) {
		tree := setup(t)
		repo := filepath.Join(tree.Root(), "github.com", "alice", "repo")

		_, err := run(t, "", "--force", "remove", "github.com/alice/repo/")
		require.NoError(t, err)
		assert.NoDirExists(t, filepath.Join(repo, "Foo.xctemplate"))
		assert.NoDirExists(t, filepath.Join(repo, "Bar.xctemplate"))
	})

	t.Run("empty query", func(t *testing.T) {
		setup(t)
		_, err := run(t, "", "--force", "remove", "")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("no match", func(t *testing.T) {
		setup(t)
		_, err := run(t, "", "--force", "remove", "Missing")
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})
}

func TestConfig(t *testing.T) {
	tree := setup(t)

	out, err := run(t, "", "config")
	require.NoError(t, err)
	assert.Contains(t, out, tree.Root())
	assert.Contains(t, out, "inspect_git = false")
	assert.Contains(t, out, "5m0s")

	out, err = run(t, "", "config", "--defaults")
	require.NoError(t, err)
	assert.Contains(t, out, `# timeout = "5m"`)

	out, err = run(t, "", "config", "--path")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), filepath.Join("xctemplates", "config.toml")))
}

func TestVersion(t *testing.T) {
	setup(t)

	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "xctemplates version dev")
}

func TestHelpTopics(t *testing.T) {
	setup(t)

	out, err := run(t, "", "help", "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "  layout\n")
	assert.Contains(t, out, "  search\n")
	assert.Contains(t, out, "  --dry-run\n")

	out, err = run(t, "", "help", "layout")
	require.NoError(t, err)
	assert.Contains(t, out, "Template layout")
}

func TestCompletion(t *testing.T) {
	setup(t)

	out, err := run(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "xctemplates")
}

func TestParseRepositoryURL(t *testing.T) {
	tests := []struct {
		raw  string
		host string
		path string
	}{
		{"github.com/alice/repo", "github.com", "/alice/repo"},
		{"https://github.com/alice/repo", "github.com", "/alice/repo"},
		{"ssh://gitlab.com/team", "gitlab.com", "/team"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			u, err := parseRepositoryURL(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.host, u.Host)
			assert.Equal(t, tt.path, u.Path)
		})
	}

	_, err := parseRepositoryURL("https://[::1")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestPrintError(t *testing.T) {
	buf := &bytes.Buffer{}
	PrintError(buf, errors.New(errors.ErrNotFound, "gone"))
	assert.Equal(t, "Error: [NOT_FOUND] gone\n", buf.String())
}
