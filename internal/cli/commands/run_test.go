package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synthtest/internal/cli"
	"synthtest/internal/config"
	"synthtest/internal/discovery"
	herrors "synthtest/internal/errors"
	"synthtest/internal/ui"
)

// stubTool exits with the code matching the directory of the spec, except
// for specs whose name contains "liar", and writes a trivial circuit.
const stubTool = `#!/bin/sh
spec=$1; shift
while [ $# -gt 0 ]; do
  case $1 in -o) out=$2; shift;; esac
  shift
done
printf 'aag 0 0 0 0 0\n' > "$out"
case "$spec" in
  */real/*liar*) exit 20;;
  */unreal/*liar*) exit 10;;
  */real/*) exit 10;;
  *) exit 20;;
esac
`

func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0755))
	return path
}

func writeCorpus(t *testing.T, files ...string) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "hoa-files")
	for _, f := range files {
		p := filepath.Join(root, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte("HOA: v1\nStates: 1\n--BODY--\n--END--\n"), 0644))
	}
	return root
}

// unsetExecs hides the executables of the developer's environment
func unsetExecs(t *testing.T) {
	t.Helper()
	for _, key := range []string{config.EnvToolExec, config.EnvCheckerExec} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func execute(t *testing.T, args ...string) (*Commands, error) {
	t.Helper()
	rootCmd := &cobra.Command{Use: "synthtest", SilenceErrors: true, SilenceUsage: true}
	cfg := config.New()
	var flags cli.Flags
	cmds := NewCommands(cfg)
	cmds.Register(rootCmd, &flags, cfg)

	rootCmd.SetArgs(args)
	return cmds, rootCmd.ExecuteContext(context.Background())
}

func TestRun_AllPass(t *testing.T) {
	unsetExecs(t)
	bin := t.TempDir()
	t.Setenv(config.EnvToolExec, writeScript(t, bin, "tool.sh", stubTool))
	corpus := writeCorpus(t, "real/a.hoa", "real/b.hoa", "unreal/c.hoa")
	out := filepath.Join(t.TempDir(), "out")

	cmds, err := execute(t, "run", "--tests-dir", corpus, "--output", out)
	require.NoError(t, err)
	assert.Equal(t, 0, cmds.Run.Failed())
	for _, name := range []string{"a.hoa", "b.hoa", "c.hoa"} {
		assert.FileExists(t, filepath.Join(out, name+".log"))
		assert.FileExists(t, filepath.Join(out, name+".model"))
	}
}

func TestRun_WrongAnswer(t *testing.T) {
	unsetExecs(t)
	bin := t.TempDir()
	t.Setenv(config.EnvToolExec, writeScript(t, bin, "tool.sh", stubTool))
	corpus := writeCorpus(t, "real/a_liar.hoa", "unreal/b.hoa", "unreal/c.hoa")
	out := filepath.Join(t.TempDir(), "out")

	t.Run("keep going runs everything", func(t *testing.T) {
		cmds, err := execute(t, "run", "-t", corpus, "-o", out, "--keep-going")
		require.NoError(t, err)
		assert.Equal(t, 1, cmds.Run.Failed())
		assert.FileExists(t, filepath.Join(out, "c.hoa.log"))

		data, err := os.ReadFile(filepath.Join(out, "a_liar.hoa.log"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "should be realizable, but the tool found it unrealizable")
	})

	t.Run("stops at the first failure by default", func(t *testing.T) {
		fresh := filepath.Join(t.TempDir(), "fresh")
		cmds, err := execute(t, "run", "-t", corpus, "-o", fresh)
		require.NoError(t, err)
		assert.Equal(t, 1, cmds.Run.Failed())
		assert.NoFileExists(t, filepath.Join(fresh, "b.hoa.log"))
		assert.NoFileExists(t, filepath.Join(fresh, "c.hoa.log"))
	})

	t.Run("filter selects tests", func(t *testing.T) {
		cmds, err := execute(t, "run", "-t", corpus, "--filter", "unreal/*", "--progress")
		require.NoError(t, err)
		assert.Equal(t, 0, cmds.Run.Failed())
	})
}

func TestRun_ModelCheck(t *testing.T) {
	unsetExecs(t)
	bin := t.TempDir()
	t.Setenv(config.EnvToolExec, writeScript(t, bin, "tool.sh", stubTool))
	corpus := writeCorpus(t, "real/a.hoa", "unreal/c.hoa")

	t.Run("correct circuits pass", func(t *testing.T) {
		t.Setenv(config.EnvCheckerExec, writeScript(t, bin, "ok.sh", "#!/bin/sh\necho checking\necho 0\n"))
		cmds, err := execute(t, "run", "-t", corpus, "--mc")
		require.NoError(t, err)
		assert.Equal(t, 0, cmds.Run.Failed())
	})

	t.Run("buggy circuits fail", func(t *testing.T) {
		t.Setenv(config.EnvCheckerExec, writeScript(t, bin, "buggy.sh", "#!/bin/sh\necho 1\n"))
		out := filepath.Join(t.TempDir(), "out")
		cmds, err := execute(t, "run", "-t", corpus, "--mc", "-o", out)
		require.NoError(t, err)
		assert.Equal(t, 1, cmds.Run.Failed())
		assert.NoFileExists(t, filepath.Join(out, "a.hoa.model.aag"))

		data, err := os.ReadFile(filepath.Join(out, "a.hoa.log"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "The circuit is buggy")
	})

	t.Run("broken checker aborts the run", func(t *testing.T) {
		t.Setenv(config.EnvCheckerExec, writeScript(t, bin, "broken.sh", "#!/bin/sh\necho crash >&2\nexit 134\n"))
		out := filepath.Join(t.TempDir(), "out")
		_, err := execute(t, "run", "-t", corpus, "--mc", "-o", out)
		require.Error(t, err)
		assert.True(t, herrors.IsAssertion(err))
		assert.NoFileExists(t, filepath.Join(out, "c.hoa.log"))
	})
}

func TestRun_ConfigErrors(t *testing.T) {
	unsetExecs(t)
	corpus := writeCorpus(t, "real/a.hoa")

	t.Run("missing tool", func(t *testing.T) {
		_, err := execute(t, "run", "-t", corpus)
		require.Error(t, err)
		assert.Equal(t, herrors.ExitConfigError, herrors.GetExitCode(err))
		assert.Contains(t, err.Error(), "TOOL_EXEC")
	})

	t.Run("missing checker with model checking", func(t *testing.T) {
		t.Setenv(config.EnvToolExec, "/bin/true")
		_, err := execute(t, "run", "-t", corpus, "--mc")
		require.Error(t, err)
		assert.Equal(t, herrors.ExitConfigError, herrors.GetExitCode(err))
		assert.Contains(t, err.Error(), "IIMC_EXEC")
	})

	t.Run("env file provides the tool", func(t *testing.T) {
		bin := t.TempDir()
		tool := writeScript(t, bin, "tool.sh", stubTool)
		envFile := filepath.Join(bin, "synthtest.env")
		require.NoError(t, os.WriteFile(envFile, []byte("TOOL_EXEC="+tool+"\n"), 0644))

		cmds, err := execute(t, "run", "-t", corpus, "--env", envFile)
		require.NoError(t, err)
		assert.Equal(t, 0, cmds.Run.Failed())
	})
}

func TestRun_EmptyCorpus(t *testing.T) {
	unsetExecs(t)
	t.Setenv(config.EnvToolExec, "/bin/true")

	cmds, err := execute(t, "run", "-t", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 0, cmds.Run.Failed())
}

func TestList(t *testing.T) {
	corpus := writeCorpus(t, "real/a.hoa", "unreal/c.hoa", "unreal/.synthtest-ignore", "real/notes.txt")

	t.Run("through the command line", func(t *testing.T) {
		_, err := execute(t, "list", "-t", corpus, "--details")
		require.NoError(t, err)
	})

	t.Run("prints only selected specs", func(t *testing.T) {
		cfg := config.New()
		cfg.Flags.TestsDir = corpus
		cfg.Flags.Details = true
		var buf bytes.Buffer
		list := NewListCommand(cfg, NewCorpus(cfg, discovery.NewFilter()),
			ui.NewFormatterTo(&buf, discovery.NewHeaderParser()))

		require.NoError(t, list.Execute(&cobra.Command{}, nil))

		out := buf.String()
		assert.Contains(t, out, filepath.Join(corpus, "real", "a.hoa"))
		assert.Contains(t, out, "states=1")
		assert.Contains(t, out, "Total: 1 test(s)")
		assert.NotContains(t, out, "c.hoa")
		assert.NotContains(t, out, "notes.txt")
		assert.NotContains(t, out, ".synthtest-ignore")
	})
}

func TestCorpus_Tests(t *testing.T) {
	corpus := writeCorpus(t,
		"real/a.hoa",
		"real/sub/b.hoa",
		"unreal/c.hoa",
		"unreal/skipped/.synthtest-ignore",
		"unreal/skipped/d.hoa",
	)
	cfg := config.New()
	cfg.Flags.TestsDir = corpus

	tests, err := NewCorpus(cfg, discovery.NewFilter()).Tests()
	require.NoError(t, err)
	require.Len(t, tests, 3)
	// Realizable specs come first
	assert.ElementsMatch(t, []string{
		filepath.Join(corpus, "real", "a.hoa"),
		filepath.Join(corpus, "real", "sub", "b.hoa"),
	}, tests[:2])
	assert.Equal(t, filepath.Join(corpus, "unreal", "c.hoa"), tests[2])
}
