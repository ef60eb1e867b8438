package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Tomas-vilte/matelint/internal/config"
	apperrors "github.com/Tomas-vilte/matelint/internal/errors"
	"github.com/Tomas-vilte/matelint/internal/i18n"
	"github.com/Tomas-vilte/matelint/internal/ruleset"
	"github.com/Tomas-vilte/matelint/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

type testEnv struct {
	cfg   *config.Config
	trans *i18n.Translations
	git   *services.MockGitService
	dir   string
}

func setupConfigTest(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)

	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	mockGit := new(services.MockGitService)
	mockGit.On("RepoRoot", mock.Anything).Return(dir, nil)

	return &testEnv{
		cfg: &config.Config{
			Language: "en",
			Color:    config.ColorNever,
			Format:   config.FormatText,
			PathFile: filepath.Join(dir, "config.json"),
		},
		trans: trans,
		git:   mockGit,
		dir:   dir,
	}
}

func (e *testEnv) run(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := NewConfigCommandFactory(e.git).CreateCommand(e.trans, e.cfg)
	app := &cli.Command{
		Name:      "matelint",
		Writer:    &stdout,
		ErrWriter: &stderr,
		Commands:  []*cli.Command{cmd},
	}
	err := app.Run(context.Background(), append([]string{"matelint", "config"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestShowCommand(t *testing.T) {
	t.Run("prints the built-in rules as JSON", func(t *testing.T) {
		env := setupConfigTest(t)

		out, errOut, err := env.run("show")

		require.NoError(t, err)
		assert.Contains(t, errOut, "built-in defaults")
		assert.JSONEq(t, `{
			"extends": ["@commitlint/config-conventional"],
			"rules": {
				"type-enum": [2, "always", ["feat", "fix", "docs", "style", "refactor", "perf", "test", "chore", "ci", "build", "revert"]],
				"type-case": [2, "always", "lower"],
				"subject-case": [0],
				"subject-full-stop": [2, "never", "."],
				"header-max-length": [2, "always", 72]
			}
		}`, out)
	})

	t.Run("yaml output", func(t *testing.T) {
		env := setupConfigTest(t)

		out, _, err := env.run("show", "--format", "yaml")

		require.NoError(t, err)
		assert.Contains(t, out, "header-max-length: [2, always, 72]")
		assert.Contains(t, out, "subject-case: [0]")
	})

	t.Run("resolved output includes preset rules", func(t *testing.T) {
		env := setupConfigTest(t)

		out, _, err := env.run("show", "--resolved", "--format", "toml")

		require.NoError(t, err)
		assert.Contains(t, out, "body-leading-blank")
		assert.NotContains(t, out, "extends")
	})

	t.Run("reads the discovered rule file", func(t *testing.T) {
		env := setupConfigTest(t)
		path := filepath.Join(env.dir, ".commitlintrc.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"rules": {"header-max-length": [2, "always", 50]}}`), 0644))

		out, errOut, err := env.run("show")

		require.NoError(t, err)
		assert.Contains(t, errOut, ".commitlintrc.json")
		assert.JSONEq(t, `{"rules": {"header-max-length": [2, "always", 50]}}`, out)
	})

	t.Run("unsupported format", func(t *testing.T) {
		env := setupConfigTest(t)

		_, _, err := env.run("show", "--format", "xml")

		assert.ErrorIs(t, err, apperrors.ErrUnsupportedFormat)
	})
}

func TestInitCommand(t *testing.T) {
	t.Run("writes the default rule set", func(t *testing.T) {
		env := setupConfigTest(t)

		out, _, err := env.run("init", "--format", "yaml")

		require.NoError(t, err)
		path := filepath.Join(env.dir, ".commitlintrc.yaml")
		assert.Contains(t, out, path)
		rs, err := config.LoadRuleFile(path)
		require.NoError(t, err)
		assert.Equal(t, ruleset.Default(), rs)
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		env := setupConfigTest(t)
		path := filepath.Join(env.dir, ".commitlintrc.json")
		require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))

		_, _, err := env.run("init")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")

		_, _, err = env.run("init", "--force")
		require.NoError(t, err)
		rs, err := config.LoadRuleFile(path)
		require.NoError(t, err)
		assert.Equal(t, ruleset.Default(), rs)
	})
}

func TestValidateCommand(t *testing.T) {
	t.Run("valid rule set", func(t *testing.T) {
		env := setupConfigTest(t)

		out, _, err := env.run("validate")

		require.NoError(t, err)
		assert.Contains(t, out, "Rule set is valid (12 rules)")
	})

	t.Run("unknown rule", func(t *testing.T) {
		env := setupConfigTest(t)
		path := filepath.Join(env.dir, "rules.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"rules": {"body-case": [2, "always", "lower-case"]}}`), 0644))

		_, _, err := env.run("validate", "--config", path)

		assert.ErrorIs(t, err, apperrors.ErrUnknownRule)
	})

	t.Run("rules path from the user settings", func(t *testing.T) {
		env := setupConfigTest(t)
		path := filepath.Join(env.dir, "rules.toml")
		require.NoError(t, os.WriteFile(path, []byte("[rules]\ntype-enum = [2, \"always\", []]\n"), 0644))
		env.cfg.RulesPath = path

		_, _, err := env.run("validate")

		assert.ErrorIs(t, err, apperrors.ErrEmptyTypeEnum)
	})
}

func TestSetLangCommand(t *testing.T) {
	t.Run("should set a supported language", func(t *testing.T) {
		env := setupConfigTest(t)

		out, _, err := env.run("set-lang", "pt-br")

		require.NoError(t, err)
		assert.Contains(t, out, "pt-BR")
		loaded, err := config.LoadConfig(env.cfg.PathFile)
		require.NoError(t, err)
		assert.Equal(t, "pt-BR", loaded.Language)
	})

	t.Run("should accept the flag form", func(t *testing.T) {
		env := setupConfigTest(t)

		_, _, err := env.run("set-lang", "--lang", "es")

		require.NoError(t, err)
		assert.Equal(t, "es", env.cfg.Language)
	})

	t.Run("should fail with unsupported language", func(t *testing.T) {
		env := setupConfigTest(t)

		_, _, err := env.run("set-lang", "fr")

		assert.ErrorIs(t, err, apperrors.ErrUnsupportedLanguage)
		assert.Equal(t, "en", env.cfg.Language)
		assert.NoFileExists(t, env.cfg.PathFile)
	})
}
