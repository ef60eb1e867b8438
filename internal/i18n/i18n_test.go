package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestNewTranslations(t *testing.T) {
	t.Run("Should load embedded locales", func(t *testing.T) {
		trans, err := NewTranslations("en", "")

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"en", "es", "pt-BR"}, trans.Languages())
		assert.Equal(t, "Lint a commit message", trans.GetMessage("lint.usage", 0, nil))
	})

	t.Run("Should let files on disk override embedded messages", func(t *testing.T) {
		tmpDir := t.TempDir()
		createTestFile(t, tmpDir, "active.es.toml", `
		[lint]
		usage = "Revisar un commit"
		`)

		trans, err := NewTranslations("es", tmpDir)

		require.NoError(t, err)
		assert.Equal(t, "Revisar un commit", trans.GetMessage("lint.usage", 0, nil))
	})

	t.Run("Should fail with empty language", func(t *testing.T) {
		trans, err := NewTranslations("", "")

		assert.Error(t, err)
		assert.Nil(t, trans)
	})

	t.Run("Should fail with a malformed locale file", func(t *testing.T) {
		tmpDir := t.TempDir()
		createTestFile(t, tmpDir, "active.es.toml", `[broken`)

		_, err := NewTranslations("es", tmpDir)

		assert.Error(t, err)
	})
}

func TestSetLanguage(t *testing.T) {
	t.Run("Should change to a valid language", func(t *testing.T) {
		trans, err := NewTranslations("en", "")
		require.NoError(t, err)

		require.NoError(t, trans.SetLanguage("pt-br"))

		assert.Equal(t, "pt-BR", trans.Language())
		assert.Equal(t, "Validar uma mensagem de commit", trans.GetMessage("lint.usage", 0, nil))
	})

	t.Run("Should fail with unsupported language", func(t *testing.T) {
		trans, err := NewTranslations("es", "")
		require.NoError(t, err)

		assert.Error(t, trans.SetLanguage("fr"))
		assert.Equal(t, "es", trans.Language())
	})
}

func TestGetMessage(t *testing.T) {
	trans, err := NewTranslations("en", "")
	require.NoError(t, err)

	t.Run("Should pick the plural form", func(t *testing.T) {
		one := trans.GetMessage("report.summary", 1, map[string]interface{}{"Errors": 2, "Warnings": 0, "Count": 1})
		other := trans.GetMessage("report.summary", 3, map[string]interface{}{"Errors": 2, "Warnings": 1, "Count": 3})

		assert.Equal(t, "found 2 errors, 0 warnings in 1 message", one)
		assert.Equal(t, "found 2 errors, 1 warnings in 3 messages", other)
	})

	t.Run("Should handle templates correctly", func(t *testing.T) {
		result := trans.GetMessage("hook.installed", 0, map[string]interface{}{"Path": ".git/hooks/commit-msg"})

		assert.Equal(t, "Hook installed at .git/hooks/commit-msg", result)
	})

	t.Run("Should handle missing messages", func(t *testing.T) {
		assert.Equal(t, "Translation missing: NonExistent", trans.GetMessage("NonExistent", 1, nil))
	})
}

func TestTypeDescription(t *testing.T) {
	trans, err := NewTranslations("pt-BR", "")
	require.NoError(t, err)

	assert.Equal(t, "Nova funcionalidade", trans.TypeDescription("feat"))
	assert.Equal(t, "Reverte para um commit anterior", trans.TypeDescription("revert"))
	assert.Empty(t, trans.TypeDescription("wip"))

	require.NoError(t, trans.SetLanguage("en"))
	assert.Equal(t, "A bug fix", trans.TypeDescription("fix"))
}

func TestGetMessage_EveryLanguage(t *testing.T) {
	ids := []string{"app_usage", "lint.usage", "lint.failed", "report.input", "report.help", "hook.installed"}

	for _, lang := range []string{"en", "es", "pt-BR"} {
		t.Run(lang, func(t *testing.T) {
			trans, err := NewTranslations(lang, "")
			require.NoError(t, err)

			for _, id := range ids {
				msg := trans.GetMessage(id, 0, map[string]interface{}{"Path": "x"})
				assert.NotContains(t, msg, "Translation missing", id)
			}

			summary := trans.GetMessage("report.summary", 1, map[string]interface{}{"Errors": 1, "Warnings": 0, "Count": 1})
			assert.NotContains(t, summary, "Translation missing")
		})
	}
}
