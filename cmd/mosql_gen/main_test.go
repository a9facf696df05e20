package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mosql_gen/internal/config"
)

func writeFixture(t *testing.T) (dir, cfgPath string) {
	t.Helper()
	dir = t.TempDir()

	model := "lists:\n  User:\n    fields:\n      name: name\n      email: email\n      password: password\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "model.yml"), []byte(model), 0o600))

	cfg := "db_name: shop\n" +
		"logger:\n  target: file\n  filename: " + filepath.Join(dir, "app.log") + "\n" +
		"model:\n  source: file\n  file: " + filepath.Join(dir, "model.yml") + "\n"
	cfgPath = filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))
	return dir, cfgPath
}

func TestGenerateCommand(t *testing.T) {
	dir, cfgPath := writeFixture(t)
	out := filepath.Join(dir, "mosql.yaml")

	err := newApp().Run(context.Background(), []string{"mosql_gen", "--config", cfgPath, "generate", "--out", out})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	doc := string(data)
	assert.True(t, strings.HasPrefix(doc, "---\nshop:\n\n  user:\n"))
	assert.Contains(t, doc, "    - name_first:\n      :source: name.first\n      :type: text\n")
	assert.True(t, strings.HasSuffix(doc, "    # password field excluded\n"))
}

func TestGenerateCommandBadConfig(t *testing.T) {
	err := newApp().Run(context.Background(), []string{"mosql_gen", "--config", filepath.Join(t.TempDir(), "missing.yml"), "generate"})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGenerateCommandMissingModel(t *testing.T) {
	dir, cfgPath := writeFixture(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "model.yml")))

	err := newApp().Run(context.Background(), []string{"mosql_gen", "--config", cfgPath, "generate", "--out", filepath.Join(dir, "x.yaml")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGenerateCommandSchemaNameFromModel(t *testing.T) {
	dir := t.TempDir()
	model := "name: catalog\nlists:\n  Tag:\n    fields:\n      label: text\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "model.yml"), []byte(model), 0o600))
	cfg := "logger:\n  target: file\n  filename: " + filepath.Join(dir, "app.log") + "\n" +
		"model:\n  file: " + filepath.Join(dir, "model.yml") + "\n"
	cfgPath := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))
	out := filepath.Join(dir, "mosql.yaml")

	err := newApp().Run(context.Background(), []string{"mosql_gen", "--config", cfgPath, "generate", "--out", out})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "---\ncatalog:\n\n  tag:\n"))
}

func TestGenerateCommandNoSchemaName(t *testing.T) {
	dir, cfgPath := writeFixture(t)
	cfg := "logger:\n  target: file\n  filename: " + filepath.Join(dir, "app.log") + "\n" +
		"model:\n  file: " + filepath.Join(dir, "model.yml") + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))

	err := newApp().Run(context.Background(), []string{"mosql_gen", "--config", cfgPath, "generate", "--out", filepath.Join(dir, "x.yaml")})
	assert.ErrorIs(t, err, config.ErrNoSchemaName)
}
