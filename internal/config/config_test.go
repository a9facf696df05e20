package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mosql_gen/internal/domain"
	"mosql_gen/internal/mapper"
)

const sampleConfig = `
logger:
  level: debug
  target: stdout
db_name: shop
model_prefix: cms
model:
  source: file
  file: model.yml
mapper:
  variant: extended
  types:
    color: text
  excluded:
    - html
server:
  addr: ":9090"
  shutdown_timeout: 5s
postgres:
  - name: warehouse
    host: localhost
    port: 5432
    user: mosql
    password: ${MOSQL_TEST_PG_PASS}
    dbname: shop
check:
  target_db: warehouse
  target_type: postgres
`

func TestParse(t *testing.T) {
	t.Setenv("MOSQL_TEST_PG_PASS", "s3cret")

	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "shop", cfg.DBName)
	assert.Equal(t, ModelSourceFile, cfg.Model.Source)
	assert.Equal(t, 100, cfg.Model.SampleSize)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "/mosql", cfg.Server.Path)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	require.Len(t, cfg.Postgres, 1)
	assert.Equal(t, "s3cret", cfg.Postgres[0].Password)

	db, err := cfg.FindDatabaseConfig(cfg.Check.TargetType, cfg.Check.TargetDB)
	require.NoError(t, err)
	assert.Equal(t, 5432, db.Port)

	_, err = cfg.FindDatabaseConfig(DBTypeOracle, "warehouse")
	assert.Error(t, err)
	_, err = cfg.FindDatabaseConfig("mssql", "warehouse")
	assert.Error(t, err)
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte("db_name: shop\nmodel:\n  file: m.yml\n"))
	require.NoError(t, err)

	assert.Equal(t, mapper.VariantStandard, cfg.Mapper.Variant)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "stderr", cfg.Logger.Target)
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
	}{
		{"no model file", "db_name: shop\n", ErrNoModelFile},
		{"uri without database", "mongo_uri: mongodb://localhost\nmodel:\n  file: m.yml\n", ErrNoDatabaseSegment},
		{"mongo without uri", "db_name: shop\nmodel:\n  source: mongo\n", ErrNoMongoURI},
		{"bad source", "db_name: shop\nmodel:\n  source: http\n", ErrBadModelSource},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := Parse([]byte("db_name: shop\nmodel:\n  file: m.yml\nmapper:\n  variant: legacy\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("db_name: shop\nmodel:\n  file: m.yml\nmariadb:\n  - name: x\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("db_name: shop\nunknown_key: 1\n"))
	assert.Error(t, err)
}

func TestParseKeepsLiteralDollar(t *testing.T) {
	t.Setenv("word1", "leaked")
	t.Setenv("MOSQL_TEST_PG_PASS", "s3cret")

	raw := "db_name: shop\n" +
		"# цена в $USD\n" +
		"model:\n  file: m.yml\n" +
		"postgres:\n" +
		"  - name: a\n    host: h\n    password: 'pa$word1'\n" +
		"  - name: b\n    host: h\n    password: pre-${MOSQL_TEST_PG_PASS}-$\n" +
		"  - name: c\n    host: h\n    password: ${MOSQL_TEST_UNSET_VAR}\n"
	cfg, err := Parse([]byte(raw))
	require.NoError(t, err)

	require.Len(t, cfg.Postgres, 3)
	assert.Equal(t, "pa$word1", cfg.Postgres[0].Password)
	assert.Equal(t, "pre-s3cret-$", cfg.Postgres[1].Password)
	assert.Empty(t, cfg.Postgres[2].Password)
}

func TestParseWithoutSchemaName(t *testing.T) {
	// имя схемы может прийти из модели, конфиг это не запрещает
	cfg, err := Parse([]byte("model:\n  file: m.yml\n"))
	require.NoError(t, err)

	name, err := cfg.ResolveSchemaName("shop")
	require.NoError(t, err)
	assert.Equal(t, "shop", name)

	_, err = cfg.ResolveSchemaName("")
	assert.ErrorIs(t, err, ErrNoSchemaName)
}

func TestGetConfigLoadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MOSQL_TEST_URI=mongodb://localhost:27017/fromenv\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("mongo_uri: ${MOSQL_TEST_URI}\nmodel:\n  source: mongo\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("MOSQL_TEST_URI") })

	cfg, err := GetConfig(filepath.Join(dir, "config.yml"))
	require.NoError(t, err)

	name, err := cfg.ResolveSchemaName("")
	require.NoError(t, err)
	assert.Equal(t, "fromenv", name)
}

func TestGetConfigMissingFile(t *testing.T) {
	_, err := GetConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestTypeTable(t *testing.T) {
	t.Setenv("MOSQL_TEST_PG_PASS", "x")
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	table, err := cfg.TypeTable()
	require.NoError(t, err)
	assert.Equal(t, mapper.VariantExtended, table.Name)
	assert.Equal(t, mapper.TypeText, table.Scalars["color"])
	assert.True(t, table.Excluded["html"])
	assert.True(t, table.Excluded["password"])
}

func TestTableNamer(t *testing.T) {
	cfg := &Config{ModelPrefix: "cms"}
	namer := cfg.TableNamer()

	assert.Equal(t, "cms_user", namer.TableName(domain.ListDescriptor{Key: "User"}))
	assert.Equal(t, "people", namer.TableName(domain.ListDescriptor{Key: "User", Table: "people"}))
}
