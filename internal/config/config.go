package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"mosql_gen/internal/generator"
	"mosql_gen/internal/mapper"
)

const (
	ModelSourceFile  = "file"
	ModelSourceMongo = "mongo"

	DBTypePostgres = "postgres"
	DBTypeMariaDB  = "mariadb"
	DBTypeOracle   = "oracle"
)

type Config struct {
	Logger struct {
		Level    string `yaml:"level"`
		Target   string `yaml:"target"`
		Filename string `yaml:"filename"`
	} `yaml:"logger"`

	// Имя схемы: либо задано явно, либо берется из mongo_uri
	DBName      string `yaml:"db_name"`
	MongoURI    string `yaml:"mongo_uri"`
	ModelPrefix string `yaml:"model_prefix"`

	Model  ModelConfig  `yaml:"model"`
	Mapper MapperConfig `yaml:"mapper"`
	Server ServerConfig `yaml:"server"`

	Postgres []DatabaseConfig `yaml:"postgres"`
	MariaDB  []DatabaseConfig `yaml:"mariadb"`
	Oracle   []DatabaseConfig `yaml:"oracle"`

	Check struct {
		TargetDB      string   `yaml:"target_db"`
		TargetType    string   `yaml:"target_type"`
		IgnoreColumns []string `yaml:"ignore_columns"`
	} `yaml:"check"`
}

type ModelConfig struct {
	Source     string `yaml:"source"` // "file" или "mongo"
	File       string `yaml:"file"`
	SampleSize int    `yaml:"sample_size"`
}

type MapperConfig struct {
	Variant  string            `yaml:"variant"` // "standard" или "extended"
	Types    map[string]string `yaml:"types"`
	Excluded []string          `yaml:"excluded"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	Path            string        `yaml:"path"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Name     string `yaml:"name"` // Уникальное имя для идентификации БД в конфиге
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
	Timeout  int    `yaml:"timeout"` // in seconds
}

var (
	ErrNoSchemaName   = errors.New("schema name is not set: use db_name, mongo_uri or the model name")
	ErrNoModelFile    = errors.New("model.file must be set for file model source")
	ErrNoMongoURI     = errors.New("mongo_uri must be set for mongo model source")
	ErrBadModelSource = errors.New("model.source must be either 'file' or 'mongo'")
)

func (c *Config) setDefaults() {
	if c.Model.Source == "" {
		c.Model.Source = ModelSourceFile
	}
	if c.Model.SampleSize <= 0 {
		c.Model.SampleSize = 100
	}
	if c.Mapper.Variant == "" {
		c.Mapper.Variant = mapper.VariantStandard
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.Path == "" {
		c.Server.Path = "/mosql"
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = 30 * time.Second
	}
	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}
	if c.Logger.Target == "" {
		c.Logger.Target = "stderr"
	}
}

func (c *Config) Validate() error {
	// без db_name имя схемы берется из mongo_uri, проверяем его сразу
	if c.DBName == "" && c.MongoURI != "" {
		if _, err := DatabaseFromURI(c.MongoURI); err != nil {
			return err
		}
	}

	switch c.Model.Source {
	case ModelSourceFile:
		if c.Model.File == "" {
			return ErrNoModelFile
		}
	case ModelSourceMongo:
		if c.MongoURI == "" {
			return ErrNoMongoURI
		}
	default:
		return ErrBadModelSource
	}

	if _, err := mapper.LookupTypeTable(c.Mapper.Variant); err != nil {
		return err
	}

	for _, db := range c.allDatabases() {
		if err := db.Validate(); err != nil {
			return fmt.Errorf("invalid database config %q: %w", db.Name, err)
		}
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	if d.Name == "" {
		return errors.New("name cannot be empty")
	}
	if d.Host == "" {
		return errors.New("host cannot be empty")
	}
	if d.Port < 0 || d.Port > 65535 {
		return fmt.Errorf("port out of range: %d", d.Port)
	}
	return nil
}

func (c *Config) allDatabases() []DatabaseConfig {
	var all []DatabaseConfig
	all = append(all, c.Postgres...)
	all = append(all, c.MariaDB...)
	all = append(all, c.Oracle...)
	return all
}

// GetConfig читает YAML конфиг. Рядом с файлом может лежать .env,
// переменные из него и из окружения подставляются в ${VAR}.
func GetConfig(filename string) (*Config, error) {
	if err := loadDotEnv(filepath.Join(filepath.Dir(filename), ".env")); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error opening config file: %w", err)
	}
	return Parse(raw)
}

// Подставляется только форма ${NAME}, одиночный $ остается как есть
var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

func expandEnv(raw []byte) []byte {
	return envRef.ReplaceAllFunc(raw, func(ref []byte) []byte {
		return []byte(os.Getenv(string(envRef.FindSubmatch(ref)[1])))
	})
}

// Parse разбирает конфиг из байтов, подставляя переменные окружения
func Parse(raw []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(expandEnv(raw)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding YAML: %w", err)
	}

	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// loadDotEnv не перетирает уже выставленные переменные; отсутствие файла не ошибка
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("error loading %s: %w", path, err)
	}
	return nil
}

// TypeTable собирает таблицу типов маппера из секции mapper
func (c *Config) TypeTable() (mapper.TypeTable, error) {
	table, err := mapper.LookupTypeTable(c.Mapper.Variant)
	if err != nil {
		return mapper.TypeTable{}, err
	}
	if len(c.Mapper.Types) > 0 {
		table = table.WithScalars(c.Mapper.Types)
	}
	if len(c.Mapper.Excluded) > 0 {
		table = table.WithExcluded(c.Mapper.Excluded...)
	}
	return table, nil
}

// TableNamer явное имя таблицы из модели, иначе префикс моделей
func (c *Config) TableNamer() generator.TableNamer {
	return generator.Configured(generator.Prefixed(c.ModelPrefix))
}

// FindDatabaseConfig вспомогательная функция для поиска конфига БД по имени и типу
func (c *Config) FindDatabaseConfig(dbType, dbName string) (*DatabaseConfig, error) {
	var dbConfigs []DatabaseConfig

	switch dbType {
	case DBTypePostgres:
		dbConfigs = c.Postgres
	case DBTypeMariaDB:
		dbConfigs = c.MariaDB
	case DBTypeOracle:
		dbConfigs = c.Oracle
	default:
		return nil, fmt.Errorf("unknown database type: %s", dbType)
	}

	for _, db := range dbConfigs {
		if db.Name == dbName {
			return &db, nil
		}
	}

	return nil, fmt.Errorf("database '%s' of type '%s' not found in config", dbName, dbType)
}
