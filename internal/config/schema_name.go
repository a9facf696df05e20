package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var ErrNoDatabaseSegment = errors.New("connection string has no database segment")

// ResolveSchemaName имя корневого ключа документа: db_name, иначе база из mongo_uri,
// иначе имя из самой модели. Кривой mongo_uri это ошибка, дальше не откатываемся.
func (c *Config) ResolveSchemaName(modelName string) (string, error) {
	if c.DBName != "" {
		return c.DBName, nil
	}
	if c.MongoURI != "" {
		return DatabaseFromURI(c.MongoURI)
	}
	if modelName != "" {
		return modelName, nil
	}
	return "", ErrNoSchemaName
}

// DatabaseFromURI достает имя базы из scheme://[user:pass@]host[:port]/database[?opts]
func DatabaseFromURI(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("parse connection string: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("parse connection string: missing scheme or host in %q", redact(u))
	}

	db := strings.TrimPrefix(u.Path, "/")
	if db == "" || strings.Contains(db, "/") {
		return "", fmt.Errorf("%w: %q", ErrNoDatabaseSegment, redact(u))
	}
	return db, nil
}

// пароль в ошибки не попадает
func redact(u *url.URL) string {
	return u.Redacted()
}
