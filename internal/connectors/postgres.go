package connectors

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"mosql_gen/internal/config"
	"mosql_gen/internal/domain"
)

// PostgresConnector целевая БД MoSQL
type PostgresConnector struct {
	config config.DatabaseConfig
	db     *sql.DB
}

func NewPostgresConnector(cfg config.DatabaseConfig) *PostgresConnector {
	return &PostgresConnector{config: cfg}
}

// DSN строка подключения в формате key=value для lib/pq
func (p *PostgresConnector) DSN() string {
	port := p.config.Port
	if port == 0 {
		port = 5432
	}
	sslMode := p.config.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	parts := []string{
		"host=" + quoteDSN(p.config.Host),
		fmt.Sprintf("port=%d", port),
		"user=" + quoteDSN(p.config.User),
		"password=" + quoteDSN(p.config.Password),
		"dbname=" + quoteDSN(p.config.DBName),
		"sslmode=" + sslMode,
	}
	if p.config.Timeout > 0 {
		parts = append(parts, fmt.Sprintf("connect_timeout=%d", p.config.Timeout))
	}
	return strings.Join(parts, " ")
}

// значения с пробелами и кавычками надо экранировать
func quoteDSN(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

func (p *PostgresConnector) Connect() error {
	db, err := sql.Open("postgres", p.DSN())
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := pingDB(db, timeout(p.config.Timeout, 5*time.Second)); err != nil {
		db.Close()
		return fmt.Errorf("ping failed: %w", err)
	}

	p.db = db
	return nil
}

func (p *PostgresConnector) Disconnect() error {
	if p.db != nil {
		return p.db.Close()
	}
	return nil
}

func (p *PostgresConnector) Ping() error {
	return pingDB(p.db, 3*time.Second)
}

func (p *PostgresConnector) GetTableSchema(tableName string) (*domain.TableSchema, error) {
	if p.db == nil {
		return nil, fmt.Errorf("not connected to database")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	query := `
        SELECT
            c.column_name,
            c.data_type,
            c.is_nullable = 'YES',
            EXISTS (
                SELECT 1 FROM information_schema.table_constraints tc
                JOIN information_schema.key_column_usage kcu
                  ON tc.constraint_name = kcu.constraint_name
                 AND tc.table_schema = kcu.table_schema
                WHERE tc.constraint_type = 'PRIMARY KEY'
                  AND tc.table_schema = c.table_schema
                  AND tc.table_name = c.table_name
                  AND kcu.column_name = c.column_name
            )
        FROM information_schema.columns c
        WHERE c.table_schema = current_schema() AND c.table_name = $1
        ORDER BY c.ordinal_position`

	rows, err := p.db.QueryContext(ctx, query, tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to query schema info: %w", err)
	}
	return scanColumns(rows, tableName)
}
