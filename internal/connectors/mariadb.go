package connectors

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"

	"mosql_gen/internal/config"
	"mosql_gen/internal/domain"
)

type MariaDBConnector struct {
	config config.DatabaseConfig
	db     *sql.DB
}

func NewMariaDBConnector(cfg config.DatabaseConfig) *MariaDBConnector {
	return &MariaDBConnector{config: cfg}
}

// DSN строка подключения для go-sql-driver
func (m *MariaDBConnector) DSN() string {
	port := m.config.Port
	if port == 0 {
		port = 3306
	}
	c := mysql.NewConfig()
	c.User = m.config.User
	c.Passwd = m.config.Password
	c.Net = "tcp"
	c.Addr = fmt.Sprintf("%s:%d", m.config.Host, port)
	c.DBName = m.config.DBName
	c.ParseTime = true
	c.Timeout = timeout(m.config.Timeout, 5*time.Second)
	return c.FormatDSN()
}

func (m *MariaDBConnector) Connect() error {
	db, err := sql.Open("mysql", m.DSN())
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := pingDB(db, timeout(m.config.Timeout, 5*time.Second)); err != nil {
		db.Close()
		return fmt.Errorf("ping failed: %w", err)
	}

	m.db = db
	return nil
}

func (m *MariaDBConnector) Disconnect() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}

func (m *MariaDBConnector) Ping() error {
	return pingDB(m.db, 3*time.Second)
}

func (m *MariaDBConnector) GetTableSchema(tableName string) (*domain.TableSchema, error) {
	if m.db == nil {
		return nil, fmt.Errorf("not connected to database")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Получаем информацию о колонках из information_schema
	query := `
        SELECT
            column_name,
            data_type,
            is_nullable = 'YES',
            column_key = 'PRI'
        FROM information_schema.columns
        WHERE table_name = ? AND table_schema = DATABASE()
        ORDER BY ordinal_position`

	rows, err := m.db.QueryContext(ctx, query, tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to query schema info: %w", err)
	}
	return scanColumns(rows, tableName)
}
