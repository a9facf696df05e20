package connectors

import (
	"fmt"

	"mosql_gen/internal/config"
	"mosql_gen/internal/domain"
)

type DatabaseConnector interface {
	// Функции по умолчанию
	Connect() error
	Ping() error
	Disconnect() error

	// Схема существующей таблицы; для отсутствующей таблицы колонок нет
	GetTableSchema(tableName string) (*domain.TableSchema, error)
}

// NewConnector создает коннектор по типу БД из конфига
func NewConnector(dbType string, cfg config.DatabaseConfig) (DatabaseConnector, error) {
	switch dbType {
	case config.DBTypePostgres:
		return NewPostgresConnector(cfg), nil
	case config.DBTypeMariaDB:
		return NewMariaDBConnector(cfg), nil
	case config.DBTypeOracle:
		return NewOracleConnector(cfg), nil
	default:
		return nil, fmt.Errorf("unknown database type: %s", dbType)
	}
}
