package connectors

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"mosql_gen/internal/domain"
)

func timeout(seconds int, fallback time.Duration) time.Duration {
	if seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	return fallback
}

func pingDB(db *sql.DB, d time.Duration) error {
	if db == nil {
		return fmt.Errorf("not connected to database")
	}

	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()

	return db.PingContext(ctx)
}

// scanColumns читает строки вида (name, data_type, is_nullable, is_primary)
func scanColumns(rows *sql.Rows, tableName string) (*domain.TableSchema, error) {
	defer rows.Close()

	schema := &domain.TableSchema{
		Name:    tableName,
		Columns: make([]domain.ColumnInfo, 0),
	}
	var primaryKey string

	for rows.Next() {
		// у драйверов флаги приходят по-разному: bool, 0/1, NUMBER
		var (
			name       string
			dataType   string
			isNullable any
			isPrimary  any
		)
		if err := rows.Scan(&name, &dataType, &isNullable, &isPrimary); err != nil {
			return nil, fmt.Errorf("failed to scan column info: %w", err)
		}
		schema.Columns = append(schema.Columns, domain.ColumnInfo{
			Name:       name,
			DataType:   dataType,
			IsNullable: truthy(isNullable),
		})
		if truthy(isPrimary) && primaryKey == "" {
			primaryKey = name
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	schema.PrimaryKey = primaryKey
	return schema, nil
}

func truthy(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case int64:
		return b != 0
	case float64:
		return b != 0
	case []byte:
		return truthyString(string(b))
	case string:
		return truthyString(b)
	default:
		return false
	}
}

func truthyString(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "t", "true", "y", "yes":
		return true
	}
	return false
}
