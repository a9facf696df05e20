package schema_check

import (
	"fmt"

	"mosql_gen/internal/connectors"
	"mosql_gen/internal/generator"
	"mosql_gen/internal/logger"
)

// CheckService читает схемы целевых таблиц и сверяет их с маппингом.
// В целевую БД ничего не пишет.
type CheckService struct {
	target  connectors.DatabaseConnector
	checker *Checker
	logger  *logger.Log
}

func NewCheckService(target connectors.DatabaseConnector, l *logger.Log, opts ...CheckerOption) *CheckService {
	if l == nil {
		l = logger.NewNop()
	}
	return &CheckService{
		target:  target,
		checker: NewChecker(opts...),
		logger:  l,
	}
}

func (s *CheckService) Run(tables []generator.TableSpec) (Report, error) {
	report := Report{Tables: len(tables)}
	for _, table := range tables {
		actual, err := s.target.GetTableSchema(table.Name)
		if err != nil {
			return report, fmt.Errorf("get schema of %s: %w", table.Name, err)
		}

		findings := s.checker.Compare(table, actual)
		s.logger.Debugf("table %s: %d findings", table.Name, len(findings))
		report.Findings = append(report.Findings, findings...)
	}
	return report, nil
}
