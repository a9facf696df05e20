package mapper

import "mosql_gen/internal/domain"

// Outcome результат маппинга одного поля. Реализации закрыты в пакете:
// Scalar, Decomposed, Excluded, Unrecognized.
type Outcome interface {
	outcome()
}

// Scalar поле ложится в одну колонку
type Scalar struct {
	Column domain.ColumnSpec
}

// Decomposed составное поле раскладывается на несколько колонок
type Decomposed struct {
	Columns []domain.ColumnSpec
}

// Excluded поле намеренно не реплицируется (например пароль)
type Excluded struct {
	FieldType string
}

// Unrecognized тип поля отсутствует в таблице типов
type Unrecognized struct {
	FieldType string
}

func (Scalar) outcome()       {}
func (Decomposed) outcome()   {}
func (Excluded) outcome()     {}
func (Unrecognized) outcome() {}

// Columns возвращает колонки результата; для Excluded и Unrecognized пусто
func Columns(o Outcome) []domain.ColumnSpec {
	switch v := o.(type) {
	case Scalar:
		return []domain.ColumnSpec{v.Column}
	case Decomposed:
		return v.Columns
	case Excluded, Unrecognized:
		return nil
	default:
		panic("mapper: unknown outcome")
	}
}
