package resource

import (
	"errors"
	"fmt"
)

// ErrUnknownField marks lookup criteria that name a field the entity does not
// declare. The read contract treats it the same as an empty result set.
var ErrUnknownField = errors.New("unknown filter field")

// Schema describes one entity to the generic store: its table, the wire names
// callers may filter on and the columns they map to, and the field subset that
// forms the soft uniqueness key checked before a create.
type Schema struct {
	Name      string
	Table     string
	Fields    map[string]string
	UniqueKey []string
}

// Column resolves a wire field name to its column.
func (s Schema) Column(field string) (string, error) {
	col, ok := s.Fields[field]
	if !ok {
		return "", fmt.Errorf("%w: %s.%s", ErrUnknownField, s.Name, field)
	}
	return col, nil
}

// WhereClauses translates equality criteria into column/value pairs, failing
// on the first undeclared field.
func (s Schema) WhereClauses(criteria map[string]string) ([]Clause, error) {
	clauses := make([]Clause, 0, len(criteria))
	for field, value := range criteria {
		col, err := s.Column(field)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, Clause{Column: col, Value: value})
	}
	return clauses, nil
}

type Clause struct {
	Column string
	Value  string
}
