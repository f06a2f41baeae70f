// Package filter traduce parámetros opcionales de consulta a un predicado
// independiente de la base de datos (Criteria).
//
// Cada parámetro reconocido y no vacío genera una condición "el campo contiene
// el valor" sin distinguir mayúsculas; las condiciones se combinan con AND.
// Un parámetro vacío no restringe nada (equivale a aceptar cualquier valor).
package filter

import (
	"strings"
	"unicode"
)

// Binding asocia un parámetro de consulta con el campo almacenado que filtra.
type Binding struct {
	Param string
	Field string
}

// Op tipo de comparación de una condición.
type Op int

const (
	// OpContains subcadena sin distinguir mayúsculas.
	OpContains Op = iota
	// OpEquals igualdad exacta (se usa para restricciones de propiedad).
	OpEquals
)

// Condition restricción sobre un único campo.
type Condition struct {
	Field string
	Op    Op
	Value string
}

// Criteria conjunción (AND) de condiciones. Criteria vacío acepta todo.
type Criteria struct {
	Conditions []Condition
}

// Build construye el Criteria a partir de params según bindings.
// Los parámetros no reconocidos se ignoran. Si varios parámetros apuntan al mismo
// campo, gana el primero (en orden de bindings) con valor no vacío.
func Build(params map[string]string, bindings []Binding) Criteria {
	var crit Criteria
	seen := make(map[string]bool, len(bindings))
	for _, b := range bindings {
		if seen[b.Field] {
			continue
		}
		v, ok := params[b.Param]
		if !ok || v == "" {
			continue
		}
		seen[b.Field] = true
		crit.Conditions = append(crit.Conditions, Condition{Field: b.Field, Op: OpContains, Value: v})
	}
	return crit
}

// Equal devuelve una copia de c con una condición de igualdad exacta añadida.
func (c Criteria) Equal(field, value string) Criteria {
	out := Criteria{Conditions: make([]Condition, 0, len(c.Conditions)+1)}
	out.Conditions = append(out.Conditions, c.Conditions...)
	out.Conditions = append(out.Conditions, Condition{Field: field, Op: OpEquals, Value: value})
	return out
}

// IsEmpty indica si el Criteria no impone restricciones.
func (c Criteria) IsEmpty() bool {
	return len(c.Conditions) == 0
}

// Match evalúa el Criteria en memoria. get devuelve el valor del campo en el registro.
func (c Criteria) Match(get func(field string) string) bool {
	for _, cond := range c.Conditions {
		v := get(cond.Field)
		switch cond.Op {
		case OpEquals:
			if v != cond.Value {
				return false
			}
		default:
			if !containsFold(v, cond.Value) {
				return false
			}
		}
	}
	return true
}

// containsFold compara con plegado simple runa a runa, igual que la opción "i"
// de las expresiones regulares de MongoDB: "ß" no equivale a "ss".
func containsFold(s, substr string) bool {
	return strings.Contains(simpleFold(s), simpleFold(substr))
}

func simpleFold(s string) string {
	return strings.Map(func(r rune) rune {
		return unicode.ToLower(unicode.ToUpper(r))
	}, s)
}
