// Package format prints a JavaScript tree back to source text.
//
// Назначение: вывод результата минификации (compact) и отладочный вывод
// (pretty), а также печать отдельных выражений для trace.
// Не делает: сохранения комментариев и исходного форматирования.
// Зависимости: internal/ast.
package format
