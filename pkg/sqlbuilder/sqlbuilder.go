// Package sqlbuilder centraliza el builder de squirrel para sqlite
// (placeholders `?`). Todos los repositorios construyen su SQL aquí.
package sqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// Select crea un SELECT builder
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert crea un INSERT builder
func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

// Update crea un UPDATE builder
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete crea un DELETE builder
func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}
