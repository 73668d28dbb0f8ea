package repository

import (
	"fmt"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"library-catalog/internal/models"
)

const (
	tableAuthors = "authors"

	colID         = "id"
	colName       = "name"
	colFamilyName = "family_name"
	colLifespan   = "lifespan"
)

func listAuthorsQuery(dialect goqu.DialectWrapper, opts SortOptions) (string, error) {
	stmt := dialect.
		From(tableAuthors).
		Select(goqu.C(colName), goqu.C(colLifespan))

	var order []exp.OrderedExpression
	switch {
	case opts.FamilyName > 0:
		order = []exp.OrderedExpression{goqu.C(colFamilyName).Asc(), goqu.C(colName).Asc()}
	case opts.FamilyName < 0:
		order = []exp.OrderedExpression{goqu.C(colFamilyName).Desc(), goqu.C(colName).Desc()}
	}
	order = append(order, goqu.C(colID).Asc())

	sqlQuery, _, err := stmt.Order(order...).ToSQL()
	if err != nil {
		return "", fmt.Errorf("build list query: %w", err)
	}
	return sqlQuery, nil
}

func insertAuthorsQuery(dialect goqu.DialectWrapper, authors []models.Author) (string, error) {
	rows := make([]any, 0, len(authors))
	for _, author := range authors {
		rows = append(rows, goqu.Record{
			colName:       author.Name,
			colFamilyName: sortKey(author),
			colLifespan:   author.Lifespan,
		})
	}

	sqlQuery, _, err := dialect.Insert(tableAuthors).Rows(rows...).ToSQL()
	if err != nil {
		return "", fmt.Errorf("build insert query: %w", err)
	}
	return sqlQuery, nil
}

// sortKey is the stored family_name: case-folded so "van Vogt" sorts with
// the Vs under every collation.
func sortKey(author models.Author) string {
	return strings.ToLower(author.FamilyName())
}
