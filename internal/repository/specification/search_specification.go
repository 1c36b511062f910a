package specification

import (
	"strings"

	"gorm.io/gorm"
)

// likeEscaper escapes LIKE metacharacters using Postgres' default escape
// character, so user input only ever matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// containsPattern wraps q for a literal containment match.
func containsPattern(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}

// ILike is a case-insensitive containment filter on one column.
type ILike struct {
	Field string
	Value string
}

func (s ILike) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(s.Field+" ILIKE ?", containsPattern(s.Value))
}

// ILikeAny matches when any of the columns contains the query, case-insensitively.
type ILikeAny struct {
	Fields []string
	Query  string
}

func (s ILikeAny) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Fields) == 0 {
		return db
	}
	pattern := containsPattern(s.Query)
	clauses := make([]string, len(s.Fields))
	args := make([]interface{}, len(s.Fields))
	for i, f := range s.Fields {
		clauses[i] = f + " ILIKE ?"
		args[i] = pattern
	}
	return db.Where("("+strings.Join(clauses, " OR ")+")", args...)
}
