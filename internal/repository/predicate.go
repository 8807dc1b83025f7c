package repository

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultSimilarityThreshold is the minimum word_similarity score a row must
// reach when no explicit threshold is given.
const DefaultSimilarityThreshold = 0.6

// Predicate is a composable WHERE fragment. Builders return nil when their
// input is absent or blank, and And skips nil fragments, so a fully-nil
// composition means "match all". Predicates are immutable values; there is no
// shared accumulator to thread through calls.
type Predicate struct {
	SQL  string
	Args []any
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases s and strips diacritical marks via Unicode canonical
// decomposition, e.g. "João" -> "joao".
func Normalize(s string) string {
	out, _, err := transform.String(stripMarks, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// UnaccentLike builds an accent-insensitive multi-word contains filter: the
// input is normalized and split on whitespace, and every word must match the
// accent-stripped column independently. Requires the unaccent extension.
func UnaccentLike(column, param string) *Predicate {
	if strings.TrimSpace(param) == "" {
		return nil
	}
	words := strings.Fields(Normalize(param))
	if len(words) == 0 {
		return nil
	}
	conds := make([]string, 0, len(words))
	args := make([]any, 0, len(words))
	for _, w := range words {
		conds = append(conds, "lower(unaccent("+column+")) LIKE ?")
		args = append(args, "%"+w+"%")
	}
	return &Predicate{SQL: strings.Join(conds, " AND "), Args: args}
}

// WordSimilarity builds a trigram similarity filter: the row matches when the
// column is non-null and word_similarity of the accent-stripped column against
// the normalized input meets the threshold. Requires pg_trgm and the
// unaccent_immutable helper installed by the migrator.
func WordSimilarity(column, param string, threshold float64) *Predicate {
	if strings.TrimSpace(param) == "" {
		return nil
	}
	return &Predicate{
		SQL:  "(" + column + " IS NOT NULL AND word_similarity(unaccent_immutable(" + column + "), ?) >= ?)",
		Args: []any{Normalize(param), threshold},
	}
}

// WordSimilarityDefault is WordSimilarity with DefaultSimilarityThreshold.
func WordSimilarityDefault(column, param string) *Predicate {
	return WordSimilarity(column, param, DefaultSimilarityThreshold)
}

// FieldEquals builds an equality filter when v is non-nil.
func FieldEquals[V any](column string, v *V) *Predicate {
	if v == nil {
		return nil
	}
	return &Predicate{SQL: column + " = ?", Args: []any{*v}}
}

// FieldIn builds a set-membership filter. A list parameter means "match any
// of these values"; composing per-element equality with AND would be
// unsatisfiable for more than one distinct value.
func FieldIn[V any](column string, vals []V) *Predicate {
	if len(vals) == 0 {
		return nil
	}
	return &Predicate{SQL: column + " IN ?", Args: []any{vals}}
}

// RelatedIDEquals builds an equality filter on a foreign-key column.
func RelatedIDEquals(column string, id *uint) *Predicate {
	return FieldEquals(column, id)
}

// And composes fragments conjunctively, dropping nil ones. Returns nil when
// every fragment is nil.
func And(preds ...*Predicate) *Predicate {
	conds := make([]string, 0, len(preds))
	args := make([]any, 0, len(preds))
	for _, p := range preds {
		if p == nil {
			continue
		}
		conds = append(conds, "("+p.SQL+")")
		args = append(args, p.Args...)
	}
	if len(conds) == 0 {
		return nil
	}
	return &Predicate{SQL: strings.Join(conds, " AND "), Args: args}
}

// Or composes fragments disjunctively, dropping nil ones. Returns nil when
// every fragment is nil.
func Or(preds ...*Predicate) *Predicate {
	conds := make([]string, 0, len(preds))
	args := make([]any, 0, len(preds))
	for _, p := range preds {
		if p == nil {
			continue
		}
		conds = append(conds, "("+p.SQL+")")
		args = append(args, p.Args...)
	}
	if len(conds) == 0 {
		return nil
	}
	return &Predicate{SQL: strings.Join(conds, " OR "), Args: args}
}
