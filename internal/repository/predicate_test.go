package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	require.Equal(t, "joao", Normalize("João"))
	require.Equal(t, "creme brulee", Normalize("Crème Brûlée"))
	require.Equal(t, "go", Normalize("Go"))
	require.Equal(t, "", Normalize(""))
}

func TestUnaccentLike(t *testing.T) {
	t.Run("blank input matches all", func(t *testing.T) {
		require.Nil(t, UnaccentLike("name", ""))
		require.Nil(t, UnaccentLike("name", "   "))
	})

	t.Run("single word", func(t *testing.T) {
		p := UnaccentLike("name", "João")
		require.NotNil(t, p)
		require.Equal(t, "lower(unaccent(name)) LIKE ?", p.SQL)
		require.Equal(t, []any{"%joao%"}, p.Args)
	})

	t.Run("every word must match", func(t *testing.T) {
		p := UnaccentLike("name", "José da Silva")
		require.NotNil(t, p)
		require.Equal(t,
			"lower(unaccent(name)) LIKE ? AND lower(unaccent(name)) LIKE ? AND lower(unaccent(name)) LIKE ?",
			p.SQL)
		require.Equal(t, []any{"%jose%", "%da%", "%silva%"}, p.Args)
	})
}

func TestWordSimilarity(t *testing.T) {
	require.Nil(t, WordSimilarity("name", "", 0.5))

	p := WordSimilarityDefault("name", "Reação")
	require.NotNil(t, p)
	require.Equal(t,
		"(name IS NOT NULL AND word_similarity(unaccent_immutable(name), ?) >= ?)",
		p.SQL)
	require.Equal(t, []any{"reacao", DefaultSimilarityThreshold}, p.Args)
}

func TestFieldEquals(t *testing.T) {
	require.Nil(t, FieldEquals[string]("email", nil))

	email := "a@b.dev"
	p := FieldEquals("email", &email)
	require.NotNil(t, p)
	require.Equal(t, "email = ?", p.SQL)
	require.Equal(t, []any{"a@b.dev"}, p.Args)
}

func TestFieldIn(t *testing.T) {
	require.Nil(t, FieldIn[uint]("id", nil))
	require.Nil(t, FieldIn("id", []uint{}))

	p := FieldIn("id", []uint{1, 2, 3})
	require.NotNil(t, p)
	require.Equal(t, "id IN ?", p.SQL)
	require.Equal(t, []any{[]uint{1, 2, 3}}, p.Args)
}

func TestAnd(t *testing.T) {
	t.Run("all nil collapses to nil", func(t *testing.T) {
		require.Nil(t, And())
		require.Nil(t, And(nil, nil))
	})

	t.Run("skips nil fragments and parenthesizes", func(t *testing.T) {
		email := "a@b.dev"
		p := And(nil, UnaccentLike("name", "ana"), FieldEquals("email", &email))
		require.NotNil(t, p)
		require.Equal(t, "(lower(unaccent(name)) LIKE ?) AND (email = ?)", p.SQL)
		require.Equal(t, []any{"%ana%", "a@b.dev"}, p.Args)
	})
}

func TestOr(t *testing.T) {
	require.Nil(t, Or(nil, nil))

	p := Or(UnaccentLike("meta_title", "go"), UnaccentLike("summary", "go"))
	require.NotNil(t, p)
	require.Equal(t, "(lower(unaccent(meta_title)) LIKE ?) OR (lower(unaccent(summary)) LIKE ?)", p.SQL)
	require.Equal(t, []any{"%go%", "%go%"}, p.Args)
}

func TestTaggedWithAny(t *testing.T) {
	require.Nil(t, TaggedWithAny(nil))

	p := TaggedWithAny([]uint{4, 7})
	require.NotNil(t, p)
	require.Equal(t, "id IN (SELECT post_id FROM post_technologies WHERE technology_id IN ?)", p.SQL)
	require.Equal(t, []any{[]uint{4, 7}}, p.Args)
}

func TestPageable(t *testing.T) {
	def := DefaultPageable()
	require.Equal(t, 0, def.Page)
	require.Equal(t, 10, def.Size)
	require.Equal(t, "id ASC", def.Sort)
	require.Equal(t, 0, def.Offset())

	p := Pageable{Page: 2, Size: 10}
	require.Equal(t, 20, p.Offset())
}
