package main

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/comcode/blog-engine/internal/models"
)

// Run applies extensions, the schema and search helpers in order. Every step
// is idempotent so the migrator can run on each deploy.
func Run(db *gorm.DB) error {
	for _, stmt := range []string{
		`CREATE EXTENSION IF NOT EXISTS unaccent`,
		`CREATE EXTENSION IF NOT EXISTS pg_trgm`,
	} {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create extension: %w", err)
		}
	}

	// unaccent() is only STABLE, which disqualifies it from expression
	// indexes; this immutable wrapper pins the dictionary argument.
	const unaccentImmutable = `
		CREATE OR REPLACE FUNCTION unaccent_immutable(text)
		RETURNS text AS
		$$ SELECT public.unaccent('public.unaccent', $1) $$
		LANGUAGE sql IMMUTABLE PARALLEL SAFE`
	if err := db.Exec(unaccentImmutable).Error; err != nil {
		return fmt.Errorf("create unaccent_immutable: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Media{},
		&models.Technology{},
		&models.Collection{},
		&models.Post{},
		&models.Comment{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	// Trigram indexes back the word_similarity searches.
	for _, stmt := range []string{
		`CREATE INDEX IF NOT EXISTS idx_technologies_name_trgm
			ON technologies USING gin (unaccent_immutable(name) gin_trgm_ops)`,
		`CREATE INDEX IF NOT EXISTS idx_posts_meta_title_trgm
			ON posts USING gin (unaccent_immutable(meta_title) gin_trgm_ops)`,
	} {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	return nil
}
