package seeder

import (
	"context"
	"fmt"

	"skillswap/internal/database"
)

type CategoriesSeeder struct{}

func (CategoriesSeeder) Name() string { return "skill_categories" }

func (CategoriesSeeder) Run(ctx context.Context, db database.DB) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, name := range []string{
		"Programming",
		"Languages",
		"Music",
		"Cooking",
		"Fitness",
		"Design",
	} {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO skill_categories (id, name, is_active) VALUES (gen_random_uuid(), $1, TRUE) ON CONFLICT (name) DO NOTHING`,
			name,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Name     string
		Category string
	}{
		{Name: "Go", Category: "Programming"},
		{Name: "Python", Category: "Programming"},
		{Name: "Rust", Category: "Programming"},
		{Name: "JavaScript", Category: "Programming"},
		{Name: "Spanish", Category: "Languages"},
		{Name: "French", Category: "Languages"},
		{Name: "Guitar", Category: "Music"},
		{Name: "Piano", Category: "Music"},
		{Name: "Baking", Category: "Cooking"},
		{Name: "Yoga", Category: "Fitness"},
		{Name: "UI Design", Category: "Design"},
	}

	for _, it := range items {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO skills (id, name, category_id)
			 SELECT gen_random_uuid(), $1, c.id FROM skill_categories c WHERE c.name = $2
			 ON CONFLICT (name, category_id) DO NOTHING`,
			it.Name,
			it.Category,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
