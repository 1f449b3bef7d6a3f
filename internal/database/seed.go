package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const upsertProduct = `
	INSERT INTO products (
		id, name, description, price, original_price, image, category, brand,
		rating, review_count, tag, weight, flavour, diet_type, speciality, info, items
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	ON CONFLICT (id) DO UPDATE SET
		name = EXCLUDED.name,
		description = EXCLUDED.description,
		price = EXCLUDED.price,
		original_price = EXCLUDED.original_price,
		image = EXCLUDED.image,
		category = EXCLUDED.category,
		brand = EXCLUDED.brand,
		rating = EXCLUDED.rating,
		review_count = EXCLUDED.review_count,
		tag = EXCLUDED.tag,
		weight = EXCLUDED.weight,
		flavour = EXCLUDED.flavour,
		diet_type = EXCLUDED.diet_type,
		speciality = EXCLUDED.speciality,
		info = EXCLUDED.info,
		items = EXCLUDED.items,
		updated_at = NOW()
`

// Seed upserts the fixed catalogue. Safe to run on every startup.
func Seed(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	for _, p := range Catalog {
		_, err := pool.Exec(ctx, upsertProduct,
			p.ID,
			p.Name,
			p.Description,
			p.Price,
			p.OriginalPrice,
			p.Image,
			p.Category,
			p.Brand,
			p.Rating,
			p.ReviewCount,
			p.Tag,
			p.Weight,
			p.Flavour,
			p.DietType,
			p.Speciality,
			p.Info,
			p.Items,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert product %s: %w", p.ID, err)
		}
	}

	logger.Info().Int("count", len(Catalog)).Msg("catalogue seed applied")

	return nil
}
