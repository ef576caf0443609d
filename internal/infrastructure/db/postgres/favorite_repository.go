package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/saifmalkurdi/Flavor-Table/internal/core/domain"
)

// FavoriteRepository persists favorites in the favorites table. The UNIQUE
// constraint on title is the authoritative duplicate guard: under concurrent
// creates with the same title exactly one insert commits and the other maps
// to domain.ErrDuplicateFavorite.
type FavoriteRepository struct {
	db *sql.DB
}

func NewFavoriteRepository(db *sql.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) List(ctx context.Context) ([]domain.Favorite, error) {
	query := `SELECT id, title, image, instructions, ingredients, ready_in
	          FROM favorites
	          ORDER BY id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	favorites := make([]domain.Favorite, 0)
	for rows.Next() {
		fav, err := scanFavorite(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("list favorites: %w", err)
		}
		favorites = append(favorites, *fav)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favorites, nil
}

func (r *FavoriteRepository) Create(ctx context.Context, fav *domain.Favorite) (*domain.Favorite, error) {
	ingredients, err := json.Marshal(fav.Ingredients)
	if err != nil {
		return nil, fmt.Errorf("encode ingredients: %w", err)
	}

	query := `INSERT INTO favorites (title, image, instructions, ingredients, ready_in)
	          VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4::jsonb, $5)
	          RETURNING id, title, image, instructions, ingredients, ready_in`

	row := r.db.QueryRowContext(ctx, query,
		fav.Title, fav.Image, fav.Instructions, ingredients, fav.ReadyIn)

	created, err := scanFavorite(row.Scan)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateFavorite
		}
		return nil, fmt.Errorf("insert favorite: %w", err)
	}
	return created, nil
}

func (r *FavoriteRepository) Update(ctx context.Context, fav *domain.Favorite) (*domain.Favorite, error) {
	ingredients, err := json.Marshal(fav.Ingredients)
	if err != nil {
		return nil, fmt.Errorf("encode ingredients: %w", err)
	}

	query := `UPDATE favorites
	          SET title        = $1,
	              image        = NULLIF($2, ''),
	              instructions = NULLIF($3, ''),
	              ingredients  = $4::jsonb,
	              ready_in     = $5
	          WHERE id = $6
	          RETURNING id, title, image, instructions, ingredients, ready_in`

	row := r.db.QueryRowContext(ctx, query,
		fav.Title, fav.Image, fav.Instructions, ingredients, fav.ReadyIn, fav.ID)

	updated, err := scanFavorite(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFavoriteNotFound
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateFavorite
		}
		return nil, fmt.Errorf("update favorite: %w", err)
	}
	return updated, nil
}

func (r *FavoriteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM favorites WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	if affected == 0 {
		return domain.ErrFavoriteNotFound
	}
	return nil
}

// scanFavorite decodes one favorites row, mapping SQL NULLs and the jsonb
// ingredients column back onto the domain shape.
func scanFavorite(scan func(dest ...any) error) (*domain.Favorite, error) {
	var (
		fav          domain.Favorite
		image        sql.NullString
		instructions sql.NullString
		ingredients  []byte
		readyIn      sql.NullInt32
	)

	if err := scan(&fav.ID, &fav.Title, &image, &instructions, &ingredients, &readyIn); err != nil {
		return nil, err
	}

	fav.Image = image.String
	fav.Instructions = instructions.String
	if readyIn.Valid {
		v := int(readyIn.Int32)
		fav.ReadyIn = &v
	}

	fav.Ingredients = []string{}
	if len(ingredients) > 0 {
		if err := json.Unmarshal(ingredients, &fav.Ingredients); err != nil {
			return nil, fmt.Errorf("decode ingredients: %w", err)
		}
		if fav.Ingredients == nil {
			fav.Ingredients = []string{}
		}
	}

	return &fav, nil
}
