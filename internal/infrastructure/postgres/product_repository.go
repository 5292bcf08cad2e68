package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/cafes-platform-api/internal/domain/entity"
	"github.com/jhoicas/cafes-platform-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const adColumns = `id, vendor_id, product_name, description, price, category, image_url, status, is_active, created_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	db DB
}

// NewProductRepository construye el adaptador de persistencia para anuncios.
func NewProductRepository(db DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// Create persiste un nuevo anuncio.
func (r *ProductRepo) Create(ctx context.Context, ad *entity.ProductAd) error {
	query := `
		INSERT INTO product_ads (id, vendor_id, product_name, description, price, category, image_url, status, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		ad.ID, ad.VendorID, ad.ProductName, ad.Description, ad.Price,
		ad.Category, ad.ImageURL, ad.Status, ad.Active, ad.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product ad: %w", err)
	}
	return nil
}

// GetByID obtiene un anuncio por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.ProductAd, error) {
	row := r.db.QueryRow(ctx, `SELECT `+adColumns+` FROM product_ads WHERE id = $1`, id)
	var ad entity.ProductAd
	err := row.Scan(&ad.ID, &ad.VendorID, &ad.ProductName, &ad.Description, &ad.Price,
		&ad.Category, &ad.ImageURL, &ad.Status, &ad.Active, &ad.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product ad by id: %w", err)
	}
	return &ad, nil
}

// List devuelve todos los anuncios sin orden garantizado más allá del store.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.ProductAd, error) {
	return r.queryAds(ctx, `SELECT `+adColumns+` FROM product_ads`)
}

// ListByVendor anuncios de un vendedor, más recientes primero.
func (r *ProductRepo) ListByVendor(ctx context.Context, vendorID string) ([]*entity.ProductAd, error) {
	return r.queryAds(ctx,
		`SELECT `+adColumns+` FROM product_ads WHERE vendor_id = $1 ORDER BY created_at DESC`, vendorID)
}

// ListApproved listado público: solo approved, con nombre del vendedor,
// ordenado por product_name ascendente.
func (r *ProductRepo) ListApproved(ctx context.Context) ([]repository.ProductAdRow, error) {
	query := `
		SELECT pa.` + joinedAdColumns + `, u.username AS vendor_name
		FROM product_ads pa
		LEFT JOIN users u ON pa.vendor_id = u.id
		WHERE pa.status = 'approved'
		ORDER BY pa.product_name ASC`
	return r.queryAdRows(ctx, query)
}

// ListByStatus anuncios por estado con nombre del vendedor (pantallas de admin).
func (r *ProductRepo) ListByStatus(ctx context.Context, status string) ([]repository.ProductAdRow, error) {
	query := `
		SELECT pa.` + joinedAdColumns + `, u.username AS vendor_name
		FROM product_ads pa
		LEFT JOIN users u ON pa.vendor_id = u.id
		WHERE pa.status = $1
		ORDER BY pa.created_at DESC`
	return r.queryAdRows(ctx, query, status)
}

// ListByCategory anuncios approved de una categoría.
func (r *ProductRepo) ListByCategory(ctx context.Context, category string) ([]repository.ProductAdRow, error) {
	query := `
		SELECT pa.` + joinedAdColumns + `, u.username AS vendor_name
		FROM product_ads pa
		LEFT JOIN users u ON pa.vendor_id = u.id
		WHERE pa.status = 'approved' AND pa.category = $1
		ORDER BY pa.product_name ASC`
	return r.queryAdRows(ctx, query, category)
}

// Update actualiza los campos mutables de un anuncio.
func (r *ProductRepo) Update(ctx context.Context, ad *entity.ProductAd) error {
	query := `
		UPDATE product_ads
		SET product_name = $2, description = $3, price = $4, category = $5,
		    image_url = $6, status = $7, is_active = $8
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		ad.ID, ad.ProductName, ad.Description, ad.Price, ad.Category,
		ad.ImageURL, ad.Status, ad.Active,
	)
	if err != nil {
		return fmt.Errorf("update product ad: %w", err)
	}
	return nil
}

// UpdateStatus sobreescribe el estado de moderación sin condición sobre el
// estado anterior (re-moderar un anuncio rechazado es comportamiento esperado).
func (r *ProductRepo) UpdateStatus(ctx context.Context, id, status string) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE product_ads SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return false, fmt.Errorf("update product status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete elimina un anuncio por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM product_ads WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product ad: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Categories categorías distintas, recortadas y no vacías de anuncios
// approved, ascendente.
func (r *ProductRepo) Categories(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT TRIM(category) AS category
		FROM product_ads
		WHERE status = 'approved' AND TRIM(category) != ''
		ORDER BY category ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var cats []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

const joinedAdColumns = `id, pa.vendor_id, pa.product_name, pa.description, pa.price, pa.category, pa.image_url, pa.status, pa.is_active, pa.created_at`

func (r *ProductRepo) queryAds(ctx context.Context, query string, args ...any) ([]*entity.ProductAd, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list product ads: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductAd
	for rows.Next() {
		var ad entity.ProductAd
		if err := rows.Scan(&ad.ID, &ad.VendorID, &ad.ProductName, &ad.Description, &ad.Price,
			&ad.Category, &ad.ImageURL, &ad.Status, &ad.Active, &ad.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product ad: %w", err)
		}
		list = append(list, &ad)
	}
	return list, rows.Err()
}

func (r *ProductRepo) queryAdRows(ctx context.Context, query string, args ...any) ([]repository.ProductAdRow, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list product ads: %w", err)
	}
	defer rows.Close()
	var list []repository.ProductAdRow
	for rows.Next() {
		var row repository.ProductAdRow
		var vendorName *string
		if err := rows.Scan(&row.ID, &row.VendorID, &row.ProductName, &row.Description, &row.Price,
			&row.Category, &row.ImageURL, &row.Status, &row.Active, &row.CreatedAt, &vendorName); err != nil {
			return nil, fmt.Errorf("scan product ad row: %w", err)
		}
		if vendorName != nil {
			row.VendorName = *vendorName
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
