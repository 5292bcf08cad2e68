package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/cafes-platform-api/internal/domain"
	"github.com/jhoicas/cafes-platform-api/internal/domain/entity"
	"github.com/jhoicas/cafes-platform-api/internal/domain/repository"
)

var _ repository.PartnershipRepository = (*PartnershipRepo)(nil)

const requestColumns = `id, vendor_id, cafe_owner_id, message, proposed_terms, status, is_active, created_at`

// PartnershipRepo implementación del puerto PartnershipRepository sobre PostgreSQL.
type PartnershipRepo struct {
	db DB
}

// NewPartnershipRepository construye el adaptador de persistencia para solicitudes.
func NewPartnershipRepository(db DB) *PartnershipRepo {
	return &PartnershipRepo{db: db}
}

// Create persiste una nueva solicitud. El índice único parcial del par
// pendiente convierte el duplicado concurrente en domain.ErrDuplicate.
func (r *PartnershipRepo) Create(ctx context.Context, p *entity.PartnershipRequest) error {
	query := `
		INSERT INTO partnership_requests (id, vendor_id, cafe_owner_id, message, proposed_terms, status, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.VendorID, p.CafeOwnerID, p.Message, p.ProposedTerms, p.Status, p.Active, p.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert partnership request: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por ID. Devuelve (nil, nil) si no existe.
func (r *PartnershipRepo) GetByID(ctx context.Context, id string) (*entity.PartnershipRequest, error) {
	row := r.db.QueryRow(ctx, `SELECT `+requestColumns+` FROM partnership_requests WHERE id = $1`, id)
	var p entity.PartnershipRequest
	err := row.Scan(&p.ID, &p.VendorID, &p.CafeOwnerID, &p.Message, &p.ProposedTerms,
		&p.Status, &p.Active, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get partnership by id: %w", err)
	}
	return &p, nil
}

// List devuelve todas las solicitudes.
func (r *PartnershipRepo) List(ctx context.Context) ([]*entity.PartnershipRequest, error) {
	return r.queryRequests(ctx, `SELECT `+requestColumns+` FROM partnership_requests`)
}

// ListByVendor solicitudes dirigidas a un vendedor, más recientes primero.
func (r *PartnershipRepo) ListByVendor(ctx context.Context, vendorID string) ([]*entity.PartnershipRequest, error) {
	return r.queryRequests(ctx,
		`SELECT `+requestColumns+` FROM partnership_requests WHERE vendor_id = $1 ORDER BY created_at DESC`,
		vendorID)
}

// ListByOwner solicitudes creadas por un dueño de café, más recientes primero.
func (r *PartnershipRepo) ListByOwner(ctx context.Context, cafeOwnerID string) ([]*entity.PartnershipRequest, error) {
	return r.queryRequests(ctx,
		`SELECT `+requestColumns+` FROM partnership_requests WHERE cafe_owner_id = $1 ORDER BY created_at DESC`,
		cafeOwnerID)
}

// ListByStatus solicitudes por estado con los nombres de ambas partes.
func (r *PartnershipRepo) ListByStatus(ctx context.Context, status string) ([]repository.PartnershipRow, error) {
	query := `
		SELECT pr.id, pr.vendor_id, pr.cafe_owner_id, pr.message, pr.proposed_terms,
		       pr.status, pr.is_active, pr.created_at,
		       v.username AS vendor_name, c.username AS cafe_name
		FROM partnership_requests pr
		LEFT JOIN users v ON pr.vendor_id = v.id
		LEFT JOIN users c ON pr.cafe_owner_id = c.id
		WHERE pr.status = $1
		ORDER BY pr.created_at DESC`
	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("list partnerships by status: %w", err)
	}
	defer rows.Close()
	var list []repository.PartnershipRow
	for rows.Next() {
		var row repository.PartnershipRow
		var vendorName, cafeName *string
		if err := rows.Scan(&row.ID, &row.VendorID, &row.CafeOwnerID, &row.Message, &row.ProposedTerms,
			&row.Status, &row.Active, &row.CreatedAt, &vendorName, &cafeName); err != nil {
			return nil, fmt.Errorf("scan partnership row: %w", err)
		}
		if vendorName != nil {
			row.VendorName = *vendorName
		}
		if cafeName != nil {
			row.CafeName = *cafeName
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Update actualiza los campos mutables de una solicitud.
func (r *PartnershipRepo) Update(ctx context.Context, p *entity.PartnershipRequest) error {
	query := `
		UPDATE partnership_requests
		SET message = $2, proposed_terms = $3, status = $4, is_active = $5
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query, p.ID, p.Message, p.ProposedTerms, p.Status, p.Active)
	if err != nil {
		return fmt.Errorf("update partnership request: %w", err)
	}
	return nil
}

// UpdateStatus sobreescribe el estado sin condición sobre el anterior.
func (r *PartnershipRepo) UpdateStatus(ctx context.Context, id, status string) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE partnership_requests SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return false, fmt.Errorf("update partnership status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete elimina una solicitud por ID.
func (r *PartnershipRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM partnership_requests WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete partnership request: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ExistsPendingBetween true si el par vendedor/dueño ya tiene una solicitud pendiente.
func (r *PartnershipRepo) ExistsPendingBetween(ctx context.Context, vendorID, cafeOwnerID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM partnership_requests
			WHERE vendor_id = $1 AND cafe_owner_id = $2 AND status = 'pending'
		)`, vendorID, cafeOwnerID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("partnership exists: %w", err)
	}
	return exists, nil
}

func (r *PartnershipRepo) queryRequests(ctx context.Context, query string, args ...any) ([]*entity.PartnershipRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list partnership requests: %w", err)
	}
	defer rows.Close()
	var list []*entity.PartnershipRequest
	for rows.Next() {
		var p entity.PartnershipRequest
		if err := rows.Scan(&p.ID, &p.VendorID, &p.CafeOwnerID, &p.Message, &p.ProposedTerms,
			&p.Status, &p.Active, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan partnership request: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
