package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/cafes-platform-api/internal/application/dto"
	"github.com/jhoicas/cafes-platform-api/internal/domain"
	"github.com/jhoicas/cafes-platform-api/internal/domain/entity"
	"github.com/jhoicas/cafes-platform-api/internal/domain/repository"
	"github.com/jhoicas/cafes-platform-api/pkg/validator"
)

// partnershipInput entrada interna: la petición más el dueño de café
// resuelto del actor autenticado.
type partnershipInput struct {
	dto.CreatePartnershipRequest
	cafeOwnerID string
}

// PartnershipUseCase casos de uso de solicitudes de partnership. La creación
// no pasa por CrudService porque el guard de duplicado exige transacción;
// comparte las mismas estrategias validate/sanitize/build.
type PartnershipUseCase struct {
	repo repository.PartnershipRepository
	tx   PartnershipTxRunner
}

// NewPartnershipUseCase construye el caso de uso.
func NewPartnershipUseCase(repo repository.PartnershipRepository, tx PartnershipTxRunner) *PartnershipUseCase {
	return &PartnershipUseCase{repo: repo, tx: tx}
}

func validatePartnership(v *validator.Validator, in partnershipInput) {
	v.Required(in.VendorID, "El vendedor")
	v.Required(in.cafeOwnerID, "El dueño del café")
	v.MaxLength(in.Message, 2000, "El mensaje")
	v.MaxLength(in.ProposedTerms, 2000, "Los términos propuestos")
}

func sanitizePartnership(in partnershipInput) partnershipInput {
	in.VendorID = strings.TrimSpace(in.VendorID)
	in.Message = strings.TrimSpace(in.Message)
	in.ProposedTerms = strings.TrimSpace(in.ProposedTerms)
	return in
}

// buildPartnership materializa la solicitud; siempre nace pending.
func buildPartnership(in partnershipInput) *entity.PartnershipRequest {
	return &entity.PartnershipRequest{
		ID:            uuid.New().String(),
		VendorID:      in.VendorID,
		CafeOwnerID:   in.cafeOwnerID,
		Message:       in.Message,
		ProposedTerms: in.ProposedTerms,
		Status:        entity.StatusPending,
		Active:        true,
		CreatedAt:     time.Now(),
	}
}

// CreateRequest crea una solicitud del dueño de café autenticado hacia un
// vendedor. El guard de duplicado (par con solicitud pendiente) y el insert
// corren en una transacción; el índice único parcial cubre la carrera.
func (uc *PartnershipUseCase) CreateRequest(ctx context.Context, cafeOwnerID string, in dto.CreatePartnershipRequest) (*dto.PartnershipResponse, error) {
	input := partnershipInput{CreatePartnershipRequest: in, cafeOwnerID: cafeOwnerID}
	v := validator.New()
	validatePartnership(v, input)
	if !v.IsValid() {
		return nil, domain.NewValidationError(v.Errors()...)
	}
	input = sanitizePartnership(input)
	request := buildPartnership(input)

	err := uc.tx.RunPartnerships(ctx, func(partnerships repository.PartnershipRepository) error {
		exists, err := partnerships.ExistsPendingBetween(ctx, input.VendorID, cafeOwnerID)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrDuplicate
		}
		return partnerships.Create(ctx, request)
	})
	if err != nil {
		return nil, err
	}
	return toPartnershipResponse(request), nil
}

// RequestsByStatus listado de moderación con nombres de ambas partes; el
// estado se valida contra el conjunto cerrado.
func (uc *PartnershipUseCase) RequestsByStatus(ctx context.Context, status string) ([]dto.PartnershipResponse, error) {
	v := validator.New()
	if !v.InArray(status, entity.ModerationStatuses, "El estado") {
		return nil, domain.NewValidationError(v.Errors()...)
	}
	rows, err := uc.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PartnershipResponse, 0, len(rows))
	for _, row := range rows {
		resp := toPartnershipResponse(&row.PartnershipRequest)
		resp.VendorName = row.VendorName
		resp.CafeName = row.CafeName
		out = append(out, *resp)
	}
	return out, nil
}

// VendorRequests solicitudes dirigidas al vendedor autenticado.
func (uc *PartnershipUseCase) VendorRequests(ctx context.Context, vendorID string) ([]dto.PartnershipResponse, error) {
	list, err := uc.repo.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	return toPartnershipResponses(list), nil
}

// OwnerRequests solicitudes creadas por el dueño de café autenticado.
func (uc *PartnershipUseCase) OwnerRequests(ctx context.Context, cafeOwnerID string) ([]dto.PartnershipResponse, error) {
	list, err := uc.repo.ListByOwner(ctx, cafeOwnerID)
	if err != nil {
		return nil, err
	}
	return toPartnershipResponses(list), nil
}

// Approve transición a approved; misma semántica de sobreescritura
// incondicional que la moderación de anuncios.
func (uc *PartnershipUseCase) Approve(ctx context.Context, id string) error {
	return uc.setStatus(ctx, id, entity.StatusApproved)
}

// Reject transición a rejected.
func (uc *PartnershipUseCase) Reject(ctx context.Context, id string) error {
	return uc.setStatus(ctx, id, entity.StatusRejected)
}

func (uc *PartnershipUseCase) setStatus(ctx context.Context, id, status string) error {
	ok, err := uc.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func toPartnershipResponse(p *entity.PartnershipRequest) *dto.PartnershipResponse {
	if p == nil {
		return nil
	}
	return &dto.PartnershipResponse{
		ID:            p.ID,
		VendorID:      p.VendorID,
		CafeOwnerID:   p.CafeOwnerID,
		Message:       p.Message,
		ProposedTerms: p.ProposedTerms,
		Status:        p.Status,
		Active:        p.Active,
		CreatedAt:     p.CreatedAt,
	}
}

func toPartnershipResponses(list []*entity.PartnershipRequest) []dto.PartnershipResponse {
	out := make([]dto.PartnershipResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toPartnershipResponse(p))
	}
	return out
}
