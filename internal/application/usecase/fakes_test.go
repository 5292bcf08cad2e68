package usecase_test

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/cafes-platform-api/internal/domain"
	"github.com/jhoicas/cafes-platform-api/internal/domain/entity"
	"github.com/jhoicas/cafes-platform-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	ads map[string]*entity.ProductAd
	// nombres visibles por vendor_id, para los listados con JOIN
	vendorNames map[string]string
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		ads:         map[string]*entity.ProductAd{},
		vendorNames: map[string]string{},
	}
}

func (r *fakeProductRepo) Create(_ context.Context, ad *entity.ProductAd) error {
	cp := *ad
	r.ads[ad.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.ProductAd, error) {
	ad, ok := r.ads[id]
	if !ok {
		return nil, nil
	}
	cp := *ad
	return &cp, nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]*entity.ProductAd, error) {
	out := make([]*entity.ProductAd, 0, len(r.ads))
	for _, ad := range r.ads {
		cp := *ad
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, ad *entity.ProductAd) error {
	cp := *ad
	r.ads[ad.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := r.ads[id]; !ok {
		return false, nil
	}
	delete(r.ads, id)
	return true, nil
}

func (r *fakeProductRepo) ListByVendor(_ context.Context, vendorID string) ([]*entity.ProductAd, error) {
	var out []*entity.ProductAd
	for _, ad := range r.ads {
		if ad.VendorID == vendorID {
			cp := *ad
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ListApproved(_ context.Context) ([]repository.ProductAdRow, error) {
	return r.rows(func(ad *entity.ProductAd) bool {
		return ad.Status == entity.StatusApproved
	}), nil
}

func (r *fakeProductRepo) ListByStatus(_ context.Context, status string) ([]repository.ProductAdRow, error) {
	return r.rows(func(ad *entity.ProductAd) bool {
		return ad.Status == status
	}), nil
}

func (r *fakeProductRepo) ListByCategory(_ context.Context, category string) ([]repository.ProductAdRow, error) {
	return r.rows(func(ad *entity.ProductAd) bool {
		return ad.Status == entity.StatusApproved && ad.Category == category
	}), nil
}

func (r *fakeProductRepo) UpdateStatus(_ context.Context, id, status string) (bool, error) {
	ad, ok := r.ads[id]
	if !ok {
		return false, nil
	}
	ad.Status = status
	return true, nil
}

func (r *fakeProductRepo) Categories(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, ad := range r.ads {
		cat := strings.TrimSpace(ad.Category)
		if ad.Status != entity.StatusApproved || cat == "" || seen[cat] {
			continue
		}
		seen[cat] = true
		out = append(out, cat)
	}
	sort.Strings(out)
	return out, nil
}

func (r *fakeProductRepo) rows(keep func(*entity.ProductAd) bool) []repository.ProductAdRow {
	var out []repository.ProductAdRow
	for _, ad := range r.ads {
		if keep(ad) {
			out = append(out, repository.ProductAdRow{
				ProductAd:  *ad,
				VendorName: r.vendorNames[ad.VendorID],
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductName < out[j].ProductName })
	return out
}

type fakePartnershipRepo struct {
	reqs map[string]*entity.PartnershipRequest
}

func newFakePartnershipRepo() *fakePartnershipRepo {
	return &fakePartnershipRepo{reqs: map[string]*entity.PartnershipRequest{}}
}

func (r *fakePartnershipRepo) Create(_ context.Context, p *entity.PartnershipRequest) error {
	cp := *p
	r.reqs[p.ID] = &cp
	return nil
}

func (r *fakePartnershipRepo) GetByID(_ context.Context, id string) (*entity.PartnershipRequest, error) {
	p, ok := r.reqs[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePartnershipRepo) List(_ context.Context) ([]*entity.PartnershipRequest, error) {
	out := make([]*entity.PartnershipRequest, 0, len(r.reqs))
	for _, p := range r.reqs {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakePartnershipRepo) Update(_ context.Context, p *entity.PartnershipRequest) error {
	cp := *p
	r.reqs[p.ID] = &cp
	return nil
}

func (r *fakePartnershipRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := r.reqs[id]; !ok {
		return false, nil
	}
	delete(r.reqs, id)
	return true, nil
}

func (r *fakePartnershipRepo) ListByVendor(_ context.Context, vendorID string) ([]*entity.PartnershipRequest, error) {
	var out []*entity.PartnershipRequest
	for _, p := range r.reqs {
		if p.VendorID == vendorID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakePartnershipRepo) ListByOwner(_ context.Context, cafeOwnerID string) ([]*entity.PartnershipRequest, error) {
	var out []*entity.PartnershipRequest
	for _, p := range r.reqs {
		if p.CafeOwnerID == cafeOwnerID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakePartnershipRepo) ListByStatus(_ context.Context, status string) ([]repository.PartnershipRow, error) {
	var out []repository.PartnershipRow
	for _, p := range r.reqs {
		if p.Status == status {
			out = append(out, repository.PartnershipRow{PartnershipRequest: *p})
		}
	}
	return out, nil
}

func (r *fakePartnershipRepo) UpdateStatus(_ context.Context, id, status string) (bool, error) {
	p, ok := r.reqs[id]
	if !ok {
		return false, nil
	}
	p.Status = status
	return true, nil
}

func (r *fakePartnershipRepo) ExistsPendingBetween(_ context.Context, vendorID, cafeOwnerID string) (bool, error) {
	for _, p := range r.reqs {
		if p.VendorID == vendorID && p.CafeOwnerID == cafeOwnerID && p.Status == entity.StatusPending {
			return true, nil
		}
	}
	return false, nil
}

// fakePartnershipTx ejecuta el callback directamente contra el repo (sin
// transacción real; la atomicidad la cubren los tests de integración).
type fakePartnershipTx struct {
	repo repository.PartnershipRepository
}

func (t *fakePartnershipTx) RunPartnerships(ctx context.Context, fn func(reqs repository.PartnershipRepository) error) error {
	return fn(t.repo)
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	u, err := r.GetByEmail(ctx, email)
	return u != nil, err
}

func (r *fakeUserRepo) ListByRole(_ context.Context, role string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.Role == role {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) ListActiveByRole(ctx context.Context, role string) ([]*entity.User, error) {
	all, _ := r.ListByRole(ctx, role)
	var out []*entity.User
	for _, u := range all {
		if u.Active {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) ToggleStatus(_ context.Context, id string) (bool, error) {
	u, ok := r.users[id]
	if !ok {
		return false, domain.ErrUserNotFound
	}
	u.Active = !u.Active
	return u.Active, nil
}
