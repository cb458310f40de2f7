package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/denisok6893-rgb/brew-matching/internal/domain"
	"github.com/denisok6893-rgb/brew-matching/internal/matching"
	"github.com/denisok6893-rgb/brew-matching/internal/storage"
)

// EquipmentStore persists the user's own gear. *storage.SQLiteStore
// implements it; lookups of unknown ids return storage.ErrNotFound.
type EquipmentStore interface {
	AddEquipment(ctx context.Context, e domain.UserEquipment) (domain.UserEquipment, error)
	GetEquipment(ctx context.Context, id string) (domain.UserEquipment, error)
	ListEquipment(ctx context.Context) ([]domain.UserEquipment, error)
	DeleteEquipment(ctx context.Context, id string) (bool, error)
	AddFavoriteBean(ctx context.Context, id, beanID string) (domain.UserEquipment, error)
	RemoveFavoriteBean(ctx context.Context, id, beanID string) (domain.UserEquipment, error)
	RecordMaintenance(ctx context.Context, id string, at time.Time) (domain.UserEquipment, error)
}

var _ EquipmentStore = (*storage.SQLiteStore)(nil)

type EquipmentListResponse struct {
	Total int                    `json:"total"`
	Items []domain.UserEquipment `json:"items"`
}

type CreateEquipmentRequest struct {
	CatalogID    string     `json:"catalog_id"`
	Kind         string     `json:"kind"`
	Name         string     `json:"name"`
	Brand        string     `json:"brand"`
	PurchaseDate *time.Time `json:"purchase_date"`
	Notes        string     `json:"notes"`
}

type FavoriteRequest struct {
	BeanID string `json:"bean_id"`
}

type MaintenanceRequest struct {
	At *time.Time `json:"at"`
}

type EquipmentBeansResponse struct {
	Profile domain.EquipmentProfile `json:"profile"`
	Machine *domain.EspressoMachine `json:"machine"`
	Grinder *domain.CoffeeGrinder   `json:"grinder"`
	Results []domain.BeanMatch      `json:"results"`
}

func (s *Server) requireStore(w http.ResponseWriter, r *http.Request) bool {
	if s.Store == nil {
		storeUnavailable(w, r)
		return false
	}
	return true
}

// storeError maps a store failure onto a problem response.
func (s *Server) storeError(w http.ResponseWriter, r *http.Request, id string, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		notFound(w, r, fmt.Sprintf("equipment %q not found", id))
		return
	}
	s.logger.Error("equipment store", zap.String("path", r.URL.Path), zap.Error(err))
	internalError(w, r)
}

func (s *Server) handleEquipmentList(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w, r) {
		return
	}
	items, err := s.Store.ListEquipment(r.Context())
	if err != nil {
		s.storeError(w, r, "", err)
		return
	}
	writeJSON(w, http.StatusOK, EquipmentListResponse{Total: len(items), Items: items})
}

func (s *Server) handleEquipmentCreate(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w, r) {
		return
	}

	var req CreateEquipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, "invalid JSON")
		return
	}
	kind, err := domain.ParseEquipmentKind(req.Kind)
	if err != nil {
		badRequest(w, r, err.Error())
		return
	}

	e := domain.UserEquipment{
		CatalogID:    req.CatalogID,
		Kind:         kind,
		Name:         req.Name,
		Brand:        req.Brand,
		PurchaseDate: req.PurchaseDate,
		Notes:        req.Notes,
	}
	if req.CatalogID != "" {
		name, brand, ok := s.catalogItem(kind, req.CatalogID)
		if !ok {
			badRequest(w, r, fmt.Sprintf("%s %q is not in the catalog", kind, req.CatalogID))
			return
		}
		if e.Name == "" {
			e.Name = name
		}
		if e.Brand == "" {
			e.Brand = brand
		}
	}
	if e.Name == "" {
		badRequest(w, r, "name is required for custom equipment")
		return
	}

	saved, err := s.Store.AddEquipment(r.Context(), e)
	if err != nil {
		s.storeError(w, r, "", err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) catalogItem(kind domain.EquipmentKind, id string) (name, brand string, ok bool) {
	cat := s.Engine.Catalog()
	switch kind {
	case domain.EquipmentMachine:
		if m, found := cat.MachineByID(id); found {
			return m.Name, m.Brand, true
		}
	case domain.EquipmentGrinder:
		if g, found := cat.GrinderByID(id); found {
			return g.Name, g.Brand, true
		}
	}
	return "", "", false
}

func (s *Server) handleEquipmentGet(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w, r) {
		return
	}
	id := r.PathValue("id")
	e, err := s.Store.GetEquipment(r.Context(), id)
	if err != nil {
		s.storeError(w, r, id, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) handleEquipmentDelete(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w, r) {
		return
	}
	id := r.PathValue("id")
	deleted, err := s.Store.DeleteEquipment(r.Context(), id)
	if err != nil {
		s.storeError(w, r, id, err)
		return
	}
	if !deleted {
		notFound(w, r, fmt.Sprintf("equipment %q not found", id))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleFavoriteAdd(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w, r) {
		return
	}
	id := r.PathValue("id")

	var req FavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, "invalid JSON")
		return
	}
	if _, ok := s.Engine.Catalog().BeanByID(req.BeanID); !ok {
		notFound(w, r, fmt.Sprintf("bean %q not found", req.BeanID))
		return
	}

	e, err := s.Store.AddFavoriteBean(r.Context(), id, req.BeanID)
	if err != nil {
		s.storeError(w, r, id, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) handleFavoriteRemove(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w, r) {
		return
	}
	id := r.PathValue("id")
	e, err := s.Store.RemoveFavoriteBean(r.Context(), id, r.PathValue("beanId"))
	if err != nil {
		s.storeError(w, r, id, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// handleMaintenance records a maintenance date. An empty body means now.
func (s *Server) handleMaintenance(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w, r) {
		return
	}
	id := r.PathValue("id")

	var req MaintenanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(w, r, "invalid JSON")
		return
	}
	at := s.now()
	if req.At != nil {
		at = *req.At
	}

	e, err := s.Store.RecordMaintenance(r.Context(), id, at)
	if err != nil {
		s.storeError(w, r, id, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// handleEquipmentBeans ranks beans for the saved setup.
func (s *Server) handleEquipmentBeans(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w, r) {
		return
	}
	items, err := s.Store.ListEquipment(r.Context())
	if err != nil {
		s.storeError(w, r, "", err)
		return
	}

	limit, _ := parseLimitOffset(r, s.limits.Resolve(0), 0)
	limit = s.limits.Resolve(limit)

	profile, machine, grinder := matching.ProfileFromEquipment(items, s.Engine.Catalog())
	writeJSON(w, http.StatusOK, EquipmentBeansResponse{
		Profile: profile,
		Machine: machine,
		Grinder: grinder,
		Results: s.Engine.TopBeans(profile, machine, grinder, limit),
	})
}
