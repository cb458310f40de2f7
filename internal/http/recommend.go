package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/denisok6893-rgb/brew-matching/internal/domain"
	"github.com/denisok6893-rgb/brew-matching/internal/matching"
)

// ---- Recommendations ----

type EquipmentRequest struct {
	Budget          string   `json:"budget"`
	Purposes        []string `json:"purposes"`
	ExperienceLevel string   `json:"experience_level"`
}

func (s *Server) handleRecommendEquipment(w http.ResponseWriter, r *http.Request) {
	var req EquipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, "invalid JSON")
		return
	}

	prefs, err := matching.ParsePreferences(req.Budget, req.Purposes, req.ExperienceLevel)
	if err != nil {
		badRequest(w, r, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.Engine.RecommendEquipment(prefs))
}

func (s *Server) handleBestMatch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	prefs, err := matching.ParsePreferences(q.Get("budget"), q["purpose"], "")
	if err != nil {
		badRequest(w, r, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.Engine.BestMatch(prefs.Budget, prefs.Purposes))
}

// ---- Bean matching ----

type ProfileInput struct {
	MachineType string `json:"machine_type"`
	GrinderType string `json:"grinder_type"`
	BurrType    string `json:"burr_type"`
}

// BeanMatchRequest takes either an explicit profile or a wizard selection.
// Machine and grinder ids refer to catalog records; when a profile is given
// they only feed the grinder and pressure bonuses.
type BeanMatchRequest struct {
	Profile          *ProfileInput `json:"profile"`
	Selection        string        `json:"selection"`
	MachineID        string        `json:"machine_id"`
	GrinderID        string        `json:"grinder_id"`
	Limit            int           `json:"limit"`
	Category         string        `json:"category"`
	FlavorPreference string        `json:"flavor_preference"`
}

type BeanMatchResponse struct {
	Profile domain.EquipmentProfile `json:"profile"`
	Results []domain.BeanMatch      `json:"results"`
}

func (s *Server) handleBeanMatch(w http.ResponseWriter, r *http.Request) {
	var req BeanMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, "invalid JSON")
		return
	}

	cat := s.Engine.Catalog()
	var (
		machine *domain.EspressoMachine
		grinder *domain.CoffeeGrinder
	)
	if req.MachineID != "" {
		m, ok := cat.MachineByID(req.MachineID)
		if !ok {
			notFound(w, r, fmt.Sprintf("machine %q not found", req.MachineID))
			return
		}
		machine = &m
	}
	if req.GrinderID != "" {
		g, ok := cat.GrinderByID(req.GrinderID)
		if !ok {
			notFound(w, r, fmt.Sprintf("grinder %q not found", req.GrinderID))
			return
		}
		grinder = &g
	}

	var profile domain.EquipmentProfile
	if req.Profile != nil {
		p, err := parseProfile(*req.Profile)
		if err != nil {
			badRequest(w, r, err.Error())
			return
		}
		profile = p
	} else {
		sel, err := matching.ParseSelection(req.Selection)
		if err != nil {
			badRequest(w, r, err.Error())
			return
		}
		profile = matching.ProjectProfile(sel, machine, grinder)
	}

	limit := s.limits.Resolve(req.Limit)

	var results []domain.BeanMatch
	switch {
	case req.Category != "":
		category, err := matching.ParseCategory(req.Category)
		if err != nil {
			badRequest(w, r, err.Error())
			return
		}
		results = s.Engine.BeansByCategory(profile, category)
	case req.FlavorPreference != "":
		pref, err := matching.ParseFlavorPreference(req.FlavorPreference)
		if err != nil {
			badRequest(w, r, err.Error())
			return
		}
		beans := matching.FilterByFlavorPreference(cat.Beans, pref)
		results = s.Engine.MatchBeans(beans, profile, machine, grinder)
	default:
		results = s.Engine.TopBeans(profile, machine, grinder, limit)
	}
	if len(results) > limit {
		results = results[:limit]
	}

	s.logger.Debug("beans matched",
		zap.String("machine_type", string(profile.MachineType)),
		zap.Int("results", len(results)),
	)
	writeJSON(w, http.StatusOK, BeanMatchResponse{Profile: profile, Results: results})
}

type CategoryResponse struct {
	Category matching.FlavorCategory `json:"category"`
	Label    string                  `json:"label"`
	Results  []domain.BeanMatch      `json:"results"`
}

func (s *Server) handleBeansByCategory(w http.ResponseWriter, r *http.Request) {
	category, err := matching.ParseCategory(r.PathValue("category"))
	if err != nil {
		badRequest(w, r, err.Error())
		return
	}
	q := r.URL.Query()
	profile, err := parseProfile(ProfileInput{
		MachineType: q.Get("machine_type"),
		GrinderType: q.Get("grinder_type"),
		BurrType:    q.Get("burr_type"),
	})
	if err != nil {
		badRequest(w, r, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, CategoryResponse{
		Category: category,
		Label:    matching.CategoryLabel(category),
		Results:  s.Engine.BeansByCategory(profile, category),
	})
}

func parseProfile(in ProfileInput) (domain.EquipmentProfile, error) {
	return matching.ParseProfile(in.MachineType, in.GrinderType, in.BurrType)
}
