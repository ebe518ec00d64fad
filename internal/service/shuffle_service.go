package service

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hkarls/teamdeck/internal/middleware"
	"github.com/hkarls/teamdeck/internal/models"
	"github.com/hkarls/teamdeck/internal/roster"
	"github.com/hkarls/teamdeck/internal/shuffle"
	"github.com/hkarls/teamdeck/internal/storage"
)

// ShuffleService implements the allocation pipeline endpoints: validate,
// shuffle, and grouping retrieval/export.
type ShuffleService struct {
	store storage.Store
}

// NewShuffleService creates a new ShuffleService with the given storage
// backend.
func NewShuffleService(store storage.Store) *ShuffleService {
	return &ShuffleService{store: store}
}

// Register mounts the shuffle routes. All of them require authentication.
func (s *ShuffleService) Register(mux *http.ServeMux, protect func(http.Handler) http.Handler) {
	mux.Handle("POST /api/v1/validate", protect(http.HandlerFunc(s.handleValidate)))
	mux.Handle("POST /api/v1/shuffle", protect(http.HandlerFunc(s.handleShuffle)))
	mux.Handle("GET /api/v1/groupings/{id}", protect(http.HandlerFunc(s.handleGetGrouping)))
	mux.Handle("GET /api/v1/groupings/{id}/export", protect(http.HandlerFunc(s.handleExport)))
}

type shuffleRequest struct {
	RosterID string          `json:"roster_id"`
	Settings models.Settings `json:"settings"`
	Seed     string          `json:"seed"`

	// CarryOver reuses the roster's most recent grouping as the prior
	// grouping: group identities persist positionally and locked
	// members stay where they are.
	CarryOver bool `json:"carry_over"`
}

// loadOwnedRoster fetches the roster and enforces ownership. A roster
// belonging to someone else is reported as not found.
func (s *ShuffleService) loadOwnedRoster(w http.ResponseWriter, r *http.Request, rosterID string) *models.Roster {
	rst, err := s.store.GetRoster(r.Context(), rosterID)
	if err != nil {
		writeError(w, http.StatusNotFound, "roster not found")
		return nil
	}
	if rst.OwnerID != middleware.GetUserID(r.Context()) {
		writeError(w, http.StatusNotFound, "roster not found")
		return nil
	}
	return rst
}

func (s *ShuffleService) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req shuffleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rst := s.loadOwnedRoster(w, r, req.RosterID)
	if rst == nil {
		return
	}

	writeJSON(w, http.StatusOK, shuffle.Validate(rst.People, req.Settings))
}

func (s *ShuffleService) handleShuffle(w http.ResponseWriter, r *http.Request) {
	var req shuffleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rst := s.loadOwnedRoster(w, r, req.RosterID)
	if rst == nil {
		return
	}

	var prior []models.Group
	if req.CarryOver {
		latest, err := s.store.LatestGrouping(r.Context(), rst.ID)
		if err != nil {
			slog.Error("Failed to load prior grouping", "roster_id", rst.ID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to load prior grouping")
			return
		}
		if latest != nil {
			prior = latest.Groups
		}
	}

	groups, err := shuffle.Run(rst.People, req.Settings, req.Seed, prior)
	if err != nil {
		if errors.Is(err, shuffle.ErrInfeasible) {
			// Configuration infeasibility is a structured verdict,
			// not a fault.
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("Shuffle failed", "roster_id", rst.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "shuffle failed")
		return
	}

	grouping := &models.Grouping{
		RosterID: rst.ID,
		Seed:     req.Seed,
		Settings: req.Settings,
		Groups:   groups,
	}
	if err := s.store.CreateGrouping(r.Context(), grouping); err != nil {
		slog.Error("Failed to persist grouping", "roster_id", rst.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to persist grouping")
		return
	}

	slog.Info("Shuffle completed",
		"roster_id", rst.ID,
		"grouping_id", grouping.ID,
		"groups", len(groups),
		"carry_over", req.CarryOver,
	)
	writeJSON(w, http.StatusCreated, grouping)
}

// loadOwnedGrouping fetches a grouping and enforces ownership through
// its roster.
func (s *ShuffleService) loadOwnedGrouping(w http.ResponseWriter, r *http.Request) *models.Grouping {
	grouping, err := s.store.GetGrouping(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "grouping not found")
		return nil
	}
	if s.loadOwnedRoster(w, r, grouping.RosterID) == nil {
		return nil
	}
	return grouping
}

func (s *ShuffleService) handleGetGrouping(w http.ResponseWriter, r *http.Request) {
	if grouping := s.loadOwnedGrouping(w, r); grouping != nil {
		writeJSON(w, http.StatusOK, grouping)
	}
}

func (s *ShuffleService) handleExport(w http.ResponseWriter, r *http.Request) {
	grouping := s.loadOwnedGrouping(w, r)
	if grouping == nil {
		return
	}

	switch format := r.URL.Query().Get("format"); format {
	case "text":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(roster.ExportText(grouping.Groups)))
	case "csv":
		out, err := roster.ExportCSV(grouping.Groups)
		if err != nil {
			slog.Error("CSV export failed", "grouping_id", grouping.ID, "error", err)
			writeError(w, http.StatusInternalServerError, "export failed")
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(out))
	case "json", "":
		data, err := roster.ExportJSON(grouping.Groups)
		if err != nil {
			slog.Error("JSON export failed", "grouping_id", grouping.ID, "error", err)
			writeError(w, http.StatusInternalServerError, "export failed")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	default:
		writeError(w, http.StatusBadRequest, "format must be text, csv, or json")
	}
}
