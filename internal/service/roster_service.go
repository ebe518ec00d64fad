package service

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hkarls/teamdeck/internal/middleware"
	"github.com/hkarls/teamdeck/internal/models"
	"github.com/hkarls/teamdeck/internal/roster"
	"github.com/hkarls/teamdeck/internal/storage"
)

// RosterService implements roster creation, import, and retrieval.
type RosterService struct {
	store storage.Store
}

// NewRosterService creates a new RosterService with the given storage
// backend.
func NewRosterService(store storage.Store) *RosterService {
	return &RosterService{store: store}
}

// Register mounts the roster routes. All of them require authentication.
func (s *RosterService) Register(mux *http.ServeMux, protect func(http.Handler) http.Handler) {
	mux.Handle("POST /api/v1/rosters", protect(http.HandlerFunc(s.handleCreate)))
	mux.Handle("POST /api/v1/rosters/import", protect(http.HandlerFunc(s.handleImport)))
	mux.Handle("GET /api/v1/rosters", protect(http.HandlerFunc(s.handleList)))
	mux.Handle("GET /api/v1/rosters/{id}", protect(http.HandlerFunc(s.handleGet)))
}

type createRosterRequest struct {
	Name   string          `json:"name"`
	People []roster.Record `json:"people"`
}

func (s *RosterService) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRosterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	people, err := roster.Coerce(req.People)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rst := &models.Roster{
		OwnerID: middleware.GetUserID(r.Context()),
		Name:    req.Name,
		People:  people,
	}
	if err := s.store.CreateRoster(r.Context(), rst); err != nil {
		slog.Error("CreateRoster failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create roster")
		return
	}

	slog.Info("Roster created", "roster_id", rst.ID, "people", len(rst.People))
	writeJSON(w, http.StatusCreated, rst)
}

// handleImport creates a roster from one of the two accepted file
// encodings. The format query parameter selects csv or json; the roster
// name comes from the name query parameter.
func (s *RosterService) handleImport(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "name query parameter is required")
		return
	}

	var people []models.Person
	var err error
	switch format := r.URL.Query().Get("format"); format {
	case "csv":
		people, err = roster.ImportCSV(r.Body)
	case "json", "":
		people, err = roster.ImportJSON(r.Body)
	default:
		writeError(w, http.StatusBadRequest, "format must be csv or json")
		return
	}
	if err != nil {
		if errors.Is(err, roster.ErrMalformed) || errors.Is(err, roster.ErrEmptyImport) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("Import failed", "error", err)
		writeError(w, http.StatusInternalServerError, "import failed")
		return
	}

	rst := &models.Roster{
		OwnerID: middleware.GetUserID(r.Context()),
		Name:    name,
		People:  people,
	}
	if err := s.store.CreateRoster(r.Context(), rst); err != nil {
		slog.Error("CreateRoster failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create roster")
		return
	}

	slog.Info("Roster imported", "roster_id", rst.ID, "people", len(rst.People))
	writeJSON(w, http.StatusCreated, rst)
}

func (s *RosterService) handleList(w http.ResponseWriter, r *http.Request) {
	rosters, err := s.store.ListRosters(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		slog.Error("ListRosters failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list rosters")
		return
	}
	if rosters == nil {
		rosters = []models.Roster{}
	}
	writeJSON(w, http.StatusOK, rosters)
}

func (s *RosterService) handleGet(w http.ResponseWriter, r *http.Request) {
	rst, err := s.store.GetRoster(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "roster not found")
		return
	}
	if rst.OwnerID != middleware.GetUserID(r.Context()) {
		writeError(w, http.StatusNotFound, "roster not found")
		return
	}
	writeJSON(w, http.StatusOK, rst)
}
