package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/wordchain/pkg/buildinfo"
	"github.com/matzehuels/wordchain/pkg/chain"
	"github.com/matzehuels/wordchain/pkg/errors"
	"github.com/matzehuels/wordchain/pkg/history"
	wcio "github.com/matzehuels/wordchain/pkg/io"
	"github.com/matzehuels/wordchain/pkg/pipeline"
)

const defaultListLimit = 20

type modeInfo struct {
	Mode string `json:"mode"`
	Name string `json:"name"`
}

type chainRequest struct {
	Words   []string `json:"words"`
	Mode    string   `json:"mode,omitempty"`
	Refresh bool     `json:"refresh,omitempty"`
}

type chainResponse struct {
	ID     string `json:"id"`
	Cached bool   `json:"cached"`
	wcio.Result
}

type graphRequest struct {
	Words    []string `json:"words"`
	Format   string   `json:"format,omitempty"`
	Mode     string   `json:"mode,omitempty"`
	Degrees  bool     `json:"degrees,omitempty"`
	Annotate bool     `json:"annotate,omitempty"`
}

type errorBody struct {
	Error wcio.ResultError `json:"error"`
}

// handleHealth returns a JSON health check response.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
		buildinfo.Info
	}{Status: "ok", Info: buildinfo.Get()})
}

// handleModes lists the chaining modes.
func (s *Server) handleModes(w http.ResponseWriter, r *http.Request) {
	modes := make([]modeInfo, 0, len(chain.Modes()))
	for _, m := range chain.Modes() {
		p, err := chain.ForMode(m)
		if err != nil {
			continue
		}
		modes = append(modes, modeInfo{Mode: string(m), Name: p.Name()})
	}
	writeJSON(w, http.StatusOK, modes)
}

// handleCreateChain chains the posted words and records the run.
func (s *Server) handleCreateChain(w http.ResponseWriter, r *http.Request) {
	var req chainRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := errors.ValidateWords(req.Words); err != nil {
		s.writeError(w, err)
		return
	}

	res, err := s.runner.Execute(r.Context(), pipeline.Options{
		Words:   req.Words,
		Mode:    req.Mode,
		Refresh: req.Refresh,
	})
	if err != nil && !errors.IsUnchainable(err) {
		s.writeError(w, err)
		return
	}

	mode, chained, cached := req.Mode, []string(nil), false
	if res != nil {
		// Cached chains are rechecked before they are served.
		if verr := chain.Validate(res.Chain, res.Mode == chain.ModeCircuit); verr != nil {
			s.writeError(w, errors.Wrap(errors.ErrCodeInternalInconsistency, verr, "invalid chain"))
			return
		}
		mode, chained, cached = string(res.Mode), res.Chain, res.Cached
	} else if m, perr := chain.ParseMode(req.Mode); perr == nil {
		mode = string(m)
	} else {
		mode = string(chain.DefaultMode)
	}

	rec := history.NewRecord(mode, req.Words, chained, err)
	rec.Cached = cached
	if serr := s.store.Save(r.Context(), rec); serr != nil {
		s.logger.Error("save run", "id", rec.ID, "error", serr)
	}

	status := http.StatusCreated
	if err != nil {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, chainResponse{
		ID:     rec.ID,
		Cached: cached,
		Result: wcio.NewResult(mode, chained, err),
	})
}

// handleGetChain returns a recorded run.
func (s *Server) handleGetChain(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// handleListChains returns recent runs.
func (s *Server) handleListChains(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if q := r.URL.Query().Get("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n <= 0 {
			s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid limit %q", q))
			return
		}
		limit = n
	}

	recs, err := s.store.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if recs == nil {
		recs = []*history.Record{}
	}
	writeJSON(w, http.StatusOK, recs)
}

// handleGraph renders the letter graph of the posted words.
func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	var req graphRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := errors.ValidateWords(req.Words); err != nil {
		s.writeError(w, err)
		return
	}

	res, err := s.runner.Graph(r.Context(), pipeline.Options{
		Words:    req.Words,
		Mode:     req.Mode,
		Format:   req.Format,
		Degrees:  req.Degrees,
		Annotate: req.Annotate,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	contentType := "image/svg+xml"
	if res.Format == pipeline.FormatDOT {
		contentType = "text/vnd.graphviz; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Data)
}

// decode reads a JSON body into v, writing a 400 response on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBody)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body"))
		return false
	}
	return true
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, status, errorBody{Error: wcio.ResultError{
		Code:    string(code),
		Message: errors.UserMessage(err),
	}})
}

// statusFor maps an error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errors.ErrCodeNotFound):
		return http.StatusNotFound
	case errors.IsUnchainable(err):
		return http.StatusUnprocessableEntity
	case errors.IsInputError(err):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
