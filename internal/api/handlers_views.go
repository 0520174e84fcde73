package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/marklens/marklens/internal/analysis"
	"github.com/marklens/marklens/internal/pipeline"
)

// completedResult fetches the finished analysis for a job or writes the
// appropriate error.
func (s *Server) completedResult(w http.ResponseWriter, r *http.Request) *analysis.Result {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return nil
	}
	snap := job.Snapshot()
	if snap.Status == pipeline.StatusFailed {
		jsonError(w, "job failed", http.StatusUnprocessableEntity)
		return nil
	}
	res := job.Result()
	if res == nil {
		jsonError(w, "job not finished", http.StatusConflict)
		return nil
	}
	return res
}

func (s *Server) handleResult(w http.ResponseWriter, r *http.Request) {
	res := s.completedResult(w, r)
	if res == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	res := s.completedResult(w, r)
	if res == nil {
		return
	}

	var payload any
	switch chi.URLParam(r, "view") {
	case "treemap":
		payload = res.Treemap
	case "sunburst":
		payload = res.Sunburst
	case "tree":
		payload = res.Tree
	case "heatmap":
		payload = res.Heatmap
	default:
		jsonError(w, "unknown view", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

func (s *Server) handleTreeText(w http.ResponseWriter, r *http.Request) {
	res := s.completedResult(w, r)
	if res == nil {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(res.TreeText))
}
