package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/marklens/marklens/internal/analysis"
	"github.com/marklens/marklens/internal/pipeline"
	"github.com/marklens/marklens/internal/source"
	"github.com/marklens/marklens/internal/views"
)

// handleAnalyze accepts a bookmark export either as a multipart upload
// ("file" field) or as a JSON body naming a URL to fetch, plus projection
// options, and queues an analysis job.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		s.analyzeByURL(w, r)
		return
	}
	s.analyzeUpload(w, r)
}

func (s *Server) analyzeUpload(w http.ResponseWriter, r *http.Request) {
	// Limit total request size, with slack for form overhead.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !source.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	opts, err := s.optionsFromForm(r)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.submit(w, filename, data, opts)
}

type analyzeByURLRequest struct {
	URL     string `json:"url"`
	Options struct {
		MaxDepth    int    `json:"max_depth"`
		Mode        string `json:"mode"`
		HeatmapTopN int    `json:"heatmap_top_n"`
		IndentUnit  string `json:"indent_unit"`
	} `json:"options"`
}

func (s *Server) analyzeByURL(w http.ResponseWriter, r *http.Request) {
	var req analyzeByURLRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&req); err != nil {
		jsonError(w, "invalid json body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.URL == "" {
		jsonError(w, "url is required", http.StatusBadRequest)
		return
	}

	mode, err := views.ParseMode(req.Options.Mode)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	opts := analysis.Options{
		MaxDepth:    req.Options.MaxDepth,
		Mode:        mode,
		HeatmapTopN: req.Options.HeatmapTopN,
		IndentUnit:  req.Options.IndentUnit,
	}
	if err := validateOptions(opts); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	export, err := s.fetcher.Get(r.Context(), req.URL)
	if err != nil {
		jsonError(w, "fetch export: "+err.Error(), http.StatusBadGateway)
		return
	}
	filename := sanitizeFilename(export.Filename)
	if !source.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	s.submit(w, filename, export.Data, opts)
}

func (s *Server) submit(w http.ResponseWriter, filename string, data []byte, opts analysis.Options) {
	if opts.HeatmapTopN == 0 {
		opts.HeatmapTopN = s.cfg.DefaultHeatmapTopN
	}

	now := time.Now()
	job := &pipeline.Job{
		ID:          uuid.NewString(),
		Status:      pipeline.StatusQueued,
		Phase:       "queued",
		Filename:    filename,
		Options:     opts,
		ContentHash: pipeline.ContentHashHex(data),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	job.SetFileData(data)

	if err := s.orchestrator.Submit(job); err != nil {
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]any{
		"job_id":   job.ID,
		"status":   job.Status,
		"poll_url": fmt.Sprintf("/api/analyze/%s/status", job.ID),
	})
}

func (s *Server) handleAnalyzeStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	snap := job.Snapshot()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snap)
}

// optionsFromForm reads the projection parameters from multipart form
// values. Out-of-domain values are rejected here, before any work queues.
func (s *Server) optionsFromForm(r *http.Request) (analysis.Options, error) {
	opts := analysis.Options{HeatmapTopN: s.cfg.DefaultHeatmapTopN}

	if v := r.FormValue("max_depth"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, fmt.Errorf("invalid max_depth: %s", v)
		}
		opts.MaxDepth = n
	}
	mode, err := views.ParseMode(r.FormValue("mode"))
	if err != nil {
		return opts, err
	}
	opts.Mode = mode
	if v := r.FormValue("heatmap_top_n"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, fmt.Errorf("invalid heatmap_top_n: %s", v)
		}
		opts.HeatmapTopN = n
	}
	opts.IndentUnit = r.FormValue("indent_unit")

	return opts, validateOptions(opts)
}

func validateOptions(opts analysis.Options) error {
	return opts.Validate()
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
