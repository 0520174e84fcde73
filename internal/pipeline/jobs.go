package pipeline

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/marklens/marklens/internal/analysis"
)

// JobStatus represents the state of an analysis job.
type JobStatus string

const (
	StatusQueued      JobStatus = "queued"
	StatusLoading     JobStatus = "loading"
	StatusBuilding    JobStatus = "building"
	StatusAggregating JobStatus = "aggregating"
	StatusProjecting  JobStatus = "projecting"
	StatusCompleted   JobStatus = "completed"
	StatusFailed      JobStatus = "failed"
)

// Job tracks one bookmark-export analysis from upload to projected views.
type Job struct {
	mu sync.Mutex

	ID       string    `json:"job_id"`
	Status   JobStatus `json:"status"`
	Phase    string    `json:"phase"`
	Filename string    `json:"filename"`

	Options analysis.Options `json:"options"`

	RecordCount int `json:"record_count"`

	ContentHash string    `json:"content_hash,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Internal: not serialized.
	fileData []byte
	result   *analysis.Result
	errors   []string
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		if now.Sub(job.UpdatedAt) > s.ttl {
			delete(s.jobs, id)
		}
	}
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// AddError records an error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.UpdatedAt = time.Now()
}

// SetRecordCount records how many records the loader produced.
func (j *Job) SetRecordCount(n int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.RecordCount = n
	j.UpdatedAt = time.Now()
}

// SetFileData sets the raw export bytes for processing.
func (j *Job) SetFileData(data []byte) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.fileData = data
}

// FileData returns the raw export bytes.
func (j *Job) FileData() []byte {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.fileData
}

// SetResult stores the finished analysis and drops the raw bytes, which are
// no longer needed.
func (j *Job) SetResult(res *analysis.Result) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.result = res
	j.fileData = nil
	j.UpdatedAt = time.Now()
}

// Result returns the finished analysis, or nil while the job is running.
func (j *Job) Result() *analysis.Result {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.result
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID          string           `json:"job_id"`
	Status      JobStatus        `json:"status"`
	Phase       string           `json:"phase"`
	Filename    string           `json:"filename"`
	Options     analysis.Options `json:"options"`
	RecordCount int              `json:"record_count"`
	Errors      []string         `json:"errors"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := j.errors
	if errs == nil {
		errs = []string{}
	}
	return JobSnapshot{
		ID:          j.ID,
		Status:      j.Status,
		Phase:       j.Phase,
		Filename:    j.Filename,
		Options:     j.Options,
		RecordCount: j.RecordCount,
		Errors:      errs,
	}
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
