package pipeline_test

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/kurochkinivan/loan_ingestor/internal/domain"
)

const csvHeader = "user_id,name,email,monthly_income,credit_score,employment_status,age\n"

// mixedCSV holds one valid row, one with a credit score below range and one
// with an age above range.
const mixedCSV = csvHeader +
	"3f0b6a2c-8a4e-4f0e-9d7b-6f1c2a9e5d41,Asha Rao,asha@example.com,85000,742,Salaried,34\n" +
	"8c1d7e55-2b7a-4c38-a1f4-0e9b6d3c2a10,Ben Ortiz,ben@example.com,42000,250,Business,41\n" +
	"c5e2f9a8-71d3-4b0c-9e6a-5d4f3b2a1c09,Chen Wei,chen@example.com,61000,680,Self-Employed,150\n"

// memoryStore is an in-memory job store, staging area and canonical dataset.
// It applies the same status guard as the SQL upsert.
type memoryStore struct {
	mu         sync.Mutex
	jobs       map[string]domain.IngestionJob
	history    map[string][]domain.Status
	staging    map[string][]*domain.StagingRow
	canonical  map[string]string
	mergeCalls int

	// upsertErrs fails writes of the given statuses without storing them.
	upsertErrs map[domain.Status]error
	attempts   map[string][]domain.Status
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		jobs:       make(map[string]domain.IngestionJob),
		history:    make(map[string][]domain.Status),
		staging:    make(map[string][]*domain.StagingRow),
		canonical:  make(map[string]string),
		upsertErrs: make(map[domain.Status]error),
		attempts:   make(map[string][]domain.Status),
	}
}

func (s *memoryStore) JobByID(_ context.Context, jobID string) (*domain.IngestionJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[jobID]
	if !ok {
		return nil, domain.ErrJobNotFound
	}

	return &job, nil
}

func (s *memoryStore) UpsertJob(_ context.Context, job *domain.IngestionJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attempts[job.JobID] = append(s.attempts[job.JobID], job.Status)

	if err := s.upsertErrs[job.Status]; err != nil {
		return err
	}

	if existing, ok := s.jobs[job.JobID]; ok {
		if existing.CompletedAt != nil || job.Status.Phase() < existing.Status.Phase() {
			return nil
		}
	}

	s.jobs[job.JobID] = *job

	h := s.history[job.JobID]
	if len(h) == 0 || h[len(h)-1] != job.Status {
		s.history[job.JobID] = append(h, job.Status)
	}

	return nil
}

func (s *memoryStore) ReplaceStagingRows(_ context.Context, jobID string, rows []*domain.StagingRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.staging[jobID] = append([]*domain.StagingRow(nil), rows...)

	return nil
}

func (s *memoryStore) MergeStaging(_ context.Context, jobID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mergeCalls++

	for _, row := range s.staging[jobID] {
		if row.IsValid {
			s.canonical[*row.UserID] = jobID
		}
	}

	applied := 0
	for _, owner := range s.canonical {
		if owner == jobID {
			applied++
		}
	}

	return applied, nil
}

func (s *memoryStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (s *memoryStore) job(jobID string) domain.IngestionJob {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.jobs[jobID]
}

func (s *memoryStore) statusHistory(jobID string) []domain.Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]domain.Status(nil), s.history[jobID]...)
}

func (s *memoryStore) failUpserts(status domain.Status, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.upsertErrs[status] = err
}

func (s *memoryStore) upsertAttempts(jobID string) []domain.Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]domain.Status(nil), s.attempts[jobID]...)
}

func (s *memoryStore) stagedRows(jobID string) []*domain.StagingRow {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.staging[jobID]
}

// memoryObjects serves objects from a map keyed by "bucket/key".
type memoryObjects map[string]string

func (m memoryObjects) Open(_ context.Context, bucket, key string) (io.ReadCloser, error) {
	body, ok := m[bucket+"/"+key]
	if !ok {
		return nil, fmt.Errorf("object %s/%s not found", bucket, key)
	}

	return io.NopCloser(strings.NewReader(body)), nil
}

type fakeMessage struct {
	mu      sync.Mutex
	data    []byte
	settled []string
}

func newFakeMessage(data string) *fakeMessage {
	return &fakeMessage{data: []byte(data)}
}

func (m *fakeMessage) Data() []byte { return m.data }
func (m *fakeMessage) Ack() error   { return m.settle("ack") }
func (m *fakeMessage) Nak() error   { return m.settle("nak") }
func (m *fakeMessage) Term() error  { return m.settle("term") }

func (m *fakeMessage) settle(action string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.settled = append(m.settled, action)

	return nil
}

func (m *fakeMessage) actions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string(nil), m.settled...)
}

func uploadEvent(jobID string) *domain.UploadEvent {
	return &domain.UploadEvent{
		Bucket: "uploads-bucket",
		Key:    domain.UploadKey(jobID, "applicants.csv"),
		JobID:  jobID,
	}
}

func s3Notification(bucket, key string) string {
	return fmt.Sprintf(`{"Records":[{"s3":{"bucket":{"name":%q},"object":{"key":%q}}}]}`, bucket, key)
}
