package serviceimpl

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"search-funnel/domain/models"
	"search-funnel/domain/repositories"
	"search-funnel/domain/services"
	"search-funnel/pkg/logger"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "serviceimpl-logs")
	if err != nil {
		panic(err)
	}
	_ = logger.Init(dir, false)
	code := m.Run()
	logger.Close()
	os.RemoveAll(dir)
	os.Exit(code)
}

// Mocks embed the repository interface so only the methods a test touches
// need an implementation; anything else panics.

type MockCategoryRepository struct {
	mock.Mock
	repositories.CategoryRepository
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*models.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	args := m.Called(ctx, slug)
	if c := args.Get(0); c != nil {
		return c.(*models.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) CountBlogs(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockBlogRepository struct {
	mock.Mock
	repositories.BlogRepository
}

func (m *MockBlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	args := m.Called(ctx, blog)
	return args.Error(0)
}

func (m *MockBlogRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*models.Blog), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBlogRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockBlogRepository) Update(ctx context.Context, blog *models.Blog) error {
	args := m.Called(ctx, blog)
	return args.Error(0)
}

func (m *MockBlogRepository) ListAll(ctx context.Context) ([]models.Blog, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Blog), args.Error(1)
}

type MockCascadeRepository struct {
	mock.Mock
}

func (m *MockCascadeRepository) DeleteBlog(ctx context.Context, id uuid.UUID) (*repositories.CascadeReport, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*repositories.CascadeReport), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCascadeRepository) DeleteRelatedSearch(ctx context.Context, id uuid.UUID) (*repositories.CascadeReport, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*repositories.CascadeReport), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockRelatedSearchRepository struct {
	mock.Mock
	repositories.RelatedSearchRepository
}

func (m *MockRelatedSearchRepository) GetWithBlog(ctx context.Context, id uuid.UUID) (*models.RelatedSearch, error) {
	args := m.Called(ctx, id)
	if s := args.Get(0); s != nil {
		return s.(*models.RelatedSearch), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockWebResultRepository struct {
	mock.Mock
	repositories.WebResultRepository
}

func (m *MockWebResultRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.WebResult, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*models.WebResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockWebResultRepository) ListBySearch(ctx context.Context, searchID uuid.UUID) ([]models.WebResult, error) {
	args := m.Called(ctx, searchID)
	return args.Get(0).([]models.WebResult), args.Error(1)
}

type MockPreLandingRepository struct {
	mock.Mock
	repositories.PreLandingRepository
}

func (m *MockPreLandingRepository) GetBySearch(ctx context.Context, searchID uuid.UUID) (*models.PreLandingConfig, error) {
	args := m.Called(ctx, searchID)
	if c := args.Get(0); c != nil {
		return c.(*models.PreLandingConfig), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockFunnelRepository struct {
	mock.Mock
}

func (m *MockFunnelRepository) SaveBundle(ctx context.Context, bundle *repositories.FunnelBundle) error {
	args := m.Called(ctx, bundle)
	return args.Error(0)
}

func (m *MockFunnelRepository) FindIncompleteUnits(ctx context.Context) ([]repositories.UnitIssue, error) {
	args := m.Called(ctx)
	return args.Get(0).([]repositories.UnitIssue), args.Error(1)
}

func (m *MockFunnelRepository) CountOrphans(ctx context.Context) (*repositories.OrphanReport, error) {
	args := m.Called(ctx)
	if r := args.Get(0); r != nil {
		return r.(*repositories.OrphanReport), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateBlogContent(ctx context.Context, title, category string) (*services.RawContent, error) {
	args := m.Called(ctx, title, category)
	if c := args.Get(0); c != nil {
		return c.(*services.RawContent), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGenerator) GenerateWebResults(ctx context.Context, searchText string) ([]services.GeneratedWebResult, error) {
	args := m.Called(ctx, searchText)
	if r := args.Get(0); r != nil {
		return r.([]services.GeneratedWebResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGenerator) GeneratePreLanding(ctx context.Context, resultTitle string) (*services.GeneratedPreLanding, error) {
	args := m.Called(ctx, resultTitle)
	if p := args.Get(0); p != nil {
		return p.(*services.GeneratedPreLanding), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGenerator) GenerateImage(ctx context.Context, prompt string) ([]byte, string, error) {
	args := m.Called(ctx, prompt)
	if b := args.Get(0); b != nil {
		return b.([]byte), args.String(1), args.Error(2)
	}
	return nil, args.String(1), args.Error(2)
}

type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, data, contentType)
	return args.String(0), args.Error(1)
}

type MockGoogleProvider struct {
	mock.Mock
}

func (m *MockGoogleProvider) GetAuthURL(state string) string {
	return m.Called(state).String(0)
}

func (m *MockGoogleProvider) Identify(ctx context.Context, code string) (*services.GoogleAccount, error) {
	args := m.Called(ctx, code)
	if a := args.Get(0); a != nil {
		return a.(*services.GoogleAccount), args.Error(1)
	}
	return nil, args.Error(1)
}

// recordingTracker keeps everything it is handed.
type recordingTracker struct {
	mu          sync.Mutex
	events      []*models.AnalyticsEvent
	submissions []*models.EmailSubmission
}

func (t *recordingTracker) EnqueueEvent(event *models.AnalyticsEvent) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, event)
	return true
}

func (t *recordingTracker) EnqueueEmail(submission *models.EmailSubmission) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.submissions = append(t.submissions, submission)
	return true
}

// memoryDrafts is an in-process DraftStore.
type memoryDrafts struct {
	mu     sync.Mutex
	drafts map[uuid.UUID]services.WizardDraft
	puts   int
}

func newMemoryDrafts() *memoryDrafts {
	return &memoryDrafts{drafts: map[uuid.UUID]services.WizardDraft{}}
}

func (s *memoryDrafts) Get(_ context.Context, id uuid.UUID) (*services.WizardDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[id]
	if !ok {
		return nil, services.ErrDraftNotFound
	}
	return cloneDraft(&d), nil
}

func (s *memoryDrafts) Put(_ context.Context, draft *services.WizardDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[draft.ID] = *cloneDraft(draft)
	s.puts++
	return nil
}

func (s *memoryDrafts) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
	return nil
}

// cloneDraft copies the parts the wizard mutates in place, the way a
// round trip through Redis would.
func cloneDraft(d *services.WizardDraft) *services.WizardDraft {
	out := *d
	out.Searches.Items = append([]int{}, d.Searches.Items...)
	out.Slots = make(map[int]*services.PhraseSlot, len(d.Slots))
	for k, v := range d.Slots {
		slot := *v
		slot.Selected.Items = append([]int{}, v.Selected.Items...)
		slot.WebResults = append([]services.GeneratedWebResult{}, v.WebResults...)
		out.Slots[k] = &slot
	}
	return &out
}
