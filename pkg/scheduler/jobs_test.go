package scheduler

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"search-funnel/domain/repositories"
	"search-funnel/domain/services"
	"search-funnel/pkg/config"
	"search-funnel/pkg/logger"
)

func TestMain(m *testing.M) {
	dir, _ := os.MkdirTemp("", "scheduler-logs")
	_ = logger.Init(dir, false)
	code := m.Run()
	logger.Close()
	os.RemoveAll(dir)
	os.Exit(code)
}

type fakeScheduler struct {
	EventScheduler
	tasks map[string]func()
	crons map[string]string
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{tasks: map[string]func(){}, crons: map[string]string{}}
}

func (f *fakeScheduler) AddJob(id, cronExpr string, task func()) error {
	f.tasks[id] = task
	f.crons[id] = cronExpr
	return nil
}

type stubAudit struct {
	report *services.AuditReport
	err    error
	runs   int
}

func (s *stubAudit) Run(context.Context) (*services.AuditReport, error) {
	s.runs++
	return s.report, s.err
}

type stubAnalytics struct {
	services.AnalyticsService
	days []int
}

func (s *stubAnalytics) Cleanup(_ context.Context, days int) (int64, error) {
	s.days = append(s.days, days)
	return 3, nil
}

func TestRegisterFunnelJobs_RetentionOffByDefault(t *testing.T) {
	s := newFakeScheduler()
	cfg := config.SchedulerConfig{AuditCron: "0 * * * *", RetentionCron: "0 3 * * *"}

	require.NoError(t, RegisterFunnelJobs(s, cfg, &stubAudit{report: &services.AuditReport{}}, &stubAnalytics{}))

	assert.Contains(t, s.tasks, JobIntegrityAudit)
	assert.NotContains(t, s.tasks, JobAnalyticsRetention)
	assert.Equal(t, "0 * * * *", s.crons[JobIntegrityAudit])
}

func TestRegisterFunnelJobs_RetentionUsesConfiguredDays(t *testing.T) {
	s := newFakeScheduler()
	analytics := &stubAnalytics{}
	cfg := config.SchedulerConfig{AuditCron: "0 * * * *", RetentionCron: "0 3 * * *", RetentionDays: 90}

	require.NoError(t, RegisterFunnelJobs(s, cfg, &stubAudit{report: &services.AuditReport{}}, analytics))
	require.Contains(t, s.tasks, JobAnalyticsRetention)

	s.tasks[JobAnalyticsRetention]()
	assert.Equal(t, []int{90}, analytics.days)
}

func TestRunIntegrityAudit_LogsFindingsWithoutRepair(t *testing.T) {
	audit := &stubAudit{report: &services.AuditReport{
		Incomplete: []repositories.UnitIssue{{BlogID: uuid.New(), Title: "Three searches", SearchCount: 3, DistinctWR: 3}},
		Orphans:    repositories.OrphanReport{WebResults: 2},
	}}

	RunIntegrityAudit(audit)
	assert.Equal(t, 1, audit.runs)

	entries, err := logger.ReadLogs(logger.ReadLogsOptions{Category: logger.CategoryScheduler, Search: "audit_findings"})
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, logger.LevelWarn, entries[0].Level)
}

func TestRunIntegrityAudit_ErrorIsLogged(t *testing.T) {
	RunIntegrityAudit(&stubAudit{err: errors.New("db down")})

	entries, err := logger.ReadLogs(logger.ReadLogsOptions{Category: logger.CategoryScheduler, Level: logger.LevelError})
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "db down", entries[0].Error)
}

