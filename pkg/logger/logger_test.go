package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_WritesCategoryFilesAndReadsBack(t *testing.T) {
	l, err := NewLogger(t.TempDir(), false)
	require.NoError(t, err)
	defer l.Close()

	l.Log(LogEntry{Level: LevelInfo, Category: CategoryCascade, Action: "delete_blog", Message: "blog deleted",
		Data: map[string]interface{}{"blog_id": "b-1"}})
	l.Log(LogEntry{Level: LevelError, Category: CategoryTracking, Action: "insert_failed", Message: "event dropped",
		Error: errors.New("connection refused").Error()})

	files, err := l.ListLogFiles()
	require.NoError(t, err)
	assert.Len(t, files, 2)

	all, err := l.ReadLogs(ReadLogsOptions{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	errs, err := l.ReadLogs(ReadLogsOptions{Level: LevelError})
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, CategoryTracking, errs[0].Category)
	assert.Equal(t, "connection refused", errs[0].Error)

	cascade, err := l.ReadLogs(ReadLogsOptions{Category: CategoryCascade, Search: "DELETE_BLOG"})
	require.NoError(t, err)
	require.Len(t, cascade, 1)
	assert.Equal(t, "b-1", cascade[0].Data["blog_id"])
}

func TestLogger_ReadLogsCapsLines(t *testing.T) {
	l, err := NewLogger(t.TempDir(), false)
	require.NoError(t, err)
	defer l.Close()

	for i := 0; i < 5; i++ {
		l.Log(LogEntry{Level: LevelDebug, Category: CategoryDB, Action: "query", Message: "select"})
	}

	entries, err := l.ReadLogs(ReadLogsOptions{Lines: 3})
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}
