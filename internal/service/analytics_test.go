package service

import (
	"context"
	"testing"
	"time"

	"taskhub/internal/model"

	"github.com/stretchr/testify/require"
)

func TestAnalyticsTaskStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnalyticsService(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	createUser(t, db, "bob")
	project := createProject(t, db, "p1")

	overdue := time.Now().AddDate(0, 0, -1)
	createTask(t, db, project.ID, alice.ID, taskOpts{status: model.StatusTodo, priority: model.PriorityHigh, taskType: model.TypeBug, deadline: overdue})
	createTask(t, db, project.ID, alice.ID, taskOpts{status: model.StatusDone, priority: model.PriorityHigh, taskType: model.TypeFeature, deadline: overdue})
	createTask(t, db, project.ID, alice.ID, taskOpts{status: model.StatusInProgress, priority: model.PriorityLow, taskType: model.TypeFeature})

	stats, err := svc.TaskStats(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 3, stats.TotalTasks)
	// DONE past its deadline does not count as overdue.
	require.EqualValues(t, 1, stats.OverdueTasks)
	require.InDelta(t, 1.5, stats.AvgTasksPerUser, 0.001)

	require.Equal(t, map[string]int64{"TODO": 1, "DONE": 1, "IN_PROGRESS": 1}, rowsToMap(stats.StatusBreakdown))
	require.Equal(t, map[string]int64{"HIGH": 2, "LOW": 1}, rowsToMap(stats.PriorityBreakdown))
	require.Equal(t, map[string]int64{"BUG": 1, "FEATURE": 2}, rowsToMap(stats.TypeBreakdown))
}

func TestAnalyticsProjectStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnalyticsService(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	busy := createProject(t, db, "busy")
	quiet := createProject(t, db, "quiet")

	for _, uid := range []string{alice.ID, bob.ID} {
		require.NoError(t, db.Create(&model.ProjectAssignment{ProjectID: busy.ID, UserID: uid}).Error)
	}
	for i := 0; i < 3; i++ {
		createTask(t, db, busy.ID, alice.ID, taskOpts{})
	}
	createTask(t, db, quiet.ID, alice.ID, taskOpts{})

	stats, err := svc.ProjectStats(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, stats.TotalProjects)
	require.InDelta(t, 1.0, stats.AvgUsersPerProject, 0.001)
	require.Len(t, stats.TopProjects, 2)
	require.Equal(t, busy.ID, stats.TopProjects[0].ProjectID)
	require.EqualValues(t, 3, stats.TopProjects[0].TaskCount)
}

func TestAnalyticsUserStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnalyticsService(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	project := createProject(t, db, "p1")

	for i := 0; i < 2; i++ {
		createTask(t, db, project.ID, bob.ID, taskOpts{assignedTo: &alice.ID})
	}

	stats, err := svc.UserStats(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, stats.TotalUsers)
	require.Equal(t, alice.ID, stats.TopUsers[0].UserID)
	require.EqualValues(t, 2, stats.TopUsers[0].TaskCount)
}

func TestAnalyticsCreatedVsAssigned(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnalyticsService(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	project := createProject(t, db, "p1")

	createTask(t, db, project.ID, alice.ID, taskOpts{assignedTo: &bob.ID})
	createTask(t, db, project.ID, alice.ID, taskOpts{})

	out, err := svc.TasksCreatedVsAssigned(ctx)
	require.NoError(t, err)
	require.Equal(t, []UserTaskCount{{UserID: alice.ID, Count: 2}}, out.Created)
	require.Equal(t, []UserTaskCount{{UserID: bob.ID, Count: 1}}, out.Assigned)
}

func TestAnalyticsProjectQuality(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnalyticsService(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	project := createProject(t, db, "p1")

	createTask(t, db, project.ID, alice.ID, taskOpts{status: model.StatusDone, priority: model.PriorityLow})
	createTask(t, db, project.ID, alice.ID, taskOpts{status: model.StatusTodo, priority: model.PriorityHigh})

	out, err := svc.ProjectQuality(ctx)
	require.NoError(t, err)
	require.Len(t, out.Rates, 1)
	require.Equal(t, project.ID, out.Rates[0].ProjectID)
	require.InDelta(t, 0.5, out.Rates[0].Rate, 0.001)
	// LOW=1, HIGH=3 averages to 2.
	require.InDelta(t, 2.0, out.AvgPriority, 0.001)
}

func rowsToMap(rows []BreakdownRow) map[string]int64 {
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Key] = r.Count
	}
	return out
}
