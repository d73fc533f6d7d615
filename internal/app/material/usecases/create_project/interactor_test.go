package create_project

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/material-tracking-service/internal/app/material/domain"
	"github.com/murkotick/material-tracking-service/internal/app/material/repo"
	"github.com/murkotick/material-tracking-service/internal/pkg/clock"
	"github.com/murkotick/material-tracking-service/internal/store/sqlite"
	"github.com/murkotick/material-tracking-service/internal/store/sqlite/sqlitetest"
)

func TestCreateProject(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.Open(t)
	rm := sqlite.NewReadModel(db)
	it := NewInteractor(repo.NewProjectRepo(), repo.NewOutboxRepo(), sqlite.NewCommitter(db), clock.NewFake(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))

	id, err := it.Execute(ctx, Request{Name: "Kitchen", Status: "in_progress", ActingUserID: "u1"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, domain.ProjectIDPrefix))

	p, err := rm.GetProject(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Kitchen", p.Name)
	assert.Equal(t, "in_progress", p.Status)
	assert.Equal(t, "u1", p.CreatedBy)

	events, err := rm.OutboxEvents(ctx, id)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "project.created", events[0].EventType)
}

func TestCreateProject_Invalid(t *testing.T) {
	db := sqlitetest.Open(t)
	it := NewInteractor(repo.NewProjectRepo(), repo.NewOutboxRepo(), sqlite.NewCommitter(db), clock.NewFake(time.Now()))

	_, err := it.Execute(context.Background(), Request{Name: " ", ActingUserID: "u1"})
	assert.ErrorIs(t, err, domain.ErrEmptyProjectName)
	_, err = it.Execute(context.Background(), Request{Name: "x", Status: "archived", ActingUserID: "u1"})
	assert.ErrorIs(t, err, domain.ErrInvalidProjectStatus)
}
