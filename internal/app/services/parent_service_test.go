package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuteuradom/backend/internal/app/models"
	"github.com/tuteuradom/backend/internal/app/models/dto"
	"github.com/tuteuradom/backend/internal/app/repositories/memory"
	"github.com/tuteuradom/backend/internal/pkg/apperrors"
)

func newTestParentService(t *testing.T) *ParentService {
	t.Helper()
	store := memory.NewStore()

	require.NoError(t, memory.Parents{Store: store}.Create(context.Background(), &models.Parent{
		User:   models.User{ID: "parent-1", FirstName: "Marie", LastName: "Dupont"},
		Status: models.ParentStatusActive,
		Children: []models.Child{
			{ID: "child-1", ParentID: "parent-1", Name: "Lucas", Age: 10, Grade: "CM2"},
		},
	}))

	svc := NewParentService(memory.Parents{Store: store})
	seq := 0
	svc.newID = func() string {
		seq++
		return fmt.Sprintf("child-new-%d", seq)
	}
	return svc
}

func TestUpdateParentProfile(t *testing.T) {
	svc := newTestParentService(t)
	ctx := context.Background()

	updated, err := svc.UpdateProfile(ctx, "parent-1", &dto.UpdateParentProfileRequest{
		FirstName: "Maria", LastName: "Durand",
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria", updated.FirstName)
	assert.Equal(t, "Durand", updated.LastName)
	// children are untouched by a profile update
	require.Len(t, updated.Children, 1)
	assert.Equal(t, "Lucas", updated.Children[0].Name)

	_, err = svc.UpdateProfile(ctx, "missing", &dto.UpdateParentProfileRequest{
		FirstName: "x", LastName: "y",
	})
	assert.ErrorIs(t, err, apperrors.ErrParentNotFound)
}

func TestUpdateChildrenReplacesList(t *testing.T) {
	svc := newTestParentService(t)
	ctx := context.Background()

	updated, err := svc.UpdateChildren(ctx, "parent-1", &dto.UpdateChildrenRequest{
		Children: []dto.ChildRequest{
			{Name: "Emma", Age: 7, Grade: "CE1"},
			{Name: "Hugo", Age: 12, Grade: "5eme"},
		},
	})
	require.NoError(t, err)
	require.Len(t, updated.Children, 2)

	// the old list is replaced wholesale, order preserved
	assert.Equal(t, "Emma", updated.Children[0].Name)
	assert.Equal(t, "Hugo", updated.Children[1].Name)
	for _, child := range updated.Children {
		assert.NotEmpty(t, child.ID)
		assert.NotEqual(t, "child-1", child.ID)
		assert.Equal(t, "parent-1", child.ParentID)
	}

	cleared, err := svc.UpdateChildren(ctx, "parent-1", &dto.UpdateChildrenRequest{Children: []dto.ChildRequest{}})
	require.NoError(t, err)
	assert.Empty(t, cleared.Children)
}

func TestUpdateParentStatus(t *testing.T) {
	svc := newTestParentService(t)
	ctx := context.Background()

	blocked, err := svc.UpdateStatus(ctx, "parent-1", models.ParentStatusBlocked)
	require.NoError(t, err)
	assert.Equal(t, models.ParentStatusBlocked, blocked.Status)

	_, err = svc.UpdateStatus(ctx, "missing", models.ParentStatusBlocked)
	assert.ErrorIs(t, err, apperrors.ErrParentNotFound)
}
