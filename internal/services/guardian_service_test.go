package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nestling/internal/repositories"
	"nestling/pkg/utils"
)

func TestVerifyGuardianship(t *testing.T) {
	db := newTestDB(t)
	guard := NewGuardianService(repositories.NewParentChildRepository(db))
	ctx := context.Background()

	parent := seedParent(t, db, "guardian@example.com")
	stranger := seedParent(t, db, "stranger@example.com")
	child := seedChild(t, db, parent.ID)

	assert.NoError(t, guard.VerifyGuardianship(ctx, parent.ID, child.ID))
	assert.ErrorIs(t, guard.VerifyGuardianship(ctx, stranger.ID, child.ID), utils.ErrChildNotOwned)
	assert.ErrorIs(t, guard.VerifyGuardianship(ctx, parent.ID, uuid.New()), utils.ErrChildNotOwned)
}

func TestRevokeChild(t *testing.T) {
	db := newTestDB(t)
	guard := NewGuardianService(repositories.NewParentChildRepository(db))
	ctx := context.Background()

	parent := seedParent(t, db, "one@example.com")
	coParent := seedParent(t, db, "two@example.com")
	child := seedChild(t, db, parent.ID)
	linkGuardian(t, db, coParent.ID, child.ID)

	require.NoError(t, guard.RevokeChild(ctx, parent.ID, child.ID))

	// revocation is terminal for this pair but leaves the co-guardian alone
	assert.ErrorIs(t, guard.VerifyGuardianship(ctx, parent.ID, child.ID), utils.ErrChildNotOwned)
	assert.NoError(t, guard.VerifyGuardianship(ctx, coParent.ID, child.ID))

	// a second revoke finds no active relation
	assert.ErrorIs(t, guard.RevokeChild(ctx, parent.ID, child.ID), utils.ErrChildNotFound)
}

func TestActiveChildren(t *testing.T) {
	db := newTestDB(t)
	guard := NewGuardianService(repositories.NewParentChildRepository(db))
	ctx := context.Background()

	parent := seedParent(t, db, "parent@example.com")
	first := seedChild(t, db, parent.ID)
	second := seedChild(t, db, parent.ID)

	relations, err := guard.ActiveChildren(ctx, parent.ID)
	require.NoError(t, err)
	require.Len(t, relations, 2)

	require.NoError(t, guard.RevokeChild(ctx, parent.ID, first.ID))

	relations, err = guard.ActiveChildren(ctx, parent.ID)
	require.NoError(t, err)
	require.Len(t, relations, 1)
	assert.Equal(t, second.ID, relations[0].ChildID)
}
