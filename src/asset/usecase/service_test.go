package usecase

import (
	"context"
	"testing"

	"github.com/aurumx/goldmarket/src/asset/domain"
	"github.com/aurumx/goldmarket/src/asset/repository"
	"github.com/aurumx/goldmarket/src/logger"
	"github.com/aurumx/goldmarket/src/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	repo := repository.NewMemoryAssetRepo()
	tx := storage.NewMemoryManager(repo)
	return NewService(repo, tx, logger.New("local"))
}

func TestMintAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	first, err := svc.Mint(ctx, "alice", "ipfs://bar-001")
	require.NoError(t, err)
	second, err := svc.Mint(ctx, "bob", "ipfs://bar-002")
	require.NoError(t, err)

	assert.Equal(t, uint64(1), first)
	assert.Equal(t, uint64(2), second)

	owner, err := svc.OwnerOf(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, "alice", owner)

	meta, err := svc.Metadata(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, "ipfs://bar-002", meta)
}

func TestOwnerOfUnknownAsset(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.OwnerOf(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrUnknownAsset)
}

func TestTransferRequiresOwnership(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	id, err := svc.Mint(ctx, "alice", "ipfs://bar")
	require.NoError(t, err)

	err = svc.Transfer(ctx, id, "bob", "carol")
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	owner, _ := svc.OwnerOf(ctx, id)
	assert.Equal(t, "alice", owner)
}

func TestTransferByOwner(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	id, err := svc.Mint(ctx, "alice", "ipfs://bar")
	require.NoError(t, err)

	require.NoError(t, svc.Transfer(ctx, id, "alice", "bob"))

	owner, _ := svc.OwnerOf(ctx, id)
	assert.Equal(t, "bob", owner)
}

func TestApproveRequiresOwnership(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	id, err := svc.Mint(ctx, "alice", "ipfs://bar")
	require.NoError(t, err)

	err = svc.Approve(ctx, "bob", id, "market")
	assert.ErrorIs(t, err, domain.ErrNotOwner)
}

func TestTransferFromByApprovedOperator(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	id, err := svc.Mint(ctx, "alice", "ipfs://bar")
	require.NoError(t, err)
	require.NoError(t, svc.Approve(ctx, "alice", id, "market"))

	require.NoError(t, svc.TransferFrom(ctx, "market", id, "alice", "bob"))

	owner, _ := svc.OwnerOf(ctx, id)
	assert.Equal(t, "bob", owner)
}

func TestApprovalClearedOnTransfer(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	id, err := svc.Mint(ctx, "alice", "ipfs://bar")
	require.NoError(t, err)
	require.NoError(t, svc.Approve(ctx, "alice", id, "market"))

	require.NoError(t, svc.TransferFrom(ctx, "market", id, "alice", "bob"))

	approved, err := svc.Approved(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, approved)

	// stale approval must not move the asset again
	err = svc.TransferFrom(ctx, "market", id, "bob", "carol")
	assert.ErrorIs(t, err, domain.ErrTransferNotAuthorized)
}

func TestTransferFromUnauthorizedOperator(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	id, err := svc.Mint(ctx, "alice", "ipfs://bar")
	require.NoError(t, err)

	err = svc.TransferFrom(ctx, "mallory", id, "alice", "bob")
	assert.ErrorIs(t, err, domain.ErrTransferNotAuthorized)

	owner, _ := svc.OwnerOf(ctx, id)
	assert.Equal(t, "alice", owner)
}

func TestTransferFromMismatchedOwner(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	id, err := svc.Mint(ctx, "alice", "ipfs://bar")
	require.NoError(t, err)
	require.NoError(t, svc.Approve(ctx, "alice", id, "market"))

	err = svc.TransferFrom(ctx, "market", id, "bob", "carol")
	assert.ErrorIs(t, err, domain.ErrNotOwner)
}
