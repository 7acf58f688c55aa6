package usecase

import (
	"context"
	"testing"

	"github.com/aurumx/goldmarket/src/logger"
	"github.com/aurumx/goldmarket/src/storage"
	tokenrepo "github.com/aurumx/goldmarket/src/token/repository"
	tokenusecase "github.com/aurumx/goldmarket/src/token/usecase"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckConservationHoldsAfterTransfers(t *testing.T) {
	ctx := context.Background()
	repo := tokenrepo.NewMemoryLedgerRepo()
	tx := storage.NewMemoryManager(repo)
	tokens := tokenusecase.NewService(repo, tx, logger.New("local"))
	require.NoError(t, tokens.InitGenesis(ctx, "deployer", decimal.NewFromInt(100000)))
	require.NoError(t, tokens.Transfer(ctx, "deployer", "alice", decimal.NewFromInt(300)))
	require.NoError(t, tokens.Transfer(ctx, "alice", "bob", decimal.NewFromInt(120)))

	auditor := NewService(tokens, logger.New("local"))
	assert.NoError(t, auditor.CheckConservation(ctx))
}

func TestCheckConservationDetectsDrift(t *testing.T) {
	ctx := context.Background()
	repo := tokenrepo.NewMemoryLedgerRepo()
	tx := storage.NewMemoryManager(repo)
	tokens := tokenusecase.NewService(repo, tx, logger.New("local"))
	require.NoError(t, tokens.InitGenesis(ctx, "deployer", decimal.NewFromInt(100000)))

	// mutate a balance behind the usecase's back
	require.NoError(t, repo.SetBalance(ctx, "mallory", decimal.NewFromInt(1)))

	err := NewService(tokens, logger.New("local")).CheckConservation(ctx)
	assert.ErrorIs(t, err, ErrConservationViolated)
}
