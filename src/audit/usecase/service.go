package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/aurumx/goldmarket/src/logger"
	tokendomain "github.com/aurumx/goldmarket/src/token/domain"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var ErrConservationViolated = errors.New("token conservation violated")

// Ledger is the read-only slice of the token context the auditor inspects.
type Ledger interface {
	AllBalances(ctx context.Context) ([]tokendomain.Balance, error)
	TotalSupply(ctx context.Context) (decimal.Decimal, error)
}

// Service verifies the conservation invariant: the sum of all settlement-token
// balances equals the issued supply. The pool's token reserve is itself a
// balance row, so the plain sum covers it. Read-only; it never mutates engine
// state and runs outside the serialized operation path.
type Service struct {
	ledger Ledger
	logger *logger.Logger
}

func NewService(ledger Ledger, logg *logger.Logger) *Service {
	return &Service{ledger: ledger, logger: logg}
}

// CheckConservation sums balances against supply and returns
// ErrConservationViolated on mismatch.
func (s *Service) CheckConservation(ctx context.Context) error {
	var (
		balances []tokendomain.Balance
		supply   decimal.Decimal
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		balances, err = s.ledger.AllBalances(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		supply, err = s.ledger.TotalSupply(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	total := decimal.Zero
	for _, b := range balances {
		total = total.Add(b.Amount)
	}
	if !total.Equal(supply) {
		return fmt.Errorf("%w: sum=%s supply=%s", ErrConservationViolated, total, supply)
	}
	return nil
}

// Schedule registers the auditor on c, running once a minute with a uuid run
// id for log correlation.
func Schedule(c *cron.Cron, s *Service) {
	c.AddFunc("@every 1m", func() {
		runID := uuid.New().String()
		if err := s.CheckConservation(context.Background()); err != nil {
			s.logger.Errorf("[audit %s] %v", runID, err)
			return
		}
		s.logger.Debugf("[audit %s] conservation holds", runID)
	})
}
