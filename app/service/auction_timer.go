package service

import (
	"context"
	"errors"
	"time"

	"github.com/saimerit/monopoly-game/app/engine"
	"github.com/saimerit/monopoly-game/app/models"
	"github.com/sirupsen/logrus"
)

const settleTimeout = 5 * time.Second

// syncAuctionTimer keeps exactly one countdown per game, matching the deadline
// of its running auction. Commits reach it outside the store transaction, so a
// version older than the last one seen is ignored.
func (s *GameService) syncAuctionTimer(g *models.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seen, ok := s.synced[g.Id]; ok && g.Version < seen {
		return
	}
	s.synced[g.Id] = g.Version
	if t, ok := s.timers[g.Id]; ok {
		t.Stop()
		delete(s.timers, g.Id)
	}
	if g.Auction == nil || !g.Auction.Active {
		return
	}
	gameId, auctionId, host := g.Id, g.Auction.Id, g.Host
	wait := time.Until(g.Auction.Deadline)
	if wait < 0 {
		wait = 0
	}
	s.timers[gameId] = time.AfterFunc(wait, func() {
		s.settle(gameId, auctionId, host)
	})
}

// settle closes the auction as the host once its countdown runs out.
func (s *GameService) settle(gameId, auctionId, host string) {
	ctx, cancel := context.WithTimeout(context.Background(), settleTimeout)
	defer cancel()
	entry := s.log.WithFields(logrus.Fields{"game_id": gameId, "auction_id": auctionId})

	g, err := s.store.Load(ctx, gameId)
	if err != nil {
		entry.WithError(err).Warn("auction settlement could not load game")
		return
	}
	if g.Auction == nil || g.Auction.Id != auctionId {
		return
	}
	_, _, err = s.Execute(ctx, gameId, engine.SettleAuction{PlayerId: host})
	switch {
	case err == nil:
		entry.Info("auction settled")
	case errors.Is(err, engine.ErrAuctionOpen):
		// a later bid moved the deadline
		if latest, err := s.store.Load(ctx, gameId); err == nil {
			s.syncAuctionTimer(latest)
		}
	case errors.Is(err, engine.ErrNoAuction):
	default:
		entry.WithError(err).Warn("auction settlement failed")
	}
}

// Close stops every pending countdown.
func (s *GameService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
	for id := range s.synced {
		delete(s.synced, id)
	}
}
