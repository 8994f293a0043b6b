package service

import (
	"coin-purchase/internal/catalog"
	"coin-purchase/internal/model"
	"coin-purchase/internal/purchase"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type dialogueEntry struct {
	dialogue *purchase.Dialogue
	lastSeen time.Time
}

type PurchaseServiceImpl struct {
	catalog  *catalog.Catalog
	deps     purchase.Deps
	logger   zerolog.Logger
	validate *validator.Validate
	now      func() time.Time

	mu        sync.Mutex
	dialogues map[string]*dialogueEntry
}

func NewPurchaseService(cat *catalog.Catalog, deps purchase.Deps, logger zerolog.Logger) PurchaseService {
	deps.Logger = logger
	// BuyerIdentity declares its rules as gin binding tags
	validate := validator.New()
	validate.SetTagName("binding")
	return &PurchaseServiceImpl{
		catalog:   cat,
		deps:      deps,
		logger:    logger,
		validate:  validate,
		now:       time.Now,
		dialogues: make(map[string]*dialogueEntry),
	}
}

func (s *PurchaseServiceImpl) ListPackages(_ context.Context) []model.CoinPackage {
	return s.catalog.List()
}

func (s *PurchaseServiceImpl) Open(_ context.Context, buyer model.BuyerIdentity) (model.Snapshot, error) {
	if err := s.validate.Struct(buyer); err != nil {
		return model.Snapshot{}, fmt.Errorf("%w: %v", model.ErrInvalidBuyer, err)
	}

	id := uuid.NewString()
	d := purchase.NewDialogue(id, s.catalog, buyer, s.deps)

	s.mu.Lock()
	s.dialogues[id] = &dialogueEntry{dialogue: d, lastSeen: s.now()}
	s.mu.Unlock()

	s.logger.Info().Str("dialogue_id", id).Str("buyer_email", buyer.Email).Msg("purchase dialogue opened")
	return d.Snapshot(), nil
}

func (s *PurchaseServiceImpl) Get(_ context.Context, id string) (model.Snapshot, error) {
	d, err := s.lookup(id)
	if err != nil {
		return model.Snapshot{}, err
	}
	return d.Snapshot(), nil
}

func (s *PurchaseServiceImpl) Select(ctx context.Context, id, packageID string) (model.Snapshot, error) {
	d, err := s.lookup(id)
	if err != nil {
		return model.Snapshot{}, err
	}

	snap, err := d.Select(ctx, packageID)
	if err != nil {
		return snap, err
	}
	return s.authorize(ctx, d)
}

func (s *PurchaseServiceImpl) Clear(_ context.Context, id string) (model.Snapshot, error) {
	d, err := s.lookup(id)
	if err != nil {
		return model.Snapshot{}, err
	}
	return d.Clear(), nil
}

func (s *PurchaseServiceImpl) Authorize(ctx context.Context, id string) (model.Snapshot, error) {
	d, err := s.lookup(id)
	if err != nil {
		return model.Snapshot{}, err
	}
	return s.authorize(ctx, d)
}

func (s *PurchaseServiceImpl) authorize(ctx context.Context, d *purchase.Dialogue) (model.Snapshot, error) {
	_, err := d.RequestAuthorization(ctx)
	// superseded by a newer selection, which carries its own authorization
	if errors.Is(err, model.ErrAttemptAbandoned) {
		err = nil
	}
	return d.Snapshot(), err
}

func (s *PurchaseServiceImpl) Submit(ctx context.Context, id string, card model.CardInput) (model.Snapshot, error) {
	d, err := s.lookup(id)
	if err != nil {
		return model.Snapshot{}, err
	}

	snap, err := d.Submit(ctx, card)
	s.release(snap)
	return snap, err
}

func (s *PurchaseServiceImpl) Finalize(ctx context.Context, id string) (model.Snapshot, error) {
	d, err := s.lookup(id)
	if err != nil {
		return model.Snapshot{}, err
	}

	snap, err := d.Finalize(ctx)
	s.release(snap)
	return snap, err
}

func (s *PurchaseServiceImpl) Close(_ context.Context, id string) (model.Snapshot, error) {
	d, err := s.lookup(id)
	if err != nil {
		return model.Snapshot{}, err
	}

	snap := d.Close()
	s.release(snap)
	s.logger.Info().Str("dialogue_id", id).Msg("purchase dialogue closed")
	return snap, nil
}

// CloseIdle closes dialogues not touched within maxIdle. Every dialogue taken
// out of the registry is closed, even when ctx is already done.
func (s *PurchaseServiceImpl) CloseIdle(_ context.Context, maxIdle time.Duration) (int, error) {
	cutoff := s.now().Add(-maxIdle)

	s.mu.Lock()
	var idle []*purchase.Dialogue
	for id, entry := range s.dialogues {
		if entry.lastSeen.Before(cutoff) {
			idle = append(idle, entry.dialogue)
			delete(s.dialogues, id)
		}
	}
	s.mu.Unlock()

	for _, d := range idle {
		d.Close()
		s.logger.Info().Str("dialogue_id", d.ID()).Msg("idle purchase dialogue closed")
	}
	return len(idle), nil
}

func (s *PurchaseServiceImpl) lookup(id string) (*purchase.Dialogue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.dialogues[id]
	if !ok {
		return nil, model.ErrDialogueNotFound
	}
	entry.lastSeen = s.now()
	return entry.dialogue, nil
}

// release drops dialogues that reached a terminal state
func (s *PurchaseServiceImpl) release(snap model.Snapshot) {
	if !snap.State.Terminal() {
		return
	}
	s.mu.Lock()
	delete(s.dialogues, snap.ID)
	s.mu.Unlock()
}
