package purchase

import (
	"coin-purchase/internal/catalog"
	"coin-purchase/internal/model"
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultAuthorizationTimeout = 30 * time.Second
	DefaultCreditTimeout        = 30 * time.Second
)

// Deps are the collaborators a dialogue drives. Journal is optional.
type Deps struct {
	Backend              AuthorizationRequester
	Gateway              PaymentConfirmer
	Recorder             PurchaseRecorder
	Journal              CreditJournal
	AuthorizationTimeout time.Duration
	CreditTimeout        time.Duration
	Logger               zerolog.Logger
}

// Dialogue is one open purchase modal: selection, authorization, card
// confirmation and crediting for a single buyer.
//
// Every asynchronous stage remembers the attempt it was started for and may
// only change state if that attempt is still current when it returns.
// Selecting another package or closing the dialogue starts a new attempt.
type Dialogue struct {
	id      string
	buyer   model.BuyerIdentity
	catalog *catalog.Catalog
	deps    Deps
	logger  zerolog.Logger

	mu         sync.Mutex
	state      model.State
	selected   *model.CoinPackage
	auth       *model.PaymentAuthorization
	pending    *authCall
	attempt    uint64
	txID       string
	errCode    model.ErrorCode
	errMsg     string
	notice     string
	finalizing bool
}

func NewDialogue(id string, cat *catalog.Catalog, buyer model.BuyerIdentity, deps Deps) *Dialogue {
	if deps.AuthorizationTimeout <= 0 {
		deps.AuthorizationTimeout = DefaultAuthorizationTimeout
	}
	if deps.CreditTimeout <= 0 {
		deps.CreditTimeout = DefaultCreditTimeout
	}
	return &Dialogue{
		id:      id,
		buyer:   buyer,
		catalog: cat,
		deps:    deps,
		logger:  deps.Logger.With().Str("dialogue_id", id).Logger(),
		state:   model.StateIdle,
	}
}

func (d *Dialogue) ID() string {
	return d.id
}

func (d *Dialogue) Buyer() model.BuyerIdentity {
	return d.buyer
}

func (d *Dialogue) Snapshot() model.Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snapshotLocked()
}

func (d *Dialogue) snapshotLocked() model.Snapshot {
	snap := model.Snapshot{
		ID:            d.id,
		State:         d.state,
		TransactionID: d.txID,
		ErrorCode:     d.errCode,
		Error:         d.errMsg,
		Notice:        d.notice,
		CanSubmit:     d.canSubmitLocked(),
	}
	if d.selected != nil {
		pkg := *d.selected
		snap.Package = &pkg
	}
	return snap
}

func (d *Dialogue) canSubmitLocked() bool {
	if d.deps.Gateway == nil || d.auth == nil {
		return false
	}
	return d.state == model.StateReady || d.state == model.StateFailed
}

// Select makes packageID the current selection. A different package
// invalidates any authorization and in-flight attempt for the previous one.
func (d *Dialogue) Select(_ context.Context, packageID string) (model.Snapshot, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state.Terminal() {
		return d.snapshotLocked(), model.ErrDialogueClosed
	}

	pkg, ok := d.catalog.Get(packageID)
	if !ok {
		return d.snapshotLocked(), model.ErrPackageNotFound
	}

	if d.selected != nil && d.selected.ID == pkg.ID {
		return d.snapshotLocked(), nil
	}

	// A captured payment must stay finalizable for the package it was paid for.
	if d.state == model.StateSucceeded {
		return d.snapshotLocked(), model.ErrAlreadySucceeded
	}

	d.invalidateLocked()
	d.selected = &pkg
	d.state = model.StateIdle

	d.logger.Debug().Str("package_id", pkg.ID).Msg("package selected")
	return d.snapshotLocked(), nil
}

// Clear drops the selection and authorization. A succeeded payment awaiting
// crediting is kept so it can still be finalized.
func (d *Dialogue) Clear() model.Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state.Terminal() || d.state == model.StateSucceeded {
		return d.snapshotLocked()
	}

	d.invalidateLocked()
	d.selected = nil
	d.state = model.StateIdle
	return d.snapshotLocked()
}

// Close ends the dialogue. Results of stages still in flight are discarded.
func (d *Dialogue) Close() model.Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state.Terminal() {
		return d.snapshotLocked()
	}

	if d.state == model.StateSucceeded {
		d.logger.Error().
			Str("transaction_id", d.txID).
			Str("buyer_email", d.buyer.Email).
			Msg("dialogue closed with captured payment not credited")
	}

	d.invalidateLocked()
	d.selected = nil
	d.state = model.StateClosed
	return d.snapshotLocked()
}

func (d *Dialogue) invalidateLocked() {
	d.attempt++
	d.auth = nil
	d.pending = nil
	d.txID = ""
	d.clearErrorLocked()
}

func (d *Dialogue) clearErrorLocked() {
	d.errCode = model.CodeNone
	d.errMsg = ""
}

func (d *Dialogue) failLocked(state model.State, code model.ErrorCode, msg string) {
	d.state = state
	d.errCode = code
	d.errMsg = msg
}
