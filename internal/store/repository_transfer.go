package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-item-transfer/internal/logger"
	"github.com/MKhiriev/go-item-transfer/models"
)

// transferRepository applies redemptions and owns the transfer_redemptions
// ledger.
type transferRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

func NewTransferRepository(db *DB, logger *logger.Logger) TransferRepository {
	logger.Debug().Msg("creating transfer repository")
	return &transferRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// Redeem runs the owner update and the ledger insert in one transaction.
//
// The owner update goes first so that concurrent redemptions of the same item
// queue on its row lock. The ledger insert ignores conflicts on
// capability_id, leaving the first redemption as the recorded one; with
// singleUse a conflict rolls the whole transaction back.
func (r *transferRepository) Redeem(ctx context.Context, transfer models.Transfer, singleUse bool) (_ models.Item, err error) {
	log := logger.FromContext(ctx).With().Str("func", "*transferRepository.Redeem").Logger()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("error beginning transaction")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Err(rbErr).Msg("error rolling back transaction")
			}
		}
	}()

	item, err := updateItemOwner(ctx, r.db.builder, tx, transfer.ItemID, transfer.NewOwnerID)
	if err != nil {
		return models.Item{}, err
	}

	if transfer.CapabilityID != "" {
		recorded, err := r.record(ctx, tx, transfer)
		if err != nil {
			return models.Item{}, err
		}
		if !recorded {
			log.Debug().Str("capability_id", transfer.CapabilityID).Msg("capability was redeemed before")
			if singleUse {
				return models.Item{}, ErrTransferAlreadyRedeemed
			}
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("error committing transaction")
		return models.Item{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return item, nil
}

// record inserts the ledger row and reports whether it was new.
func (r *transferRepository) record(ctx context.Context, ex sq.ExecerContext, transfer models.Transfer) (bool, error) {
	query, args, err := r.db.builder.
		Insert(models.Redemption{}.TableName()).
		Columns("capability_id", "item_id", "new_owner_id", "redeemed_at").
		Values(transfer.CapabilityID, transfer.ItemID, transfer.NewOwnerID, r.now().UTC()).
		Suffix("ON CONFLICT (capability_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := ex.ExecContext(ctx, query, args...)
	if err != nil {
		if violation(err) == foreignKeyViolation {
			return false, ErrItemNotFound
		}
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

func (r *transferRepository) PruneRedemptions(ctx context.Context, before time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(models.Redemption{}.TableName()).
		Where(sq.Lt{"redeemed_at": before.UTC()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*transferRepository.PruneRedemptions").Msg("error pruning redemptions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Join(ErrExecutingStatement, err)
	}

	return removed, nil
}
