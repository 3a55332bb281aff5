package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-item-transfer/internal/logger"
	"github.com/MKhiriev/go-item-transfer/models"
)

var itemColumns = []string{"id", "name", "owner_id"}

const returningItem = "RETURNING id, name, owner_id"

type itemRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

// CreateItem inserts an item. A duplicate name yields [ErrItemAlreadyExists]
// and an unknown owner yields [ErrUserNotFound].
func (r *itemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(item.TableName()).
		Columns("name", "owner_id").
		Values(item.Name, item.OwnerID).
		Suffix(returningItem).
		ToSql()
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Item
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&created.ID, &created.Name, &created.OwnerID)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("error inserting item")
		switch violation(err) {
		case uniqueViolation:
			return models.Item{}, ErrItemAlreadyExists
		case foreignKeyViolation:
			return models.Item{}, ErrUserNotFound
		}
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *itemRepository) FindItemByID(ctx context.Context, itemID int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(itemColumns...).
		From(models.Item{}.TableName()).
		Where(sq.Eq{"id": itemID}).
		ToSql()
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var item models.Item
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&item.ID, &item.Name, &item.OwnerID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrItemNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.FindItemByID").Msg("error querying item")
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return item, nil
}

func (r *itemRepository) ListItems(ctx context.Context) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(itemColumns...).
		From(models.Item{}.TableName()).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error querying items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.OwnerID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

func (r *itemRepository) DeleteItem(ctx context.Context, itemID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(models.Item{}.TableName()).
		Where(sq.Eq{"id": itemID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItem").Msg("error deleting item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// UpdateItemOwner reassigns the item in a single UPDATE ... RETURNING so
// concurrent writers serialize on the row.
func (r *itemRepository) UpdateItemOwner(ctx context.Context, itemID, newOwnerID int64) (models.Item, error) {
	return updateItemOwner(ctx, r.db.builder, r.db.DB, itemID, newOwnerID)
}

// queryRower is satisfied by both *sql.DB and *sql.Tx.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func updateItemOwner(ctx context.Context, builder sq.StatementBuilderType, q queryRower, itemID, newOwnerID int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.
		Update(models.Item{}.TableName()).
		Set("owner_id", newOwnerID).
		Where(sq.Eq{"id": itemID}).
		Suffix(returningItem).
		ToSql()
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var item models.Item
	err = q.QueryRowContext(ctx, query, args...).Scan(&item.ID, &item.Name, &item.OwnerID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrItemNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "updateItemOwner").Msg("error updating item owner")
		if violation(err) == foreignKeyViolation {
			return models.Item{}, ErrUserNotFound
		}
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return item, nil
}
