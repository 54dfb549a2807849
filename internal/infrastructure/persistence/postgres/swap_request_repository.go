package postgres

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"skill-swap/internal/database"
	"skill-swap/internal/domain/swap"
)

const swapColumns = `id, requester_id, recipient_id, skill_offered, skill_requested, message, status, created_at, updated_at`

const pgUniqueViolation = "23505"

type SwapRequestRepository struct {
	db database.DB
}

func NewSwapRequestRepository(db database.DB) *SwapRequestRepository {
	return &SwapRequestRepository{db: db}
}

func (r *SwapRequestRepository) Insert(ctx context.Context, req swap.Request) (swap.Request, error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO swap_requests (id, requester_id, recipient_id, skill_offered, skill_requested, message, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+swapColumns,
		req.ID, req.RequesterID, req.RecipientID, req.SkillOffered, req.SkillRequested, req.Message, string(req.Status),
	)

	out, err := scanSwapRequest(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return swap.Request{}, swap.ErrDuplicatePending
		}
		return swap.Request{}, err
	}
	return out, nil
}

func (r *SwapRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (swap.Request, error) {
	row := r.db.QueryRow(ctx, `SELECT `+swapColumns+` FROM swap_requests WHERE id = $1`, id)
	return scanSwapRequest(row)
}

func (r *SwapRequestRepository) List(ctx context.Context, f swap.ListFilter) ([]swap.Request, error) {
	where, args := swapFilterClause(f)

	args = append(args, f.Limit, f.Offset)
	q := `SELECT ` + swapColumns + ` FROM swap_requests ` + where +
		` ORDER BY created_at DESC` +
		` LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]swap.Request, 0, f.Limit)
	for rows.Next() {
		req, err := scanSwapRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SwapRequestRepository) Count(ctx context.Context, f swap.ListFilter) (int, error) {
	where, args := swapFilterClause(f)

	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM swap_requests `+where, args...).Scan(&n)
	return n, err
}

// UpdateStatusIfPending relies on the WHERE clause for atomicity: the row
// only changes while its stored status is still pending, so two concurrent
// transitions cannot both win.
func (r *SwapRequestRepository) UpdateStatusIfPending(ctx context.Context, id uuid.UUID, to swap.Status) (swap.Request, error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE swap_requests SET status = $2, updated_at = now()
		WHERE id = $1 AND status = $3
		RETURNING `+swapColumns,
		id, string(to), string(swap.StatusPending),
	)

	out, err := scanSwapRequest(row)
	if err == nil {
		return out, nil
	}
	if !errors.Is(err, swap.ErrNotFound) {
		return swap.Request{}, err
	}

	// No row updated: distinguish a missing request from a terminal one.
	existing, getErr := r.GetByID(ctx, id)
	if getErr != nil {
		return swap.Request{}, getErr
	}
	if existing.Status != swap.StatusPending {
		return swap.Request{}, swap.ErrNotPending
	}
	return swap.Request{}, err
}

func swapFilterClause(f swap.ListFilter) (string, []any) {
	args := []any{f.UserID}

	var where string
	switch f.Relation {
	case swap.RelationSent:
		where = `WHERE requester_id = $1`
	case swap.RelationReceived:
		where = `WHERE recipient_id = $1`
	default:
		where = `WHERE (requester_id = $1 OR recipient_id = $1)`
	}

	if f.Status != nil {
		args = append(args, string(*f.Status))
		where += ` AND status = $` + strconv.Itoa(len(args))
	}

	return where, args
}

func scanSwapRequest(row database.Row) (swap.Request, error) {
	var req swap.Request
	var status string

	err := row.Scan(
		&req.ID, &req.RequesterID, &req.RecipientID, &req.SkillOffered, &req.SkillRequested,
		&req.Message, &status, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return swap.Request{}, swap.ErrNotFound
		}
		return swap.Request{}, err
	}

	req.Status = swap.Status(status)
	return req, nil
}
