package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"skill-swap/internal/domain/swap"
	"skill-swap/internal/domain/user"
)

var (
	ErrRecipientNotFound    = errors.New("recipient not found")
	ErrRecipientUnavailable = errors.New("cannot send request to this user")
	ErrSkillValidation      = errors.New("invalid skill validation")
	ErrDuplicateRequest     = errors.New("duplicate request exists")
	ErrRequestNotFound      = errors.New("swap request not found")
	ErrNotRequester         = errors.New("only the requester can cancel this request")
	ErrNotRecipient         = errors.New("only the recipient can respond to this request")
	ErrRequestNotPending    = errors.New("request is no longer pending")
)

// SwapRequestView is a request with both parties expanded to their public
// summaries. RequestType is only populated on list results.
type SwapRequestView struct {
	ID             uuid.UUID    `json:"id"`
	Requester      user.Summary `json:"requester"`
	Recipient      user.Summary `json:"recipient"`
	SkillOffered   string       `json:"skillOffered"`
	SkillRequested string       `json:"skillRequested"`
	Status         swap.Status  `json:"status"`
	Message        string       `json:"message"`
	RequestType    string       `json:"requestType,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

type CreateSwapInput struct {
	RequesterID    uuid.UUID
	RecipientID    uuid.UUID
	SkillOffered   string
	SkillRequested string
	Message        string
}

type SwapListParams struct {
	UserID uuid.UUID
	Page   int
	Limit  int
	Status string
	Type   string
}

// SwapBuckets partitions one page of results by status.
type SwapBuckets struct {
	Pending   []SwapRequestView `json:"pending"`
	Accepted  []SwapRequestView `json:"accepted"`
	Rejected  []SwapRequestView `json:"rejected"`
	Cancelled []SwapRequestView `json:"cancelled"`
}

// SwapSummary counts the current page, not the global result set.
type SwapSummary struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Accepted  int `json:"accepted"`
	Rejected  int `json:"rejected"`
	Cancelled int `json:"cancelled"`
}

// SwapPagination is computed from the total count matching the query,
// before paging.
type SwapPagination struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalItems   int  `json:"totalItems"`
	ItemsPerPage int  `json:"itemsPerPage"`
	HasNextPage  bool `json:"hasNextPage"`
	HasPrevPage  bool `json:"hasPrevPage"`
}

type SwapListResult struct {
	Requests   SwapBuckets    `json:"requests"`
	Summary    SwapSummary    `json:"summary"`
	Pagination SwapPagination `json:"pagination"`
}

type SwapUsecase interface {
	Create(ctx context.Context, in CreateSwapInput) (SwapRequestView, error)
	List(ctx context.Context, p SwapListParams) (SwapListResult, error)
	Cancel(ctx context.Context, requestID, actingUserID uuid.UUID) (SwapRequestView, error)
	Accept(ctx context.Context, requestID, actingUserID uuid.UUID) (SwapRequestView, error)
	Reject(ctx context.Context, requestID, actingUserID uuid.UUID) (SwapRequestView, error)
}

type Swap struct {
	requests swap.Repository
	users    user.Repository
}

func NewSwapUsecase(requests swap.Repository, users user.Repository) *Swap {
	return &Swap{requests: requests, users: users}
}

// Create validates in a fixed order, first failure wins: recipient exists,
// recipient is reachable, requester offers the offered skill, recipient
// offers the requested skill, no duplicate pending tuple. Identity equality
// (requester == recipient) is a boundary precondition checked before this
// is invoked.
func (s *Swap) Create(ctx context.Context, in CreateSwapInput) (SwapRequestView, error) {
	recipient, err := s.users.GetByID(ctx, in.RecipientID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return SwapRequestView{}, ErrRecipientNotFound
		}
		return SwapRequestView{}, ErrInternal
	}

	if !recipient.IsPublic || recipient.IsBanned {
		return SwapRequestView{}, ErrRecipientUnavailable
	}

	requester, err := s.users.GetByID(ctx, in.RequesterID)
	if err != nil {
		// The requester identity comes from the auth boundary; a missing
		// record here is an inconsistency, not a caller mistake.
		return SwapRequestView{}, ErrInternal
	}

	if !requester.Offers(in.SkillOffered) {
		return SwapRequestView{}, ErrSkillValidation
	}
	if !recipient.Offers(in.SkillRequested) {
		return SwapRequestView{}, ErrSkillValidation
	}

	// Duplicate suppression happens at insert time via the partial unique
	// index, so two identical concurrent creates cannot both succeed.
	created, err := s.requests.Insert(ctx, swap.Request{
		ID:             uuid.New(),
		RequesterID:    in.RequesterID,
		RecipientID:    in.RecipientID,
		SkillOffered:   in.SkillOffered,
		SkillRequested: in.SkillRequested,
		Message:        in.Message,
		Status:         swap.StatusPending,
	})
	if err != nil {
		if errors.Is(err, swap.ErrDuplicatePending) {
			return SwapRequestView{}, ErrDuplicateRequest
		}
		return SwapRequestView{}, ErrInternal
	}

	return s.expand(ctx, created, uuid.Nil)
}

func (s *Swap) List(ctx context.Context, p SwapListParams) (SwapListResult, error) {
	page := p.Page
	if page < 1 {
		page = 1
	}
	limit := p.Limit
	if limit < 1 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	relation, ok := swap.ParseRelation(p.Type)
	if !ok {
		relation = swap.RelationAll
	}

	filter := swap.ListFilter{
		UserID:   p.UserID,
		Relation: relation,
		Offset:   (page - 1) * limit,
		Limit:    limit,
	}
	// Invalid status values are ignored, not rejected.
	if st, ok := swap.ParseStatus(p.Status); ok {
		filter.Status = &st
	}

	total, err := s.requests.Count(ctx, filter)
	if err != nil {
		return SwapListResult{}, ErrInternal
	}

	items, err := s.requests.List(ctx, filter)
	if err != nil {
		return SwapListResult{}, ErrInternal
	}

	buckets := SwapBuckets{
		Pending:   []SwapRequestView{},
		Accepted:  []SwapRequestView{},
		Rejected:  []SwapRequestView{},
		Cancelled: []SwapRequestView{},
	}
	summary := SwapSummary{}

	summaries := map[uuid.UUID]user.Summary{}
	for _, req := range items {
		view, err := s.expandCached(ctx, req, p.UserID, summaries)
		if err != nil {
			return SwapListResult{}, err
		}

		summary.Total++
		switch req.Status {
		case swap.StatusPending:
			buckets.Pending = append(buckets.Pending, view)
			summary.Pending++
		case swap.StatusAccepted:
			buckets.Accepted = append(buckets.Accepted, view)
			summary.Accepted++
		case swap.StatusRejected:
			buckets.Rejected = append(buckets.Rejected, view)
			summary.Rejected++
		case swap.StatusCancelled:
			buckets.Cancelled = append(buckets.Cancelled, view)
			summary.Cancelled++
		}
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return SwapListResult{
		Requests: buckets,
		Summary:  summary,
		Pagination: SwapPagination{
			CurrentPage:  page,
			TotalPages:   totalPages,
			TotalItems:   total,
			ItemsPerPage: limit,
			HasNextPage:  page < totalPages,
			HasPrevPage:  page > 1,
		},
	}, nil
}

func (s *Swap) Cancel(ctx context.Context, requestID, actingUserID uuid.UUID) (SwapRequestView, error) {
	return s.transition(ctx, requestID, actingUserID, swap.StatusCancelled)
}

func (s *Swap) Accept(ctx context.Context, requestID, actingUserID uuid.UUID) (SwapRequestView, error) {
	return s.transition(ctx, requestID, actingUserID, swap.StatusAccepted)
}

func (s *Swap) Reject(ctx context.Context, requestID, actingUserID uuid.UUID) (SwapRequestView, error) {
	return s.transition(ctx, requestID, actingUserID, swap.StatusRejected)
}

// transition applies one of the three terminal moves. Validation order is
// fixed: existence, then authorization, then state. The final state check is
// enforced again inside the conditional update, so a concurrent transition
// that wins the race surfaces as ErrRequestNotPending rather than a double
// write.
func (s *Swap) transition(ctx context.Context, requestID, actingUserID uuid.UUID, to swap.Status) (SwapRequestView, error) {
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, swap.ErrNotFound) {
			return SwapRequestView{}, ErrRequestNotFound
		}
		return SwapRequestView{}, ErrInternal
	}

	if to == swap.StatusCancelled {
		if req.RequesterID != actingUserID {
			return SwapRequestView{}, ErrNotRequester
		}
	} else {
		if req.RecipientID != actingUserID {
			return SwapRequestView{}, ErrNotRecipient
		}
	}

	if req.Status != swap.StatusPending {
		return SwapRequestView{}, ErrRequestNotPending
	}

	updated, err := s.requests.UpdateStatusIfPending(ctx, requestID, to)
	if err != nil {
		switch {
		case errors.Is(err, swap.ErrNotPending):
			return SwapRequestView{}, ErrRequestNotPending
		case errors.Is(err, swap.ErrNotFound):
			return SwapRequestView{}, ErrRequestNotFound
		default:
			return SwapRequestView{}, ErrInternal
		}
	}

	return s.expand(ctx, updated, uuid.Nil)
}

func (s *Swap) expand(ctx context.Context, req swap.Request, viewer uuid.UUID) (SwapRequestView, error) {
	return s.expandCached(ctx, req, viewer, map[uuid.UUID]user.Summary{})
}

// expandCached attaches both party summaries, reusing lookups across one
// list page.
func (s *Swap) expandCached(ctx context.Context, req swap.Request, viewer uuid.UUID, cache map[uuid.UUID]user.Summary) (SwapRequestView, error) {
	requester, err := s.summaryFor(ctx, req.RequesterID, cache)
	if err != nil {
		return SwapRequestView{}, err
	}
	recipient, err := s.summaryFor(ctx, req.RecipientID, cache)
	if err != nil {
		return SwapRequestView{}, err
	}

	view := SwapRequestView{
		ID:             req.ID,
		Requester:      requester,
		Recipient:      recipient,
		SkillOffered:   req.SkillOffered,
		SkillRequested: req.SkillRequested,
		Status:         req.Status,
		Message:        req.Message,
		CreatedAt:      req.CreatedAt,
		UpdatedAt:      req.UpdatedAt,
	}

	if viewer != uuid.Nil {
		if req.RequesterID == viewer {
			view.RequestType = string(swap.RelationSent)
		} else {
			view.RequestType = string(swap.RelationReceived)
		}
	}

	return view, nil
}

func (s *Swap) summaryFor(ctx context.Context, id uuid.UUID, cache map[uuid.UUID]user.Summary) (user.Summary, error) {
	if sum, ok := cache[id]; ok {
		return sum, nil
	}
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return user.Summary{}, ErrInternal
	}
	sum := u.Summary()
	cache[id] = sum
	return sum, nil
}
