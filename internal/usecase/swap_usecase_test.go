package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"skill-swap/internal/domain/swap"
	"skill-swap/internal/domain/user"
)

type mockUserRepo struct {
	users map[uuid.UUID]user.User
	order []uuid.UUID
	err   error
}

func newMockUserRepo(users ...user.User) *mockUserRepo {
	m := &mockUserRepo{users: map[uuid.UUID]user.User{}}
	for _, u := range users {
		m.users[u.ID] = u
		m.order = append(m.order, u.ID)
	}
	return m
}

func (m *mockUserRepo) Create(context.Context, user.User) error { return nil }

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	if errors.Is(err, user.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (m *mockUserRepo) ListCandidates(_ context.Context, f user.CandidateFilter) ([]user.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]user.User, 0, len(m.order))
	for _, id := range m.order {
		u := m.users[id]
		if u.ID == f.ExcludeID {
			continue
		}
		if f.OnlyPublic && !u.IsPublic {
			continue
		}
		if f.ExcludeBanned && u.IsBanned {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (m *mockUserRepo) UpdateProfile(_ context.Context, id uuid.UUID, _ user.ProfilePatch) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	u, ok := m.users[id]
	if !ok {
		return user.ErrNotFound
	}
	u.PasswordHash = hash
	m.users[id] = u
	return nil
}

type mockSwapRepo struct {
	items []swap.Request
	err   error
}

func (m *mockSwapRepo) Insert(_ context.Context, r swap.Request) (swap.Request, error) {
	if m.err != nil {
		return swap.Request{}, m.err
	}
	for _, it := range m.items {
		if it.Status == swap.StatusPending &&
			it.RequesterID == r.RequesterID &&
			it.RecipientID == r.RecipientID &&
			it.SkillOffered == r.SkillOffered &&
			it.SkillRequested == r.SkillRequested {
			return swap.Request{}, swap.ErrDuplicatePending
		}
	}
	r.CreatedAt = time.Now().UTC()
	r.UpdatedAt = r.CreatedAt
	m.items = append(m.items, r)
	return r, nil
}

func (m *mockSwapRepo) GetByID(_ context.Context, id uuid.UUID) (swap.Request, error) {
	for _, it := range m.items {
		if it.ID == id {
			return it, nil
		}
	}
	return swap.Request{}, swap.ErrNotFound
}

func (m *mockSwapRepo) matches(r swap.Request, f swap.ListFilter) bool {
	switch f.Relation {
	case swap.RelationSent:
		if r.RequesterID != f.UserID {
			return false
		}
	case swap.RelationReceived:
		if r.RecipientID != f.UserID {
			return false
		}
	default:
		if r.RequesterID != f.UserID && r.RecipientID != f.UserID {
			return false
		}
	}
	if f.Status != nil && r.Status != *f.Status {
		return false
	}
	return true
}

func (m *mockSwapRepo) List(_ context.Context, f swap.ListFilter) ([]swap.Request, error) {
	if m.err != nil {
		return nil, m.err
	}
	all := make([]swap.Request, 0, len(m.items))
	for _, it := range m.items {
		if m.matches(it, f) {
			all = append(all, it)
		}
	}
	if f.Offset >= len(all) {
		return nil, nil
	}
	all = all[f.Offset:]
	if f.Limit > 0 && len(all) > f.Limit {
		all = all[:f.Limit]
	}
	return all, nil
}

func (m *mockSwapRepo) Count(_ context.Context, f swap.ListFilter) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	n := 0
	for _, it := range m.items {
		if m.matches(it, f) {
			n++
		}
	}
	return n, nil
}

func (m *mockSwapRepo) UpdateStatusIfPending(_ context.Context, id uuid.UUID, to swap.Status) (swap.Request, error) {
	for i, it := range m.items {
		if it.ID != id {
			continue
		}
		if it.Status != swap.StatusPending {
			return swap.Request{}, swap.ErrNotPending
		}
		it.Status = to
		it.UpdatedAt = time.Now().UTC()
		m.items[i] = it
		return it, nil
	}
	return swap.Request{}, swap.ErrNotFound
}

func testUser(name string, offered, wanted []string) user.User {
	return user.User{
		ID:            uuid.New(),
		Role:          user.RoleRegular,
		Name:          name,
		Email:         name + "@example.com",
		PetName:       "pet",
		SkillsOffered: offered,
		SkillsWanted:  wanted,
		Availability:  &user.Availability{Weekdays: true},
		IsPublic:      true,
	}
}

func TestSwapCreate_RecipientNotFound(t *testing.T) {
	requester := testUser("alice", []string{"Guitar"}, []string{"Spanish"})
	uc := NewSwapUsecase(&mockSwapRepo{}, newMockUserRepo(requester))

	_, err := uc.Create(context.Background(), CreateSwapInput{
		RequesterID:    requester.ID,
		RecipientID:    uuid.New(),
		SkillOffered:   "nonsense",
		SkillRequested: "nonsense",
	})
	if !errors.Is(err, ErrRecipientNotFound) {
		t.Fatalf("expected ErrRecipientNotFound, got %v", err)
	}
}

func TestSwapCreate_RecipientUnavailable(t *testing.T) {
	requester := testUser("alice", []string{"Guitar"}, []string{"Spanish"})

	private := testUser("bob", []string{"Spanish"}, []string{"Guitar"})
	private.IsPublic = false

	banned := testUser("carol", []string{"Spanish"}, []string{"Guitar"})
	banned.IsBanned = true

	uc := NewSwapUsecase(&mockSwapRepo{}, newMockUserRepo(requester, private, banned))

	for _, recipient := range []uuid.UUID{private.ID, banned.ID} {
		_, err := uc.Create(context.Background(), CreateSwapInput{
			RequesterID:    requester.ID,
			RecipientID:    recipient,
			SkillOffered:   "Guitar",
			SkillRequested: "Spanish",
		})
		if !errors.Is(err, ErrRecipientUnavailable) {
			t.Fatalf("expected ErrRecipientUnavailable, got %v", err)
		}
	}
}

func TestSwapCreate_SkillValidation(t *testing.T) {
	requester := testUser("alice", []string{"Guitar"}, []string{"Spanish"})
	recipient := testUser("bob", []string{"Spanish"}, []string{"Guitar"})
	uc := NewSwapUsecase(&mockSwapRepo{}, newMockUserRepo(requester, recipient))

	// Requester does not offer the offered skill.
	_, err := uc.Create(context.Background(), CreateSwapInput{
		RequesterID:    requester.ID,
		RecipientID:    recipient.ID,
		SkillOffered:   "Piano",
		SkillRequested: "Spanish",
	})
	if !errors.Is(err, ErrSkillValidation) {
		t.Fatalf("expected ErrSkillValidation for offered skill, got %v", err)
	}

	// Recipient does not offer the requested skill.
	_, err = uc.Create(context.Background(), CreateSwapInput{
		RequesterID:    requester.ID,
		RecipientID:    recipient.ID,
		SkillOffered:   "Guitar",
		SkillRequested: "French",
	})
	if !errors.Is(err, ErrSkillValidation) {
		t.Fatalf("expected ErrSkillValidation for requested skill, got %v", err)
	}
}

func TestSwapCreate_SuccessAndDuplicate(t *testing.T) {
	requester := testUser("alice", []string{"Guitar"}, []string{"Spanish"})
	recipient := testUser("bob", []string{"Spanish"}, []string{"Guitar"})
	uc := NewSwapUsecase(&mockSwapRepo{}, newMockUserRepo(requester, recipient))

	in := CreateSwapInput{
		RequesterID:    requester.ID,
		RecipientID:    recipient.ID,
		SkillOffered:   "Guitar",
		SkillRequested: "Spanish",
		Message:        "trade?",
	}

	view, err := uc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if view.Status != swap.StatusPending {
		t.Fatalf("expected pending status, got %s", view.Status)
	}
	if view.Requester.ID != requester.ID || view.Recipient.ID != recipient.ID {
		t.Fatalf("unexpected party summaries")
	}
	if view.RequestType != "" {
		t.Fatalf("create response must not carry requestType, got %q", view.RequestType)
	}

	_, err = uc.Create(context.Background(), in)
	if !errors.Is(err, ErrDuplicateRequest) {
		t.Fatalf("expected ErrDuplicateRequest, got %v", err)
	}
}

func TestSwapCreate_DuplicateScopedToTuple(t *testing.T) {
	requester := testUser("alice", []string{"Guitar", "Piano"}, []string{"Spanish"})
	recipient := testUser("bob", []string{"Spanish"}, []string{"Guitar"})
	uc := NewSwapUsecase(&mockSwapRepo{}, newMockUserRepo(requester, recipient))

	first := CreateSwapInput{
		RequesterID:    requester.ID,
		RecipientID:    recipient.ID,
		SkillOffered:   "Guitar",
		SkillRequested: "Spanish",
	}
	if _, err := uc.Create(context.Background(), first); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// Same pair, different offered skill: a distinct tuple, not a duplicate.
	second := first
	second.SkillOffered = "Piano"
	if _, err := uc.Create(context.Background(), second); err != nil {
		t.Fatalf("unexpected err for distinct tuple: %v", err)
	}
}

func TestSwapList_PaginationAndBuckets(t *testing.T) {
	me := testUser("alice", []string{"Guitar"}, []string{"Spanish"})
	other := testUser("bob", []string{"Spanish"}, []string{"Guitar"})
	users := newMockUserRepo(me, other)

	repo := &mockSwapRepo{}
	for i := 0; i < 15; i++ {
		repo.items = append(repo.items, swap.Request{
			ID:             uuid.New(),
			RequesterID:    me.ID,
			RecipientID:    other.ID,
			SkillOffered:   "Guitar",
			SkillRequested: fmt.Sprintf("Skill %d", i),
			Status:         swap.StatusPending,
		})
	}

	uc := NewSwapUsecase(repo, users)

	res, err := uc.List(context.Background(), SwapListParams{UserID: me.ID, Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := len(res.Requests.Pending); got != 5 {
		t.Fatalf("expected 5 pending on page 2, got %d", got)
	}
	if res.Summary.Total != 5 || res.Summary.Pending != 5 {
		t.Fatalf("summary must count the page: %+v", res.Summary)
	}
	p := res.Pagination
	if p.CurrentPage != 2 || p.TotalPages != 2 || p.TotalItems != 15 || p.ItemsPerPage != 10 {
		t.Fatalf("unexpected pagination: %+v", p)
	}
	if p.HasNextPage || !p.HasPrevPage {
		t.Fatalf("expected hasNextPage=false hasPrevPage=true, got %+v", p)
	}
	for _, v := range res.Requests.Pending {
		if v.RequestType != string(swap.RelationSent) {
			t.Fatalf("expected requestType=sent, got %q", v.RequestType)
		}
	}
	if res.Requests.Accepted == nil || res.Requests.Rejected == nil || res.Requests.Cancelled == nil {
		t.Fatalf("empty buckets must be present, not nil")
	}
}

func TestSwapList_ReceivedRelationAndStatusFilter(t *testing.T) {
	me := testUser("alice", []string{"Guitar"}, []string{"Spanish"})
	other := testUser("bob", []string{"Spanish"}, []string{"Guitar"})
	users := newMockUserRepo(me, other)

	repo := &mockSwapRepo{items: []swap.Request{
		{ID: uuid.New(), RequesterID: other.ID, RecipientID: me.ID, Status: swap.StatusPending},
		{ID: uuid.New(), RequesterID: other.ID, RecipientID: me.ID, Status: swap.StatusAccepted},
		{ID: uuid.New(), RequesterID: me.ID, RecipientID: other.ID, Status: swap.StatusPending},
	}}

	uc := NewSwapUsecase(repo, users)

	res, err := uc.List(context.Background(), SwapListParams{
		UserID: me.ID,
		Type:   "received",
		Status: "accepted",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Summary.Total != 1 || res.Summary.Accepted != 1 {
		t.Fatalf("unexpected summary: %+v", res.Summary)
	}
	if got := res.Requests.Accepted[0].RequestType; got != string(swap.RelationReceived) {
		t.Fatalf("expected requestType=received, got %q", got)
	}

	// Unknown status and type values fall back to no filtering.
	res, err = uc.List(context.Background(), SwapListParams{UserID: me.ID, Type: "bogus", Status: "bogus"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Summary.Total != 3 {
		t.Fatalf("expected all 3 requests, got %d", res.Summary.Total)
	}
}

func TestSwapTransitions(t *testing.T) {
	requester := testUser("alice", []string{"Guitar"}, []string{"Spanish"})
	recipient := testUser("bob", []string{"Spanish"}, []string{"Guitar"})
	stranger := testUser("eve", nil, nil)
	users := newMockUserRepo(requester, recipient, stranger)

	newRepo := func(status swap.Status) (*mockSwapRepo, uuid.UUID) {
		id := uuid.New()
		return &mockSwapRepo{items: []swap.Request{{
			ID:          id,
			RequesterID: requester.ID,
			RecipientID: recipient.ID,
			Status:      status,
		}}}, id
	}

	t.Run("not found", func(t *testing.T) {
		repo, _ := newRepo(swap.StatusPending)
		uc := NewSwapUsecase(repo, users)
		if _, err := uc.Cancel(context.Background(), uuid.New(), requester.ID); !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("cancel requires requester", func(t *testing.T) {
		repo, id := newRepo(swap.StatusPending)
		uc := NewSwapUsecase(repo, users)
		if _, err := uc.Cancel(context.Background(), id, recipient.ID); !errors.Is(err, ErrNotRequester) {
			t.Fatalf("expected ErrNotRequester, got %v", err)
		}
	})

	t.Run("accept requires recipient", func(t *testing.T) {
		repo, id := newRepo(swap.StatusPending)
		uc := NewSwapUsecase(repo, users)
		if _, err := uc.Accept(context.Background(), id, stranger.ID); !errors.Is(err, ErrNotRecipient) {
			t.Fatalf("expected ErrNotRecipient, got %v", err)
		}
	})

	t.Run("authorization checked before state", func(t *testing.T) {
		repo, id := newRepo(swap.StatusRejected)
		uc := NewSwapUsecase(repo, users)
		if _, err := uc.Accept(context.Background(), id, stranger.ID); !errors.Is(err, ErrNotRecipient) {
			t.Fatalf("expected ErrNotRecipient on terminal request, got %v", err)
		}
	})

	t.Run("terminal request rejects transition", func(t *testing.T) {
		repo, id := newRepo(swap.StatusAccepted)
		uc := NewSwapUsecase(repo, users)
		if _, err := uc.Reject(context.Background(), id, recipient.ID); !errors.Is(err, ErrRequestNotPending) {
			t.Fatalf("expected ErrRequestNotPending, got %v", err)
		}
	})

	t.Run("cancel then accept", func(t *testing.T) {
		repo, id := newRepo(swap.StatusPending)
		uc := NewSwapUsecase(repo, users)

		view, err := uc.Cancel(context.Background(), id, requester.ID)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if view.Status != swap.StatusCancelled {
			t.Fatalf("expected cancelled, got %s", view.Status)
		}

		if _, err := uc.Accept(context.Background(), id, recipient.ID); !errors.Is(err, ErrRequestNotPending) {
			t.Fatalf("expected ErrRequestNotPending after cancel, got %v", err)
		}
	})

	t.Run("accept", func(t *testing.T) {
		repo, id := newRepo(swap.StatusPending)
		uc := NewSwapUsecase(repo, users)
		view, err := uc.Accept(context.Background(), id, recipient.ID)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if view.Status != swap.StatusAccepted {
			t.Fatalf("expected accepted, got %s", view.Status)
		}
	})
}
