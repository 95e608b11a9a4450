// Package memory keeps every marketplace document in process memory behind
// one mutex. It implements the same ports as the DynamoDB repositories,
// including their conditional-write semantics, and backs STORE_DRIVER=memory
// and the usecase tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"fellowship_escrow/internal/domain/entities"
	"fellowship_escrow/internal/usecase/interfaces"
)

type Store struct {
	mu         sync.RWMutex
	challenges map[string]entities.Challenge
	proposals  map[string]entities.Proposal
	rooms      map[string]entities.ProjectRoom
	orders     map[string]entities.PaymentOrder
	messages   map[string][]entities.RoomMessage
	messageIDs map[string]map[string]struct{}
}

func NewStore() *Store {
	return &Store{
		challenges: make(map[string]entities.Challenge),
		proposals:  make(map[string]entities.Proposal),
		rooms:      make(map[string]entities.ProjectRoom),
		orders:     make(map[string]entities.PaymentOrder),
		messages:   make(map[string][]entities.RoomMessage),
		messageIDs: make(map[string]map[string]struct{}),
	}
}

func (s *Store) Challenges() *ChallengeRepository   { return &ChallengeRepository{s: s} }
func (s *Store) Proposals() *ProposalRepository     { return &ProposalRepository{s: s} }
func (s *Store) Rooms() *ProjectRoomRepository      { return &ProjectRoomRepository{s: s} }
func (s *Store) Messages() *RoomMessageRepository   { return &RoomMessageRepository{s: s} }
func (s *Store) Orders() *PaymentOrderRepository    { return &PaymentOrderRepository{s: s} }
func (s *Store) Transactor() *MarketplaceTransactor { return &MarketplaceTransactor{s: s} }

// Challenges

type ChallengeRepository struct{ s *Store }

var _ interfaces.IChallengeRepository = (*ChallengeRepository)(nil)

func (r *ChallengeRepository) Create(_ context.Context, c entities.Challenge) (entities.Challenge, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.challenges[c.ID]; ok {
		return entities.Challenge{}, interfaces.ErrAlreadyExists
	}
	r.s.challenges[c.ID] = cloneChallenge(c)
	return cloneChallenge(c), nil
}

func (r *ChallengeRepository) GetByID(_ context.Context, id string) (entities.Challenge, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneChallenge(r.s.challenges[id]), nil
}

func (r *ChallengeRepository) AcquireSelection(_ context.Context, id string, lock entities.SelectionLock) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.challenges[id]
	if !ok || c.Status != entities.ChallengeStatusOpen || c.Selection != nil {
		return false, nil
	}
	l := lock
	c.Selection = &l
	c.UpdatedAt = lock.AcquiredAt
	r.s.challenges[id] = c
	return true, nil
}

func (r *ChallengeRepository) ReleaseSelection(_ context.Context, id, token string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.challenges[id]
	if !ok || c.Selection == nil || c.Selection.Token != token {
		return false, nil
	}
	c.Selection = nil
	r.s.challenges[id] = c
	return true, nil
}

func (r *ChallengeRepository) Cancel(_ context.Context, id string, at time.Time) (entities.Challenge, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.challenges[id]
	if !ok || c.Status != entities.ChallengeStatusOpen || c.Selection != nil {
		return entities.Challenge{}, false, nil
	}
	c.Status = entities.ChallengeStatusCancelled
	c.UpdatedAt = at
	r.s.challenges[id] = c
	return cloneChallenge(c), true, nil
}

func (r *ChallengeRepository) ListWithSelectionBefore(_ context.Context, cutoff time.Time) ([]entities.Challenge, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Challenge, 0)
	for _, c := range r.s.challenges {
		if c.Selection != nil && c.Selection.AcquiredAt.Before(cutoff) {
			out = append(out, cloneChallenge(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Selection.AcquiredAt.Before(out[j].Selection.AcquiredAt) })
	return out, nil
}

// Proposals

type ProposalRepository struct{ s *Store }

var _ interfaces.IProposalRepository = (*ProposalRepository)(nil)

func (r *ProposalRepository) GetByID(_ context.Context, id string) (entities.Proposal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.proposals[id], nil
}

func (r *ProposalRepository) ListByChallengeID(_ context.Context, challengeID string) ([]entities.Proposal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Proposal, 0)
	for _, p := range r.s.proposals {
		if p.ChallengeID == challengeID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *ProposalRepository) MarkPaymentPending(_ context.Context, id, token string, at time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.proposals[id]
	if !ok || p.Status != entities.ProposalStatusPending {
		return false, nil
	}
	started := at
	p.Status = entities.ProposalStatusPaymentPending
	p.SelectionToken = token
	p.PaymentStartedAt = &started
	p.UpdatedAt = at
	r.s.proposals[id] = p
	return true, nil
}

func (r *ProposalRepository) RevertPaymentPending(_ context.Context, id, token string, at time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.proposals[id]
	if !ok || p.Status != entities.ProposalStatusPaymentPending || p.SelectionToken != token {
		return false, nil
	}
	p.Status = entities.ProposalStatusPending
	p.SelectionToken = ""
	p.PaymentStartedAt = nil
	p.UpdatedAt = at
	r.s.proposals[id] = p
	return true, nil
}

func (r *ProposalRepository) ListPaymentPendingBefore(_ context.Context, cutoff time.Time) ([]entities.Proposal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Proposal, 0)
	for _, p := range r.s.proposals {
		if p.Status == entities.ProposalStatusPaymentPending && p.PaymentStartedAt != nil && p.PaymentStartedAt.Before(cutoff) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaymentStartedAt.Before(*out[j].PaymentStartedAt) })
	return out, nil
}

// Rooms

type ProjectRoomRepository struct{ s *Store }

var _ interfaces.IProjectRoomRepository = (*ProjectRoomRepository)(nil)

func (r *ProjectRoomRepository) GetByID(_ context.Context, id string) (entities.ProjectRoom, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.rooms[id], nil
}

// Messages

type RoomMessageRepository struct{ s *Store }

var _ interfaces.IRoomMessageRepository = (*RoomMessageRepository)(nil)

func (r *RoomMessageRepository) Append(_ context.Context, m entities.RoomMessage) (entities.RoomMessage, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ids, ok := r.s.messageIDs[m.RoomID]
	if !ok {
		ids = make(map[string]struct{})
		r.s.messageIDs[m.RoomID] = ids
	}
	if _, dup := ids[m.ID]; dup {
		return entities.RoomMessage{}, interfaces.ErrAlreadyExists
	}
	log := r.s.messages[m.RoomID]
	i := sort.Search(len(log), func(i int) bool { return m.Less(log[i]) })
	log = append(log, entities.RoomMessage{})
	copy(log[i+1:], log[i:])
	log[i] = m
	r.s.messages[m.RoomID] = log
	ids[m.ID] = struct{}{}
	return m, nil
}

func (r *RoomMessageRepository) GetByID(_ context.Context, roomID, id string) (entities.RoomMessage, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if _, ok := r.s.messageIDs[roomID][id]; !ok {
		return entities.RoomMessage{}, nil
	}
	for _, m := range r.s.messages[roomID] {
		if m.ID == id {
			return m, nil
		}
	}
	return entities.RoomMessage{}, nil
}

func (r *RoomMessageRepository) ListByRoom(_ context.Context, roomID, afterSeq string) ([]entities.RoomMessage, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	log := r.s.messages[roomID]
	out := make([]entities.RoomMessage, 0, len(log))
	for _, m := range log {
		if afterSeq == "" || m.Seq() > afterSeq {
			out = append(out, m)
		}
	}
	return out, nil
}

// Orders

type PaymentOrderRepository struct{ s *Store }

var _ interfaces.IPaymentOrderRepository = (*PaymentOrderRepository)(nil)

func (r *PaymentOrderRepository) Create(_ context.Context, o entities.PaymentOrder) (entities.PaymentOrder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.orders[o.ID]; ok {
		return entities.PaymentOrder{}, interfaces.ErrAlreadyExists
	}
	r.s.orders[o.ID] = o
	return o, nil
}

func (r *PaymentOrderRepository) GetByID(_ context.Context, id string) (entities.PaymentOrder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.orders[id], nil
}

func (r *PaymentOrderRepository) ListByProposalID(_ context.Context, proposalID string) ([]entities.PaymentOrder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.PaymentOrder, 0)
	for _, o := range r.s.orders {
		if o.ProposalID == proposalID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *PaymentOrderRepository) Transition(_ context.Context, id string, from []entities.PaymentOrderStatus, to entities.PaymentOrderStatus, patch interfaces.PaymentOrderPatch, at time.Time) (entities.PaymentOrder, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok || !containsStatus(from, o.Status) {
		return entities.PaymentOrder{}, false, nil
	}
	o.Status = to
	o.UpdatedAt = at
	if patch.ProviderRef != "" {
		o.ProviderRef = patch.ProviderRef
	}
	if patch.CheckoutURL != "" {
		o.CheckoutURL = patch.CheckoutURL
	}
	if patch.RoomID != "" {
		o.RoomID = patch.RoomID
	}
	if patch.FailureReason != "" {
		o.FailureReason = patch.FailureReason
	}
	if len(patch.ProviderPayloadRaw) > 0 {
		o.ProviderPayloadRaw = patch.ProviderPayloadRaw
	}
	r.s.orders[id] = o
	return o, true, nil
}

// Multi-document writes

type MarketplaceTransactor struct{ s *Store }

var _ interfaces.IMarketplaceTransactor = (*MarketplaceTransactor)(nil)

func (t *MarketplaceTransactor) SubmitProposal(_ context.Context, p entities.Proposal) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if _, ok := t.s.proposals[p.ID]; ok {
		return interfaces.ErrAlreadyExists
	}
	c, ok := t.s.challenges[p.ChallengeID]
	if !ok || c.Status != entities.ChallengeStatusOpen || c.Selection != nil {
		return interfaces.ErrConditionFailed
	}
	c.ProposalCount++
	c.UpdatedAt = p.CreatedAt
	t.s.challenges[c.ID] = c
	t.s.proposals[p.ID] = p
	return nil
}

func (t *MarketplaceTransactor) CommitAward(_ context.Context, a interfaces.AwardCommit) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	if _, exists := t.s.rooms[a.Room.ID]; exists {
		return interfaces.ErrConditionFailed
	}
	c, ok := t.s.challenges[a.ChallengeID]
	if !ok || c.Status != entities.ChallengeStatusOpen || c.Selection == nil || c.Selection.Token != a.SelectionToken {
		return interfaces.ErrConditionFailed
	}
	winner, ok := t.s.proposals[a.ProposalID]
	if !ok || winner.Status != entities.ProposalStatusPaymentPending || winner.SelectionToken != a.SelectionToken {
		return interfaces.ErrConditionFailed
	}
	for _, id := range a.RejectedProposalIDs {
		if p, ok := t.s.proposals[id]; !ok || p.Status.IsFinal() {
			return interfaces.ErrConditionFailed
		}
	}

	t.s.rooms[a.Room.ID] = a.Room

	winner.Status = entities.ProposalStatusSelected
	winner.SelectionToken = ""
	winner.PaymentStartedAt = nil
	winner.UpdatedAt = a.At
	t.s.proposals[winner.ID] = winner

	for _, id := range a.RejectedProposalIDs {
		p := t.s.proposals[id]
		p.Status = entities.ProposalStatusRejected
		p.SelectionToken = ""
		p.PaymentStartedAt = nil
		p.UpdatedAt = a.At
		t.s.proposals[id] = p
	}

	c.Status = entities.ChallengeStatusInProgress
	c.Selection = nil
	c.UpdatedAt = a.At
	t.s.challenges[c.ID] = c
	return nil
}

func (t *MarketplaceTransactor) CommitEscrowDecision(_ context.Context, d interfaces.EscrowSettlement) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	room, ok := t.s.rooms[d.RoomID]
	if !ok || room.EscrowStatus != entities.EscrowStatusHeld {
		return interfaces.ErrConditionFailed
	}
	var c entities.Challenge
	if d.Decision == entities.EscrowDecisionRelease {
		c, ok = t.s.challenges[d.ChallengeID]
		if !ok || c.Status != entities.ChallengeStatusInProgress {
			return interfaces.ErrConditionFailed
		}
	}

	room.EscrowStatus = d.Decision.ResultingEscrowStatus()
	if d.Decision == entities.EscrowDecisionRelease {
		at := d.At
		room.Status = entities.RoomStatusCompleted
		room.CompletedAt = &at
		c.Status = entities.ChallengeStatusCompleted
		c.UpdatedAt = d.At
		t.s.challenges[c.ID] = c
	}
	t.s.rooms[room.ID] = room
	return nil
}

func containsStatus(list []entities.PaymentOrderStatus, s entities.PaymentOrderStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func cloneChallenge(c entities.Challenge) entities.Challenge {
	if c.Selection != nil {
		l := *c.Selection
		c.Selection = &l
	}
	return c
}
