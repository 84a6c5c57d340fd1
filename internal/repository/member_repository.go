package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"talent-hub/internal/database"
	"talent-hub/internal/domain/member"
)

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrEmailTaken     = errors.New("email already in use")
)

// MemberFilter narrows List. Name matches case-insensitively on a substring.
// ClientID matches against the member's resolved current client. SkillID
// matches members holding a grading for that skill.
type MemberFilter struct {
	Name     string
	Tier     member.Tier
	ClientID int64
	SkillID  int64
}

type MemberRepository interface {
	List(ctx context.Context, f MemberFilter) ([]member.Member, error)
	GetByID(ctx context.Context, id int64) (member.Member, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, m member.Member) (member.Member, error)
	Update(ctx context.Context, m member.Member) (member.Member, error)
	Delete(ctx context.Context, id int64) error
	CurrentClient(ctx context.Context, memberID int64) (string, error)
}

type SnapshotMemberRepository struct {
	store *Store
}

func NewSnapshotMemberRepository(store *Store) *SnapshotMemberRepository {
	return &SnapshotMemberRepository{store: store}
}

func (r *SnapshotMemberRepository) List(_ context.Context, f MemberFilter) ([]member.Member, error) {
	var out []member.Member
	err := r.store.View(func(doc *database.Snapshot) error {
		directory := clientDirectory(doc)

		for _, m := range doc.Members {
			if f.Name != "" && !strings.Contains(strings.ToLower(m.Name), strings.ToLower(f.Name)) {
				continue
			}
			if f.Tier != "" && m.Tier != f.Tier {
				continue
			}
			if f.SkillID != 0 && !memberHasSkill(doc, m.ID, f.SkillID) {
				continue
			}
			if f.ClientID != 0 {
				name, ok := directory[f.ClientID]
				if !ok {
					continue
				}
				if member.CurrentClient(memberEngagements(doc, m.ID), directory) != name {
					continue
				}
			}
			out = append(out, m)
		}
		return nil
	})
	return out, err
}

func (r *SnapshotMemberRepository) GetByID(_ context.Context, id int64) (member.Member, error) {
	var out member.Member
	err := r.store.View(func(doc *database.Snapshot) error {
		for _, m := range doc.Members {
			if m.ID == id {
				out = m
				return nil
			}
		}
		return ErrMemberNotFound
	})
	return out, err
}

func (r *SnapshotMemberRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	_, err := r.GetByID(ctx, id)
	if errors.Is(err, ErrMemberNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *SnapshotMemberRepository) Create(ctx context.Context, in member.Member) (member.Member, error) {
	var out member.Member
	err := r.store.Update(ctx, func(doc *database.Snapshot) error {
		for _, m := range doc.Members {
			if strings.EqualFold(m.Email, in.Email) {
				return ErrEmailTaken
			}
		}
		now := time.Now().UTC()
		in.ID = doc.NextID("members")
		in.CreatedAt = now
		in.UpdatedAt = now
		doc.Members = append(doc.Members, in)
		out = in
		return nil
	})
	return out, err
}

func (r *SnapshotMemberRepository) Update(ctx context.Context, in member.Member) (member.Member, error) {
	var out member.Member
	err := r.store.Update(ctx, func(doc *database.Snapshot) error {
		for _, m := range doc.Members {
			if m.ID != in.ID && strings.EqualFold(m.Email, in.Email) {
				return ErrEmailTaken
			}
		}
		for i, m := range doc.Members {
			if m.ID == in.ID {
				in.CreatedAt = m.CreatedAt
				in.UpdatedAt = time.Now().UTC()
				doc.Members[i] = in
				out = in
				return nil
			}
		}
		return ErrMemberNotFound
	})
	return out, err
}

// Delete removes the member and everything it owns: gradings, goals and all
// profile sub-records.
func (r *SnapshotMemberRepository) Delete(ctx context.Context, id int64) error {
	return r.store.Update(ctx, func(doc *database.Snapshot) error {
		found := false
		for i, m := range doc.Members {
			if m.ID == id {
				doc.Members = append(doc.Members[:i], doc.Members[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			return ErrMemberNotFound
		}

		doc.Gradings = deleteOwned(doc.Gradings, id, func(g member.Grading) int64 { return g.MemberID })
		doc.Assignments = deleteOwned(doc.Assignments, id, func(a member.Assignment) int64 { return a.MemberID })
		doc.Roles = deleteOwned(doc.Roles, id, func(x member.Role) int64 { return x.MemberID })
		doc.Appreciations = deleteOwned(doc.Appreciations, id, func(x member.Appreciation) int64 { return x.MemberID })
		doc.Feedback = deleteOwned(doc.Feedback, id, func(x member.Feedback) int64 { return x.MemberID })
		doc.Engagements = deleteOwned(doc.Engagements, id, func(x member.Engagement) int64 { return x.MemberID })

		kept := doc.Goals[:0]
		for _, g := range doc.Goals {
			if g.MemberID != id {
				kept = append(kept, g)
			}
		}
		doc.Goals = kept
		return nil
	})
}

func (r *SnapshotMemberRepository) CurrentClient(_ context.Context, memberID int64) (string, error) {
	var out string
	err := r.store.View(func(doc *database.Snapshot) error {
		out = member.CurrentClient(memberEngagements(doc, memberID), clientDirectory(doc))
		return nil
	})
	return out, err
}

func deleteOwned[T any](items []T, memberID int64, owner func(T) int64) []T {
	kept := items[:0]
	for _, it := range items {
		if owner(it) != memberID {
			kept = append(kept, it)
		}
	}
	return kept
}

func clientDirectory(doc *database.Snapshot) map[int64]string {
	out := make(map[int64]string, len(doc.Clients))
	for _, c := range doc.Clients {
		out[c.ID] = c.Name
	}
	return out
}

func memberEngagements(doc *database.Snapshot, memberID int64) []member.Engagement {
	var out []member.Engagement
	for _, e := range doc.Engagements {
		if e.MemberID == memberID {
			out = append(out, e)
		}
	}
	return out
}

func memberHasSkill(doc *database.Snapshot, memberID, skillID int64) bool {
	for _, g := range doc.Gradings {
		if g.MemberID == memberID && g.SkillID == skillID {
			return true
		}
	}
	return false
}
