package repository

import (
	"context"
	"errors"

	"talent-hub/internal/database"
	"talent-hub/internal/domain/member"
)

var ErrProfileRecordNotFound = errors.New("profile record not found")

// ProfileRepository covers the member-owned sub-record lists: assignments,
// roles, appreciations, feedback comments and client-engagement history. Each
// list has independent CRUD; MemberID ownership is fixed at creation.
type ProfileRepository interface {
	ListAssignments(ctx context.Context, memberID int64) ([]member.Assignment, error)
	AddAssignment(ctx context.Context, a member.Assignment) (member.Assignment, error)
	UpdateAssignment(ctx context.Context, a member.Assignment) (member.Assignment, error)
	DeleteAssignment(ctx context.Context, memberID, id int64) error

	ListRoles(ctx context.Context, memberID int64) ([]member.Role, error)
	AddRole(ctx context.Context, x member.Role) (member.Role, error)
	UpdateRole(ctx context.Context, x member.Role) (member.Role, error)
	DeleteRole(ctx context.Context, memberID, id int64) error

	ListAppreciations(ctx context.Context, memberID int64) ([]member.Appreciation, error)
	AddAppreciation(ctx context.Context, x member.Appreciation) (member.Appreciation, error)
	UpdateAppreciation(ctx context.Context, x member.Appreciation) (member.Appreciation, error)
	DeleteAppreciation(ctx context.Context, memberID, id int64) error

	ListFeedback(ctx context.Context, memberID int64) ([]member.Feedback, error)
	AddFeedback(ctx context.Context, x member.Feedback) (member.Feedback, error)
	UpdateFeedback(ctx context.Context, x member.Feedback) (member.Feedback, error)
	DeleteFeedback(ctx context.Context, memberID, id int64) error

	ListEngagements(ctx context.Context, memberID int64) ([]member.Engagement, error)
	AddEngagement(ctx context.Context, x member.Engagement) (member.Engagement, error)
	UpdateEngagement(ctx context.Context, x member.Engagement) (member.Engagement, error)
	DeleteEngagement(ctx context.Context, memberID, id int64) error
}

type SnapshotProfileRepository struct {
	store *Store
}

func NewSnapshotProfileRepository(store *Store) *SnapshotProfileRepository {
	return &SnapshotProfileRepository{store: store}
}

// subRecord ties a sub-record type to its id/owner accessors so the five
// lists share one CRUD implementation.
type subRecord[T any] struct {
	sequence string
	list     func(doc *database.Snapshot) *[]T
	id       func(T) int64
	setID    func(*T, int64)
	owner    func(T) int64
}

func listSub[T any](store *Store, def subRecord[T], memberID int64) ([]T, error) {
	var out []T
	err := store.View(func(doc *database.Snapshot) error {
		for _, it := range *def.list(doc) {
			if def.owner(it) == memberID {
				out = append(out, it)
			}
		}
		return nil
	})
	return out, err
}

func addSub[T any](ctx context.Context, store *Store, def subRecord[T], in T) (T, error) {
	var out T
	err := store.Update(ctx, func(doc *database.Snapshot) error {
		if !memberExists(doc, def.owner(in)) {
			return ErrMemberNotFound
		}
		def.setID(&in, doc.NextID(def.sequence))
		l := def.list(doc)
		*l = append(*l, in)
		out = in
		return nil
	})
	return out, err
}

func updateSub[T any](ctx context.Context, store *Store, def subRecord[T], in T) (T, error) {
	var out T
	err := store.Update(ctx, func(doc *database.Snapshot) error {
		l := def.list(doc)
		for i, it := range *l {
			if def.id(it) == def.id(in) && def.owner(it) == def.owner(in) {
				(*l)[i] = in
				out = in
				return nil
			}
		}
		return ErrProfileRecordNotFound
	})
	return out, err
}

func deleteSub[T any](ctx context.Context, store *Store, def subRecord[T], memberID, id int64) error {
	return store.Update(ctx, func(doc *database.Snapshot) error {
		l := def.list(doc)
		for i, it := range *l {
			if def.id(it) == id && def.owner(it) == memberID {
				*l = append((*l)[:i], (*l)[i+1:]...)
				return nil
			}
		}
		return ErrProfileRecordNotFound
	})
}

func memberExists(doc *database.Snapshot, id int64) bool {
	for _, m := range doc.Members {
		if m.ID == id {
			return true
		}
	}
	return false
}

var assignmentDef = subRecord[member.Assignment]{
	sequence: "assignments",
	list:     func(doc *database.Snapshot) *[]member.Assignment { return &doc.Assignments },
	id:       func(x member.Assignment) int64 { return x.ID },
	setID:    func(x *member.Assignment, id int64) { x.ID = id },
	owner:    func(x member.Assignment) int64 { return x.MemberID },
}

var roleDef = subRecord[member.Role]{
	sequence: "roles",
	list:     func(doc *database.Snapshot) *[]member.Role { return &doc.Roles },
	id:       func(x member.Role) int64 { return x.ID },
	setID:    func(x *member.Role, id int64) { x.ID = id },
	owner:    func(x member.Role) int64 { return x.MemberID },
}

var appreciationDef = subRecord[member.Appreciation]{
	sequence: "appreciations",
	list:     func(doc *database.Snapshot) *[]member.Appreciation { return &doc.Appreciations },
	id:       func(x member.Appreciation) int64 { return x.ID },
	setID:    func(x *member.Appreciation, id int64) { x.ID = id },
	owner:    func(x member.Appreciation) int64 { return x.MemberID },
}

var feedbackDef = subRecord[member.Feedback]{
	sequence: "feedback",
	list:     func(doc *database.Snapshot) *[]member.Feedback { return &doc.Feedback },
	id:       func(x member.Feedback) int64 { return x.ID },
	setID:    func(x *member.Feedback, id int64) { x.ID = id },
	owner:    func(x member.Feedback) int64 { return x.MemberID },
}

var engagementDef = subRecord[member.Engagement]{
	sequence: "engagements",
	list:     func(doc *database.Snapshot) *[]member.Engagement { return &doc.Engagements },
	id:       func(x member.Engagement) int64 { return x.ID },
	setID:    func(x *member.Engagement, id int64) { x.ID = id },
	owner:    func(x member.Engagement) int64 { return x.MemberID },
}

func (r *SnapshotProfileRepository) ListAssignments(_ context.Context, memberID int64) ([]member.Assignment, error) {
	return listSub(r.store, assignmentDef, memberID)
}

func (r *SnapshotProfileRepository) AddAssignment(ctx context.Context, a member.Assignment) (member.Assignment, error) {
	return addSub(ctx, r.store, assignmentDef, a)
}

func (r *SnapshotProfileRepository) UpdateAssignment(ctx context.Context, a member.Assignment) (member.Assignment, error) {
	return updateSub(ctx, r.store, assignmentDef, a)
}

func (r *SnapshotProfileRepository) DeleteAssignment(ctx context.Context, memberID, id int64) error {
	return deleteSub(ctx, r.store, assignmentDef, memberID, id)
}

func (r *SnapshotProfileRepository) ListRoles(_ context.Context, memberID int64) ([]member.Role, error) {
	return listSub(r.store, roleDef, memberID)
}

func (r *SnapshotProfileRepository) AddRole(ctx context.Context, x member.Role) (member.Role, error) {
	return addSub(ctx, r.store, roleDef, x)
}

func (r *SnapshotProfileRepository) UpdateRole(ctx context.Context, x member.Role) (member.Role, error) {
	return updateSub(ctx, r.store, roleDef, x)
}

func (r *SnapshotProfileRepository) DeleteRole(ctx context.Context, memberID, id int64) error {
	return deleteSub(ctx, r.store, roleDef, memberID, id)
}

func (r *SnapshotProfileRepository) ListAppreciations(_ context.Context, memberID int64) ([]member.Appreciation, error) {
	return listSub(r.store, appreciationDef, memberID)
}

func (r *SnapshotProfileRepository) AddAppreciation(ctx context.Context, x member.Appreciation) (member.Appreciation, error) {
	return addSub(ctx, r.store, appreciationDef, x)
}

func (r *SnapshotProfileRepository) UpdateAppreciation(ctx context.Context, x member.Appreciation) (member.Appreciation, error) {
	return updateSub(ctx, r.store, appreciationDef, x)
}

func (r *SnapshotProfileRepository) DeleteAppreciation(ctx context.Context, memberID, id int64) error {
	return deleteSub(ctx, r.store, appreciationDef, memberID, id)
}

func (r *SnapshotProfileRepository) ListFeedback(_ context.Context, memberID int64) ([]member.Feedback, error) {
	return listSub(r.store, feedbackDef, memberID)
}

func (r *SnapshotProfileRepository) AddFeedback(ctx context.Context, x member.Feedback) (member.Feedback, error) {
	return addSub(ctx, r.store, feedbackDef, x)
}

func (r *SnapshotProfileRepository) UpdateFeedback(ctx context.Context, x member.Feedback) (member.Feedback, error) {
	return updateSub(ctx, r.store, feedbackDef, x)
}

func (r *SnapshotProfileRepository) DeleteFeedback(ctx context.Context, memberID, id int64) error {
	return deleteSub(ctx, r.store, feedbackDef, memberID, id)
}

func (r *SnapshotProfileRepository) ListEngagements(_ context.Context, memberID int64) ([]member.Engagement, error) {
	return listSub(r.store, engagementDef, memberID)
}

func (r *SnapshotProfileRepository) AddEngagement(ctx context.Context, x member.Engagement) (member.Engagement, error) {
	return addSub(ctx, r.store, engagementDef, x)
}

func (r *SnapshotProfileRepository) UpdateEngagement(ctx context.Context, x member.Engagement) (member.Engagement, error) {
	return updateSub(ctx, r.store, engagementDef, x)
}

func (r *SnapshotProfileRepository) DeleteEngagement(ctx context.Context, memberID, id int64) error {
	return deleteSub(ctx, r.store, engagementDef, memberID, id)
}
