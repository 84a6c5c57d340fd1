package database

import (
	"context"
	"encoding/json"

	"talent-hub/internal/domain/admin"
	"talent-hub/internal/domain/goal"
	"talent-hub/internal/domain/member"
	"talent-hub/internal/domain/scale"
	"talent-hub/internal/domain/skill"
)

const SnapshotVersion = 1

// Snapshot is the whole persisted state: one array per entity type plus a
// monotonic id counter per type. It is loaded once at startup and rewritten
// in full after every mutation. Last write wins; the deployment target is a
// single instance with a low write rate.
type Snapshot struct {
	Version   int              `json:"version"`
	Sequences map[string]int64 `json:"sequences"`

	Scales         []scale.Scale         `json:"scales"`
	KnowledgeAreas []skill.KnowledgeArea `json:"knowledge_areas"`
	Categories     []skill.Category      `json:"categories"`
	Skills         []skill.Skill         `json:"skills"`

	Members       []member.Member       `json:"members"`
	Clients       []member.Client       `json:"clients"`
	Assignments   []member.Assignment   `json:"assignments"`
	Roles         []member.Role         `json:"roles"`
	Appreciations []member.Appreciation `json:"appreciations"`
	Feedback      []member.Feedback     `json:"feedback"`
	Engagements   []member.Engagement   `json:"engagements"`
	Gradings      []member.Grading      `json:"gradings"`

	Goals []goal.Goal `json:"goals"`

	Admins []admin.Admin `json:"admins"`
}

func NewSnapshot() *Snapshot {
	return &Snapshot{
		Version:   SnapshotVersion,
		Sequences: make(map[string]int64),
	}
}

// NextID hands out the next opaque id for an entity type.
func (s *Snapshot) NextID(entity string) int64 {
	if s.Sequences == nil {
		s.Sequences = make(map[string]int64)
	}
	s.Sequences[entity]++
	return s.Sequences[entity]
}

// Clone deep-copies the document via a JSON round trip. The document is small
// (single-team scale) and every field is JSON-serializable, so this is the
// same code path as persistence itself.
func (s *Snapshot) Clone() (*Snapshot, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var out Snapshot
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	if out.Sequences == nil {
		out.Sequences = make(map[string]int64)
	}
	return &out, nil
}

// SnapshotStore persists the document. Implementations: a JSON file and a
// single-row Postgres table.
type SnapshotStore interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
	Ping(ctx context.Context) error
	Close() error
}
