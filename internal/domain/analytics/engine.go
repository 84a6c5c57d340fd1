package analytics

import (
	"math"
	"sort"
)

// Row is one member-skill grading joined with its catalog context and
// resolved against its scale. Position is -1 when the recorded level does not
// appear on the scale; such rows still score 0 in averages but never count
// toward strengths or gaps.
type Row struct {
	MemberID     int64
	Tier         string
	SkillID      int64
	SkillName    string
	CategoryID   int64
	CategoryName string
	AreaID       int64
	AreaName     string
	Score        float64
	Position     int
	LevelCount   int
}

type Filter struct {
	Tier       string
	AreaID     int64
	CategoryID int64
}

type GroupStat struct {
	Label        string `json:"label"`
	AverageScore int    `json:"average_score"`
	MemberCount  int    `json:"member_count"`
}

type SkillShare struct {
	SkillName   string `json:"skill_name"`
	MemberCount int    `json:"member_count"`
	Percentage  int    `json:"percentage"`
}

const topSkillsLimit = 12

const shareLimit = 10

// ByKnowledgeArea averages scores per knowledge area: each member's average
// within the area first, then the mean across members holding at least one
// grading there.
func ByKnowledgeArea(rows []Row, f Filter) []GroupStat {
	return groupAverages(rows, f, func(r Row) (int64, string) { return r.AreaID, r.AreaName })
}

func ByCategory(rows []Row, f Filter) []GroupStat {
	return groupAverages(rows, f, func(r Row) (int64, string) { return r.CategoryID, r.CategoryName })
}

// BySkill additionally honors the area and category filters, sorts descending
// by average score and keeps the top 12. The truncation is presentational.
func BySkill(rows []Row, f Filter) []GroupStat {
	stats := groupAverages(rows, f, func(r Row) (int64, string) { return r.SkillID, r.SkillName })
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].AverageScore != stats[j].AverageScore {
			return stats[i].AverageScore > stats[j].AverageScore
		}
		return stats[i].Label < stats[j].Label
	})
	if len(stats) > topSkillsLimit {
		stats = stats[:topSkillsLimit]
	}
	return stats
}

// MemberRadar averages one member's scores per skill category.
func MemberRadar(rows []Row, memberID int64) []GroupStat {
	var own []Row
	for _, r := range rows {
		if r.MemberID == memberID {
			own = append(own, r)
		}
	}
	return groupAverages(own, Filter{}, func(r Row) (int64, string) { return r.CategoryID, r.CategoryName })
}

// Strengths counts, per skill, the members graded at one of the top two scale
// positions and reports the share of the whole population. Top 10 by count.
func Strengths(rows []Row, totalMembers int) []SkillShare {
	return skillShares(rows, totalMembers, func(r Row) bool {
		return r.Position >= r.LevelCount-2
	})
}

// Gaps mirrors Strengths for the bottom two scale positions.
func Gaps(rows []Row, totalMembers int) []SkillShare {
	return skillShares(rows, totalMembers, func(r Row) bool {
		return r.Position <= 1
	})
}

func matches(r Row, f Filter) bool {
	if f.Tier != "" && r.Tier != f.Tier {
		return false
	}
	if f.AreaID != 0 && r.AreaID != f.AreaID {
		return false
	}
	if f.CategoryID != 0 && r.CategoryID != f.CategoryID {
		return false
	}
	return true
}

func groupAverages(rows []Row, f Filter, key func(Row) (int64, string)) []GroupStat {
	type memberKey struct {
		group  int64
		member int64
	}

	labels := make(map[int64]string)
	sums := make(map[memberKey]float64)
	counts := make(map[memberKey]int)

	for _, r := range rows {
		if !matches(r, f) {
			continue
		}
		id, label := key(r)
		labels[id] = label
		k := memberKey{group: id, member: r.MemberID}
		sums[k] += r.Score
		counts[k]++
	}

	groupSums := make(map[int64]float64)
	groupMembers := make(map[int64]int)
	for k, sum := range sums {
		groupSums[k.group] += sum / float64(counts[k])
		groupMembers[k.group]++
	}

	out := make([]GroupStat, 0, len(groupSums))
	for id, sum := range groupSums {
		n := groupMembers[id]
		out = append(out, GroupStat{
			Label:        labels[id],
			AverageScore: int(math.Round(sum / float64(n))),
			MemberCount:  n,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

func skillShares(rows []Row, totalMembers int, qualifies func(Row) bool) []SkillShare {
	names := make(map[int64]string)
	holders := make(map[int64]map[int64]bool)

	for _, r := range rows {
		if r.Position < 0 || r.LevelCount == 0 {
			continue
		}
		if !qualifies(r) {
			continue
		}
		names[r.SkillID] = r.SkillName
		if holders[r.SkillID] == nil {
			holders[r.SkillID] = make(map[int64]bool)
		}
		holders[r.SkillID][r.MemberID] = true
	}

	out := make([]SkillShare, 0, len(holders))
	for id, members := range holders {
		share := SkillShare{SkillName: names[id], MemberCount: len(members)}
		if totalMembers > 0 {
			share.Percentage = int(math.Round(float64(len(members)) / float64(totalMembers) * 100))
		}
		out = append(out, share)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].MemberCount != out[j].MemberCount {
			return out[i].MemberCount > out[j].MemberCount
		}
		return out[i].SkillName < out[j].SkillName
	})
	if len(out) > shareLimit {
		out = out[:shareLimit]
	}
	return out
}
