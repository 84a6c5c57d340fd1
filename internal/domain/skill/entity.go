package skill

import "time"

type KnowledgeArea struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Category groups skills that are graded on the same scale.
type Category struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Criteria string `json:"criteria,omitempty"`
	ScaleID  int64  `json:"scale_id"`
}

type Skill struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Purpose    string    `json:"purpose,omitempty"`
	CategoryID int64     `json:"category_id"`
	AreaID     int64     `json:"area_id"`
	CreatedAt  time.Time `json:"created_at"`
}
