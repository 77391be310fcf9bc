package model

// WatchDateLayout is the only accepted calendar date format.
const WatchDateLayout = "2006-01-02"

type WatchOrder string

const (
	OrderWatchDateAsc  WatchOrder = "ASC"
	OrderWatchDateDesc WatchOrder = "DESC"
)

// WatchEvent is one user-recorded viewing of a movie. Rows are append-only
// and immutable except for deletion.
type WatchEvent struct {
	ID        int64
	ImdbID    string
	Title     string
	Year      int
	Director  string
	Writers   string
	Actors    string
	Genre     string
	Runtime   int
	Rating    float64
	Plot      string
	PosterURL string
	WatchDate string
}

type RoleKind string

const (
	RoleDirector RoleKind = "director"
	RoleWriter   RoleKind = "writer"
)

// CreatorNode is a director or writer credited on at least one watched
// movie. Role is fixed at first sighting.
type CreatorNode struct {
	Name   string   `json:"name"`
	Role   RoleKind `json:"role"`
	Movies []string `json:"movies"`
}

// CollaborationLink is an unordered pair of creator names sharing a credit
// on the same movie. Source/Target are sorted lexicographically.
type CollaborationLink struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Movies []string `json:"movies"`
}

type CreatorsNetwork struct {
	Nodes []CreatorNode       `json:"nodes"`
	Links []CollaborationLink `json:"links"`
}

// ViewingPattern counts watch events within one year-week bucket.
type ViewingPattern struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type VisualizationData struct {
	CreatorsNetwork     CreatorsNetwork  `json:"creators_network"`
	ViewingPatterns     []ViewingPattern `json:"viewing_patterns"`
	RuntimeDistribution map[string][]int `json:"runtime_distribution"`
}
