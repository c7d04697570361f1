package models

// Post is a community content record. Author is a denormalized username and
// SeriesID points into the static style catalog; neither reference is
// validated against its source collection.
type Post struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	SeriesID string   `json:"seriesId"`
	Image    string   `json:"image"`
	Tags     []string `json:"tags"`
	Likes    int      `json:"likes"`
}

// Comment is a single comment under a post. Comments are persisted and
// loaded but never mutated by this core.
type Comment struct {
	Author string `json:"author"`
	Text   string `json:"text"`
}

// Comments maps a post id to its comment thread.
type Comments map[int][]Comment
