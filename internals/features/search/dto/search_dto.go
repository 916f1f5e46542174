package dto

// SearchHit: satu hasil pencarian lintas konten. Slug kosong untuk quiz
// (quiz diakses lewat id, bukan slug).
type SearchHit struct {
	ID      string  `json:"id"`
	Type    string  `json:"type"` // course | article | webinar | quiz
	Title   string  `json:"title"`
	Slug    string  `json:"slug,omitempty"`
	Summary *string `json:"summary,omitempty"`
}

type SearchResultDTO struct {
	Query    string      `json:"query"`
	Courses  []SearchHit `json:"courses"`
	Articles []SearchHit `json:"articles"`
	Webinars []SearchHit `json:"webinars"`
	Quizzes  []SearchHit `json:"quizzes"`
	Total    int         `json:"total"`
}
