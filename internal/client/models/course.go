package models

// Course is read-only on the client: fetched per view, never cached.
type Course struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Tags        string `json:"tags"`
	Content     string `json:"content"`
}

// CourseRef is the short form returned by the enrolled-courses listing.
type CourseRef struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}
