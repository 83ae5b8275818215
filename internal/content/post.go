package content

// Post is one marketing blog entry. All content is static; there is no
// authoring backend.
type Post struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Author      string   `json:"author"`
	AuthorRole  string   `json:"authorRole"`
	PublishDate string   `json:"publishDate"`
	Category    string   `json:"category"`
	ReadTime    string   `json:"readTime"`
	Excerpt     string   `json:"excerpt"`
	Body        string   `json:"body"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
}
