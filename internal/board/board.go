package board

// Item is the public DTO for one menu board image.
type Item struct {
	BoardID  int    `json:"boardID"`
	BoardImg string `json:"boardImg"`
	Alt      string `json:"alt,omitempty"`
}
