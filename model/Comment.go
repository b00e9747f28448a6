package model

type Comment struct {
	EmailAddress string `json:"email_address"`
	Comment      string `json:"comment"`
}

// CommentLog maps an image source link to that photo's comments in
// submission order. It is persisted as the whole comments.json document.
type CommentLog map[string][]Comment
