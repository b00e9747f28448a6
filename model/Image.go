package model

type ImagePost struct {
	Source  string `json:"source"`
	User    string `json:"user"`
	Caption string `json:"caption"`
}

// ImageLibrary is the images.json envelope.
type ImageLibrary struct {
	Images []ImagePost `json:"images"`
}
