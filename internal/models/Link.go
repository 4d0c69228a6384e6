package models

const DefaultLinkIcon = "🔗"

type Link struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Icon  string `json:"icon"`
	Notes string `json:"notes"`
}

func (l *Link) Clone() *Link {
	c := *l
	return &c
}
