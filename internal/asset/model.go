// Package asset manages uploaded 3D-model records and their persistence.
package asset

import "time"

// Info holds the four free-text labels rendered around the viewer page.
type Info struct {
	TopLeft     string `json:"topLeft"`
	TopRight    string `json:"topRight"`
	BottomLeft  string `json:"bottomLeft"`
	BottomRight string `json:"bottomRight"`
}

// Model is a stored 3D-model asset. ShortID is the public lookup key used in
// share links; the numeric ID never leaves the database layer.
type Model struct {
	ID        int64     `json:"-"`
	ShortID   string    `json:"shortId"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	BgURL     string    `json:"bgUrl"`
	Info      Info      `json:"info"`
	Views     int64     `json:"views"`
	Likes     int64     `json:"likes"`
	Qty       int64     `json:"qty"`
	Sold      int64     `json:"sold"`
	CreatedAt time.Time `json:"createdAt"`
}
