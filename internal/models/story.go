// Package models defines the value types decoded from Hack or Snooze API
// responses.
package models

import "time"

// Story is one posted item. The server assigns StoryID and the timestamps;
// a Story is only ever built from a server record and is not modified after
// decoding.
type Story struct {
	StoryID   string    `json:"storyId"`
	Author    string    `json:"author"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StoryDraft is a not-yet-persisted story submitted for creation.
// The server fills in username, id, and timestamps and echoes back a full
// Story; the draft is discarded after that.
type StoryDraft struct {
	Author string `json:"author"`
	Title  string `json:"title"`
	URL    string `json:"url"`
}
