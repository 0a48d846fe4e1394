package models

import "time"

// User is the profile record embedded in user-bearing responses.
// The server calls the user's own stories "stories"; locally they are the
// session's own-stories list, so the asymmetry is absorbed here by the
// json tag.
type User struct {
	Username   string    `json:"username"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	Favorites  []Story   `json:"favorites"`
	OwnStories []Story   `json:"stories"`
}
