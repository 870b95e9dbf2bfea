package models

// Student is an entry in the find-friends directory.
type Student struct {
	ID      string   `json:"id"`
	Avatar  string   `json:"avatar"`
	Name    string   `json:"name"`
	Country string   `json:"country"`
	Major   string   `json:"major"`
	Hobbies []string `json:"hobbies"`
	Region  string   `json:"region"`
}
