package models

// Client is immutable reference data owned by the client directory. The
// scheduling core only reads it for labeling; it is never written here.
type Client struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
