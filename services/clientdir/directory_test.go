package clientdir

import (
	"testing"

	"healthtick/models"
)

func testDirectory() *StaticDirectory {
	return NewStaticDirectory([]models.Client{
		{ID: "client-1", Name: "Sriram Kumar", Phone: "+91 9876543210"},
		{ID: "client-2", Name: "Shilpa Sharma", Phone: "+91 9876543211"},
		{ID: "client-3", Name: "Rahul Verma", Phone: "+91 9876543212"},
	})
}

func TestLookup(t *testing.T) {
	d := testDirectory()
	c, err := d.Lookup("client-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name != "Shilpa Sharma" {
		t.Errorf("got %q, want Shilpa Sharma", c.Name)
	}

	if _, err := d.Lookup("client-99"); err != ErrClientNotFound {
		t.Errorf("expected ErrClientNotFound, got %v", err)
	}
}

func TestListPreservesOrder(t *testing.T) {
	d := testDirectory()
	list := d.List()
	if len(list) != 3 {
		t.Fatalf("expected 3 clients, got %d", len(list))
	}
	if list[0].ID != "client-1" || list[2].ID != "client-3" {
		t.Error("List must preserve seed order")
	}
}

func TestSearch(t *testing.T) {
	d := testDirectory()

	cases := []struct {
		query string
		want  int
	}{
		{"sh", 1},
		{"SHARMA", 1},     // case-insensitive
		{"9876543212", 1}, // phone substring
		{"kumar", 1},
		{"", 3}, // empty query returns everyone
		{"zzz", 0},
	}
	for _, tc := range cases {
		got := d.Search(tc.query)
		if len(got) != tc.want {
			t.Errorf("Search(%q) returned %d clients, want %d", tc.query, len(got), tc.want)
		}
	}
}
