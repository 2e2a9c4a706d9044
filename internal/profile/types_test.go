package profile

import "testing"

func TestProjectCategory(t *testing.T) {
	tests := []struct {
		name string
		want Category
	}{
		{"Client Project: Widget", CategoryClient},
		{"Widget", CategoryPersonal},
		{"CLIENT PROJECT - Dashboard", CategoryClient},
		{"client project rewrite", CategoryClient},
		{"Clientele Manager", CategoryPersonal},
		{"", CategoryPersonal},
	}

	for _, tt := range tests {
		p := Project{Name: tt.name}
		if got := p.Category(); got != tt.want {
			t.Errorf("Category(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
