package models

import "testing"

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want Language
	}{
		{"uz", LangUz},
		{"ru", LangRu},
		{"en", LangEn},
		{"EN", LangEn},
		{" ru ", LangRu},
		{"fr", LangUz},
		{"", LangUz},
	}
	for _, tt := range tests {
		if got := ParseLanguage(tt.in); got != tt.want {
			t.Errorf("ParseLanguage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLocalizedTextResolve(t *testing.T) {
	full := LocalizedText{Uz: "Toshkent", Ru: "Ташкент", En: "Tashkent"}
	uzOnly := LocalizedText{Uz: "Toshkent"}

	tests := []struct {
		name string
		text LocalizedText
		lang Language
		want string
	}{
		{"requested variant", full, LangRu, "Ташкент"},
		{"english variant", full, LangEn, "Tashkent"},
		{"uzbek", full, LangUz, "Toshkent"},
		{"missing ru falls back to uz", uzOnly, LangRu, "Toshkent"},
		{"missing en falls back to uz", uzOnly, LangEn, "Toshkent"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.text.Resolve(tt.lang); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.lang, got, tt.want)
			}
		})
	}
}

func TestValidatePrice(t *testing.T) {
	for _, valid := range []string{"150000", "150000.50", "1"} {
		if err := ValidatePrice(valid); err != nil {
			t.Errorf("ValidatePrice(%q) = %v, want nil", valid, err)
		}
	}
	for _, invalid := range []string{"", "free", "-5", "0"} {
		if err := ValidatePrice(invalid); err != ErrInvalidPrice {
			t.Errorf("ValidatePrice(%q) = %v, want ErrInvalidPrice", invalid, err)
		}
	}
}

func TestHotelLocalize(t *testing.T) {
	lat, lon := 39.654, 66.975
	h := Hotel{
		ID:          7,
		Title:       LocalizedText{Uz: "Registon mehmonxonasi", En: "Registan Hotel"},
		Description: LocalizedText{Uz: "Tavsif"},
		Address:     LocalizedText{Uz: "Registon ko'chasi 1"},
		Price:       "250000",
		RegionName:  LocalizedText{Uz: "Samarqand", En: "Samarkand"},
		Location:    &Location{Latitude: &lat, Longitude: &lon},
		Images:      []Image{{Path: "/uploads/hotels/a.jpg"}, {Path: "/uploads/hotels/b.jpg"}},
		Views:       12,
	}

	view := h.Localize(LangEn)
	if view.Title != "Registan Hotel" {
		t.Errorf("Title = %q, want %q", view.Title, "Registan Hotel")
	}
	if view.Description != "Tavsif" {
		t.Errorf("Description = %q, want uz fallback %q", view.Description, "Tavsif")
	}
	if view.Region != "Samarkand" {
		t.Errorf("Region = %q, want %q", view.Region, "Samarkand")
	}
	if len(view.Images) != 2 || view.Images[0] != "/uploads/hotels/a.jpg" {
		t.Errorf("Images = %v, want image paths", view.Images)
	}
	if view.Location == nil || *view.Location.Latitude != lat {
		t.Errorf("Location not carried over: %+v", view.Location)
	}
	if view.Views != 12 {
		t.Errorf("Views = %d, want 12", view.Views)
	}
}
