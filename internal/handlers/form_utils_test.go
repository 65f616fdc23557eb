package handlers

import (
	"mime/multipart"
	"testing"

	"travelsuzBack/internal/models"
)

func formWith(values map[string][]string) *multipart.Form {
	return &multipart.Form{Value: values, File: map[string][]*multipart.FileHeader{}}
}

func TestOverlayText(t *testing.T) {
	form := formWith(map[string][]string{
		"phone_number": {"+998901234567"},
		"empty":        {""},
	})

	dst := "old"
	overlayText(form, "phone_number", &dst)
	if dst != "+998901234567" {
		t.Errorf("dst = %q, want new value", dst)
	}

	dst = "old"
	overlayText(form, "empty", &dst)
	if dst != "old" {
		t.Errorf("empty value overwrote dst: %q", dst)
	}

	dst = "old"
	overlayText(form, "missing", &dst)
	if dst != "old" {
		t.Errorf("absent key overwrote dst: %q", dst)
	}
}

func TestOverlayLocalized(t *testing.T) {
	form := formWith(map[string][]string{
		"title_ru": {"Отель"},
	})

	text := models.LocalizedText{Uz: "Mehmonxona", En: "Hotel"}
	overlayLocalized(form, "title", &text)

	if text.Ru != "Отель" {
		t.Errorf("Ru = %q, want overlay applied", text.Ru)
	}
	if text.Uz != "Mehmonxona" || text.En != "Hotel" {
		t.Errorf("untouched variants changed: %+v", text)
	}
}

func TestOverlayLocationMergesSingleCoordinate(t *testing.T) {
	lat, lon := 39.654, 66.975
	existing := &models.Location{Latitude: &lat, Longitude: &lon}

	form := formWith(map[string][]string{"latitude": {"41.311"}})
	got, err := overlayLocation(form, existing)
	if err != nil {
		t.Fatalf("overlayLocation: %v", err)
	}
	if got.Latitude == nil || *got.Latitude != 41.311 {
		t.Errorf("Latitude = %v, want 41.311", got.Latitude)
	}
	if got.Longitude == nil || *got.Longitude != lon {
		t.Errorf("Longitude = %v, want existing %v kept", got.Longitude, lon)
	}
	if *existing.Latitude != lat {
		t.Errorf("existing location mutated: %v", *existing.Latitude)
	}
}

func TestOverlayLocationAbsentKeepsExisting(t *testing.T) {
	got, err := overlayLocation(formWith(nil), nil)
	if err != nil {
		t.Fatalf("overlayLocation: %v", err)
	}
	if got != nil {
		t.Errorf("got %+v, want nil when no coordinates supplied", got)
	}
}

func TestOverlayLocationInvalidValue(t *testing.T) {
	form := formWith(map[string][]string{"longitude": {"east"}})
	if _, err := overlayLocation(form, nil); err == nil {
		t.Error("expected error for unparseable longitude")
	}
}

func TestImagesProvided(t *testing.T) {
	if imagesProvided(nil) {
		t.Error("nil form reported images")
	}
	if imagesProvided(formWith(map[string][]string{"title_uz": {"x"}})) {
		t.Error("unrelated fields reported images")
	}
	if !imagesProvided(formWith(map[string][]string{uploadedImagesField: {""}})) {
		t.Error("empty uploaded_images value should still count as provided")
	}

	withFile := formWith(nil)
	withFile.File[uploadedImagesField] = []*multipart.FileHeader{{Filename: "a.jpg"}}
	if !imagesProvided(withFile) {
		t.Error("uploaded_images file not detected")
	}
}
