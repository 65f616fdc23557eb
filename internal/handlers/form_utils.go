package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"travelsuzBack/internal/models"
	"travelsuzBack/utils"
)

// uploadedImagesField is the multipart key whose mere presence switches an
// update into image-replace mode.
const uploadedImagesField = "uploaded_images"

// formValue returns the first non-empty value for key and whether the key was
// present with content.
func formValue(form *multipart.Form, key string) (string, bool) {
	if form == nil {
		return "", false
	}
	values, ok := form.Value[key]
	if !ok {
		return "", false
	}
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v, true
		}
	}
	return "", false
}

// overlayText replaces *dst only when the form carries a value for key,
// leaving absent fields untouched for partial updates.
func overlayText(form *multipart.Form, key string, dst *string) {
	if v, ok := formValue(form, key); ok {
		*dst = v
	}
}

// overlayLocalized applies the three language-suffixed variants of field
// (field_uz, field_ru, field_en) onto dst.
func overlayLocalized(form *multipart.Form, field string, dst *models.LocalizedText) {
	overlayText(form, field+"_uz", &dst.Uz)
	overlayText(form, field+"_ru", &dst.Ru)
	overlayText(form, field+"_en", &dst.En)
}

// overlayLocation merges latitude/longitude form inputs into the existing
// location. Supplying only one coordinate updates that key and leaves the
// other as it was.
func overlayLocation(form *multipart.Form, existing *models.Location) (*models.Location, error) {
	latRaw, latOK := formValue(form, "latitude")
	lonRaw, lonOK := formValue(form, "longitude")
	if !latOK && !lonOK {
		return existing, nil
	}

	loc := models.Location{}
	if existing != nil {
		loc = *existing
	}
	if latOK {
		v, err := strconv.ParseFloat(latRaw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude: %q", latRaw)
		}
		loc.Latitude = &v
	}
	if lonOK {
		v, err := strconv.ParseFloat(lonRaw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude: %q", lonRaw)
		}
		loc.Longitude = &v
	}
	return &loc, nil
}

// collectImageFiles gathers all uploaded files under the given form keys.
func collectImageFiles(form *multipart.Form, keys ...string) []*multipart.FileHeader {
	if form == nil {
		return nil
	}

	var result []*multipart.FileHeader
	for _, key := range keys {
		if headers, ok := form.File[key]; ok {
			result = append(result, headers...)
		}
	}
	return result
}

// imagesProvided reports whether the request carried the uploaded_images
// field at all. An empty field still counts: it means "replace with nothing".
func imagesProvided(form *multipart.Form) bool {
	if form == nil {
		return false
	}
	if _, ok := form.File[uploadedImagesField]; ok {
		return true
	}
	_, ok := form.Value[uploadedImagesField]
	return ok
}

// saveUploadedImages stores each file through the storage backend and returns
// the child records to attach to the parent entity.
func saveUploadedImages(store utils.Storage, files []*multipart.FileHeader, folder string) ([]models.Image, error) {
	images := []models.Image{}
	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			return nil, fmt.Errorf("open uploaded file: %w", err)
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("read uploaded file: %w", err)
		}

		contentType := fileHeader.Header.Get("Content-Type")
		path, err := store.Save(data, fileHeader.Filename, folder, contentType)
		if err != nil {
			return nil, err
		}
		images = append(images, models.Image{
			Name: fileHeader.Filename,
			Path: path,
			Type: contentType,
		})
	}
	return images, nil
}
