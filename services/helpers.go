package services

import (
	"slices"

	"github.com/suenot/sporthub/models"
	"github.com/suenot/sporthub/storage"
)

func populateEventLogoURLFunc(event *models.Event, uploader storage.FileUploader) {
	if event != nil && event.LogoKey != nil && *event.LogoKey != "" && uploader != nil {
		url := uploader.GetPublicURL(*event.LogoKey)
		if url != "" {
			event.LogoURL = &url
		}
	}
}

// cleanSet drops sentinel values and duplicates while keeping the order of first occurrence.
func cleanSet(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func cloneStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}

func cloneOptions(o models.FilterOptions) models.FilterOptions {
	return models.FilterOptions{
		SportTypes:  cloneStrings(o.SportTypes),
		Disciplines: cloneStrings(o.Disciplines),
		Cities:      cloneStrings(o.Cities),
		Countries:   cloneStrings(o.Countries),
		AgeGroups:   cloneStrings(o.AgeGroups),
	}
}

func equalOptions(a, b models.FilterOptions) bool {
	return slices.Equal(a.SportTypes, b.SportTypes) &&
		slices.Equal(a.Disciplines, b.Disciplines) &&
		slices.Equal(a.Cities, b.Cities) &&
		slices.Equal(a.Countries, b.Countries) &&
		slices.Equal(a.AgeGroups, b.AgeGroups)
}
