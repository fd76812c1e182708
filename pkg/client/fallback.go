package client

// Fallback content shown when the backend is unreachable: the public
// pages degrade to a bundled placeholder set instead of an empty view.

// DefaultSettings are the hardcoded site settings used when the
// settings fetch fails.
func DefaultSettings() SiteSettings {
	return SiteSettings{
		SiteTitle: "FINDELMUNNDO",
		Tagline:   "Audio • Vidéo • Photographie",
	}
}

// FallbackMedia is the bundled placeholder portfolio.
func FallbackMedia() []MediaItem {
	return []MediaItem{
		{
			ID:          "1",
			Title:       "Portrait in Red Shadow",
			Description: "Exploration of light and shadow",
			Category:    "Portrait",
			MediaType:   "image",
			FileURL:     "https://images.unsplash.com/photo-1770896687186-895de50a4123?crop=entropy&cs=srgb&fm=jpg&q=85",
			Order:       1,
		},
		{
			ID:          "2",
			Title:       "Concrete Brutalist",
			Description: "Architectural studies",
			Category:    "Architecture",
			MediaType:   "image",
			FileURL:     "https://images.unsplash.com/photo-1630041353236-d1e5a3c23116?crop=entropy&cs=srgb&fm=jpg&q=85",
			Order:       2,
		},
		{
			ID:          "3",
			Title:       "Tall Dark Building",
			Description: "Urban landscapes",
			Category:    "Architecture",
			MediaType:   "image",
			FileURL:     "https://images.unsplash.com/photo-1646421017564-346737c5c884?crop=entropy&cs=srgb&fm=jpg&q=85",
			Order:       3,
		},
		{
			ID:          "4",
			Title:       "Red Light Leak",
			Description: "Abstract compositions",
			Category:    "Abstract",
			MediaType:   "image",
			FileURL:     "https://images.pexels.com/photos/28931572/pexels-photo-28931572.jpeg?auto=compress&cs=tinysrgb&dpr=2&h=650&w=940",
			Order:       4,
		},
		{
			ID:          "5",
			Title:       "Texture Study",
			Description: "Organic textures",
			Category:    "Experimental",
			MediaType:   "image",
			FileURL:     "https://images.unsplash.com/photo-1758045747219-b38d04de019b?crop=entropy&cs=srgb&fm=jpg&q=85",
			Order:       5,
		},
		{
			ID:          "6",
			Title:       "Surface",
			Description: "Material exploration",
			Category:    "Experimental",
			MediaType:   "image",
			FileURL:     "https://images.unsplash.com/photo-1694721065597-639c65e80c6b?crop=entropy&cs=srgb&fm=jpg&q=85",
			Order:       6,
		},
	}
}

// FallbackCategories derives the category list from the placeholder
// portfolio, mirroring what the backend would aggregate.
func FallbackCategories() []Category {
	items := FallbackMedia()
	counts := map[string]int64{}
	var order []string
	for _, m := range items {
		if _, seen := counts[m.Category]; !seen {
			order = append(order, m.Category)
		}
		counts[m.Category]++
	}
	out := make([]Category, 0, len(order))
	for _, name := range order {
		out = append(out, Category{Name: name, Count: counts[name]})
	}
	return out
}
