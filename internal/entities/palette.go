package entities

// Color is a selectable member color.
type Color struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Palette lists the colors offered for new members.
var Palette = []Color{
	{ID: "coral", Name: "Koralle", Hex: "#FF6B6B"},
	{ID: "teal", Name: "Türkis", Hex: "#4ECDC4"},
	{ID: "blue", Name: "Himmelblau", Hex: "#45B7D1"},
	{ID: "mint", Name: "Mint", Hex: "#96CEB4"},
	{ID: "yellow", Name: "Sonnengelb", Hex: "#FFEAA7"},
	{ID: "lavender", Name: "Lavendel", Hex: "#DDA0DD"},
	{ID: "sage", Name: "Salbei", Hex: "#98D8C8"},
	{ID: "gold", Name: "Gold", Hex: "#F7DC6F"},
	{ID: "violet", Name: "Violett", Hex: "#BB8FCE"},
	{ID: "skyblue", Name: "Babyblau", Hex: "#85C1E9"},
	{ID: "salmon", Name: "Lachs", Hex: "#F1948A"},
	{ID: "emerald", Name: "Smaragd", Hex: "#82E0AA"},
	{ID: "orange", Name: "Orange", Hex: "#E59866"},
	{ID: "pink", Name: "Rosa", Hex: "#F5B7B1"},
	{ID: "purple", Name: "Lila", Hex: "#C39BD3"},
}

// LookupColor finds a palette color by ID.
func LookupColor(id string) (Color, bool) {
	for _, c := range Palette {
		if c.ID == id {
			return c, true
		}
	}
	return Color{}, false
}

// ResolveColorHex maps a palette ID to its hex value.
// Unknown IDs are returned unchanged, so raw hex values pass through.
func ResolveColorHex(id string) string {
	if c, ok := LookupColor(id); ok {
		return c.Hex
	}
	return id
}
