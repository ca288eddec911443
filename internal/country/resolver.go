package country

// Selection is the currently active map region. The zero value (empty
// code) means nothing usable was found in the feature's properties.
type Selection struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Candidate property keys tried in order, first non-empty value wins.
// Kept as data so additional map sources can be accommodated without
// touching the lookup logic.
var (
	codeKeys = []string{"ISO_A2", "iso_a2", "ISO_A2_EH"}
	nameKeys = []string{"ADMIN", "NAME", "name"}
)

// UnnamedPlaceholder is used when a feature carries no usable display name.
const UnnamedPlaceholder = "Unbenannt"

// Resolve derives a country selection from a map feature's property bag.
// Missing data degrades to an empty code and the placeholder name; it
// never fails.
func Resolve(props map[string]string) Selection {
	return Selection{
		Code: firstNonEmpty(props, codeKeys, ""),
		Name: firstNonEmpty(props, nameKeys, UnnamedPlaceholder),
	}
}

func firstNonEmpty(props map[string]string, keys []string, fallback string) string {
	for _, k := range keys {
		if v := props[k]; v != "" {
			return v
		}
	}
	return fallback
}

// FlagEmoji renders a two-letter country code as its regional-indicator
// pictograph. Anything that is not exactly two ASCII letters yields "".
func FlagEmoji(code string) string {
	if len(code) != 2 {
		return ""
	}
	out := make([]rune, 0, 2)
	for _, r := range code {
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		if r < 'A' || r > 'Z' {
			return ""
		}
		out = append(out, 0x1F1E6+r-'A')
	}
	return string(out)
}
