package category

// Label identifies a category. It is what gets stored with every interval.
type Label string

// Color is a hex display color such as "#ADD8E6".
type Color string

const (
	University  Label = "university"
	Study       Label = "study"
	PartTimeJob Label = "part_time_job"
	Commute     Label = "commute"
	Preparation Label = "preparation"
	Leisure     Label = "leisure"
	Sleep       Label = "sleep"
	Meal        Label = "meal"
	Bath        Label = "bath"
	Rest        Label = "rest"
	Smartphone  Label = "smartphone"
	Unknown     Label = "unknown"
	Other       Label = "other"

	// Uncovered marks time no interval accounts for. It is never user-selectable.
	Uncovered Label = "uncovered"
)

// FallbackColor is returned by ColorOf for labels the registry does not know.
const FallbackColor Color = "#cccccc"

type Category struct {
	Label Label
	// Name is the label shown to the user.
	Name  string
	Color Color
}

// Registry is the fixed, ordered set of selectable categories. It is built once at
// start-up and only read afterwards, so it is safe for concurrent use.
type Registry struct {
	categories []Category
	byLabel    map[Label]Category
	uncovered  Category
}

func NewRegistry(categories []Category, uncovered Category) *Registry {
	byLabel := make(map[Label]Category, len(categories)+1)
	ordered := make([]Category, 0, len(categories))
	for _, c := range categories {
		if _, dup := byLabel[c.Label]; dup || c.Label == uncovered.Label {
			continue
		}
		byLabel[c.Label] = c
		ordered = append(ordered, c)
	}
	byLabel[uncovered.Label] = uncovered
	return &Registry{
		categories: ordered,
		byLabel:    byLabel,
		uncovered:  uncovered,
	}
}

// Default returns the registry with the built-in categories and colors.
func Default() *Registry {
	return NewRegistry([]Category{
		{University, "大学", "#B6D3FF"},
		{Study, "勉強", "#ADD8E6"},
		{PartTimeJob, "バイト", "#90EE90"},
		{Commute, "移動", "#FFFFE0"},
		{Preparation, "支度・準備", "#FFC0CB"},
		{Leisure, "遊び", "#E6E6FA"},
		{Sleep, "睡眠", "#CFB6B6"},
		{Meal, "食事", "#FFE4B5"},
		{Bath, "お風呂", "#A6E3E3"},
		{Rest, "休憩", "#F5DEB3"},
		{Smartphone, "スマホ", "#F08080"},
		{Unknown, "覚えていない", "#D8BFD8"},
		{Other, "その他", "#D7FBFB"},
	}, Category{Uncovered, "未入力", "#E1E1E1"})
}

// IsValid reports whether label can be assigned to an interval. The uncovered label is not.
func (r *Registry) IsValid(label Label) bool {
	if label == r.uncovered.Label {
		return false
	}
	_, ok := r.byLabel[label]
	return ok
}

// ColorOf returns the display color of label, or FallbackColor when label is unknown.
func (r *Registry) ColorOf(label Label) Color {
	if c, ok := r.byLabel[label]; ok {
		return c.Color
	}
	return FallbackColor
}

// NameOf returns the display name of label, or the label itself when it is unknown.
func (r *Registry) NameOf(label Label) string {
	if c, ok := r.byLabel[label]; ok {
		return c.Name
	}
	return string(label)
}

func (r *Registry) Uncovered() Label {
	return r.uncovered.Label
}

// Categories returns the selectable categories in display order.
func (r *Registry) Categories() []Category {
	out := make([]Category, len(r.categories))
	copy(out, r.categories)
	return out
}
