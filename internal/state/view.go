package state

import (
	"strings"

	"github.com/five82/roster/internal/source"
)

// LoadFailedMessage is shown in place of the directory when the load fails.
const LoadFailedMessage = "Error loading data"

// Status is the three-valued load status.
type Status int

const (
	Loading Status = iota
	Ready
	Failed
)

func (s Status) String() string {
	switch s {
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "loading"
	}
}

// Theme is the global presentation flag.
type Theme int

const (
	Light Theme = iota
	Dark
)

func (t Theme) String() string {
	if t == Dark {
		return "Dark"
	}
	return "Light"
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// View is the whole session state. Values are never mutated in place: every
// transition returns a new View, so a View handed to a renderer stays stable.
type View struct {
	Records  []source.Person
	Status   Status
	Message  string // set only when Status == Failed
	Query    string
	Expanded map[int]bool // only true entries are stored
	Theme    Theme
}

// New returns the state a session starts in.
func New() View {
	return View{
		Status:   Loading,
		Expanded: map[int]bool{},
		Theme:    Light,
	}
}

// LoadResult is the outcome of the one startup fetch.
type LoadResult struct {
	Records []source.Person
	Err     error
}

// Apply settles the load. Only the first result counts; once the View is
// Ready or Failed further results are ignored.
func (v View) Apply(res LoadResult) View {
	if v.Status != Loading {
		return v
	}
	if res.Err != nil {
		v.Status = Failed
		v.Message = LoadFailedMessage
		return v
	}
	v.Records = cloneRecords(res.Records)
	v.Status = Ready
	return v
}

// WithQuery replaces the search query.
func (v View) WithQuery(query string) View {
	v.Query = query
	return v
}

// IsExpanded reports whether id's secondary fields are shown.
func (v View) IsExpanded(id int) bool {
	return v.Expanded[id]
}

// Toggle flips the expanded flag for id. Ids that are not loaded are ignored.
func (v View) Toggle(id int) View {
	if !v.has(id) {
		return v
	}
	next := make(map[int]bool, len(v.Expanded)+1)
	for k, on := range v.Expanded {
		next[k] = on
	}
	if next[id] {
		delete(next, id)
	} else {
		next[id] = true
	}
	v.Expanded = next
	return v
}

// ToggleTheme flips Light and Dark.
func (v View) ToggleTheme() View {
	v.Theme = v.Theme.Toggle()
	return v
}

// Visible returns the records matching the current query.
func (v View) Visible() []source.Person {
	return Filter(v.Records, v.Query)
}

// Find returns the loaded record with the given id.
func (v View) Find(id int) (source.Person, bool) {
	for _, p := range v.Records {
		if p.ID == id {
			return p, true
		}
	}
	return source.Person{}, false
}

func (v View) has(id int) bool {
	_, ok := v.Find(id)
	return ok
}

// Filter returns every record whose name contains query, ignoring case, in
// the order given. An empty query returns records unchanged.
func Filter(records []source.Person, query string) []source.Person {
	if query == "" {
		return records
	}
	needle := strings.ToLower(query)
	out := make([]source.Person, 0, len(records))
	for _, p := range records {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}

func cloneRecords(records []source.Person) []source.Person {
	if len(records) == 0 {
		return nil
	}
	dup := make([]source.Person, len(records))
	copy(dup, records)
	return dup
}
