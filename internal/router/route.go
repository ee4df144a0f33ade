package router

import "strings"

// Meta describes a route the way the view layer needs it.
type Meta struct {
	Title  string
	Public bool
	Icon   string
	Hidden bool
}

// Route is one declarative routing entry. Child paths are relative to the
// parent; ":name" segments capture parameters.
type Route struct {
	Path     string
	Name     string
	Meta     Meta
	Redirect string
	Children []Route
}

// Match is a resolved navigation target.
type Match struct {
	Route    *Route
	Params   map[string]string
	FullPath string
}

type entry struct {
	segments []string
	route    *Route
}

type redirect struct {
	segments []string
	target   string
}

// Table is a flattened, matchable route tree.
type Table struct {
	entries   []entry
	redirects []redirect
	notFound  *Route
}

// NewTable flattens the route tree. The route named notFoundName, if
// present, becomes the fallback for unmatched paths.
func NewTable(routes []Route, notFoundName string) *Table {
	t := &Table{}
	t.flatten("", routes, notFoundName)
	return t
}

func (t *Table) flatten(prefix string, routes []Route, notFoundName string) {
	for i := range routes {
		route := &routes[i]
		full := joinPath(prefix, route.Path)
		if route.Name == notFoundName {
			t.notFound = route
			continue
		}
		if route.Redirect != "" {
			t.redirects = append(t.redirects, redirect{segments: splitPath(full), target: route.Redirect})
		}
		if route.Name != "" {
			t.entries = append(t.entries, entry{segments: splitPath(full), route: route})
		}
		if len(route.Children) > 0 {
			t.flatten(full, route.Children, notFoundName)
		}
	}
}

// Resolve matches a path against the table. Redirect entries are chased to
// their target first, so resolving "/" on a table whose root redirects lands
// on the target route. Unmatched paths resolve to the not-found route when
// one exists.
func (t *Table) Resolve(path string) (*Match, bool) {
	raw := path
	query := ""
	if i := strings.IndexByte(path, '?'); i >= 0 {
		query = path[i:]
		path = path[:i]
	}

	for range t.redirects {
		target, ok := t.redirectFor(splitPath(path))
		if !ok {
			break
		}
		path = target
		raw = target + query
	}
	segments := splitPath(path)

	for _, e := range t.entries {
		if params, ok := matchSegments(e.segments, segments); ok {
			return &Match{Route: e.route, Params: params, FullPath: raw}, true
		}
	}
	if t.notFound != nil {
		return &Match{Route: t.notFound, Params: map[string]string{}, FullPath: raw}, true
	}
	return nil, false
}

func (t *Table) redirectFor(segments []string) (string, bool) {
	for _, r := range t.redirects {
		if _, ok := matchSegments(r.segments, segments); ok {
			return r.target, true
		}
	}
	return "", false
}

// Find looks a route up by name.
func (t *Table) Find(name string) (*Route, bool) {
	for _, e := range t.entries {
		if e.route.Name == name {
			return e.route, true
		}
	}
	return nil, false
}

func matchSegments(pattern, path []string) (map[string]string, bool) {
	if len(pattern) != len(path) {
		return nil, false
	}
	params := map[string]string{}
	for i, seg := range pattern {
		if strings.HasPrefix(seg, ":") {
			params[seg[1:]] = path[i]
			continue
		}
		if seg != path[i] {
			return nil, false
		}
	}
	return params, true
}

func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func joinPath(prefix, path string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}
	if path == "" {
		return prefix
	}
	return strings.TrimRight(prefix, "/") + "/" + path
}

// PageTitle renders the document title for a resolved route.
func PageTitle(m *Match, siteName string) string {
	if m == nil || m.Route == nil || m.Route.Meta.Title == "" {
		return siteName
	}
	return m.Route.Meta.Title + " - " + siteName
}

// backOfficeName is the fixed suffix of every admin document title,
// independent of the configured site name.
const backOfficeName = "Admin Console"

// AdminPageTitle renders the back-office document title.
func AdminPageTitle(m *Match) string {
	return PageTitle(m, backOfficeName)
}
