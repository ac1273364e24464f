// Package listing splits a directory's entries into fixed-capacity pages
// and tracks a (page, row) focus cursor over them.
package listing

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/LFroesch/lsl/internal/fileops"
	"github.com/LFroesch/lsl/internal/logger"
	"github.com/LFroesch/lsl/internal/utils"
)

// Lister is the part of the filesystem a listing reads from.
type Lister interface {
	ReadDir(dir string) ([]string, error)
	Stat(path string) (fileops.EntryInfo, error)
}

// Order selects how entries are arranged before paging.
type Order int

const (
	// OrderNone keeps the order the filesystem yields.
	OrderNone Order = iota
	OrderName
	OrderDirsFirst
)

// ParseOrder maps a config value onto an Order, defaulting to OrderNone.
func ParseOrder(s string) Order {
	switch s {
	case "name":
		return OrderName
	case "dirs-first":
		return OrderDirsFirst
	}
	return OrderNone
}

type options struct {
	order   Order
	visible func(name string) bool
}

// Option customizes Build.
type Option func(*options)

func WithOrder(o Order) Option {
	return func(opts *options) { opts.order = o }
}

// WithFilter drops entries for which visible returns false.
func WithFilter(visible func(name string) bool) Option {
	return func(opts *options) { opts.visible = visible }
}

// Page is a contiguous run of entry names.
type Page []string

// Listing is a directory's entries split into pages.
type Listing struct {
	dir          string
	capacity     int
	pages        []Page
	count        int
	maxNameWidth int
	maxSizeWidth int
}

// Build reads dir and pages its entries. Column widths are measured over the
// whole directory so every page lines up the same way. An entry whose
// metadata cannot be read is still listed.
func Build(fsys Lister, dir string, capacity int, opts ...Option) (*Listing, error) {
	o := options{order: OrderNone}
	for _, opt := range opts {
		opt(&o)
	}

	read, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot list %s: %w", dir, err)
	}

	names := make([]string, 0, len(read))
	for _, name := range read {
		if o.visible == nil || o.visible(name) {
			names = append(names, name)
		}
	}

	l := &Listing{dir: dir}
	isDir := make(map[string]bool, len(names))
	for _, name := range names {
		l.maxNameWidth = max(l.maxNameWidth, runewidth.StringWidth(name))

		info, err := fsys.Stat(filepath.Join(dir, name))
		if err != nil {
			logger.Warn("cannot stat %s: %v", name, err)
			l.maxSizeWidth = max(l.maxSizeWidth, 1)
			continue
		}
		isDir[name] = info.IsDir
		l.maxSizeWidth = max(l.maxSizeWidth, utils.DigitCount(info.Size))
	}

	arrange(names, o.order, isDir)
	l.count = len(names)
	l.capacity = max(capacity, 1)
	l.pages = Paginate(names, l.capacity)
	return l, nil
}

func arrange(names []string, order Order, isDir map[string]bool) {
	byName := func(a, b string) bool {
		la, lb := strings.ToLower(a), strings.ToLower(b)
		if la != lb {
			return la < lb
		}
		return a < b
	}
	switch order {
	case OrderName:
		sort.SliceStable(names, func(i, j int) bool { return byName(names[i], names[j]) })
	case OrderDirsFirst:
		sort.SliceStable(names, func(i, j int) bool {
			if isDir[names[i]] != isDir[names[j]] {
				return isDir[names[i]]
			}
			return byName(names[i], names[j])
		})
	}
}

// Paginate chunks names into pages of at most capacity entries. No names
// means no pages.
func Paginate(names []string, capacity int) []Page {
	capacity = max(capacity, 1)
	pages := make([]Page, 0, (len(names)+capacity-1)/capacity)
	for start := 0; start < len(names); start += capacity {
		end := min(start+capacity, len(names))
		pages = append(pages, Page(names[start:end:end]))
	}
	return pages
}

// Repaginate returns the same entries paged for a new capacity.
func (l *Listing) Repaginate(capacity int) *Listing {
	out := *l
	out.capacity = max(capacity, 1)
	out.pages = Paginate(l.Names(), out.capacity)
	return &out
}

func (l *Listing) Dir() string { return l.dir }

func (l *Listing) Capacity() int { return l.capacity }

// Len is the total number of entries across all pages.
func (l *Listing) Len() int {
	if l == nil {
		return 0
	}
	return l.count
}

func (l *Listing) PageCount() int {
	if l == nil {
		return 0
	}
	return len(l.pages)
}

func (l *Listing) Pages() []Page {
	if l == nil {
		return nil
	}
	return l.pages
}

// Page returns page i, or nil when i is out of range.
func (l *Listing) Page(i int) Page {
	if i < 0 || i >= l.PageCount() {
		return nil
	}
	return l.pages[i]
}

// Names returns every entry in page order.
func (l *Listing) Names() []string {
	names := make([]string, 0, l.Len())
	for _, p := range l.Pages() {
		names = append(names, p...)
	}
	return names
}

func (l *Listing) MaxNameWidth() int { return l.maxNameWidth }

// MaxSizeWidth is the number of digits in the largest byte count.
func (l *Listing) MaxSizeWidth() int { return l.maxSizeWidth }

// Entry returns the name under c.
func (l *Listing) Entry(c Cursor) (string, bool) {
	if !c.Valid(l) {
		return "", false
	}
	return l.pages[c.Page][c.Row], true
}

// Index converts c into a position in Names.
func (l *Listing) Index(c Cursor) int {
	return c.Page*l.capacity + c.Row
}

// Locate converts a position in Names into a cursor, clamped to the
// listing. An empty listing yields the zero cursor.
func (l *Listing) Locate(index int) Cursor {
	if l.Len() == 0 {
		return Cursor{}
	}
	index = min(max(index, 0), l.Len()-1)
	return Cursor{Page: index / l.capacity, Row: index % l.capacity}
}
