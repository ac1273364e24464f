package listing

// Cursor addresses one entry of a Listing by page and row. On an empty
// listing every cursor is inert.
type Cursor struct {
	Page int
	Row  int
}

// Valid reports whether c points at an existing entry of l.
func (c Cursor) Valid(l *Listing) bool {
	page := l.Page(c.Page)
	return page != nil && c.Row >= 0 && c.Row < len(page)
}

// Down moves to the next entry, crossing into the next page from the last
// row. At the end of the listing it stays put.
func (c Cursor) Down(l *Listing) Cursor {
	if !c.Valid(l) {
		return c
	}
	switch {
	case c.Row < len(l.Page(c.Page))-1:
		c.Row++
	case c.Page+1 < l.PageCount():
		c = Cursor{Page: c.Page + 1}
	}
	return c
}

// Up moves to the previous entry. From the first row it lands on the last
// entry of the previous page, whatever that page's length.
func (c Cursor) Up(l *Listing) Cursor {
	if !c.Valid(l) {
		return c
	}
	switch {
	case c.Row > 0:
		c.Row--
	case c.Page > 0:
		c = Cursor{Page: c.Page - 1, Row: len(l.Page(c.Page-1)) - 1}
	}
	return c
}

// Last returns the cursor of the final entry.
func Last(l *Listing) Cursor {
	return l.Locate(l.Len() - 1)
}
