package cmd

import "strings"

// Palette is the command palette engine: it owns the typed query, the
// candidate catalog for the current context, and the filtered view the
// UI renders. It is UI-free; the app layer translates key presses into
// method calls and renders the accessors.
type Palette struct {
	visible       bool
	input         string
	commands      []Command
	filtered      []Command
	selectedIndex int
	context       *Context
}

// NewPalette builds a hidden palette for the given context.
func NewPalette(ctx *Context) *Palette {
	p := &Palette{context: ctx}
	p.commands = BuildCatalog(ctx)
	p.recomputeFiltered()
	return p
}

// Toggle flips visibility. Both directions reset the query and
// selection so the palette always opens fresh.
func (p *Palette) Toggle() {
	if p.visible {
		p.Hide()
	} else {
		p.Show()
	}
}

// Show opens the palette with an empty query and the selection on the
// first entry.
func (p *Palette) Show() {
	p.visible = true
	p.input = ""
	p.selectedIndex = 0
	p.recomputeFiltered()
}

// Hide closes the palette and discards the query.
func (p *Palette) Hide() {
	p.visible = false
	p.input = ""
	p.selectedIndex = 0
	p.recomputeFiltered()
}

// TypeRune appends a character to the query and refilters.
func (p *Palette) TypeRune(r rune) {
	p.input += string(r)
	p.recomputeFiltered()
}

// Backspace removes the last character of the query, if any, and
// refilters.
func (p *Palette) Backspace() {
	if p.input == "" {
		return
	}
	runes := []rune(p.input)
	p.input = string(runes[:len(runes)-1])
	p.recomputeFiltered()
}

// SelectNext moves the selection down one entry. The selection stops
// at the last entry rather than wrapping.
func (p *Palette) SelectNext() {
	if p.selectedIndex+1 < len(p.filtered) {
		p.selectedIndex++
	}
}

// SelectPrevious moves the selection up one entry, stopping at the
// top.
func (p *Palette) SelectPrevious() {
	if p.selectedIndex > 0 {
		p.selectedIndex--
	}
}

// SelectedCommand returns the highlighted command, or false when the
// filtered list is empty.
func (p *Palette) SelectedCommand() (Command, bool) {
	if p.selectedIndex < 0 || p.selectedIndex >= len(p.filtered) {
		return Command{}, false
	}
	return p.filtered[p.selectedIndex], true
}

// UpdateContext swaps in a new context, rebuilds the catalog, and
// refilters against the current query. The selection index is clamped
// if the filtered list shrank.
func (p *Palette) UpdateContext(ctx *Context) {
	p.context = ctx
	p.commands = BuildCatalog(ctx)
	p.recomputeFiltered()
}

// IsVisible reports whether the palette is open.
func (p *Palette) IsVisible() bool {
	return p.visible
}

// Input returns the current query string.
func (p *Palette) Input() string {
	return p.input
}

// FilteredCommands returns the commands currently shown, in catalog
// order.
func (p *Palette) FilteredCommands() []Command {
	return p.filtered
}

// SelectedIndex returns the highlight position within the filtered
// list.
func (p *Palette) SelectedIndex() int {
	return p.selectedIndex
}

// Commands returns the unfiltered catalog for the current context.
func (p *Palette) Commands() []Command {
	return p.commands
}

// recomputeFiltered rebuilds the filtered list from the catalog: first
// requirement filtering against the context, then the query match.
// Order never changes; filtering only removes entries. The selection
// is clamped to the new list so it always points at a real entry when
// one exists.
func (p *Palette) recomputeFiltered() {
	applicable := Resolve(p.commands, p.context)

	if p.input == "" {
		p.filtered = applicable
	} else {
		p.filtered = p.filtered[:0:0]
		for _, c := range applicable {
			if matchesQuery(c, p.input) {
				p.filtered = append(p.filtered, c)
			}
		}
	}

	if len(p.filtered) == 0 {
		p.selectedIndex = 0
	} else if p.selectedIndex >= len(p.filtered) {
		p.selectedIndex = len(p.filtered) - 1
	}
}

// matchesQuery reports whether a command matches the query by
// case-insensitive substring against, in order, the name, the
// description, each keyword, and the category display name.
func matchesQuery(c Command, query string) bool {
	q := strings.ToLower(query)

	if strings.Contains(strings.ToLower(c.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(c.Description), q) {
		return true
	}
	for _, kw := range c.Keywords {
		if strings.Contains(strings.ToLower(kw), q) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(c.Category.DisplayName()), q)
}
