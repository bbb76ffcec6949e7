// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package paginate

// Link is one entry in the numbered pagination control. Ellipsis entries
// have Number 0.
type Link struct {
	Number   int
	Active   bool
	Ellipsis bool
}

// window is how many neighbours of the current page are always shown.
const window = 1

// Links lists the numbered controls for page out of totalPages. The first and
// last pages and the current page with its neighbours are always listed; any
// gap between them collapses into a single ellipsis. No controls are returned
// when there is at most one page.
func Links(page, totalPages int) []Link {
	if totalPages <= 1 {
		return nil
	}
	page = Clamp(page, totalPages)

	var out []Link
	last := 0
	for n := 1; n <= totalPages; n++ {
		if n != 1 && n != totalPages && (n < page-window || n > page+window) {
			continue
		}
		if last != 0 && n-last > 1 {
			if n-last == 2 {
				// A gap of exactly one page is shown as that page, not an ellipsis.
				out = append(out, Link{Number: n - 1})
			} else {
				out = append(out, Link{Ellipsis: true})
			}
		}
		out = append(out, Link{Number: n, Active: n == page})
		last = n
	}
	return out
}
