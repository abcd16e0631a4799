package view

// maxPageButtons is how many numbered page buttons the client renders.
const maxPageButtons = 7

// PageWindow returns the inclusive range of page buttons to show: up to
// maxPageButtons pages with the current page centered when possible,
// clamped to [1, totalPages].
func PageWindow(current, totalPages int) (start, end int) {
	if totalPages < 1 {
		totalPages = 1
	}
	if current < 1 {
		current = 1
	}

	if totalPages <= maxPageButtons {
		return 1, totalPages
	}

	half := maxPageButtons / 2
	start = current - half
	if start < 1 {
		start = 1
	}
	end = start + maxPageButtons - 1
	if end > totalPages {
		end = totalPages
		start = end - maxPageButtons + 1
	}
	return start, end
}
