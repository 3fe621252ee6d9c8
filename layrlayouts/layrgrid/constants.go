package layrgrid

const (
	MIN_WIDTH        = 800.
	MIN_HEIGHT       = 600.
	TITLE_BAR_HEIGHT = 60.

	// composers cap columns to keep labels legible
	MAX_COLS = 4

	CELL_WIDTH  = 200.
	CELL_HEIGHT = 200.

	BOX_WIDTH  = 150.
	BOX_HEIGHT = 80.

	// subtracted from each side of a cell before a box is fit into it
	CELL_INSET_X = 10.
	CELL_INSET_Y = 20.
)
