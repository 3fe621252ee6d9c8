package layrroute

const (
	ARROWHEAD_LENGTH     = 10.
	ARROWHEAD_HALF_WIDTH = 5.

	DIAMOND_LENGTH     = 16.
	DIAMOND_HALF_WIDTH = 6.

	DASH_LENGTH = 8.
	DASH_GAP    = 5.

	// distance of a connector label from its segment
	LABEL_OFFSET = 15.

	// distance of a cardinality glyph from the endpoint it describes
	CARDINALITY_OFFSET = 20.
)
