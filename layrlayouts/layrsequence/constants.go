package layrsequence

// minimum distance between actor centers, also the x of the first actor
const ACTOR_SPACING = 150.

// minimum clearance between adjacent actor boxes
const ACTOR_GAP = 20.

const ACTOR_Y = 80.

const ACTOR_BOX_HEIGHT = 40.

// actor box width is label length * ACTOR_CHAR_WIDTH + ACTOR_PADDING
const ACTOR_CHAR_WIDTH = 10.

const ACTOR_PADDING = 20.

const LIFELINE_BOTTOM_MARGIN = 20.

const LIFELINE_DASH = 5.

const LIFELINE_GAP = 5.

const FIRST_STEP_Y = 150.

const STEP_SPACING = 40.

// notes sit to the right of the rightmost endpoint and push the next step down
const NOTE_OFFSET_X = 50.

const NOTE_OFFSET_Y = 25.

const NOTE_HEIGHT = 30.

const NOTE_CHAR_WIDTH = 5.

const NOTE_PADDING = 20.

const NOTE_SPACING = 40.

const SELF_LOOP_WIDTH = 40.

const SELF_LOOP_HEIGHT = 20.

const SELF_LOOP_LABEL_OFFSET = 10.

const MIN_WIDTH = 800.

const MIN_HEIGHT = 600.

const WIDTH_MARGIN = 100.

// vertical budget reserved per step when sizing the canvas
const STEP_HEIGHT_BUDGET = 60.

const HEIGHT_MARGIN = 200.
