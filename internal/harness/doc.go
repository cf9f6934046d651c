// Package harness replays playsheet scenarios for conformance testing.
//
// A scenario is a YAML file listing operations (adding catalog plays,
// edits, game context changes, selection and drag gestures, searches)
// followed by assertions on the final state:
//
//	name: batch-drop-red-zone
//	description: Dragging a marked batch onto Red Zone tags every entry
//	watch: [offense]
//	steps:
//	  - op: add
//	    play: eagles-off-gun-bunch-mesh-post
//	  - op: enter_selection
//	  - op: select_all
//	    ids: [1, 2]
//	  - op: gesture_start
//	    id: 1
//	  - op: gesture_end
//	    target: red-zone
//	assertions:
//	  - type: entry
//	    id: 1
//	    tags: [red zone]
//
// Each scenario runs against a fresh in-memory database with a step clock
// and sequential gesture tokens, so the text trace it produces is the same
// on every run and can be compared against a golden file
// (testdata/golden/<name>.golden). Live queries named in watch are
// registered before the first step and every notification they receive is
// part of the trace.
package harness
