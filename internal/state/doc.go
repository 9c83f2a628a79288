// Package state holds the directory session state and its transitions.
//
// # Overview
//
// A session is one View value. It starts Loading with an empty record list,
// an empty query, nothing expanded and the Light theme. Every user action is
// a pure method that returns the next View:
//
//	v := state.New()
//	v = v.Apply(state.LoadResult{Records: people}) // Loading → Ready
//	v = v.WithQuery("lean")                          // search
//	v = v.Toggle(1)                                  // expand card 1
//	v = v.ToggleTheme()                              // Light → Dark
//	cards := v.Visible()                             // Filter(Records, Query)
//
// # Load Status
//
//	Loading ──ok──→ Ready
//	   │
//	   └──err──→ Failed("Error loading data")
//
// Apply settles the status exactly once. Results that arrive after the first
// are dropped, so there is no path back to Loading and no Ready ↔ Failed.
//
// # Expanded Map
//
// Expanded only stores true entries and only for loaded ids. Toggle on an id
// that is not in Records returns the View unchanged. Because collapsing
// deletes the key, toggling twice yields a View equal to the original.
//
// # Concurrency
//
// There is none. The Bubble Tea update loop owns the current View and swaps
// it for the value each transition returns. Toggle copies the map before
// writing so earlier Views are never modified.
package state
