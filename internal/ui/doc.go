// Package ui contains the Bubble Tea program that powers the font picker
// popup. Two layers keep ownership honest:
//
//   - Panel is the program model. It stands in for the drawing application's
//     property panel: it owns the authoritative selection and hover ids,
//     hosts the picker while it is open, and reacts to the picker's hooks
//     (select, hover, leave, open, close) by mutating its own state.
//   - Model is the picker component. It owns only the search input, the
//     debounced search term, and the derived filtered view. Selection and
//     hover arrive as Props on every call; the component never stores them.
//     When no hover can be derived it issues a correction through its hooks
//     (hover the first match, or clear the hover when nothing matched) and
//     relies on internal/picker.Reconciler to fire each correction at most
//     once per distinct input tuple.
//
// The pure derivations (filtering, hover resolution, navigation) live in
// internal/picker so they can be tested without a terminal. Catalog reloads
// stream in from internal/backend via the wait-for-event command loop and
// re-enter the derivation with a fresh snapshot version.
package ui
