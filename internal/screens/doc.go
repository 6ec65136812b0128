// Package screens builds the operator console out of [flow] units: numbered menus, paginated lists and wizards.
//
// Every constructor returns a fresh unit, so reopening a screen always starts from clean state and refetches its
// records. Lists double as pickers: built modal, they finish with the chosen record as a [flow.Selected] outcome
// that a wizard slot stores.
package screens
