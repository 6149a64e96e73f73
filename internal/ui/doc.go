// Package ui renders the site in the terminal with Bubble Tea.
//
// Composition, top to bottom:
//   - Header: brand mark plus either the desktop navigation or the menu button
//   - Mobile panel: the expanded navigation list, shown while the menu is open
//   - Page viewport: the active page followed by the footer, scrollable
//   - Status line: key hints, replaced by the leader help box after SPC
//
// All navigation state lives in nav.State; this package only translates key
// presses into nav transitions and draws the result.
package ui
