// Package state tracks the ephemeral view state of the admin console: which
// panel is visible. Collections are rebuilt from scratch on every switch;
// nothing here survives a reload.
package state

import "fmt"

// Panel names the mutually exclusive sections of the console.
type Panel string

const (
	PanelProducts Panel = "products"
	PanelAdd      Panel = "add"
	PanelImport   Panel = "import"
	PanelUsers    Panel = "users"
	PanelInvite   Panel = "invite"
)

// HasData reports whether switching to the panel triggers a collection load.
func (p Panel) HasData() bool {
	return p == PanelProducts || p == PanelUsers
}

func ParsePanel(name string) (Panel, error) {
	switch Panel(name) {
	case PanelProducts, PanelAdd, PanelImport, PanelUsers, PanelInvite:
		return Panel(name), nil
	case "":
		return PanelProducts, nil
	}
	return "", fmt.Errorf("unknown section %q", name)
}

// Panels is the show/hide controller. Exactly one panel is visible and its
// nav item is the active one.
type Panels struct {
	visible Panel
}

func NewPanels() *Panels {
	return &Panels{visible: PanelProducts}
}

// Show hides everything and shows name. It returns the panel so callers can
// chain into its loader.
func (s *Panels) Show(name Panel) Panel {
	s.visible = name
	return s.visible
}

func (s *Panels) Visible() Panel { return s.visible }

// NavActive reports whether the nav control for name should carry the active
// marker.
func (s *Panels) NavActive(name Panel) bool { return s.visible == name }
