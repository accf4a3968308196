// Package actions defines the lifecycle callbacks a page may supply.
package actions

import (
	"time"

	"booklike/internal/domain"
)

// Hook receives page lifecycle calls from the navigation engine
type Hook interface {
	// Show is called once when the page becomes fully visible
	Show(page domain.Page)
	// Hide is called once when the page is fully removed from view
	Hide(page domain.Page)
	// Standby is called when the page's replacement transition begins
	Standby(page domain.Page)
}

// Animator is implemented by hooks whose page carries an animation
type Animator interface {
	Hook
	Duration() time.Duration
	DrawFrame(frac float64)
}

// Base provides no-op lifecycle methods for embedding
type Base struct{}

func (Base) Show(domain.Page)    {}
func (Base) Hide(domain.Page)    {}
func (Base) Standby(domain.Page) {}

// Funcs adapts plain functions to a Hook; nil fields are no-ops
type Funcs struct {
	OnShow    func(domain.Page)
	OnHide    func(domain.Page)
	OnStandby func(domain.Page)
}

func (f Funcs) Show(p domain.Page) {
	if f.OnShow != nil {
		f.OnShow(p)
	}
}

func (f Funcs) Hide(p domain.Page) {
	if f.OnHide != nil {
		f.OnHide(p)
	}
}

func (f Funcs) Standby(p domain.Page) {
	if f.OnStandby != nil {
		f.OnStandby(p)
	}
}
