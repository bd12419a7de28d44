package tui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const (
	animFPS       = 60
	animFrequency = 9.0
	animDamping   = 1.0 // critically damped: no overshoot past full opacity
	animSettle    = 0.01
)

type rowPhase int

const (
	phaseStable rowPhase = iota
	phaseEnter
	phaseLeave
)

// rowAnim is the transient animation state of one keyed row. pos runs from 0
// (invisible, zero height) to 1 (fully shown).
type rowAnim struct {
	id    string
	phase rowPhase
	pos   float64
	vel   float64
}

func (r *rowAnim) target() float64 {
	if r.phase == phaseLeave {
		return 0
	}
	return 1
}

// transitions tracks which keyed rows are entering, shown, or leaving.
// Leaving rows stay in rows, at their last position, until their exit finishes.
type transitions struct {
	rows    []*rowAnim
	spring  harmonica.Spring
	enabled bool
}

func newTransitions(enabled bool) transitions {
	return transitions{
		spring:  harmonica.NewSpring(harmonica.FPS(animFPS), animFrequency, animDamping),
		enabled: enabled,
	}
}

// sync diffs the previous rows against visible. It reports whether any row
// needs animation frames.
func (t *transitions) sync(visible []string) bool {
	want := make(map[string]bool, len(visible))
	for _, id := range visible {
		want[id] = true
	}
	prev := make(map[string]*rowAnim, len(t.rows))
	// Leaving rows are anchored after the nearest preceding surviving row ("" = top).
	anchors := map[string][]*rowAnim{}
	anchor := ""
	for _, r := range t.rows {
		if want[r.id] {
			prev[r.id] = r
			anchor = r.id
			continue
		}
		if !t.enabled {
			continue
		}
		r.phase = phaseLeave
		anchors[anchor] = append(anchors[anchor], r)
	}

	out := make([]*rowAnim, 0, len(visible)+len(anchors))
	out = append(out, anchors[""]...)
	for _, id := range visible {
		r := prev[id]
		switch {
		case r == nil && t.enabled:
			r = &rowAnim{id: id, phase: phaseEnter}
		case r == nil:
			r = &rowAnim{id: id, phase: phaseStable, pos: 1}
		case r.phase == phaseLeave:
			// Came back (e.g. filter flipped back) before it finished leaving.
			r.phase = phaseEnter
		}
		out = append(out, r)
		out = append(out, anchors[id]...)
	}
	t.rows = out
	return t.animating()
}

// step advances every animating row by one frame and drops finished exits.
// It reports whether more frames are needed.
func (t *transitions) step() bool {
	kept := t.rows[:0]
	for _, r := range t.rows {
		if r.phase != phaseStable {
			tgt := r.target()
			r.pos, r.vel = t.spring.Update(r.pos, r.vel, tgt)
			if math.Abs(r.pos-tgt) < animSettle && math.Abs(r.vel) < animSettle {
				r.pos, r.vel = tgt, 0
				if r.phase == phaseLeave {
					continue
				}
				r.phase = phaseStable
			}
		}
		kept = append(kept, r)
	}
	for i := len(kept); i < len(t.rows); i++ {
		t.rows[i] = nil
	}
	t.rows = kept
	return t.animating()
}

func (t *transitions) animating() bool {
	for _, r := range t.rows {
		if r.phase != phaseStable {
			return true
		}
	}
	return false
}

// progress clamps pos for rendering; springs can undershoot slightly.
func (r *rowAnim) progress() float64 {
	return math.Max(0, math.Min(1, r.pos))
}

// heightStep is the progress at which a row gains (entering) or gives up
// (leaving) its line.
const heightStep = 0.5

// rowExtent splits progress into the two halves of a transition: below
// heightStep the row takes no line at all; above it the row holds one line
// and reveal runs 0..1 for the fade and left-to-right reveal.
func rowExtent(progress float64) (shown bool, reveal float64) {
	if progress >= 1 {
		return true, 1
	}
	if progress < heightStep {
		return false, 0
	}
	return true, (progress - heightStep) / (1 - heightStep)
}

type animFrameMsg struct{}

func animFrame() tea.Cmd {
	return tea.Tick(time.Second/animFPS, func(time.Time) tea.Msg { return animFrameMsg{} })
}
