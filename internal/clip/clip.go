// Package clip moves a scene selection through the system clipboard.
// The payload is a JSON envelope; pasting re-identifies every element with
// the same primitive the duplicate operation uses, so pasted content never
// collides with existing ids.
package clip

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/inkwell-tools/scrawl/internal/scene"
)

const payloadApp = "scrawl"

var (
	writeAll = clipboard.WriteAll
	readAll  = clipboard.ReadAll
)

type payload struct {
	App      string           `json:"app"`
	Elements []*scene.Element `json:"elements"`
}

// CopySelection serializes the resolved selection (bound text and frame
// members ride along) onto the clipboard. Returns the number of elements
// copied; zero with nil error when nothing is selected.
func CopySelection(elements []*scene.Element, state scene.AppState) (int, error) {
	selected := scene.SelectedElements(elements, state, scene.SelectionOptions{
		IncludeBoundText:     true,
		IncludeFrameChildren: true,
	})
	if len(selected) == 0 {
		return 0, nil
	}

	b, err := json.Marshal(payload{App: payloadApp, Elements: selected})
	if err != nil {
		return 0, fmt.Errorf("encode clipboard payload: %w", err)
	}
	if err := writeAll(string(b)); err != nil {
		return 0, fmt.Errorf("write clipboard: %w", err)
	}
	return len(selected), nil
}

// PasteResult carries the scene after a paste. Pasted is zero when the
// clipboard held nothing of ours.
type PasteResult struct {
	Elements []*scene.Element
	State    scene.AppState
	Pasted   int
}

// Paste appends re-identified clipboard elements to the scene, offset by
// half a grid cell, rewiring their internal references onto the fresh ids
// and selecting the result. Foreign clipboard content is a no-op, not an
// error.
func Paste(elements []*scene.Element, state scene.AppState) (PasteResult, error) {
	noop := PasteResult{Elements: elements, State: state}

	text, err := readAll()
	if err != nil {
		return noop, fmt.Errorf("read clipboard: %w", err)
	}
	text = strings.TrimSpace(text)
	if text == "" || !strings.HasPrefix(text, "{") {
		return noop, nil
	}

	var p payload
	if err := json.Unmarshal([]byte(text), &p); err != nil {
		return noop, nil
	}
	if p.App != payloadApp || len(p.Elements) == 0 {
		return noop, nil
	}

	offset := state.GridSize / 2
	if offset <= 0 {
		offset = scene.DefaultGridSize / 2
	}

	groupRemap := map[string]string{}
	oldIDToNewID := map[string]string{}
	pasted := make([]*scene.Element, 0, len(p.Elements))
	for _, el := range p.Elements {
		next := scene.DuplicateElement(nil, groupRemap, el, offset, offset)
		oldIDToNewID[el.ID] = next.ID
		pasted = append(pasted, next)
	}

	scene.FixBoundTextAfterDuplication(pasted, p.Elements, oldIDToNewID)
	scene.FixBindingsAfterDuplication(pasted, p.Elements, oldIDToNewID)
	scene.FixFrameMembershipAfterDuplication(pasted, p.Elements, oldIDToNewID)

	out := make([]*scene.Element, 0, len(elements)+len(pasted))
	out = append(out, elements...)
	out = append(out, pasted...)

	return PasteResult{
		Elements: out,
		State:    scene.SelectionForDuplicated(pasted, out, state),
		Pasted:   len(pasted),
	}, nil
}

// SetClipboardForTest swaps the clipboard accessors and returns a restore
// function.
func SetClipboardForTest(write func(string) error, read func() (string, error)) func() {
	origWrite, origRead := writeAll, readAll
	writeAll, readAll = write, read
	return func() {
		writeAll, readAll = origWrite, origRead
	}
}
