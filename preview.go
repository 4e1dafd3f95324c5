package mathed

import "sync"

// Preview keeps the rendering of an input which is being edited. Input is
// expected to be invalid most of the time while typing, so a failed
// conversion does not clear the rendering: HTML keeps returning the result
// for the last valid input until the input is valid again.
type Preview struct {
	mu     sync.RWMutex
	parser *Parser
	source string // last valid input
	html   string
	err    error // error for the most recent input
}

// NewPreview creates an empty preview using p.
func (p *Parser) NewPreview() *Preview {
	return &Preview{parser: p}
}

// Update converts text. On success the rendering is replaced, otherwise
// it stays unchanged and the error is remembered.
func (pv *Preview) Update(text string) error {
	html, err := pv.parser.Convert(text)
	pv.mu.Lock()
	defer pv.mu.Unlock()
	pv.err = err
	if err != nil {
		tracer().Debugf("preview keeps last rendering: %v", err)
		return err
	}
	pv.source, pv.html = text, html
	return nil
}

// HTML returns the rendering of the last valid input.
func (pv *Preview) HTML() string {
	pv.mu.RLock()
	defer pv.mu.RUnlock()
	return pv.html
}

// Source returns the last valid input.
func (pv *Preview) Source() string {
	pv.mu.RLock()
	defer pv.mu.RUnlock()
	return pv.source
}

// Err returns the error of the most recent update, or nil if it succeeded.
func (pv *Preview) Err() error {
	pv.mu.RLock()
	defer pv.mu.RUnlock()
	return pv.err
}
