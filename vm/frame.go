package vm

// Frame records what a Return should do when it unwinds: return to
// ReturnAddress if HasReturn is true, otherwise halt the machine. RegisterBase is
// the register offset that was in effect while this frame was active.
type Frame struct {
	ReturnAddress int
	HasReturn     bool
	RegisterBase  int
}
