package models

// BeyLine is the product line tag of a declared bey. The two lines have
// different part sets, so BeyConfig is a tagged variant over it.
type BeyLine string

const (
	LineUXBX BeyLine = "UXBX"
	LineCX   BeyLine = "CX"
)

// BeyConfig is one declared part combination. For LineUXBX the Blade,
// Ratchet and Bit fields are used; for LineCX the LockChip, MainBlade,
// AssistBlade, Ratchet and Bit fields are used. Formatting and validation
// live in the parts package as functions over the tag.
type BeyConfig struct {
	Line        BeyLine `json:"line"`
	Blade       string  `json:"blade,omitempty"`
	LockChip    string  `json:"lockChip,omitempty"`
	MainBlade   string  `json:"mainBlade,omitempty"`
	AssistBlade string  `json:"assistBlade,omitempty"`
	Ratchet     string  `json:"ratchet"`
	Bit         string  `json:"bit"`
}

// Complete reports whether every part slot required by the line is set.
func (b BeyConfig) Complete() bool {
	if b.Line == LineCX {
		return b.LockChip != "" && b.MainBlade != "" && b.AssistBlade != "" &&
			b.Ratchet != "" && b.Bit != ""
	}
	return b.Blade != "" && b.Ratchet != "" && b.Bit != ""
}
