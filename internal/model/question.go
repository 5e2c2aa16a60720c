package model

// Modality defines how a question is answered
type Modality string

const (
	ModalityAgree  Modality = "AGREE"  // 5-point agreement scale
	ModalityChoice Modality = "CHOICE" // Pick exactly one option
	ModalitySlider Modality = "SLIDER" // Integer slider within [min,max]
)

// Question is an immutable catalog entry. Only the ID carries meaning;
// display order is decided per session.
type Question struct {
	ID       string   `json:"id"`
	Modality Modality `json:"modality"`
	Prompt   string   `json:"prompt"`
	ScaleMin int      `json:"scaleMin,omitempty"` // AGREE, SLIDER
	ScaleMax int      `json:"scaleMax,omitempty"` // AGREE, SLIDER
	Options  []string `json:"options,omitempty"`  // CHOICE only
}
