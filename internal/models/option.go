package models

// Option pairs a canonical identifier with the label shown to the user.
type Option struct {
	ID    string `json:"id" yaml:"id" csv:"id"`
	Label string `json:"label" yaml:"label" csv:"label"`
}

// OptionDictionary is an ordered list of options.
// Order matters: when two options share a label the first one wins.
type OptionDictionary []Option

// Map returns the dictionary as an id -> label map.
func (d OptionDictionary) Map() map[string]string {
	m := make(map[string]string, len(d))
	for _, o := range d {
		m[o.ID] = o.Label
	}
	return m
}

// Labels returns the labels in dictionary order.
func (d OptionDictionary) Labels() []string {
	labels := make([]string, 0, len(d))
	for _, o := range d {
		labels = append(labels, o.Label)
	}
	return labels
}
