package inputs

// Built-in input names. The same names are used as registry keys and, with
// the "inputs." prefix, as theme partial keys.
const (
	NameNumeric                = "numeric"
	NameSelectize              = "selectize"
	NameDateTime               = "datetime"
	NameColor                  = "color"
	NameSlider                 = "slider"
	NameFile                   = "file"
	NameImage                  = "image"
	NameRedactor               = "redactor"
	NameCollectionCheckBoxes   = "collection_check_boxes"
	NameCollectionRadioButtons = "collection_radio_buttons"
)

// PartialKey returns the theme partial key of an input ("inputs.numeric").
func PartialKey(name string) string {
	return partialPrefix + normalize(name)
}

const partialPrefix = "inputs."
