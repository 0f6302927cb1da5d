package config

// Config is the resolved initializer document.
type Config struct {
	// TranslationPrefix namespaces every translation key inputs look up
	// ("formext" -> "formext.selectize.add").
	TranslationPrefix string    `json:"translationPrefix" yaml:"translationPrefix"`
	Selectize         Selectize `json:"selectize" yaml:"selectize"`
	Numeric           Numeric   `json:"numeric" yaml:"numeric"`
	DateTime          DateTime  `json:"datetime" yaml:"datetime"`
	Slider            Slider    `json:"slider" yaml:"slider"`
	Color             Color     `json:"color" yaml:"color"`
	File              File      `json:"file" yaml:"file"`
	Image             Image     `json:"image" yaml:"image"`
	Redactor          Redactor  `json:"redactor" yaml:"redactor"`
}

// Selectize holds defaults for the tag/select picker. Per-field options
// always win over these values.
type Selectize struct {
	Creatable   bool   `json:"creatable" yaml:"creatable"`
	MaxItems    *int   `json:"maxItems,omitempty" yaml:"maxItems,omitempty"`
	SortField   string `json:"sortField" yaml:"sortField"`
	SearchParam string `json:"searchParam" yaml:"searchParam"`
	Escape      *bool  `json:"escape,omitempty" yaml:"escape,omitempty"`
}

// Numeric configures the spinner input.
type Numeric struct {
	Min      *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max      *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Step     *float64 `json:"step,omitempty" yaml:"step,omitempty"`
	UpIcon   string   `json:"upIcon" yaml:"upIcon"`
	DownIcon string   `json:"downIcon" yaml:"downIcon"`
}

// DateTime configures the date-time picker. Layouts are Go time layouts used
// for time.Time values; formats are handed to the client picker as-is.
type DateTime struct {
	Layout     string `json:"layout" yaml:"layout"`
	DateLayout string `json:"dateLayout" yaml:"dateLayout"`
	TimeLayout string `json:"timeLayout" yaml:"timeLayout"`
	Format     string `json:"format" yaml:"format"`
	DateFormat string `json:"dateFormat" yaml:"dateFormat"`
	TimeFormat string `json:"timeFormat" yaml:"timeFormat"`
}

// Slider configures the range slider.
type Slider struct {
	Min     float64 `json:"min" yaml:"min"`
	Max     float64 `json:"max" yaml:"max"`
	Step    float64 `json:"step" yaml:"step"`
	Tooltip string  `json:"tooltip" yaml:"tooltip"`
}

// Color configures the color picker.
type Color struct {
	Format string `json:"format" yaml:"format"`
}

// File configures the file uploader.
type File struct {
	Accept string `json:"accept,omitempty" yaml:"accept,omitempty"`
}

// Image configures the image uploader.
type Image struct {
	Accept       string `json:"accept" yaml:"accept"`
	PreviewClass string `json:"previewClass" yaml:"previewClass"`
}

// Redactor configures the rich-text editor. Policy selects the sanitiser
// applied to existing content ("ugc" or "strict").
type Redactor struct {
	Policy    string   `json:"policy" yaml:"policy"`
	MinHeight int      `json:"minHeight" yaml:"minHeight"`
	Buttons   []string `json:"buttons,omitempty" yaml:"buttons,omitempty"`
}

// Sanitiser policies understood by the redactor input.
const (
	PolicyUGC    = "ugc"
	PolicyStrict = "strict"
)

// Color formats accepted by the color picker.
var colorFormats = map[string]struct{}{
	"hex":  {},
	"rgb":  {},
	"rgba": {},
	"hsl":  {},
	"hsla": {},
}
