package format

import "fmt"

type Format int8

const (
	PDF Format = iota
	PNG
	SVG
	HTML
	CSV
	XLSX
)

func UnmarshalText(text string) (Format, error) {
	switch text {
	case "pdf":
		return PDF, nil
	case "png":
		return PNG, nil
	case "svg":
		return SVG, nil
	case "html":
		return HTML, nil
	case "csv":
		return CSV, nil
	case "xlsx":
		return XLSX, nil
	default:
		return 0, fmt.Errorf("invalid format: %q", text)
	}
}

// Ext returns the file extension without the leading dot.
func (f Format) Ext() string {
	switch f {
	case PDF:
		return "pdf"
	case PNG:
		return "png"
	case SVG:
		return "svg"
	case HTML:
		return "html"
	case CSV:
		return "csv"
	case XLSX:
		return "xlsx"
	default:
		return ""
	}
}

// IsPlot reports whether the format is a static image rendered by gonum/plot.
func (f Format) IsPlot() bool {
	return f == PDF || f == PNG || f == SVG
}

func (f Format) String() string {
	if ext := f.Ext(); ext != "" {
		return ext
	}
	return fmt.Sprintf("Format(%d)", int8(f))
}
