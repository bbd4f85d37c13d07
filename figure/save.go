package figure

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Save writes the figure to path, choosing the format from the extension:
// .json, .html/.htm, or any image format in Formats. width and height only
// matter for images.
func (f *Figure) Save(path string, width, height float64) (err error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext != "json" && ext != "html" && ext != "htm" && !knownFormat(ext) {
		return fmt.Errorf("Save(%q): %w", path, ErrUnknownFormat)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("Save: %w", cerr)
		}
	}()

	switch ext {
	case "json":
		return f.WriteJSON(out)
	case "html", "htm":
		return f.WriteHTML(out)
	default:
		return f.Render(out, ext, width, height)
	}
}
