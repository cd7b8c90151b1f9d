package remover

import (
	"fmt"
	"os"
	"strings"

	"tsnip/internal/model"
)

// TargetFile is the document rewritten in place.
const TargetFile = "index.html"

// The section boundaries are literal substrings, indentation included.
// The cut point is the end of the closingTag line; the trailing </main>
// line only anchors the search and stays in the document.
const (
	startMarker = "    <!-- Testimonials -->"
	endMarker   = "    </section>\n  </main>"
	closingTag  = "    </section>"
)

// Splice removes the first marked section from content. On the not-found
// paths the content is returned unchanged. At most one deletion happens;
// the end marker is searched for from the start marker's position onward.
func Splice(content string) (string, model.Summary) {
	start := strings.Index(content, startMarker)
	if start == -1 {
		return content, model.Summary{Status: model.StatusNotFound}
	}

	end := strings.Index(content[start:], endMarker)
	if end == -1 {
		return content, model.Summary{Status: model.StatusEndMarkerMissing}
	}
	end = start + end + len(closingTag)

	// Absorb the newline that ended the line before the marker.
	if start > 0 && content[start-1] == '\n' {
		start--
	}

	return content[:start] + content[end:], model.Summary{
		Status:  model.StatusDeleted,
		Removed: end - start,
	}
}

// Remove reads path, splices out the marked section and overwrites the
// file. The file is only rewritten when a deletion actually happened.
func Remove(path string) (model.Summary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.Summary{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	updated, summary := Splice(string(raw))
	summary.Path = path
	if summary.Status != model.StatusDeleted {
		return summary, nil
	}

	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		return model.Summary{}, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return summary, nil
}
