package notes

import (
	"fmt"
	"time"

	"github.com/calebmoore/sb/internal/text"
)

// Empty returns the filename and content of an ad-hoc inbox note.
// The caller decides the inbox folder and handles name collisions.
func Empty(title, tags string, now time.Time) (filename, content string) {
	filename = text.SanitizeFilename(title) + ".md"

	content = fmt.Sprintf(`# %s

---
**Created**: %s at %s
**Tags**: %s`,
		title,
		now.Format("2006-01-02"), now.Format("15:04"),
		text.FormatHashtags(tags))

	return filename, content
}
