// Package notes renders the markdown content for every note type and
// computes each note's vault-relative path.
package notes

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/calebmoore/sb/internal/text"
	"github.com/calebmoore/sb/internal/vault"
)

// Daily returns the path and content of the daily journal note for a date.
func Daily(now time.Time, tags string) (relPath, content string) {
	date := now.Format("2006-01-02")
	relPath = path.Join(vault.DailyDir, date+".md")

	content = fmt.Sprintf(`# %s

## Daily Goals

- [ ] 15 minutes of touch typing practice
- [ ] Review and prioritize tasks for the day
- [ ] Read three pages of the Bible
- [ ] 3 Sporcle quizzes

## Today's Focus

- [ ]

## What I Did

### Work/Projects

### Personal

### Learning

## Reflections

### What went well?

### What could be improved?

### Tomorrow's priorities

-

## Captured Ideas

<!-- Quick thoughts, links, or ideas to process later -->

---

**Created**: %s at %s
**Energy Level**: /10
**Mood**:
**Weather**:
**Tags**: #daily-journal #reflection %s
**Yesterday**: [[%s]]
**Tomorrow**: [[%s]]

---
`,
		date,
		date, now.Format("15:04"),
		text.FormatHashtags(tags),
		now.AddDate(0, 0, -1).Format("2006-01-02"),
		now.AddDate(0, 0, 1).Format("2006-01-02"))

	return relPath, content
}

// weekKey formats a date as its ISO week note name, e.g. "07-2025".
// The same convention is used for the filename and the adjacent-week
// links, so a note always links to the notes the neighboring dates
// would produce.
func weekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%02d-%d", week, year)
}

// Weekly returns the path and content of the weekly review note.
func Weekly(now time.Time, tags string) (relPath, content string) {
	thisWeek := weekKey(now)
	relPath = path.Join(vault.WeeklyDir, thisWeek+".md")

	content = fmt.Sprintf(`# Week %s Review

**Review Date**: %s
**Energy This Week**: /10
**Overall Rating**: /10

## Inbox Processing

### Items to Process:

- [ ] Note 1 → Move to:
- [ ] Note 2 → Move to:
- [ ] Note 3 → Move to:

## Projects Review

### Active Projects Status:

| Project | Status | Next Action | Priority |
|---------|--------|-------------|----------|
|         | 🟢/🟡/🔴 |            | H/M/L    |
|         | 🟢/🟡/🔴 |            | H/M/L    |

### Projects to Archive:

- [ ] Completed project 1
- [ ] Stalled project 2

## Areas Review

### Health Check:

| Area | Current State | Needs Attention? | Action |
|------|---------------|------------------|--------|
|      | 🟢/🟡/🔴      | Yes/No          |        |
|      | 🟢/🟡/🔴      | Yes/No          |        |

## Wins This Week

-

## Challenges & Lessons

### What didn't go as planned?

### What did I learn?

### What would I do differently?

## Next Week Planning

### Top 3 Priorities:

1.
2.
3.

### Calendar & Commitments Review:

<!-- Check upcoming meetings, deadlines, appointments -->

### Areas Needing Focus:

-
-

## Learning & Growth

### This week I learned:

### Books/Articles read:

### Skills practiced:

---

**Tags**: #weekly-review #reflection %s
**Previous Week**: [[%s]]
**Next Week**: [[%s]]`,
		noteTitle(thisWeek),
		now.Format("2006-01-02"),
		text.FormatHashtags(tags),
		weekKey(now.AddDate(0, 0, -7)),
		weekKey(now.AddDate(0, 0, 7)))

	return relPath, content
}

// Monthly returns the path and content of the monthly reflection note.
func Monthly(now time.Time, tags string) (relPath, content string) {
	thisMonth := now.Format("Jan-2006")
	relPath = path.Join(vault.MonthlyDir, thisMonth+".md")

	content = fmt.Sprintf(`# %s Monthly Reflection

**Review Date**: %s
**Overall Month Rating**: /10

## Month at a Glance

**Theme for the Month**:
**Major Events**:
-
-
-

## Projects Review

### Completed Projects:

- ✅ Project 1 - *Impact/Outcome*
- ✅ Project 2 - *Impact/Outcome*

### Ongoing Projects Progress:

| Project | Started | Progress | Blockers | Target Completion |
|---------|---------|----------|----------|-------------------|
|         |         | %%        |          |                   |

### Projects to Archive/Pause:

- [ ] Project → Reason for archiving
- [ ] Project → Reason for pausing

## Areas Deep Dive

### Health & Wellness

**Rating**: /10
**Highlights**:
**Improvements needed**:
**Next month focus**:

### Work/Career

**Rating**: /10
**Major accomplishments**:
**Challenges faced**:
**Skills developed**:
**Next month focus**:

### Relationships

**Rating**: /10
**Quality time with**:
**Relationships that need attention**:
**Next month focus**:

### Learning & Growth

**Rating**: /10
**New skills/knowledge**:
**Books completed**:
**Courses/Training**:
**Next month focus**:

### Finances

**Rating**: /10
**Financial goals progress**:
**Major expenses**:
**Areas for improvement**:
**Next month focus**:

### Personal/Spiritual

**Rating**: /10
**Spiritual practices**:
**Personal development**:
**Values alignment**:
**Next month focus**:

## Knowledge System Review

### Notes Created:

### Most Valuable Notes:

-
-
-

### System Improvements:

**What's working well**:

**What needs adjustment**:

**Changes to implement**:

## Celebrations & Gratitude

### Proud moments:

1.
2.
3.

### Grateful for:

-
-
-

## Lessons & Insights

### Key learnings this month:

### Patterns I noticed:

### Habits that served me well:

### Habits to change:

## Next Month Planning

### Theme/Focus for Next Month:

### Top 3 Goals:

1.
2.
3.

### Areas requiring attention:

-
-

### Experiments to try:

-
-

### Important dates/events:

-
-

## Metrics & Tracking

<!-- Add any personal metrics you track -->

### Health Metrics:

**Exercise days**: /30
**Sleep average**: hours
**Energy level average**: /10

### Productivity Metrics:

**Deep work hours**:
**Books read**:
**Articles/papers read**:

### Relationship Metrics:

**Quality time with family**:
**Social activities**:
**New connections made**:

---

**Tags**: #monthly-review #reflection %s
**Previous Month**: [[%s]]
**Next Month**: [[%s]]`,
		noteTitle(thisMonth),
		now.Format("2006-01-02"),
		text.FormatHashtags(tags),
		now.AddDate(0, 0, -31).Format("Jan-2006"),
		now.AddDate(0, 0, 28).Format("Jan-2006"))

	return relPath, content
}

// noteTitle turns a note key like "07-2025" or "Feb-2025" into the
// spaced heading form "07 - 2025".
func noteTitle(key string) string {
	return strings.ReplaceAll(key, "-", " - ")
}
