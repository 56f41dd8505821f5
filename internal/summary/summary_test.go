package summary

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/bethropolis/agentsignore/internal/walker"
	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	infos []string
	warns []string
}

func (r *recordingLogger) Info(format string, args ...any) {
	r.infos = append(r.infos, fmt.Sprintf(format, args...))
}

func (r *recordingLogger) Warn(format string, args ...any) {
	r.warns = append(r.warns, fmt.Sprintf(format, args...))
}

func TestDisplaySkippedItemsSorted(t *testing.T) {
	var out bytes.Buffer
	log := &recordingLogger{}

	DisplaySkippedItems(log, []walker.SkippedItem{
		{Path: "z.log", Reason: walker.ReasonIgnoredRule},
		{Path: "node_modules", Reason: walker.ReasonIgnoredRule, IsDir: true},
	}, &out, false)

	assert.Equal(t,
		"Skipped DIR : node_modules [Ignored (Pattern Rule)]\n"+
			"Skipped FILE: z.log [Ignored (Pattern Rule)]\n",
		out.String())
	assert.Equal(t, "--- Skipped Items (2) ---", log.infos[0])
}

func TestReportUnreadable(t *testing.T) {
	tracker := walker.NewSkippedTracker(2)
	tracker.Track(walker.SkippedItem{Path: "a.log", Reason: walker.ReasonIgnoredRule})
	tracker.Track(walker.SkippedItem{Path: "secret", Reason: walker.ReasonSkippedPermError, IsDir: true, Err: "permission denied"})
	log := &recordingLogger{}

	n := ReportUnreadable(log, tracker)

	assert.Equal(t, 1, n)
	assert.Len(t, log.warns, 1)
	assert.Contains(t, log.warns[0], `"secret"`)
	assert.Equal(t, 0, ReportUnreadable(log, nil))
}
