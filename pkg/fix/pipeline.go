// Package fix runs the full mission fix: extract map.pak, strip autosave lines
// from every single-player mission, delete the archive.
package fix

import (
	"fmt"
	"io"
	"os"

	"code.cloudfoundry.org/bytefmt"
	log "github.com/sirupsen/logrus"

	"github.com/mowtools/pkg/mission"
	"github.com/mowtools/pkg/pak"
)

// Console messages.
const (
	NotFoundMessage = "PATH DOES NOT EXIST"
	DoneMessage     = "it's done! \nby: Kanroot and TheIIIrd"
)

// State is a pipeline stage. The pipeline only moves forward.
type State int

const (
	StateStart State = iota
	StateLocated
	StateExpanded
	StateDiscovered
	StateFiltered
	StateCleaned
	StateDone
	StateNotFound
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "START"
	case StateLocated:
		return "LOCATED"
	case StateExpanded:
		return "EXPANDED"
	case StateDiscovered:
		return "DISCOVERED"
	case StateFiltered:
		return "FILTERED"
	case StateCleaned:
		return "CLEANED"
	case StateDone:
		return "DONE"
	case StateNotFound:
		return "NOT_FOUND"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// StageError reports the last state reached before a fatal error.
type StageError struct {
	State State
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("after %s: %v", e.State, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Options configures a pipeline run.
type Options struct {
	BasePath string    // Game directory containing resource/map.pak
	Out      io.Writer // Console messages (default: os.Stdout)
	Verbose  bool      // Log every extracted entry
}

// Report summarizes a run.
type Report struct {
	State    State
	Archive  pak.Archive
	Extract  pak.Stats
	Missions mission.Folders
	Results  []mission.Result
}

// Changed returns the number of mission files that were rewritten.
func (r Report) Changed() int {
	n := 0
	for _, res := range r.Results {
		if res.Changed() {
			n++
		}
	}
	return n
}

// Run executes the pipeline. A missing archive prints NotFoundMessage and returns
// a report in StateNotFound with a nil error; every other failure is returned as
// a *StageError and leaves the archive in place.
func Run(opts Options) (Report, error) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	report := Report{State: StateStart}

	report.Archive = pak.Locate(opts.BasePath)
	if !report.Archive.Exists {
		fmt.Fprintln(out, NotFoundMessage)
		report.State = StateNotFound
		return report, nil
	}
	report.State = StateLocated
	log.Debugf("Found archive at %s", report.Archive.Path)

	stats, err := pak.Expand(report.Archive.Path, pak.ResourcePath(opts.BasePath), opts.Verbose)
	report.Extract = stats
	if err != nil {
		return report, &StageError{State: report.State, Err: err}
	}
	report.State = StateExpanded
	log.Debugf("Extracted %d files (%s) to %s",
		stats.Files, bytefmt.ByteSize(stats.Bytes), pak.ResourcePath(opts.BasePath))

	report.Missions, err = mission.Discover(opts.BasePath)
	if err != nil {
		return report, &StageError{State: report.State, Err: err}
	}
	report.State = StateDiscovered
	log.Debugf("Found %d missions in %d factions", len(report.Missions), len(report.Missions.Factions()))

	report.Results, err = mission.StripAll(report.Missions)
	if err != nil {
		return report, &StageError{State: report.State, Err: err}
	}
	report.State = StateFiltered
	log.Debugf("Removed autosave triggers from %d of %d mission files", report.Changed(), len(report.Results))

	if err := pak.Remove(report.Archive.Path); err != nil {
		return report, &StageError{State: report.State, Err: err}
	}
	report.State = StateCleaned

	fmt.Fprintln(out, DoneMessage)
	report.State = StateDone
	return report, nil
}
