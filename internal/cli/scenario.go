package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bnema/tabsuggest/internal/domain/entity"
)

// Scenario is a scripted sequence of tab events and user reactions
// replayed by `tabsuggest simulate`.
type Scenario struct {
	Name string `yaml:"name"`
	// Settle bounds how long each step waits for fetchers to answer.
	Settle time.Duration `yaml:"settle,omitempty"`
	// Fetchers overrides the configured enable flags by fetcher ID.
	Fetchers map[string]bool `yaml:"fetchers,omitempty"`
	Steps    []Step          `yaml:"steps"`
}

// Step is one scenario action. Exactly one field must be set.
type Step struct {
	Open     *OpenStep      `yaml:"open,omitempty"`
	Move     *MoveStep      `yaml:"move,omitempty"`
	Paint    *PaintStep     `yaml:"paint,omitempty"`
	Close    *entity.TabID  `yaml:"close,omitempty"`
	Feedback *FeedbackStep  `yaml:"feedback,omitempty"`
	Wait     *time.Duration `yaml:"wait,omitempty"`
}

// OpenStep opens a tab. Age backdates its creation time.
type OpenStep struct {
	ID        entity.TabID  `yaml:"id"`
	URL       string        `yaml:"url"`
	Title     string        `yaml:"title,omitempty"`
	Referrer  string        `yaml:"referrer,omitempty"`
	Opener    entity.TabID  `yaml:"opener,omitempty"`
	Age       time.Duration `yaml:"age,omitempty"`
	Incognito bool          `yaml:"incognito,omitempty"`
}

// MoveStep moves a tab to a new strip position.
type MoveStep struct {
	ID entity.TabID `yaml:"id"`
	To int          `yaml:"to"`
}

// PaintStep marks a tab's first paint, optionally after a redirect.
type PaintStep struct {
	ID    entity.TabID `yaml:"id"`
	URL   string       `yaml:"url,omitempty"`
	Title string       `yaml:"title,omitempty"`
}

// FeedbackStep answers the suggestion at Index in the latest aggregate.
// Select defaults to the suggested tabs when accepting.
type FeedbackStep struct {
	Index    int                     `yaml:"index"`
	Response entity.FeedbackResponse `yaml:"response"`
	Select   []entity.TabID          `yaml:"select,omitempty"`
}

const defaultSettle = 2 * time.Second

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	if sc.Settle <= 0 {
		sc.Settle = defaultSettle
	}
	return &sc, nil
}

// Validate checks that every step names exactly one action.
func (sc *Scenario) Validate() error {
	if len(sc.Steps) == 0 {
		return errors.New("scenario has no steps")
	}
	var errs []error
	for i, step := range sc.Steps {
		if err := step.validate(); err != nil {
			errs = append(errs, fmt.Errorf("step %d: %w", i+1, err))
		}
	}
	return errors.Join(errs...)
}

func (s Step) validate() error {
	set := 0
	for _, present := range []bool{s.Open != nil, s.Move != nil, s.Paint != nil, s.Close != nil, s.Feedback != nil, s.Wait != nil} {
		if present {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("expected exactly one action, got %d", set)
	}
	switch {
	case s.Open != nil && s.Open.URL == "":
		return errors.New("open: url is required")
	case s.Feedback != nil && !s.Feedback.Response.Valid():
		return fmt.Errorf("feedback: unknown response %q", s.Feedback.Response)
	case s.Feedback != nil && s.Feedback.Index < 0:
		return errors.New("feedback: index must be >= 0")
	case s.Wait != nil && *s.Wait < 0:
		return errors.New("wait: duration must be >= 0")
	}
	return nil
}

// TabID returns the tab a structural step acts on.
func (s Step) TabID() (entity.TabID, bool) {
	switch {
	case s.Open != nil:
		return s.Open.ID, true
	case s.Move != nil:
		return s.Move.ID, true
	case s.Paint != nil:
		return s.Paint.ID, true
	case s.Close != nil:
		return *s.Close, true
	}
	return 0, false
}

// Describe returns a one-line summary of the step.
func (s Step) Describe() string {
	switch {
	case s.Open != nil:
		d := fmt.Sprintf("open tab %d %s", s.Open.ID, s.Open.URL)
		if s.Open.Opener != 0 {
			d += fmt.Sprintf(" from %d", s.Open.Opener)
		}
		if s.Open.Incognito {
			d += " (incognito)"
		}
		return d
	case s.Move != nil:
		return fmt.Sprintf("move tab %d to %d", s.Move.ID, s.Move.To)
	case s.Paint != nil:
		return fmt.Sprintf("first paint of tab %d", s.Paint.ID)
	case s.Close != nil:
		return fmt.Sprintf("close tab %d", *s.Close)
	case s.Feedback != nil:
		return fmt.Sprintf("%s suggestion %d", s.Feedback.Response, s.Feedback.Index)
	case s.Wait != nil:
		return fmt.Sprintf("wait %s", *s.Wait)
	}
	return "noop"
}
