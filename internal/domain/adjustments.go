package domain

import "fmt"

// Option is one choice of a pre-snap setting.
type Option struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// DefensiveAdjustments are the pre-snap settings saved with a defensive play.
//
// Shading is empty when no DB leverage is chosen.
type DefensiveAdjustments struct {
	Shading     string      `json:"shading,omitempty"`
	Coaching    Coaching    `json:"coaching"`
	GoodAgainst GoodAgainst `json:"good_against"`
	QuickTip    string      `json:"quick_tip"`
}

// Coaching holds the independently defaulted coaching-adjustment fields.
type Coaching struct {
	SafetyDepth   string `json:"safety_depth"`
	SafetyWidth   string `json:"safety_width"`
	CBAlignment   string `json:"cb_alignment"`
	ManAlign      string `json:"man_align"`
	DLShift       string `json:"dl_shift"`
	LBShift       string `json:"lb_shift"`
	DLStunt       string `json:"dl_stunt"`
	ZoneDrop      string `json:"zone_drop"`
	RPOKey        string `json:"rpo_key"`
	OptionKey     string `json:"option_key"`
	CoverageShell string `json:"coverage_shell"`
}

// GoodAgainst records the offensive looks a defensive play handles well.
type GoodAgainst struct {
	Formations TagSet `json:"formations"`
	Routes     TagSet `json:"routes"`
}

// DefaultAdjustments returns adjustments with every coaching field at its
// default and nothing recorded.
func DefaultAdjustments() DefensiveAdjustments {
	return DefensiveAdjustments{
		Coaching: DefaultCoaching(),
	}
}

// DefaultCoaching returns the play-called coaching settings.
func DefaultCoaching() Coaching {
	return Coaching{
		SafetyDepth:   "default",
		SafetyWidth:   "normal",
		CBAlignment:   "default",
		ManAlign:      "default",
		DLShift:       "default",
		LBShift:       "default",
		DLStunt:       "none",
		ZoneDrop:      "0",
		RPOKey:        "conservative",
		OptionKey:     "qb",
		CoverageShell: "none",
	}
}

// Validate checks every field against its option catalog.
func (a DefensiveAdjustments) Validate() error {
	if a.Shading != "" && !hasOption(ShadingOptions, a.Shading) {
		return fmt.Errorf("%w: shading %q", ErrInvalidValue, a.Shading)
	}
	for _, f := range a.Coaching.fields() {
		if !hasOption(f.options, f.value) {
			return fmt.Errorf("%w: coaching %s %q", ErrInvalidValue, f.name, f.value)
		}
	}
	return nil
}

// WithDefaults fills empty coaching fields with their defaults.
func (c Coaching) WithDefaults() Coaching {
	d := DefaultCoaching()
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&c.SafetyDepth, d.SafetyDepth)
	fill(&c.SafetyWidth, d.SafetyWidth)
	fill(&c.CBAlignment, d.CBAlignment)
	fill(&c.ManAlign, d.ManAlign)
	fill(&c.DLShift, d.DLShift)
	fill(&c.LBShift, d.LBShift)
	fill(&c.DLStunt, d.DLStunt)
	fill(&c.ZoneDrop, d.ZoneDrop)
	fill(&c.RPOKey, d.RPOKey)
	fill(&c.OptionKey, d.OptionKey)
	fill(&c.CoverageShell, d.CoverageShell)
	return c
}

// Set assigns the coaching field named by its JSON key.
func (c *Coaching) Set(name, value string) error {
	for _, f := range c.fields() {
		if f.name != name {
			continue
		}
		if !hasOption(f.options, value) {
			return fmt.Errorf("%w: coaching %s %q", ErrInvalidValue, name, value)
		}
		*f.ptr = value
		return nil
	}
	return fmt.Errorf("%w: unknown coaching field %q", ErrInvalidValue, name)
}

type coachingField struct {
	name    string
	value   string
	ptr     *string
	options []Option
}

func (c *Coaching) fields() []coachingField {
	return []coachingField{
		{"safety_depth", c.SafetyDepth, &c.SafetyDepth, SafetyDepthOptions},
		{"safety_width", c.SafetyWidth, &c.SafetyWidth, SafetyWidthOptions},
		{"cb_alignment", c.CBAlignment, &c.CBAlignment, CBAlignmentOptions},
		{"man_align", c.ManAlign, &c.ManAlign, ManAlignOptions},
		{"dl_shift", c.DLShift, &c.DLShift, DLShiftOptions},
		{"lb_shift", c.LBShift, &c.LBShift, LBShiftOptions},
		{"dl_stunt", c.DLStunt, &c.DLStunt, DLStuntOptions},
		{"zone_drop", c.ZoneDrop, &c.ZoneDrop, ZoneDropOptions},
		{"rpo_key", c.RPOKey, &c.RPOKey, RPOKeyOptions},
		{"option_key", c.OptionKey, &c.OptionKey, OptionKeyOptions},
		{"coverage_shell", c.CoverageShell, &c.CoverageShell, CoverageShellOptions},
	}
}

func hasOption(opts []Option, id string) bool {
	for _, o := range opts {
		if o.ID == id {
			return true
		}
	}
	return false
}

// Option catalogs for each adjustment field.
var (
	ShadingOptions = []Option{
		{"underneath", "Underneath", "Drags, slants, curls, quick passes"},
		{"overtop", "Over Top", "Streaks, corners, deep posts"},
		{"inside", "Inside", "Slants, posts, in-breaking routes"},
		{"outside", "Outside", "Out routes, corners, fades"},
	}
	SafetyDepthOptions = []Option{
		{"close", "Close", "Run support, underneath help"},
		{"default", "Default", "Balanced coverage"},
		{"deep", "Deep", "Prevent big plays"},
	}
	SafetyWidthOptions = []Option{
		{"pinch", "Pinch", "Inside run support, A/B gaps"},
		{"normal", "Normal", "Balanced alignment"},
		{"wide", "Wide", "Outside coverage help"},
	}
	CBAlignmentOptions = []Option{
		{"press", "Press", "Tight jam at line, disrupt timing"},
		{"bail", "Bail", "Backpedal off line, soft coverage"},
		{"default", "Default", "Play-called alignment"},
	}
	ManAlignOptions = []Option{
		{"default", "Default", "Standard alignment"},
		{"strong", "Strong", "Align to strong side"},
		{"weak", "Weak", "Align to weak side"},
		{"field", "Field", "Align to wide side"},
		{"boundary", "Boundary", "Align to short side"},
	}
	DLShiftOptions = []Option{
		{"default", "Default", "Base alignment"},
		{"pinch", "Pinch", "Collapse inside gaps"},
		{"spread", "Spread", "Widen for pass rush lanes"},
		{"slantLeft", "Slant Left", "Angle left pre-snap"},
		{"slantRight", "Slant Right", "Angle right pre-snap"},
	}
	LBShiftOptions = []Option{
		{"default", "Default", "Base alignment"},
		{"pinch", "Pinch", "Tighten to inside gaps"},
		{"spread", "Spread", "Widen to outside"},
	}
	DLStuntOptions = []Option{
		{"none", "None", "No stunt"},
		{"texas", "Texas", "DE loops inside"},
		{"texasForeman", "Texas Foreman", "DE penetrates middle"},
		{"texas4Man", "Texas 4 Man", "Full line stunt"},
		{"crash", "Crash", "DL crashes inside"},
	}
	ZoneDropOptions = []Option{
		{"0", "0", "Default depth"},
		{"5", "5", "5 yards"},
		{"10", "10", "10 yards"},
		{"15", "15", "15 yards"},
		{"20", "20", "20 yards"},
		{"25", "25", "25 yards"},
		{"30", "30", "30 yards"},
	}
	RPOKeyOptions = []Option{
		{"conservative", "Conservative", "Focus on QB, play run first"},
		{"aggressive", "Aggressive", "Jump routes, risk run"},
	}
	OptionKeyOptions = []Option{
		{"qb", "QB", "Contain the quarterback"},
		{"rb", "RB", "Stop the running back"},
		{"pitch", "Pitch", "Take away pitch man"},
	}
	CoverageShellOptions = []Option{
		{"none", "None", "Show true coverage"},
		{"cover2", "Show 2", "Disguise as Cover 2"},
		{"cover3", "Show 3", "Disguise as Cover 3"},
		{"cover4", "Show 4", "Disguise as Cover 4"},
	}
)

// CommonFormations are suggested values for GoodAgainst.Formations.
var CommonFormations = []string{
	"Gun Bunch", "Gun Trips TE", "Gun Empty", "Trips", "Bunch", "Spread",
	"I-Form", "Singleback", "Pistol", "Shotgun", "Goal Line", "Wildcat",
	"Heavy", "Doubles", "Tight Slots",
}

// CommonRoutes are suggested values for GoodAgainst.Routes.
var CommonRoutes = []string{
	"4 Verts", "Mesh", "Levels", "Crossers", "Corner Routes", "Out Routes",
	"Slants", "Drags", "Post Routes", "Wheel Routes", "Texas Routes",
	"Slot Fade", "RPO", "Screen", "PA Crossers", "Curl Flats",
}
