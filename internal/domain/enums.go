package domain

// Urgency classifies a project by days remaining until its deadline.
type Urgency string

const (
	UrgencyUrgent     Urgency = "urgent"
	UrgencyNotUrgent  Urgency = "not_urgent"
	UrgencyNoDeadline Urgency = "no_deadline"
)

// Importance classifies a project by its declared priority tag.
type Importance string

const (
	ImportanceImportant Importance = "important"
	ImportanceRoutine   Importance = "routine"
	ImportanceLow       Importance = "low"
)

// Quadrant is one of the six decision-matrix buckets produced by crossing
// urgency with importance.
type Quadrant string

const (
	QuadrantDoFirst   Quadrant = "q1" // urgent + important
	QuadrantSchedule  Quadrant = "q2" // not urgent + important
	QuadrantQuickWins Quadrant = "q3" // urgent + routine
	QuadrantOrganize  Quadrant = "q4" // not urgent + routine
	QuadrantReview    Quadrant = "q5" // urgent + low
	QuadrantDrop      Quadrant = "q6" // not urgent + low
)

// AllQuadrants lists the quadrants in canonical display order.
var AllQuadrants = []Quadrant{
	QuadrantDoFirst, QuadrantSchedule,
	QuadrantQuickWins, QuadrantOrganize,
	QuadrantReview, QuadrantDrop,
}

// Recognized priority tags. Anything else normalizes to PriorityNormal.
const (
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
	PriorityLow    = "low"
	PriorityNormal = "normal"
)

// DeadlineTier buckets a deadline for display coloring. The critical tier
// uses a tighter 3-day threshold than the 7-day urgency classification;
// the two thresholds are intentionally independent.
type DeadlineTier int

const (
	TierNone     DeadlineTier = iota // no deadline
	TierSafe                        // more than 7 days out
	TierSoon                        // 4-7 days out
	TierCritical                    // overdue, due today, or within 3 days
)
