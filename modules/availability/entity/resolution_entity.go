package entity

// ResolutionKind names the layer a resolution was decided by.
type ResolutionKind string

const (
	KindException ResolutionKind = "EXCEPTION"
	KindRegular   ResolutionKind = "REGULAR"
	KindDefault   ResolutionKind = "DEFAULT"
)

// ResolutionStatus is the effective availability of one cell.
type ResolutionStatus string

const (
	StatusAvailable    ResolutionStatus = "AVAILABLE"
	StatusUnavailable  ResolutionStatus = "UNAVAILABLE"
	StatusMixed        ResolutionStatus = "MIXED"
	StatusUnconfigured ResolutionStatus = "UNCONFIGURED"
)

// ResolvedWindow is one time window contributing to a resolution.
type ResolvedWindow struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Status string `json:"status,omitempty"`
}

// DatedResolution pins a resolution to one calendar date inside a
// matrix feed.
type DatedResolution struct {
	Date       string     `json:"date"`
	DayOfWeek  int        `json:"day_of_week"`
	Resolution Resolution `json:"resolution"`
}

// Resolution is the effective state of one cell: which layer decided it,
// the aggregate status, and the windows that contributed. UNCONFIGURED is
// a normal terminal state, not an error.
type Resolution struct {
	Kind    ResolutionKind   `json:"kind"`
	Status  ResolutionStatus `json:"status"`
	Note    string           `json:"note,omitempty"`
	Windows []ResolvedWindow `json:"windows,omitempty"`
}
