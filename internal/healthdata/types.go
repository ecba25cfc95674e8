// Package healthdata is the read-only mock biomarker store backing the
// dashboard endpoints. Fixtures stand in for an external lab pipeline;
// everything here is initialized once and immutable afterwards, safe for
// unsynchronized concurrent reads.
package healthdata

// BiomarkerStatus values.
const (
	StatusInRange    = "in_range"
	StatusOutOfRange = "out_of_range"
	StatusOther      = "other"
)

type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

type User struct {
	ID            string  `json:"id"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	PreferredName string  `json:"preferredName"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	BiologicalSex string  `json:"biologicalSex"`
	DateOfBirth   string  `json:"dateOfBirth"`
	Address       Address `json:"address"`
	Membership    string  `json:"membership"`
	MemberSince   string  `json:"memberSince"`
}

type StatusCounts struct {
	InRange    int `json:"inRange"`
	OutOfRange int `json:"outOfRange"`
	Other      int `json:"other"`
}

type Category struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Description    string       `json:"description"`
	BiomarkerCount int          `json:"biomarkerCount"`
	StatusCounts   StatusCounts `json:"statusCounts"`
}

type Range struct {
	Low         *float64 `json:"low"`
	High        *float64 `json:"high"`
	OptimalLow  *float64 `json:"optimalLow"`
	OptimalHigh *float64 `json:"optimalHigh"`
}

type HistoryPoint struct {
	Date   string  `json:"date"`
	Value  float64 `json:"value"`
	Status string  `json:"status"`
}

type Biomarker struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	ShortName    string         `json:"shortName,omitempty"`
	Value        *float64       `json:"value"`
	Unit         string         `json:"unit"`
	Status       string         `json:"status"`
	CategoryID   string         `json:"categoryId"`
	Range        Range          `json:"range"`
	Description  string         `json:"description"`
	WhyItMatters string         `json:"whyItMatters,omitempty"`
	History      []HistoryPoint `json:"history"`
	LastUpdated  string         `json:"lastUpdated"`
	Improving    bool           `json:"improving,omitempty"`
}

type Note struct {
	ID           string `json:"id"`
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	Content      string `json:"content"`
	Date         string `json:"date"`
}

type Recommendation struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Type               string   `json:"type"`
	LinkedBiomarkerIDs []string `json:"linkedBiomarkerIds"`
}

type RecommendationGroup struct {
	Type        string           `json:"type"`
	DisplayName string           `json:"displayName"`
	Items       []Recommendation `json:"items"`
}

type LabVisit struct {
	ID               string `json:"id"`
	Date             string `json:"date"`
	Location         string `json:"location"`
	Address          string `json:"address"`
	City             string `json:"city"`
	State            string `json:"state"`
	ConfirmationCode string `json:"confirmationCode"`
	Completed        bool   `json:"completed"`
}

type Requisition struct {
	ID        string     `json:"id"`
	Type      string     `json:"type"`
	Status    string     `json:"status"`
	CreatedAt string     `json:"createdAt"`
	Visits    []LabVisit `json:"visits"`
	PDFURLs   []string   `json:"pdfUrls"`
}

type BiologicalAge struct {
	Value        float64 `json:"value"`
	CalendarAge  float64 `json:"calendarAge"`
	Difference   float64 `json:"difference"`
	CalculatedAt string  `json:"calculatedAt"`
}

type QuestionnaireSection struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Required  bool   `json:"required"`
	Completed bool   `json:"completed"`
}

type QuestionnaireStatus struct {
	RequiredComplete bool                   `json:"requiredComplete"`
	AllComplete      bool                   `json:"allComplete"`
	Sections         []QuestionnaireSection `json:"sections"`
}

type Summary struct {
	Total      int `json:"total"`
	InRange    int `json:"inRange"`
	OutOfRange int `json:"outOfRange"`
	Other      int `json:"other"`
}

type PendingAction struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Dashboard struct {
	User              User            `json:"user"`
	BiologicalAge     BiologicalAge   `json:"biologicalAge"`
	BiomarkersSummary Summary         `json:"biomarkersSummary"`
	Categories        []Category      `json:"categories"`
	RecentNotes       []Note          `json:"recentNotes"`
	PendingActions    []PendingAction `json:"pendingActions"`
}
