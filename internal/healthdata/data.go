package healthdata

// Fixture data standing in for a lab-result ingestion pipeline.

func f(v float64) *float64 { return &v }

var fixtureUser = User{
	ID:            "user-1",
	FirstName:     "Keith",
	LastName:      "Warter",
	PreferredName: "Keith",
	Email:         "keith@example.com",
	Phone:         "+1 805 720 6173",
	BiologicalSex: "male",
	DateOfBirth:   "1988-06-15",
	Address: Address{
		Street: "669 Kirkwood Ave SE",
		City:   "Atlanta",
		State:  "GA",
		Zip:    "30316",
	},
	Membership:  "active",
	MemberSince: "2025-05-05",
}

type categoryMeta struct {
	id          string
	name        string
	description string
}

// Display order of the category list.
var fixtureCategories = []categoryMeta{
	{"thyroid", "Thyroid", "Thyroid hormone levels and function"},
	{"autoimmunity", "Autoimmunity", "Immune system self-targeting markers"},
	{"blood", "Blood", "Red blood cells, hemoglobin, and blood health"},
	{"electrolytes", "Electrolytes", "Essential minerals for body function"},
	{"toxins", "Environmental Toxins", "Heavy metals and environmental exposures"},
	{"heart", "Heart", "Cardiovascular health markers"},
	{"immune", "Immune Regulation", "Immune system function and inflammation"},
	{"kidney", "Kidney", "Kidney function and waste filtration"},
	{"liver", "Liver", "Liver enzymes and detoxification"},
	{"male-health", "Male Health", "Male reproductive hormone balance"},
	{"female-health", "Female Health", "Female reproductive hormone balance"},
	{"metabolic", "Metabolic", "Blood sugar and metabolism"},
	{"nutrients", "Nutrients", "Vitamins, minerals, and essential nutrients"},
	{"pancreas", "Pancreas", "Digestive enzyme production"},
	{"stress", "Stress & Aging", "Stress hormones and aging markers"},
	{"urine", "Urine", "Urinalysis results"},
}

var fixtureBiomarkers = []Biomarker{
	// Thyroid
	{
		ID: "tsh", Name: "Thyroid Stimulating Hormone", ShortName: "TSH",
		Value: f(2.1), Unit: "mIU/L", Status: StatusInRange, CategoryID: "thyroid",
		Range:        Range{Low: f(0.4), High: f(4.0), OptimalLow: f(1.0), OptimalHigh: f(2.5)},
		Description:  "Controls thyroid hormone production",
		WhyItMatters: "TSH tells your thyroid how much hormone to make. High levels may indicate an underactive thyroid, while low levels may suggest overactivity.",
		History: []HistoryPoint{
			{Date: "2025-05-14", Value: 2.1, Status: StatusInRange},
			{Date: "2024-11-10", Value: 2.4, Status: StatusInRange},
		},
		LastUpdated: "2025-05-14", Improving: true,
	},
	{
		ID: "t3-free", Name: "Free T3",
		Value: f(3.2), Unit: "pg/mL", Status: StatusInRange, CategoryID: "thyroid",
		Range:       Range{Low: f(2.3), High: f(4.2), OptimalLow: f(3.0), OptimalHigh: f(4.0)},
		Description: "Active thyroid hormone",
		History:     []HistoryPoint{{Date: "2025-05-14", Value: 3.2, Status: StatusInRange}},
		LastUpdated: "2025-05-14",
	},
	{
		ID: "t4-free", Name: "Free T4",
		Value: f(1.3), Unit: "ng/dL", Status: StatusInRange, CategoryID: "thyroid",
		Range:       Range{Low: f(0.8), High: f(1.8), OptimalLow: f(1.0), OptimalHigh: f(1.5)},
		Description: "Main thyroid hormone",
		History:     []HistoryPoint{{Date: "2025-05-14", Value: 1.3, Status: StatusInRange}},
		LastUpdated: "2025-05-14",
	},

	// Heart
	{
		ID: "ldl", Name: "LDL Cholesterol", ShortName: "LDL",
		Value: f(142), Unit: "mg/dL", Status: StatusOutOfRange, CategoryID: "heart",
		Range:        Range{Low: f(0), High: f(100), OptimalLow: f(0), OptimalHigh: f(70)},
		Description:  `Low-density lipoprotein, often called "bad" cholesterol`,
		WhyItMatters: "High LDL can build up in artery walls, increasing risk of heart disease and stroke.",
		History: []HistoryPoint{
			{Date: "2025-05-14", Value: 142, Status: StatusOutOfRange},
			{Date: "2024-11-10", Value: 156, Status: StatusOutOfRange},
		},
		LastUpdated: "2025-05-14", Improving: true,
	},
	{
		ID: "hdl", Name: "HDL Cholesterol", ShortName: "HDL",
		Value: f(52), Unit: "mg/dL", Status: StatusInRange, CategoryID: "heart",
		Range:       Range{Low: f(40), High: f(100), OptimalLow: f(60), OptimalHigh: f(100)},
		Description: `High-density lipoprotein, "good" cholesterol`,
		History:     []HistoryPoint{{Date: "2025-05-14", Value: 52, Status: StatusInRange}},
		LastUpdated: "2025-05-14",
	},
	{
		ID: "triglycerides", Name: "Triglycerides",
		Value: f(98), Unit: "mg/dL", Status: StatusInRange, CategoryID: "heart",
		Range:       Range{Low: f(0), High: f(150), OptimalLow: f(0), OptimalHigh: f(100)},
		Description: "Type of fat in your blood",
		History:     []HistoryPoint{{Date: "2025-05-14", Value: 98, Status: StatusInRange}},
		LastUpdated: "2025-05-14",
	},
	{
		ID: "apob", Name: "Apolipoprotein B", ShortName: "ApoB",
		Value: f(118), Unit: "mg/dL", Status: StatusOutOfRange, CategoryID: "heart",
		Range:        Range{Low: f(0), High: f(90), OptimalLow: f(0), OptimalHigh: f(70)},
		Description:  "Protein that carries cholesterol in the blood",
		WhyItMatters: "ApoB is considered a more accurate predictor of heart disease risk than LDL alone.",
		History:      []HistoryPoint{{Date: "2025-05-14", Value: 118, Status: StatusOutOfRange}},
		LastUpdated:  "2025-05-14",
	},
	{
		ID: "hscrp", Name: "High-Sensitivity C-Reactive Protein", ShortName: "hs-CRP",
		Value: f(2.8), Unit: "mg/L", Status: StatusOutOfRange, CategoryID: "heart",
		Range:        Range{Low: f(0), High: f(1.0), OptimalLow: f(0), OptimalHigh: f(0.5)},
		Description:  "Marker of inflammation in the body",
		WhyItMatters: "Elevated hs-CRP indicates inflammation which can damage blood vessels.",
		History:      []HistoryPoint{{Date: "2025-05-14", Value: 2.8, Status: StatusOutOfRange}},
		LastUpdated:  "2025-05-14",
	},

	// Blood
	{
		ID: "rbc", Name: "Red Blood Cells", ShortName: "RBC",
		Value: f(4.9), Unit: "M/uL", Status: StatusInRange, CategoryID: "blood",
		Range:       Range{Low: f(4.2), High: f(5.8), OptimalLow: f(4.5), OptimalHigh: f(5.5)},
		Description: "Oxygen-carrying cells",
		History:     []HistoryPoint{{Date: "2025-05-14", Value: 4.9, Status: StatusInRange}},
		LastUpdated: "2025-05-14",
	},
	{
		ID: "hemoglobin", Name: "Hemoglobin", ShortName: "Hb",
		Value: f(15.2), Unit: "g/dL", Status: StatusInRange, CategoryID: "blood",
		Range:       Range{Low: f(13.5), High: f(17.5), OptimalLow: f(14.0), OptimalHigh: f(16.5)},
		Description: "Oxygen-carrying protein in red blood cells",
		History:     []HistoryPoint{{Date: "2025-05-14", Value: 15.2, Status: StatusInRange}},
		LastUpdated: "2025-05-14",
	},
	{
		ID: "hematocrit", Name: "Hematocrit", ShortName: "Hct",
		Value: f(45), Unit: "%", Status: StatusInRange, CategoryID: "blood",
		Range:       Range{Low: f(38), High: f(50), OptimalLow: f(40), OptimalHigh: f(48)},
		Description: "Percentage of blood that is red blood cells",
		History:     []HistoryPoint{{Date: "2025-05-14", Value: 45, Status: StatusInRange}},
		LastUpdated: "2025-05-14",
	},
	{
		ID: "platelets", Name: "Platelets",
		Value: f(245), Unit: "K/uL", Status: StatusInRange, CategoryID: "blood",
		Range:       Range{Low: f(150), High: f(400), OptimalLow: f(175), OptimalHigh: f(350)},
		Description: "Cells that help blood clot",
		History:     []HistoryPoint{{Date: "2025-05-14", Value: 245, Status: StatusInRange}},
		LastUpdated: "2025-05-14",
	},

	// Metabolic
	{
		ID: "glucose", Name: "Glucose",
		Value: f(92), Unit: "mg/dL", Status: StatusInRange, CategoryID: "metabolic",
		Range:       Range{Low: f(65), High: f(99), OptimalLow: f(70), OptimalHigh: f(90)},
		Description: "Blood sugar level",
		History:     []HistoryPoint{{Date: "2025-05-14", Value: 92, Status: StatusInRange}},
		LastUpdated: "2025-05-14",
	},
	{
		ID: "hba1c", Name: "Hemoglobin A1c", ShortName: "HbA1c",
		Value: f(5.4), Unit: "%", Status: StatusInRange, CategoryID: "metabolic",
		Range:       Range{Low: f(4.0), High: f(5.6), OptimalLow: f(4.5), OptimalHigh: f(5.3)},
		Description: "Average blood sugar over 2-3 months",
		History:     []HistoryPoint{{Date: "2025-05-14", Value: 5.4, Status: StatusInRange}},
		LastUpdated: "2025-05-14",
	},
	{
		ID: "insulin", Name: "Insulin",
		Value: f(12.5), Unit: "uIU/mL", Status: StatusOutOfRange, CategoryID: "metabolic",
		Range:        Range{Low: f(2.0), High: f(19.6), OptimalLow: f(2.0), OptimalHigh: f(8.0)},
		Description:  "Hormone that regulates blood sugar",
		WhyItMatters: "Elevated insulin can be an early sign of insulin resistance, even when blood sugar is normal.",
		History:      []HistoryPoint{{Date: "2025-05-14", Value: 12.5, Status: StatusOutOfRange}},
		LastUpdated:  "2025-05-14",
	},

	// Nutrients
	{
		ID: "vitamin-d", Name: "Vitamin D, 25-Hydroxy", ShortName: "Vitamin D",
		Value: f(23), Unit: "ng/mL", Status: StatusOutOfRange, CategoryID: "nutrients",
		Range:        Range{Low: f(30), High: f(100), OptimalLow: f(50), OptimalHigh: f(80)},
		Description:  "Essential vitamin for bone health and immune function",
		WhyItMatters: "Low vitamin D is linked to bone weakness, immune dysfunction, and mood issues.",
		History:      []HistoryPoint{{Date: "2025-05-14", Value: 23, Status: StatusOutOfRange}},
		LastUpdated:  "2025-05-14",
	},
	{
		ID: "b12", Name: "Vitamin B12",
		Value: f(485), Unit: "pg/mL", Status: StatusInRange, CategoryID: "nutrients",
		Range:       Range{Low: f(200), High: f(900), OptimalLow: f(500), OptimalHigh: f(800)},
		Description: "Essential for nerve function and red blood cell formation",
		History:     []HistoryPoint{{Date: "2025-05-14", Value: 485, Status: StatusInRange}},
		LastUpdated: "2025-05-14",
	},
	{
		ID: "homocysteine", Name: "Homocysteine",
		Value: f(12.7), Unit: "umol/L", Status: StatusOutOfRange, CategoryID: "nutrients",
		Range:        Range{Low: f(0), High: f(10.4), OptimalLow: f(0), OptimalHigh: f(7.0)},
		Description:  "Amino acid linked to heart and brain health",
		WhyItMatters: "Elevated homocysteine can stress blood vessels and is associated with higher cardiovascular risk.",
		History:      []HistoryPoint{{Date: "2025-05-14", Value: 12.7, Status: StatusOutOfRange}},
		LastUpdated:  "2025-05-14",
	},
	{
		ID: "omega3", Name: "Omega-3 Index",
		Value: f(4.0), Unit: "%", Status: StatusOutOfRange, CategoryID: "nutrients",
		Range:        Range{Low: f(8), High: f(12), OptimalLow: f(8), OptimalHigh: f(12)},
		Description:  "Percentage of omega-3 fatty acids in red blood cells",
		WhyItMatters: "Low omega-3 levels are associated with inflammation and cardiovascular risk.",
		History:      []HistoryPoint{{Date: "2025-05-14", Value: 4.0, Status: StatusOutOfRange}},
		LastUpdated:  "2025-05-14",
	},

	// Liver
	{
		ID: "alt", Name: "ALT",
		Value: f(28), Unit: "U/L", Status: StatusInRange, CategoryID: "liver",
		Range:       Range{Low: f(0), High: f(44), OptimalLow: f(0), OptimalHigh: f(25)},
		Description: "Liver enzyme",
		History:     []HistoryPoint{{Date: "2025-05-14", Value: 28, Status: StatusInRange}},
		LastUpdated: "2025-05-14",
	},
	{
		ID: "ast", Name: "AST",
		Value: f(24), Unit: "U/L", Status: StatusInRange, CategoryID: "liver",
		Range:       Range{Low: f(0), High: f(40), OptimalLow: f(0), OptimalHigh: f(25)},
		Description: "Liver enzyme",
		History:     []HistoryPoint{{Date: "2025-05-14", Value: 24, Status: StatusInRange}},
		LastUpdated: "2025-05-14",
	},

	// Kidney
	{
		ID: "creatinine", Name: "Creatinine",
		Value: f(1.1), Unit: "mg/dL", Status: StatusInRange, CategoryID: "kidney",
		Range:       Range{Low: f(0.7), High: f(1.3), OptimalLow: f(0.8), OptimalHigh: f(1.2)},
		Description: "Waste product filtered by kidneys",
		History:     []HistoryPoint{{Date: "2025-05-14", Value: 1.1, Status: StatusInRange}},
		LastUpdated: "2025-05-14",
	},
	{
		ID: "egfr", Name: "eGFR",
		Value: f(95), Unit: "mL/min/1.73m2", Status: StatusInRange, CategoryID: "kidney",
		Range:       Range{Low: f(90), High: f(120), OptimalLow: f(90), OptimalHigh: f(120)},
		Description: "Estimated kidney filtration rate",
		History:     []HistoryPoint{{Date: "2025-05-14", Value: 95, Status: StatusInRange}},
		LastUpdated: "2025-05-14",
	},

	// Male Health
	{
		ID: "testosterone", Name: "Testosterone, Total",
		Value: f(585), Unit: "ng/dL", Status: StatusInRange, CategoryID: "male-health",
		Range:       Range{Low: f(264), High: f(916), OptimalLow: f(500), OptimalHigh: f(800)},
		Description: "Primary male sex hormone",
		History:     []HistoryPoint{{Date: "2025-05-14", Value: 585, Status: StatusInRange}},
		LastUpdated: "2025-05-14",
	},
	{
		ID: "estradiol", Name: "Estradiol",
		Value: f(48), Unit: "pg/mL", Status: StatusOutOfRange, CategoryID: "male-health",
		Range:        Range{Low: f(10), High: f(40), OptimalLow: f(20), OptimalHigh: f(35)},
		Description:  "Estrogen hormone",
		WhyItMatters: "Elevated estradiol in men can affect mood, energy, and body composition.",
		History:      []HistoryPoint{{Date: "2025-05-14", Value: 48, Status: StatusOutOfRange}},
		LastUpdated:  "2025-05-14",
	},

	// Stress
	{
		ID: "cortisol", Name: "Cortisol, AM",
		Value: f(14.2), Unit: "ug/dL", Status: StatusInRange, CategoryID: "stress",
		Range:       Range{Low: f(6.2), High: f(19.4), OptimalLow: f(10), OptimalHigh: f(18)},
		Description: "Primary stress hormone",
		History:     []HistoryPoint{{Date: "2025-05-14", Value: 14.2, Status: StatusInRange}},
		LastUpdated: "2025-05-14",
	},
	{
		ID: "dheas", Name: "DHEA-S",
		Value: f(320), Unit: "ug/dL", Status: StatusInRange, CategoryID: "stress",
		Range:       Range{Low: f(138), High: f(475), OptimalLow: f(250), OptimalHigh: f(400)},
		Description: "Hormone precursor related to aging and stress",
		History:     []HistoryPoint{{Date: "2025-05-14", Value: 320, Status: StatusInRange}},
		LastUpdated: "2025-05-14",
	},
}

var fixtureNotes = []Note{
	{
		ID: "note-thyroid", CategoryID: "thyroid", CategoryName: "Thyroid",
		Content: "Your thyroid hormones are within normal ranges, indicating that your thyroid is functioning properly. This suggests that your metabolism, energy, and mood are likely well-regulated.",
		Date:    "2025-06-17",
	},
	{
		ID: "note-heart", CategoryID: "heart", CategoryName: "Heart",
		Content: "Your test results indicate that inflammation and an imbalance in your cholesterol particles may increase your risk for heart issues. An elevated hs-CRP level suggests increased inflammation. Taking proactive measures to improve your cholesterol profile can help reduce your risk.",
		Date:    "2025-06-17",
	},
	{
		ID: "note-metabolic", CategoryID: "metabolic", CategoryName: "Metabolic",
		Content: "Your blood sugar and HbA1c indicate efficient blood sugar control. However, your insulin level is higher than optimal, which can be an early sign of insulin resistance. Adjustments in diet and exercise habits may help optimize metabolic health.",
		Date:    "2025-06-17",
	},
	{
		ID: "note-nutrients", CategoryID: "nutrients", CategoryName: "Nutrients",
		Content: "Your nutritional profile indicates areas where adjustments may enhance your overall health. Low vitamin D, elevated homocysteine, and low Omega-3 levels suggest opportunities to improve through diet and supplementation.",
		Date:    "2025-06-17",
	},
}

var fixtureRecommendations = []RecommendationGroup{
	{
		Type: "supplement", DisplayName: "Supplements",
		Items: []Recommendation{
			{ID: "rec-1", Name: "Omega-3 fatty acids", Type: "supplement", LinkedBiomarkerIDs: []string{"omega3", "hscrp", "ldl"}},
			{ID: "rec-2", Name: "Vitamin D3", Type: "supplement", LinkedBiomarkerIDs: []string{"vitamin-d"}},
			{ID: "rec-3", Name: "Coenzyme Q10 (ubiquinol)", Type: "supplement", LinkedBiomarkerIDs: []string{"ldl", "apob"}},
			{ID: "rec-4", Name: "Berberine", Type: "supplement", LinkedBiomarkerIDs: []string{"insulin", "ldl", "glucose"}},
			{ID: "rec-5", Name: "B-Complex with Methylfolate", Type: "supplement", LinkedBiomarkerIDs: []string{"homocysteine", "b12"}},
		},
	},
	{
		Type: "food", DisplayName: "Foods",
		Items: []Recommendation{
			{ID: "rec-6", Name: "Fatty fish (salmon, mackerel, sardines)", Type: "food", LinkedBiomarkerIDs: []string{"omega3", "vitamin-d"}},
			{ID: "rec-7", Name: "Leafy greens (spinach, kale)", Type: "food", LinkedBiomarkerIDs: []string{"homocysteine"}},
			{ID: "rec-8", Name: "Nuts and seeds", Type: "food", LinkedBiomarkerIDs: []string{"ldl", "hdl"}},
			{ID: "rec-9", Name: "Olive oil", Type: "food", LinkedBiomarkerIDs: []string{"ldl", "hscrp"}},
		},
	},
	{
		Type: "lifestyle", DisplayName: "Lifestyle",
		Items: []Recommendation{
			{ID: "rec-10", Name: "Regular aerobic exercise (30 min, 5x/week)", Type: "lifestyle", LinkedBiomarkerIDs: []string{"insulin", "ldl", "hdl"}},
			{ID: "rec-11", Name: "Strength training (2-3x/week)", Type: "lifestyle", LinkedBiomarkerIDs: []string{"testosterone", "insulin"}},
			{ID: "rec-12", Name: "Sun exposure (15-20 min daily)", Type: "lifestyle", LinkedBiomarkerIDs: []string{"vitamin-d"}},
			{ID: "rec-13", Name: "Stress management (meditation, sleep)", Type: "lifestyle", LinkedBiomarkerIDs: []string{"cortisol", "hscrp"}},
		},
	},
}

var fixtureRequisitions = []Requisition{
	{
		ID: "req-1", Type: "annual", Status: "completed", CreatedAt: "2025-05-05",
		Visits: []LabVisit{
			{
				ID: "visit-1", Date: "2025-05-06T17:40:00Z",
				Location: "Quest Diagnostics", Address: "1640 Valencia St Ste 1B",
				City: "San Francisco", State: "CA",
				ConfirmationCode: "RDKBPW", Completed: true,
			},
			{
				ID: "visit-2", Date: "2025-05-14T16:40:00Z",
				Location: "Quest Diagnostics", Address: "1640 Valencia St Ste 1B",
				City: "San Francisco", State: "CA",
				ConfirmationCode: "ROBPPS", Completed: true,
			},
		},
		PDFURLs: []string{},
	},
}

var fixtureBiologicalAge = BiologicalAge{
	Value:        34,
	CalendarAge:  36,
	Difference:   -2,
	CalculatedAt: "2025-05-14",
}

var fixtureQuestionnaire = QuestionnaireStatus{
	RequiredComplete: false,
	AllComplete:      false,
	Sections: []QuestionnaireSection{
		{ID: "foundational", Name: "Foundational Health", Required: true},
		{ID: "medical-history", Name: "Medical History", Required: true},
		{ID: "hormone", Name: "Hormone Health", Required: true},
		{ID: "nutrition", Name: "Nutrition", Required: true},
		{ID: "life-experience", Name: "Life Experience", Required: true},
		{ID: "movement", Name: "Movement", Required: true},
		{ID: "sleep", Name: "Sleep", Required: true},
		{ID: "symptom-review", Name: "Symptom Review", Required: true},
		{ID: "family-history", Name: "Family History", Required: false},
		{ID: "early-medical", Name: "Early Medical History", Required: false},
		{ID: "social-history", Name: "Social History", Required: false},
	},
}
