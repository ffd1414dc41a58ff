package main

// Plan is one offer on the plans tab.
type Plan struct {
	ID          string
	Name        string
	Price       string
	Period      string
	Hours       string
	Description string
	Features    []string
	Popular     bool
}

var plans = []Plan{
	{
		ID: "starter", Name: "Sora Starter", Price: "$30.34", Period: "per line", Hours: "10 hrs",
		Description: "Perfect for light users",
		Features:    []string{"10 hours wireless time", "Basic network coverage", "Standard support", "Data rollover"},
	},
	{
		ID: "middle", Name: "Sora Middle", Price: "$45.99", Period: "per line", Hours: "13 hrs",
		Description: "Great for regular users",
		Features:    []string{"13 hours wireless time", "Enhanced network coverage", "Priority support", "Data rollover", "Hotspot included"},
		Popular:     true,
	},
	{
		ID: "unlimited", Name: "Sora Unlimited Ultra", Price: "Premium", Period: "per line", Hours: "∞ hrs",
		Description: "The #1 unlimited plan",
		Features:    []string{"Unlimited wireless time", "Premium network coverage", "24/7 VIP support", "Unlimited hotspot", "International roaming", "Premium perks"},
	},
	{
		ID: "business", Name: "Sora Business", Price: "Custom", Period: "enterprise", Hours: "Network Provider",
		Description: "Complete wireless network solution",
		Features:    []string{"Wireless network provider", "Custom infrastructure", "Dedicated support team", "SLA guarantees", "Advanced analytics", "White-label options"},
	},
}

func planByID(id string) (Plan, bool) {
	for _, p := range plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}

// Usage is the current billing cycle.
type Usage struct {
	UsedHours  float64
	TotalHours float64
	Plan       string
	RenewalOn  string
	DaysLeft   int
}

func (u Usage) Percent() int {
	if u.TotalHours <= 0 {
		return 0
	}
	return int(u.UsedHours / u.TotalHours * 100)
}

var currentUsage = Usage{
	UsedHours:  3.2,
	TotalHours: 10,
	Plan:       "Sora Starter",
	RenewalOn:  "January 25, 2025",
	DaysLeft:   7,
}

type DailyUsage struct {
	Day   string
	Date  string
	Hours float64
}

var dailyUsage = []DailyUsage{
	{"Mon", "Jan 11", 0.5},
	{"Tue", "Jan 12", 0.8},
	{"Wed", "Jan 13", 0.3},
	{"Thu", "Jan 14", 0.6},
	{"Fri", "Jan 15", 0.4},
	{"Sat", "Jan 16", 0.2},
	{"Sun", "Jan 17", 0.4},
}

// Update is the simulated software update.
var availableUpdate = struct {
	CurrentVersion string
	Version        string
	Size           string
}{
	CurrentVersion: "1.0.0",
	Version:        "1.1.0",
	Size:           "45.2 MB",
}

type moreEntry struct {
	Title    string
	Subtitle string
}

var moreEntries = []moreEntry{
	{"Refer a Friend", "Earn rewards for every referral"},
	{"Sora Rewards", "View your points and benefits"},
	{"Network Status", "Check coverage and network health"},
	{"Family Plans", "Manage family members and shared data"},
	{"Rate Our App", "Share your experience with others"},
	{"Send Feedback", "Help us improve with your suggestions"},
	{"Beta Features", "Try experimental features early"},
	{"Accessibility", "Customize app for better accessibility"},
	{"Privacy Center", "Manage your privacy settings"},
	{"Security Settings", "Two-factor auth and security options"},
	{"Export My Data", "Download your account data"},
}

const (
	demoAccount = "demo@soracellular.com"
	appVersion  = "1.0.0"
	appBuild    = "2025.01.18"
)
