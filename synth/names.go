// SPDX-License-Identifier: MIT

package synth

import "strconv"

var startupNames = []string{
	"PayTech Solutions", "EduLearn", "HealthCare Plus", "FoodDelivery Express",
	"FinanceApp", "TravelBuddy", "ShopEasy", "RideShare India", "AgriTech Innovations",
	"CloudServe", "AI Analytics", "GameZone", "MusicStream", "FitTrack", "HomeServices",
	"LegalTech", "PropertyFinder", "JobPortal Pro", "SocialConnect", "MediaHub",
	"EnergyEfficient", "WasteManagement Co", "FashionForward", "BeautyBox", "PetCare",
	"SportsFit", "EventPlanner", "WeddingBells", "AutoParts Direct", "ElectroMart",
	"FurnitureWorld", "BookMyService", "QuickGrocery", "PharmEasy Online", "DoctorConnect",
	"LabTest Now", "Insurance Plus", "LoanSimple", "InvestSmart", "CryptoTrade India",
	"BlockchainHub", "IoT Solutions", "RoboticsTech", "DroneDelivery", "SpaceTech Ventures",
	"BioTech Labs", "NanoTech India", "CleanEnergy Co", "SolarPower Solutions", "WindEnergy Tech",
}

var industries = []string{
	"Fintech", "E-commerce", "Healthtech", "Edtech", "Foodtech",
	"Enterprise Software", "Consumer Services", "Logistics", "Travel & Hospitality", "Real Estate",
	"Media & Entertainment", "Gaming", "Fashion & Lifestyle", "Agritech", "CleanTech",
	"Automotive", "Hardware", "IoT", "AI/ML", "Blockchain",
	"Biotechnology", "Renewable Energy", "Analytics", "Marketing Tech", "HR Tech",
	"Cybersecurity", "Cloud Services", "SaaS", "Mobile Apps", "Social Media",
}

var cities = []struct{ city, state string }{
	{"Bangalore", "Karnataka"}, {"Mumbai", "Maharashtra"}, {"Delhi", "Delhi"},
	{"Gurgaon", "Haryana"}, {"Hyderabad", "Telangana"}, {"Pune", "Maharashtra"},
	{"Chennai", "Tamil Nadu"}, {"Noida", "Uttar Pradesh"}, {"Kolkata", "West Bengal"},
	{"Ahmedabad", "Gujarat"}, {"Jaipur", "Rajasthan"}, {"Surat", "Gujarat"},
	{"Lucknow", "Uttar Pradesh"}, {"Chandigarh", "Chandigarh"}, {"Kochi", "Kerala"},
	{"Indore", "Madhya Pradesh"}, {"Nagpur", "Maharashtra"}, {"Bhopal", "Madhya Pradesh"},
	{"Visakhapatnam", "Andhra Pradesh"}, {"Coimbatore", "Tamil Nadu"},
}

var fundingRounds = []string{
	"Seed", "Angel", "Pre-Series A", "Series A", "Series B",
	"Series C", "Series D", "Series E", "Bridge Round", "Debt Financing",
	"Private Equity", "Growth Stage",
}

var investors = []string{
	"Sequoia Capital", "Accel Partners", "Tiger Global", "SoftBank Vision Fund",
	"Nexus Venture Partners", "Matrix Partners", "Lightspeed Venture Partners",
	"Kalaari Capital", "Blume Ventures", "Chiratae Ventures",
	"SAIF Partners", "Elevation Capital", "Steadview Capital", "Falcon Edge",
	"Alpha Wave Incubation", "General Catalyst", "Insight Partners", "DST Global",
	"Naspers", "Tencent", "Alibaba", "Amazon", "Google Ventures",
	"Y Combinator", "500 Startups", "Techstars", "AngelList India",
}

// StartupName is the default name scheme. Indices past the built-in list
// wrap around with a numeric suffix, e.g. 0→"PayTech Solutions",
// 50→"PayTech Solutions 2". Panics if idx < 0.
func StartupName(idx int) string {
	if idx < 0 {
		panic("synth: StartupName(idx<0)")
	}
	base := startupNames[idx%len(startupNames)]
	if gen := idx / len(startupNames); gen > 0 {
		return base + " " + strconv.Itoa(gen+1)
	}

	return base
}
