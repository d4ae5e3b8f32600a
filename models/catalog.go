package models

// TrackedIPO is a static catalog entry for the IPO-tracking list
type TrackedIPO struct {
	Symbol   string  `json:"symbol"`
	Name     string  `json:"name"`
	IPOPrice float64 `json:"ipoPrice"`
	IPODate  string  `json:"ipoDate"`
	Sector   string  `json:"sector"`
}

// TrackedCompany is a static catalog entry for the market-cap tracking list
type TrackedCompany struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Sector string `json:"sector"`
}

// FintechIPOs is the IPO-tracking catalog. Loaded at process start, never
// mutated; output order of /stock-prices follows this order.
var FintechIPOs = []TrackedIPO{
	{Symbol: "GLXY", Name: "Galaxy Digital", IPOPrice: 5, IPODate: "Feb 2006", Sector: "Crypto"},
	{Symbol: "ARX", Name: "Accelerant Holdings", IPOPrice: 14, IPODate: "Jul 2025", Sector: "Insurance"},
	{Symbol: "ANTA", Name: "Antalpha Platform", IPOPrice: 10, IPODate: "May 2025", Sector: "Financial Services"},
	{Symbol: "BLSH", Name: "Bullish", IPOPrice: 20, IPODate: "Aug 2025", Sector: "Crypto Exchange"},
	{Symbol: "ETOR", Name: "eToro", IPOPrice: 52, IPODate: "May 2025", Sector: "Trading"},
	{Symbol: "CRCL", Name: "Circle", IPOPrice: 26, IPODate: "Jun 2025", Sector: "Stablecoin"},
	{Symbol: "CHYM", Name: "Chime", IPOPrice: 27, IPODate: "Jun 2025", Sector: "Digital Banking"},
	{Symbol: "GEMI", Name: "Gemini", IPOPrice: 10, IPODate: "Sep 2025", Sector: "Crypto"},
	{Symbol: "NP", Name: "Neptune Insurance", IPOPrice: 20, IPODate: "Oct 2025", Sector: "Insurance"},
	{Symbol: "FIGR", Name: "Figure", IPOPrice: 36, IPODate: "Sep 2025", Sector: "Blockchain Lending"},
	{Symbol: "KLAR", Name: "Klarna", IPOPrice: 21, IPODate: "Sep 2025", Sector: "BNPL"},
	{Symbol: "OS", Name: "OneStream", IPOPrice: 20, IPODate: "Jul 2024", Sector: "Financial Software"},
	{Symbol: "WAY", Name: "Waystar", IPOPrice: 21.50, IPODate: "Jun 2024", Sector: "Healthcare Payments"},
	{Symbol: "SLDE", Name: "Slide Insurance", IPOPrice: 15, IPODate: "Jun 2025", Sector: "Insurtech"},
	{Symbol: "TTAN", Name: "ServiceTitan", IPOPrice: 71, IPODate: "Dec 2024", Sector: "Field Service"},
	{Symbol: "NAVN", Name: "Navan", IPOPrice: 13, IPODate: "Oct 2025", Sector: "Travel & Expense"},
}

// FintechCompanies is the market-capitalization tracking catalog
var FintechCompanies = []TrackedCompany{
	{Symbol: "ARX", Name: "ARX", Sector: "Insurtech"},
	{Symbol: "ADYEN", Name: "ADYEN", Sector: "Payments"},
	{Symbol: "AFRM", Name: "AFRM", Sector: "Banking / Lending"},
	{Symbol: "ALHC", Name: "ALHC", Sector: "Healthcare"},
	{Symbol: "ALKT", Name: "ALKT", Sector: "Banking / Lending"},
	{Symbol: "HKD", Name: "HKD", Sector: "Banking / Lending"},
	{Symbol: "ANTA", Name: "ANTA", Sector: "Blockchain / Crypto"},
	{Symbol: "AVLR", Name: "AVLR", Sector: "GRC"},
	{Symbol: "AVDX", Name: "AVDX", Sector: "CFO Stack Solutions"},
	{Symbol: "BKKT", Name: "BKKT", Sector: "Blockchain / Crypto"},
	{Symbol: "BILL", Name: "BILL", Sector: "CFO Stack Solutions"},
	{Symbol: "BKI", Name: "BKI", Sector: "Mortgage / PropTech"},
	{Symbol: "BL", Name: "BL", Sector: "GRC"},
	{Symbol: "BLND", Name: "BLND", Sector: "Mortgage / PropTech"},
	{Symbol: "XYZ", Name: "XYZ", Sector: "Payments"},
	{Symbol: "CSLT", Name: "CSLT", Sector: "Healthcare"},
	{Symbol: "CBOE", Name: "CBOE", Sector: "Capital Markets"},
	{Symbol: "CHNG", Name: "CHNG", Sector: "Healthcare"},
	{Symbol: "CHYM", Name: "CHYM", Sector: "Banking / Lending"},
	{Symbol: "CRCL", Name: "CRCL", Sector: "Blockchain / Crypto"},
	{Symbol: "CLOV", Name: "CLOV", Sector: "Healthcare"},
	{Symbol: "COIN", Name: "COIN", Sector: "Blockchain / Crypto"},
	{Symbol: "CMRC", Name: "CMRC", Sector: "Payments"},
	{Symbol: "COMP", Name: "COMP", Sector: "Mortgage / PropTech"},
	{Symbol: "CPAY", Name: "CPAY", Sector: "Payments"},
	{Symbol: "COTV", Name: "COTV", Sector: "Healthcare"},
	{Symbol: "COUP", Name: "COUP", Sector: "CFO Stack Solutions"},
	{Symbol: "DAVE", Name: "DAVE", Sector: "Banking / Lending"},
	{Symbol: "DAY", Name: "DAY", Sector: "CFO Stack Solutions"},
	{Symbol: "DH", Name: "DH", Sector: "Healthcare"},
	{Symbol: "DLO", Name: "DLO", Sector: "Payments"},
	{Symbol: "DOMA", Name: "DOMA", Sector: "Mortgage / PropTech"},
	{Symbol: "DCT", Name: "DCT", Sector: "Insurtech"},
	{Symbol: "DNB", Name: "DNB", Sector: "Capital Markets"},
	{Symbol: "ELVT", Name: "ELVT", Sector: "Banking / Lending"},
	{Symbol: "ESMT", Name: "ESMT", Sector: "Vertical SaaS / Embedded Finance"},
	{Symbol: "ETOR", Name: "ETOR", Sector: "Capital Markets"},
	{Symbol: "EVER", Name: "EVER", Sector: "Insurtech"},
	{Symbol: "EVTC", Name: "EVTC", Sector: "Payments"},
	{Symbol: "EXFY", Name: "EXFY", Sector: "CFO Stack Solutions"},
	{Symbol: "FINW", Name: "FINW", Sector: "Banking / Lending"},
	{Symbol: "FDC", Name: "FDC", Sector: "Payments"},
	{Symbol: "FLYW", Name: "FLYW", Sector: "Payments"},
	{Symbol: "FRGE", Name: "FRGE", Sector: "Capital Markets"},
	{Symbol: "GOCO", Name: "GOCO", Sector: "Healthcare"},
	{Symbol: "GDRX", Name: "GDRX", Sector: "Healthcare"},
	{Symbol: "GSKY", Name: "GSKY", Sector: "Mortgage / PropTech"},
	{Symbol: "GWRE", Name: "GWRE", Sector: "Insurtech"},
	{Symbol: "HCAT", Name: "HCAT", Sector: "Healthcare"},
	{Symbol: "HIPO", Name: "HIPO", Sector: "Insurtech"},
	{Symbol: "IIIV", Name: "IIIV", Sector: "Payments"},
	{Symbol: "IBTA", Name: "IBTA", Sector: "Payments"},
	{Symbol: "MRKT", Name: "MRKT", Sector: "Capital Markets"},
	{Symbol: "INOV", Name: "INOV", Sector: "Healthcare"},
	{Symbol: "INTA", Name: "INTA", Sector: "GRC"},
	{Symbol: "INTU", Name: "INTU", Sector: "CFO Stack Solutions"},
	{Symbol: "KSPI", Name: "KSPI", Sector: "Banking / Lending"},
	{Symbol: "LMND", Name: "LMND", Sector: "Insurtech"},
	{Symbol: "LC", Name: "LC", Sector: "Banking / Lending"},
	{Symbol: "LSPD", Name: "LSPD", Sector: "Payments"},
	{Symbol: "LDI", Name: "LDI", Sector: "Mortgage / PropTech"},
	{Symbol: "MRX", Name: "MRX", Sector: "Capital Markets"},
	{Symbol: "MQ", Name: "MQ", Sector: "Payments"},
	{Symbol: "MLNK", Name: "MLNK", Sector: "Banking / Lending"},
	{Symbol: "MB", Name: "MB", Sector: "Vertical SaaS / Embedded Finance"},
	{Symbol: "ML", Name: "ML", Sector: "Banking / Lending"},
	{Symbol: "NCNO", Name: "NCNO", Sector: "Banking / Lending"},
	{Symbol: "NRDS", Name: "NRDS", Sector: "Banking / Lending"},
	{Symbol: "NU", Name: "NU", Sector: "Banking / Lending"},
	{Symbol: "NVEI", Name: "NVEI", Sector: "Payments"},
	{Symbol: "OLO", Name: "OLO", Sector: "Vertical SaaS / Embedded Finance"},
	{Symbol: "ONDK", Name: "ONDK", Sector: "Banking / Lending"},
	{Symbol: "OMF", Name: "OMF", Sector: "Banking / Lending"},
	{Symbol: "OS", Name: "OS", Sector: "GRC"},
	{Symbol: "OPEN", Name: "OPEN", Sector: "Mortgage / PropTech"},
	{Symbol: "OPRT", Name: "OPRT", Sector: "Banking / Lending"},
	{Symbol: "OSCR", Name: "OSCR", Sector: "Healthcare"},
	{Symbol: "PGY", Name: "PGY", Sector: "Banking / Lending"},
	{Symbol: "PAGS", Name: "PAGS", Sector: "Payments"},
	{Symbol: "PAYA", Name: "PAYA", Sector: "Payments"},
	{Symbol: "PAYX", Name: "PAYX", Sector: "CFO Stack Solutions"},
	{Symbol: "PAYC", Name: "PAYC", Sector: "CFO Stack Solutions"},
	{Symbol: "PCTY", Name: "PCTY", Sector: "CFO Stack Solutions"},
	{Symbol: "PAY", Name: "PAY", Sector: "CFO Stack Solutions"},
	{Symbol: "PAYO", Name: "PAYO", Sector: "Payments"},
	{Symbol: "PCOR", Name: "PCOR", Sector: "Vertical SaaS / Embedded Finance"},
	{Symbol: "QTWO", Name: "QTWO", Sector: "Banking / Lending"},
	{Symbol: "QUOT", Name: "QUOT", Sector: "Payments"},
	{Symbol: "RDFN", Name: "RDFN", Sector: "Mortgage / PropTech"},
	{Symbol: "RELY", Name: "RELY", Sector: "Payments"},
	{Symbol: "SALE", Name: "SALE", Sector: "Payments"},
	{Symbol: "RSKD", Name: "RSKD", Sector: "GRC"},
	{Symbol: "HOOD", Name: "HOOD", Sector: "Capital Markets"},
	{Symbol: "RKT", Name: "RKT", Sector: "Mortgage / PropTech"},
	{Symbol: "ROOT", Name: "ROOT", Sector: "Insurtech"},
	{Symbol: "SC", Name: "SC", Sector: "Banking / Lending"},
	{Symbol: "SLQT", Name: "SLQT", Sector: "Insurtech"},
	{Symbol: "TTAN", Name: "TTAN", Sector: "Vertical SaaS / Embedded Finance"},
	{Symbol: "FOUR", Name: "FOUR", Sector: "Payments"},
	{Symbol: "SLDE", Name: "SLDE", Sector: "Insurtech"},
	{Symbol: "SOFI", Name: "SOFI", Sector: "Banking / Lending"},
	{Symbol: "STNE", Name: "STNE", Sector: "Payments"},
	{Symbol: "SYF", Name: "SYF", Sector: "Banking / Lending"},
	{Symbol: "SGE", Name: "SGE", Sector: "CFO Stack Solutions"},
	{Symbol: "TOST", Name: "TOST", Sector: "Vertical SaaS / Embedded Finance"},
	{Symbol: "TW", Name: "TW", Sector: "Capital Markets"},
	{Symbol: "TRU", Name: "TRU", Sector: "GRC"},
	{Symbol: "TNET", Name: "TNET", Sector: "CFO Stack Solutions"},
	{Symbol: "UPST", Name: "UPST", Sector: "Banking / Lending"},
	{Symbol: "VIRT", Name: "VIRT", Sector: "Capital Markets"},
	{Symbol: "WAY", Name: "WAY", Sector: "Healthcare"},
	{Symbol: "WISE", Name: "WISE", Sector: "Payments"},
	{Symbol: "XRO", Name: "XRO", Sector: "CFO Stack Solutions"},
	{Symbol: "XOOM", Name: "XOOM", Sector: "Payments"},
	{Symbol: "XP", Name: "XP", Sector: "Capital Markets"},
	{Symbol: "YDLE", Name: "YDLE", Sector: "Banking / Lending"},
	{Symbol: "ZUO", Name: "ZUO", Sector: "CFO Stack Solutions"},
}

// DefaultSectorColor is the base brand color used for sectors without an
// explicit entry in the color table.
const DefaultSectorColor = "#1C39BB"

var sectorColors = map[string]string{
	"Payments":                         "#1C39BB",
	"Crypto":                           "#7C3AED",
	"Digital Banking":                  "#0891B2",
	"BNPL":                             "#059669",
	"Trading":                          "#DC2626",
	"Financial Software":               "#4C5FBB",
	"Restaurant Tech":                  "#EA580C",
	"B2B Payments":                     "#2563EB",
	"Card Issuing":                     "#7C3AED",
	"AI Lending":                       "#059669",
	"Insurtech":                        "#0891B2",
	"Cross-border":                     "#6366F1",
	"HR & Payroll":                     "#8B5CF6",
	"Insurance Software":               "#14B8A6",
	"Banking Software":                 "#3B82F6",
	"Corporate Payments":               "#1D4ED8",
	"Lending":                          "#10B981",
	"Wealth Tech":                      "#F59E0B",
	"Healthtech":                       "#EC4899",
	"Banking / Lending":                "#2563EB",
	"Healthcare":                       "#EC4899",
	"Blockchain / Crypto":              "#DB2777",
	"GRC":                              "#0EA5E9",
	"CFO Stack Solutions":              "#059669",
	"Mortgage / PropTech":              "#EAB308",
	"Capital Markets":                  "#F59E0B",
	"Vertical SaaS / Embedded Finance": "#6B7280",
}

// SectorColor returns the treemap color for a sector, falling back to the
// base brand color for sectors not in the table.
func SectorColor(sector string) string {
	if color, ok := sectorColors[sector]; ok {
		return color
	}
	return DefaultSectorColor
}
