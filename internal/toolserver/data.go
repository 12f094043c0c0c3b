package toolserver

// Sample domain data served by the tool endpoints. Static by design: the
// tool services simulate the operator's backoffice systems.

type LineItem struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Notes       string  `json:"notes"`
}

type Bill struct {
	Month    int        `json:"month"`
	Details  []LineItem `json:"details"`
	Currency string     `json:"currency"`
}

var bills = []Bill{
	{
		Month: 11,
		Details: []LineItem{
			{Description: "base", Amount: 20.0, Notes: "Base charge for the month"},
			{Description: "roaming", Amount: 50.0, Notes: "Roaming charges in Spain incurred during the month for 21GB of data"},
			{Description: "amazon", Amount: 10.0, Notes: "Amazon Prime subscription for the month"},
			{Description: "spotify", Amount: 10.0, Notes: "Spotify subscription for the month"},
		},
		Currency: "EUR",
	},
	{
		Month: 10,
		Details: []LineItem{
			{Description: "base", Amount: 20.0, Notes: "Base charge for the month"},
			{Description: "roaming", Amount: 0.0, Notes: "No roaming charges incurred during the month"},
			{Description: "amazon", Amount: 40.0, Notes: "Amazon Prime subscription for the month, includes purchasing of two movies"},
			{Description: "spotify", Amount: 10.0, Notes: "Spotify subscription for the month"},
		},
		Currency: "EUR",
	},
	{
		Month: 9,
		Details: []LineItem{
			{Description: "base", Amount: 20.0, Notes: "Base charge for the month. New base charge due to price increase"},
			{Description: "roaming", Amount: 0.0, Notes: "No roaming charges incurred during the month"},
			{Description: "amazon", Amount: 10.0, Notes: "Amazon Prime subscription for the month"},
			{Description: "spotify", Amount: 10.0, Notes: "Spotify subscription for the month"},
		},
		Currency: "EUR",
	},
	{
		Month: 8,
		Details: []LineItem{
			{Description: "base", Amount: 10.0, Notes: "Base charge for the month"},
			{Description: "roaming", Amount: 0.0, Notes: "No roaming charges incurred during the month"},
			{Description: "amazon", Amount: 10.0, Notes: "Amazon Prime subscription for the month"},
		},
		Currency: "EUR",
	},
}

type RoamingRate struct {
	Country  string  `json:"country"`
	Month    int     `json:"month"`
	Capacity float64 `json:"capacity"`
	Unit     string  `json:"unit"`
	Cost     float64 `json:"cost"`
	Currency string  `json:"currency"`
}

var roamingRates = []RoamingRate{
	{Country: "Romania", Month: 11, Capacity: 1.0, Unit: "GB", Cost: 3.99, Currency: "EUR"},
	{Country: "Spain", Month: 11, Capacity: 3.0, Unit: "GB", Cost: 5.99, Currency: "EUR"},
	{Country: "Belgium", Month: 11, Capacity: 2.0, Unit: "GB", Cost: 4.99, Currency: "EUR"},
	{Country: "Romania", Month: 10, Capacity: 1.0, Unit: "GB", Cost: 3.99, Currency: "EUR"},
	{Country: "Spain", Month: 10, Capacity: 3.0, Unit: "GB", Cost: 5.99, Currency: "EUR"},
	{Country: "Belgium", Month: 10, Capacity: 2.0, Unit: "GB", Cost: 4.99, Currency: "EUR"},
	{Country: "Romania", Month: 9, Capacity: 1.0, Unit: "GB", Cost: 1.99, Currency: "EUR"},
	{Country: "Spain", Month: 9, Capacity: 3.0, Unit: "GB", Cost: 5.99, Currency: "EUR"},
	{Country: "Belgium", Month: 9, Capacity: 2.0, Unit: "GB", Cost: 4.99, Currency: "EUR"},
}

type TariffPlan struct {
	Name             string   `json:"name"`
	ServiceTypes     []string `json:"service_types"`
	PricingStructure string   `json:"pricing_structure"`
	Price            float64  `json:"price"`
	ValidityDays     int      `json:"validity_days"`
	DataLimitGB      float64  `json:"data_limit_gb"`
	VoiceMinutes     int      `json:"voice_minutes"`
	SMSLimit         int      `json:"sms_limit"`
	NetworkAccess    []string `json:"network_access"`
	Notes            string   `json:"notes"`
}

var tariffPlans = []TariffPlan{
	{
		Name:             "SmartConnect 5G Max",
		ServiceTypes:     []string{"voice", "data", "sms", "roaming"},
		PricingStructure: "postpaid",
		Price:            49.99,
		ValidityDays:     30,
		DataLimitGB:      50,
		VoiceMinutes:     1000,
		SMSLimit:         500,
		NetworkAccess:    []string{"4G", "5G"},
		Notes:            "Add-ons: International Calling Pack (9.99), Streaming Bundle (5.99). 20% off for first 3 months.",
	},
	{
		Name:             "FlexiConnect 4G Prepaid",
		ServiceTypes:     []string{"voice", "data", "sms"},
		PricingStructure: "prepaid",
		Price:            14.99,
		ValidityDays:     28,
		DataLimitGB:      10,
		VoiceMinutes:     300,
		SMSLimit:         100,
		NetworkAccess:    []string{"4G"},
		Notes:            "Add-on: Data Booster 5GB (4.99, 7 days). Bonus 2GB on first recharge.",
	},
	{
		Name:             "HybridSaver 5G+",
		ServiceTypes:     []string{"voice", "data", "sms"},
		PricingStructure: "hybrid",
		Price:            29.99,
		ValidityDays:     30,
		DataLimitGB:      25,
		VoiceMinutes:     600,
		SMSLimit:         250,
		NetworkAccess:    []string{"4G", "5G"},
		Notes:            "Add-on: Weekend Unlimited 5G (4.99, 7 days).",
	},
}

const faqText = `Q: Can I use my plan abroad?
A: Yes, roaming is available in all EU countries. Data allowances apply per
the roaming rate card for the destination country.

Q: How do I check my bill?
A: Bills are issued monthly and can be queried per month. Line items cover
the base charge, roaming and any subscriptions on the account.

Q: Can I change my tariff plan mid-month?
A: Plan changes take effect at the start of the next billing period.
Prepaid plans can be switched after the current validity window ends.

Q: What happens when I run out of data?
A: Browsing speed is reduced until the next period unless a data add-on is
purchased.`
