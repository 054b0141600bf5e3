package catalog

// Every price in these tables is authored in USD. Display currencies
// are always derived by the currency service, never stored here.

var platformBases = []PlatformBase{
	{
		ID:          "web",
		Name:        "Web Application",
		Description: "A responsive web application built on a modern stack, deployed and production-ready.",
		PriceUSD:    1999,
		CoreFeatures: []string{
			"Responsive design for all screen sizes",
			"Up to 10 custom pages",
			"Content management integration",
			"Contact forms and lead capture",
			"Basic SEO setup",
			"SSL and hosting configuration",
		},
		DeliveryTime: "4-6 weeks",
	},
	{
		ID:          "mobile",
		Name:        "Mobile Application",
		Description: "A cross-platform mobile app for iOS and Android from a single codebase.",
		PriceUSD:    3499,
		CoreFeatures: []string{
			"iOS and Android from one codebase",
			"Push notifications",
			"Offline-first data handling",
			"App store submission support",
			"Crash reporting and analytics hooks",
		},
		DeliveryTime: "6-10 weeks",
	},
	{
		ID:          "web_mobile",
		Name:        "Web + Mobile Bundle",
		Description: "Web application and companion mobile app sharing one backend and design system.",
		PriceUSD:    4999,
		CoreFeatures: []string{
			"Everything in Web Application",
			"Everything in Mobile Application",
			"Shared backend and API",
			"Unified design system",
			"Single admin dashboard",
		},
		DeliveryTime: "8-12 weeks",
	},
}

var techFeatures = []TechFeature{
	{
		ID:          "auth",
		Name:        "User Accounts & Authentication",
		Description: "Sign-up, login, password reset, and profile management.",
		PriceUSD:    300,
	},
	{
		ID:          "payments",
		Name:        "Payment Processing",
		Description: "Card payments, receipts, and payout-ready merchant setup.",
		PriceUSD:    400,
	},
	{
		ID:          "cms",
		Name:        "Advanced Content Management",
		Description: "Structured content types with editorial workflows.",
		PriceUSD:    250,
	},
	{
		ID:          "booking",
		Name:        "Booking & Scheduling",
		Description: "Calendar availability, reservations, and reminders.",
		PriceUSD:    300,
	},
	{
		ID:          "chat",
		Name:        "Live Chat / Messaging",
		Description: "Real-time chat between users or with support staff.",
		PriceUSD:    350,
	},
	{
		ID:          "analytics",
		Name:        "Analytics Dashboard",
		Description: "Usage metrics, funnels, and exportable reports.",
		PriceUSD:    250,
	},
	{
		ID:          "api",
		Name:        "Third-party API Integration",
		Description: "Integration with an external service of your choice.",
		PriceUSD:    200,
	},
	{
		ID:          "multilingual",
		Name:        "Multi-language Support",
		Description: "Localized content and language switching.",
		PriceUSD:    200,
	},
}

var serviceAddons = []ServiceAddon{
	{
		ID:           "maintenance",
		Name:         "Monthly Maintenance",
		Description:  "Updates, backups, monitoring, and priority fixes.",
		PriceUSD:     150,
		BillingCycle: BillingMonthly,
	},
	{
		ID:           "training",
		Name:         "Team Training Session",
		Description:  "Hands-on onboarding for your staff on the delivered system.",
		PriceUSD:     200,
		BillingCycle: BillingOneTime,
	},
	{
		ID:           "seo",
		Name:         "SEO & Performance Audit",
		Description:  "Technical SEO review with a prioritized action plan.",
		PriceUSD:     250,
		BillingCycle: BillingOneTime,
	},
	{
		ID:           "content",
		Name:         "Content Creation Pack",
		Description:  "Copywriting and imagery for your launch pages.",
		PriceUSD:     300,
		BillingCycle: BillingOneTime,
	},
	{
		ID:           "branding",
		Name:         "Logo & Brand Kit",
		Description:  "Logo, color palette, and brand usage guide.",
		PriceUSD:     350,
		BillingCycle: BillingOneTime,
	},
}
