// Package main seeds the content store with course and service package
// documents. The upserts key on slug, so the command is idempotent and
// safe to re-run after content edits.
package main

import (
	"log"

	"gorm.io/gorm"

	"hexadigitall/internal/config"
	"hexadigitall/internal/models"
	"hexadigitall/internal/repositories"
	"hexadigitall/internal/services/pricing"
)

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer repositories.CloseDB()

	db := repositories.DB

	if err := seedCourses(db); err != nil {
		log.Fatalf("failed to seed courses: %v", err)
	}
	if err := seedServicePackages(db); err != nil {
		log.Fatalf("failed to seed service packages: %v", err)
	}
	if err := seedIndividualServices(db); err != nil {
		log.Fatalf("failed to seed individual services: %v", err)
	}

	log.Println("seed complete")
}

type courseSeed struct {
	category    string
	slug        string
	title       string
	summary     string
	level       string
	duration    string
	priceUSD    float64
	monthlyUSD  float64 // for mentoring-style courses billed monthly
	maxStudents int
}

func seedCourses(db *gorm.DB) error {
	categories := []models.CourseCategory{
		{Slug: "development", Name: "Software Development", Description: "Hands-on programming and engineering courses."},
		{Slug: "business", Name: "Business & Career", Description: "Professional skills for the modern workplace."},
		{Slug: "marketing", Name: "Digital Marketing", Description: "Grow an audience and convert it."},
	}
	categoryIDs := map[string]uint{}
	for _, c := range categories {
		var row models.CourseCategory
		if err := db.Where(models.CourseCategory{Slug: c.Slug}).Assign(c).FirstOrCreate(&row).Error; err != nil {
			return err
		}
		categoryIDs[c.Slug] = row.ID
	}

	courses := []courseSeed{
		{
			category: "development", slug: "web-development-bootcamp",
			title:    "Web Development Bootcamp",
			summary:  "HTML, CSS, JavaScript, and a deployed capstone project.",
			level:    "beginner", duration: "12 weeks", priceUSD: 400, maxStudents: 25,
		},
		{
			category: "development", slug: "mobile-app-development",
			title:    "Mobile App Development",
			summary:  "Build and ship a cross-platform mobile app.",
			level:    "intermediate", duration: "10 weeks", priceUSD: 450, maxStudents: 20,
		},
		{
			category: "development", slug: "data-analytics-fundamentals",
			title:    "Data Analytics Fundamentals",
			summary:  "Spreadsheets to SQL to dashboards.",
			level:    "beginner", duration: "8 weeks", priceUSD: 350, maxStudents: 25,
		},
		{
			category: "business", slug: "project-management-essentials",
			title:    "Project Management Essentials",
			summary:  "Plan, run, and land projects with confidence.",
			level:    "beginner", duration: "6 weeks", priceUSD: 250, maxStudents: 30,
		},
		{
			category: "business", slug: "career-mentoring",
			title:    "One-on-One Career Mentoring",
			summary:  "Monthly mentoring with a senior practitioner.",
			level:    "all", duration: "ongoing", priceUSD: 180, monthlyUSD: 180, maxStudents: 10,
		},
		{
			category: "marketing", slug: "digital-marketing-launchpad",
			title:    "Digital Marketing Launchpad",
			summary:  "Social, search, and email fundamentals.",
			level:    "beginner", duration: "6 weeks", priceUSD: 150, maxStudents: 40,
		},
	}

	for _, c := range courses {
		course := models.Course{
			Slug:        c.slug,
			Title:       c.title,
			Summary:     c.summary,
			Level:       c.level,
			Duration:    c.duration,
			PriceUSD:    c.priceUSD,
			PriceNGN:    pricing.NGNFromUSD(c.priceUSD),
			MaxStudents: c.maxStudents,
			CategoryID:  categoryIDs[c.category],
		}
		if c.monthlyUSD > 0 {
			course.HourlyRateUSD = pricing.HourlyFromMonthly(c.monthlyUSD)
		}
		var row models.Course
		if err := db.Where(models.Course{Slug: c.slug}).Assign(course).FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedServicePackages(db *gorm.DB) error {
	groups := []models.ServicePackageGroup{
		{
			Slug:        "business-plan-and-logo",
			Name:        "Business Plan & Logo",
			Description: "Everything a new business needs on paper: plan, identity, and collateral.",
			Tiers: []models.ServicePackageTier{
				{
					Name: "Starter", Tier: models.TierBasic, PriceUSD: 150,
					Billing: models.BillingOneTime, DeliveryTime: "1 week", Position: 1,
					Features: models.StringList{"5-page business plan", "Logo (2 concepts)", "One revision round"},
				},
				{
					Name: "Growth", Tier: models.TierStandard, PriceUSD: 300,
					Billing: models.BillingOneTime, DeliveryTime: "2 weeks", Position: 2, Popular: true,
					Features: models.StringList{"15-page business plan", "Logo (4 concepts)", "Brand color palette", "Three revision rounds"},
				},
				{
					Name: "Investor Ready", Tier: models.TierPremium, PriceUSD: 500,
					Billing: models.BillingOneTime, DeliveryTime: "3 weeks", Position: 3,
					Features: models.StringList{"Full financial projections", "Pitch deck", "Complete brand kit", "Unlimited revisions for 30 days"},
				},
			},
		},
		{
			Slug:        "social-media-marketing",
			Name:        "Social Media Marketing",
			Description: "Managed content and growth across your channels.",
			Tiers: []models.ServicePackageTier{
				{
					Name: "Presence", Tier: models.TierBasic, PriceUSD: 100,
					Billing: models.BillingMonthly, DeliveryTime: "ongoing", Position: 1,
					Features: models.StringList{"8 posts per month", "One platform", "Monthly report"},
				},
				{
					Name: "Momentum", Tier: models.TierStandard, PriceUSD: 250,
					Billing: models.BillingMonthly, DeliveryTime: "ongoing", Position: 2, Popular: true,
					Features: models.StringList{"20 posts per month", "Three platforms", "Community management", "Weekly report"},
				},
				{
					Name: "Dominance", Tier: models.TierEnterprise, PriceUSD: 600,
					Billing: models.BillingMonthly, DeliveryTime: "ongoing", Position: 3,
					Features: models.StringList{"Daily posting", "All platforms", "Paid campaign management", "Dedicated strategist"},
				},
			},
		},
		{
			Slug:        "profile-and-portfolio",
			Name:        "Profile & Portfolio Building",
			Description: "Stand out to recruiters and clients.",
			Tiers: []models.ServicePackageTier{
				{
					Name: "Refresh", Tier: models.TierBasic, PriceUSD: 75,
					Billing: models.BillingOneTime, DeliveryTime: "3 days", Position: 1,
					Features: models.StringList{"CV rewrite", "LinkedIn profile polish"},
				},
				{
					Name: "Showcase", Tier: models.TierStandard, PriceUSD: 200,
					Billing: models.BillingOneTime, DeliveryTime: "1 week", Position: 2, Popular: true,
					Features: models.StringList{"Everything in Refresh", "One-page portfolio site", "Personal brand guidance"},
				},
			},
		},
	}

	for _, g := range groups {
		var row models.ServicePackageGroup
		err := db.Where(models.ServicePackageGroup{Slug: g.Slug}).
			Assign(models.ServicePackageGroup{Name: g.Name, Description: g.Description}).
			FirstOrCreate(&row).Error
		if err != nil {
			return err
		}
		for _, t := range g.Tiers {
			t.GroupID = row.ID
			var tierRow models.ServicePackageTier
			err := db.Where(models.ServicePackageTier{GroupID: row.ID, Tier: t.Tier}).
				Assign(t).
				FirstOrCreate(&tierRow).Error
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func seedIndividualServices(db *gorm.DB) error {
	services := []models.IndividualService{
		{
			Slug: "cv-revamp", Name: "CV Revamp",
			Description: "A professional rewrite of your CV with recruiter feedback.",
			PriceUSD:    50, Billing: models.BillingOneTime, DeliveryTime: "3 days",
			Features: models.StringList{"ATS-friendly formatting", "Two revision rounds"},
		},
		{
			Slug: "pitch-deck", Name: "Pitch Deck Design",
			Description: "An investor-ready deck for your raise.",
			PriceUSD:    150, Billing: models.BillingOneTime, DeliveryTime: "1 week",
			Features: models.StringList{"Up to 15 slides", "Narrative coaching session"},
		},
		{
			Slug: "website-audit", Name: "Website Audit",
			Description: "Performance, SEO, and conversion review of your site.",
			PriceUSD:    120, Billing: models.BillingOneTime, DeliveryTime: "5 days",
			Features: models.StringList{"Technical report", "Prioritized fix list", "Walkthrough call"},
		},
	}

	for _, s := range services {
		var row models.IndividualService
		if err := db.Where(models.IndividualService{Slug: s.Slug}).Assign(s).FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}
	return nil
}
