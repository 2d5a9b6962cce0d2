package stack

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/crewforge/crewforge/pkg/llm"
	"github.com/crewforge/crewforge/pkg/services"
)

// seedTemplate is one entry of the built-in stack corpus.
type seedTemplate struct {
	Title       string
	Backend     string
	Frontend    string
	Database    string
	Description string
}

// seedCorpus covers the common project shapes. Descriptions are what get
// embedded, so they read like project briefs rather than marketing copy.
var seedCorpus = []seedTemplate{
	{
		Title:       "saas-dashboard",
		Backend:     "FastAPI",
		Frontend:    "React",
		Database:    "PostgreSQL",
		Description: "Multi-tenant SaaS web application with user accounts, subscription billing, an admin dashboard, charts and usage analytics, and a REST API.",
	},
	{
		Title:       "ecommerce-store",
		Backend:     "Django",
		Frontend:    "Next.js",
		Database:    "PostgreSQL",
		Description: "Online store with a product catalog, shopping cart, checkout and payment processing, order management, inventory tracking, and email notifications.",
	},
	{
		Title:       "marketplace",
		Backend:     "FastAPI",
		Frontend:    "Next.js",
		Database:    "PostgreSQL",
		Description: "Two-sided marketplace connecting buyers and sellers with listings, search and filters, messaging between parties, reviews, and escrow-style payments.",
	},
	{
		Title:       "content-platform",
		Backend:     "Node.js Express",
		Frontend:    "Next.js",
		Database:    "MongoDB",
		Description: "Publishing platform with articles or posts, a rich-text editor, comments, tags and categories, full-text search, and an SEO-friendly public site.",
	},
	{
		Title:       "booking-system",
		Backend:     "FastAPI",
		Frontend:    "React",
		Database:    "PostgreSQL",
		Description: "Appointment and reservation system with availability calendars, time-slot booking, reminders, cancellations, and staff or resource scheduling.",
	},
	{
		Title:       "social-app",
		Backend:     "Node.js Express",
		Frontend:    "React Native",
		Database:    "PostgreSQL",
		Description: "Social application with user profiles, follows, a feed of posts, likes and comments, direct messages, and push notifications on mobile.",
	},
	{
		Title:       "internal-tool",
		Backend:     "FastAPI",
		Frontend:    "React",
		Database:    "PostgreSQL",
		Description: "Internal business tool for a team: CRUD over company records, role-based access, CSV import and export, audit history, and simple reporting.",
	},
	{
		Title:       "realtime-collab",
		Backend:     "Node.js Express",
		Frontend:    "React",
		Database:    "PostgreSQL",
		Description: "Real-time collaborative application with shared documents or boards, live presence, WebSocket updates, and conflict-free concurrent editing.",
	},
	{
		Title:       "api-service",
		Backend:     "FastAPI",
		Frontend:    "",
		Database:    "PostgreSQL",
		Description: "Headless API service: REST endpoints with authentication, rate limiting, webhooks, background jobs, and OpenAPI documentation. No user-facing frontend.",
	},
	{
		Title:       "landing-site",
		Backend:     "",
		Frontend:    "Next.js",
		Database:    "",
		Description: "Marketing or landing website with static pages, a contact form, a blog, and analytics. Mostly content, minimal backend logic.",
	},
}

// Seed embeds and upserts the built-in template corpus. Existing rows are
// refreshed in place, so re-running at startup is safe. Individual embed
// failures skip that template rather than aborting the seed.
func Seed(ctx context.Context, client llm.Client, templates *services.TemplateService, logger *slog.Logger) error {
	var failed int
	for _, s := range seedCorpus {
		embedding, err := client.Embed(ctx, s.Description)
		if err != nil {
			failed++
			logger.Warn("failed to embed seed template", "template", s.Title, "error", err)
			continue
		}
		if err := templates.Upsert(ctx, services.UpsertInput{
			Title:       s.Title,
			Backend:     s.Backend,
			Frontend:    s.Frontend,
			Database:    s.Database,
			Description: s.Description,
			Embedding:   embedding,
		}); err != nil {
			return fmt.Errorf("failed to seed template %s: %w", s.Title, err)
		}
	}
	if failed == len(seedCorpus) {
		return fmt.Errorf("all %d seed templates failed to embed", failed)
	}
	logger.Info("stack templates seeded", "total", len(seedCorpus), "failed", failed)
	return nil
}
