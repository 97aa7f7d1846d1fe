package view

import "github.com/smarttoystore/dashboard/internal/model"

// Config is everything that distinguishes one screen from another. The
// admin and the four department dashboards are the same component
// instantiated with these five records.
type Config struct {
	Slug        string
	Title       string
	Icon        string
	Description string
	Theme       string
	Category    string // empty for admin: all departments
	Channel     string // subscription name
	Admin       bool
	MaxOrders   int
}

func (c Config) Info() model.DashboardInfo {
	path := "/employee/" + c.Slug
	if c.Admin {
		path = "/admin"
	}

	return model.DashboardInfo{
		Slug:        c.Slug,
		Title:       c.Title,
		Icon:        c.Icon,
		Description: c.Description,
		Theme:       c.Theme,
		Path:        path,
		Admin:       c.Admin,
	}
}

// Dashboards returns the five fixed screens in menu order.
func Dashboards(maxOrders int) []Config {
	return []Config{
		{
			Slug:        "admin",
			Title:       "Admin Dashboard",
			Icon:        "🧸",
			Description: "View all orders and system overview",
			Theme:       "#667eea",
			Channel:     "orders-channel",
			Admin:       true,
			MaxOrders:   maxOrders,
		},
		{
			Slug:        "john-marwin",
			Title:       "John Marwin Ebona",
			Icon:        "🔫",
			Description: "Toy Guns Department",
			Theme:       "#ef4444",
			Category:    model.CategoryToyGuns,
			Channel:     "john-marwin-orders",
			MaxOrders:   maxOrders,
		},
		{
			Slug:        "jannalyn-cruz",
			Title:       "Jannalyn Cruz",
			Icon:        "🦸",
			Description: "Action Figures Department",
			Theme:       "#10b981",
			Category:    model.CategoryActionFigures,
			Channel:     "jannalyn-cruz-orders",
			MaxOrders:   maxOrders,
		},
		{
			Slug:        "marl-prince",
			Title:       "Prince Marl Mirasol",
			Icon:        "👗",
			Description: "Dolls Department",
			Theme:       "#3b82f6",
			Category:    model.CategoryDolls,
			Channel:     "marl-prince-orders",
			MaxOrders:   maxOrders,
		},
		{
			Slug:        "renz-christiane",
			Title:       "Renz Christiane Ming",
			Icon:        "🧩",
			Description: "Puzzles Department",
			Theme:       "#f59e0b",
			Category:    model.CategoryPuzzles,
			Channel:     "renz-christiane-orders",
			MaxOrders:   maxOrders,
		},
	}
}
