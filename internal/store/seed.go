package store

import "github.com/dmitrijs2005/showcase/internal/models"

const (
	// BaselineAdminUsername is the admin account guaranteed to exist after
	// the data migration completes.
	BaselineAdminUsername = "demo_admin"

	// defaultPassword is backfilled into repaired user records that lost
	// their password field.
	defaultPassword = "user123"
)

// SeedUsers returns the baseline demo accounts. A fresh slice is built on
// every call so callers can mutate the result freely.
func SeedUsers() []models.User {
	return []models.User{
		{
			ID:       "u1",
			Username: "demo_user",
			Password: "user123",
			Role:     models.RoleUser,
			Status:   models.StatusActive,
			Avatar:   "https://ui-avatars.com/api/?name=User&background=0071e3&color=fff",
		},
		{
			ID:       "u2",
			Username: BaselineAdminUsername,
			Password: "admin123",
			Role:     models.RoleAdmin,
			Status:   models.StatusActive,
			Avatar:   "https://ui-avatars.com/api/?name=Admin&background=000&color=fff",
		},
	}
}

// SeedPosts returns the demo content posts served when nothing has been
// persisted under the posts key yet.
func SeedPosts() []models.Post {
	return []models.Post{
		{
			ID:       1,
			Title:    "Floating Oak Shelf System",
			Author:   "demo_user",
			SeriesID: "wood",
			Image:    "https://images.unsplash.com/photo-1595428774223-ef52624120d2?w=800&q=80",
			Tags:     []string{"Wood", "DIY"},
			Likes:    124,
		},
		{
			ID:       2,
			Title:    "Neon Gundam Hangar",
			Author:   "MechaFan",
			SeriesID: "cyber",
			Image:    "https://images.unsplash.com/photo-1563089145-599997674d42?w=800&q=80",
			Tags:     []string{"Anime", "RGB"},
			Likes:    89,
		},
		{
			ID:       3,
			Title:    "Gallery Wall for Ceramics",
			Author:   "CuratorJane",
			SeriesID: "museum",
			Image:    "https://images.unsplash.com/photo-1513519245088-0e12902e5a38?w=800&q=80",
			Tags:     []string{"Art", "Ceramics"},
			Likes:    210,
		},
		{
			ID:       4,
			Title:    "Minimalist Sneaker Wall",
			Author:   "HypeBeast",
			SeriesID: "minimal",
			Image:    "https://images.unsplash.com/photo-1595341888016-a392ef81b7de?w=800&q=80",
			Tags:     []string{"Sneakers", "Fashion"},
			Likes:    45,
		},
		{
			ID:       5,
			Title:    "Industrial Pipe Display",
			Author:   "MakerTom",
			SeriesID: "industrial",
			Image:    "https://images.unsplash.com/photo-1532372320572-cda25653a26d?w=800&q=80",
			Tags:     []string{"Industrial", "Retail"},
			Likes:    156,
		},
	}
}
