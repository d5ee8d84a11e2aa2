package web

import (
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures the application routes. Static segments are
// registered before the parameters they would otherwise match.
func SetupRoutes(app *fiber.App, handlers *Handlers, rateLimiter *RateLimiter) {
	api := app.Group("/api")

	// Publishing
	api.Post("/posts", handlers.CreatePost)
	api.Put("/posts", handlers.UpdatePost)
	api.Delete("/posts", handlers.DeletePost)
	api.Get("/posts/mine", handlers.MyPosts)
	api.Get("/posts/:id", handlers.GetPost)

	api.Post("/media/images", handlers.UploadImage)
	api.Post("/media/videos", handlers.UploadVideo)
	api.Get("/media", handlers.ListMedia)

	// Reading
	api.Get("/timeline/check", handlers.CheckTimeline)
	api.Get("/timeline/:kind?", handlers.Timeline)
	api.Get("/discover/:collection?", handlers.Discover)
	api.Get("/tagmoji", handlers.Tagmoji)
	api.Get("/conversation/:id", handlers.Conversation)
	api.Post("/conversation/:id/replies", handlers.Reply)

	// People
	api.Get("/me", handlers.CurrentUser)
	api.Get("/users/search", handlers.SearchUsers)
	api.Get("/users/:handle", handlers.UserDetails)
	api.Get("/users/:handle/posts", handlers.UserPosts)
	api.Get("/users/:handle/following", handlers.Following)
	api.Get("/users/:handle/follow", handlers.CheckFollowing)
	api.Post("/users/:handle/follow", handlers.Follow)
	api.Delete("/users/:handle/follow", handlers.Unfollow)
	api.Post("/favorites/:id", handlers.Favorite)
	api.Delete("/favorites/:id", handlers.Unfavorite)

	// Accounts
	api.Get("/identities", handlers.Identities)
	api.Post("/connect", rateLimiter.Middleware(), handlers.Connect)
	api.Post("/auth/email", rateLimiter.Middleware(), handlers.RequestSignInEmail)
	api.Post("/auth/email/verify", handlers.VerifySignIn)
	app.Get("/micropub/redirect", handlers.MicropubRedirect)
	app.Post("/micropub/callback", handlers.MicropubCallback)
}
