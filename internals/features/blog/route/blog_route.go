package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ponselku_backend/internals/features/blog/controller"
)

// BlogPublicRoutes: baca artikel + komentar tamu.
func BlogPublicRoutes(api fiber.Router, db *gorm.DB) {
	publicCtrl := controller.NewBlogPublicController(db)
	commentCtrl := controller.NewCommentController(db)

	blog := api.Group("/blog")
	blog.Get("/", publicCtrl.ListPublished)
	blog.Get("/categories", publicCtrl.ListCategories)
	blog.Get("/:slug", publicCtrl.GetBySlug)
	blog.Get("/:slug/comments", commentCtrl.ListByPost)
	blog.Post("/:slug/comments", commentCtrl.Create)

	api.Delete("/comments/:id", commentCtrl.Delete)
}

// BlogAdminRoutes: CRUD post/kategori/penulis, dipasang di group /api/a
// yang sudah digerbang middleware admin.
func BlogAdminRoutes(api fiber.Router, db *gorm.DB) {
	adminCtrl := controller.NewBlogAdminController(db)

	posts := api.Group("/posts")
	posts.Get("/", adminCtrl.ListAll)
	posts.Post("/", adminCtrl.Create)
	posts.Post("/upload-cover", adminCtrl.UploadCover)
	posts.Put("/:id", adminCtrl.Update)
	posts.Delete("/:id", adminCtrl.Delete)

	categories := api.Group("/categories")
	categories.Post("/", adminCtrl.CreateCategory)
	categories.Put("/:id", adminCtrl.UpdateCategory)
	categories.Delete("/:id", adminCtrl.DeleteCategory)

	authors := api.Group("/authors")
	authors.Get("/", adminCtrl.ListAuthors)
	authors.Post("/", adminCtrl.CreateAuthor)
	authors.Put("/:id", adminCtrl.UpdateAuthor)
	authors.Delete("/:id", adminCtrl.DeleteAuthor)
}
