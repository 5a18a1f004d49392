package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	categoryController "namur_backend/internals/features/catalog/category/controller"
	enquiryController "namur_backend/internals/features/catalog/enquiry/controller"
	productController "namur_backend/internals/features/catalog/product/controller"
	subcategoryController "namur_backend/internals/features/catalog/subcategory/controller"
)

// CatalogPublicRoutes are the taxonomy reads every app screen needs.
func CatalogPublicRoutes(api fiber.Router, db *gorm.DB) {
	cat := categoryController.NewCategoryController(db)
	api.Get("/categories", cat.GetCategories)

	sub := subcategoryController.NewSubcategoryController(db)
	api.Get("/subcategories", sub.GetSubcategories)

	prod := productController.NewProductController(db)
	api.Get("/products", prod.GetProducts)
	api.Get("/products/:id", prod.GetProductByID)
}

// CatalogProtectedRoutes let authenticated users raise enquiries.
func CatalogProtectedRoutes(api fiber.Router, db *gorm.DB) {
	enq := enquiryController.NewEnquiryController(db)
	api.Post("/enquiries", enq.CreateEnquiry)
	api.Put("/enquiries/:id", enq.UpdateEnquiry)
}

// CatalogAdminRoutes maintain the taxonomy from the panel.
func CatalogAdminRoutes(api fiber.Router, db *gorm.DB) {
	cat := categoryController.NewCategoryController(db)
	api.Post("/categories", cat.CreateCategory)
	api.Put("/categories/:id", cat.UpdateCategory)
	api.Delete("/categories/:id", cat.DeleteCategory)

	sub := subcategoryController.NewSubcategoryController(db)
	api.Post("/subcategories", sub.CreateSubcategory)
	api.Put("/subcategories/:id", sub.UpdateSubcategory)
	api.Delete("/subcategories/:id", sub.DeleteSubcategory)

	prod := productController.NewProductController(db)
	api.Post("/products", prod.CreateProduct)
	api.Put("/products/:id", prod.UpdateProduct)
	api.Delete("/products/:id", prod.DeleteProduct)

	enq := enquiryController.NewEnquiryController(db)
	api.Get("/enquiries", enq.GetEnquiries)
	api.Delete("/enquiries/:id", enq.DeleteEnquiry)
}
