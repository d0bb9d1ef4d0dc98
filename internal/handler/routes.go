package handler

import "github.com/gin-gonic/gin"

// Handlers bundles everything Register needs to wire the API surface.
type Handlers struct {
	Users        *UserHandler
	Courses      *CourseHandler
	Teachers     *TeacherHandler
	Applications *ApplicationHandler
	ContactForms *ContactFormHandler
}

// Register mounts all API routes under the given prefix.
func Register(r *gin.Engine, prefix string, h Handlers) {
	api := r.Group(prefix)

	api.POST("/users", h.Users.Create)
	api.GET("/users", h.Users.List)
	api.GET("/users/:id", h.Users.Get)

	api.GET("/courses", h.Courses.List)
	api.GET("/courses/:id", h.Courses.Get)
	api.GET("/courses/category/:category", h.Courses.ByCategory)
	api.GET("/courses/subject/:subject", h.Courses.BySubject)

	api.GET("/teachers", h.Teachers.List)
	api.GET("/teachers/:id", h.Teachers.Get)

	api.POST("/applications", h.Applications.Create)
	api.GET("/applications", h.Applications.List)
	api.GET("/applications/:id", h.Applications.Get)

	api.POST("/contact_form", h.ContactForms.Create)
	api.GET("/contact_form", h.ContactForms.List)
}
