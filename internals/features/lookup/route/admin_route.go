package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lookupController "polstat_backend/internals/features/lookup/controller"
)

// LookupAdminRoutes mounts the catalog maintenance CRUD (admin only; the
// caller wires the role guard on the router group).
func LookupAdminRoutes(api fiber.Router, db *gorm.DB) {
	moduleCtrl := lookupController.NewModuleController(db)
	topicCtrl := lookupController.NewTopicController(db)
	subTopicCtrl := lookupController.NewSubTopicController(db)
	questionCtrl := lookupController.NewQuestionController(db)

	modules := api.Group("/modules")
	modules.Get("/", moduleCtrl.List)
	modules.Get("/:id", moduleCtrl.GetByID)
	modules.Post("/", moduleCtrl.Create)
	modules.Put("/:id", moduleCtrl.Update)
	modules.Delete("/:id", moduleCtrl.Delete)

	topics := api.Group("/topics")
	topics.Get("/", topicCtrl.List)
	topics.Get("/:id", topicCtrl.GetByID)
	topics.Post("/", topicCtrl.Create)
	topics.Put("/:id", topicCtrl.Update)
	topics.Delete("/:id", topicCtrl.Delete)

	subTopics := api.Group("/sub-topics")
	subTopics.Get("/", subTopicCtrl.List)
	subTopics.Post("/", subTopicCtrl.Create)
	subTopics.Put("/:id", subTopicCtrl.Update)
	subTopics.Delete("/:id", subTopicCtrl.Delete)

	questions := api.Group("/questions")
	questions.Get("/", questionCtrl.List)
	questions.Get("/:id", questionCtrl.GetByID)
	questions.Post("/", questionCtrl.Create)
	questions.Put("/:id", questionCtrl.Update)
	questions.Delete("/:id", questionCtrl.Delete)
}
